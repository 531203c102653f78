package resource

import (
	"math"
	"testing"

	"github.com/unshrouded/core/internal/simid"
)

func TestReplenishCreatesEntry(t *testing.T) {
	l := NewLedger()
	l.Replenish(Water, 100)
	e, ok := l.Get(Water)
	if !ok {
		t.Fatal("water not tracked")
	}
	if e.Quantity() != 100 {
		t.Fatalf("quantity = %d, want 100", e.Quantity())
	}
	if _, ok := e.Income(); ok {
		t.Error("income set on fresh entry")
	}
	if _, ok := e.Depletion(); ok {
		t.Error("depletion set on fresh entry")
	}

	l.Replenish(Water, 25)
	if q := l.Quantity(Water); q != 125 {
		t.Fatalf("quantity after second replenish = %d", q)
	}
}

func TestReplenishSaturates(t *testing.T) {
	var l Ledger
	l.Replenish(Credits, math.MaxUint32-5)
	l.Replenish(Credits, 10)
	if q := l.Quantity(Credits); q != math.MaxUint32 {
		t.Fatalf("quantity = %d, want saturation", q)
	}
}

func TestConsume(t *testing.T) {
	l := NewLedger()
	l.Replenish(Water, 100)
	l.Replenish(Food, 250)

	if !l.Consume(Water, 50) {
		t.Fatal("consume 50 of 100 failed")
	}
	if q := l.Quantity(Water); q != 50 {
		t.Fatalf("water = %d, want 50", q)
	}

	if l.Consume(Food, 300) {
		t.Fatal("consume 300 of 250 succeeded")
	}
	if q := l.Quantity(Food); q != 250 {
		t.Fatalf("food = %d, want 250", q)
	}

	// The full balance cannot be consumed.
	if l.Consume(Food, 250) {
		t.Fatal("consume of the exact balance succeeded")
	}
	if q := l.Quantity(Food); q != 250 {
		t.Fatalf("food = %d, want 250", q)
	}

	if l.Consume(Oil, 1) {
		t.Fatal("consume of untracked resource succeeded")
	}
}

func TestSetIncomeDepletionUntracked(t *testing.T) {
	l := NewLedger()
	if l.SetIncome(Metals, 5) {
		t.Error("SetIncome on untracked resource returned true")
	}
	if l.SetDepletion(Metals, 5) {
		t.Error("SetDepletion on untracked resource returned true")
	}
	if l.IsTracked(Metals) || l.Len() != 0 {
		t.Error("untracked resource became tracked")
	}
}

func TestClearIncomeDepletion(t *testing.T) {
	l := NewLedger()
	if l.ClearIncome(Oil) || l.ClearDepletion(Oil) {
		t.Fatal("clearing an untracked resource returned true")
	}
	l.Replenish(Oil, 50)
	l.SetIncome(Oil, 7)
	l.SetDepletion(Oil, 3)

	if !l.ClearIncome(Oil) {
		t.Fatal("ClearIncome returned false")
	}
	e, _ := l.Get(Oil)
	if v, ok := e.Income(); ok || v != 0 {
		t.Fatalf("income after clear = %d, %v", v, ok)
	}
	if v, ok := e.Depletion(); !ok || v != 3 {
		t.Fatalf("depletion cleared too: %d, %v", v, ok)
	}
	l.Update()
	if q := l.Quantity(Oil); q != 47 {
		t.Fatalf("oil after depletion only = %d, want 47", q)
	}

	if !l.ClearDepletion(Oil) {
		t.Fatal("ClearDepletion returned false")
	}
	e, _ = l.Get(Oil)
	if _, ok := e.Depletion(); ok {
		t.Fatal("depletion still set")
	}
	if !l.ClearDepletion(Oil) {
		t.Fatal("clearing a tracked resource twice returned false")
	}
	l.Update()
	if q := l.Quantity(Oil); q != 47 {
		t.Fatalf("oil after clear = %d, want 47", q)
	}
}

func TestUpdate(t *testing.T) {
	l := NewLedger()
	l.Replenish(Water, 100)
	l.SetIncome(Water, 10)
	l.SetDepletion(Water, 5)

	if r, short := l.Update(); short {
		t.Fatalf("unexpected shortage of %v", r)
	}
	if q := l.Quantity(Water); q != 105 {
		t.Fatalf("water = %d, want 105", q)
	}

	l.Replenish(Food, 250)
	l.SetDepletion(Food, 251)
	r, short := l.Update()
	if !short || r != Food {
		t.Fatalf("shortage = %v, %v; want food", r, short)
	}
	if q := l.Quantity(Food); q != 250 {
		t.Fatalf("food = %d, want 250", q)
	}
	if q := l.Quantity(Water); q != 110 {
		t.Fatalf("water = %d, want 110 (other resources still advance)", q)
	}
}

func TestUpdateIncomeCoversDepletion(t *testing.T) {
	l := NewLedger()
	l.Replenish(Oil, 3)
	l.SetIncome(Oil, 7)
	l.SetDepletion(Oil, 10)
	if _, short := l.Update(); short {
		t.Fatal("post-income stock covers depletion, no shortage expected")
	}
	if q := l.Quantity(Oil); q != 0 {
		t.Fatalf("oil = %d, want 0", q)
	}
}

func TestUpdateReportsLastShortage(t *testing.T) {
	l := NewLedger()
	l.Replenish(Water, 1)
	l.SetDepletion(Water, 2)
	l.Replenish(Uranium, 1)
	l.SetIncome(Uranium, 1)
	l.SetDepletion(Uranium, 9)

	all := l.UpdateAll()
	if len(all) != 2 || all[0] != Water || all[1] != Uranium {
		t.Fatalf("shortages = %v", all)
	}
	if q := l.Quantity(Uranium); q != 2 {
		t.Fatalf("uranium = %d, income must not roll back", q)
	}
	r, short := l.Update()
	if !short || r != Uranium {
		t.Fatalf("Update() = %v, %v; want last shortage uranium", r, short)
	}
}

func TestPay(t *testing.T) {
	l := NewLedger()
	l.Replenish(Credits, 100)
	l.Replenish(Metals, 10)

	if l.Pay(Costs{Credits: 50, Metals: 20}) {
		t.Fatal("paid costs that exceed metals")
	}
	if l.Quantity(Credits) != 100 {
		t.Fatal("failed payment consumed credits")
	}
	if !l.Pay(Costs{Credits: 50, Metals: 5, Food: 0}) {
		t.Fatal("affordable payment failed")
	}
	if l.Quantity(Credits) != 50 || l.Quantity(Metals) != 5 {
		t.Fatalf("after payment credits=%d metals=%d", l.Quantity(Credits), l.Quantity(Metals))
	}
}

func TestParseResource(t *testing.T) {
	for _, r := range All {
		got, ok := Parse(r.String())
		if !ok || got != r {
			t.Errorf("parse %q = %v, %v", r.String(), got, ok)
		}
	}
	if r, ok := Parse(" Water "); !ok || r != Water {
		t.Errorf("parse is not case/space insensitive")
	}
	if _, ok := Parse("mana"); ok {
		t.Error("parse accepted unknown resource")
	}
}

func TestDepositConsume(t *testing.T) {
	d := NewDeposit(simid.NewMapEntityID(1), Metals, 30)
	if !d.Consume(30) {
		t.Fatal("deposit could not be mined out")
	}
	if !d.Depleted() {
		t.Fatal("deposit not depleted")
	}
	if d.Consume(1) {
		t.Fatal("consumed from empty deposit")
	}
}
