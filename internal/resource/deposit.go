package resource

import "github.com/unshrouded/core/internal/simid"

// Deposit is a natural resource deposit on a map tile.
type Deposit struct {
	id       simid.ID // map entity
	resource Resource
	quantity uint16
}

// NewDeposit creates a deposit. id must be a map entity id.
func NewDeposit(id simid.ID, r Resource, quantity uint16) *Deposit {
	if id.Kind() != simid.KindMapEntity {
		panic("resource: deposit id must be a map entity id, got " + id.Kind().String())
	}
	return &Deposit{id: id, resource: r, quantity: quantity}
}

func (d *Deposit) ID() simid.ID { return d.id }
func (d *Deposit) Resource() Resource { return d.resource }
func (d *Deposit) Quantity() uint16 { return d.quantity }
func (d *Deposit) Depleted() bool { return d.quantity == 0 }

// Consume mines amount from the deposit. Unlike Ledger.Consume a deposit can
// be mined out completely.
func (d *Deposit) Consume(amount uint16) bool {
	if amount > d.quantity {
		return false
	}
	d.quantity -= amount
	return true
}
