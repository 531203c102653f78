// Package simid defines the simulation-wide identity of every simulated thing:
// individuals, map entities, abstract concepts, attached containers and properties.
//
// An ID must not change for the lifetime of what it identifies. Its hash and its
// canonical rendering (UniqueString) are unique across the whole simulation,
// whatever the kind. Only the constructors below mint IDs.
package simid

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Kind tags the closed set of identity variants.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindEntity
	KindMapEntity
	KindAbstract
	KindAttachedContainer
	KindProperty
)

// EntityID is the scalar of an off-map entity (leader, population group...).
// At most 2^32 entities per game.
type EntityID = uint32

// MapEntityID is the scalar of an on-map entity (building, military unit...).
type MapEntityID = uint32

// Rendering tags. None contains tagSep, so the first tagSep splits tag from payload.
const (
	tagEntity    = "entity"
	tagMapEntity = "mapentity"
	tagAbstract  = "abstract"
	tagContainer = "container"
	tagProperty  = "property"

	tagSep   = ":"
	childSep = "/"
)

// keyEscaper removes childSep from keys so the last childSep of a derived id
// always splits parent from key.
var keyEscaper = strings.NewReplacer("%", "%25", childSep, "%2F")

// ID is the global identification of a simulation component.
// Comparable: equality includes the kind, so it is safe as a map key.
// Copying is cheap; textual payloads share their backing string.
type ID struct {
	kind Kind
	num  uint32
	text string
}

// WithID is implemented by anything carrying a simulation identity.
type WithID interface {
	ID() ID
}

func NewEntityID(id EntityID) ID {
	return ID{kind: KindEntity, num: id}
}

func NewMapEntityID(id MapEntityID) ID {
	return ID{kind: KindMapEntity, num: id}
}

// NewAbstractID builds the id of a script-defined concept (a trait, an economy notion...).
// The name is NFC-normalized so visually identical names from scripts map to one id.
func NewAbstractID(name string) ID {
	return ID{kind: KindAbstract, text: norm.NFC.String(name)}
}

// NewAttachedContainerID derives the id of a container attached to parent.
// key must be unique among everything attached to parent.
func NewAttachedContainerID(parent ID, key string) ID {
	return ID{kind: KindAttachedContainer, text: DeriveChild(parent, key)}
}

// NewPropertyID derives the id of a property held by parent (usually a container).
// key must be unique among the properties of parent.
func NewPropertyID(parent ID, key string) ID {
	return ID{kind: KindProperty, text: DeriveChild(parent, key)}
}

// DeriveChild combines the canonical rendering of parent with key.
// Deterministic, and injective in (parent, key). Keys are taken byte for
// byte; only abstract names are normalized.
func DeriveChild(parent ID, key string) string {
	if parent.kind == KindInvalid {
		panic("simid: derive from invalid parent id")
	}
	return parent.UniqueString() + childSep + keyEscaper.Replace(key)
}

func (id ID) Kind() Kind { return id.kind }

// IsValid reports whether id was minted by a constructor.
func (id ID) IsValid() bool { return id.kind != KindInvalid }

// Number returns the scalar of entity and map entity ids.
func (id ID) Number() (uint32, bool) {
	switch id.kind {
	case KindEntity, KindMapEntity:
		return id.num, true
	case KindAbstract, KindAttachedContainer, KindProperty, KindInvalid:
		return 0, false
	}
	panic(unknownKind(id.kind))
}

// Text returns the payload of abstract, container and property ids.
func (id ID) Text() (string, bool) {
	switch id.kind {
	case KindAbstract, KindAttachedContainer, KindProperty:
		return id.text, true
	case KindEntity, KindMapEntity, KindInvalid:
		return "", false
	}
	panic(unknownKind(id.kind))
}

// UniqueString is the canonical rendering: kind tag, ':', native payload.
// Stable across runs; a save format can rely on it byte for byte.
func (id ID) UniqueString() string {
	switch id.kind {
	case KindEntity:
		return tagEntity + tagSep + strconv.FormatUint(uint64(id.num), 10)
	case KindMapEntity:
		return tagMapEntity + tagSep + strconv.FormatUint(uint64(id.num), 10)
	case KindAbstract:
		return tagAbstract + tagSep + id.text
	case KindAttachedContainer:
		return tagContainer + tagSep + id.text
	case KindProperty:
		return tagProperty + tagSep + id.text
	case KindInvalid:
		return "invalid"
	}
	panic(unknownKind(id.kind))
}

func (id ID) String() string { return id.UniqueString() }

// Hash agrees with equality. The kind occupies the top byte, so ids of
// different kinds never share a hash. Numeric payloads are stored verbatim,
// textual payloads through 56 bits of FNV-1a.
func (id ID) Hash() uint64 {
	top := uint64(id.kind) << 56
	switch id.kind {
	case KindEntity, KindMapEntity:
		return top | uint64(id.num)
	case KindAbstract, KindAttachedContainer, KindProperty:
		h := fnv.New64a()
		var tag [1]byte
		tag[0] = byte(id.kind)
		h.Write(tag[:])
		h.Write([]byte(id.text))
		return top | (h.Sum64() & (1<<56 - 1))
	case KindInvalid:
		return 0
	}
	panic(unknownKind(id.kind))
}

// Parse reverses UniqueString.
func Parse(s string) (ID, error) {
	tag, payload, ok := strings.Cut(s, tagSep)
	if !ok {
		return ID{}, fmt.Errorf("simid: parse %q: missing kind tag", s)
	}
	switch tag {
	case tagEntity, tagMapEntity:
		n, err := strconv.ParseUint(payload, 10, 32)
		if err != nil {
			return ID{}, fmt.Errorf("simid: parse %q: %w", s, err)
		}
		if tag == tagEntity {
			return NewEntityID(uint32(n)), nil
		}
		return NewMapEntityID(uint32(n)), nil
	case tagAbstract:
		return ID{kind: KindAbstract, text: payload}, nil
	case tagContainer:
		return ID{kind: KindAttachedContainer, text: payload}, nil
	case tagProperty:
		return ID{kind: KindProperty, text: payload}, nil
	}
	return ID{}, fmt.Errorf("simid: parse %q: unknown kind tag %q", s, tag)
}

func (k Kind) String() string {
	switch k {
	case KindEntity:
		return tagEntity
	case KindMapEntity:
		return tagMapEntity
	case KindAbstract:
		return tagAbstract
	case KindAttachedContainer:
		return tagContainer
	case KindProperty:
		return tagProperty
	case KindInvalid:
		return "invalid"
	}
	return unknownKind(k)
}

func unknownKind(k Kind) string {
	return fmt.Sprintf("simid: unknown kind %d", uint8(k))
}
