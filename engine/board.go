package engine

import (
	"fmt"
)

// NoOwner marks a property nobody holds.
const NoOwner = -1

// Property is one board cell. Ownership is tracked as the owning player's
// ID rather than a pointer, so a property never extends a player's lifetime.
type Property struct {
	Name  string
	Price int
	Rent  int
	Slot  int // 0-based board index

	owner int // player ID, NoOwner when unowned
}

// Owned reports whether any player currently holds the property.
func (p *Property) Owned() bool {
	return p.owner != NoOwner
}

// OwnerID returns the holding player's ID, or NoOwner.
func (p *Property) OwnerID() int {
	return p.owner
}

// Board is the fixed ordered sequence of properties a match is played on.
// Slot count and per-slot identity never change after construction; only
// ownership does.
type Board struct {
	properties []Property
}

// NewBoard builds a board from a dataset. It fails fast on an empty or
// malformed dataset: a bad board is a setup bug, not a runtime condition.
func NewBoard(records []PropertyRecord) (*Board, error) {
	if err := validateRecords(records); err != nil {
		return nil, fmt.Errorf("invalid board dataset: %w", err)
	}

	properties := make([]Property, len(records))
	for i, r := range records {
		properties[i] = Property{
			Name:  r.Name,
			Price: r.Price,
			Rent:  r.Rent,
			Slot:  i,
			owner: NoOwner,
		}
	}
	return &Board{properties: properties}, nil
}

// Size returns the number of board slots.
func (b *Board) Size() int {
	return len(b.properties)
}

// PropertyAt returns the property under a 1-based position counter.
func (b *Board) PropertyAt(position int) *Property {
	return &b.properties[position-1]
}

// ClearOwner releases every property held by the given player. The game
// calls this exactly once, right after the player goes bankrupt.
func (b *Board) ClearOwner(playerID int) {
	for i := range b.properties {
		if b.properties[i].owner == playerID {
			b.properties[i].owner = NoOwner
		}
	}
}

// OwnedBy returns how many properties the given player currently holds.
func (b *Board) OwnedBy(playerID int) int {
	n := 0
	for i := range b.properties {
		if b.properties[i].owner == playerID {
			n++
		}
	}
	return n
}
