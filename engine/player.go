package engine

import (
	"math/rand"
)

const (
	// StartingBalance is the balance every player begins a match with.
	StartingBalance = 300
	// PassingBonus is credited whenever a player wraps past the last slot.
	PassingBonus = 100
	// dieFaces is the range of one die roll. Boards run through a game must
	// have at least this many slots or a wrap could overshoot the board.
	dieFaces = 6
)

// Player is one automated participant. Position is a 1-based counter over
// the board (0 before the first move). Once Bankrupt flips true the player
// never takes another turn.
type Player struct {
	ID       int // index into the game's player list, used as owner ID
	Name     string
	Balance  int
	Position int
	Bankrupt bool
	Strategy Strategy

	rng *rand.Rand
}

// NewPlayer creates a player with the given strategy. The rng drives the
// player's die rolls and any random purchase decisions; sharing one rng
// across a match's players is fine because turns never overlap.
func NewPlayer(id int, name string, balance int, strategy Strategy, rng *rand.Rand) *Player {
	return &Player{
		ID:       id,
		Name:     name,
		Balance:  balance,
		Strategy: strategy,
		rng:      rng,
	}
}

// TakeTurn rolls the die, moves the player and resolves the property it
// lands on. Bankrupt players do nothing. The player goes bankrupt when the
// turn leaves its balance strictly negative; landing on exactly zero is
// still solvent.
func (p *Player) TakeTurn(board *Board) {
	if p.Bankrupt {
		return
	}

	p.advance(p.rollDie(), board.Size())
	p.resolveProperty(board)

	if p.Balance < 0 {
		p.Bankrupt = true
	}
}

// rollDie draws a uniform integer in [1,6].
func (p *Player) rollDie() int {
	return p.rng.Intn(dieFaces) + 1
}

// advance moves the position counter by roll. Passing the last slot wraps
// the counter and credits the passing bonus. A single roll can wrap at most
// once because the die range never exceeds the board size.
func (p *Player) advance(roll, boardSize int) {
	if p.Position+roll > boardSize {
		p.Position = p.Position + roll - boardSize
		p.Balance += PassingBonus
	} else {
		p.Position += roll
	}
}

// resolveProperty applies the economics of the slot under the player. An
// unowned property may be bought per the player's strategy. An owned
// property charges rent unconditionally, even when the player owns it.
func (p *Player) resolveProperty(board *Board) {
	property := board.PropertyAt(p.Position)

	if !property.Owned() {
		if p.Strategy.Decide(property.Price, property.Rent, p.Balance, p.rng) {
			property.owner = p.ID
			p.Balance -= property.Price
		}
		return
	}

	p.Balance -= property.Rent
}
