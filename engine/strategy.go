// Package engine implements the board game core: purchase strategies,
// players, the property board and the match state machine.
package engine

import (
	"math/rand"
)

// Archetype identifies one of the four fixed purchase policies.
type Archetype uint8

const (
	Impulsive Archetype = iota
	Demanding
	Cautious
	Random
)

// NumArchetypes is the number of defined archetypes.
const NumArchetypes = 4

// Archetypes lists every archetype in precedence order. The same order
// resolves trait precedence in Decide, the winner label, and report
// tie-breaks.
var Archetypes = [NumArchetypes]Archetype{Impulsive, Demanding, Cautious, Random}

func (a Archetype) String() string {
	switch a {
	case Impulsive:
		return "impulsive"
	case Demanding:
		return "demanding"
	case Cautious:
		return "cautious"
	case Random:
		return "random"
	}
	return "unknown"
}

// Purchase rule thresholds.
const (
	demandingRentFloor = 50  // demanding buys only when rent reaches this
	cautiousReserve    = 80  // cautious keeps at least this much after buying
)

// Strategy is the set of purchase traits assigned to a player for the
// duration of a match. Exactly one trait is expected per player, but Decide
// is well-defined with any combination: rules are evaluated in Archetypes
// order and the first rule that fires wins.
type Strategy struct {
	Impulsive bool
	Demanding bool
	Cautious  bool
	Random    bool
}

// NewStrategy returns a Strategy with only the given archetype's trait set.
func NewStrategy(a Archetype) Strategy {
	var s Strategy
	switch a {
	case Impulsive:
		s.Impulsive = true
	case Demanding:
		s.Demanding = true
	case Cautious:
		s.Cautious = true
	case Random:
		s.Random = true
	}
	return s
}

// hasTrait reports whether the trait for the given archetype is set.
func (s Strategy) hasTrait(a Archetype) bool {
	switch a {
	case Impulsive:
		return s.Impulsive
	case Demanding:
		return s.Demanding
	case Cautious:
		return s.Cautious
	case Random:
		return s.Random
	}
	return false
}

// Decide reports whether a player with this strategy buys an unowned
// property, given its sale price, its rent and the player's current balance.
// Rules run in Archetypes order, first match wins:
//
//	impulsive: always buy
//	demanding: buy iff rent >= 50
//	cautious:  buy iff at least 80 balance remains after the purchase
//	random:    buy with probability 0.5
//
// With no trait set, or when no rule fires, the answer is no. Only the
// random rule consumes a draw from rng.
func (s Strategy) Decide(price, rent, balance int, rng *rand.Rand) bool {
	for _, a := range Archetypes {
		if !s.hasTrait(a) {
			continue
		}
		switch a {
		case Impulsive:
			return true
		case Demanding:
			if rent >= demandingRentFloor {
				return true
			}
		case Cautious:
			if balance-price >= cautiousReserve {
				return true
			}
		case Random:
			return rng.Intn(2) == 1
		}
	}
	return false
}

// Archetype returns the label for this strategy: the first set trait in
// precedence order. ok is false when no trait is set.
func (s Strategy) Archetype() (Archetype, bool) {
	for _, a := range Archetypes {
		if s.hasTrait(a) {
			return a, true
		}
	}
	return 0, false
}
