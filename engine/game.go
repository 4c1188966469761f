package engine

import (
	"fmt"
)

const (
	// MaxRounds caps match length; reaching it ends the match by timeout.
	MaxRounds = 1000
	// bankruptLimit: once this many players are bankrupt the match resolves.
	bankruptLimit = 3
)

// Game runs one match to completion. Build a fresh Game per match; instances
// are not reusable after Play.
type Game struct {
	Players       []*Player
	Board         *Board
	Round         int
	BankruptCount int
}

// Result is the outcome of one finished match.
type Result struct {
	WinnerName      string
	WinnerArchetype Archetype
	Rounds          int
	Timeout         bool
}

// NewGame wires players to a board. It fails fast on an empty player list,
// a nil board, a board smaller than the die range, or a player whose
// strategy carries no trait, since any of those is a setup bug no match
// could recover from.
func NewGame(players []*Player, board *Board) (*Game, error) {
	if len(players) == 0 {
		return nil, fmt.Errorf("game needs at least one player")
	}
	if board == nil {
		return nil, fmt.Errorf("game needs a board")
	}
	if board.Size() < dieFaces {
		return nil, fmt.Errorf("board has %d slots, need at least %d so a roll cannot overshoot the wrap",
			board.Size(), dieFaces)
	}
	for _, p := range players {
		if _, ok := p.Strategy.Archetype(); !ok {
			return nil, fmt.Errorf("player %s has no strategy trait set", p.Name)
		}
	}
	return &Game{Players: players, Board: board}, nil
}

// Play runs rounds until the round cap is hit or three players are
// bankrupt, then resolves the winner. Within a round players act in list
// order; a player that goes bankrupt is stripped of its properties
// immediately, and the round's inner loop stops early once the third
// bankruptcy lands. The round counter advances even on an early exit.
func (g *Game) Play() Result {
	for g.Round < MaxRounds && g.BankruptCount < bankruptLimit {
		for _, p := range g.Players {
			if p.Bankrupt {
				continue
			}

			p.TakeTurn(g.Board)
			if p.Bankrupt {
				g.Board.ClearOwner(p.ID)
				g.BankruptCount++
			}

			if g.BankruptCount >= bankruptLimit {
				break
			}
		}
		g.Round++
	}

	timeout := g.Round == MaxRounds && g.BankruptCount < bankruptLimit

	winner := g.resolveWinner()
	label, _ := winner.Strategy.Archetype()

	return Result{
		WinnerName:      winner.Name,
		WinnerArchetype: label,
		Rounds:          g.Round,
		Timeout:         timeout,
	}
}

// resolveWinner returns the player with the strictly highest balance,
// bankrupt or not. Ties keep the earlier player in list order: a later
// player replaces the running winner only with a strictly greater balance.
func (g *Game) resolveWinner() *Player {
	winner := g.Players[0]
	for _, p := range g.Players[1:] {
		if p.Balance > winner.Balance {
			winner = p
		}
	}
	return winner
}
