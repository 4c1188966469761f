package engine

import (
	"math/rand"
	"testing"
)

func TestStrategyDecide_Rules(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name     string
		strategy Strategy
		price    int
		rent     int
		balance  int
		want     bool
	}{
		{"impulsive always buys", NewStrategy(Impulsive), 1000, 0, 0, true},
		{"demanding buys at rent 50", NewStrategy(Demanding), 100, 50, 0, true},
		{"demanding passes at rent 49", NewStrategy(Demanding), 100, 49, 1000, false},
		{"cautious buys with reserve of exactly 80", NewStrategy(Cautious), 100, 10, 180, true},
		{"cautious passes with reserve of 79", NewStrategy(Cautious), 100, 10, 179, false},
		{"no trait never buys", Strategy{}, 1, 100, 1000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.strategy.Decide(tt.price, tt.rent, tt.balance, rng)
			if got != tt.want {
				t.Errorf("Decide(%d, %d, %d) = %v, want %v",
					tt.price, tt.rent, tt.balance, got, tt.want)
			}
		})
	}
}

func TestStrategyDecide_Precedence(t *testing.T) {
	all := Strategy{Impulsive: true, Demanding: true, Cautious: true, Random: true}

	// Impulsive outranks every other trait regardless of price/rent/balance.
	for i := 0; i < 50; i++ {
		rng := rand.New(rand.NewSource(int64(i)))
		if !all.Decide(10000, 0, 0, rng) {
			t.Fatal("strategy with impulsive set must always buy")
		}
	}
}

func TestStrategyDecide_FallsThroughUnmatchedRules(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	// Demanding's rule does not fire at rent 40, so the cautious rule gets
	// its turn and buys on a sufficient reserve.
	s := Strategy{Demanding: true, Cautious: true}
	if !s.Decide(100, 40, 500, rng) {
		t.Error("cautious rule should fire after demanding rule passes")
	}
	if s.Decide(100, 40, 150, rng) {
		t.Error("no rule should fire: rent too low, reserve too thin")
	}
}

func TestStrategyDecide_RandomUsesCoinFlip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := NewStrategy(Random)

	buys, passes := 0, 0
	for i := 0; i < 200; i++ {
		if s.Decide(100, 10, 300, rng) {
			buys++
		} else {
			passes++
		}
	}

	if buys == 0 || passes == 0 {
		t.Errorf("random strategy should produce both outcomes, got %d buys / %d passes", buys, passes)
	}
}

func TestNewStrategy_SetsOnlyOneTrait(t *testing.T) {
	for _, a := range Archetypes {
		s := NewStrategy(a)
		for _, other := range Archetypes {
			want := other == a
			if s.hasTrait(other) != want {
				t.Errorf("NewStrategy(%v): trait %v = %v, want %v",
					a, other, s.hasTrait(other), want)
			}
		}
	}
}

func TestStrategyArchetype_Label(t *testing.T) {
	tests := []struct {
		name     string
		strategy Strategy
		want     Archetype
		wantOK   bool
	}{
		{"single trait", NewStrategy(Cautious), Cautious, true},
		{"first set trait wins", Strategy{Demanding: true, Random: true}, Demanding, true},
		{"all traits labels impulsive", Strategy{Impulsive: true, Demanding: true, Cautious: true, Random: true}, Impulsive, true},
		{"no trait", Strategy{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.strategy.Archetype()
			if ok != tt.wantOK {
				t.Fatalf("Archetype() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Archetype() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArchetypeString(t *testing.T) {
	want := map[Archetype]string{
		Impulsive: "impulsive",
		Demanding: "demanding",
		Cautious:  "cautious",
		Random:    "random",
	}
	for a, s := range want {
		if a.String() != s {
			t.Errorf("Archetype(%d).String() = %q, want %q", a, a.String(), s)
		}
	}
}
