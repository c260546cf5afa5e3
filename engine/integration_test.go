package engine

import (
	"math/rand"
	"testing"
)

// checkConservation asserts the five containers together always hold the
// full 40-card deck with no duplicates.
func checkConservation(t *testing.T, g *RoundState, step int) {
	t.Helper()

	seen := make(map[Card]bool, DeckSize)
	add := func(where string, cards []Card) {
		for _, c := range cards {
			if seen[c] {
				t.Fatalf("step %d: duplicate %v in %s", step, c, where)
			}
			seen[c] = true
		}
	}

	add("deck", g.Deck[:g.DeckLen])
	add("table", g.Table[:g.TableLen])
	for p := 0; p < 2; p++ {
		add("hand", g.Players[p].Hand[:g.Players[p].HandLen])
		add("captured", g.Players[p].Captured[:g.Players[p].CapturedLen])
	}

	if len(seen) != DeckSize {
		t.Fatalf("step %d: %d cards across containers, want %d", step, len(seen), DeckSize)
	}
}

// playOut drives one full game to completion with random choices, checking
// conservation after every transition. Returns the number of steps taken.
func playOut(t *testing.T, seed uint64) int {
	t.Helper()

	g := NewGame(seed, DefaultRules())
	rng := rand.New(rand.NewSource(int64(seed)))

	g.Start()
	checkConservation(t, &g, 0)

	const maxSteps = 10000
	for step := 1; step <= maxSteps; step++ {
		if g.IsFinished() {
			return step
		}

		var err error
		switch g.Status {
		case StatusWaitingForTableOrder:
			order := OrderAscending
			if rng.Intn(2) == 1 {
				order = OrderDescending
			}
			_, err = g.ChooseTableOrder(g.RoundStarter, order)
		case StatusInProgress:
			p := g.CurrentPlayer
			pick := uint8(rng.Intn(int(g.Players[p].HandLen)))
			_, err = g.PlayCard(p, g.Players[p].Hand[pick])
		case StatusRoundEnd:
			_, err = g.AdvanceRound()
		default:
			t.Fatalf("seed %d step %d: unexpected status %v", seed, step, g.Status)
		}
		if err != nil {
			t.Fatalf("seed %d step %d: %v", seed, step, err)
		}
		checkConservation(t, &g, step)
	}

	t.Fatalf("seed %d: game did not terminate in %d steps", seed, maxSteps)
	return maxSteps
}

// TestRandomGamesTerminate plays many seeded games end to end, verifying
// conservation at every step and a valid winner at the end.
func TestRandomGamesTerminate(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		playOut(t, seed)
	}
}

// TestWinnerScoreReachesTarget verifies the recorded winner actually holds
// a score at or past the target.
func TestWinnerScoreReachesTarget(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		g := NewGame(seed, DefaultRules())
		rng := rand.New(rand.NewSource(int64(seed)))
		g.Start()

		for steps := 0; !g.IsFinished() && steps < 10000; steps++ {
			switch g.Status {
			case StatusWaitingForTableOrder:
				order := OrderAscending
				if rng.Intn(2) == 1 {
					order = OrderDescending
				}
				if _, err := g.ChooseTableOrder(g.RoundStarter, order); err != nil {
					t.Fatalf("seed %d: %v", seed, err)
				}
			case StatusInProgress:
				p := g.CurrentPlayer
				pick := uint8(rng.Intn(int(g.Players[p].HandLen)))
				if _, err := g.PlayCard(p, g.Players[p].Hand[pick]); err != nil {
					t.Fatalf("seed %d: %v", seed, err)
				}
			case StatusRoundEnd:
				if _, err := g.AdvanceRound(); err != nil {
					t.Fatalf("seed %d: %v", seed, err)
				}
			}
		}

		if !g.IsFinished() {
			t.Fatalf("seed %d: game did not finish", seed)
		}
		if g.Winner != 0 && g.Winner != 1 {
			t.Fatalf("seed %d: Winner = %d", seed, g.Winner)
		}
		if g.Players[g.Winner].Score < g.Rules.TargetScore {
			t.Errorf("seed %d: winner score %d below target %d", seed, g.Players[g.Winner].Score, g.Rules.TargetScore)
		}
		loser := Opponent(uint8(g.Winner))
		if g.Players[loser].Score >= g.Rules.TargetScore {
			t.Errorf("seed %d: loser score %d at or past target", seed, g.Players[loser].Score)
		}
	}
}

// TestSaveRestoreRoundTrip verifies a snapshot taken mid-game restores the
// exact state, including the RNG stream.
func TestSaveRestoreRoundTrip(t *testing.T) {
	g := NewGame(9, DefaultRules())
	g.Start()

	snap := g.Save()
	if _, err := g.ChooseTableOrder(g.RoundStarter, OrderAscending); err != nil {
		t.Fatalf("ChooseTableOrder: %v", err)
	}

	g.Restore(snap)
	if g != RoundState(snap) {
		t.Fatal("restored state differs from snapshot")
	}
	if g.Status != StatusWaitingForTableOrder {
		t.Errorf("Status = %v after restore, want waiting_for_table_order", g.Status)
	}

	// The restored state replays identically.
	a := RoundState(snap)
	b := RoundState(snap)
	if _, err := a.ChooseTableOrder(a.RoundStarter, OrderAscending); err != nil {
		t.Fatalf("replay a: %v", err)
	}
	if _, err := b.ChooseTableOrder(b.RoundStarter, OrderAscending); err != nil {
		t.Fatalf("replay b: %v", err)
	}
	if a != b {
		t.Error("identical replays diverged")
	}
}
