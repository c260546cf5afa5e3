package engine

import "testing"

func hand(a, b, c Card) [HandSize]Card { return [HandSize]Card{a, b, c} }

// TestEvaluateCantosTribilin verifies three equal ranks pay 5, or the full
// target with an auto-win on the game's first hand.
func TestEvaluateCantosTribilin(t *testing.T) {
	h := hand(
		NewCard(SuitOros, RankCinco),
		NewCard(SuitCopas, RankCinco),
		NewCard(SuitEspadas, RankCinco),
	)

	c, ok := EvaluateCantos(h, false)
	if !ok || c.Type != CantoTribilin {
		t.Fatalf("got %+v ok=%v, want Tribilín", c, ok)
	}
	if c.Points != TribilinPoints || c.AutoWin {
		t.Errorf("later-hand Tribilín = %+v, want Points=%d AutoWin=false", c, TribilinPoints)
	}

	c, ok = EvaluateCantos(h, true)
	if !ok || c.Points != TargetScore || !c.AutoWin {
		t.Errorf("first-hand Tribilín = %+v ok=%v, want Points=%d AutoWin=true", c, ok, TargetScore)
	}
}

// TestEvaluateCantosRegistro verifies As+Caballo+Rey pays 8 regardless of suits.
func TestEvaluateCantosRegistro(t *testing.T) {
	c, ok := EvaluateCantos(hand(
		NewCard(SuitBastos, RankRey),
		NewCard(SuitOros, RankAs),
		NewCard(SuitOros, RankCaballo),
	), false)
	if !ok || c.Type != CantoRegistro || c.Points != 8 {
		t.Errorf("got %+v ok=%v, want Registro 8", c, ok)
	}
}

// TestEvaluateCantosVigia verifies a pair plus an ordinal-adjacent third card
// pays 7 and wins over the plain Ronda reading of the same hand.
func TestEvaluateCantosVigia(t *testing.T) {
	c, ok := EvaluateCantos(hand(
		NewCard(SuitOros, RankSeis),
		NewCard(SuitCopas, RankSeis),
		NewCard(SuitEspadas, RankSiete),
	), false)
	if !ok || c.Type != CantoVigia || c.Points != 7 || c.Rank != RankSeis {
		t.Errorf("got %+v ok=%v, want Vigía 7 keyed on Seis", c, ok)
	}

	// Siete pair with a Sota: ordinals 7 and 8 are adjacent even though the
	// figure ranks jump past 8 and 9.
	c, ok = EvaluateCantos(hand(
		NewCard(SuitOros, RankSiete),
		NewCard(SuitCopas, RankSiete),
		NewCard(SuitEspadas, RankSota),
	), false)
	if !ok || c.Type != CantoVigia {
		t.Errorf("Siete-Siete-Sota: got %+v ok=%v, want Vigía", c, ok)
	}
}

// TestEvaluateCantosPatrulla verifies three consecutive ordinals pay 6.
func TestEvaluateCantosPatrulla(t *testing.T) {
	c, ok := EvaluateCantos(hand(
		NewCard(SuitBastos, RankCinco),
		NewCard(SuitOros, RankTres),
		NewCard(SuitCopas, RankCuatro),
	), false)
	if !ok || c.Type != CantoPatrulla || c.Points != 6 || c.Rank != RankCinco {
		t.Errorf("got %+v ok=%v, want Patrulla 6 topped by Cinco", c, ok)
	}

	// Siete-Sota-Caballo runs across the figure boundary.
	c, ok = EvaluateCantos(hand(
		NewCard(SuitBastos, RankSota),
		NewCard(SuitOros, RankCaballo),
		NewCard(SuitCopas, RankSiete),
	), false)
	if !ok || c.Type != CantoPatrulla {
		t.Errorf("Siete-Sota-Caballo: got %+v ok=%v, want Patrulla", c, ok)
	}
}

// TestEvaluateCantosRonda verifies a non-adjacent pair pays its caída points.
func TestEvaluateCantosRonda(t *testing.T) {
	cases := []struct {
		pair uint8
		want int
	}{
		{RankDos, 1},
		{RankSota, 2},
		{RankCaballo, 3},
		{RankRey, 4},
	}
	for _, tc := range cases {
		c, ok := EvaluateCantos(hand(
			NewCard(SuitOros, tc.pair),
			NewCard(SuitCopas, tc.pair),
			NewCard(SuitEspadas, RankCinco),
		), false)
		if !ok || c.Type != CantoRonda || c.Points != tc.want {
			t.Errorf("pair of rank %d: got %+v ok=%v, want Ronda %d", tc.pair, c, ok, tc.want)
		}
	}
}

// TestEvaluateCantosNone verifies a hand with no combination reports none.
func TestEvaluateCantosNone(t *testing.T) {
	if c, ok := EvaluateCantos(hand(
		NewCard(SuitOros, RankAs),
		NewCard(SuitCopas, RankCinco),
		NewCard(SuitEspadas, RankRey),
	), false); ok {
		t.Errorf("expected no canto, got %+v", c)
	}
}

// TestEvaluateCantosPriority verifies the point-order checks: a hand readable
// as both Registro and Patrulla scores as none of each other's lesser forms.
func TestEvaluateCantosPriority(t *testing.T) {
	// Sota-Caballo-Rey is a Patrulla, not a Registro (no As).
	c, ok := EvaluateCantos(hand(
		NewCard(SuitOros, RankSota),
		NewCard(SuitCopas, RankCaballo),
		NewCard(SuitEspadas, RankRey),
	), false)
	if !ok || c.Type != CantoPatrulla {
		t.Errorf("Sota-Caballo-Rey: got %+v ok=%v, want Patrulla", c, ok)
	}
}

// TestBetterCanto verifies the simultaneous-canto tie-break: points, then key
// rank, then the round starter.
func TestBetterCanto(t *testing.T) {
	vigia := Canto{Type: CantoVigia, Rank: RankSeis, Points: 7}
	patrulla := Canto{Type: CantoPatrulla, Rank: RankRey, Points: 6}
	if w := betterCanto(patrulla, vigia, 0); w != 1 {
		t.Errorf("points tie-break: winner = %d, want 1", w)
	}

	rondaLow := Canto{Type: CantoRonda, Rank: RankDos, Points: 1}
	rondaHigh := Canto{Type: CantoRonda, Rank: RankSiete, Points: 1}
	if w := betterCanto(rondaLow, rondaHigh, 0); w != 1 {
		t.Errorf("rank tie-break: winner = %d, want 1", w)
	}

	same := Canto{Type: CantoRonda, Rank: RankTres, Points: 1}
	if w := betterCanto(same, same, 1); w != 1 {
		t.Errorf("starter tie-break: winner = %d, want 1", w)
	}
	if w := betterCanto(same, same, 0); w != 0 {
		t.Errorf("starter tie-break: winner = %d, want 0", w)
	}
}
