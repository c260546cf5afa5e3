package engine

import "testing"

// TestNewCardRoundTrip verifies suit and rank survive the packed encoding.
func TestNewCardRoundTrip(t *testing.T) {
	for suit := uint8(0); suit < NumSuits; suit++ {
		for rank := uint8(0); rank < NumRanks; rank++ {
			c := NewCard(suit, rank)
			if c.Suit() != suit {
				t.Errorf("NewCard(%d,%d).Suit() = %d, want %d", suit, rank, c.Suit(), suit)
			}
			if c.Rank() != rank {
				t.Errorf("NewCard(%d,%d).Rank() = %d, want %d", suit, rank, c.Rank(), rank)
			}
		}
	}
}

// TestParseCardRejectsMalformed verifies ParseCard rejects out-of-range
// suits and ranks.
func TestParseCardRejectsMalformed(t *testing.T) {
	bad := []struct{ suit, rank uint8 }{
		{0, NumRanks},
		{NumSuits, 0},
		{0x0F, 0x0F},
	}
	for _, tc := range bad {
		if _, err := ParseCard(tc.suit, tc.rank); err == nil {
			t.Errorf("ParseCard(%d,%d): expected error, got nil", tc.suit, tc.rank)
		}
	}
	if c, err := ParseCard(SuitEspadas, RankSiete); err != nil {
		t.Errorf("ParseCard valid card: %v", err)
	} else if c.Rank() != RankSiete || c.Suit() != SuitEspadas {
		t.Errorf("ParseCard result = %v", c)
	}
}

// TestOrdinalSkipsEightAndNine verifies the Spanish deck ordinal mapping:
// As..Siete are 1..7 and the figures continue at 8, 9, 10.
func TestOrdinalSkipsEightAndNine(t *testing.T) {
	cases := []struct {
		rank uint8
		want uint8
	}{
		{RankAs, 1},
		{RankSiete, 7},
		{RankSota, 8},
		{RankCaballo, 9},
		{RankRey, 10},
	}
	for _, tc := range cases {
		c := NewCard(SuitOros, tc.rank)
		if c.Ordinal() != tc.want {
			t.Errorf("rank %d: Ordinal() = %d, want %d", tc.rank, c.Ordinal(), tc.want)
		}
		if c.PipValue() != int(tc.want) {
			t.Errorf("rank %d: PipValue() = %d, want %d", tc.rank, c.PipValue(), tc.want)
		}
	}
}

// TestCaidaPoints verifies the caída bonus per rank: 1 for numbers, then
// 2, 3, 4 for Sota, Caballo, Rey.
func TestCaidaPoints(t *testing.T) {
	for rank := RankAs; rank <= RankSiete; rank++ {
		if got := NewCard(SuitCopas, rank).CaidaPoints(); got != 1 {
			t.Errorf("rank %d: CaidaPoints() = %d, want 1", rank, got)
		}
	}
	figs := map[uint8]int{RankSota: 2, RankCaballo: 3, RankRey: 4}
	for rank, want := range figs {
		if got := NewCard(SuitCopas, rank).CaidaPoints(); got != want {
			t.Errorf("rank %d: CaidaPoints() = %d, want %d", rank, got, want)
		}
	}
}

// TestCardString spot-checks the Spanish card names.
func TestCardString(t *testing.T) {
	if s := NewCard(SuitOros, RankAs).String(); s != "As de Oros" {
		t.Errorf("String() = %q, want %q", s, "As de Oros")
	}
	if s := NewCard(SuitBastos, RankCaballo).String(); s != "Caballo de Bastos" {
		t.Errorf("String() = %q, want %q", s, "Caballo de Bastos")
	}
	if s := EmptyCard.String(); s != "ninguna" {
		t.Errorf("EmptyCard.String() = %q, want %q", s, "ninguna")
	}
}
