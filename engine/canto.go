package engine

// CantoType identifies a declared three-card combination.
type CantoType uint8

const (
	CantoNone CantoType = iota
	CantoRonda
	CantoPatrulla
	CantoVigia
	CantoRegistro
	CantoTribilin
)

var cantoNames = [...]string{"", "Ronda", "Patrulla", "Vigía", "Registro", "Tribilín"}

func (t CantoType) String() string {
	if int(t) >= len(cantoNames) {
		return "?"
	}
	return cantoNames[t]
}

// Canto is a detected combination in a freshly dealt hand.
type Canto struct {
	Type    CantoType
	Rank    uint8 // key rank: the paired/tripled rank, the top of a run, Rey for Registro
	Points  int
	AutoWin bool
}

// TribilinPoints is the payout for a Tribilín after the game's first hand.
const TribilinPoints = 5

const (
	registroPoints = 8
	vigiaPoints    = 7
	patrullaPoints = 6
)

// EvaluateCantos inspects a freshly dealt three-card hand and returns the
// highest-scoring canto present, if any. Checks run in descending point
// order, so the first hit is the best one:
//
//	Tribilín (three equal ranks)       24 and auto-win on the game's first hand, else 5
//	Registro (As, Caballo, Rey)         8
//	Vigía (pair + adjacent ordinal)     7
//	Patrulla (run of three ordinals)    6
//	Ronda (any other pair)              the pair's caída points
//
// Only the three cards of the current deal are scanned, never the whole
// accumulated pile.
func EvaluateCantos(hand [HandSize]Card, firstHandOfGame bool) (Canto, bool) {
	r0, r1, r2 := hand[0].Rank(), hand[1].Rank(), hand[2].Rank()

	// Tribilín: all three ranks equal.
	if r0 == r1 && r1 == r2 {
		c := Canto{Type: CantoTribilin, Rank: r0, Points: TribilinPoints}
		if firstHandOfGame {
			c.Points = TargetScore
			c.AutoWin = true
		}
		return c, true
	}

	var counts [NumRanks]uint8
	counts[r0]++
	counts[r1]++
	counts[r2]++

	// Registro: exactly As, Caballo, Rey in any suits.
	if counts[RankAs] == 1 && counts[RankCaballo] == 1 && counts[RankRey] == 1 {
		return Canto{Type: CantoRegistro, Rank: RankRey, Points: registroPoints}, true
	}

	pairRank := NoRank
	soloRank := NoRank
	for rank := uint8(0); rank < NumRanks; rank++ {
		switch counts[rank] {
		case 2:
			pairRank = rank
		case 1:
			soloRank = rank
		}
	}

	// Vigía: a pair whose ordinal is adjacent to the third card's. With a
	// pair present there is exactly one solo card.
	if pairRank != NoRank {
		pairOrd, soloOrd := int(pairRank)+1, int(soloRank)+1
		if pairOrd-soloOrd == 1 || soloOrd-pairOrd == 1 {
			return Canto{Type: CantoVigia, Rank: pairRank, Points: vigiaPoints}, true
		}

		// Ronda: any remaining pair. Checked here because a pair rules out
		// the three-distinct-rank Patrulla.
		return Canto{
			Type:   CantoRonda,
			Rank:   pairRank,
			Points: NewCard(SuitOros, pairRank).CaidaPoints(),
		}, true
	}

	// Patrulla: three distinct ranks with consecutive ordinals.
	lo, mid, hi := sortThree(r0, r1, r2)
	if mid == lo+1 && hi == mid+1 {
		return Canto{Type: CantoPatrulla, Rank: hi, Points: patrullaPoints}, true
	}

	return Canto{}, false
}

// sortThree orders three rank values ascending.
func sortThree(a, b, c uint8) (uint8, uint8, uint8) {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return a, b, c
}

// betterCanto decides which of two simultaneous cantos scores when both
// hands hold one: higher points first, then the higher key rank, and, when
// still tied, the round starter's canto (the mano's traditional edge).
// Returns the winning player index.
func betterCanto(c0, c1 Canto, roundStarter uint8) uint8 {
	switch {
	case c0.Points != c1.Points:
		if c0.Points > c1.Points {
			return 0
		}
		return 1
	case c0.Rank != c1.Rank:
		if c0.Rank > c1.Rank {
			return 0
		}
		return 1
	default:
		return roundStarter
	}
}
