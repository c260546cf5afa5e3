package engine

// Rules holds the configurable scoring settings. The shipped defaults are
// the two-player game; the cupo threshold is the only value known to differ
// for other player counts, which this engine does not support.
type Rules struct {
	TargetScore     int16 // cumulative score that ends the game
	MesaLimpiaBonus int   // bonus for emptying the table on a capture
	CupoThreshold   int   // round capture count at which the cupo bonus starts
}

// DefaultRules returns the standard two-player Caída rules.
func DefaultRules() Rules {
	return Rules{
		TargetScore:     TargetScore,
		MesaLimpiaBonus: MesaLimpiaBonus,
		CupoThreshold:   CupoThreshold,
	}
}
