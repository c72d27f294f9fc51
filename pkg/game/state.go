package game

// State aggregates all per-match data. It is zeroed when a match starts
// and mutated only by the engine loop; nothing here is safe for
// concurrent use.
type State struct {
	Field      Grid // own ship layout
	Mirror     Grid // opponent field, received row by row at game end
	MyShots    Grid // results of own shots on the opponent field
	EnemyShots Grid // opponent shots on the own field

	MySums    Checksums // computed at placement
	EnemySums Checksums // received at handshake

	Hits     int  // own-field cells hit by the opponent
	Defeated bool // all own segments hit
	Won      bool // opponent field transfer completed

	Hunt Targeting
}

// Reset returns the state to its blank pre-match condition.
func (s *State) Reset() {
	*s = State{}
}
