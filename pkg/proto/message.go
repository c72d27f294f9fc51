package proto

// Kind enumerates the message variants of the wire grammar.
type Kind int

const (
	// KindNone is the zero value, not a valid variant.
	KindNone Kind = iota
	// KindStart is the handshake request HD_START.
	KindStart
	// KindChecksum carries the peer's per-row checksum, HD_CS_ and 10 digits.
	KindChecksum
	// KindShot is an incoming shot HD_BOOM_x_y.
	KindShot
	// KindShotResult reports the outcome of the last own shot, HD_BOOM_H or
	// HD_BOOM_M.
	KindShotResult
	// KindFieldRow carries one row of the peer's field, HD_SF{row}D and 10
	// field characters.
	KindFieldRow
	// KindDebugField requests a fresh field to be generated and dumped.
	KindDebugField
	// KindDebugEvalCheat requests the current cheat counter.
	KindDebugEvalCheat
	// KindDebugResetCheat clears the cheat counter.
	KindDebugResetCheat
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindStart:
		return "Start"
	case KindChecksum:
		return "Checksum"
	case KindShot:
		return "Shot"
	case KindShotResult:
		return "ShotResult"
	case KindFieldRow:
		return "FieldRow"
	case KindDebugField:
		return "DebugField"
	case KindDebugEvalCheat:
		return "DebugEvalCheat"
	case KindDebugResetCheat:
		return "DebugResetCheat"
	default:
		return "None"
	}
}

// Message is one decoded protocol line. Only the fields of the decoded
// Kind are meaningful.
type Message struct {
	Kind  Kind
	X, Y  int       // KindShot: row and column, 0-9
	Hit   bool      // KindShotResult
	Row   int       // KindFieldRow
	Cells [10]byte  // KindFieldRow: raw field characters
	Sums  [10]uint8 // KindChecksum: per-row occupancy counts
}
