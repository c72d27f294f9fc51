package wire

// LineSize is the maximum length of one protocol line, terminator
// excluded.
const LineSize = 64

// Framer assembles newline-terminated lines from a Ring. It is owned by
// the processing loop and must not be shared.
type Framer struct {
	buf [LineSize]byte
	len int
}

// Pump pops bytes until the ring drains or one full line is framed.
// Carriage returns are skipped. A newline completes the line; when the
// accumulator fills before a newline arrives the partial line is
// discarded and framing resumes with the next byte. At most one line is
// produced per call and the returned slice is valid only until the next
// call.
func (f *Framer) Pump(r *Ring) (line []byte, ok bool) {
	for {
		b, popped := r.Pop()
		if !popped {
			return nil, false
		}
		switch b {
		case '\r':
		case '\n':
			line, ok = f.buf[:f.len], true
			f.len = 0
			return
		default:
			if f.len >= LineSize {
				f.len = 0 // overflow, resync
				continue
			}
			f.buf[f.len] = b
			f.len++
		}
	}
}

// Reset discards any partially framed line.
func (f *Framer) Reset() {
	f.len = 0
}
