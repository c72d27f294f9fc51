package engine

import (
	"context"
	"io"
	"math/rand"

	"github.com/golang/glog"

	"github.com/robotalks/seabattle/pkg/game"
	"github.com/robotalks/seabattle/pkg/proto"
	"github.com/robotalks/seabattle/pkg/wire"
)

// Phase is the state of the game controller.
type Phase int

const (
	// PhaseInit waits for the handshake and checksum exchange.
	PhaseInit Phase = iota
	// PhasePlay exchanges shots and results.
	PhasePlay
	// PhaseEnd settles the finished match.
	PhaseEnd
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "INIT"
	case PhasePlay:
		return "PLAY"
	case PhaseEnd:
		return "END"
	default:
		return "?"
	}
}

// Engine plays battleship over a byte-oriented serial link. Receive is
// the only method safe to call concurrently; it feeds the receive ring
// and wakes the loop. Everything else, the game state included, belongs
// to the loop.
type Engine struct {
	Sink io.ByteWriter

	ring   wire.Ring
	framer wire.Framer

	phase   Phase
	state   game.State
	placer  *game.Placer
	started bool // HD_START seen for the current match
	cheats  int  // survives match resets

	wakeCh chan struct{}
}

// New creates an engine writing its responses to sink.
func New(sink io.ByteWriter) *Engine {
	return &Engine{
		Sink:   sink,
		placer: game.NewPlacer(nil),
		wakeCh: make(chan struct{}, 1),
	}
}

// WithSeed makes ship placement deterministic.
func (e *Engine) WithSeed(seed int64) *Engine {
	e.placer = game.NewPlacer(rand.NewSource(seed))
	return e
}

// Phase returns the current controller phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// CheatCount returns the number of checksum mismatches detected so far.
func (e *Engine) CheatCount() int {
	return e.cheats
}

// Receive accepts one byte from the link. It never blocks; when the
// ring is full the byte is dropped.
func (e *Engine) Receive(b byte) {
	if !e.ring.Push(b) {
		glog.V(2).Info("receive ring full, byte dropped")
	}
	select {
	case e.wakeCh <- struct{}{}:
	default:
	}
}

// Run implements framework.Runnable. It drains the ring whenever bytes
// arrive and dispatches one decoded line at a time.
func (e *Engine) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.wakeCh:
			for e.Pump() {
			}
		}
	}
}

// Pump frames at most one line and dispatches it, reporting whether a
// line was consumed. Synchronous embeddings drive the engine with Pump
// instead of Run.
func (e *Engine) Pump() bool {
	line, ok := e.framer.Pump(&e.ring)
	if !ok {
		return false
	}
	msg, ok := proto.Decode(line)
	if !ok {
		glog.V(2).Infof("ignoring %q", line)
		return true
	}
	e.dispatch(msg)
	return true
}

func (e *Engine) dispatch(msg proto.Message) {
	// Debug commands work in every phase.
	switch msg.Kind {
	case proto.KindDebugField:
		e.newLayout()
		e.sendField()
		return
	case proto.KindDebugEvalCheat:
		e.sendLine(proto.CheatLine(e.cheats))
		return
	case proto.KindDebugResetCheat:
		e.cheats = 0
		return
	}
	switch e.phase {
	case PhaseInit:
		e.handleInit(msg)
	case PhasePlay:
		e.handlePlay(msg)
	case PhaseEnd:
		e.handleEnd(msg)
	}
}

func (e *Engine) handleInit(msg proto.Message) {
	switch msg.Kind {
	case proto.KindStart:
		e.newLayout()
		e.started = true
		e.sendLine(proto.LineStartAck)
	case proto.KindChecksum:
		if !e.started {
			return
		}
		e.state.EnemySums = game.Checksums(msg.Sums)
		e.sendLine(proto.ChecksumLine(e.state.MySums))
		e.setPhase(PhasePlay)
	}
}

func (e *Engine) handlePlay(msg proto.Message) {
	switch msg.Kind {
	case proto.KindShot:
		e.handleShot(msg.X, msg.Y)
	case proto.KindShotResult:
		e.state.Hunt.Record(&e.state.MyShots, msg.Hit)
	case proto.KindFieldRow:
		// The peer sending its field means it has lost.
		e.storeMirrorRow(msg)
		if msg.Row == game.Rows-1 {
			e.state.Won = true
			e.setPhase(PhaseEnd)
			e.finishMatch()
		}
	}
}

func (e *Engine) handleEnd(msg proto.Message) {
	// Only the defeated side still listens here, for the winner's field.
	if msg.Kind != proto.KindFieldRow || !e.state.Defeated {
		return
	}
	e.storeMirrorRow(msg)
	if msg.Row == game.Rows-1 {
		e.finishMatch()
	}
}

func (e *Engine) handleShot(x, y int) {
	if e.state.Field.At(x, y) == game.CellEmpty {
		e.state.EnemyShots.Set(x, y, game.ShotMiss)
		e.sendLine(proto.LineMiss)
		e.counterAttack()
		return
	}
	if e.state.EnemyShots.At(x, y) != game.ShotHit {
		e.state.EnemyShots.Set(x, y, game.ShotHit)
		e.state.Hits++
	}
	if e.state.Hits == game.SegmentCount {
		e.state.Defeated = true
		e.sendField()
		e.setPhase(PhaseEnd)
		return
	}
	e.sendLine(proto.LineHit)
	e.counterAttack()
}

func (e *Engine) counterAttack() {
	x, y := e.state.Hunt.Next(&e.state.MyShots, e.state.EnemySums)
	e.sendLine(proto.ShotLine(x, y))
}

func (e *Engine) storeMirrorRow(msg proto.Message) {
	for y, c := range msg.Cells {
		e.state.Mirror.Set(msg.Row, y, c)
	}
}

// finishMatch verifies the transferred opponent field against the
// checksum exchanged at handshake, counts a mismatch, and starts over.
// The winner confirms by dumping its own field; the defeated side
// already did when the 30th hit landed.
func (e *Engine) finishMatch() {
	if !game.MirrorChecksums(&e.state.Mirror).Equal(e.state.EnemySums) {
		e.cheats++
		glog.Warningf("opponent field does not match its checksum, cheat count %d", e.cheats)
	}
	if e.state.Won {
		e.sendField()
	}
	e.state.Reset()
	e.started = false
	e.setPhase(PhaseInit)
}

func (e *Engine) newLayout() {
	if err := e.placer.Place(&e.state.Field); err != nil {
		// Leaves the field blank; the match is unplayable but the
		// protocol keeps running.
		glog.Errorf("ship placement failed: %v", err)
	}
	e.state.MySums = game.FieldChecksums(&e.state.Field)
}

func (e *Engine) sendField() {
	for x := 0; x < game.Rows; x++ {
		e.sendLine(proto.FieldRowLine(x, e.state.Field.RowChars(x)))
	}
}

func (e *Engine) sendLine(line string) {
	out := line + "\r\n"
	for i := 0; i < len(out); i++ {
		if err := e.Sink.WriteByte(out[i]); err != nil {
			glog.Errorf("send %q: %v", line, err)
			return
		}
	}
}

func (e *Engine) setPhase(p Phase) {
	if e.phase != p {
		glog.V(1).Infof("phase %v -> %v", e.phase, p)
		e.phase = p
	}
}
