// Package sh provides an ishell backed console that plays the remote
// peer of a local engine: commands become protocol lines fed into the
// engine and every engine response is echoed back.
package sh

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/seabattle/pkg/engine"
)

// Shell wraps ishell around a local engine.
type Shell struct {
	Shell  *ishell.Shell
	Engine *engine.Engine

	echo *lineEcho
}

const shellKey = "$shell"

// lineEcho is the engine's byte sink: it buffers until a newline and
// prints the completed line.
type lineEcho struct {
	sh  *ishell.Shell
	buf []byte
}

// WriteByte implements io.ByteWriter.
func (e *lineEcho) WriteByte(b byte) error {
	if b == '\r' {
		return nil
	}
	if b != '\n' {
		e.buf = append(e.buf, b)
		return nil
	}
	e.sh.Printf("< %s\n", e.buf)
	e.buf = e.buf[:0]
	return nil
}

var commands = []*ishell.Cmd{
	&StartCmd,
	&ChecksumCmd,
	&BoomCmd,
	&ResultCmd,
	&FieldRowCmd,
	&FieldCmd,
	&CheatCmd,
	&RawCmd,
	&PhaseCmd,
}

// New creates a shell with a fresh engine.
func New() *Shell {
	s := &Shell{Shell: ishell.New()}
	s.echo = &lineEcho{sh: s.Shell}
	s.Engine = engine.New(s.echo)
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt("peer > ")
	s.Shell.Println("You are the remote peer. Try: start, cs 3443333322, boom 3 4")
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// Send feeds one line into the engine and pumps it dry, so responses
// print before the next prompt.
func (s *Shell) Send(line string) {
	for i := 0; i < len(line); i++ {
		s.Engine.Receive(line[i])
	}
	s.Engine.Receive('\n')
	for s.Engine.Pump() {
	}
}

// Run runs the shell, or processes args as a single command.
func (s *Shell) Run(args ...string) error {
	if len(args) > 0 {
		return s.Shell.Process(args...)
	}
	s.Shell.Run()
	return nil
}

func sendCmd(c *ishell.Context, line string) {
	s := ShellFrom(c)
	c.Printf("> %s\n", line)
	s.Send(line)
}

func digitArg(c *ishell.Context, arg string) (int, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 || n > 9 {
		c.Err(fmt.Errorf("expected a digit 0-9, got %q", arg))
		return 0, false
	}
	return n, true
}

var (
	// StartCmd requests the handshake.
	StartCmd = ishell.Cmd{
		Name: "start",
		Help: "request the handshake",
		Func: func(c *ishell.Context) {
			sendCmd(c, "HD_START")
		},
	}

	// ChecksumCmd sends the peer checksum row.
	ChecksumCmd = ishell.Cmd{
		Name: "cs",
		Help: "DIGITSx10 - send your per-row checksum",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 || len(c.Args[0]) != 10 {
				c.Err(fmt.Errorf("expected 10 digits"))
				return
			}
			sendCmd(c, "HD_CS_"+c.Args[0])
		},
	}

	// BoomCmd fires at a cell.
	BoomCmd = ishell.Cmd{
		Name: "boom",
		Help: "X Y - fire at row X, column Y",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 2 {
				c.Err(fmt.Errorf("expected X Y"))
				return
			}
			x, ok := digitArg(c, c.Args[0])
			if !ok {
				return
			}
			y, ok := digitArg(c, c.Args[1])
			if !ok {
				return
			}
			sendCmd(c, fmt.Sprintf("HD_BOOM_%d_%d", x, y))
		},
	}

	// ResultCmd reports the result of the engine's last shot.
	ResultCmd = ishell.Cmd{
		Name: "result",
		Help: "H|M - answer the engine's last shot",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(fmt.Errorf("expected H or M"))
				return
			}
			switch r := strings.ToUpper(c.Args[0]); r {
			case "H", "M":
				sendCmd(c, "HD_BOOM_"+r)
			default:
				c.Err(fmt.Errorf("expected H or M, got %q", c.Args[0]))
			}
		},
	}

	// FieldRowCmd transfers one row of the peer field.
	FieldRowCmd = ishell.Cmd{
		Name: "sf",
		Help: "ROW CELLSx10 - transfer one row of your field",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 2 || len(c.Args[1]) != 10 {
				c.Err(fmt.Errorf("expected ROW and 10 field characters"))
				return
			}
			row, ok := digitArg(c, c.Args[0])
			if !ok {
				return
			}
			sendCmd(c, fmt.Sprintf("HD_SF%dD%s", row, c.Args[1]))
		},
	}

	// FieldCmd regenerates and dumps the engine's field.
	FieldCmd = ishell.Cmd{
		Name: "field",
		Help: "regenerate and print the engine's field",
		Func: func(c *ishell.Context) {
			sendCmd(c, "DD_GAMEFIELD")
		},
	}

	// CheatCmd reports or resets the cheat counter.
	CheatCmd = ishell.Cmd{
		Name: "cheat",
		Help: "[reset] - report or reset the cheat counter",
		Func: func(c *ishell.Context) {
			if len(c.Args) == 1 && c.Args[0] == "reset" {
				sendCmd(c, "DD_RESET_CC")
				return
			}
			sendCmd(c, "DD_EVALUATE_CC")
		},
	}

	// RawCmd sends an arbitrary line, malformed input included.
	RawCmd = ishell.Cmd{
		Name: "raw",
		Help: "LINE - send a raw protocol line",
		Func: func(c *ishell.Context) {
			sendCmd(c, strings.Join(c.Args, " "))
		},
	}

	// PhaseCmd shows the engine phase and cheat counter.
	PhaseCmd = ishell.Cmd{
		Name: "phase",
		Help: "show the engine phase",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			c.Printf("phase %v, cheat count %d\n", s.Engine.Phase(), s.Engine.CheatCount())
		},
	}
)
