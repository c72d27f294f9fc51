package proto

import (
	"fmt"
	"strconv"
	"strings"
)

// Incoming fixed lines and prefixes.
const (
	lineStart       = "HD_START"
	prefixChecksum  = "HD_CS_"
	prefixShot      = "HD_BOOM_"
	prefixFieldRow  = "HD_SF"
	lineDebugField  = "DD_GAMEFIELD"
	lineDebugEval   = "DD_EVALUATE_CC"
	lineDebugReset  = "DD_RESET_CC"
	shotLineLen     = len(prefixShot) + 3 // HD_BOOM_x_y
	resultLineLen   = len(prefixShot) + 1 // HD_BOOM_H
	checksumLineLen = len(prefixChecksum) + 10
	fieldRowLineLen = len(prefixFieldRow) + 12 // HD_SF{row}D{10 chars}
)

// Outgoing fixed lines.
const (
	LineStartAck = "DH_START_MAX"
	LineHit      = "DH_BOOM_H"
	LineMiss     = "DH_BOOM_M"
)

// Decode parses one framed line into a Message. ok is false for any
// line outside the grammar.
func Decode(line []byte) (msg Message, ok bool) {
	s := string(line)
	switch s {
	case lineStart:
		return Message{Kind: KindStart}, true
	case lineDebugField:
		return Message{Kind: KindDebugField}, true
	case lineDebugEval:
		return Message{Kind: KindDebugEvalCheat}, true
	case lineDebugReset:
		return Message{Kind: KindDebugResetCheat}, true
	}
	switch {
	case strings.HasPrefix(s, prefixChecksum):
		return decodeChecksum(s)
	case strings.HasPrefix(s, prefixShot):
		switch len(s) {
		case shotLineLen:
			return decodeShot(s)
		case resultLineLen:
			return decodeShotResult(s)
		}
	case strings.HasPrefix(s, prefixFieldRow):
		return decodeFieldRow(s)
	}
	return Message{}, false
}

func decodeChecksum(s string) (msg Message, ok bool) {
	if len(s) != checksumLineLen {
		return
	}
	msg.Kind = KindChecksum
	for i := 0; i < 10; i++ {
		c := s[len(prefixChecksum)+i]
		if !isDigit(c) {
			return Message{}, false
		}
		msg.Sums[i] = c - '0'
	}
	return msg, true
}

func decodeShot(s string) (msg Message, ok bool) {
	// HD_BOOM_x_y
	if s[9] != '_' || !isDigit(s[8]) || !isDigit(s[10]) {
		return
	}
	return Message{Kind: KindShot, X: int(s[8] - '0'), Y: int(s[10] - '0')}, true
}

func decodeShotResult(s string) (msg Message, ok bool) {
	switch s[8] {
	case 'H':
		return Message{Kind: KindShotResult, Hit: true}, true
	case 'M':
		return Message{Kind: KindShotResult}, true
	}
	return
}

func decodeFieldRow(s string) (msg Message, ok bool) {
	// HD_SF{row}D{10 chars}
	if len(s) != fieldRowLineLen || !isDigit(s[5]) || s[6] != 'D' {
		return
	}
	msg.Kind = KindFieldRow
	msg.Row = int(s[5] - '0')
	copy(msg.Cells[:], s[7:])
	return msg, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// ChecksumLine renders the own checksum row.
func ChecksumLine(sums [10]uint8) string {
	b := make([]byte, 0, checksumLineLen)
	b = append(b, "DH_CS_"...)
	for _, n := range sums {
		b = append(b, '0'+n)
	}
	return string(b)
}

// ShotLine renders an outgoing shot at (x, y).
func ShotLine(x, y int) string {
	return fmt.Sprintf("DH_BOOM_%d_%d", x, y)
}

// FieldRowLine renders one row of the own field.
func FieldRowLine(row int, cells [10]byte) string {
	return fmt.Sprintf("DH_SF%dD%s", row, cells[:])
}

// CheatLine renders the cheat counter report.
func CheatLine(n int) string {
	return "DH_CC_" + strconv.Itoa(n)
}
