package term

import (
	"github.com/gdamore/tcell/v2"
)

// Command is a player intent decoded from a key press.
type Command uint8

const (
	CmdNone Command = iota
	CmdQuit
	CmdReset
	CmdLevel
	CmdTiltLeft
	CmdTiltRight
	CmdTiltUp
	CmdTiltDown
)

// KeyCommand maps a key press to a command.
func KeyCommand(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdQuit
	case tcell.KeyLeft:
		return CmdTiltLeft
	case tcell.KeyRight:
		return CmdTiltRight
	case tcell.KeyUp:
		return CmdTiltUp
	case tcell.KeyDown:
		return CmdTiltDown
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return CmdQuit
		case 'r', 'R':
			return CmdReset
		case ' ':
			return CmdLevel
		case 'h':
			return CmdTiltLeft
		case 'l':
			return CmdTiltRight
		case 'k':
			return CmdTiltUp
		case 'j':
			return CmdTiltDown
		}
	}
	return CmdNone
}

// tiltSteps converts a tilt command into sensor nudges. The sensor x axis is
// mirrored on screen, so rolling left needs a positive x reading.
func tiltSteps(cmd Command) (dx, dy int, ok bool) {
	switch cmd {
	case CmdTiltLeft:
		return 1, 0, true
	case CmdTiltRight:
		return -1, 0, true
	case CmdTiltUp:
		return 0, -1, true
	case CmdTiltDown:
		return 0, 1, true
	}
	return 0, 0, false
}
