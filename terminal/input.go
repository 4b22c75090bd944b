package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/meghashyamc/asteroids2d/game"
)

// heldKeys approximates held controls from key presses. Terminals only report
// presses (and auto-repeat), so a press counts as held for holdTicks polls.
type heldKeys struct {
	holdTicks int
	remaining map[game.Command]int
}

func newHeldKeys(holdTicks int) *heldKeys {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &heldKeys{
		holdTicks: holdTicks,
		remaining: make(map[game.Command]int),
	}
}

func commandFor(key tcell.Key, r rune) (game.Command, bool) {
	switch key {
	case tcell.KeyLeft:
		return game.CommandRotateLeft, true
	case tcell.KeyRight:
		return game.CommandRotateRight, true
	case tcell.KeyUp:
		return game.CommandAccelerate, true
	case tcell.KeyRune:
		switch r {
		case 'a', 'A':
			return game.CommandRotateLeft, true
		case 'd', 'D':
			return game.CommandRotateRight, true
		case 'w', 'W':
			return game.CommandAccelerate, true
		case ' ':
			return game.CommandFire, true
		}
	}
	return 0, false
}

// press records a key press and reports whether it was a game control
func (h *heldKeys) press(key tcell.Key, r rune) bool {
	cmd, ok := commandFor(key, r)
	if !ok {
		return false
	}
	h.remaining[cmd] = h.holdTicks
	return true
}

// Poll returns the controls still held and ages every one of them by a tick
func (h *heldKeys) Poll() game.Commands {
	var cmds game.Commands
	for cmd, left := range h.remaining {
		cmds = cmds.With(cmd)
		if left <= 1 {
			delete(h.remaining, cmd)
			continue
		}
		h.remaining[cmd] = left - 1
	}
	return cmds
}
