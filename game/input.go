package game

// Command is a single held control
type Command uint8

const (
	CommandRotateLeft Command = 1 << iota
	CommandRotateRight
	CommandAccelerate
	CommandFire
)

// Commands is the set of controls held during one tick
type Commands uint8

func NewCommands(cmds ...Command) Commands {
	var c Commands
	for _, cmd := range cmds {
		c = c.With(cmd)
	}
	return c
}

func (c Commands) Has(cmd Command) bool {
	return uint8(c)&uint8(cmd) != 0
}

func (c Commands) With(cmd Command) Commands {
	return Commands(uint8(c) | uint8(cmd))
}

// InputSource returns a snapshot of the currently held controls. Poll must not
// block.
type InputSource interface {
	Poll() Commands
}
