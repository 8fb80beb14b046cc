package game

import (
	"errors"
	"fmt"

	"github.com/minaorangina/klondike/protocol"
)

var ErrUnknownCommand = errors.New("unknown command")

// Receive applies one inbound pointer message
func (g *Game) Receive(msg protocol.InboundMessage) error {
	pos := Point{X: msg.X, Y: msg.Y}

	switch msg.Command {
	case protocol.Frame:
		return g.Update(Input{Pointer: pos, Pressed: msg.Pressed, Released: msg.Released})
	case protocol.Press:
		g.Press(pos)
	case protocol.Move:
		g.Move(pos)
	case protocol.Release:
		return g.Release(pos)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownCommand, int(msg.Command))
	}
	return nil
}
