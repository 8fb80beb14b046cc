package protocol

import "fmt"

// Cmd represents a pointer command sent by the presentation layer
type Cmd int

const (
	Frame Cmd = iota // a full frame: position plus press/release edges
	Press
	Move
	Release
)

var cmdNames = []string{
	"frame",
	"press",
	"move",
	"release",
}

func (c Cmd) String() string {
	if c < Frame || c > Release {
		return ""
	}
	return cmdNames[c]
}

func (c Cmd) MarshalText() ([]byte, error) {
	if c.String() == "" {
		return nil, fmt.Errorf("unknown command %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Cmd) UnmarshalText(text []byte) error {
	for i, name := range cmdNames {
		if name == string(text) {
			*c = Cmd(i)
			return nil
		}
	}
	return fmt.Errorf("unknown command %q", string(text))
}
