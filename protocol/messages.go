package protocol

// InboundMessage is one pointer event from the presentation layer
type InboundMessage struct {
	Command  Cmd     `json:"command"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Pressed  bool    `json:"pressed,omitempty"`
	Released bool    `json:"released,omitempty"`
}

// CardView is everything needed to draw one card.
// Label and Suit are only filled in for face-up playing cards.
type CardView struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Kind       string  `json:"kind"`
	Visibility string  `json:"visibility"`
	Highlight  string  `json:"highlight"`
	Label      string  `json:"label,omitempty"`
	Suit       string  `json:"suit,omitempty"`
}

// OutboundMessage is the board as the presentation layer should draw it,
// cards in back-to-front order
type OutboundMessage struct {
	GameID string     `json:"game_id"`
	State  string     `json:"state"`
	Moves  int        `json:"moves"`
	Won    bool       `json:"won"`
	Cards  []CardView `json:"cards"`
	Error  string     `json:"error,omitempty"`
}
