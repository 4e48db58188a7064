package sequence

import (
	"encoding/json"
)

// Snapshot represents the visual properties of one frame of the promo
// sequence for a compositor to paint. It is derived entirely from the frame
// index and discarded after publishing.
type Snapshot struct {
	TitleOffsetX   float64 `json:"titleOffsetX"`
	TitleOpacity   float64 `json:"titleOpacity"`
	TitleColour    string  `json:"titleColour"`
	ShakeX         float64 `json:"shakeX"`
	ShakeY         float64 `json:"shakeY"`
	DividerWidth   float64 `json:"dividerWidth"`
	DividerColour  string  `json:"dividerColour"`
	URLText        string  `json:"urlText"`
	URLColour      string  `json:"urlColour"`
	CursorVisible  bool    `json:"cursorVisible"`
	BracketOpacity float64 `json:"bracketOpacity"`
	BracketOffset  float64 `json:"bracketOffset"`
}

// MarshalBinary converts a Snapshot into wire data for the stream topic.
func (s *Snapshot) MarshalBinary() (data []byte, err error) {
	return json.Marshal(s)
}
