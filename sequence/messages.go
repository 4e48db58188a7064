package sequence

// Control message types accepted on the control topic.
const (
	CmdPlay    = "play"
	CmdPause   = "pause"
	CmdSeek    = "seek"
	CmdRestart = "restart"
)

// ControlMessage base that indicates message type
type ControlMessage struct {
	Type string `json:"type"`
}

// SeekMessage conveying the target frame from the compositor
type SeekMessage struct {
	ControlMessage
	Frame int64 `json:"frame"`
}

// StateMessage reports the playback state after a transport change
type StateMessage struct {
	Type    string `json:"type"`
	Playing bool   `json:"playing"`
	Frame   int64  `json:"frame"`
}
