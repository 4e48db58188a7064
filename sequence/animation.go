package sequence

// An Animation implements a way to render a specific frame-indexed sequence.
type Animation interface {
	Snapshot(frame int64) *Snapshot
}
