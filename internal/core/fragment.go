package core

// Fragment is a single HLS media segment as reported by the player.
// Start is the absolute start time in epoch seconds when the playlist
// carried program date information; fragments without it never match a
// timestamp search.
type Fragment struct {
	Start    *float64 `json:"start,omitempty"`
	Duration float64  `json:"duration"`
	URI      string   `json:"uri,omitempty"`
}

// FindFragmentByTimestamp scans fragments in order and returns the
// first one whose span [Start, Start+Duration] contains the timestamp,
// or whose start lies entirely after it, so an early out-of-range query
// binds to the first available fragment. Returns nil when nothing
// matches.
func FindFragmentByTimestamp(fragments []Fragment, timestamp float64) *Fragment {
	for i := range fragments {
		frag := &fragments[i]
		if frag.Start == nil {
			continue
		}
		start := *frag.Start
		if (timestamp >= start && timestamp <= start+frag.Duration) || timestamp < start {
			return frag
		}
	}
	return nil
}
