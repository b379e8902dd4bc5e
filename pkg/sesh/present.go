package sesh

import (
	"fmt"
	"math"
	"strconv"
)

// View is the flattened, source-tagged form used for JSON output. Fields that
// do not apply to the session's source are omitted.
type View struct {
	Source   Source   `json:"source"`
	Name     string   `json:"name"`
	Path     string   `json:"path"`
	Score    *float64 `json:"score,omitempty"`
	Attached *int     `json:"attached,omitempty"`
	Windows  *int     `json:"windows,omitempty"`
}

// ViewOf flattens s.
func ViewOf(s Session) View {
	v := View{Source: s.Source(), Name: s.SessionName(), Path: s.SessionPath()}
	switch t := s.(type) {
	case LiveSession:
		v.Attached = &t.Attached
		v.Windows = &t.Windows
	case ProjectSession:
		v.Score = &t.Score
	case DirectorySession:
		v.Score = &t.Score
	}
	return v
}

// Views flattens a session list.
func Views(sessions []Session) []View {
	views := make([]View, 0, len(sessions))
	for _, s := range sessions {
		views = append(views, ViewOf(s))
	}
	return views
}

// Icon returns the glyph shown next to a session.
func Icon(s Session) string {
	switch s.Source() {
	case SourceLive:
		return "⚡"
	case SourceProject:
		return "📦"
	case SourceConfig:
		return "⚙"
	default:
		return "📁"
	}
}

// Label returns the short name of the backend a session came from.
func Label(s Session) string {
	switch s.Source() {
	case SourceLive:
		return "tmux"
	case SourceProject:
		return "tmuxinator"
	case SourceConfig:
		return "config"
	default:
		return "zoxide"
	}
}

// AttachmentState returns "Attached" or "Detached" for live sessions. Other
// sources have no attachment state and report ok=false.
func AttachmentState(s Session) (state string, ok bool) {
	live, ok := s.(LiveSession)
	if !ok {
		return "", false
	}
	if live.IsAttached() {
		return "Attached", true
	}
	return "Detached", true
}

// WindowCount returns the number of windows of a live session.
func WindowCount(s Session) (int, bool) {
	live, ok := s.(LiveSession)
	if !ok {
		return 0, false
	}
	return live.Windows, true
}

// Score returns the frecency score of sources that have one.
func Score(s Session) (float64, bool) {
	switch t := s.(type) {
	case ProjectSession:
		return t.Score, true
	case DirectorySession:
		return t.Score, true
	}
	return 0, false
}

// FormatScore renders a score: empty for zero, integers as is, anything
// else with two decimals.
func FormatScore(score float64) string {
	if score == 0 {
		return ""
	}
	if score == math.Trunc(score) && !math.IsInf(score, 0) {
		return strconv.FormatFloat(score, 'f', 0, 64)
	}
	return strconv.FormatFloat(score, 'f', 2, 64)
}

// Accessory is the trailing detail shown for a session: the window count for
// live sessions, the score for everything else.
func Accessory(s Session) string {
	if n, ok := WindowCount(s); ok {
		if n == 1 {
			return "1 window"
		}
		return fmt.Sprintf("%d windows", n)
	}
	if score, ok := Score(s); ok {
		return FormatScore(score)
	}
	return ""
}
