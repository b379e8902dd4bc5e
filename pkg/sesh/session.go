// Package sesh talks to the sesh CLI: it lists the sessions sesh knows about
// and connects to or kills them.
package sesh

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Source identifies where a session came from.
type Source string

const (
	// SourceLive is a running tmux session.
	SourceLive Source = "multiplexer-live"
	// SourceProject is a tmuxinator project.
	SourceProject Source = "project-template"
	// SourceConfig is a session declared in sesh.toml that is not running yet.
	SourceConfig Source = "static-config"
	// SourceDirectory is a zoxide directory ranked by frecency.
	SourceDirectory Source = "frecency-directory"
)

// srcTags maps the Src values sesh emits to sources.
var srcTags = map[string]Source{
	"tmux":       SourceLive,
	"tmuxinator": SourceProject,
	"config":     SourceConfig,
	"zoxide":     SourceDirectory,
}

// Session is one connectable target. The concrete type is one of
// LiveSession, ProjectSession, ConfigSession, or DirectorySession, and only
// carries the fields that mean something for its source.
type Session interface {
	SessionName() string
	SessionPath() string
	Source() Source
	isSession()
}

// Common holds the fields every session has.
type Common struct {
	Name string
	Path string
}

func (c Common) SessionName() string { return c.Name }
func (c Common) SessionPath() string { return c.Path }
func (Common) isSession()            {}

// LiveSession is a running tmux session.
type LiveSession struct {
	Common
	Attached int
	Windows  int
}

func (LiveSession) Source() Source { return SourceLive }

// IsAttached reports whether any client is attached.
func (s LiveSession) IsAttached() bool { return s.Attached >= 1 }

// ProjectSession is a tmuxinator project.
type ProjectSession struct {
	Common
	Score float64
}

func (ProjectSession) Source() Source { return SourceProject }

// ConfigSession is a sesh.toml entry.
type ConfigSession struct {
	Common
}

func (ConfigSession) Source() Source { return SourceConfig }

// DirectorySession is a zoxide directory.
type DirectorySession struct {
	Common
	Score float64
}

func (DirectorySession) Source() Source { return SourceDirectory }

// record is the flat shape of one element of `sesh list --json`.
type record struct {
	Src      string  `json:"Src"`
	Name     string  `json:"Name"`
	Path     string  `json:"Path"`
	Score    float64 `json:"Score"`
	Attached int     `json:"Attached"`
	Windows  int     `json:"Windows"`
}

func (r record) session() (Session, bool) {
	common := Common{Name: r.Name, Path: r.Path}
	switch srcTags[r.Src] {
	case SourceLive:
		return LiveSession{Common: common, Attached: r.Attached, Windows: r.Windows}, true
	case SourceProject:
		return ProjectSession{Common: common, Score: r.Score}, true
	case SourceConfig:
		return ConfigSession{Common: common}, true
	case SourceDirectory:
		return DirectorySession{Common: common, Score: r.Score}, true
	}
	return nil, false
}

// Decode parses `sesh list --json` output. Empty output and a JSON null both
// yield an empty, non-nil slice. Records with an unrecognised Src are logged
// and dropped.
func Decode(data []byte, logger *logrus.Entry) ([]Session, error) {
	sessions := []Session{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return sessions, nil
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse session list: %w", err)
	}

	for _, r := range records {
		s, ok := r.session()
		if !ok {
			if logger != nil {
				logger.WithField("src", r.Src).WithField("name", r.Name).Warn("Skipping session with unknown source")
			}
			continue
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}
