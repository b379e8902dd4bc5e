// Package seshconfig reads sesh.toml to decide which sessions should bring
// the terminal window forward on connect.
//
// The document belongs to the user and sesh; this package only reads it.
// Every failure to locate, read, or parse it means "no configuration".
package seshconfig

import (
	"fmt"
	"os"
	"sync"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
)

// SessionEntry is one [[session]] table from sesh.toml. Only the fields this
// tool reads are decoded; sesh owns the rest.
type SessionEntry struct {
	Name  string `mapstructure:"name"`
	Path  string `mapstructure:"path"`
	Focus *bool  `mapstructure:"focus"`
}

// Document is the parsed subset of sesh.toml.
type Document struct {
	Sessions []SessionEntry
}

// Reader answers focus queries against a sesh.toml file.
type Reader struct {
	path   string
	logger *logrus.Entry

	mu     sync.Mutex
	cached *Document
	// caching is enabled only while a Watcher keeps the cache honest
	caching bool
}

// NewReader creates a Reader for the sesh.toml at path.
func NewReader(path string, logger *logrus.Entry) *Reader {
	if logger == nil {
		logger = logrus.NewEntry(logrus.New())
	}
	return &Reader{path: path, logger: logger}
}

// Path returns the document location.
func (r *Reader) Path() string {
	return r.path
}

// IsFocusEnabled reports whether sessionName has focus = true. A missing
// document, a malformed document, a missing entry, or a focus value that
// is not exactly the boolean true all yield false.
func (r *Reader) IsFocusEnabled(sessionName string) bool {
	doc, err := r.document()
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.WithField("path", r.path).Debug("No sesh.toml, focus disabled")
		} else {
			r.logger.WithError(err).WithField("path", r.path).Warn("Could not read sesh.toml")
		}
		return false
	}

	for _, entry := range doc.Sessions {
		if entry.Name == sessionName {
			return entry.Focus != nil && *entry.Focus
		}
	}
	return false
}

// FocusedSessions lists the names of all focus-enabled sessions.
func (r *Reader) FocusedSessions() []string {
	doc, err := r.document()
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range doc.Sessions {
		if entry.Focus != nil && *entry.Focus {
			names = append(names, entry.Name)
		}
	}
	return names
}

// Invalidate drops any cached document.
func (r *Reader) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cached = nil
}

func (r *Reader) setCaching(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.caching = enabled
	r.cached = nil
}

func (r *Reader) document() (*Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.caching && r.cached != nil {
		return r.cached, nil
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, err
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if r.caching {
		r.cached = doc
	}
	return doc, nil
}

// Parse decodes the session tables of a sesh.toml document. Entries that do
// not decode cleanly are skipped, so one bad table cannot hide the others.
func Parse(data []byte) (*Document, error) {
	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse sesh.toml: %w", err)
	}

	doc := &Document{}
	tables, ok := raw["session"].([]interface{})
	if !ok {
		return doc, nil
	}

	for _, table := range tables {
		var entry SessionEntry
		if err := mapstructure.Decode(table, &entry); err != nil {
			continue
		}
		doc.Sessions = append(doc.Sessions, entry)
	}
	return doc, nil
}
