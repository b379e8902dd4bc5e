package config

import (
	"fmt"

	"github.com/grovetools/seshconnect/command"
	"github.com/grovetools/seshconnect/errors"
)

// Validate checks values the schema cannot express.
func (p *Preferences) Validate() error {
	sb := command.NewSafeBuilder()

	binaries := map[string]string{
		"sesh.binary":         p.Sesh.Binary,
		"tmux.binary":         p.Tmux.Binary,
		"terminal.binary":     p.Terminal.Binary,
		"terminal.dispatcher": p.Terminal.Dispatcher,
	}
	for field, value := range binaries {
		if err := sb.Validate("binary", value); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigInvalid, fmt.Sprintf("invalid %s", field)).
				WithDetail("field", field)
		}
	}

	if err := sb.Validate("windowClass", p.Terminal.Class); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "invalid terminal.class").
			WithDetail("field", "terminal.class")
	}

	if p.Tmux.Socket != "" {
		if err := sb.Validate("socketName", p.Tmux.Socket); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigInvalid, "invalid tmux.socket").
				WithDetail("field", "tmux.socket")
		}
	}

	return nil
}
