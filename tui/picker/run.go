package picker

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/grovetools/seshconnect/logging"
	"github.com/grovetools/seshconnect/pkg/seshconfig"
	"github.com/grovetools/seshconnect/pkg/workflow"
	"github.com/grovetools/seshconnect/tui"
)

// Run shows the picker until the user connects or quits, and returns the
// connected session name (empty when the user quit). While it runs, log
// output to stderr is discarded and sesh.toml is watched so focus markers
// stay current.
func Run(ctx context.Context, deps workflow.Dependencies, reader *seshconfig.Reader, keys KeyMap) (string, error) {
	tui.InitializeTUI()

	prev := logging.SetGlobalOutput(io.Discard)
	defer logging.SetGlobalOutput(prev)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if reader != nil {
		deps.Focus = reader
		if w, err := seshconfig.NewWatcher(reader); err == nil {
			go w.Run(ctx)
		} else if deps.Logger != nil {
			deps.Logger.WithError(err).Debug("Not watching sesh.toml")
		}
	}

	m := New(ctx, deps).WithKeyMap(keys)
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return "", err
	}
	return final.(*Model).Connected, nil
}
