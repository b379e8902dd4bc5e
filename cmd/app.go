package cmd

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grovetools/seshconnect/cli"
	"github.com/grovetools/seshconnect/command"
	"github.com/grovetools/seshconnect/config"
	"github.com/grovetools/seshconnect/pkg/environ"
	"github.com/grovetools/seshconnect/pkg/focus"
	"github.com/grovetools/seshconnect/pkg/sesh"
	"github.com/grovetools/seshconnect/pkg/seshconfig"
	"github.com/grovetools/seshconnect/pkg/tmux"
	"github.com/grovetools/seshconnect/pkg/workflow"
	"github.com/grovetools/seshconnect/tui/theme"
)

// app is everything one invocation needs, built once from preferences. The
// environment is resolved here and handed to each client explicitly.
type app struct {
	opts   cli.CommandOptions
	prefs  *config.Preferences
	env    environ.Environment
	logger *logrus.Entry

	sesh      *sesh.Client
	tmux      *tmux.Client
	reader    *seshconfig.Reader
	activator *focus.Orchestrator
}

// runnerFactory is swapped in tests.
var runnerFactory = func() command.Runner { return command.NewExecRunner() }

func newApp(cmd *cobra.Command) (*app, error) {
	opts := cli.GetOptions(cmd)
	logger := cli.GetLogger(cmd, "seshconnect")

	prefs, err := cli.LoadPreferences(opts, logger)
	if err != nil {
		return nil, err
	}
	theme.UsePreferences(prefs)

	env := environ.Resolve(prefs.EnvironmentPath)
	logger.WithFields(logrus.Fields{
		"path":       env.SearchPath(),
		"overridden": env.Overridden(),
	}).Debug("Resolved command environment")

	runner := runnerFactory()
	return &app{
		opts:   opts,
		prefs:  prefs,
		env:    env,
		logger: logger,
		sesh:   sesh.NewClient(runner, env, prefs.Sesh.Binary, logger.WithField("client", "sesh")),
		tmux:   tmux.NewClientWithSocket(runner, env, prefs.Tmux.Binary, prefs.Tmux.Socket, logger.WithField("client", "tmux")),
		reader: seshconfig.NewReader(prefs.SeshConfigPath(), logger.WithField("client", "seshconfig")),
		activator: focus.NewOrchestrator(runner, env, focus.Options{
			Dispatcher: prefs.Terminal.Dispatcher,
			Class:      prefs.Terminal.Class,
			Terminal:   prefs.Terminal.Binary,
		}, logger.WithField("client", "focus")),
	}, nil
}

// dependencies wires the controller. Notifications go to stderr so stdout
// stays clean for --json.
func (a *app) dependencies(stderr io.Writer, confirmer workflow.Confirmer) workflow.Dependencies {
	return workflow.Dependencies{
		Lister:    a.sesh,
		Lifecycle: a.sesh,
		Backend:   a.tmux,
		Focus:     a.reader,
		Activator: a.activator,
		Notifier:  cli.NewConsoleNotifier(stderr),
		Confirmer: confirmer,
		Logger:    a.logger.WithField("client", "workflow"),
	}
}

func (a *app) controller(cmd *cobra.Command, confirmer workflow.Confirmer) *workflow.Controller {
	return workflow.New(a.dependencies(cmd.ErrOrStderr(), confirmer))
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func stdin(cmd *cobra.Command) io.Reader {
	if in := cmd.InOrStdin(); in != nil {
		return in
	}
	return os.Stdin
}
