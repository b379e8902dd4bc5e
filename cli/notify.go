package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/grovetools/seshconnect/logging"
	"github.com/grovetools/seshconnect/pkg/workflow"
)

// ConsoleNotifier prints workflow notifications through a PrettyLogger.
type ConsoleNotifier struct {
	pretty *logging.PrettyLogger
}

// NewConsoleNotifier creates a notifier writing to w.
func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{pretty: logging.NewPrettyLogger().WithWriter(w)}
}

// Notify implements workflow.Notifier.
func (n *ConsoleNotifier) Notify(ctx context.Context, note workflow.Notification) {
	if note.Style == workflow.StyleSuccess {
		n.pretty.Success(note.Title, note.Message)
		return
	}
	n.pretty.Failure(note.Title, note.Message)
}

// PromptConfirmer asks a y/N question on out and reads the answer from in.
// Anything but y or yes declines.
type PromptConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPromptConfirmer creates a confirmer over the given streams.
func NewPromptConfirmer(in io.Reader, out io.Writer) *PromptConfirmer {
	return &PromptConfirmer{in: bufio.NewReader(in), out: out}
}

// Confirm implements workflow.Confirmer.
func (p *PromptConfirmer) Confirm(ctx context.Context, c workflow.Confirmation) (bool, error) {
	fmt.Fprintf(p.out, "%s\n%s [y/N] ", c.Title, c.Message)

	answer, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// AutoConfirm approves every confirmation, for --yes.
var AutoConfirm = workflow.ConfirmerFunc(func(ctx context.Context, c workflow.Confirmation) (bool, error) {
	return true, nil
})
