package picker

import (
	"context"
	"sync"

	"github.com/grovetools/seshconnect/pkg/workflow"
)

// inbox collects notifications raised while a workflow runs in the
// background; the model drains it when the workflow finishes.
type inbox struct {
	mu    sync.Mutex
	items []workflow.Notification
}

func (b *inbox) Notify(ctx context.Context, n workflow.Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, n)
}

func (b *inbox) drain() []workflow.Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	items := b.items
	b.items = nil
	return items
}

// approvals answers the controller's confirmation with the decision the
// user already made in the picker's own prompt. Each approval is used once.
type approvals struct {
	mu       sync.Mutex
	approved map[string]bool
}

func (a *approvals) approve(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.approved == nil {
		a.approved = make(map[string]bool)
	}
	a.approved[message] = true
}

func (a *approvals) Confirm(ctx context.Context, c workflow.Confirmation) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	ok := a.approved[c.Message]
	delete(a.approved, c.Message)
	return ok, nil
}
