package actions

import (
	"context"

	"github.com/carson-networks/budget-server/internal/storage"
)

// IAction is a single mutation executed by an operator worker inside its own
// database transaction. Actions carry their results in exported fields
// populated by Perform.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
