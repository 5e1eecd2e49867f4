package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-server/internal/operator/actions"
	"github.com/carson-networks/budget-server/internal/storage"
	"github.com/carson-networks/budget-server/internal/storage/sqlconfig"
)

// fakeProcessor performs actions inline against a Writer built over the test
// mocks, so result fields are populated the same way the operator would.
type fakeProcessor struct {
	writer *storage.Writer
	err    error
}

func (p *fakeProcessor) Process(ctx context.Context, action actions.IAction) error {
	if p.err != nil {
		return p.err
	}
	return action.Perform(ctx, p.writer)
}

// testMocks bundles one mock per table, shared between the read path and
// the fake processor's write path.
type testMocks struct {
	users        *sqlconfig.MockIUserTable
	transactions *sqlconfig.MockITransactionTable
	categories   *sqlconfig.MockICategoryTable
}

func newTestService(t *testing.T) (*Service, *testMocks) {
	t.Helper()
	mocks := &testMocks{
		users:        sqlconfig.NewMockIUserTable(t),
		transactions: sqlconfig.NewMockITransactionTable(t),
		categories:   sqlconfig.NewMockICategoryTable(t),
	}
	store := &storage.Storage{
		Users:        mocks.users,
		Transactions: mocks.transactions,
		Categories:   mocks.categories,
	}
	processor := &fakeProcessor{writer: &storage.Writer{
		Users:        mocks.users,
		Transactions: mocks.transactions,
		Categories:   mocks.categories,
	}}
	return NewService(store, processor, stubTokenIssuer{}), mocks
}

type stubTokenIssuer struct{}

func (stubTokenIssuer) Issue(subject uuid.UUID) (string, error) {
	return "token-for-" + subject.String(), nil
}
