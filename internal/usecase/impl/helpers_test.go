package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	mockRepo "servicehub/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTx runs the transaction callback against a fresh factory prepared by setup.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

// requireAppError asserts that err carries the given domain error code.
func requireAppError(t *testing.T, err error, expected *domainerrors.BaseError) {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, expected)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, expected.ErrorCode(), appErr.ErrorCode())
}
