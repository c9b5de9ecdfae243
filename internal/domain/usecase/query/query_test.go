package query

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/payment-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-reconciler/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/payment-reconciler/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/payment-reconciler/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testLocalID     = "0d4c3c5a-9f2e-4f9e-8b1a-6c2d8e1f0a3b"
	testExternalRef = "pi_3OqXYZAbCdEfGhIj"
)

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("UUID identifier resolves against the local id", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		stored := &entity.Transaction{LocalID: testLocalID, ExternalRef: testExternalRef}
		mockRepo.EXPECT().GetByKey(mock.Anything, entity.RecordKey{LocalID: testLocalID}).
			Return(stored, nil).Once()

		service := NewService(mockRepo, mockLogger)

		txn, err := service.Resolve(ctx, testLocalID)

		require.NoError(t, err)
		assert.Equal(t, stored, txn)
	})

	t.Run("Opaque identifier resolves against the external ref", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		stored := &entity.Transaction{LocalID: testLocalID, ExternalRef: testExternalRef}
		mockRepo.EXPECT().GetByKey(mock.Anything, entity.RecordKey{ExternalRef: testExternalRef}).
			Return(stored, nil).Once()

		service := NewService(mockRepo, mockLogger)

		txn, err := service.Resolve(ctx, testExternalRef)

		require.NoError(t, err)
		assert.Equal(t, stored, txn)
	})

	t.Run("Empty identifier never reaches the store", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		service := NewService(mockRepo, mockLogger)

		txn, err := service.Resolve(ctx, "  ")

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidIdentifier)
	})

	t.Run("Unknown identifier surfaces not found", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().GetByKey(mock.Anything, mock.Anything).
			Return(nil, errs.ErrTransactionNotFound).Once()

		service := NewService(mockRepo, mockLogger)

		txn, err := service.Resolve(ctx, testExternalRef)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})
}

func TestListRecent(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"Zero limit clamps to maximum", 0, MaxRecentLimit},
		{"Negative limit clamps to maximum", -5, MaxRecentLimit},
		{"Oversized limit clamps to maximum", 500, MaxRecentLimit},
		{"In-range limit passes through", 10, 10},
		{"Exact maximum passes through", MaxRecentLimit, MaxRecentLimit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := persistencemocks.NewMockTransactionRepository(t)
			mockLogger := coremocks.NewMockLogger(t)

			stored := []entity.Transaction{{LocalID: testLocalID}}
			mockRepo.EXPECT().ListRecent(mock.Anything, tc.wantLimit).Return(stored, nil).Once()

			service := NewService(mockRepo, mockLogger)

			txns, err := service.ListRecent(ctx, tc.limit)

			require.NoError(t, err)
			assert.Len(t, txns, 1)
		})
	}
}
