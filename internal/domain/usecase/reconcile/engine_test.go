package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/amirhossein-jamali/payment-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-reconciler/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/payment-reconciler/mocks/port/core"
	notifiermocks "github.com/amirhossein-jamali/payment-reconciler/mocks/port/notifier"
	persistencemocks "github.com/amirhossein-jamali/payment-reconciler/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testLocalRef    = "0d4c3c5a-9f2e-4f9e-8b1a-6c2d8e1f0a3b"
	testExternalRef = "pi_3OqXYZAbCdEfGhIj"
)

// quietLogger tolerates any log traffic; engine tests assert on the
// repository and notifier interactions, not on log lines.
func quietLogger(t *testing.T) *coremocks.MockLogger {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

func TestEngineApply(t *testing.T) {
	ctx := context.Background()

	t.Run("Succeeded event transitions the record and notifies", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockNotifier := notifiermocks.NewMockNotifier(t)
		mockLogger := quietLogger(t)

		updated := &entity.Transaction{
			LocalID:     testLocalRef,
			ExternalRef: testExternalRef,
			Status:      entity.StatusSucceeded,
		}
		mockRepo.EXPECT().Transition(mock.Anything,
			entity.RecordKey{LocalID: testLocalRef},
			entity.StatusSucceeded,
			mock.Anything,
		).Return(updated, nil).Once()
		mockNotifier.EXPECT().StatusChanged(mock.Anything, updated).Return(nil).Once()

		engine := NewEngine(mockRepo, mockNotifier, mockLogger)
		defer engine.Shutdown()

		status, err := engine.Apply(ctx, entity.LifecycleEvent{
			Kind:        entity.EventPaymentSucceeded,
			ExternalRef: testExternalRef,
			LocalRef:    testLocalRef,
		})

		require.NoError(t, err)
		assert.Equal(t, entity.StatusSucceeded, status)
	})

	t.Run("Redelivered event applies again without error", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockNotifier := notifiermocks.NewMockNotifier(t)
		mockLogger := quietLogger(t)

		updated := &entity.Transaction{LocalID: testLocalRef, Status: entity.StatusSucceeded}
		mockRepo.EXPECT().Transition(mock.Anything,
			entity.RecordKey{LocalID: testLocalRef},
			entity.StatusSucceeded,
			mock.Anything,
		).Return(updated, nil).Times(2)
		mockNotifier.EXPECT().StatusChanged(mock.Anything, updated).Return(nil).Times(2)

		engine := NewEngine(mockRepo, mockNotifier, mockLogger)
		defer engine.Shutdown()

		event := entity.LifecycleEvent{Kind: entity.EventPaymentSucceeded, LocalRef: testLocalRef}
		for i := 0; i < 2; i++ {
			status, err := engine.Apply(ctx, event)
			require.NoError(t, err)
			assert.Equal(t, entity.StatusSucceeded, status)
		}
	})

	t.Run("Failure event merges the failure reason", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockNotifier := notifiermocks.NewMockNotifier(t)
		mockLogger := quietLogger(t)

		updated := &entity.Transaction{LocalID: testLocalRef, Status: entity.StatusFailed}
		mockRepo.EXPECT().Transition(mock.Anything,
			entity.RecordKey{LocalID: testLocalRef},
			entity.StatusFailed,
			map[string]any{"failure_reason": "card_declined"},
		).Return(updated, nil).Once()
		mockNotifier.EXPECT().StatusChanged(mock.Anything, updated).Return(nil).Once()

		engine := NewEngine(mockRepo, mockNotifier, mockLogger)
		defer engine.Shutdown()

		status, err := engine.Apply(ctx, entity.LifecycleEvent{
			Kind:          entity.EventPaymentFailed,
			LocalRef:      testLocalRef,
			FailureDetail: "card_declined",
		})

		require.NoError(t, err)
		assert.Equal(t, entity.StatusFailed, status)
	})

	t.Run("Charge failure resolves by external reference even with a local ref", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockNotifier := notifiermocks.NewMockNotifier(t)
		mockLogger := quietLogger(t)

		updated := &entity.Transaction{ExternalRef: testExternalRef, Status: entity.StatusFailed}
		mockRepo.EXPECT().Transition(mock.Anything,
			entity.RecordKey{ExternalRef: testExternalRef},
			entity.StatusFailed,
			mock.Anything,
		).Return(updated, nil).Once()
		mockNotifier.EXPECT().StatusChanged(mock.Anything, updated).Return(nil).Once()

		engine := NewEngine(mockRepo, mockNotifier, mockLogger)
		defer engine.Shutdown()

		status, err := engine.Apply(ctx, entity.LifecycleEvent{
			Kind:        entity.EventChargeFailed,
			ExternalRef: testExternalRef,
			LocalRef:    testLocalRef,
		})

		require.NoError(t, err)
		assert.Equal(t, entity.StatusFailed, status)
	})

	t.Run("Refund event received before success still applies", func(t *testing.T) {
		// Out-of-order delivery: the engine applies every event as
		// authoritative for its own kind rather than rejecting it.
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockNotifier := notifiermocks.NewMockNotifier(t)
		mockLogger := quietLogger(t)

		updated := &entity.Transaction{LocalID: testLocalRef, Status: entity.StatusRefunded}
		mockRepo.EXPECT().Transition(mock.Anything,
			entity.RecordKey{LocalID: testLocalRef},
			entity.StatusRefunded,
			mock.Anything,
		).Return(updated, nil).Once()
		mockNotifier.EXPECT().StatusChanged(mock.Anything, updated).Return(nil).Once()

		engine := NewEngine(mockRepo, mockNotifier, mockLogger)
		defer engine.Shutdown()

		status, err := engine.Apply(ctx, entity.LifecycleEvent{
			Kind:     entity.EventRefundCreated,
			LocalRef: testLocalRef,
		})

		require.NoError(t, err)
		assert.Equal(t, entity.StatusRefunded, status)
	})

	t.Run("Unrecognized kind is acknowledged without touching the store", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockNotifier := notifiermocks.NewMockNotifier(t)
		mockLogger := quietLogger(t)

		engine := NewEngine(mockRepo, mockNotifier, mockLogger)
		defer engine.Shutdown()

		status, err := engine.Apply(ctx, entity.LifecycleEvent{
			Kind:        "customer.created",
			ExternalRef: testExternalRef,
		})

		require.NoError(t, err)
		assert.Empty(t, status)
	})

	t.Run("Event without identifiers is rejected", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockNotifier := notifiermocks.NewMockNotifier(t)
		mockLogger := quietLogger(t)

		engine := NewEngine(mockRepo, mockNotifier, mockLogger)
		defer engine.Shutdown()

		status, err := engine.Apply(ctx, entity.LifecycleEvent{Kind: entity.EventPaymentSucceeded})

		assert.Empty(t, status)
		assert.ErrorIs(t, err, errs.ErrInvalidEvent)
	})

	t.Run("Unknown record surfaces not found", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockNotifier := notifiermocks.NewMockNotifier(t)
		mockLogger := quietLogger(t)

		mockRepo.EXPECT().Transition(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errs.ErrTransactionNotFound).Once()

		engine := NewEngine(mockRepo, mockNotifier, mockLogger)
		defer engine.Shutdown()

		status, err := engine.Apply(ctx, entity.LifecycleEvent{
			Kind:        entity.EventPaymentSucceeded,
			ExternalRef: testExternalRef,
		})

		assert.Empty(t, status)
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)

		var eventErr *errs.EventError
		require.True(t, errors.As(err, &eventErr))
		assert.Equal(t, string(entity.EventPaymentSucceeded), eventErr.Kind)
		assert.Equal(t, testExternalRef, eventErr.ExternalRef)
	})

	t.Run("Notifier failure is swallowed", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockNotifier := notifiermocks.NewMockNotifier(t)
		mockLogger := quietLogger(t)

		updated := &entity.Transaction{LocalID: testLocalRef, Status: entity.StatusSucceeded}
		mockRepo.EXPECT().Transition(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(updated, nil).Once()
		mockNotifier.EXPECT().StatusChanged(mock.Anything, updated).
			Return(errors.New("smtp unreachable")).Once()

		engine := NewEngine(mockRepo, mockNotifier, mockLogger)
		defer engine.Shutdown()

		status, err := engine.Apply(ctx, entity.LifecycleEvent{
			Kind:     entity.EventPaymentSucceeded,
			LocalRef: testLocalRef,
		})

		require.NoError(t, err)
		assert.Equal(t, entity.StatusSucceeded, status)
	})

	t.Run("Nil notifier is allowed", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockLogger := quietLogger(t)

		updated := &entity.Transaction{LocalID: testLocalRef, Status: entity.StatusSucceeded}
		mockRepo.EXPECT().Transition(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(updated, nil).Once()

		engine := NewEngine(mockRepo, nil, mockLogger)
		defer engine.Shutdown()

		status, err := engine.Apply(ctx, entity.LifecycleEvent{
			Kind:     entity.EventPaymentSucceeded,
			LocalRef: testLocalRef,
		})

		require.NoError(t, err)
		assert.Equal(t, entity.StatusSucceeded, status)
	})
}

func TestEngineApplyStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Overwrites status and merges the delta", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockNotifier := notifiermocks.NewMockNotifier(t)
		mockLogger := quietLogger(t)

		updated := &entity.Transaction{ExternalRef: testExternalRef, Status: entity.StatusRefunded}
		mockRepo.EXPECT().Transition(mock.Anything,
			entity.RecordKey{ExternalRef: testExternalRef},
			entity.StatusRefunded,
			map[string]any{"refund_id": "re_1"},
		).Return(updated, nil).Once()
		mockNotifier.EXPECT().StatusChanged(mock.Anything, updated).Return(nil).Once()

		engine := NewEngine(mockRepo, mockNotifier, mockLogger)
		defer engine.Shutdown()

		txn, err := engine.ApplyStatus(ctx,
			entity.RecordKey{ExternalRef: testExternalRef},
			entity.StatusRefunded,
			map[string]any{"refund_id": "re_1"},
		)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusRefunded, txn.Status)
	})

	t.Run("Store failure passes through unwrapped", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockLogger := quietLogger(t)

		mockRepo.EXPECT().Transition(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errs.ErrTransactionNotFound).Once()

		engine := NewEngine(mockRepo, nil, mockLogger)
		defer engine.Shutdown()

		txn, err := engine.ApplyStatus(ctx,
			entity.RecordKey{ExternalRef: testExternalRef},
			entity.StatusSucceeded, nil)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})
}

func TestSerializeKey(t *testing.T) {
	assert.Equal(t, "local:"+testLocalRef, serializeKey(entity.RecordKey{LocalID: testLocalRef}))
	assert.Equal(t, "external:"+testExternalRef, serializeKey(entity.RecordKey{ExternalRef: testExternalRef}))
}
