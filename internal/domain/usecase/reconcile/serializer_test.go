package reconcile

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amirhossein-jamali/payment-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-reconciler/internal/domain/error"
	"github.com/amirhossein-jamali/payment-reconciler/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializerSameRecordNeverOverlaps(t *testing.T) {
	serializer := NewSerializer(logger.NewNoopLogger())
	defer serializer.Shutdown()

	const workers = 32
	var (
		inFlight  int32
		completed int32
		wg        sync.WaitGroup
	)

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := serializer.Execute(context.Background(), "local:record-1",
				func(ctx context.Context) (*entity.Transaction, error) {
					if !atomic.CompareAndSwapInt32(&inFlight, 0, 1) {
						t.Error("two transitions for the same record ran concurrently")
					}
					time.Sleep(time.Millisecond)
					atomic.StoreInt32(&inFlight, 0)
					atomic.AddInt32(&completed, 1)
					return &entity.Transaction{}, nil
				})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(workers), atomic.LoadInt32(&completed))
}

func TestSerializerDifferentRecordsRunConcurrently(t *testing.T) {
	serializer := NewSerializer(logger.NewNoopLogger())
	defer serializer.Shutdown()

	firstStarted := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		_, err := serializer.Execute(context.Background(), "local:record-a",
			func(ctx context.Context) (*entity.Transaction, error) {
				close(firstStarted)
				<-release
				return &entity.Transaction{}, nil
			})
		assert.NoError(t, err)
	}()

	go func() {
		defer wg.Done()
		<-firstStarted
		// Runs while record-a's transition is still blocked.
		_, err := serializer.Execute(context.Background(), "local:record-b",
			func(ctx context.Context) (*entity.Transaction, error) {
				return &entity.Transaction{}, nil
			})
		assert.NoError(t, err)
		close(release)
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("records blocked each other; queues are not independent")
	}
}

func TestSerializerContextCanceledWhileWaiting(t *testing.T) {
	serializer := NewSerializer(logger.NewNoopLogger())
	defer serializer.Shutdown()

	release := make(chan struct{})
	started := make(chan struct{})

	go func() {
		_, _ = serializer.Execute(context.Background(), "local:record-1",
			func(ctx context.Context) (*entity.Transaction, error) {
				close(started)
				<-release
				return &entity.Transaction{}, nil
			})
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := serializer.Execute(ctx, "local:record-1",
		func(ctx context.Context) (*entity.Transaction, error) {
			return &entity.Transaction{}, nil
		})

	require.ErrorIs(t, err, context.Canceled)
	close(release)
}

func TestSerializerRejectsAfterShutdown(t *testing.T) {
	serializer := NewSerializer(logger.NewNoopLogger())
	serializer.Shutdown()

	_, err := serializer.Execute(context.Background(), "local:record-1",
		func(ctx context.Context) (*entity.Transaction, error) {
			return &entity.Transaction{}, nil
		})

	assert.ErrorIs(t, err, errs.ErrInternalServer)
}

func TestSerializerShutdownDrainsInFlightWork(t *testing.T) {
	serializer := NewSerializer(logger.NewNoopLogger())

	var completed int32
	var wg sync.WaitGroup
	wg.Add(8)
	for i := 0; i < 8; i++ {
		go func() {
			defer wg.Done()
			_, err := serializer.Execute(context.Background(), "local:record-1",
				func(ctx context.Context) (*entity.Transaction, error) {
					atomic.AddInt32(&completed, 1)
					return &entity.Transaction{}, nil
				})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	serializer.Shutdown()
	assert.Equal(t, int32(8), atomic.LoadInt32(&completed))

	// Idempotent
	serializer.Shutdown()
}

func TestSerializerShutdownConcurrentWithExecute(t *testing.T) {
	serializer := NewSerializer(logger.NewNoopLogger())

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			<-start
			for j := 0; j < 50; j++ {
				_, err := serializer.Execute(context.Background(),
					fmt.Sprintf("local:record-%d-%d", worker, j),
					func(ctx context.Context) (*entity.Transaction, error) {
						return &entity.Transaction{}, nil
					})
				if err != nil {
					// Once shutdown has begun, rejection is the only
					// acceptable outcome.
					assert.ErrorIs(t, err, errs.ErrInternalServer)
					return
				}
			}
		}(i)
	}

	close(start)
	time.Sleep(time.Millisecond)
	serializer.Shutdown()
	wg.Wait()
}
