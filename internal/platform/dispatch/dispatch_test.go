package dispatch

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"meanin/internal/platform/testkit"

	"github.com/rs/zerolog"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) { goleak.VerifyTestMain(m) }

func quiet() zerolog.Logger { return zerolog.New(io.Discard) }

func TestTasksOutliveRequestCancellation(t *testing.T) {
	d := New(Options{Workers: 2, Queue: 8, Timeout: time.Second}, quiet())

	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})
	var sawErr atomic.Value
	if !d.Go(ctx, "decode-log", func(ctx context.Context) error {
		close(started)
		time.Sleep(20 * time.Millisecond)
		sawErr.Store(ctx.Err() == nil)
		return nil
	}) {
		t.Fatal("enqueue failed")
	}
	cancel()
	<-started

	if err := d.Close(context.Background()); err != nil {
		t.Fatal(err)
	}
	if ok, _ := sawErr.Load().(bool); !ok {
		t.Fatal("task context was cancelled with the request")
	}
}

func TestFailuresAndPanicsAreContained(t *testing.T) {
	d := New(Options{Workers: 1, Queue: 4}, quiet())
	var ran atomic.Int32
	d.Go(context.Background(), "bump", func(context.Context) error { ran.Add(1); return errors.New("pg down") })
	d.Go(context.Background(), "boom", func(context.Context) error { ran.Add(1); panic("kaput") })
	d.Go(context.Background(), "after", func(context.Context) error { ran.Add(1); return nil })

	testkit.Eventually(t, time.Second, func() bool { return ran.Load() == 3 })
	if err := d.Close(context.Background()); err != nil {
		t.Fatal(err)
	}
}

func TestTimeoutApplies(t *testing.T) {
	d := New(Options{Workers: 1, Queue: 1, Timeout: 10 * time.Millisecond}, quiet())
	done := make(chan error, 1)
	d.Go(context.Background(), "slow", func(ctx context.Context) error {
		<-ctx.Done()
		done <- ctx.Err()
		return ctx.Err()
	})
	if err := <-done; !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v", err)
	}
	_ = d.Close(context.Background())
}

func TestFullQueueDropsAndClosedRejects(t *testing.T) {
	d := New(Options{Workers: 1, Queue: 1}, quiet())
	block := make(chan struct{})
	running := make(chan struct{})
	d.Go(context.Background(), "hold", func(context.Context) error {
		close(running)
		<-block
		return nil
	})
	<-running
	if !d.Go(context.Background(), "queued", func(context.Context) error { return nil }) {
		t.Fatal("free slot should accept")
	}
	if d.Go(context.Background(), "overflow", func(context.Context) error { return nil }) {
		t.Fatal("full queue with busy worker must drop")
	}
	close(block)

	if err := d.Close(context.Background()); err != nil {
		t.Fatal(err)
	}
	if d.Go(context.Background(), "late", func(context.Context) error { return nil }) {
		t.Fatal("closed dispatcher accepted a task")
	}
	if !errors.Is(d.Close(context.Background()), ErrClosed) {
		t.Fatal("second close should report ErrClosed")
	}
}
