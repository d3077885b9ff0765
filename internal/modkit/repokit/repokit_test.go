package repokit

import (
	"context"
	"errors"
	"testing"

	"meanin/internal/platform/testkit"
)

type countRepo struct{ q Queryer }

type fakeTx struct {
	TxRunner
	calls int
}

func (f *fakeTx) Tx(_ context.Context, fn func(Queryer) error) error {
	f.calls++
	return fn(f)
}

type guardFunc func(context.Context) error

func (g guardFunc) Guard(ctx context.Context) error { return g(ctx) }

func TestWithTxBindsToTx(t *testing.T) {
	tx := &fakeTx{}
	b := BindFunc[countRepo](func(q Queryer) countRepo { return countRepo{q: q} })

	err := WithTx(context.Background(), tx, b, func(r countRepo) error {
		if r.q != tx {
			t.Fatal("repo not bound to tx querier")
		}
		return errors.New("rollback")
	})
	if err == nil || tx.calls != 1 {
		t.Fatalf("err=%v calls=%d", err, tx.calls)
	}
}

func TestMustGuard(t *testing.T) {
	MustGuard(context.Background(), guardFunc(func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); !ok {
			t.Fatal("guard should run with a deadline")
		}
		return nil
	}))
	testkit.MustPanic(t, func() {
		MustGuard(context.Background(), guardFunc(func(context.Context) error { return errors.New("pg down") }))
	})
}
