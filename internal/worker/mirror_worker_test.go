package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"festival/internal/amqp"
	"festival/internal/core"
	"festival/internal/log"
	"festival/internal/mocks"
	sheetsmem "festival/internal/sheets/memory"
	storemem "festival/internal/storage/memory"
)

func seededStore(t *testing.T) *storemem.Store {
	t.Helper()
	req := require.New(t)
	store := storemem.New()
	ctx := context.Background()

	_, err := store.CreateDonor(ctx, core.DonorFields{Name: "Ravi", Amount: core.MoneyFromCents(250000)})
	req.NoError(err)
	_, err = store.CreateDonor(ctx, core.DonorFields{Name: "Meena", Amount: core.MoneyFromCents(252500)})
	req.NoError(err)
	_, err = store.CreateExpense(ctx, core.ExpenseFields{Description: "Tent", Amount: core.MoneyFromCents(1500000)})
	req.NoError(err)
	return store
}

func TestHandleRecordChanged(t *testing.T) {
	tests := []struct {
		name         string
		kind         string
		wantDonors   int
		wantExpenses int
		wantWrites   int
	}{
		{"donor change mirrors donors", core.KindDonor, 2, 0, 1},
		{"expense change mirrors expenses", core.KindExpense, 0, 1, 1},
		{"unknown kind is ignored", "pledge", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			mirror := sheetsmem.New()
			w := NewMirrorWorker(seededStore(t), mirror, 0, log.Discard())

			err := w.HandleRecordChanged(context.Background(), amqp.NewRecordChanged(tt.kind, amqp.OpCreated, 1))
			req.NoError(err)
			req.Len(mirror.Donors(), tt.wantDonors)
			req.Len(mirror.Expenses(), tt.wantExpenses)
			req.Equal(tt.wantWrites, mirror.Writes())
		})
	}
}

func TestMirrorAll(t *testing.T) {
	req := require.New(t)
	mirror := sheetsmem.New()
	w := NewMirrorWorker(seededStore(t), mirror, 0, nil)

	req.NoError(w.MirrorAll(context.Background()))
	req.Len(mirror.Donors(), 2)
	req.Len(mirror.Expenses(), 1)
	req.Equal(2, mirror.Writes())
}

func TestMirrorDonors_SourceError(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	repo.EXPECT().ListDonors(gomock.Any(), core.DonorFilter{}).Return(nil, errors.New("db down"))

	mirror := sheetsmem.New()
	w := NewMirrorWorker(repo, mirror, 0, log.Discard())

	err := w.MirrorDonors(context.Background())
	req.ErrorContains(err, "list donors")
	req.Zero(mirror.Writes())
}

type failingWriter struct{}

func (failingWriter) WriteDonors(context.Context, []core.Donor) error     { return errors.New("quota") }
func (failingWriter) WriteExpenses(context.Context, []core.Expense) error { return errors.New("quota") }

func TestMirrorAll_WriterError(t *testing.T) {
	w := NewMirrorWorker(seededStore(t), failingWriter{}, 0, log.Discard())
	require.ErrorContains(t, w.MirrorAll(context.Background()), "quota")
}

// fakeConsumer replays its events then blocks until cancelled.
type fakeConsumer struct {
	events []*amqp.RecordChanged
	err    error
}

func (c *fakeConsumer) Consume(ctx context.Context, handler func(context.Context, *amqp.RecordChanged) error) error {
	for _, ev := range c.events {
		if err := handler(ctx, ev); err != nil {
			return err
		}
	}
	if c.err != nil {
		return c.err
	}
	<-ctx.Done()
	return ctx.Err()
}

func TestRun_ConsumesUntilCancelled(t *testing.T) {
	req := require.New(t)
	mirror := sheetsmem.New()
	w := NewMirrorWorker(seededStore(t), mirror, time.Hour, log.Discard())

	consumer := &fakeConsumer{events: []*amqp.RecordChanged{
		amqp.NewRecordChanged(core.KindDonor, amqp.OpUpdated, 1),
		amqp.NewRecordChanged(core.KindExpense, amqp.OpDeleted, 1),
	}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, consumer) }()

	// startup mirror writes both tables, then one write per event
	req.Eventually(func() bool { return mirror.Writes() == 4 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_ConsumerFailure(t *testing.T) {
	w := NewMirrorWorker(seededStore(t), sheetsmem.New(), 0, log.Discard())
	err := w.Run(context.Background(), &fakeConsumer{err: errors.New("channel closed")})
	require.ErrorContains(t, err, "channel closed")
}

func TestRun_StartupFailureIsNotFatal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w := NewMirrorWorker(seededStore(t), failingWriter{}, time.Hour, log.Discard())
	require.NoError(t, w.Run(ctx, nil))
}
