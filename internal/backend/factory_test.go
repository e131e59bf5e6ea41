package backend

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"festival/internal/config"
	"festival/internal/core"
	"festival/internal/log"
	"festival/internal/storage/memory"
)

var dbSeq int64

func TestBackendType_IsValid(t *testing.T) {
	for _, bt := range GetBackendTypes() {
		require.True(t, bt.IsValid(), bt)
	}
	require.False(t, BackendType("sheets").IsValid())
	require.False(t, BackendType("").IsValid())
}

func TestFromAppConfig(t *testing.T) {
	req := require.New(t)

	_, err := FromAppConfig(nil)
	req.Error(err)

	_, err = FromAppConfig(&config.Config{DataBackend: "mysql"})
	req.ErrorContains(err, "invalid backend type")

	cfg, err := FromAppConfig(&config.Config{
		DataBackend:        "postgres",
		DatabaseURL:        "postgres://u:p@db/festival",
		SnapshotAggregates: true,
		AMQPURL:            "amqp://guest:guest@mq/",
		AMQPExchange:       "festival",
		AMQPQueue:          "mirror_records",
	})
	req.NoError(err)
	req.Equal(PostgresBackend, cfg.Type)
	req.Equal("postgres://u:p@db/festival", cfg.DSN)
	req.True(cfg.Snapshots)
	req.Equal("mirror_records", cfg.AMQPQueue)
}

func TestCreateBackend_Memory(t *testing.T) {
	req := require.New(t)
	res, err := NewFactory(log.Discard()).CreateBackend(context.Background(), Config{Type: MemoryBackend})
	req.NoError(err)
	req.IsType(&memory.Store{}, res.Repository)
	req.Nil(res.Publisher)
	req.NoError(res.Cleanup())
}

func TestCreateBackend_SQLite(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	dsn := fmt.Sprintf("file:backend_%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))

	res, err := NewFactory(nil).CreateBackend(ctx, Config{Type: SQLiteBackend, DSN: dsn})
	req.NoError(err)
	t.Cleanup(func() { _ = res.Cleanup() })

	amount, err := core.ParseMoney("2500")
	req.NoError(err)
	_, err = res.Repository.CreateDonor(ctx, core.DonorFields{Name: "Kunal Patil", Amount: amount})
	req.NoError(err)

	total, err := res.Repository.SumDonations(ctx)
	req.NoError(err)
	req.Equal("2500.00", total.String())
}

func TestCreateBackend_Errors(t *testing.T) {
	f := NewFactory(log.Discard())
	ctx := context.Background()

	_, err := f.CreateBackend(ctx, Config{Type: "sheets"})
	require.ErrorContains(t, err, "invalid backend type")

	_, err = f.CreateBackend(ctx, Config{Type: SQLiteBackend})
	require.ErrorContains(t, err, "requires a DSN")
}
