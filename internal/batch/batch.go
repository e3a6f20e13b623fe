package batch

import (
	"context"
	"fmt"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"

	"github.com/hedisam/pipeline/chans"

	"github.com/pharaohfi/nftmigrator/internal/calldata"
	"github.com/pharaohfi/nftmigrator/internal/store"
)

// zeroValue is the native token amount attached to every migration call.
const zeroValue = "0"

type Store interface {
	WriteBatch(ctx context.Context, batch *store.Batch) error
}

// Stats summarises a completed run.
type Stats struct {
	Batches      int
	Transactions int
}

// Batcher groups streamed calldata results into batches and flushes each one
// through the store.
type Batcher struct {
	logger  *logrus.Logger
	store   Store
	to      common.Address
	chainID string
	size    int
}

func New(logger *logrus.Logger, batchStore Store, to common.Address, chainID string, size int) *Batcher {
	return &Batcher{
		logger:  logger,
		store:   batchStore,
		to:      to,
		chainID: chainID,
		size:    size,
	}
}

// Run consumes the result stream until it is drained or the context is done.
// A full batch is flushed as soon as it reaches the configured size; a
// trailing partial batch is flushed once the stream ends. Store errors abort
// the run. On cancellation the pending partial batch is discarded.
func (b *Batcher) Run(ctx context.Context, in <-chan *calldata.Result) (Stats, error) {
	var stats Stats
	pending := make([]*calldata.Result, 0, b.size)

	for res := range chans.ReceiveOrDoneSeq(ctx, in) {
		pending = append(pending, res)
		if len(pending) < b.size {
			continue
		}

		err := b.flush(ctx, pending)
		if err != nil {
			return stats, err
		}
		stats.Batches++
		stats.Transactions += len(pending)
		pending = pending[:0]
	}

	if err := ctx.Err(); err != nil {
		return stats, err
	}

	if len(pending) > 0 {
		err := b.flush(ctx, pending)
		if err != nil {
			return stats, err
		}
		stats.Batches++
		stats.Transactions += len(pending)
	}

	return stats, nil
}

func (b *Batcher) flush(ctx context.Context, results []*calldata.Result) error {
	batch := &store.Batch{
		ChainID:      b.chainID,
		Transactions: make([]*store.Transaction, 0, len(results)),
		TokenIDs:     make([]uint64, 0, len(results)),
	}
	for res := range slices.Values(results) {
		batch.Transactions = append(batch.Transactions, &store.Transaction{
			To:    b.to.Hex(),
			Value: zeroValue,
			Data:  res.Data,
		})
		batch.TokenIDs = append(batch.TokenIDs, res.TokenID)
	}

	err := b.store.WriteBatch(ctx, batch)
	if err != nil {
		return fmt.Errorf("write batch of %d transactions: %w", len(results), err)
	}

	writtenBatches.Inc()
	batchedTransactions.Add(float64(len(results)))

	b.logger.WithFields(logrus.Fields{
		"token_ids":    batch.TokenIDs,
		"transactions": len(batch.Transactions),
	}).Info("Wrote transaction batch")

	return nil
}
