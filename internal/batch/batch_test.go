package batch_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharaohfi/nftmigrator/internal/batch"
	"github.com/pharaohfi/nftmigrator/internal/batch/mocks"
	"github.com/pharaohfi/nftmigrator/internal/calldata"
	"github.com/pharaohfi/nftmigrator/internal/store"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure . Store

var testLoanContract = common.HexToAddress("0xf6A044c3b2a3373eF2909E2474f3229f23279B5F")

func TestRun(t *testing.T) {
	tests := map[string]struct {
		results               []*calldata.Result
		storeErr              error
		expectedBatchTokenIDs [][]uint64
		expectedStats         batch.Stats
		errContains           string
	}{
		"full batch plus trailing partial": {
			results: results(5959, 5961, 6335, 6524, 4593, 5603),
			expectedBatchTokenIDs: [][]uint64{
				{5959, 5961, 6335, 6524, 4593},
				{5603},
			},
			expectedStats: batch.Stats{Batches: 2, Transactions: 6},
		},
		"exact multiple of the batch size": {
			results: results(5959, 5961, 6335, 6524, 4593),
			expectedBatchTokenIDs: [][]uint64{
				{5959, 5961, 6335, 6524, 4593},
			},
			expectedStats: batch.Stats{Batches: 1, Transactions: 5},
		},
		"fewer results than one batch": {
			results: results(5959, 5961),
			expectedBatchTokenIDs: [][]uint64{
				{5959, 5961},
			},
			expectedStats: batch.Stats{Batches: 1, Transactions: 2},
		},
		"no results": {
			results:       nil,
			expectedStats: batch.Stats{},
		},
		"store failure aborts the run": {
			results:               results(5959, 5961, 6335, 6524, 4593, 5603),
			storeErr:              errors.New("disk full"),
			expectedBatchTokenIDs: [][]uint64{{5959, 5961, 6335, 6524, 4593}},
			expectedStats:         batch.Stats{},
			errContains:           "disk full",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			storeMock := &mocks.StoreMock{
				WriteBatchFunc: func(ctx context.Context, batch *store.Batch) error {
					return test.storeErr
				},
			}

			b := batch.New(logrus.New(), storeMock, testLoanContract, "43114", 5)
			stats, err := b.Run(context.Background(), stream(test.results...))

			calls := storeMock.WriteBatchCalls()
			require.Len(t, calls, len(test.expectedBatchTokenIDs))
			for i, expectedTokenIDs := range test.expectedBatchTokenIDs {
				written := calls[i].Batch
				assert.Equal(t, "43114", written.ChainID)
				assert.Equal(t, expectedTokenIDs, written.TokenIDs)
				require.Len(t, written.Transactions, len(expectedTokenIDs))
				for j, tx := range written.Transactions {
					assert.Equal(t, testLoanContract.Hex(), tx.To)
					assert.Equal(t, "0", tx.Value)
					assert.Equal(t, calldataFor(expectedTokenIDs[j]), tx.Data)
				}
			}

			assert.Equal(t, test.expectedStats, stats)
			if test.errContains != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, test.errContains)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRunDiscardsPartialBatchOnCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	storeMock := &mocks.StoreMock{
		WriteBatchFunc: func(ctx context.Context, batch *store.Batch) error {
			return nil
		},
	}

	b := batch.New(logrus.New(), storeMock, testLoanContract, "43114", 5)
	// an open, empty stream: the cancelled context is the only way out
	stats, err := b.Run(ctx, make(chan *calldata.Result))

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, storeMock.WriteBatchCalls())
	assert.Equal(t, batch.Stats{}, stats)
}

func stream(results ...*calldata.Result) <-chan *calldata.Result {
	ch := make(chan *calldata.Result, len(results))
	for _, res := range results {
		ch <- res
	}
	close(ch)
	return ch
}

func results(tokenIDs ...uint64) []*calldata.Result {
	out := make([]*calldata.Result, 0, len(tokenIDs))
	for _, id := range tokenIDs {
		out = append(out, &calldata.Result{TokenID: id, Data: calldataFor(id)})
	}
	return out
}

func calldataFor(tokenID uint64) string {
	return fmt.Sprintf("0x%016x", tokenID)
}
