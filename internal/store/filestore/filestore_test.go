package filestore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharaohfi/nftmigrator/internal/store"
	"github.com/pharaohfi/nftmigrator/internal/store/filestore"
)

func TestFilename(t *testing.T) {
	tests := map[string]struct {
		tokenIDs []uint64
		expected string
	}{
		"single token": {
			tokenIDs: []uint64{5603},
			expected: "migrate_tokens_5603.json",
		},
		"full batch": {
			tokenIDs: []uint64{5959, 5961, 6335, 6524, 4593},
			expected: "migrate_tokens_5959_5961_6335_6524_4593.json",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expected, filestore.Filename(test.tokenIDs))
		})
	}
}

func TestWriteBatch(t *testing.T) {
	dir := t.TempDir()
	s := filestore.NewBatchStore(filestore.WithDir(dir))

	err := s.WriteBatch(context.Background(), &store.Batch{
		ChainID: "43114",
		Transactions: []*store.Transaction{
			{
				To:    "0xf6A044c3b2a3373eF2909E2474f3229f23279B5F",
				Value: "0",
				Data:  "0xdeadbeef",
			},
			{
				To:    "0xf6A044c3b2a3373eF2909E2474f3229f23279B5F",
				Value: "0",
				Data:  "0xcafebabe",
			},
		},
		TokenIDs: []uint64{5959, 5961},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "migrate_tokens_5959_5961.json"))
	require.NoError(t, err)

	expected := `{
  "chainId": "43114",
  "transactions": [
    {
      "to": "0xf6A044c3b2a3373eF2909E2474f3229f23279B5F",
      "value": "0",
      "data": "0xdeadbeef"
    },
    {
      "to": "0xf6A044c3b2a3373eF2909E2474f3229f23279B5F",
      "value": "0",
      "data": "0xcafebabe"
    }
  ]
}`
	assert.Equal(t, expected, string(data))
}

func TestWriteBatchFailsOnMissingDir(t *testing.T) {
	s := filestore.NewBatchStore(filestore.WithDir(filepath.Join(t.TempDir(), "does-not-exist")))

	err := s.WriteBatch(context.Background(), &store.Batch{
		ChainID:      "43114",
		Transactions: []*store.Transaction{{To: "0x0", Value: "0", Data: "0x00"}},
		TokenIDs:     []uint64{5959},
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "write batch file")
}
