package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/pharaohfi/nftmigrator/internal/store"
)

const (
	filePrefix = "migrate_tokens_"
	fileSuffix = ".json"
)

type config struct {
	dir string
}

type Option func(*config)

// WithDir writes batch files to the given directory instead of the working
// directory.
func WithDir(dir string) Option {
	return func(c *config) {
		if dir != "" {
			c.dir = dir
		}
	}
}

// BatchStore writes each batch as one JSON file named after its token IDs.
type BatchStore struct {
	dir string
}

func NewBatchStore(opts ...Option) *BatchStore {
	cfg := &config{dir: "."}
	for opt := range slices.Values(opts) {
		opt(cfg)
	}

	return &BatchStore{dir: cfg.dir}
}

// WriteBatch serializes the batch and writes it to disk.
func (s *BatchStore) WriteBatch(_ context.Context, batch *store.Batch) error {
	data, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal batch: %w", err)
	}

	path := filepath.Join(s.dir, Filename(batch.TokenIDs))
	err = os.WriteFile(path, data, 0o644)
	if err != nil {
		return fmt.Errorf("write batch file %q: %w", path, err)
	}

	return nil
}

// Filename returns the output file name for a batch of token IDs,
// e.g. migrate_tokens_5959_5961.json.
func Filename(tokenIDs []uint64) string {
	ids := make([]string, 0, len(tokenIDs))
	for id := range slices.Values(tokenIDs) {
		ids = append(ids, strconv.FormatUint(id, 10))
	}

	return filePrefix + strings.Join(ids, "_") + fileSuffix
}
