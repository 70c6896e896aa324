package index

import (
	"context"
	"log/slog"
	"runtime"
	"slices"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/staffmatch/ai"
	"github.com/poiesic/staffmatch/core"
)

// Builder constructs snapshots from employee records. Embeddings are
// computed concurrently on a worker pool; a record whose embedding fails
// degrades to a zero vector and stays reachable through structured filters.
type Builder struct {
	embedder ai.Embedder
	poolSize int
	logger   *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(b *Builder) error {
		if size < 1 {
			size = 1
		}
		b.poolSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// NewBuilder creates a snapshot builder.
func NewBuilder(embedder ai.Embedder, opts ...Option) (*Builder, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	b := &Builder{
		embedder: embedder,
		poolSize: poolSize,
		logger:   slog.Default().With("component", "index-builder"),
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Build computes embeddings for all records and assembles a new snapshot.
// The input is defensively copied and sorted by ascending ID; a duplicate ID
// keeps the first occurrence and drops the rest. Build never mutates or
// replaces a published snapshot; the caller publishes the result when it is
// fully constructed.
func (b *Builder) Build(ctx context.Context, records []*core.EmployeeRecord) (*Snapshot, error) {
	sorted := make([]*core.EmployeeRecord, len(records))
	copy(sorted, records)
	slices.SortFunc(sorted, func(x, y *core.EmployeeRecord) int {
		if x.Id < y.Id {
			return -1
		}
		if x.Id > y.Id {
			return 1
		}
		return 0
	})

	deduped := sorted[:0]
	var lastID core.ID
	for _, record := range sorted {
		if len(deduped) > 0 && record.Id == lastID {
			b.logger.Warn("dropping duplicate record id", "id", record.Id, "name", record.Name)
			continue
		}
		deduped = append(deduped, record)
		lastID = record.Id
	}

	if len(deduped) == 0 {
		b.logger.Info("building empty snapshot")
		return &Snapshot{byID: map[core.ID]int{}}, nil
	}

	vectors, dim, err := b.embedAll(ctx, deduped)
	if err != nil {
		return nil, err
	}

	byID := make(map[core.ID]int, len(deduped))
	for i, record := range deduped {
		byID[record.Id] = i
	}

	snapshot := &Snapshot{
		fingerprint: core.FingerprintRecords(deduped),
		records:     deduped,
		vectors:     vectors,
		byID:        byID,
		dim:         dim,
	}

	b.logger.Info("built snapshot",
		"records", len(deduped),
		"dim", dim,
		"fingerprint", uint64(snapshot.fingerprint))
	return snapshot, nil
}

// embedAll computes one unit vector per record on the worker pool.
// Only context cancellation aborts the build; an embedding failure for a
// single record logs and degrades to a zero vector.
func (b *Builder) embedAll(ctx context.Context, records []*core.EmployeeRecord) ([][]float32, int, error) {
	pool, err := ants.NewPool(b.poolSize)
	if err != nil {
		return nil, 0, err
	}
	defer pool.Release()

	vectors := make([][]float32, len(records))
	var wg sync.WaitGroup

	for i, record := range records {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			text := record.ProfileText()
			vector, err := b.embedder.EmbedText(ctx, text)
			if err != nil || len(vector) == 0 {
				b.logger.Warn("embedding failed, degrading to zero vector",
					"id", record.Id, "name", record.Name, "err", err)
				vectors[i] = nil
				return
			}
			vectors[i] = NormalizeVector(vector)
		})
		if submitErr != nil {
			wg.Done()
			b.logger.Error("failed to submit embedding task", "id", record.Id, "err", submitErr)
			vectors[i] = nil
		}
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	// Fix the dimension from the first successful embedding; failed records
	// get a zero vector of the same dimension.
	dim := 0
	for _, v := range vectors {
		if len(v) > 0 {
			dim = len(v)
			break
		}
	}
	for i, v := range vectors {
		if len(v) == 0 {
			vectors[i] = make([]float32, dim)
		}
	}

	return vectors, dim, nil
}
