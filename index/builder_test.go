package index

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/poiesic/staffmatch/ai/mock"
	"github.com/poiesic/staffmatch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builderRecords() []*core.EmployeeRecord {
	return []*core.EmployeeRecord{
		{Id: 3, Name: "Carol", Skills: []string{"Python"}, Availability: core.AvailabilityAvailable},
		{Id: 1, Name: "Alice", Skills: []string{"Go"}, Availability: core.AvailabilityAvailable},
		{Id: 2, Name: "Bob", Skills: []string{"Java"}, Availability: core.AvailabilityBusy},
	}
}

func TestNewBuilder(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		builder, err := NewBuilder(mock.NewMockEmbedder())
		require.NoError(t, err)
		assert.NotNil(t, builder)
	})

	t.Run("nil embedder", func(t *testing.T) {
		_, err := NewBuilder(nil)
		assert.Equal(t, ErrEmbedderRequired, err)
	})

	t.Run("pool size floor", func(t *testing.T) {
		builder, err := NewBuilder(mock.NewMockEmbedder(), WithPoolSize(0))
		require.NoError(t, err)
		assert.NotNil(t, builder)
	})
}

func TestBuild_SortsAndIndexesRecords(t *testing.T) {
	builder, err := NewBuilder(mock.NewMockEmbedder())
	require.NoError(t, err)

	snapshot, err := builder.Build(context.Background(), builderRecords())
	require.NoError(t, err)

	require.Equal(t, 3, snapshot.Len())
	records := snapshot.Records()
	assert.Equal(t, core.ID(1), records[0].Id)
	assert.Equal(t, core.ID(2), records[1].Id)
	assert.Equal(t, core.ID(3), records[2].Id)

	assert.Equal(t, "Bob", snapshot.Record(2).Name)
	assert.Nil(t, snapshot.Record(42))
	assert.Positive(t, snapshot.Dim())
	assert.NotZero(t, snapshot.Fingerprint())
}

func TestBuild_EmptyInput(t *testing.T) {
	builder, err := NewBuilder(mock.NewMockEmbedder())
	require.NoError(t, err)

	snapshot, err := builder.Build(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, snapshot.Len())
	assert.Zero(t, snapshot.Dim())
	assert.Empty(t, snapshot.Search([]float32{1, 0}, 5))
}

func TestBuild_DropsDuplicateIds(t *testing.T) {
	builder, err := NewBuilder(mock.NewMockEmbedder())
	require.NoError(t, err)

	records := append(builderRecords(),
		&core.EmployeeRecord{Id: 2, Name: "Bob Duplicate", Skills: []string{"Java"}, Availability: core.AvailabilityBusy})

	snapshot, err := builder.Build(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, 3, snapshot.Len())
	assert.Equal(t, "Bob", snapshot.Record(2).Name, "first occurrence wins")
}

func TestBuild_DeterministicFingerprint(t *testing.T) {
	builder, err := NewBuilder(mock.NewMockEmbedder())
	require.NoError(t, err)

	ctx := context.Background()
	first, err := builder.Build(ctx, builderRecords())
	require.NoError(t, err)
	second, err := builder.Build(ctx, builderRecords())
	require.NoError(t, err)

	assert.Equal(t, first.Fingerprint(), second.Fingerprint())

	// Insertion order must not matter
	shuffled := builderRecords()
	shuffled[0], shuffled[2] = shuffled[2], shuffled[0]
	third, err := builder.Build(ctx, shuffled)
	require.NoError(t, err)
	assert.Equal(t, first.Fingerprint(), third.Fingerprint())
}

func TestBuild_EmbeddingFailureDegradesToZeroVector(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		if strings.Contains(text, "Bob") {
			return nil, errors.New("embedding service unavailable")
		}
		return []float32{1, 0, 0}, nil
	}

	builder, err := NewBuilder(embedder)
	require.NoError(t, err)

	snapshot, err := builder.Build(context.Background(), builderRecords())
	require.NoError(t, err, "a single failed embedding must not fail the build")
	require.Equal(t, 3, snapshot.Len())
	assert.Equal(t, 3, snapshot.Dim())

	// The degraded record scores zero similarity but stays in the snapshot.
	results := snapshot.Search([]float32{1, 0, 0}, 3)
	require.Len(t, results, 3)
	for _, result := range results {
		if result.Record.Id == 2 {
			assert.Zero(t, result.Similarity)
		} else {
			assert.InDelta(t, 1.0, result.Similarity, 1e-5)
		}
	}
}

func TestBuild_CancelledContext(t *testing.T) {
	builder, err := NewBuilder(mock.NewMockEmbedder())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = builder.Build(ctx, builderRecords())
	assert.ErrorIs(t, err, context.Canceled)
}
