package search

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/poiesic/staffmatch/ai/mock"
	"github.com/poiesic/staffmatch/core"
	"github.com/poiesic/staffmatch/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []*core.EmployeeRecord {
	return []*core.EmployeeRecord{
		{
			Id:              1,
			Name:            "Alice Johnson",
			Skills:          []string{"Python", "Django", "PostgreSQL"},
			ExperienceYears: 6,
			Projects:        []string{"Billing Platform"},
			Availability:    core.AvailabilityAvailable,
			Department:      "Engineering",
			Specialization:  "Backend Development",
		},
		{
			Id:              2,
			Name:            "Bob Smith",
			Skills:          []string{"Java", "Spring", "Kubernetes"},
			ExperienceYears: 9,
			Projects:        []string{"Order Service"},
			Availability:    core.AvailabilityBusy,
			Department:      "Engineering",
			Specialization:  "Platform Engineering",
		},
		{
			Id:              3,
			Name:            "Carol Davis",
			Skills:          []string{"Python", "TensorFlow", "MLOps"},
			ExperienceYears: 3,
			Projects:        []string{"Churn Model"},
			Availability:    core.AvailabilityAvailable,
			Department:      "Data Science",
			Specialization:  "Machine Learning",
		},
	}
}

// skillVector embeds profile and query texts along fixed skill axes so
// similarity ordering in tests is fully controlled.
func skillVector(text string) []float32 {
	lower := strings.ToLower(text)
	v := []float32{0, 0, 0.1}
	if strings.Contains(lower, "python") {
		v[0] = 1
	}
	if strings.Contains(lower, "java") {
		v[1] = 1
	}
	return v
}

func buildHolder(t *testing.T, embedder *mock.MockEmbedder, records []*core.EmployeeRecord) *index.Holder {
	t.Helper()

	builder, err := index.NewBuilder(embedder)
	require.NoError(t, err)

	snapshot, err := builder.Build(context.Background(), records)
	require.NoError(t, err)

	holder := index.NewHolder()
	holder.Publish(snapshot)
	return holder
}

func TestNewSearcher(t *testing.T) {
	holder := index.NewHolder()
	embedder := mock.NewMockEmbedder()

	t.Run("valid configuration", func(t *testing.T) {
		searcher, err := NewSearcher(holder, embedder)
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("with custom logger", func(t *testing.T) {
		searcher, err := NewSearcher(holder, embedder, WithLogger(slog.Default()))
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		searcher, err := NewSearcher(holder, embedder, WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("nil holder", func(t *testing.T) {
		_, err := NewSearcher(nil, embedder)
		assert.Equal(t, ErrHolderRequired, err)
	})

	t.Run("nil embedder", func(t *testing.T) {
		_, err := NewSearcher(holder, nil)
		assert.Equal(t, ErrEmbedderRequired, err)
	})

	t.Run("weights must sum to one", func(t *testing.T) {
		_, err := NewSearcher(holder, embedder, WithWeights(0.5, 0.6))
		assert.Equal(t, ErrInvalidWeights, err)
	})

	t.Run("negative weight", func(t *testing.T) {
		_, err := NewSearcher(holder, embedder, WithWeights(-0.2, 1.2))
		assert.Equal(t, ErrInvalidWeights, err)
	})

	t.Run("non-positive result limit", func(t *testing.T) {
		_, err := NewSearcher(holder, embedder, WithResultLimit(0))
		assert.Equal(t, ErrInvalidLimit, err)
	})

	t.Run("non-positive top k", func(t *testing.T) {
		_, err := NewSearcher(holder, embedder, WithTopK(-1))
		assert.Equal(t, ErrInvalidLimit, err)
	})
}

func TestSearch_EmptyDirectory(t *testing.T) {
	holder := index.NewHolder()
	embedder := mock.NewMockEmbedder()

	searcher, err := NewSearcher(holder, embedder)
	require.NoError(t, err)

	results, err := searcher.Search(context.Background(), "python developer", nil)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Zero(t, embedder.CallCount(), "empty snapshot should short-circuit before embedding")
}

func TestSearch_SemanticOrdering(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return skillVector(text), nil
	}
	holder := buildHolder(t, embedder, testRecords())

	searcher, err := NewSearcher(holder, embedder)
	require.NoError(t, err)

	results, err := searcher.Search(context.Background(), "python developer", nil)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	assert.Equal(t, core.ID(1), results[0].Record.Id)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestSearch_HardFilterExcludesNonMatching(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return skillVector(text), nil
	}
	holder := buildHolder(t, embedder, testRecords())

	searcher, err := NewSearcher(holder, embedder)
	require.NoError(t, err)

	filters := &core.QueryFilters{Skills: []string{"Python"}}
	results, err := searcher.Search(context.Background(), "engineer", filters)
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, result := range results {
		assert.True(t, result.Record.HasSkill("Python"))
		assert.True(t, result.FilterMatch)
		assert.NotEqual(t, core.ID(2), result.Record.Id)
	}
}

func TestSearch_MultipleSkillsMustAllMatch(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	holder := buildHolder(t, embedder, testRecords())

	searcher, err := NewSearcher(holder, embedder)
	require.NoError(t, err)

	filters := &core.QueryFilters{Skills: []string{"Python", "TensorFlow"}}
	results, err := searcher.Search(context.Background(), "model work", filters)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, core.ID(3), results[0].Record.Id)
}

func TestSearch_ExperienceBounds(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	holder := buildHolder(t, embedder, testRecords())

	searcher, err := NewSearcher(holder, embedder)
	require.NoError(t, err)

	min := 5
	results, err := searcher.Search(context.Background(), "", &core.QueryFilters{ExperienceMin: &min})
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, result := range results {
		assert.GreaterOrEqual(t, result.Record.ExperienceYears, 5)
	}
}

func TestSearch_ContradictoryFiltersYieldEmpty(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	holder := buildHolder(t, embedder, testRecords())

	searcher, err := NewSearcher(holder, embedder)
	require.NoError(t, err)

	min, max := 10, 2
	filters := &core.QueryFilters{ExperienceMin: &min, ExperienceMax: &max}
	results, err := searcher.Search(context.Background(), "anyone", filters)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_EmbeddingFailureDegradesToFilters(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	holder := buildHolder(t, embedder, testRecords())

	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("embedding service unavailable")
	}

	searcher, err := NewSearcher(holder, embedder)
	require.NoError(t, err)

	filters := &core.QueryFilters{Department: "Data Science"}
	results, err := searcher.Search(context.Background(), "ml expert", filters)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, core.ID(3), results[0].Record.Id)
	assert.Zero(t, results[0].Similarity)
	assert.Positive(t, results[0].Score, "filter score keeps the record rankable")
}

func TestSearch_ResultLimit(t *testing.T) {
	records := make([]*core.EmployeeRecord, 0, 8)
	for i := 1; i <= 8; i++ {
		records = append(records, &core.EmployeeRecord{
			Id:              core.ID(i),
			Name:            "Employee",
			Skills:          []string{"Go"},
			ExperienceYears: i,
			Availability:    core.AvailabilityAvailable,
			Department:      "Engineering",
		})
	}

	embedder := mock.NewMockEmbedder()
	holder := buildHolder(t, embedder, records)

	t.Run("default limit", func(t *testing.T) {
		searcher, err := NewSearcher(holder, embedder)
		require.NoError(t, err)

		results, err := searcher.Search(context.Background(), "go developer", nil)
		require.NoError(t, err)
		assert.Len(t, results, DefaultResultLimit)
	})

	t.Run("custom limit", func(t *testing.T) {
		searcher, err := NewSearcher(holder, embedder, WithResultLimit(2))
		require.NoError(t, err)

		results, err := searcher.Search(context.Background(), "go developer", nil)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("top k bounds retrieval before the limit", func(t *testing.T) {
		searcher, err := NewSearcher(holder, embedder, WithTopK(3), WithResultLimit(5))
		require.NoError(t, err)

		results, err := searcher.Search(context.Background(), "go developer", nil)
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})
}

func TestSearch_DeterministicTieBreak(t *testing.T) {
	records := []*core.EmployeeRecord{
		{Id: 7, Name: "Second", Skills: []string{"Go"}, ExperienceYears: 4, Availability: core.AvailabilityAvailable},
		{Id: 2, Name: "First", Skills: []string{"Go"}, ExperienceYears: 4, Availability: core.AvailabilityAvailable},
	}

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		// Identical vectors force a score tie.
		return []float32{1, 0, 0}, nil
	}
	holder := buildHolder(t, embedder, records)

	searcher, err := NewSearcher(holder, embedder)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		results, err := searcher.Search(context.Background(), "go developer", nil)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, core.ID(2), results[0].Record.Id)
		assert.Equal(t, core.ID(7), results[1].Record.Id)
	}
}

func TestSearch_ExtractedConstraintsInfluenceRanking(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		// Flat vectors so ranking differences come from extraction alone.
		return []float32{0, 0, 1}, nil
	}
	holder := buildHolder(t, embedder, testRecords())

	searcher, err := NewSearcher(holder, embedder)
	require.NoError(t, err)

	results, err := searcher.Search(context.Background(), "python developer in data science", nil)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Carol satisfies both the extracted skill and department; Alice only the
	// skill; Bob neither. Extraction never excludes anyone.
	assert.Equal(t, core.ID(3), results[0].Record.Id)
	assert.Equal(t, core.ID(1), results[1].Record.Id)
	assert.Equal(t, core.ID(2), results[2].Record.Id)
}

func TestSearch_ExplicitFilterNotDoubleCounted(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{0, 0, 1}, nil
	}
	holder := buildHolder(t, embedder, testRecords())

	searcher, err := NewSearcher(holder, embedder)
	require.NoError(t, err)

	ctx := context.Background()
	filters := &core.QueryFilters{Skills: []string{"Python"}}

	// The query mentions the same skill the caller filtered on. The overlap
	// is dropped, so scores match a query that never mentioned it.
	withMention, err := searcher.Search(ctx, "python developer", filters)
	require.NoError(t, err)
	plain, err := searcher.Search(ctx, "developer", filters)
	require.NoError(t, err)

	require.Len(t, withMention, 2)
	require.Len(t, plain, 2)
	for i := range withMention {
		assert.Equal(t, plain[i].Record.Id, withMention[i].Record.Id)
		assert.InDelta(t, plain[i].FilterScore, withMention[i].FilterScore, 1e-6)
	}
}

func TestSearch_MinSimilarityFloor(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return skillVector(text), nil
	}
	holder := buildHolder(t, embedder, testRecords())

	searcher, err := NewSearcher(holder, embedder, WithMinSimilarity(0.9))
	require.NoError(t, err)

	t.Run("floor drops weak semantic matches", func(t *testing.T) {
		results, err := searcher.Search(context.Background(), "python developer", nil)
		require.NoError(t, err)
		require.NotEmpty(t, results)
		for _, result := range results {
			assert.GreaterOrEqual(t, result.Similarity, float32(0.9))
		}
	})

	t.Run("explicit filters bypass the floor", func(t *testing.T) {
		filters := &core.QueryFilters{Skills: []string{"Java"}}
		results, err := searcher.Search(context.Background(), "python developer", filters)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, core.ID(2), results[0].Record.Id)
	})
}

type recordingMonitor struct {
	started       bool
	candidates    int
	extracted     *core.QueryFilters
	hardFiltered  []core.ID
	finishedCount int
}

func (m *recordingMonitor) Start(_ string, _ *core.QueryFilters) { m.started = true }
func (m *recordingMonitor) AfterSemanticSearch(candidates []*core.SearchResult) {
	m.candidates = len(candidates)
}
func (m *recordingMonitor) AfterExtraction(extracted *core.QueryFilters) { m.extracted = extracted }
func (m *recordingMonitor) HardFiltered(record *core.EmployeeRecord) {
	m.hardFiltered = append(m.hardFiltered, record.Id)
}
func (m *recordingMonitor) Finish(results []*core.SearchResult) { m.finishedCount = len(results) }

func TestSearchWithMonitor(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	holder := buildHolder(t, embedder, testRecords())

	searcher, err := NewSearcher(holder, embedder)
	require.NoError(t, err)

	monitor := &recordingMonitor{}
	filters := &core.QueryFilters{Skills: []string{"Python"}}
	results, err := searcher.SearchWithMonitor(context.Background(), "python developer", filters, monitor)
	require.NoError(t, err)

	assert.True(t, monitor.started)
	assert.Equal(t, 3, monitor.candidates)
	assert.NotNil(t, monitor.extracted)
	assert.Equal(t, []core.ID{2}, monitor.hardFiltered)
	assert.Equal(t, len(results), monitor.finishedCount)
}
