package search

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"strings"

	"github.com/poiesic/staffmatch/ai"
	"github.com/poiesic/staffmatch/core"
	"github.com/poiesic/staffmatch/index"
	"github.com/poiesic/staffmatch/query"
)

// Tunable ranking defaults. The weights fuse semantic similarity with the
// structured filter-match score and must sum to 1.0.
const (
	DefaultTopK           = 10
	DefaultResultLimit    = 5
	DefaultSemanticWeight = 0.6
	DefaultFilterWeight   = 0.4
)

// Searcher answers staffing queries against the currently published
// snapshot. Explicit filters are hard constraints; constraints extracted
// from free text only influence ranking.
type Searcher struct {
	holder         *index.Holder
	embedder       ai.Embedder
	topK           int
	resultLimit    int
	semanticWeight float32
	filterWeight   float32
	minSimilarity  float32
	logger         *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithTopK sets the semantic retrieval breadth.
// Default is DefaultTopK.
func WithTopK(k int) Option {
	return func(s *Searcher) error {
		if k <= 0 {
			return ErrInvalidLimit
		}
		s.topK = k
		return nil
	}
}

// WithResultLimit caps the final ranked result size.
// Default is DefaultResultLimit.
func WithResultLimit(limit int) Option {
	return func(s *Searcher) error {
		if limit <= 0 {
			return ErrInvalidLimit
		}
		s.resultLimit = limit
		return nil
	}
}

// WithWeights sets the semantic and filter ranking weights.
// The weights must be non-negative and sum to 1.0.
func WithWeights(semantic, filter float32) Option {
	return func(s *Searcher) error {
		if semantic < 0 || filter < 0 {
			return ErrInvalidWeights
		}
		if math.Abs(float64(semantic+filter)-1.0) > 1e-6 {
			return ErrInvalidWeights
		}
		s.semanticWeight = semantic
		s.filterWeight = filter
		return nil
	}
}

// WithMinSimilarity sets a similarity floor for purely semantic queries.
// Candidates below the floor are dropped when no explicit filters were
// requested. Default is 0 (no floor).
func WithMinSimilarity(min float32) Option {
	return func(s *Searcher) error {
		s.minSimilarity = min
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher over the holder's published snapshots.
func NewSearcher(holder *index.Holder, embedder ai.Embedder, opts ...Option) (*Searcher, error) {
	if holder == nil {
		return nil, ErrHolderRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	s := &Searcher{
		holder:         holder,
		embedder:       embedder,
		topK:           DefaultTopK,
		resultLimit:    DefaultResultLimit,
		semanticWeight: DefaultSemanticWeight,
		filterWeight:   DefaultFilterWeight,
		logger:         slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search runs the full retrieval-filtering-ranking pipeline for one query.
// Returns up to the configured result limit, ranked by fused score.
func (s *Searcher) Search(ctx context.Context, text string, filters *core.QueryFilters) ([]*core.SearchResult, error) {
	return s.SearchWithMonitor(ctx, text, filters, nil)
}

// SearchWithMonitor runs Search with monitoring.
// The monitor receives callbacks at each stage of the pipeline.
//
// The pipeline reads exactly one snapshot start-to-finish; a concurrent
// rebuild publishes a new snapshot without affecting this query. Every
// per-query failure degrades instead of propagating: contradictory filters
// yield no results, an embedding failure yields a zero query vector that
// leaves records reachable through filters alone.
func (s *Searcher) SearchWithMonitor(ctx context.Context, text string, filters *core.QueryFilters, monitor SearchMonitor) ([]*core.SearchResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(text, filters)

	snapshot := s.holder.Current()
	if snapshot.Len() == 0 {
		s.logger.Debug("search against empty snapshot")
		return []*core.SearchResult{}, nil
	}

	if err := core.ValidateQueryFilters(filters); err != nil {
		s.logger.Warn("rejecting contradictory filters", "err", err)
		return []*core.SearchResult{}, nil
	}

	// 1. Embed the query text. A failed or empty embedding degrades to a
	// zero vector: semantic scores collapse to zero and ranking falls back
	// to the structured filter signal.
	var queryVector []float32
	if text != "" {
		vector, err := s.embedder.EmbedText(ctx, text)
		if err != nil {
			s.logger.Error("error generating embedding for query", "query", text, "err", err)
		} else {
			queryVector = vector
		}
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// 2. Semantic retrieval over the snapshot.
	candidates := snapshot.Search(queryVector, s.topK)
	monitor.AfterSemanticSearch(candidates)

	// 3. Heuristic extraction against the snapshot's vocabulary; terms
	// already constrained explicitly are dropped so they are not counted
	// twice in the filter score.
	extracted := query.Extract(text, query.NewVocabulary(snapshot.Records()))
	dropOverlap(extracted, filters)
	monitor.AfterExtraction(extracted)

	// 4. Hard filtering and score fusion.
	hasExplicit := filters.HasConstraints()
	results := make([]*core.SearchResult, 0, len(candidates))
	for _, candidate := range candidates {
		if hasExplicit && !query.Matches(candidate.Record, filters) {
			monitor.HardFiltered(candidate.Record)
			continue
		}
		if !hasExplicit && s.minSimilarity > 0 && candidate.Similarity < s.minSimilarity {
			continue
		}

		candidate.FilterMatch = query.Matches(candidate.Record, filters)
		candidate.FilterScore = query.CombinedScore(candidate.Record, filters, extracted)
		candidate.Score = s.semanticWeight*candidate.Similarity + s.filterWeight*candidate.FilterScore
		results = append(results, candidate)
	}

	// Sort by fused score descending, ties by ascending ID
	slices.SortFunc(results, func(a, b *core.SearchResult) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		if a.Record.Id < b.Record.Id {
			return -1
		}
		if a.Record.Id > b.Record.Id {
			return 1
		}
		return 0
	})
	if len(results) > s.resultLimit {
		results = results[:s.resultLimit]
	}
	monitor.Finish(results)

	return results, nil
}

// dropOverlap removes extracted constraints that are already requested
// explicitly, so the combined filter score counts each concern once and the
// explicit (hard) form wins.
func dropOverlap(extracted, explicit *core.QueryFilters) {
	if extracted == nil || explicit == nil {
		return
	}

	if len(explicit.Skills) > 0 {
		kept := extracted.Skills[:0]
		for _, skill := range extracted.Skills {
			duplicate := false
			for _, requested := range explicit.Skills {
				if strings.EqualFold(skill, requested) {
					duplicate = true
					break
				}
			}
			if !duplicate {
				kept = append(kept, skill)
			}
		}
		extracted.Skills = kept
	}

	if explicit.ExperienceMin != nil {
		extracted.ExperienceMin = nil
	}
	if explicit.ExperienceMax != nil {
		extracted.ExperienceMax = nil
	}
	if explicit.Department != "" {
		extracted.Department = ""
	}
	if explicit.Availability != 0 {
		extracted.Availability = 0
	}
}
