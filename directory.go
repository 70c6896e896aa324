// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package staffmatch

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/poiesic/staffmatch/ai"
	"github.com/poiesic/staffmatch/ai/openai"
	"github.com/poiesic/staffmatch/core"
	"github.com/poiesic/staffmatch/index"
	"github.com/poiesic/staffmatch/respond"
	"github.com/poiesic/staffmatch/search"
	"github.com/poiesic/staffmatch/storage"
	"github.com/poiesic/staffmatch/storage/badger"
)

const topSkillsLimit = 10

// Directory is the staffing query engine: durable employee storage, an
// in-memory vector snapshot, the search pipeline and response generation
// wired together behind one facade.
type Directory struct {
	backend   *badger.Backend
	employees storage.EmployeeRepository
	provider  ai.AIProvider
	builder   *index.Builder
	holder    *index.Holder
	searcher  *search.Searcher
	responder *respond.Responder
	logger    *slog.Logger
}

// DirectoryOption configures a Directory.
type DirectoryOption func(*directoryOptions)

type directoryOptions struct {
	aiConfig      *ai.Config
	provider      ai.AIProvider
	inMemory      bool
	searchOptions []search.Option
	logger        *slog.Logger
}

// WithAIConfig sets the AI service configuration.
func WithAIConfig(config *ai.Config) DirectoryOption {
	return func(o *directoryOptions) {
		o.aiConfig = config
	}
}

// WithProvider injects a pre-built AI provider instead of constructing one
// from the configuration. Mainly useful for tests.
func WithProvider(provider ai.AIProvider) DirectoryOption {
	return func(o *directoryOptions) {
		o.provider = provider
	}
}

// WithInMemory keeps the record store in memory instead of on disk.
func WithInMemory() DirectoryOption {
	return func(o *directoryOptions) {
		o.inMemory = true
	}
}

// WithSearchOptions forwards options to the underlying searcher.
func WithSearchOptions(opts ...search.Option) DirectoryOption {
	return func(o *directoryOptions) {
		o.searchOptions = append(o.searchOptions, opts...)
	}
}

// WithLogger sets a custom logger for the directory and its components.
func WithLogger(logger *slog.Logger) DirectoryOption {
	return func(o *directoryOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewDirectory opens the directory at filePath. A freshly opened directory
// serves the empty snapshot until Rebuild runs; LoadEmployees rebuilds
// automatically after storing.
func NewDirectory(filePath string, opts ...DirectoryOption) (*Directory, error) {
	// Apply options
	options := &directoryOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Create employee repository
	employees, err := badger.NewEmployeeRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create AI provider with configured settings
	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			employees.Close()
			backend.Close()
			return nil, err
		}
	}

	builder, err := index.NewBuilder(provider.Embedder(), index.WithLogger(options.logger))
	if err != nil {
		provider.Close()
		employees.Close()
		backend.Close()
		return nil, err
	}

	holder := index.NewHolder()

	searchOptions := append([]search.Option{search.WithLogger(options.logger)}, options.searchOptions...)
	searcher, err := search.NewSearcher(holder, provider.Embedder(), searchOptions...)
	if err != nil {
		provider.Close()
		employees.Close()
		backend.Close()
		return nil, err
	}

	responder := respond.NewResponder(provider.ResponseGenerator(), respond.WithLogger(options.logger))

	return &Directory{
		backend:   backend,
		employees: employees,
		provider:  provider,
		builder:   builder,
		holder:    holder,
		searcher:  searcher,
		responder: responder,
		logger:    options.logger,
	}, nil
}

// LoadEmployees validates and stores the given records, then rebuilds the
// snapshot so they become searchable. Invalid records are skipped with a
// warning; the load fails only when no record passes validation. Returns the
// number of records stored.
func (d *Directory) LoadEmployees(ctx context.Context, records []*core.EmployeeRecord) (int, error) {
	valid := make([]*core.EmployeeRecord, 0, len(records))
	for _, record := range records {
		if err := core.ValidateEmployeeRecord(record); err != nil {
			var id core.ID
			if record != nil {
				id = record.Id
			}
			d.logger.Warn("skipping invalid employee record", "id", id, "err", err)
			continue
		}
		valid = append(valid, record)
	}
	if len(valid) == 0 {
		return 0, ErrNoValidRecords
	}

	if err := d.employees.PutEmployees(ctx, valid...); err != nil {
		return 0, fmt.Errorf("storing employee records: %w", err)
	}

	if err := d.Rebuild(ctx); err != nil {
		return len(valid), err
	}
	return len(valid), nil
}

// Rebuild constructs a brand-new snapshot from every stored record and
// publishes it atomically. Queries in flight keep the snapshot they started
// with; a failed build leaves the old snapshot in place.
func (d *Directory) Rebuild(ctx context.Context) error {
	records, err := d.employees.AllEmployees(ctx)
	if err != nil {
		return fmt.Errorf("reading employee records: %w", err)
	}

	snapshot, err := d.builder.Build(ctx, records)
	if err != nil {
		return fmt.Errorf("building snapshot: %w", err)
	}

	d.holder.Publish(snapshot)
	d.logger.Info("published snapshot",
		"employees", snapshot.Len(),
		"fingerprint", fmt.Sprintf("%016x", uint64(snapshot.Fingerprint())))
	return nil
}

// Query runs the retrieval and ranking pipeline and returns the ranked
// candidates without generating response text.
func (d *Directory) Query(ctx context.Context, text string, filters *core.QueryFilters) ([]*core.SearchResult, error) {
	return d.searcher.Search(ctx, text, filters)
}

// Answer runs Query and produces a natural-language answer. The response
// text is never empty; with no matching candidates a fixed message is
// returned. The session id is echoed back untouched.
func (d *Directory) Answer(ctx context.Context, text string, filters *core.QueryFilters, sessionID string) (*core.GeneratedResponse, error) {
	results, err := d.searcher.Search(ctx, text, filters)
	if err != nil {
		return nil, err
	}
	return d.responder.Respond(ctx, text, results, sessionID), nil
}

// Employee returns the stored record with the given id.
// Returns storage.ErrNotFound if no such record exists.
func (d *Directory) Employee(ctx context.Context, id core.ID) (*core.EmployeeRecord, error) {
	return d.employees.GetEmployee(ctx, id)
}

// Stats summarizes the stored directory: totals, per-department counts, the
// most common skills and average experience.
func (d *Directory) Stats(ctx context.Context) (*core.DirectoryStats, error) {
	records, err := d.employees.AllEmployees(ctx)
	if err != nil {
		return nil, err
	}

	stats := &core.DirectoryStats{
		TotalEmployees: len(records),
		Departments:    make(map[string]int),
	}
	if len(records) == 0 {
		return stats, nil
	}

	skillCounts := make(map[string]int)
	totalExperience := 0
	for _, record := range records {
		if record.Department != "" {
			stats.Departments[record.Department]++
		}
		for _, skill := range record.Skills {
			skillCounts[skill]++
		}
		totalExperience += record.ExperienceYears
	}
	stats.AvgExperience = float64(totalExperience) / float64(len(records))

	skills := make([]core.SkillCount, 0, len(skillCounts))
	for skill, count := range skillCounts {
		skills = append(skills, core.SkillCount{Skill: skill, Count: count})
	}
	// Descending by count, ties by skill name for stable output
	sort.Slice(skills, func(i, j int) bool {
		if skills[i].Count != skills[j].Count {
			return skills[i].Count > skills[j].Count
		}
		return skills[i].Skill < skills[j].Skill
	})
	if len(skills) > topSkillsLimit {
		skills = skills[:topSkillsLimit]
	}
	stats.TopSkills = skills

	return stats, nil
}

// EmployeeRepository exposes the underlying record store.
func (d *Directory) EmployeeRepository() storage.EmployeeRepository {
	return d.employees
}

// Close releases the AI provider and storage resources.
func (d *Directory) Close() error {
	// Close AI provider first
	if err := d.provider.Close(); err != nil {
		d.logger.Error("error closing AI provider", "err", err)
	}

	if err := d.employees.Close(); err != nil {
		d.logger.Error("error closing employee repository", "err", err)
		return err
	}

	if err := d.backend.Close(); err != nil {
		d.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}
