package staffmatch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/staffmatch/ai/mock"
	"github.com/poiesic/staffmatch/core"
	"github.com/poiesic/staffmatch/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEmployees() []*core.EmployeeRecord {
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

func openTestDirectory(t *testing.T) *Directory {
	t.Helper()

	dir, err := NewDirectory("", WithInMemory(), WithProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	t.Cleanup(func() { dir.Close() })
	return dir
}

func TestNewDirectory(t *testing.T) {
	t.Run("create new directory", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_dir")
		dir, err := NewDirectory(tmpDir, WithProvider(mock.NewMockProvider()))
		require.NoError(t, err)
		require.NotNil(t, dir)
		defer dir.Close()

		// Verify components are initialized
		assert.NotNil(t, dir.EmployeeRepository())
		assert.NotNil(t, dir.backend)
		assert.NotNil(t, dir.holder)
		assert.NotNil(t, dir.searcher)
		assert.NotNil(t, dir.responder)
		assert.NotNil(t, dir.logger)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// Try to open a directory at a file path instead of a directory
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		dir, err := NewDirectory(tmpFile, WithProvider(mock.NewMockProvider()))
		assert.Error(t, err)
		assert.Nil(t, dir)
	})
}

func TestDirectory_Close(t *testing.T) {
	dir, err := NewDirectory(t.TempDir(), WithProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	require.NotNil(t, dir)

	err = dir.Close()
	assert.NoError(t, err)
}

func TestDirectory_LoadEmployees(t *testing.T) {
	ctx := context.Background()

	t.Run("stores valid records and makes them searchable", func(t *testing.T) {
		dir := openTestDirectory(t)

		count, err := dir.LoadEmployees(ctx, sampleEmployees())
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		results, err := dir.Query(ctx, "python developer", nil)
		require.NoError(t, err)
		assert.NotEmpty(t, results)
	})

	t.Run("skips invalid records", func(t *testing.T) {
		dir := openTestDirectory(t)

		records := sampleEmployees()
		records = append(records, &core.EmployeeRecord{Id: 4, Name: "", Skills: []string{"Go"}})

		count, err := dir.LoadEmployees(ctx, records)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		_, err = dir.Employee(ctx, 4)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("fails when no record is valid", func(t *testing.T) {
		dir := openTestDirectory(t)

		records := []*core.EmployeeRecord{
			{Id: 0, Name: "No ID", Skills: []string{"Go"}, Availability: core.AvailabilityAvailable},
		}
		count, err := dir.LoadEmployees(ctx, records)
		assert.ErrorIs(t, err, ErrNoValidRecords)
		assert.Zero(t, count)
	})
}

func TestDirectory_Rebuild(t *testing.T) {
	ctx := context.Background()
	dir := openTestDirectory(t)

	// Put records directly to storage, bypassing the load path
	require.NoError(t, dir.EmployeeRepository().PutEmployees(ctx, sampleEmployees()...))

	// Not searchable until the snapshot is rebuilt
	results, err := dir.Query(ctx, "python developer", nil)
	require.NoError(t, err)
	assert.Empty(t, results)

	require.NoError(t, dir.Rebuild(ctx))

	results, err = dir.Query(ctx, "python developer", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, results)
}

func TestDirectory_Answer(t *testing.T) {
	ctx := context.Background()

	t.Run("echoes session id and never returns empty text", func(t *testing.T) {
		dir := openTestDirectory(t)
		_, err := dir.LoadEmployees(ctx, sampleEmployees())
		require.NoError(t, err)

		response, err := dir.Answer(ctx, "python developer", nil, "session-42")
		require.NoError(t, err)
		require.NotNil(t, response)
		assert.NotEmpty(t, response.Text)
		assert.NotEmpty(t, response.Candidates)
		assert.Equal(t, "session-42", response.SessionID)
		assert.Equal(t, core.ResponseSourceModel, response.Source)
	})

	t.Run("empty directory yields the fixed no-match message", func(t *testing.T) {
		dir := openTestDirectory(t)

		response, err := dir.Answer(ctx, "python developer", nil, "")
		require.NoError(t, err)
		require.NotNil(t, response)
		assert.Equal(t, core.ResponseSourceTemplate, response.Source)
		assert.Contains(t, response.Text, "couldn't find any employees")
		assert.Empty(t, response.Candidates)
	})

	t.Run("disabled generation falls back to template", func(t *testing.T) {
		provider := mock.NewMockProviderWithServices(mock.NewMockEmbedder(), nil)
		dir, err := NewDirectory("", WithInMemory(), WithProvider(provider))
		require.NoError(t, err)
		defer dir.Close()

		_, err = dir.LoadEmployees(ctx, sampleEmployees())
		require.NoError(t, err)

		response, err := dir.Answer(ctx, "python developer", nil, "")
		require.NoError(t, err)
		assert.Equal(t, core.ResponseSourceTemplate, response.Source)
		assert.NotEmpty(t, response.Text)
	})
}

func TestDirectory_Employee(t *testing.T) {
	ctx := context.Background()
	dir := openTestDirectory(t)
	_, err := dir.LoadEmployees(ctx, sampleEmployees())
	require.NoError(t, err)

	t.Run("existing record", func(t *testing.T) {
		record, err := dir.Employee(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Bob Smith", record.Name)
	})

	t.Run("missing record", func(t *testing.T) {
		_, err := dir.Employee(ctx, 99)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestDirectory_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("empty directory", func(t *testing.T) {
		dir := openTestDirectory(t)

		stats, err := dir.Stats(ctx)
		require.NoError(t, err)
		assert.Zero(t, stats.TotalEmployees)
		assert.Empty(t, stats.TopSkills)
	})

	t.Run("populated directory", func(t *testing.T) {
		dir := openTestDirectory(t)
		_, err := dir.LoadEmployees(ctx, sampleEmployees())
		require.NoError(t, err)

		stats, err := dir.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, stats.TotalEmployees)
		assert.Equal(t, 2, stats.Departments["Engineering"])
		assert.Equal(t, 1, stats.Departments["Data Science"])
		assert.InDelta(t, 6.0, stats.AvgExperience, 0.001)

		require.NotEmpty(t, stats.TopSkills)
		assert.Equal(t, "Python", stats.TopSkills[0].Skill)
		assert.Equal(t, 2, stats.TopSkills[0].Count)
		for i := 1; i < len(stats.TopSkills); i++ {
			prev, cur := stats.TopSkills[i-1], stats.TopSkills[i]
			if prev.Count == cur.Count {
				assert.Less(t, prev.Skill, cur.Skill)
			} else {
				assert.Greater(t, prev.Count, cur.Count)
			}
		}
	})
}
