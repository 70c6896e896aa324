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


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/staffmatch"
	"github.com/poiesic/staffmatch/ai"
	"github.com/poiesic/staffmatch/core"
	"github.com/urfave/cli/v2"
)

func main() {
	aiFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "host",
			Usage: "OpenAI-compatible service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
		&cli.StringFlag{
			Name:  "chat-model",
			Usage: "Chat model name for generated answers",
			Value: "qwen2.5:3b",
		},
		&cli.StringFlag{
			Name:    "api-token",
			Usage:   "API token for the AI service",
			EnvVars: []string{"STAFFMATCH_API_TOKEN"},
		},
		&cli.BoolFlag{
			Name:  "no-generation",
			Usage: "Disable model-generated answers, always use the template",
		},
	}

	dbFlag := &cli.StringFlag{
		Name:     "db",
		Aliases:  []string{"d"},
		Usage:    "Path to BadgerDB database directory",
		Required: true,
	}

	filterFlags := []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "skill",
			Usage: "Required skill (repeatable, all must match)",
		},
		&cli.StringFlag{
			Name:  "department",
			Usage: "Required department",
		},
		&cli.IntFlag{
			Name:  "min-experience",
			Usage: "Minimum years of experience",
		},
		&cli.IntFlag{
			Name:  "max-experience",
			Usage: "Maximum years of experience",
		},
		&cli.StringFlag{
			Name:  "availability",
			Usage: "Required availability (available, busy)",
		},
	}

	app := &cli.App{
		Name:  "staffmatch",
		Usage: "Staffing query engine over an employee directory",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "load",
				Usage:  "Load employee records from a JSON file into the directory",
				Action: loadCommand,
				Flags: append([]cli.Flag{
					dbFlag,
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to the employee JSON file",
						Required: true,
					},
				}, aiFlags...),
			},
			{
				Name:      "search",
				Usage:     "Rank employees against a free-text query",
				ArgsUsage: "[query text]",
				Action:    searchCommand,
				Flags:     append(append([]cli.Flag{dbFlag}, filterFlags...), aiFlags...),
			},
			{
				Name:      "ask",
				Usage:     "Answer a staffing question in natural language",
				ArgsUsage: "[query text]",
				Action:    askCommand,
				Flags: append(append([]cli.Flag{
					dbFlag,
					&cli.StringFlag{
						Name:  "session",
						Usage: "Opaque session identifier echoed in the response",
					},
				}, filterFlags...), aiFlags...),
			},
			{
				Name:   "stats",
				Usage:  "Summarize the employee directory",
				Action: statsCommand,
				Flags:  append([]cli.Flag{dbFlag}, aiFlags...),
			},
			{
				Name:      "employee",
				Usage:     "Show a single employee record",
				ArgsUsage: "[id]",
				Action:    employeeCommand,
				Flags:     append([]cli.Flag{dbFlag}, aiFlags...),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// employeeFile is the on-disk JSON shape for load.
type employeeFile struct {
	Employees []*core.EmployeeRecord `json:"employees"`
}

func openDirectory(c *cli.Context) (*staffmatch.Directory, error) {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithChatModel(c.String("chat-model")),
		ai.WithAPIToken(c.String("api-token")),
		ai.WithGeneration(!c.Bool("no-generation")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	dir, err := staffmatch.NewDirectory(c.String("db"), staffmatch.WithAIConfig(aiConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open directory: %w", err)
	}
	return dir, nil
}

func filtersFromFlags(c *cli.Context) (*core.QueryFilters, error) {
	filters := &core.QueryFilters{
		Skills:     c.StringSlice("skill"),
		Department: c.String("department"),
	}
	if c.IsSet("min-experience") {
		min := c.Int("min-experience")
		filters.ExperienceMin = &min
	}
	if c.IsSet("max-experience") {
		max := c.Int("max-experience")
		filters.ExperienceMax = &max
	}
	if raw := c.String("availability"); raw != "" {
		availability, err := core.ParseAvailability(raw)
		if err != nil {
			return nil, err
		}
		filters.Availability = availability
	}
	return filters, nil
}

func loadCommand(c *cli.Context) error {
	ctx := context.Background()

	data, err := os.ReadFile(c.String("file"))
	if err != nil {
		return fmt.Errorf("failed to read employee file: %w", err)
	}
	var file employeeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse employee file: %w", err)
	}

	dir, err := openDirectory(c)
	if err != nil {
		return err
	}
	defer dir.Close()

	count, err := dir.LoadEmployees(ctx, file.Employees)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	fmt.Printf("Loaded %d of %d employee records\n", count, len(file.Employees))
	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	filters, err := filtersFromFlags(c)
	if err != nil {
		return err
	}
	query := strings.Join(c.Args().Slice(), " ")

	dir, err := openDirectory(c)
	if err != nil {
		return err
	}
	defer dir.Close()

	if err := dir.Rebuild(ctx); err != nil {
		return fmt.Errorf("failed to build search index: %w", err)
	}

	results, err := dir.Query(ctx, query, filters)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Printf("Found %d candidates\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: %s (#%d) [score %.3f, similarity %.3f, filters %.2f]\n",
			i+1, hit.Record.Name, hit.Record.Id, hit.Score, hit.Similarity, hit.FilterScore)
		fmt.Printf("   %s / %s, %d years, %s\n",
			hit.Record.Department, hit.Record.Specialization,
			hit.Record.ExperienceYears, hit.Record.Availability)
	}
	return nil
}

func askCommand(c *cli.Context) error {
	ctx := context.Background()

	filters, err := filtersFromFlags(c)
	if err != nil {
		return err
	}
	query := strings.Join(c.Args().Slice(), " ")

	dir, err := openDirectory(c)
	if err != nil {
		return err
	}
	defer dir.Close()

	if err := dir.Rebuild(ctx); err != nil {
		return fmt.Errorf("failed to build search index: %w", err)
	}

	response, err := dir.Answer(ctx, query, filters, c.String("session"))
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	fmt.Println(response.Text)
	fmt.Printf("\n(%d candidates, %s response)\n", len(response.Candidates), response.Source)
	return nil
}

func statsCommand(c *cli.Context) error {
	ctx := context.Background()

	dir, err := openDirectory(c)
	if err != nil {
		return err
	}
	defer dir.Close()

	stats, err := dir.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute stats: %w", err)
	}

	fmt.Printf("Employees: %d\n", stats.TotalEmployees)
	fmt.Printf("Average experience: %.1f years\n", stats.AvgExperience)
	fmt.Println("Departments:")
	for dept, count := range stats.Departments {
		fmt.Printf("  %s: %d\n", dept, count)
	}
	fmt.Println("Top skills:")
	for _, skill := range stats.TopSkills {
		fmt.Printf("  %s: %d\n", skill.Skill, skill.Count)
	}
	return nil
}

func employeeCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one employee id argument")
	}
	var id uint64
	if _, err := fmt.Sscanf(c.Args().First(), "%d", &id); err != nil {
		return fmt.Errorf("invalid employee id %q", c.Args().First())
	}

	dir, err := openDirectory(c)
	if err != nil {
		return err
	}
	defer dir.Close()

	record, err := dir.Employee(ctx, core.ID(id))
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	fmt.Println(record.ProfileText())
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
