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


package openai

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/poiesic/staffmatch/ai"
	"github.com/poiesic/staffmatch/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// ErrEmptyCompletion indicates the model returned no usable text.
var ErrEmptyCompletion = errors.New("model returned empty completion")

// Generator implements ai.ResponseGenerator using OpenAI-compatible chat APIs.
// Failures are returned to the caller; the respond package handles fallback.
type Generator struct {
	client llms.Model
	logger *slog.Logger
}

// newGenerator is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newGenerator(config *ai.Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.ChatHost),
		openai.WithToken(config.APIToken),
		openai.WithModel(config.ChatModel),
	)
	if err != nil {
		return nil, err
	}

	return &Generator{
		client: client,
		logger: slog.Default().With("component", "openai-generator"),
	}, nil
}

// NewGenerator creates a new response generator using the provided configuration.
//
// Returns ai.ResponseGenerator interface to enforce abstraction.
func NewGenerator(config *ai.Config) (ai.ResponseGenerator, error) {
	return newGenerator(config)
}

// GenerateResponse asks the model to recommend candidates for the query.
// At most one attempt is made; any failure is returned so the caller can
// fall back to the template strategy. The prompt includes a structured
// summary of the ranked candidates as grounding context.
func (g *Generator) GenerateResponse(ctx context.Context, query string, candidates []*core.SearchResult) (string, error) {
	prompt := buildRecommendationPrompt(query, candidates)

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	response, err := g.client.GenerateContent(ctx, content,
		llms.WithTemperature(0.7),
		llms.WithMaxTokens(500))
	if err != nil {
		g.logger.Error("failed to generate response", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		g.logger.Warn("no choices returned from model")
		return "", ErrEmptyCompletion
	}

	text := strings.TrimSpace(response.Choices[0].Content)
	if text == "" {
		g.logger.Warn("model returned blank completion")
		return "", ErrEmptyCompletion
	}

	g.logger.Debug("generated response", "length", len(text), "candidates", len(candidates))
	return text, nil
}
