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


package respond

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/staffmatch/ai"
	"github.com/poiesic/staffmatch/core"
)

// Responder turns ranked candidates into a natural-language answer. When a
// generator is configured it gets exactly one attempt per query; any failure
// falls back to the deterministic template. With a nil generator the
// template is used directly. Respond therefore always produces text.
type Responder struct {
	generator ai.ResponseGenerator
	logger    *slog.Logger
}

// Option configures a Responder.
type Option func(*Responder)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Responder) {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
	}
}

// NewResponder creates a responder. Generator may be nil, which disables
// model-backed generation entirely.
func NewResponder(generator ai.ResponseGenerator, opts ...Option) *Responder {
	r := &Responder{
		generator: generator,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Respond builds the answer for one query. The session id is carried through
// untouched for the caller's conversation tracking.
func (r *Responder) Respond(ctx context.Context, query string, candidates []*core.SearchResult, sessionID string) *core.GeneratedResponse {
	response := &core.GeneratedResponse{
		Candidates: candidates,
		Source:     core.ResponseSourceTemplate,
		SessionID:  sessionID,
	}

	if len(candidates) > 0 && r.generator != nil {
		text, err := r.generator.GenerateResponse(ctx, query, candidates)
		if err != nil {
			r.logger.Warn("model generation failed, using template response", "query", query, "err", err)
		} else if strings.TrimSpace(text) == "" {
			r.logger.Warn("model returned empty completion, using template response", "query", query)
		} else {
			response.Text = text
			response.Source = core.ResponseSourceModel
			return response
		}
	}

	response.Text = TemplateText(query, candidates)
	return response
}
