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


// Package search ranks employees against free-text staffing queries.
//
// The Searcher type implements a multi-stage pipeline that combines:
//   - Semantic retrieval using vector embeddings over a published snapshot
//   - Hard filtering by explicit structured constraints
//   - Soft scoring of constraints heuristically extracted from the query text
//
// Candidates are ranked by a weighted fusion of semantic similarity and the
// structured filter-match score, with deterministic ordering for ties.
package search
