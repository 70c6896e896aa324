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


package search

import "errors"

var (
	// ErrHolderRequired is returned when a snapshot holder is not provided.
	ErrHolderRequired = errors.New("snapshot holder required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrInvalidWeights is returned when ranking weights do not sum to 1.0.
	ErrInvalidWeights = errors.New("ranking weights must be non-negative and sum to 1.0")

	// ErrInvalidLimit is returned when a retrieval or result limit is not positive.
	ErrInvalidLimit = errors.New("limit must be positive")
)
