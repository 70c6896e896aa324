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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidEmployeeRecord indicates an EmployeeRecord failed validation.
	ErrInvalidEmployeeRecord = errors.New("invalid employee record")

	// ErrInvalidID indicates a record ID is missing or not positive.
	ErrInvalidID = errors.New("id must be a positive integer")

	// ErrEmptyName indicates the Name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrNoSkills indicates the Skills field is empty.
	ErrNoSkills = errors.New("skills cannot be empty")

	// ErrNegativeExperience indicates ExperienceYears is negative.
	ErrNegativeExperience = errors.New("experience years cannot be negative")

	// ErrInvalidAvailability indicates an invalid Availability value.
	ErrInvalidAvailability = errors.New("invalid availability")

	// ErrInvalidFilters indicates a QueryFilters value failed validation.
	ErrInvalidFilters = errors.New("invalid query filters")

	// ErrContradictoryExperience indicates experience_min exceeds experience_max.
	ErrContradictoryExperience = errors.New("experience minimum exceeds maximum")
)
