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

import "fmt"

// ValidateEmployeeRecord validates an EmployeeRecord according to domain rules.
//
// Validation rules:
//   - Id must be a positive integer
//   - Name must not be empty
//   - Skills must not be empty
//   - ExperienceYears must not be negative
//   - Availability must be a known value
//
// A record failing validation is rejected individually at load time; it never
// aborts the load of the remaining records.
func ValidateEmployeeRecord(record *EmployeeRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidEmployeeRecord)
	}

	if record.Id == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidEmployeeRecord, ErrInvalidID)
	}

	if record.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEmployeeRecord, ErrEmptyName)
	}

	if len(record.Skills) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidEmployeeRecord, ErrNoSkills)
	}

	if record.ExperienceYears < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidEmployeeRecord, ErrNegativeExperience)
	}

	if err := ValidateAvailability(record.Availability); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEmployeeRecord, err)
	}

	return nil
}

// ValidateAvailability validates that an Availability has a known value.
func ValidateAvailability(a Availability) error {
	if a != AvailabilityAvailable && a != AvailabilityBusy {
		return fmt.Errorf("%w: value %d", ErrInvalidAvailability, a)
	}
	return nil
}

// ValidateQueryFilters validates explicit query constraints.
//
// A contradictory experience range (min > max) is reported as an error; the
// search layer treats it as "no results" rather than a failure. Availability
// may be zero (unset) or a known value.
func ValidateQueryFilters(filters *QueryFilters) error {
	if filters == nil {
		return nil
	}

	if filters.ExperienceMin != nil && *filters.ExperienceMin < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidFilters, ErrNegativeExperience)
	}
	if filters.ExperienceMax != nil && *filters.ExperienceMax < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidFilters, ErrNegativeExperience)
	}
	if filters.ExperienceMin != nil && filters.ExperienceMax != nil &&
		*filters.ExperienceMin > *filters.ExperienceMax {
		return fmt.Errorf("%w: %w", ErrInvalidFilters, ErrContradictoryExperience)
	}

	if filters.Availability != 0 {
		if err := ValidateAvailability(filters.Availability); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidFilters, err)
		}
	}

	return nil
}
