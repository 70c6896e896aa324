package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Availability describes whether an employee can take on new work.
type Availability int

const (
	// AvailabilityAvailable means the employee can be staffed immediately.
	AvailabilityAvailable Availability = iota + 1
	// AvailabilityBusy means the employee is committed to other work.
	AvailabilityBusy
)

// String returns the wire representation ("available" or "busy").
func (a Availability) String() string {
	switch a {
	case AvailabilityAvailable:
		return "available"
	case AvailabilityBusy:
		return "busy"
	default:
		return fmt.Sprintf("availability(%d)", int(a))
	}
}

// ParseAvailability converts a wire string into an Availability.
// Matching is case-insensitive.
func ParseAvailability(s string) (Availability, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "available":
		return AvailabilityAvailable, nil
	case "busy":
		return AvailabilityBusy, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidAvailability, s)
	}
}

// MarshalJSON implements json.Marshaler.
func (a Availability) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Availability) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAvailability(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// EmployeeRecord describes one member of the employee directory.
// Records are immutable within a snapshot; a rebuild replaces the whole set.
// The JSON tags match the external directory schema consumed at load time.
type EmployeeRecord struct {
	Id              ID           `json:"id"`
	Name            string       `json:"name"`
	Skills          []string     `json:"skills"`
	ExperienceYears int          `json:"experience_years"`
	Projects        []string     `json:"projects"`
	Availability    Availability `json:"availability"`
	Department      string       `json:"department"`
	Specialization  string       `json:"specialization"`
	Certifications  []string     `json:"certifications"`
}

// ProfileText returns the canonical text serialization of the record used
// for embedding. Identical records always produce identical text, which
// keeps the derived vectors deterministic.
func (e *EmployeeRecord) ProfileText() string {
	var b strings.Builder
	b.WriteString("Name: ")
	b.WriteString(e.Name)
	b.WriteString("\nSkills: ")
	b.WriteString(strings.Join(e.Skills, ", "))
	fmt.Fprintf(&b, "\nExperience: %d years", e.ExperienceYears)
	b.WriteString("\nProjects: ")
	b.WriteString(strings.Join(e.Projects, ", "))
	b.WriteString("\nDepartment: ")
	b.WriteString(e.Department)
	b.WriteString("\nSpecialization: ")
	b.WriteString(e.Specialization)
	b.WriteString("\nCertifications: ")
	b.WriteString(strings.Join(e.Certifications, ", "))
	b.WriteString("\nAvailability: ")
	b.WriteString(e.Availability.String())
	return b.String()
}

// HasSkill reports whether the record lists the given skill.
// Matching is case-insensitive.
func (e *EmployeeRecord) HasSkill(skill string) bool {
	for _, s := range e.Skills {
		if strings.EqualFold(s, skill) {
			return true
		}
	}
	return false
}

// FingerprintRecords computes a deterministic content fingerprint over a
// record set. Two snapshots built from the same records share a fingerprint.
func FingerprintRecords(records []*EmployeeRecord) ID {
	h, _ := blake2b.New(8, nil)
	var buf [8]byte
	for _, record := range records {
		binary.LittleEndian.PutUint64(buf[:], uint64(record.Id))
		h.Write(buf[:])
		h.Write([]byte(record.ProfileText()))
	}
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// QueryFilters holds explicit structured constraints for a staffing query.
// Zero values (nil pointers, empty strings) mean "unconstrained".
type QueryFilters struct {
	Skills        []string
	ExperienceMin *int
	ExperienceMax *int
	Department    string
	Availability  Availability
}

// HasConstraints reports whether any filter field is set.
func (f *QueryFilters) HasConstraints() bool {
	if f == nil {
		return false
	}
	return len(f.Skills) > 0 || f.ExperienceMin != nil || f.ExperienceMax != nil ||
		f.Department != "" || f.Availability != 0
}

// ConstraintCount returns the number of individual constraints requested.
// Each requested skill counts as one constraint; each set experience bound
// counts as one constraint.
func (f *QueryFilters) ConstraintCount() int {
	if f == nil {
		return 0
	}
	n := len(f.Skills)
	if f.ExperienceMin != nil {
		n++
	}
	if f.ExperienceMax != nil {
		n++
	}
	if f.Department != "" {
		n++
	}
	if f.Availability != 0 {
		n++
	}
	return n
}

// SearchResult is a single ranked hit from a staffing query.
type SearchResult struct {
	Record      *EmployeeRecord
	Similarity  float32 // cosine similarity clamped to [0,1]
	FilterMatch bool    // all requested constraints satisfied
	FilterScore float32 // fraction of requested constraints satisfied
	Score       float32 // fused ranking score
}

// ResponseSource identifies which generation strategy produced a response.
type ResponseSource int

const (
	// ResponseSourceModel means an external generative model produced the text.
	ResponseSourceModel ResponseSource = iota + 1
	// ResponseSourceTemplate means the deterministic template produced the text.
	ResponseSourceTemplate
)

// String returns a readable name for the source.
func (s ResponseSource) String() string {
	switch s {
	case ResponseSourceModel:
		return "model"
	case ResponseSourceTemplate:
		return "template"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}

// GeneratedResponse is the full answer to a staffing query: the ranked
// candidates plus natural-language text. Text is never empty.
type GeneratedResponse struct {
	Text       string
	Candidates []*SearchResult
	Source     ResponseSource
	SessionID  string // opaque pass-through from the caller
}

// SkillCount pairs a skill with the number of employees listing it.
type SkillCount struct {
	Skill string
	Count int
}

// DirectoryStats summarizes the employee directory.
type DirectoryStats struct {
	TotalEmployees int
	Departments    map[string]int
	TopSkills      []SkillCount // descending by count, ties by skill name
	AvgExperience  float64
}
