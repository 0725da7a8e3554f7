package model

import "slices"

// ProgramPrefix marks the sections managed by the computing program.
// Offerings outside it are never eligible for generation.
const ProgramPrefix = "BCS-"

// Wildcard category keys accepted in Constraints.WildcardCounts. Any other
// key is matched against the offering category by exact equality.
const (
	WildcardUniversityElective = "University Elective"
	WildcardCSElective         = "CS Elective"
	WildcardRoboElective       = "Robo Elective"
)

var universityElectiveCategories = []string{
	"MG (Elective)",
	"HSS (Elective)",
	"Mandatory Elec",
}

const (
	csElectiveCategory   = "CS (Elective)"
	roboElectiveCategory = "Robo (Elective)"
)

var batchSemesters = map[string]string{
	"BCS-2025": "BCS-2",
	"BCS-2024": "BCS-4",
	"BCS-2023": "BCS-6",
	"BCS-2022": "BCS-8",
	"BCS-2021": "BCS-10",
}

const defaultSemesterPrefix = "BCS-8"

// Constraints narrows the catalog for a single generation request. It is a
// value object: built once per request and never mutated by the engine.
type Constraints struct {
	Batch               string
	RequiredCourses     []string
	SectionPreferences  map[string][]string // nil or empty slice means any section
	ExcludedInstructors []string
	ExcludedTimeSlots   []string // slot-start prefixes, e.g. "08:30"
	WildcardCounts      map[string]int
}

// SemesterPrefix resolves the batch to its current semester's section prefix.
// Unmapped batches fall back to the default semester.
func (c Constraints) SemesterPrefix() string {
	if prefix, ok := batchSemesters[c.Batch]; ok {
		return prefix
	}
	return defaultSemesterPrefix
}

func (c Constraints) isRequired(shortTitle string) bool {
	return slices.Contains(c.RequiredCourses, shortTitle)
}

// matchesWildcard reports whether an offering category satisfies a wildcard
// key. The named keys cover fixed category sets; unknown keys fall through to
// exact equality for legacy callers.
func matchesWildcard(category, wildcard string) bool {
	switch wildcard {
	case WildcardUniversityElective:
		return slices.Contains(universityElectiveCategories, category)
	case WildcardCSElective:
		return category == csElectiveCategory
	case WildcardRoboElective:
		return category == roboElectiveCategory
	default:
		return category == wildcard
	}
}
