package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	t.Run("picks the non-overlapping section", func(t *testing.T) {
		// Arrange: two Web Pro sections, one of which collides with the only
		// Applied ML section.
		catalog := []*Offering{
			course("Web Pro", "BCS-8A", "Core", "Mon", "08:30"),
			course("Web Pro", "BCS-8B", "Core", "Tue", "10:00"),
			course("Applied ML", "BCS-8A", "Core", "Mon", "08:30"),
		}
		generator := NewGenerator(catalog)

		// Act
		selections, diagnostics := generator.Generate(Constraints{
			Batch:           "BCS-2022",
			RequiredCourses: []string{"Web Pro", "Applied ML"},
		}, 10)

		// Assert
		assert.Empty(t, diagnostics)
		assert.Len(t, selections, 1)
		assert.Equal(t, "BCS-8B", selections[0][0].Section)
		assert.Equal(t, "Applied ML", selections[0][1].ShortTitle)
	})

	t.Run("missing required course degrades to empty with a diagnostic", func(t *testing.T) {
		catalog := []*Offering{
			course("Web Pro", "BCS-8A", "Core", "Mon", "08:30"),
		}
		generator := NewGenerator(catalog)

		selections, diagnostics := generator.Generate(Constraints{
			Batch:           "BCS-2022",
			RequiredCourses: []string{"Quantum Computing"},
		}, 10)

		assert.Empty(t, selections)
		assert.Len(t, diagnostics, 1)
		assert.Equal(t, DiagnosticCourseNotFound, diagnostics[0].Kind)
		assert.Equal(t, "Quantum Computing", diagnostics[0].Subject)
	})

	t.Run("quota above the pool size clamps to the whole pool", func(t *testing.T) {
		catalog := []*Offering{
			course("Web Pro", "BCS-8A", "Core", "Mon", "08:30"),
			course("Data Mining", "BCS-8A", "CS (Elective)", "Tue", "10:00"),
		}
		generator := NewGenerator(catalog)

		selections, diagnostics := generator.Generate(Constraints{
			Batch:           "BCS-2022",
			RequiredCourses: []string{"Web Pro"},
			WildcardCounts:  map[string]int{WildcardCSElective: 2},
		}, 10)

		assert.Empty(t, diagnostics)
		assert.Len(t, selections, 1)
		// One required plus one wildcard, not two wildcards.
		assert.Len(t, selections[0], 2)
		assert.Equal(t, "Data Mining", selections[0][1].ShortTitle)
	})

	t.Run("venue-only variants collapse to one signature", func(t *testing.T) {
		a := course("Web Pro", "BCS-8A", "Core", "Mon", "08:30")
		b := course("Web Pro", "BCS-8B", "Core", "Mon", "08:30")
		b.Venue1 = "E-9"
		generator := NewGenerator([]*Offering{a, b})

		selections, _ := generator.Generate(Constraints{
			Batch:           "BCS-2022",
			RequiredCourses: []string{"Web Pro"},
		}, 10)

		assert.Len(t, selections, 1)
		assert.Equal(t, "BCS-8A", selections[0][0].Section)
	})

	t.Run("section preference restricts the option set", func(t *testing.T) {
		catalog := []*Offering{
			course("Web Pro", "BCS-8A", "Core", "Mon", "08:30"),
			course("Web Pro", "BCS-8B", "Core", "Tue", "10:00"),
		}
		generator := NewGenerator(catalog)

		selections, diagnostics := generator.Generate(Constraints{
			Batch:              "BCS-2022",
			RequiredCourses:    []string{"Web Pro"},
			SectionPreferences: map[string][]string{"Web Pro": {"BCS-8B"}},
		}, 10)

		assert.Empty(t, diagnostics)
		assert.Len(t, selections, 1)
		assert.Equal(t, "BCS-8B", selections[0][0].Section)
	})

	t.Run("unknown preferred section falls back to all sections", func(t *testing.T) {
		catalog := []*Offering{
			course("Web Pro", "BCS-8A", "Core", "Mon", "08:30"),
			course("Web Pro", "BCS-8B", "Core", "Tue", "10:00"),
		}
		generator := NewGenerator(catalog)

		selections, diagnostics := generator.Generate(Constraints{
			Batch:              "BCS-2022",
			RequiredCourses:    []string{"Web Pro"},
			SectionPreferences: map[string][]string{"Web Pro": {"BCS-8Z"}},
		}, 10)

		assert.Len(t, diagnostics, 1)
		assert.Equal(t, DiagnosticSectionNotFound, diagnostics[0].Kind)
		assert.Len(t, selections, 2)
	})

	t.Run("empty wildcard pool reports a diagnostic", func(t *testing.T) {
		catalog := []*Offering{
			course("Web Pro", "BCS-8A", "Core", "Mon", "08:30"),
		}
		generator := NewGenerator(catalog)

		selections, diagnostics := generator.Generate(Constraints{
			Batch:           "BCS-2022",
			RequiredCourses: []string{"Web Pro"},
			WildcardCounts:  map[string]int{WildcardRoboElective: 1},
		}, 10)

		assert.Len(t, diagnostics, 1)
		assert.Equal(t, DiagnosticEmptyWildcardPool, diagnostics[0].Kind)
		// The category contributes no wildcard slots; required picks still emit.
		assert.Len(t, selections, 1)
		assert.Len(t, selections[0], 1)
	})

	t.Run("no resolvable required courses yields nothing", func(t *testing.T) {
		generator := NewGenerator([]*Offering{
			course("Data Mining", "BCS-8A", "CS (Elective)", "Tue", "10:00"),
		})

		selections, _ := generator.Generate(Constraints{
			Batch:          "BCS-2022",
			WildcardCounts: map[string]int{WildcardCSElective: 1},
		}, 10)

		assert.Empty(t, selections)
	})

	t.Run("repeater sees a required course from an earlier semester", func(t *testing.T) {
		catalog := []*Offering{
			course("OOP", "BCS-4A", "Core", "Mon", "08:30"),
			course("Web Pro", "BCS-8A", "Core", "Tue", "10:00"),
		}
		generator := NewGenerator(catalog)

		selections, diagnostics := generator.Generate(Constraints{
			Batch:           "BCS-2022",
			RequiredCourses: []string{"OOP", "Web Pro"},
		}, 10)

		assert.Empty(t, diagnostics)
		assert.Len(t, selections, 1)
	})

	t.Run("max results caps the enumeration", func(t *testing.T) {
		// Arrange: 3x3 non-conflicting section grids give nine combinations.
		catalog := []*Offering{}
		days := []string{"Mon", "Tue", "Wed"}
		for i, day := range days {
			web := course("Web Pro", "BCS-8"+string(rune('A'+i)), "Core", day, "08:30")
			ml := course("Applied ML", "BCS-8"+string(rune('A'+i)), "Core", day, "11:30")
			catalog = append(catalog, web, ml)
		}
		generator := NewGenerator(catalog)
		constraints := Constraints{
			Batch:           "BCS-2022",
			RequiredCourses: []string{"Web Pro", "Applied ML"},
		}

		// Act & Assert
		selections, _ := generator.Generate(constraints, 4)
		assert.Len(t, selections, 4)

		selections, _ = generator.Generate(constraints, 100)
		assert.Len(t, selections, 9)

		selections, _ = generator.Generate(constraints, 0)
		assert.Empty(t, selections)
	})
}
