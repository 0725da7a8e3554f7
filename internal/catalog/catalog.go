package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"timetabler/internal/model"
)

// Column headers of the timetable sheet. The published spreadsheet carries a
// trailing space in the category header, so lookups trim header cells first.
const (
	colCode            = "Code"
	colTitle           = "Course Title"
	colShortTitle      = "Course Short Title"
	colSection         = "Section"
	colInstructor      = "Instructor Name"
	colInstructorShort = "Instructor Short Name"
	colCreditHours     = "Credit Hours"
	colCategory        = "Category"
	colDay1            = "Day 1"
	colSlot1           = "Slot 1"
	colVenue1          = "Venue 1"
	colDay2            = "Day 2"
	colSlot2           = "Slot 2"
	colVenue2          = "Venue 2"
	colDuration        = "Duration in Minutes"
)

const (
	defaultCreditHours = 3
	defaultDuration    = 80
	unknownInstructor  = "TBD"
)

// Catalog is the process-wide, read-only list of course offerings. It is
// loaded once at startup and shared by every generation request.
type Catalog struct {
	Offerings []*model.Offering
}

// Load reads the offerings from the given sheet of an xlsx timetable. The
// sheet's second row holds the column headers. Rows missing a section or
// course title are skipped; missing optional fields take their defaults.
func Load(path, sheet string) (*Catalog, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open timetable file: %w", err)
	}
	defer file.Close()

	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no header row", sheet)
	}

	columns := make(map[string]int)
	for i, header := range rows[1] {
		columns[strings.TrimSpace(header)] = i
	}

	offerings := make([]*model.Offering, 0, len(rows))
	for _, row := range rows[2:] {
		cell := func(name string) string {
			index, ok := columns[name]
			if !ok || index >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[index])
		}

		section, title := cell(colSection), cell(colTitle)
		if section == "" || title == "" {
			continue
		}

		offerings = append(offerings, &model.Offering{
			Code:            cell(colCode),
			Title:           title,
			ShortTitle:      cell(colShortTitle),
			Section:         section,
			Instructor:      orDefault(cell(colInstructor), unknownInstructor),
			InstructorShort: orDefault(cell(colInstructorShort), unknownInstructor),
			CreditHours:     parseIntCell(cell(colCreditHours), defaultCreditHours),
			Category:        cell(colCategory),
			Day1:            cell(colDay1),
			Slot1:           cell(colSlot1),
			Venue1:          cell(colVenue1),
			Day2:            cell(colDay2),
			Slot2:           cell(colSlot2),
			Venue2:          cell(colVenue2),
			DurationMinutes: parseIntCell(cell(colDuration), defaultDuration),
		})
	}

	log.Info().Int("offerings", len(offerings)).Str("file", path).Msg("catalog loaded")
	return &Catalog{Offerings: offerings}, nil
}

// ForBatch returns the offerings scoped to the batch's semester prefix.
func (c *Catalog) ForBatch(batch string) []*model.Offering {
	prefix := model.Constraints{Batch: batch}.SemesterPrefix()
	return lo.Filter(c.Offerings, func(offering *model.Offering, _ int) bool {
		return strings.HasPrefix(offering.Section, prefix)
	})
}

// Instructors lists the instructors teaching the batch, sorted.
func (c *Catalog) Instructors(batch string) []string {
	return instructorNames(c.ForBatch(batch))
}

// AllInstructors lists every program instructor across all batches, sorted.
// Repeaters may need instructors from other semesters.
func (c *Catalog) AllInstructors() []string {
	program := lo.Filter(c.Offerings, func(offering *model.Offering, _ int) bool {
		return strings.HasPrefix(offering.Section, model.ProgramPrefix)
	})
	return instructorNames(program)
}

// CoursesByCategory groups the batch's course names by category, sorted
// within each category. Offerings without a category land in "Uncategorized".
func (c *Catalog) CoursesByCategory(batch string) map[string][]string {
	return coursesByCategory(c.ForBatch(batch))
}

// AllCoursesByCategory groups every program course across all batches.
func (c *Catalog) AllCoursesByCategory() map[string][]string {
	program := lo.Filter(c.Offerings, func(offering *model.Offering, _ int) bool {
		return strings.HasPrefix(offering.Section, model.ProgramPrefix)
	})
	return coursesByCategory(program)
}

func instructorNames(offerings []*model.Offering) []string {
	names := lo.Uniq(lo.FilterMap(offerings, func(offering *model.Offering, _ int) (string, bool) {
		return offering.Instructor, offering.Instructor != "" && offering.Instructor != unknownInstructor
	}))
	sort.Strings(names)
	return names
}

func coursesByCategory(offerings []*model.Offering) map[string][]string {
	byCategory := make(map[string][]string)
	for _, offering := range offerings {
		category := offering.Category
		if category == "" {
			category = "Uncategorized"
		}
		byCategory[category] = append(byCategory[category], offering.ShortTitle)
	}
	for category, names := range byCategory {
		unique := lo.Uniq(names)
		sort.Strings(unique)
		byCategory[category] = unique
	}
	return byCategory
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// parseIntCell tolerates the float rendering excel gives numeric cells, e.g.
// "170.0" for a lab duration.
func parseIntCell(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return int(parsed)
}
