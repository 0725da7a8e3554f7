// Package pattern groups generated selections into presentable slot
// patterns: one pattern per distinct slot signature, with every
// course-section alternative merged per occupied slot.
package pattern

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"timetabler/internal/model"
)

// SlotDetail is one occupied (day, time, venue) cell of a course section.
type SlotDetail struct {
	Day   string `json:"day"`
	Time  string `json:"time"`
	Venue string `json:"venue"`
}

// SlotCourse is one course-section alternative able to occupy a slot, with
// enough offering detail for a caller to render a grid cell.
type SlotCourse struct {
	ShortTitle      string       `json:"short_title"`
	Section         string       `json:"section"`
	Instructor      string       `json:"instructor"`
	InstructorShort string       `json:"instructor_short"`
	Category        string       `json:"category"`
	CreditHours     int          `json:"credit_hours"`
	IsLab           bool         `json:"is_lab"`
	IsRequired      bool         `json:"is_required"`
	Slots           []SlotDetail `json:"slots"`
}

// Slot is one occupied grid cell of a pattern, listing every alternative seen
// across the pattern's selections.
type Slot struct {
	Key     string       `json:"key"`
	Day     string       `json:"day"`
	Time    string       `json:"time"`
	Courses []SlotCourse `json:"courses"`
}

// Pattern is the aggregate of every selection sharing a slot signature.
type Pattern struct {
	ID               int          `json:"pattern_id"`
	Slots            []Slot       `json:"slots"`
	SlotKeys         []string     `json:"slot_keys"`
	NumCourses       int          `json:"num_courses"`
	TotalCredits     int          `json:"total_credits"`
	NumVariations    int          `json:"num_variations"`
	Summary          string       `json:"summary"`
	DefaultSelection []SlotCourse `json:"default_selection"`
}

// Aggregate groups selections by slot signature and merges, per slot, every
// distinct (course, section) pair seen across the group. The generator emits
// at most one selection per signature per call, so callers wanting several
// variations per pattern pass selections collected under a generous result
// cap. Patterns with more variations sort first; the first-encountered
// selection of each group becomes its default.
func Aggregate(selections []model.Selection, requiredCourses []string) []Pattern {
	required := make(map[string]bool, len(requiredCourses))
	for _, name := range requiredCourses {
		required[name] = true
	}

	order := []string{}
	groups := map[string][]model.Selection{}
	for _, selection := range selections {
		signature := selection.SlotSignature()
		if _, ok := groups[signature]; !ok {
			order = append(order, signature)
		}
		groups[signature] = append(groups[signature], selection)
	}

	patterns := make([]Pattern, 0, len(order))
	for _, signature := range order {
		patterns = append(patterns, buildPattern(signature, groups[signature], required))
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].NumVariations > patterns[j].NumVariations
	})
	for i := range patterns {
		patterns[i].ID = i + 1
	}
	return patterns
}

func buildPattern(signature string, selections []model.Selection, required map[string]bool) Pattern {
	courses := map[string][]SlotCourse{}
	seen := map[string]map[string]bool{}

	for _, selection := range selections {
		for _, offering := range selection {
			courseKey := offering.ShortTitle + "_" + offering.Section
			for _, meeting := range offering.TimeSlots() {
				slotKey := model.SlotKey(meeting.Day, meeting.Slot)
				if seen[slotKey] == nil {
					seen[slotKey] = map[string]bool{}
				}
				if seen[slotKey][courseKey] {
					continue
				}
				seen[slotKey][courseKey] = true
				courses[slotKey] = append(courses[slotKey], slotCourse(offering, required))
			}
		}
	}

	keys := lo.Keys(courses)
	sort.Strings(keys)
	slots := make([]Slot, 0, len(keys))
	for _, key := range keys {
		day, start, _ := strings.Cut(key, "_")
		slots = append(slots, Slot{Key: key, Day: day, Time: start, Courses: courses[key]})
	}

	names := lo.Uniq(lo.FlatMap(selections, func(selection model.Selection, _ int) []string {
		return lo.Map(selection, func(offering *model.Offering, _ int) string {
			return offering.ShortTitle
		})
	}))
	sort.Strings(names)

	sample := selections[0]
	return Pattern{
		Slots:         slots,
		SlotKeys:      strings.Split(signature, "|"),
		NumCourses:    len(sample),
		TotalCredits:  sample.TotalCredits(),
		NumVariations: len(selections),
		Summary:       strings.Join(names, " + "),
		DefaultSelection: lo.Map(sample, func(offering *model.Offering, _ int) SlotCourse {
			return slotCourse(offering, required)
		}),
	}
}

func slotCourse(offering *model.Offering, required map[string]bool) SlotCourse {
	return SlotCourse{
		ShortTitle:      offering.ShortTitle,
		Section:         offering.Section,
		Instructor:      offering.Instructor,
		InstructorShort: offering.InstructorShort,
		Category:        offering.Category,
		CreditHours:     offering.CreditHours,
		IsLab:           offering.IsLab(),
		IsRequired:      required[offering.ShortTitle],
		Slots: lo.Map(offering.TimeSlots(), func(meeting model.Meeting, _ int) SlotDetail {
			return SlotDetail{Day: meeting.Day, Time: meeting.Slot, Venue: meeting.Venue}
		}),
	}
}
