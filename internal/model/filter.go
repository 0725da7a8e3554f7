package model

import (
	"strings"

	"github.com/samber/lo"
)

// Filter returns the catalog offerings eligible under the constraints,
// preserving catalog order. Required courses stay visible across every
// semester so students repeating an earlier course can still pick them up;
// all other offerings are scoped to the batch's semester prefix.
func Filter(catalog []*Offering, constraints Constraints) []*Offering {
	prefix := constraints.SemesterPrefix()
	filtered := make([]*Offering, 0, len(catalog))
	for _, offering := range catalog {
		if !strings.HasPrefix(offering.Section, ProgramPrefix) {
			continue
		}
		if !constraints.isRequired(offering.ShortTitle) && !strings.HasPrefix(offering.Section, prefix) {
			continue
		}
		if instructorExcluded(offering, constraints.ExcludedInstructors) {
			continue
		}
		if slotExcluded(offering, constraints.ExcludedTimeSlots) {
			continue
		}
		filtered = append(filtered, offering)
	}
	return filtered
}

func instructorExcluded(offering *Offering, excluded []string) bool {
	return lo.SomeBy(excluded, func(name string) bool {
		needle := strings.ToLower(name)
		return strings.Contains(strings.ToLower(offering.Instructor), needle) ||
			strings.Contains(strings.ToLower(offering.InstructorShort), needle)
	})
}

func slotExcluded(offering *Offering, excludedPrefixes []string) bool {
	for _, meeting := range offering.TimeSlots() {
		for _, prefix := range excludedPrefixes {
			if strings.HasPrefix(meeting.Slot, prefix) {
				return true
			}
		}
	}
	return false
}
