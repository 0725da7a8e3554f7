package model

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Selection is one fully resolved, conflict-free schedule: one offering per
// required course plus one offering per wildcard slot, in resolution order.
type Selection []*Offering

// HasConflicts reports whether any unordered pair within the selection shares
// an occupied (day, slot) cell. Selections are small (typically 4-8
// offerings), so the pairwise check is fine.
func (s Selection) HasConflicts() bool {
	for i, a := range s {
		for _, b := range s[i+1:] {
			if a.ConflictsWith(b) {
				return true
			}
		}
	}
	return false
}

// SlotSignature is the deduplication and grouping key: the sorted set of
// "day_start" cells the selection occupies. Two selections with equal
// signatures fill the same grid cells even when the offerings behind them
// differ.
func (s Selection) SlotSignature() string {
	keys := make([]string, 0, len(s)*2)
	for _, offering := range s {
		for _, meeting := range offering.TimeSlots() {
			keys = append(keys, SlotKey(meeting.Day, meeting.Slot))
		}
	}
	sort.Strings(keys)
	return strings.Join(keys, "|")
}

// SlotKey builds the canonical "day_start" cell key. Slot ranges such as
// "08:30-09:50" collapse to their start time.
func SlotKey(day, slot string) string {
	start, _, _ := strings.Cut(slot, "-")
	return day + "_" + start
}

// TotalCredits sums the credit hours across the selection.
func (s Selection) TotalCredits() int {
	return lo.SumBy(s, func(o *Offering) int { return o.CreditHours })
}
