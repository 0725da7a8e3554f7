package model

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Offering is one scheduled section of a course: up to two weekly meetings
// plus the identifiers needed for matching and display. Offerings are built
// once at catalog load time and never mutated afterwards.
type Offering struct {
	Code            string
	Title           string
	ShortTitle      string
	Section         string
	Instructor      string
	InstructorShort string
	CreditHours     int
	Category        string
	Day1            string
	Slot1           string
	Venue1          string
	Day2            string
	Slot2           string
	Venue2          string
	DurationMinutes int
}

// Meeting is a single occupied cell of the weekly grid.
type Meeting struct {
	Day   string
	Slot  string
	Venue string
}

// Meetings longer than this occupy two consecutive slots.
const labDurationMinutes = 100

// IsLab reports whether the offering takes two consecutive slots per meeting.
func (o *Offering) IsLab() bool {
	return o.DurationMinutes > labDurationMinutes || strings.Contains(o.Title, "Lab")
}

// TimeSlots returns every (day, slot, venue) cell the offering occupies. Lab
// offerings additionally occupy the slot following each meeting; a meeting in
// the last slot of the day is truncated at the grid boundary rather than
// extended.
func (o *Offering) TimeSlots() []Meeting {
	meetings := make([]Meeting, 0, 4)
	for _, raw := range [][3]string{
		{o.Day1, o.Slot1, o.Venue1},
		{o.Day2, o.Slot2, o.Venue2},
	} {
		day, slot, venue := raw[0], raw[1], raw[2]
		if day == "" || slot == "" {
			continue
		}
		if venue == "" {
			venue = "TBD"
		}
		meetings = append(meetings, Meeting{Day: day, Slot: slot, Venue: venue})
		if o.IsLab() {
			if next, ok := NextSlot(slot); ok {
				meetings = append(meetings, Meeting{Day: day, Slot: next, Venue: venue})
			}
		}
	}
	return meetings
}

// ConflictsWith reports whether the two offerings share any occupied
// (day, slot) cell.
func (o *Offering) ConflictsWith(other *Offering) bool {
	for _, a := range o.TimeSlots() {
		for _, b := range other.TimeSlots() {
			if a.Day == b.Day && a.Slot == b.Slot {
				return true
			}
		}
	}
	return false
}

func (o *Offering) String() string {
	slots := lo.Map(o.TimeSlots(), func(m Meeting, _ int) string {
		return m.Day + " " + m.Slot
	})
	label := fmt.Sprintf("%v (%v): %v [%v]", o.ShortTitle, o.Section, o.InstructorShort, strings.Join(slots, ", "))
	if o.IsLab() {
		label += " [LAB]"
	}
	return label
}
