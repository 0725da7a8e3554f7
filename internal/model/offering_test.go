package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// course builds a one-meeting offering with the fields the engine cares
// about. Tests that need a second meeting or custom durations set them on the
// returned value.
func course(shortTitle, section, category, day, slot string) *Offering {
	return &Offering{
		Code:            "CS0000",
		Title:           shortTitle,
		ShortTitle:      shortTitle,
		Section:         section,
		Instructor:      "Instructor " + shortTitle,
		InstructorShort: "I" + shortTitle,
		CreditHours:     3,
		Category:        category,
		Day1:            day,
		Slot1:           slot,
		Venue1:          "E-1",
		DurationMinutes: 80,
	}
}

func TestNextSlot(t *testing.T) {
	t.Run("middle of the grid", func(t *testing.T) {
		next, ok := NextSlot("10:00")
		assert.True(t, ok)
		assert.Equal(t, "11:30", next)
	})

	t.Run("last slot has no successor", func(t *testing.T) {
		_, ok := NextSlot("19:00")
		assert.False(t, ok)
	})

	t.Run("unknown slot", func(t *testing.T) {
		_, ok := NextSlot("09:15")
		assert.False(t, ok)
	})
}

func TestIsLab(t *testing.T) {
	t.Run("long duration", func(t *testing.T) {
		offering := course("Applied ML", "BCS-8A", "Core", "Mon", "08:30")
		offering.DurationMinutes = 170
		assert.True(t, offering.IsLab())
	})

	t.Run("lab marker in title", func(t *testing.T) {
		offering := course("AI", "BCS-8A", "Core", "Mon", "08:30")
		offering.Title = "AI Lab"
		assert.True(t, offering.IsLab())
	})

	t.Run("regular lecture", func(t *testing.T) {
		offering := course("AI", "BCS-8A", "Core", "Mon", "08:30")
		assert.False(t, offering.IsLab())
	})
}

func TestTimeSlots(t *testing.T) {
	t.Run("two weekly meetings", func(t *testing.T) {
		offering := course("Web Pro", "BCS-8A", "Core", "Mon", "08:30")
		offering.Day2, offering.Slot2, offering.Venue2 = "Wed", "10:00", "E-2"

		slots := offering.TimeSlots()

		assert.Equal(t, []Meeting{
			{Day: "Mon", Slot: "08:30", Venue: "E-1"},
			{Day: "Wed", Slot: "10:00", Venue: "E-2"},
		}, slots)
	})

	t.Run("absent second meeting is skipped", func(t *testing.T) {
		offering := course("Web Pro", "BCS-8A", "Core", "Mon", "08:30")
		assert.Len(t, offering.TimeSlots(), 1)
	})

	t.Run("lab extends into the next slot", func(t *testing.T) {
		offering := course("AI Lab", "BCS-8A", "Core", "Tue", "14:30")
		offering.DurationMinutes = 170

		slots := offering.TimeSlots()

		assert.Equal(t, []Meeting{
			{Day: "Tue", Slot: "14:30", Venue: "E-1"},
			{Day: "Tue", Slot: "16:00", Venue: "E-1"},
		}, slots)
	})

	t.Run("lab in the last slot truncates at the grid boundary", func(t *testing.T) {
		offering := course("AI Lab", "BCS-8A", "Core", "Tue", "19:00")
		offering.DurationMinutes = 170

		slots := offering.TimeSlots()

		assert.Equal(t, []Meeting{{Day: "Tue", Slot: "19:00", Venue: "E-1"}}, slots)
	})

	t.Run("missing venue defaults to TBD", func(t *testing.T) {
		offering := course("Web Pro", "BCS-8A", "Core", "Mon", "08:30")
		offering.Venue1 = ""
		assert.Equal(t, "TBD", offering.TimeSlots()[0].Venue)
	})
}

func TestConflictsWith(t *testing.T) {
	t.Run("same day and slot", func(t *testing.T) {
		a := course("Web Pro", "BCS-8A", "Core", "Mon", "08:30")
		b := course("Applied ML", "BCS-8B", "Core", "Mon", "08:30")
		assert.True(t, a.ConflictsWith(b))
	})

	t.Run("same slot on different days", func(t *testing.T) {
		a := course("Web Pro", "BCS-8A", "Core", "Mon", "08:30")
		b := course("Applied ML", "BCS-8B", "Core", "Tue", "08:30")
		assert.False(t, a.ConflictsWith(b))
	})

	t.Run("lab extension collides with the following slot", func(t *testing.T) {
		lab := course("AI Lab", "BCS-8A", "Core", "Mon", "08:30")
		lab.DurationMinutes = 170
		lecture := course("Applied ML", "BCS-8B", "Core", "Mon", "10:00")
		assert.True(t, lab.ConflictsWith(lecture))
	})
}

func TestSelection(t *testing.T) {
	t.Run("slot signature ignores offering identity", func(t *testing.T) {
		a := Selection{course("Web Pro", "BCS-8A", "Core", "Mon", "08:30")}
		b := Selection{course("Applied ML", "BCS-8B", "Core", "Mon", "08:30")}
		assert.Equal(t, a.SlotSignature(), b.SlotSignature())
	})

	t.Run("slot signature is order independent", func(t *testing.T) {
		web := course("Web Pro", "BCS-8A", "Core", "Mon", "08:30")
		ml := course("Applied ML", "BCS-8A", "Core", "Tue", "10:00")
		assert.Equal(t, Selection{web, ml}.SlotSignature(), Selection{ml, web}.SlotSignature())
	})

	t.Run("slot key collapses ranges to start times", func(t *testing.T) {
		assert.Equal(t, "Mon_08:30", SlotKey("Mon", "08:30-09:50"))
	})

	t.Run("pairwise conflicts", func(t *testing.T) {
		selection := Selection{
			course("Web Pro", "BCS-8A", "Core", "Mon", "08:30"),
			course("Applied ML", "BCS-8A", "Core", "Tue", "10:00"),
			course("Cyber Tools", "BCS-8A", "Core", "Tue", "10:00"),
		}
		assert.True(t, selection.HasConflicts())
		assert.False(t, selection[:2].HasConflicts())
	})
}
