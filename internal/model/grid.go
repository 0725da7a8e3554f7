package model

// SlotStarts is the fixed, ordered grid of slot start times shared by every
// teaching day. Lab offerings extend a meeting into the following slot, so
// order matters here.
var SlotStarts = []string{
	"08:30", "10:00", "11:30", "13:00",
	"14:30", "16:00", "17:30", "19:00",
}

// Days are the teaching days, in week order.
var Days = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}

// NextSlot returns the slot following start in the grid. It reports false
// when start is the last slot of the day or not a grid slot at all.
func NextSlot(start string) (string, bool) {
	for i, slot := range SlotStarts {
		if slot == start && i+1 < len(SlotStarts) {
			return SlotStarts[i+1], true
		}
	}
	return "", false
}
