package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/samber/lo"

	"timetabler/internal/catalog"
	"timetabler/internal/model"
)

func main() {
	// Define arguments
	filePtr := flag.String("file", "timetable/FSC TT Spring 2026 v1.3.2.xlsx", "Path to the timetable xlsx file")
	sheetPtr := flag.String("sheet", "CS", "Sheet holding the timetable")
	batchPtr := flag.String("batch", "BCS-2022", "Batch year (e.g. BCS-2022)")
	coursesPtr := flag.String("courses", "", "Required courses as comma-separated short titles")
	excludeInstructorsPtr := flag.String("exclude-instructors", "", "Comma-separated instructor names to exclude")
	excludeSlotsPtr := flag.String("exclude-slots", "", "Comma-separated slot starts to exclude (e.g. 08:30,19:00)")
	csElectivesPtr := flag.Int("cs-electives", 0, "Number of CS electives to auto-add")
	universityElectivesPtr := flag.Int("university-electives", 0, "Number of university electives to auto-add")
	roboElectivesPtr := flag.Int("robo-electives", 0, "Number of robotics electives to auto-add")
	maxResultsPtr := flag.Int("max", 5, "Maximum number of timetables to generate")
	listCoursesPtr := flag.Bool("list-courses", false, "List available courses for the batch and exit")
	listInstructorsPtr := flag.Bool("list-instructors", false, "List available instructors for the batch and exit")
	flag.Parse()

	cat, err := catalog.Load(*filePtr, *sheetPtr)
	if err != nil {
		log.Fatalf("cannot load timetable: %v", err)
	}

	if *listCoursesPtr {
		fmt.Printf("Available courses for %v:\n", *batchPtr)
		byCategory := cat.CoursesByCategory(*batchPtr)
		categories := lo.Keys(byCategory)
		sort.Strings(categories)
		for _, category := range categories {
			fmt.Printf("\n  %v:\n", category)
			for _, name := range byCategory[category] {
				fmt.Printf("    - %v\n", name)
			}
		}
		return
	}

	if *listInstructorsPtr {
		fmt.Printf("Instructors for %v:\n", *batchPtr)
		for _, instructor := range cat.Instructors(*batchPtr) {
			fmt.Printf("  - %v\n", instructor)
		}
		return
	}

	requiredCourses := splitList(*coursesPtr)
	if len(requiredCourses) == 0 {
		log.Fatal("at least one required course must be specified via -courses")
	}

	wildcardCounts := map[string]int{}
	if *csElectivesPtr > 0 {
		wildcardCounts[model.WildcardCSElective] = *csElectivesPtr
	}
	if *universityElectivesPtr > 0 {
		wildcardCounts[model.WildcardUniversityElective] = *universityElectivesPtr
	}
	if *roboElectivesPtr > 0 {
		wildcardCounts[model.WildcardRoboElective] = *roboElectivesPtr
	}

	constraints := model.Constraints{
		Batch:               *batchPtr,
		RequiredCourses:     requiredCourses,
		ExcludedInstructors: splitList(*excludeInstructorsPtr),
		ExcludedTimeSlots:   splitList(*excludeSlotsPtr),
		WildcardCounts:      wildcardCounts,
	}

	generator := model.NewGenerator(cat.Offerings)
	selections, diagnostics := generator.Generate(constraints, *maxResultsPtr)

	for _, diagnostic := range diagnostics {
		fmt.Printf("warning: %v\n", diagnostic)
	}

	if len(selections) == 0 {
		fmt.Println("No valid timetables found. Try relaxing some constraints.")
		return
	}

	fmt.Printf("Found %v valid timetable(s)\n", len(selections))
	for i, selection := range selections {
		fmt.Print(formatTimetable(selection, i+1))
	}
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	return lo.FilterMap(strings.Split(value, ","), func(item string, _ int) (string, bool) {
		trimmed := strings.TrimSpace(item)
		return trimmed, trimmed != ""
	})
}

const cellWidth = 18

// formatTimetable renders a selection as a week grid followed by per-course
// details.
func formatTimetable(selection model.Selection, option int) string {
	grid := map[string]map[string][]string{}
	for _, day := range model.Days {
		grid[day] = map[string][]string{}
	}
	for _, offering := range selection {
		for _, meeting := range offering.TimeSlots() {
			start, _, _ := strings.Cut(meeting.Slot, "-")
			if cells, ok := grid[meeting.Day]; ok {
				cells[start] = append(cells[start], offering.ShortTitle)
			}
		}
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "\nTIMETABLE OPTION %v\n", option)

	header := fmt.Sprintf("%-8v", "Time")
	for _, day := range model.Days {
		header += fmt.Sprintf("| %-*v", cellWidth, day)
	}
	builder.WriteString(header + "\n")
	builder.WriteString(strings.Repeat("-", len(header)) + "\n")

	for _, slot := range model.SlotStarts {
		row := fmt.Sprintf("%-8v", slot)
		for _, day := range model.Days {
			cell := strings.Join(grid[day][slot], ", ")
			if cell == "" {
				cell = "."
			}
			if len(cell) > cellWidth {
				cell = cell[:cellWidth-2] + ".."
			}
			row += fmt.Sprintf("| %-*v", cellWidth, cell)
		}
		builder.WriteString(row + "\n")
	}

	builder.WriteString("\n")
	for _, offering := range selection {
		meetings := offering.TimeSlots()
		schedule := strings.Join(lo.Map(meetings, func(m model.Meeting, _ int) string {
			return m.Day + " " + m.Slot
		}), " & ")
		venues := strings.Join(lo.Uniq(lo.Map(meetings, func(m model.Meeting, _ int) string {
			return m.Venue
		})), ", ")
		fmt.Fprintf(&builder, "  %v (%v) - %v\n", offering.ShortTitle, offering.Section, offering.InstructorShort)
		fmt.Fprintf(&builder, "    %v @ %v [%v]\n", schedule, venues, offering.Category)
	}

	fmt.Fprintf(&builder, "\n  Total: %v courses, %v credit hours\n", len(selection), selection.TotalCredits())
	return builder.String()
}
