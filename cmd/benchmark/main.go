// Benchmark harness: times the schedule generator over synthetic catalogs of
// growing size and writes the measurements as CSV.
package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"timetabler/internal/model"
)

type TestMetadata struct {
	Name              string
	Courses           int
	SectionsPerCourse int
	ElectiveCourses   int
	ElectiveQuota     int
	MaxResults        int
}

type BenchmarkResult struct {
	Test       TestMetadata
	Selections int
	Duration   time.Duration
}

func main() {
	tests := getTests()
	results := make([]BenchmarkResult, 0, len(tests))

	for _, test := range tests {
		fmt.Printf("Benchmarking %q (courses=%v, sections=%v, electives=%v, quota=%v, max=%v)\n",
			test.Name, test.Courses, test.SectionsPerCourse, test.ElectiveCourses, test.ElectiveQuota, test.MaxResults)

		catalog := buildCatalog(test)
		generator := model.NewGenerator(catalog)
		constraints := constraintsFor(test)

		started := time.Now()
		selections, _ := generator.Generate(constraints, test.MaxResults)
		elapsed := time.Since(started)

		results = append(results, BenchmarkResult{
			Test:       test,
			Selections: len(selections),
			Duration:   elapsed,
		})
	}

	toCsv(results)
}

func getTests() []TestMetadata {
	return []TestMetadata{
		{Name: "small", Courses: 4, SectionsPerCourse: 2, ElectiveCourses: 2, ElectiveQuota: 1, MaxResults: 100},
		{Name: "medium", Courses: 5, SectionsPerCourse: 3, ElectiveCourses: 4, ElectiveQuota: 1, MaxResults: 500},
		{Name: "large", Courses: 6, SectionsPerCourse: 4, ElectiveCourses: 6, ElectiveQuota: 2, MaxResults: 1000},
		{Name: "capped", Courses: 6, SectionsPerCourse: 5, ElectiveCourses: 8, ElectiveQuota: 2, MaxResults: 50},
	}
}

// buildCatalog spreads sections deterministically over the grid so runs are
// comparable: course c, section s meets on day (c+s) and slot (2c+s), both
// modulo the grid sizes.
func buildCatalog(test TestMetadata) []*model.Offering {
	catalog := make([]*model.Offering, 0, (test.Courses+test.ElectiveCourses)*test.SectionsPerCourse)

	offering := func(name, category string, course, section int) *model.Offering {
		return &model.Offering{
			Title:           name,
			ShortTitle:      name,
			Section:         fmt.Sprintf("BCS-8%c", 'A'+section),
			Instructor:      fmt.Sprintf("Instructor %v", course),
			InstructorShort: fmt.Sprintf("I%v", course),
			CreditHours:     3,
			Category:        category,
			Day1:            model.Days[(course+section)%len(model.Days)],
			Slot1:           model.SlotStarts[(course*2+section)%len(model.SlotStarts)],
			Venue1:          "E-1",
			DurationMinutes: 80,
		}
	}

	for c := 0; c < test.Courses; c++ {
		name := fmt.Sprintf("Course %v", c)
		for s := 0; s < test.SectionsPerCourse; s++ {
			catalog = append(catalog, offering(name, "Core", c, s))
		}
	}
	for e := 0; e < test.ElectiveCourses; e++ {
		name := fmt.Sprintf("Elective %v", e)
		for s := 0; s < test.SectionsPerCourse; s++ {
			catalog = append(catalog, offering(name, "CS (Elective)", test.Courses+e, s))
		}
	}
	return catalog
}

func constraintsFor(test TestMetadata) model.Constraints {
	required := make([]string, 0, test.Courses)
	for c := 0; c < test.Courses; c++ {
		required = append(required, fmt.Sprintf("Course %v", c))
	}
	return model.Constraints{
		Batch:           "BCS-2022",
		RequiredCourses: required,
		WildcardCounts:  map[string]int{model.WildcardCSElective: test.ElectiveQuota},
	}
}

func toCsv(results []BenchmarkResult) {
	writer := csv.NewWriter(os.Stdout)
	defer writer.Flush()

	header := []string{"test", "courses", "sections", "electives", "quota", "max_results", "selections", "duration_ms"}
	if err := writer.Write(header); err != nil {
		log.Fatalf("cannot write csv header: %v", err)
	}

	for _, result := range results {
		record := []string{
			result.Test.Name,
			strconv.Itoa(result.Test.Courses),
			strconv.Itoa(result.Test.SectionsPerCourse),
			strconv.Itoa(result.Test.ElectiveCourses),
			strconv.Itoa(result.Test.ElectiveQuota),
			strconv.Itoa(result.Test.MaxResults),
			strconv.Itoa(result.Selections),
			strconv.FormatInt(result.Duration.Milliseconds(), 10),
		}
		if err := writer.Write(record); err != nil {
			log.Fatalf("cannot write csv record: %v", err)
		}
	}
}
