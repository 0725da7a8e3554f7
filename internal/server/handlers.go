package server

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"timetabler/internal/model"
	"timetabler/internal/pattern"
)

const defaultBatch = "BCS-2022"

// generateRequest mirrors the UI payload. The courses field historically
// arrived as a plain list of names; the current UI sends a map with
// per-course section selections, so it stays loosely typed and is resolved
// in requiredCourses.
type generateRequest struct {
	Batch               string   `mapstructure:"batch"`
	Courses             any      `mapstructure:"courses"`
	ExcludedInstructors []string `mapstructure:"excluded_instructors"`
	ExcludedSlots       []string `mapstructure:"excluded_slots"`
	CSElectives         int      `mapstructure:"cs_electives"`
	UniversityElectives int      `mapstructure:"university_electives"`
	RoboElectives       int      `mapstructure:"robo_electives"`
}

// requiredCourses resolves the polymorphic courses field into required course
// names plus per-course section allow-lists. Names from the map form are
// sorted so enumeration order stays reproducible across requests.
func (r generateRequest) requiredCourses() ([]string, map[string][]string) {
	switch courses := r.Courses.(type) {
	case []any:
		return toStrings(courses), nil
	case map[string]any:
		names := make([]string, 0, len(courses))
		preferences := make(map[string][]string)
		for name, raw := range courses {
			names = append(names, name)
			info, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			if selected, ok := info["selectedSections"].([]any); ok {
				preferences[name] = toStrings(selected)
			} else if section, ok := info["section"].(string); ok && section != "any" {
				preferences[name] = []string{section}
			}
		}
		sort.Strings(names)
		return names, preferences
	}
	return nil, nil
}

func (r generateRequest) wildcardCounts() map[string]int {
	counts := map[string]int{}
	if r.CSElectives > 0 {
		counts[model.WildcardCSElective] = r.CSElectives
	}
	if r.UniversityElectives > 0 {
		counts[model.WildcardUniversityElective] = r.UniversityElectives
	}
	if r.RoboElectives > 0 {
		counts[model.WildcardRoboElective] = r.RoboElectives
	}
	return counts
}

func (s *Server) handleGenerate(ctx *gin.Context) {
	var payload map[string]any
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	var request generateRequest
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &request,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "cannot build request decoder"})
		return
	}
	if err := decoder.Decode(payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	requiredCourses, sectionPreferences := request.requiredCourses()

	batch := request.Batch
	if batch == "" {
		batch = defaultBatch
	}

	constraints := model.Constraints{
		Batch:               batch,
		RequiredCourses:     requiredCourses,
		SectionPreferences:  sectionPreferences,
		ExcludedInstructors: request.ExcludedInstructors,
		ExcludedTimeSlots:   request.ExcludedSlots,
		WildcardCounts:      request.wildcardCounts(),
	}

	selections, diagnostics := s.generator.Generate(constraints, s.maxResults)
	for _, diagnostic := range diagnostics {
		log.Warn().
			Str("kind", string(diagnostic.Kind)).
			Str("subject", diagnostic.Subject).
			Msg(diagnostic.Message)
	}

	if len(selections) == 0 {
		ctx.JSON(http.StatusOK, gin.H{"success": false, "error": "No valid timetables found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":    true,
		"patterns":   pattern.Aggregate(selections, requiredCourses),
		"time_slots": model.SlotStarts,
		"days":       model.Days,
	})
}

// handleCourses returns every program course grouped by category, across all
// batches so repeaters can find courses from earlier semesters.
func (s *Server) handleCourses(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, s.catalog.AllCoursesByCategory())
}

func (s *Server) handleInstructors(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, s.catalog.AllInstructors())
}

type sectionResponse struct {
	Section         string               `json:"section"`
	Instructor      string               `json:"instructor"`
	InstructorShort string               `json:"instructor_short"`
	Slots           []pattern.SlotDetail `json:"slots"`
}

type courseResponse struct {
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	CreditHours int               `json:"credit_hours"`
	IsLab       bool              `json:"is_lab"`
	Sections    []sectionResponse `json:"sections"`
}

func (s *Server) handleCoursesWithSections(ctx *gin.Context) {
	courses := map[string]*courseResponse{}
	for _, offering := range s.catalog.Offerings {
		if !strings.HasPrefix(offering.Section, model.ProgramPrefix) {
			continue
		}
		name := strings.TrimSpace(offering.ShortTitle)
		if name == "" {
			continue
		}

		course, ok := courses[name]
		if !ok {
			course = &courseResponse{
				Name:        name,
				Category:    offering.Category,
				CreditHours: offering.CreditHours,
				IsLab:       offering.IsLab(),
			}
			courses[name] = course
		}

		course.Sections = append(course.Sections, sectionResponse{
			Section:         offering.Section,
			Instructor:      offering.Instructor,
			InstructorShort: offering.InstructorShort,
			Slots: lo.Map(offering.TimeSlots(), func(meeting model.Meeting, _ int) pattern.SlotDetail {
				return pattern.SlotDetail{Day: meeting.Day, Time: meeting.Slot, Venue: meeting.Venue}
			}),
		})
	}

	ctx.JSON(http.StatusOK, courses)
}

func toStrings(values []any) []string {
	return lo.FilterMap(values, func(value any, _ int) (string, bool) {
		text, ok := value.(string)
		return text, ok
	})
}
