package model

import (
	"fmt"
	"slices"
	"sort"

	"github.com/samber/lo"
)

type enumerationGenerator struct {
	catalog []*Offering
}

// Generate walks the Cartesian product of required-course section options,
// crossed with every wildcard course-name combination and each named course's
// section options. Selections are deduplicated by slot signature, and the
// enumeration stops as soon as maxResults selections have been emitted: the
// cap is the sole bound on the combinatorial blow-up, so it is checked after
// every emission.
func (g *enumerationGenerator) Generate(constraints Constraints, maxResults int) ([]Selection, []Diagnostic) {
	if maxResults <= 0 {
		return nil, nil
	}

	filtered := Filter(g.catalog, constraints)
	grouped, _ := groupByShortTitle(filtered)

	requiredOptions, diagnostics := resolveRequiredOptions(grouped, constraints)
	if len(requiredOptions) == 0 {
		return nil, diagnostics
	}

	pools, poolDiagnostics := resolveWildcardPools(filtered, constraints)
	diagnostics = append(diagnostics, poolDiagnostics...)

	nameCombos := wildcardNameCombos(constraints.WildcardCounts, pools)

	selections := make([]Selection, 0, maxResults)
	seenSignatures := make(map[string]bool)

	// emit records the selection unless its signature was already seen, and
	// reports whether the cap has been reached.
	emit := func(selection Selection) bool {
		signature := selection.SlotSignature()
		if seenSignatures[signature] {
			return false
		}
		seenSignatures[signature] = true
		selections = append(selections, selection)
		return len(selections) >= maxResults
	}

	forEachProduct(requiredOptions, func(required []*Offering) bool {
		core := Selection(slices.Clone(required))
		// An infeasible required core can never be rescued by wildcards.
		if core.HasConflicts() {
			return true
		}

		for _, names := range nameCombos {
			sectionOptions := make([][]*Offering, 0, len(names))
			for _, name := range names {
				if sections := pools.sectionsByName[name]; len(sections) > 0 {
					sectionOptions = append(sectionOptions, sections)
				}
			}

			if len(sectionOptions) == 0 {
				if emit(core) {
					return false
				}
				continue
			}

			capped := false
			forEachProduct(sectionOptions, func(wildcards []*Offering) bool {
				full := make(Selection, 0, len(core)+len(wildcards))
				full = append(full, core...)
				full = append(full, wildcards...)
				if full.HasConflicts() {
					return true
				}
				if emit(full) {
					capped = true
					return false
				}
				return true
			})
			if capped {
				return false
			}
		}
		return true
	})

	return selections, diagnostics
}

// resolveRequiredOptions maps each required course name, in request order, to
// its eligible sections. A missing course contributes no option list (the
// request degrades rather than fails); a section preference with no matching
// sections falls back to the whole group. Both degradations surface as
// diagnostics.
func resolveRequiredOptions(grouped map[string][]*Offering, constraints Constraints) ([][]*Offering, []Diagnostic) {
	options := make([][]*Offering, 0, len(constraints.RequiredCourses))
	var diagnostics []Diagnostic

	for _, name := range constraints.RequiredCourses {
		sections, ok := grouped[name]
		if !ok {
			diagnostics = append(diagnostics, Diagnostic{
				Kind:    DiagnosticCourseNotFound,
				Subject: name,
				Message: fmt.Sprintf("course %q not found in available courses", name),
			})
			continue
		}

		allowed := constraints.SectionPreferences[name]
		if len(allowed) == 0 {
			options = append(options, sections)
			continue
		}

		preferred := lo.Filter(sections, func(offering *Offering, _ int) bool {
			return slices.Contains(allowed, offering.Section)
		})
		if len(preferred) == 0 {
			diagnostics = append(diagnostics, Diagnostic{
				Kind:    DiagnosticSectionNotFound,
				Subject: name,
				Message: fmt.Sprintf("sections %v not found for course %q, falling back to all sections", allowed, name),
			})
			preferred = sections
		}
		options = append(options, preferred)
	}

	return options, diagnostics
}

// wildcardPools holds, per wildcard category, the distinct course names
// available (catalog order) and, per course name, its offered sections.
type wildcardPools struct {
	namesByCategory map[string][]string
	sectionsByName  map[string][]*Offering
}

// resolveWildcardPools assigns every non-required offering to the first
// wildcard category its category matches. The named categories are disjoint
// by construction, so first-match is equivalent to best-match.
func resolveWildcardPools(filtered []*Offering, constraints Constraints) (wildcardPools, []Diagnostic) {
	categories := sortedKeys(constraints.WildcardCounts)

	byCategory := make(map[string][]*Offering)
	for _, offering := range filtered {
		if constraints.isRequired(offering.ShortTitle) {
			continue
		}
		for _, category := range categories {
			if matchesWildcard(offering.Category, category) {
				byCategory[category] = append(byCategory[category], offering)
				break
			}
		}
	}

	pools := wildcardPools{
		namesByCategory: make(map[string][]string, len(categories)),
		sectionsByName:  make(map[string][]*Offering),
	}
	var diagnostics []Diagnostic

	for _, category := range categories {
		grouped, names := groupByShortTitle(byCategory[category])
		pools.namesByCategory[category] = names
		for name, sections := range grouped {
			pools.sectionsByName[name] = sections
		}

		if constraints.WildcardCounts[category] > 0 && len(names) == 0 {
			diagnostics = append(diagnostics, Diagnostic{
				Kind:    DiagnosticEmptyWildcardPool,
				Subject: category,
				Message: fmt.Sprintf("no offerings available for wildcard category %q", category),
			})
		}
	}

	return pools, diagnostics
}

// wildcardNameCombos builds the cross-product, over wildcard categories, of
// every size-quota combination of course names in the category's pool. A
// quota larger than the pool clamps to the whole pool rather than failing.
// Categories iterate in sorted key order so enumeration is reproducible.
func wildcardNameCombos(counts map[string]int, pools wildcardPools) [][]string {
	combos := [][]string{{}}
	for _, category := range sortedKeys(counts) {
		quota := counts[category]
		names := pools.namesByCategory[category]
		if quota <= 0 || len(names) == 0 {
			continue
		}

		categoryCombos := combinations(names, min(quota, len(names)))
		next := make([][]string, 0, len(combos)*len(categoryCombos))
		for _, existing := range combos {
			for _, combo := range categoryCombos {
				merged := make([]string, 0, len(existing)+len(combo))
				merged = append(merged, existing...)
				merged = append(merged, combo...)
				next = append(next, merged)
			}
		}
		combos = next
	}
	return combos
}

// groupByShortTitle groups offerings by course name, preserving catalog order
// both across names and within each name's sections.
func groupByShortTitle(offerings []*Offering) (map[string][]*Offering, []string) {
	grouped := make(map[string][]*Offering)
	names := make([]string, 0)
	for _, offering := range offerings {
		if _, ok := grouped[offering.ShortTitle]; !ok {
			names = append(names, offering.ShortTitle)
		}
		grouped[offering.ShortTitle] = append(grouped[offering.ShortTitle], offering)
	}
	return grouped, names
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}
