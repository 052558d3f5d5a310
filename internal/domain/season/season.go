package season

import (
	"regexp"
	"strconv"
)

// Range is the resolved shape of a free-text season label such as
// "2025/26", "2024-25", or "2025". Both years are nil when the label
// carries no recognizable year at all.
type Range struct {
	StartYear *int
	EndYear   *int
}

var yearFragmentRegex = regexp.MustCompile(`\d{4}|\d{2}`)

// Parse resolves a season label into a year range. It never fails:
// labels without a 4-digit year resolve to a zero Range.
func Parse(label string) Range {
	fragments := yearFragmentRegex.FindAllString(label, -1)

	start := -1
	next := -1
	for i, fragment := range fragments {
		if len(fragment) == 4 {
			start = mustAtoi(fragment)
			next = i + 1
			break
		}
	}
	if start < 0 {
		return Range{}
	}

	out := Range{StartYear: &start}
	if next >= len(fragments) {
		return out
	}

	fragment := fragments[next]
	end := mustAtoi(fragment)
	if len(fragment) == 2 {
		// Two-digit continuation stays in the start year's century:
		// "26" after 2025 means 2026.
		end = (start/100)*100 + end
	}
	out.EndYear = &end
	return out
}

// Key is the comparison key for ordering seasons: the end year when
// present, else the start year. ok is false for unresolvable labels,
// which sort last and never win a "current season" selection.
func (r Range) Key() (int, bool) {
	if r.EndYear != nil {
		return *r.EndYear, true
	}
	if r.StartYear != nil {
		return *r.StartYear, true
	}
	return 0, false
}

// Current returns every label whose comparison key is maximal among
// the given set. Ties are all included; unresolvable labels are
// skipped. The result preserves input order.
func Current(labels []string) []string {
	best := 0
	found := false
	for _, label := range labels {
		key, ok := Parse(label).Key()
		if !ok {
			continue
		}
		if !found || key > best {
			best = key
			found = true
		}
	}
	if !found {
		return nil
	}

	out := make([]string, 0, 1)
	for _, label := range labels {
		key, ok := Parse(label).Key()
		if ok && key == best {
			out = append(out, label)
		}
	}
	return out
}

func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
