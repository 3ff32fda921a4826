package discovery

import (
	"sort"
	"strings"

	"github.com/Prakash-Banjade/smart-tutor/internal/catalog"
)

// Tutors returns the tutors matching every active filter in c, ordered by
// the chosen sort key. The input slice is not modified.
func Tutors(in []catalog.Tutor, c TutorCriteria) []catalog.Tutor {
	out := make([]catalog.Tutor, 0, len(in))
	for _, t := range in {
		if matchTutor(t, c) {
			out = append(out, t)
		}
	}
	sortTutors(out, c.SortBy)
	return out
}

func matchTutor(t catalog.Tutor, c TutorCriteria) bool {
	if c.Query != "" && !tutorMatchesQuery(t, c.Query) {
		return false
	}
	if c.Subject != "" && !containsString(t.Subjects, c.Subject) {
		return false
	}
	if c.PriceMin != nil && t.Price < *c.PriceMin {
		return false
	}
	if c.PriceMax != nil && t.Price > *c.PriceMax {
		return false
	}
	if c.MaxDistance != nil && t.Distance > *c.MaxDistance {
		return false
	}
	if c.MinRating != nil && t.Rating < *c.MinRating {
		return false
	}
	if c.SessionType != "" && !t.Offers(catalog.SessionType(c.SessionType)) {
		return false
	}
	if c.Availability != "" && !t.Available(c.Availability) {
		return false
	}
	return true
}

// tutorMatchesQuery does a case-insensitive substring match over the
// tutor's name and subjects.
func tutorMatchesQuery(t catalog.Tutor, q string) bool {
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(t.Name), q) {
		return true
	}
	for _, s := range t.Subjects {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

func sortTutors(ts []catalog.Tutor, key SortKey) {
	var less func(a, b catalog.Tutor) bool
	switch key {
	case SortRatingDesc:
		less = func(a, b catalog.Tutor) bool { return a.Rating > b.Rating }
	case SortPriceAsc:
		less = func(a, b catalog.Tutor) bool { return a.Price < b.Price }
	case SortPriceDesc:
		less = func(a, b catalog.Tutor) bool { return a.Price > b.Price }
	case SortDistanceAsc:
		less = func(a, b catalog.Tutor) bool { return a.Distance < b.Distance }
	default:
		// Unknown key: keep input order.
		return
	}
	sort.SliceStable(ts, func(i, j int) bool { return less(ts[i], ts[j]) })
}

func containsString(hay []string, needle string) bool {
	for _, h := range hay {
		if h == needle {
			return true
		}
	}
	return false
}
