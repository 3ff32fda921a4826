package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prakash-Banjade/smart-tutor/internal/catalog"
)

func f64(v float64) *float64 { return &v }

func tutorIDs(ts []catalog.Tutor) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}

func TestTutorsNoCriteriaReturnsAll(t *testing.T) {
	in := catalog.FixtureTutors()
	out := Tutors(in, TutorCriteria{})
	assert.Equal(t, tutorIDs(in), tutorIDs(out))
}

func TestTutorsSubjectFilter(t *testing.T) {
	out := Tutors(catalog.FixtureTutors(), TutorCriteria{Subject: "Mathematics"})
	assert.Equal(t, []string{"1", "2"}, tutorIDs(out))
}

func TestTutorsQueryCaseInsensitive(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"name match", "sarah", []string{"1"}},
		{"subject match", "MATH", []string{"1", "2"}},
		{"partial subject", "chem", []string{"4"}},
		{"no match", "astronomy", []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := Tutors(catalog.FixtureTutors(), TutorCriteria{Query: tc.query})
			assert.Equal(t, tc.want, tutorIDs(out))
		})
	}
}

func TestTutorsPriceBoundsInclusive(t *testing.T) {
	out := Tutors(catalog.FixtureTutors(), TutorCriteria{PriceMin: f64(40), PriceMax: f64(45)})
	assert.Equal(t, []string{"1", "2"}, tutorIDs(out))
}

func TestTutorsMinRatingInclusive(t *testing.T) {
	out := Tutors(catalog.FixtureTutors(), TutorCriteria{MinRating: f64(4.9)})
	assert.Equal(t, []string{"1", "5"}, tutorIDs(out))
}

func TestTutorsMaxDistanceInclusive(t *testing.T) {
	out := Tutors(catalog.FixtureTutors(), TutorCriteria{MaxDistance: f64(3.2)})
	assert.Equal(t, []string{"1", "2", "5"}, tutorIDs(out))
}

func TestTutorsSessionTypeFilter(t *testing.T) {
	out := Tutors(catalog.FixtureTutors(), TutorCriteria{SessionType: "in-person"})
	assert.NotContains(t, tutorIDs(out), "3")
	assert.Len(t, out, 5)
}

func TestTutorsAvailabilityFilter(t *testing.T) {
	out := Tutors(catalog.FixtureTutors(), TutorCriteria{Availability: "Weekends"})
	assert.Equal(t, []string{"2", "3", "4", "6"}, tutorIDs(out))
}

func TestTutorsFiltersCombineWithAnd(t *testing.T) {
	in := catalog.FixtureTutors()

	loose := Tutors(in, TutorCriteria{Subject: "Mathematics"})
	tight := Tutors(in, TutorCriteria{Subject: "Mathematics", MaxDistance: f64(3.0)})
	require.LessOrEqual(t, len(tight), len(loose))
	assert.Equal(t, []string{"1"}, tutorIDs(tight))
}

func TestTutorsAddingFiltersNeverGrowsResult(t *testing.T) {
	in := catalog.FixtureTutors()
	prev := len(Tutors(in, TutorCriteria{}))
	steps := []TutorCriteria{
		{SessionType: "in-person"},
		{SessionType: "in-person", MaxDistance: f64(5)},
		{SessionType: "in-person", MaxDistance: f64(5), MinRating: f64(4.8)},
		{SessionType: "in-person", MaxDistance: f64(5), MinRating: f64(4.8), Subject: "Statistics"},
	}
	for _, c := range steps {
		n := len(Tutors(in, c))
		assert.LessOrEqual(t, n, prev)
		prev = n
	}
}

func TestTutorsSorting(t *testing.T) {
	tests := []struct {
		key  SortKey
		want []string
	}{
		{SortRatingDesc, []string{"5", "1", "2", "3", "6", "4"}},
		{SortPriceAsc, []string{"4", "3", "6", "1", "2", "5"}},
		{SortPriceDesc, []string{"5", "2", "1", "6", "3", "4"}},
		{SortDistanceAsc, []string{"5", "1", "2", "6", "3", "4"}},
	}
	for _, tc := range tests {
		t.Run(string(tc.key), func(t *testing.T) {
			out := Tutors(catalog.FixtureTutors(), TutorCriteria{SortBy: tc.key})
			assert.Equal(t, tc.want, tutorIDs(out))
		})
	}
}

func TestTutorsUnknownSortKeepsInputOrder(t *testing.T) {
	in := catalog.FixtureTutors()
	out := Tutors(in, TutorCriteria{SortBy: "bogus"})
	assert.Equal(t, tutorIDs(in), tutorIDs(out))
}

func TestTutorsSortIsStable(t *testing.T) {
	in := []catalog.Tutor{
		{ID: "a", Rating: 4.5, Price: 30},
		{ID: "b", Rating: 4.5, Price: 30},
		{ID: "c", Rating: 4.5, Price: 30},
	}
	out := Tutors(in, TutorCriteria{SortBy: SortRatingDesc})
	assert.Equal(t, []string{"a", "b", "c"}, tutorIDs(out))
}

func TestTutorsMathematicsByDistance(t *testing.T) {
	out := Tutors(catalog.FixtureTutors(), TutorCriteria{Subject: "Mathematics", SortBy: SortDistanceAsc})
	require.Len(t, out, 2)
	assert.Equal(t, "Dr. Sarah Johnson", out[0].Name)
	assert.Equal(t, "Prof. Michael Chen", out[1].Name)
}

func TestTutorsInputNotModified(t *testing.T) {
	in := catalog.FixtureTutors()
	before := tutorIDs(in)
	_ = Tutors(in, TutorCriteria{SortBy: SortPriceAsc, MinRating: f64(4.0)})
	assert.Equal(t, before, tutorIDs(in))
}
