// Package discovery computes filtered, ordered views over the listing
// catalog. Everything here is a pure function of (listings, criteria):
// no side effects, safe to recompute on every request.
package discovery

import "strconv"

// SortKey selects the comparator applied after filtering. Ties keep their
// input order (sorting is stable), so output is deterministic for a given
// input snapshot.
type SortKey string

const (
	SortRatingDesc     SortKey = "rating"
	SortPriceAsc       SortKey = "price_low"
	SortPriceDesc      SortKey = "price_high"
	SortDistanceAsc    SortKey = "distance"
	SortSizeAsc        SortKey = "size_small"
	SortSizeDesc       SortKey = "size_large"
	SortNextMeetingAsc SortKey = "date"
)

// GroupSize buckets study groups by capacity.
type GroupSize string

const (
	GroupSmall  GroupSize = "small"  // up to 5 members
	GroupMedium GroupSize = "medium" // 6-10 members
	GroupLarge  GroupSize = "large"  // more than 10 members
)

// TutorCriteria is the filter/sort selection for tutor discovery. Zero
// values and nil pointers mean "no constraint". Numeric bounds are
// inclusive.
type TutorCriteria struct {
	Query        string
	Subject      string
	PriceMin     *float64
	PriceMax     *float64
	MaxDistance  *float64
	MinRating    *float64
	SessionType  string
	Availability string
	SortBy       SortKey
}

// GroupCriteria is the filter/sort selection for study group discovery.
type GroupCriteria struct {
	Query            string
	Subject          string
	MaxDistance      *float64
	Size             GroupSize
	MeetingFrequency string
	StudyLevel       string
	SortBy           SortKey
}

// ParseBound parses a numeric filter value from user input. Empty or
// unparseable input yields nil, which imposes no constraint.
func ParseBound(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
