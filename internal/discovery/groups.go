package discovery

import (
	"sort"
	"strings"

	"github.com/Prakash-Banjade/smart-tutor/internal/catalog"
)

// Groups returns the study groups matching every active filter in c,
// ordered by the chosen sort key. The input slice is not modified.
func Groups(in []catalog.StudyGroup, c GroupCriteria) []catalog.StudyGroup {
	out := make([]catalog.StudyGroup, 0, len(in))
	for _, g := range in {
		if matchGroup(g, c) {
			out = append(out, g)
		}
	}
	sortGroups(out, c.SortBy)
	return out
}

func matchGroup(g catalog.StudyGroup, c GroupCriteria) bool {
	if c.Query != "" && !groupMatchesQuery(g, c.Query) {
		return false
	}
	if c.Subject != "" && g.Subject != c.Subject {
		return false
	}
	// Online groups stay discoverable at any distance.
	if c.MaxDistance != nil && g.Distance > *c.MaxDistance && !g.Online() {
		return false
	}
	if c.Size != "" && !sizeBucketMatches(g.MaxMembers, c.Size) {
		return false
	}
	if c.MeetingFrequency != "" && g.MeetingFrequency != c.MeetingFrequency {
		return false
	}
	if c.StudyLevel != "" && g.StudyLevel != c.StudyLevel {
		return false
	}
	return true
}

func groupMatchesQuery(g catalog.StudyGroup, q string) bool {
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(g.Name), q) ||
		strings.Contains(strings.ToLower(g.Subject), q)
}

// sizeBucketMatches buckets on capacity: small <=5, medium 6-10, large >10.
func sizeBucketMatches(maxMembers int, size GroupSize) bool {
	switch size {
	case GroupSmall:
		return maxMembers <= 5
	case GroupMedium:
		return maxMembers > 5 && maxMembers <= 10
	case GroupLarge:
		return maxMembers > 10
	default:
		return true
	}
}

func sortGroups(gs []catalog.StudyGroup, key SortKey) {
	var less func(a, b catalog.StudyGroup) bool
	switch key {
	case SortDistanceAsc:
		less = func(a, b catalog.StudyGroup) bool { return a.Distance < b.Distance }
	case SortSizeAsc:
		less = func(a, b catalog.StudyGroup) bool { return a.Members < b.Members }
	case SortSizeDesc:
		less = func(a, b catalog.StudyGroup) bool { return a.Members > b.Members }
	case SortNextMeetingAsc:
		less = func(a, b catalog.StudyGroup) bool { return a.NextMeeting.Before(b.NextMeeting) }
	default:
		// Unknown key: keep input order.
		return
	}
	sort.SliceStable(gs, func(i, j int) bool { return less(gs[i], gs[j]) })
}
