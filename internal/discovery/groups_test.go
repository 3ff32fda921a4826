package discovery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prakash-Banjade/smart-tutor/internal/catalog"
)

func groupIDs(gs []catalog.StudyGroup) []string {
	out := make([]string, len(gs))
	for i, g := range gs {
		out[i] = g.ID
	}
	return out
}

func TestGroupsNoCriteriaReturnsAll(t *testing.T) {
	in := catalog.FixtureStudyGroups()
	out := Groups(in, GroupCriteria{})
	assert.Equal(t, groupIDs(in), groupIDs(out))
}

func TestGroupsSubjectExactMatch(t *testing.T) {
	out := Groups(catalog.FixtureStudyGroups(), GroupCriteria{Subject: "Mathematics"})
	assert.Equal(t, []string{"1"}, groupIDs(out))
}

func TestGroupsQueryMatchesNameAndSubject(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"name match", "research", []string{"2"}},
		{"subject match", "physics", []string{"4"}},
		{"case insensitive", "DATA", []string{"6"}},
		{"no match", "astronomy", []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := Groups(catalog.FixtureStudyGroups(), GroupCriteria{Query: tc.query})
			assert.Equal(t, tc.want, groupIDs(out))
		})
	}
}

func TestGroupsMaxDistance(t *testing.T) {
	out := Groups(catalog.FixtureStudyGroups(), GroupCriteria{MaxDistance: f64(1.0)})
	assert.Equal(t, []string{"1", "3", "4"}, groupIDs(out))
}

func TestGroupsOnlineBypassesDistanceFilter(t *testing.T) {
	in := []catalog.StudyGroup{
		{ID: "near", Name: "Near", Subject: "Math", Location: "Library", Distance: 0.5, MaxMembers: 5},
		{ID: "far", Name: "Far", Subject: "Math", Location: "Downtown", Distance: 25, MaxMembers: 5},
		{ID: "remote", Name: "Remote", Subject: "Math", Location: catalog.LocationOnline, Distance: 25, MaxMembers: 5},
	}
	out := Groups(in, GroupCriteria{MaxDistance: f64(1.0)})
	assert.Equal(t, []string{"near", "remote"}, groupIDs(out))
}

func TestGroupsSizeBucketsUseCapacity(t *testing.T) {
	tests := []struct {
		size GroupSize
		want []string
	}{
		{GroupSmall, []string{}},
		{GroupMedium, []string{"1", "2", "4"}},
		{GroupLarge, []string{"3", "5", "6"}},
	}
	for _, tc := range tests {
		t.Run(string(tc.size), func(t *testing.T) {
			out := Groups(catalog.FixtureStudyGroups(), GroupCriteria{Size: tc.size})
			assert.Equal(t, tc.want, groupIDs(out))
		})
	}
}

func TestGroupsSizeBucketBoundaries(t *testing.T) {
	in := []catalog.StudyGroup{
		{ID: "5", MaxMembers: 5},
		{ID: "6", MaxMembers: 6},
		{ID: "10", MaxMembers: 10},
		{ID: "11", MaxMembers: 11},
	}
	assert.Equal(t, []string{"5"}, groupIDs(Groups(in, GroupCriteria{Size: GroupSmall})))
	assert.Equal(t, []string{"6", "10"}, groupIDs(Groups(in, GroupCriteria{Size: GroupMedium})))
	assert.Equal(t, []string{"11"}, groupIDs(Groups(in, GroupCriteria{Size: GroupLarge})))
}

func TestGroupsMeetingFrequencyAndLevel(t *testing.T) {
	out := Groups(catalog.FixtureStudyGroups(), GroupCriteria{MeetingFrequency: "Weekly"})
	assert.Equal(t, []string{"1", "3", "4", "6"}, groupIDs(out))

	out = Groups(catalog.FixtureStudyGroups(), GroupCriteria{StudyLevel: "Undergraduate"})
	assert.Equal(t, []string{"1", "4"}, groupIDs(out))

	out = Groups(catalog.FixtureStudyGroups(), GroupCriteria{MeetingFrequency: "Weekly", StudyLevel: "Undergraduate"})
	assert.Equal(t, []string{"1", "4"}, groupIDs(out))
}

func TestGroupsSorting(t *testing.T) {
	tests := []struct {
		key  SortKey
		want []string
	}{
		// size sorts order by current member count, not capacity
		{SortSizeAsc, []string{"4", "1", "2", "5", "3", "6"}},
		{SortSizeDesc, []string{"6", "3", "5", "2", "1", "4"}},
		{SortDistanceAsc, []string{"3", "1", "4", "6", "2", "5"}},
		{SortNextMeetingAsc, []string{"1", "2", "3", "4", "5", "6"}},
	}
	for _, tc := range tests {
		t.Run(string(tc.key), func(t *testing.T) {
			out := Groups(catalog.FixtureStudyGroups(), GroupCriteria{SortBy: tc.key})
			assert.Equal(t, tc.want, groupIDs(out))
		})
	}
}

func TestGroupsUnknownSortKeepsInputOrder(t *testing.T) {
	in := catalog.FixtureStudyGroups()
	out := Groups(in, GroupCriteria{SortBy: "bogus"})
	assert.Equal(t, groupIDs(in), groupIDs(out))
}

func TestGroupsSortIsStable(t *testing.T) {
	meeting := time.Date(2025, time.July, 20, 10, 0, 0, 0, time.Local)
	in := []catalog.StudyGroup{
		{ID: "a", Members: 5, NextMeeting: meeting},
		{ID: "b", Members: 5, NextMeeting: meeting},
		{ID: "c", Members: 5, NextMeeting: meeting},
	}
	assert.Equal(t, []string{"a", "b", "c"}, groupIDs(Groups(in, GroupCriteria{SortBy: SortSizeAsc})))
	assert.Equal(t, []string{"a", "b", "c"}, groupIDs(Groups(in, GroupCriteria{SortBy: SortNextMeetingAsc})))
}

func TestGroupsFiltersCombineWithAnd(t *testing.T) {
	in := catalog.FixtureStudyGroups()
	loose := Groups(in, GroupCriteria{MeetingFrequency: "Weekly"})
	tight := Groups(in, GroupCriteria{MeetingFrequency: "Weekly", Size: GroupLarge})
	require.LessOrEqual(t, len(tight), len(loose))
	assert.Equal(t, []string{"3", "6"}, groupIDs(tight))
}
