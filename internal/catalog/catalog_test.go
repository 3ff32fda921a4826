package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddStudyGroup(t *testing.T) {
	c := New(nil, nil)

	g, err := c.AddStudyGroup(StudyGroup{
		Name:       "Evening Algebra",
		Subject:    "Mathematics",
		Location:   "Library",
		Members:    1,
		MaxMembers: 6,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, g.ID)

	groups := c.Groups()
	require.Len(t, groups, 1)
	assert.Equal(t, g.ID, groups[0].ID)
	assert.Equal(t, "Evening Algebra", groups[0].Name)
}

func TestAddStudyGroupValidation(t *testing.T) {
	tests := []struct {
		name string
		in   StudyGroup
	}{
		{"missing name", StudyGroup{Subject: "Math", MaxMembers: 5}},
		{"missing subject", StudyGroup{Name: "G", MaxMembers: 5}},
		{"zero capacity", StudyGroup{Name: "G", Subject: "Math"}},
		{"negative members", StudyGroup{Name: "G", Subject: "Math", Members: -1, MaxMembers: 5}},
		{"over capacity", StudyGroup{Name: "G", Subject: "Math", Members: 6, MaxMembers: 5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New(nil, nil)
			_, err := c.AddStudyGroup(tc.in)
			assert.ErrorIs(t, err, ErrInvalidGroup)
			assert.Empty(t, c.Groups())
		})
	}
}

func TestAddStudyGroupFullAllowed(t *testing.T) {
	c := New(nil, nil)
	_, err := c.AddStudyGroup(StudyGroup{Name: "G", Subject: "Math", Members: 5, MaxMembers: 5})
	assert.NoError(t, err)
}

func TestSnapshotsAreIsolated(t *testing.T) {
	c := NewFromFixtures()

	tutors := c.Tutors()
	require.NotEmpty(t, tutors)
	tutors[0].Name = "mutated"
	tutors[0].Subjects[0] = "mutated"

	again := c.Tutors()
	assert.NotEqual(t, "mutated", again[0].Name)
	assert.NotEqual(t, "mutated", again[0].Subjects[0])

	groups := c.Groups()
	require.NotEmpty(t, groups)
	groups[0].MeetingDays[0] = "mutated"
	assert.NotEqual(t, "mutated", c.Groups()[0].MeetingDays[0])
}

func TestFixturesHonorCapacity(t *testing.T) {
	for _, g := range FixtureStudyGroups() {
		assert.LessOrEqual(t, g.Members, g.MaxMembers, g.Name)
		assert.Positive(t, g.MaxMembers, g.Name)
	}
}

func TestOnlineSentinel(t *testing.T) {
	g := StudyGroup{Location: LocationOnline}
	assert.True(t, g.Online())
	assert.False(t, StudyGroup{Location: "Library"}.Online())
}
