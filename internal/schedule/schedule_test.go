package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionIDs(ss []TutoringSession) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.ID
	}
	return out
}

func TestSessionsSortedByDate(t *testing.T) {
	b := NewBook()

	all := b.Sessions("")
	assert.Equal(t, []string{"4", "3", "1", "2"}, sessionIDs(all))
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].Date.Before(all[i-1].Date))
	}
}

func TestSessionsFilteredByStatus(t *testing.T) {
	b := NewBook()

	upcoming := b.Sessions(StatusUpcoming)
	assert.Equal(t, []string{"1", "2"}, sessionIDs(upcoming))

	completed := b.Sessions(StatusCompleted)
	assert.Equal(t, []string{"4", "3"}, sessionIDs(completed))
}

func TestStudents(t *testing.T) {
	b := NewBook()

	students := b.Students()
	require.Len(t, students, 3)
	assert.Equal(t, "Anjali Shrestha", students[0].Name)

	// Returned slice is a copy.
	students[0].Name = "mutated"
	assert.Equal(t, "Anjali Shrestha", b.Students()[0].Name)
}
