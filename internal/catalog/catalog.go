package catalog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrInvalidGroup = errors.New("invalid study group")
)

// Catalog holds the listing reference data. Listings are immutable once
// stored: accessors return copies. The only write path is AddStudyGroup,
// which appends a validated group under the lock.
type Catalog struct {
	mu     sync.RWMutex
	tutors []Tutor
	groups []StudyGroup
}

// New builds a catalog over the given listings (typically the fixtures or
// rows hydrated from Postgres).
func New(tutors []Tutor, groups []StudyGroup) *Catalog {
	return &Catalog{
		tutors: append([]Tutor(nil), tutors...),
		groups: append([]StudyGroup(nil), groups...),
	}
}

// NewFromFixtures builds a catalog over the built-in sample listings.
func NewFromFixtures() *Catalog {
	return New(FixtureTutors(), FixtureStudyGroups())
}

// Tutors returns a snapshot of all tutor listings.
func (c *Catalog) Tutors() []Tutor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Tutor, len(c.tutors))
	for i, t := range c.tutors {
		out[i] = t.clone()
	}
	return out
}

// Groups returns a snapshot of all study group listings.
func (c *Catalog) Groups() []StudyGroup {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]StudyGroup, len(c.groups))
	for i, g := range c.groups {
		out[i] = g.clone()
	}
	return out
}

// AddStudyGroup validates and stores a new group, assigning its id.
// members must not exceed maxMembers; hydrated listings are trusted as-is.
func (c *Catalog) AddStudyGroup(g StudyGroup) (StudyGroup, error) {
	if g.Name == "" || g.Subject == "" {
		return StudyGroup{}, fmt.Errorf("%w: name and subject are required", ErrInvalidGroup)
	}
	if g.MaxMembers <= 0 {
		return StudyGroup{}, fmt.Errorf("%w: max_members must be positive", ErrInvalidGroup)
	}
	if g.Members < 0 || g.Members > g.MaxMembers {
		return StudyGroup{}, fmt.Errorf("%w: members must be between 0 and max_members", ErrInvalidGroup)
	}
	g.ID = uuid.NewString()
	g = g.clone()

	c.mu.Lock()
	c.groups = append(c.groups, g)
	c.mu.Unlock()
	return g.clone(), nil
}
