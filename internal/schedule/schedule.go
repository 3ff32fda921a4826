// Package schedule serves the tutoring session calendar and the tutor's
// student roster. Like the listing catalog, the data is a static in-memory
// snapshot for the process lifetime.
package schedule

import (
	"sort"
	"time"
)

// SessionStatus is the lifecycle state of a tutoring session.
type SessionStatus string

const (
	StatusUpcoming  SessionStatus = "upcoming"
	StatusCompleted SessionStatus = "completed"
)

// TutoringSession is one booked session between a student and a tutor.
type TutoringSession struct {
	ID          string        `json:"id"`
	Subject     string        `json:"subject"`
	TutorName   string        `json:"tutor_name"`
	TutorAvatar string        `json:"tutor_avatar"`
	Date        time.Time     `json:"date"`
	Duration    int           `json:"duration"` // minutes
	Location    string        `json:"location"`
	Status      SessionStatus `json:"status"`
}

// StudentProgress is a tutor's view of one of their students.
type StudentProgress struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	AvatarURL         string    `json:"avatar_url"`
	Subject           string    `json:"subject"`
	SessionsCompleted int       `json:"sessions_completed"`
	LastSession       time.Time `json:"last_session"`
	NextSession       time.Time `json:"next_session"`
	SessionDuration   int       `json:"session_duration"` // minutes
	Rating            float64   `json:"rating"`
	Progress          int       `json:"progress"` // percent
}

// Book holds the session calendar and roster snapshots.
type Book struct {
	sessions []TutoringSession
	students []StudentProgress
}

func NewBook() *Book {
	return &Book{sessions: fixtureSessions(), students: fixtureStudents()}
}

// Sessions returns sessions with the given status, ordered by date
// ascending. An empty status returns everything.
func (b *Book) Sessions(status SessionStatus) []TutoringSession {
	out := make([]TutoringSession, 0, len(b.sessions))
	for _, s := range b.sessions {
		if status == "" || s.Status == status {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Students returns the tutor's roster.
func (b *Book) Students() []StudentProgress {
	return append([]StudentProgress(nil), b.students...)
}

func fixtureSessions() []TutoringSession {
	return []TutoringSession{
		{
			ID:          "1",
			Subject:     "Calculus II",
			TutorName:   "Dr. Sarah Johnson",
			TutorAvatar: "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Date:        time.Date(2025, time.July, 15, 14, 0, 0, 0, time.Local),
			Duration:    60,
			Location:    "Online (Zoom)",
			Status:      StatusUpcoming,
		},
		{
			ID:          "2",
			Subject:     "Physics 101",
			TutorName:   "Prof. Michael Chen",
			TutorAvatar: "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Date:        time.Date(2025, time.July, 17, 10, 30, 0, 0, time.Local),
			Duration:    90,
			Location:    "University Library, Room 302",
			Status:      StatusUpcoming,
		},
		{
			ID:          "3",
			Subject:     "Linear Algebra",
			TutorName:   "Dr. Emily Rodriguez",
			TutorAvatar: "https://images.pexels.com/photos/762020/pexels-photo-762020.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Date:        time.Date(2025, time.July, 10, 15, 0, 0, 0, time.Local),
			Duration:    60,
			Location:    "Online (Zoom)",
			Status:      StatusCompleted,
		},
		{
			ID:          "4",
			Subject:     "Chemistry",
			TutorName:   "Dr. Alex Thompson",
			TutorAvatar: "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Date:        time.Date(2025, time.July, 8, 11, 0, 0, 0, time.Local),
			Duration:    90,
			Location:    "Science Building, Room 205",
			Status:      StatusCompleted,
		},
	}
}

func fixtureStudents() []StudentProgress {
	return []StudentProgress{
		{
			ID:                "1",
			Name:              "Anjali Shrestha",
			AvatarURL:         "https://images.pexels.com/photos/733872/pexels-photo-733872.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Subject:           "Calculus II",
			SessionsCompleted: 8,
			LastSession:       time.Date(2025, time.July, 15, 0, 0, 0, 0, time.Local),
			NextSession:       time.Date(2025, time.July, 22, 0, 0, 0, 0, time.Local),
			SessionDuration:   14,
			Rating:            5,
			Progress:          85,
		},
		{
			ID:                "2",
			Name:              "Suman Gautam",
			AvatarURL:         "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Subject:           "Physics 101",
			SessionsCompleted: 5,
			LastSession:       time.Date(2025, time.July, 14, 0, 0, 0, 0, time.Local),
			NextSession:       time.Date(2025, time.July, 21, 0, 0, 0, 0, time.Local),
			SessionDuration:   12,
			Rating:            4.5,
			Progress:          70,
		},
		{
			ID:                "3",
			Name:              "Ritika Basnet",
			AvatarURL:         "https://images.pexels.com/photos/762020/pexels-photo-762020.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Subject:           "Linear Algebra",
			SessionsCompleted: 3,
			LastSession:       time.Date(2025, time.July, 13, 0, 0, 0, 0, time.Local),
			NextSession:       time.Date(2025, time.July, 20, 0, 0, 0, 0, time.Local),
			SessionDuration:   10,
			Rating:            5,
			Progress:          60,
		},
	}
}
