package catalog

// SessionType is how a tutor delivers sessions.
type SessionType string

const (
	SessionOnline   SessionType = "online"
	SessionInPerson SessionType = "in-person"
)

// Tutor is a static marketplace listing describing an available tutor.
type Tutor struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	AvatarURL    string        `json:"avatar_url"`
	Rating       float64       `json:"rating"` // 0-5, one decimal
	ReviewCount  int           `json:"review_count"`
	Price        float64       `json:"price"` // hourly
	Subjects     []string      `json:"subjects"`
	Education    string        `json:"education"`
	Location     string        `json:"location"`
	Distance     float64       `json:"distance"`
	SessionTypes []SessionType `json:"session_types"`
	Availability []string      `json:"availability"`
	Description  string        `json:"description"`
}

// Offers reports whether the tutor supports the given session type.
func (t Tutor) Offers(st SessionType) bool {
	for _, s := range t.SessionTypes {
		if s == st {
			return true
		}
	}
	return false
}

// Available reports whether the tutor lists the given availability window.
func (t Tutor) Available(window string) bool {
	for _, w := range t.Availability {
		if w == window {
			return true
		}
	}
	return false
}

func (t Tutor) clone() Tutor {
	t.Subjects = append([]string(nil), t.Subjects...)
	t.SessionTypes = append([]SessionType(nil), t.SessionTypes...)
	t.Availability = append([]string(nil), t.Availability...)
	return t
}
