package catalog

import "time"

// LocationOnline is the sentinel location for groups that meet remotely.
// Such groups are discoverable at any distance.
const LocationOnline = "Online (Zoom)"

// GroupCreator identifies who started a study group.
type GroupCreator struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// StudyGroup is a static marketplace listing describing a study group open
// for members.
type StudyGroup struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Subject          string       `json:"subject"`
	Description      string       `json:"description"`
	Location         string       `json:"location"`
	Distance         float64      `json:"distance"`
	Members          int          `json:"members"`
	MaxMembers       int          `json:"max_members"`
	MeetingFrequency string       `json:"meeting_frequency"`
	MeetingDays      []string     `json:"meeting_days"`
	NextMeeting      time.Time    `json:"next_meeting"`
	StudyLevel       string       `json:"study_level"`
	CreatedBy        GroupCreator `json:"created_by"`
}

// Online reports whether the group meets remotely.
func (g StudyGroup) Online() bool {
	return g.Location == LocationOnline
}

func (g StudyGroup) clone() StudyGroup {
	g.MeetingDays = append([]string(nil), g.MeetingDays...)
	return g
}
