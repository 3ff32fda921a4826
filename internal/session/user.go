package session

// Role is the account role picked at login/registration.
type Role string

const (
	RoleStudent Role = "student"
	RoleTutor   Role = "tutor"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTutor
}

// OnboardingState tracks the one-time profile-completion step. A single
// three-state value replaces the needsOnboarding/onboardingCompleted flag
// pair so the two can never disagree.
type OnboardingState string

const (
	OnboardingNotStarted OnboardingState = "not_started"
	OnboardingInProgress OnboardingState = "in_progress"
	OnboardingComplete   OnboardingState = "completed"
)

// User is the session-scoped account record. It is fabricated by the auth
// gateway, owned exclusively by the Manager, and mirrored to the session
// store as JSON.
type User struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Email              string          `json:"email"`
	Role               Role            `json:"role"`
	AvatarURL          string          `json:"avatar_url,omitempty"`
	Age                int             `json:"age,omitempty"`
	Subjects           []string        `json:"subjects,omitempty"`
	Subtopics          []string        `json:"subtopics,omitempty"`
	EducationLevel     string          `json:"education_level,omitempty"`
	Qualification      string          `json:"qualification,omitempty"`
	TeachingExperience int             `json:"teaching_experience,omitempty"`
	Bio                string          `json:"bio,omitempty"`
	Onboarding         OnboardingState `json:"onboarding"`
}

// NeedsOnboarding reports whether the user still has to complete onboarding.
func (u *User) NeedsOnboarding() bool {
	return u.Onboarding == OnboardingNotStarted || u.Onboarding == OnboardingInProgress
}

// OnboardingCompleted reports whether onboarding has been finished.
func (u *User) OnboardingCompleted() bool {
	return u.Onboarding == OnboardingComplete
}

// Clone returns a deep copy so callers never hold a reference into the
// Manager-owned record.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	cp := *u
	if u.Subjects != nil {
		cp.Subjects = append([]string(nil), u.Subjects...)
	}
	if u.Subtopics != nil {
		cp.Subtopics = append([]string(nil), u.Subtopics...)
	}
	return &cp
}

// ProfileUpdate carries the fields of a profile edit. Nil pointers and nil
// slices leave the corresponding field untouched.
type ProfileUpdate struct {
	Age                *int
	Subjects           []string
	Subtopics          []string
	EducationLevel     *string
	Qualification      *string
	TeachingExperience *int
	Bio                *string
	AvatarURL          *string
	// OnboardingCompleted=true marks onboarding finished; false marks it
	// in progress (started but not submitted).
	OnboardingCompleted *bool
}

func (p ProfileUpdate) apply(u *User) {
	if p.Age != nil {
		u.Age = *p.Age
	}
	if p.Subjects != nil {
		u.Subjects = append([]string(nil), p.Subjects...)
	}
	if p.Subtopics != nil {
		u.Subtopics = append([]string(nil), p.Subtopics...)
	}
	if p.EducationLevel != nil {
		u.EducationLevel = *p.EducationLevel
	}
	if p.Qualification != nil {
		u.Qualification = *p.Qualification
	}
	if p.TeachingExperience != nil {
		u.TeachingExperience = *p.TeachingExperience
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.AvatarURL != nil {
		u.AvatarURL = *p.AvatarURL
	}
	if p.OnboardingCompleted != nil {
		if *p.OnboardingCompleted {
			u.Onboarding = OnboardingComplete
		} else {
			u.Onboarding = OnboardingInProgress
		}
	}
}
