package mailer

import "fmt"

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// HTML is optional; Text is the fallback body.
type EmailJob struct {
	To      string         `json:"to"`
	Subject string         `json:"subject,omitempty"`
	Text    string         `json:"text,omitempty"`
	HTML    string         `json:"html,omitempty"`
	Kind    string         `json:"kind,omitempty"` // "welcome", "group_created"
	Data    map[string]any `json:"data,omitempty"`
}

// NewWelcomeJob builds the welcome email queued after a successful registration.
func NewWelcomeJob(name, email, role string) EmailJob {
	return EmailJob{
		To:      email,
		Kind:    "welcome",
		Subject: "Welcome to Smart Tutor",
		Text: fmt.Sprintf(
			"Hi %s,\n\nYour %s account is ready. Complete your profile to start %s.\n\nThe Smart Tutor team",
			name, role, roleAction(role)),
		Data: map[string]any{"Name": name, "Role": role},
	}
}

// NewGroupCreatedJob notifies a creator that their study group is live.
func NewGroupCreatedJob(name, email, groupName string) EmailJob {
	return EmailJob{
		To:      email,
		Kind:    "group_created",
		Subject: "Your study group is live",
		Text: fmt.Sprintf(
			"Hi %s,\n\n\"%s\" is now listed and open for members to join.\n\nThe Smart Tutor team",
			name, groupName),
		Data: map[string]any{"Name": name, "GroupName": groupName},
	}
}

func roleAction(role string) string {
	if role == "tutor" {
		return "teaching"
	}
	return "learning"
}
