// Package messaging is the in-app chat between students and tutors.
// Conversations and their history live in memory, seeded with fixtures;
// Send appends to a thread and bumps it to the top of the inbox.
package messaging

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrConversationNotFound = errors.New("messaging: conversation not found")

// Conversation is one inbox entry.
type Conversation struct {
	ID          string    `json:"id"`
	PartnerID   string    `json:"partner_id"`
	PartnerName string    `json:"partner_name"`
	AvatarURL   string    `json:"avatar_url"`
	LastMessage string    `json:"last_message"`
	LastAt      time.Time `json:"last_at"`
	Unread      int       `json:"unread"`
	Online      bool      `json:"online"`
}

// Message is a single chat message inside a conversation.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	Text           string    `json:"text"`
	SentAt         time.Time `json:"sent_at"`
}

// Service owns the conversation state. Safe for concurrent use.
type Service struct {
	mu       sync.RWMutex
	convs    []Conversation
	messages map[string][]Message
	now      func() time.Time
}

func NewService() *Service {
	s := &Service{messages: make(map[string][]Message), now: time.Now}
	s.convs, s.messages = fixtureConversations()
	return s
}

// Conversations returns the inbox ordered by most recent activity.
func (s *Service) Conversations() []Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := append([]Conversation(nil), s.convs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].LastAt.After(out[j].LastAt) })
	return out
}

// Messages returns the full history of one conversation, oldest first.
func (s *Service) Messages(conversationID string) ([]Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs, ok := s.messages[conversationID]
	if !ok {
		return nil, ErrConversationNotFound
	}
	return append([]Message(nil), msgs...), nil
}

// Send appends a message to the conversation and updates its inbox entry.
func (s *Service) Send(conversationID, senderID, text string) (Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.messages[conversationID]; !ok {
		return Message{}, ErrConversationNotFound
	}

	msg := Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Text:           text,
		SentAt:         s.now(),
	}
	s.messages[conversationID] = append(s.messages[conversationID], msg)

	for i := range s.convs {
		if s.convs[i].ID == conversationID {
			s.convs[i].LastMessage = text
			s.convs[i].LastAt = msg.SentAt
			s.convs[i].Unread = 0
			break
		}
	}
	return msg, nil
}

func fixtureConversations() ([]Conversation, map[string][]Message) {
	base := time.Date(2025, time.July, 14, 9, 0, 0, 0, time.Local)

	convs := []Conversation{
		{
			ID:          "1",
			PartnerID:   "tutor-emily",
			PartnerName: "Emily Johnson",
			AvatarURL:   "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			LastMessage: "Great! Let's meet at the library at 3pm tomorrow.",
			LastAt:      base.Add(95 * time.Minute),
			Unread:      2,
			Online:      true,
		},
		{
			ID:          "2",
			PartnerID:   "tutor-chris",
			PartnerName: "Chris Thompson",
			AvatarURL:   "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			LastMessage: "I've shared the practice problems for our next session.",
			LastAt:      base.Add(-20 * time.Hour),
			Unread:      0,
			Online:      false,
		},
		{
			ID:          "3",
			PartnerID:   "tutor-sophia",
			PartnerName: "Sophia Martinez",
			AvatarURL:   "https://images.pexels.com/photos/762020/pexels-photo-762020.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			LastMessage: "Thanks for the session today! The concepts are much clearer now.",
			LastAt:      base.Add(-3 * 24 * time.Hour),
			Unread:      0,
			Online:      true,
		},
	}

	messages := map[string][]Message{
		"1": {
			{ID: "1-1", ConversationID: "1", SenderID: "tutor-emily", Text: "Hi! I saw you booked a Calculus II session for this week.", SentAt: base},
			{ID: "1-2", ConversationID: "1", SenderID: "me", Text: "Yes, I'm struggling with integration by parts.", SentAt: base.Add(5 * time.Minute)},
			{ID: "1-3", ConversationID: "1", SenderID: "tutor-emily", Text: "No problem, we can focus on that. Do you prefer meeting online or in person?", SentAt: base.Add(12 * time.Minute)},
			{ID: "1-4", ConversationID: "1", SenderID: "me", Text: "In person works better for me if you're available.", SentAt: base.Add(90 * time.Minute)},
			{ID: "1-5", ConversationID: "1", SenderID: "tutor-emily", Text: "Great! Let's meet at the library at 3pm tomorrow.", SentAt: base.Add(95 * time.Minute)},
		},
		"2": {
			{ID: "2-1", ConversationID: "2", SenderID: "tutor-chris", Text: "How did the last problem set go?", SentAt: base.Add(-22 * time.Hour)},
			{ID: "2-2", ConversationID: "2", SenderID: "me", Text: "Mostly fine, question 4 was tricky.", SentAt: base.Add(-21 * time.Hour)},
			{ID: "2-3", ConversationID: "2", SenderID: "tutor-chris", Text: "I've shared the practice problems for our next session.", SentAt: base.Add(-20 * time.Hour)},
		},
		"3": {
			{ID: "3-1", ConversationID: "3", SenderID: "me", Text: "Thanks for the session today! The concepts are much clearer now.", SentAt: base.Add(-3 * 24 * time.Hour)},
		},
	}

	return convs, messages
}
