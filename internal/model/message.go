package model

import (
	"fmt"
	"time"
)

type MessageStatus string

const (
	MessageUnread  MessageStatus = "unread"
	MessageRead    MessageStatus = "read"
	MessageReplied MessageStatus = "replied"
)

var messageStatuses = []MessageStatus{MessageUnread, MessageRead, MessageReplied}

func ValidateMessageStatus(s MessageStatus) error {
	for _, v := range messageStatuses {
		if s == v {
			return nil
		}
	}
	return fmt.Errorf("invalid message status %q: must be one of unread, read, replied", s)
}

// ContactMessage is an inbound message from the public contact form.
// CreatedAt and Status are set at creation time, never by the sender.
type ContactMessage struct {
	ID        string        `yaml:"id,omitempty" json:"id,omitempty"`
	Name      string        `yaml:"name" json:"name"`
	Email     string        `yaml:"email" json:"email"`
	Message   string        `yaml:"message" json:"message"`
	CreatedAt time.Time     `yaml:"created_at,omitempty" json:"createdAt"`
	Status    MessageStatus `yaml:"status,omitempty" json:"status"`
}

func (m *ContactMessage) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("message name is required")
	}
	if m.Email == "" {
		return fmt.Errorf("message email is required")
	}
	if m.Message == "" {
		return fmt.Errorf("message body is required")
	}
	return nil
}
