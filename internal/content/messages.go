package content

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/mohsinali45213/folio/internal/appwrite"
	"github.com/mohsinali45213/folio/internal/model"
)

type messageDoc struct {
	appwrite.DocumentMeta
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
	Status    string `json:"status"`
}

func (d *messageDoc) toModel() model.ContactMessage {
	createdAt, err := time.Parse(time.RFC3339, d.CreatedAt)
	if err != nil {
		createdAt = time.Time{}
	}
	return model.ContactMessage{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		Message:   d.Message,
		CreatedAt: createdAt,
		Status:    model.MessageStatus(d.Status),
	}
}

type messageData struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
	Status    string `json:"status"`
}

// CreateMessage records an inbound contact message. Timestamp and status are
// assigned here, regardless of what the sender supplied.
func (s *Services) CreateMessage(in model.ContactMessage) (*model.ContactMessage, error) {
	doc, err := appwrite.CreateDocument[messageDoc](s.client, s.db, s.cols.Messages, appwrite.UniqueID, messageData{
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Status:    string(model.MessageUnread),
	})
	if err != nil {
		return nil, writeErr("creating", s.cols.Messages, err)
	}
	out := doc.toModel()
	return &out, nil
}

// Messages returns all contact messages in storage order, empty on read
// failure.
func (s *Services) Messages() []model.ContactMessage {
	docs, err := appwrite.ListDocuments[messageDoc](s.client, s.db, s.cols.Messages)
	if err != nil {
		log.Printf("warning: listing messages: %v", err)
		return []model.ContactMessage{}
	}
	messages := make([]model.ContactMessage, len(docs))
	for i := range docs {
		messages[i] = docs[i].toModel()
	}
	return messages
}

func (s *Services) Message(id string) (*model.ContactMessage, error) {
	doc, err := appwrite.GetDocument[messageDoc](s.client, s.db, s.cols.Messages, id)
	if err != nil {
		if errors.Is(err, appwrite.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching message %s: %w", id, err)
	}
	out := doc.toModel()
	return &out, nil
}

// UpdateMessageStatus moves a message through the unread/read/replied
// lifecycle. Only the status field is writable after creation.
func (s *Services) UpdateMessageStatus(id string, status model.MessageStatus) (*model.ContactMessage, error) {
	if err := model.ValidateMessageStatus(status); err != nil {
		return nil, err
	}
	doc, err := appwrite.UpdateDocument[messageDoc](s.client, s.db, s.cols.Messages, id, map[string]any{
		"status": string(status),
	})
	if err != nil {
		return nil, writeErr("updating", s.cols.Messages, err)
	}
	out := doc.toModel()
	return &out, nil
}

func (s *Services) DeleteMessage(id string) error {
	if err := s.client.DeleteDocument(s.db, s.cols.Messages, id); err != nil {
		return writeErr("deleting", s.cols.Messages, err)
	}
	return nil
}

// UnreadMessages filters the full list down to messages not yet read.
func (s *Services) UnreadMessages() []model.ContactMessage {
	all := s.Messages()
	unread := make([]model.ContactMessage, 0, len(all))
	for _, m := range all {
		if m.Status == model.MessageUnread {
			unread = append(unread, m)
		}
	}
	return unread
}
