package domain

import (
	"context"
	"strings"
)

// Feedback is a free-text comment left on an event.
type Feedback struct {
	ID      int64
	EventID int64

	content string
}

func (f *Feedback) Content() string { return f.content }

// SetContent rejects empty and whitespace-only content.
func (f *Feedback) SetContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return NewValidationError("content", "feedback content must not be empty")
	}
	f.content = content
	return nil
}

type FeedbackRepository interface {
	Add(ctx context.Context, f *Feedback) error
	GetByID(ctx context.Context, id int64) (*Feedback, error)
	ListAll(ctx context.Context) ([]*Feedback, error)
	Remove(ctx context.Context, f *Feedback) error
}

type FeedbackUpdate struct {
	Content *string
}

type FeedbackService interface {
	Create(ctx context.Context, eventID int64, content string) (*FeedbackRecord, error)
	Get(ctx context.Context, id int64) (*FeedbackRecord, error)
	ListByEvent(ctx context.Context, eventID int64) ([]*FeedbackRecord, error)
	Update(ctx context.Context, id int64, upd FeedbackUpdate) (*FeedbackRecord, error)
	Delete(ctx context.Context, id int64) error
}
