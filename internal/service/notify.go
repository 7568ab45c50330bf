package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/dreamware/campus/internal/model"
	"github.com/dreamware/campus/internal/repo"
)

// NotificationService delivers messages to guardians. In-system messages
// become targeted notices; SMS and email go through the Notifier.
type NotificationService struct {
	gate     *sync.Mutex
	parents  *repo.Parents
	notices  *repo.Notices
	notifier Notifier
	now      func() time.Time
}

// NotifyParent publishes an in-system notice targeted at one guardian.
func (s *NotificationService) NotifyParent(parentID int64, title, content string) (model.Notice, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	if _, ok := s.parents.ByID(parentID); !ok {
		return model.Notice{}, NotFoundf("parent %d not found", parentID)
	}
	if title == "" || content == "" {
		return model.Notice{}, Validationf("title and content are required")
	}

	notice := model.Notice{
		ID:      s.notices.NextID(),
		Title:   title,
		Content: content,
		Target:  fmt.Sprintf("parent_%d", parentID),
		Sender:  "system",
		Date:    s.now().Format(timestampLayout),
	}
	return s.notices.Create(notice), nil
}

// NotifyAllParents publishes one notice per guardian on file. It returns
// the number of notices created.
func (s *NotificationService) NotifyAllParents(title, content string) (int, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	if title == "" || content == "" {
		return 0, Validationf("title and content are required")
	}

	parents := s.parents.All()
	for _, p := range parents {
		s.notices.Create(model.Notice{
			ID:      s.notices.NextID(),
			Title:   title,
			Content: content,
			Target:  fmt.Sprintf("parent_%d", p.ID),
			Sender:  "system",
			Date:    s.now().Format(timestampLayout),
		})
	}
	return len(parents), nil
}

// SMSParent sends a text message to a guardian's phone on file.
func (s *NotificationService) SMSParent(parentID int64, message string) error {
	parent, ok := s.parents.ByID(parentID)
	if !ok {
		return NotFoundf("parent %d not found", parentID)
	}
	if parent.ContactPhone == "" {
		return Statef("parent %d has no phone number on file", parentID)
	}
	return s.notifier.SendSMS(parent.ContactPhone, message)
}

// EmailParent sends an email to a guardian's address on file.
func (s *NotificationService) EmailParent(parentID int64, subject, body string) error {
	parent, ok := s.parents.ByID(parentID)
	if !ok {
		return NotFoundf("parent %d not found", parentID)
	}
	if parent.Email == "" {
		return Statef("parent %d has no email address on file", parentID)
	}
	return s.notifier.SendEmail(parent.Email, subject, body)
}
