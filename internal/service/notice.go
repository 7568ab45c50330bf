package service

import (
	"sync"
	"time"

	"github.com/dreamware/campus/internal/model"
	"github.com/dreamware/campus/internal/repo"
)

// NoticeInput carries the fields for one announcement. Target narrows the
// audience ("students", "teachers", "parent_<id>"); empty means everyone.
type NoticeInput struct {
	Title   string `validate:"required,max=100"`
	Content string `validate:"required,max=2000"`
	Target  string
	Sender  string
}

// NoticeService publishes and queries announcements.
type NoticeService struct {
	gate    *sync.Mutex
	notices *repo.Notices
	now     func() time.Time
}

// Publish creates a notice stamped with the current time. An empty sender
// defaults to "system".
func (s *NoticeService) Publish(in NoticeInput) (model.Notice, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	if err := checkInput(in); err != nil {
		return model.Notice{}, err
	}
	sender := in.Sender
	if sender == "" {
		sender = "system"
	}

	notice := model.Notice{
		ID:      s.notices.NextID(),
		Title:   in.Title,
		Content: in.Content,
		Target:  in.Target,
		Sender:  sender,
		Date:    s.now().Format(timestampLayout),
	}
	return s.notices.Create(notice), nil
}

// Update edits a notice. The original sender is kept when the input leaves
// it empty; the publish date never changes.
func (s *NoticeService) Update(id int64, in NoticeInput) (model.Notice, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	if err := checkInput(in); err != nil {
		return model.Notice{}, err
	}
	updated, ok := s.notices.Update(id, func(n *model.Notice) {
		n.Title = in.Title
		n.Content = in.Content
		n.Target = in.Target
		if in.Sender != "" {
			n.Sender = in.Sender
		}
	})
	if !ok {
		return model.Notice{}, NotFoundf("notice %d not found", id)
	}
	return updated, nil
}

// Delete removes a notice.
func (s *NoticeService) Delete(id int64) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	if !s.notices.Delete(id) {
		return NotFoundf("notice %d not found", id)
	}
	return nil
}

// ByID returns one notice.
func (s *NoticeService) ByID(id int64) (model.Notice, error) {
	notice, ok := s.notices.ByID(id)
	if !ok {
		return model.Notice{}, NotFoundf("notice %d not found", id)
	}
	return notice, nil
}

// Recent returns up to limit notices, newest first.
func (s *NoticeService) Recent(limit int) []model.Notice {
	return s.notices.Recent(limit)
}

// ForTarget returns notices addressed to one audience.
func (s *NoticeService) ForTarget(target string) []model.Notice {
	return s.notices.ByTarget(target)
}

// Search matches keyword against title and content.
func (s *NoticeService) Search(keyword string) []model.Notice {
	return s.notices.Search(keyword)
}

// VisibleTo returns the notices a role may read, newest first. Students see
// general and student notices, teachers additionally see teacher notices,
// admins see everything.
func (s *NoticeService) VisibleTo(role model.Role) []model.Notice {
	all := s.notices.Recent(0)
	if role == model.RoleAdmin {
		return all
	}

	visible := make([]model.Notice, 0, len(all))
	for _, n := range all {
		switch n.Target {
		case "", "students":
			visible = append(visible, n)
		case "teachers":
			if role == model.RoleTeacher {
				visible = append(visible, n)
			}
		}
	}
	return visible
}
