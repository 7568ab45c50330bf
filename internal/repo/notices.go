package repo

import (
	"sort"
	"strings"

	"github.com/dreamware/campus/internal/model"
	"github.com/dreamware/campus/internal/store"
)

// Notices is the repository over the notices table.
type Notices struct {
	*store.Repository[model.Notice]
}

func NewNotices(s *store.Store) *Notices {
	return &Notices{store.NewRepository[model.Notice](s, TableNotices)}
}

// ByTarget returns every notice addressed to one audience.
func (r *Notices) ByTarget(target string) []model.Notice {
	return r.Find(func(n model.Notice) bool { return n.Target == target })
}

// Recent returns up to limit notices, newest first. Notice dates are
// "2006-01-02 15:04:05" strings, so string ordering is chronological.
func (r *Notices) Recent(limit int) []model.Notice {
	notices := r.All()
	sort.SliceStable(notices, func(i, j int) bool {
		return notices[i].Date > notices[j].Date
	})
	if limit > 0 && len(notices) > limit {
		notices = notices[:limit]
	}
	return notices
}

// Search matches keyword case-insensitively against title and content.
func (r *Notices) Search(keyword string) []model.Notice {
	kw := strings.ToLower(keyword)
	return r.Find(func(n model.Notice) bool {
		return strings.Contains(strings.ToLower(n.Title), kw) ||
			strings.Contains(strings.ToLower(n.Content), kw)
	})
}
