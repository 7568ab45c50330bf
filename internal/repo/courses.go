package repo

import (
	"strings"

	"github.com/dreamware/campus/internal/model"
	"github.com/dreamware/campus/internal/store"
)

// Courses is the repository over the courses table.
type Courses struct {
	*store.Repository[model.Course]
}

func NewCourses(s *store.Store) *Courses {
	return &Courses{store.NewRepository[model.Course](s, TableCourses)}
}

// ByName returns the course with the given name (exact match).
func (r *Courses) ByName(name string) (model.Course, bool) {
	return r.FindOne(func(c model.Course) bool { return c.Name == name })
}

// Search matches keyword case-insensitively against name and description.
func (r *Courses) Search(keyword string) []model.Course {
	kw := strings.ToLower(keyword)
	return r.Find(func(c model.Course) bool {
		return strings.Contains(strings.ToLower(c.Name), kw) ||
			strings.Contains(strings.ToLower(c.Description), kw)
	})
}
