package repo

import (
	"strings"

	"github.com/dreamware/campus/internal/model"
	"github.com/dreamware/campus/internal/store"
)

// Students is the repository over the students table.
type Students struct {
	*store.Repository[model.Student]
}

func NewStudents(s *store.Store) *Students {
	return &Students{store.NewRepository[model.Student](s, TableStudents)}
}

// ByStudentNo returns the student with the given student number.
func (r *Students) ByStudentNo(no string) (model.Student, bool) {
	return r.FindOne(func(s model.Student) bool { return s.StudentNo == no })
}

// ByClass returns every student in the named class.
func (r *Students) ByClass(className string) []model.Student {
	return r.Find(func(s model.Student) bool { return s.ClassName == className })
}

// Search matches keyword case-insensitively against name and student number.
func (r *Students) Search(keyword string) []model.Student {
	kw := strings.ToLower(keyword)
	return r.Find(func(s model.Student) bool {
		return strings.Contains(strings.ToLower(s.Name), kw) ||
			strings.Contains(strings.ToLower(s.StudentNo), kw)
	})
}
