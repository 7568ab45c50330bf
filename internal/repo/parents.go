package repo

import (
	"github.com/dreamware/campus/internal/model"
	"github.com/dreamware/campus/internal/store"
)

// Parents is the repository over the parents table.
type Parents struct {
	*store.Repository[model.Parent]
}

func NewParents(s *store.Store) *Parents {
	return &Parents{store.NewRepository[model.Parent](s, TableParents)}
}

// ByStudentID returns every guardian contact of one student.
func (r *Parents) ByStudentID(studentID int64) []model.Parent {
	return r.Find(func(p model.Parent) bool { return p.StudentID == studentID })
}

// ByRelationship returns the contact with the given relationship label for
// one student. Labels compare exactly. A student holds at most one contact
// per label.
func (r *Parents) ByRelationship(studentID int64, relationship string) (model.Parent, bool) {
	return r.FindOne(func(p model.Parent) bool {
		return p.StudentID == studentID && p.Relationship == relationship
	})
}

// DeleteByStudentID removes every contact of one student.
func (r *Parents) DeleteByStudentID(studentID int64) int {
	return r.DeleteWhere(func(p model.Parent) bool { return p.StudentID == studentID })
}
