package repo

import (
	"github.com/dreamware/campus/internal/model"
	"github.com/dreamware/campus/internal/store"
)

// Users is the repository over the users table.
type Users struct {
	*store.Repository[model.User]
}

func NewUsers(s *store.Store) *Users {
	return &Users{store.NewRepository[model.User](s, TableUsers)}
}

// ByUsername returns the user with the given username.
func (r *Users) ByUsername(username string) (model.User, bool) {
	return r.FindOne(func(u model.User) bool { return u.Username == username })
}

// ByRole returns every user with the given role, in insertion order.
func (r *Users) ByRole(role model.Role) []model.User {
	return r.Find(func(u model.User) bool { return u.Role == role })
}

// DeleteByStudentInfoID removes every user account linked to the given
// student record, returning how many were removed.
func (r *Users) DeleteByStudentInfoID(studentID int64) int {
	return r.DeleteWhere(func(u model.User) bool {
		return u.StudentInfoID != nil && *u.StudentInfoID == studentID
	})
}
