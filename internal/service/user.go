package service

import (
	"fmt"
	"sync"

	"github.com/dreamware/campus/internal/model"
	"github.com/dreamware/campus/internal/password"
	"github.com/dreamware/campus/internal/repo"
)

// CreateUserInput carries the fields for a new account.
type CreateUserInput struct {
	Username      string     `validate:"required"`
	Password      string     `validate:"required"`
	Role          model.Role `validate:"required,oneof=admin teacher student"`
	StudentInfoID *int64
}

// UpdateUserInput carries the fields for an account update. An empty
// Password keeps the stored hash; a non-empty one is rehashed.
type UpdateUserInput struct {
	Username      string     `validate:"required"`
	Password      string
	Role          model.Role `validate:"required,oneof=admin teacher student"`
	StudentInfoID *int64
}

// UserService manages login accounts: uniqueness of usernames, the link
// between student accounts and student records, and credential hashing via
// the password collaborator.
type UserService struct {
	gate     *sync.Mutex
	users    *repo.Users
	students *repo.Students
	hasher   password.Hasher
}

// Authenticate verifies a username/password pair. The failure message is
// deliberately identical for unknown users and wrong passwords.
func (s *UserService) Authenticate(username, plain string) (model.User, error) {
	user, ok := s.users.ByUsername(username)
	if !ok || !s.hasher.Verify(user.Password, plain) {
		return model.User{}, Validationf("invalid username or password")
	}
	return user, nil
}

// Create adds a new account. Usernames are globally unique; a student
// account must link to an existing student record.
func (s *UserService) Create(in CreateUserInput) (model.User, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	if err := checkInput(in); err != nil {
		return model.User{}, err
	}
	if _, ok := s.users.ByUsername(in.Username); ok {
		return model.User{}, Duplicatef("username %q already exists", in.Username)
	}
	if err := s.checkStudentLink(in.Role, in.StudentInfoID); err != nil {
		return model.User{}, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := model.User{
		ID:            s.users.NextID(),
		Username:      in.Username,
		Password:      hash,
		Role:          in.Role,
		StudentInfoID: in.StudentInfoID,
	}
	return s.users.Create(user), nil
}

// Update changes an account. The username uniqueness check excludes the
// account being updated, so saving an unchanged username succeeds.
func (s *UserService) Update(id int64, in UpdateUserInput) (model.User, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	if _, ok := s.users.ByID(id); !ok {
		return model.User{}, NotFoundf("user %d not found", id)
	}
	if err := checkInput(in); err != nil {
		return model.User{}, err
	}
	if other, ok := s.users.ByUsername(in.Username); ok && other.ID != id {
		return model.User{}, Duplicatef("username %q already exists", in.Username)
	}
	if err := s.checkStudentLink(in.Role, in.StudentInfoID); err != nil {
		return model.User{}, err
	}

	var hash string
	if in.Password != "" {
		h, err := s.hasher.Hash(in.Password)
		if err != nil {
			return model.User{}, fmt.Errorf("hash password: %w", err)
		}
		hash = h
	}

	updated, _ := s.users.Update(id, func(u *model.User) {
		u.Username = in.Username
		u.Role = in.Role
		u.StudentInfoID = in.StudentInfoID
		if hash != "" {
			u.Password = hash
		}
	})
	return updated, nil
}

// Delete removes an account. Removing the account the caller is acting as
// is rejected.
func (s *UserService) Delete(id, actorID int64) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	if id == actorID {
		return Conflictf("cannot delete the account you are signed in with")
	}
	if !s.users.Delete(id) {
		return NotFoundf("user %d not found", id)
	}
	return nil
}

// ByID returns one account.
func (s *UserService) ByID(id int64) (model.User, error) {
	user, ok := s.users.ByID(id)
	if !ok {
		return model.User{}, NotFoundf("user %d not found", id)
	}
	return user, nil
}

// List returns every account in insertion order.
func (s *UserService) List() []model.User {
	return s.users.All()
}

// ListByRole returns every account with the given role.
func (s *UserService) ListByRole(role model.Role) []model.User {
	return s.users.ByRole(role)
}

// checkStudentLink enforces that student accounts resolve to a real
// student record. Other roles may carry a link but are not required to.
func (s *UserService) checkStudentLink(role model.Role, studentInfoID *int64) error {
	if role != model.RoleStudent {
		return nil
	}
	if studentInfoID == nil {
		return Validationf("a student account must be linked to a student record")
	}
	if _, ok := s.students.ByID(*studentInfoID); !ok {
		return NotFoundf("linked student %d not found", *studentInfoID)
	}
	return nil
}
