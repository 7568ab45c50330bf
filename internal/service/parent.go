package service

import (
	"sync"

	"github.com/dreamware/campus/internal/model"
	"github.com/dreamware/campus/internal/repo"
)

// ParentInput carries the fields for one parent contact. Phone numbers are
// eleven digits, the format used for domestic mobile numbers.
type ParentInput struct {
	StudentID    int64  `validate:"required"`
	Name         string `validate:"required"`
	Relationship string `validate:"required"`
	ContactPhone string `validate:"required,len=11,numeric"`
	Email        string `validate:"omitempty,email"`
	Address      string
}

// ParentService manages parent contact records. A student may have at most
// one contact per relationship label.
type ParentService struct {
	gate     *sync.Mutex
	parents  *repo.Parents
	students *repo.Students
}

// Create adds a parent contact for an existing student.
func (s *ParentService) Create(in ParentInput) (model.Parent, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	if err := s.check(in, 0); err != nil {
		return model.Parent{}, err
	}

	parent := model.Parent{
		ID:           s.parents.NextID(),
		StudentID:    in.StudentID,
		Name:         in.Name,
		Relationship: in.Relationship,
		ContactPhone: in.ContactPhone,
		Email:        in.Email,
		Address:      in.Address,
	}
	return s.parents.Create(parent), nil
}

// Update edits a contact. The duplicate scan excludes the record being
// edited so saving unchanged fields is a no-op.
func (s *ParentService) Update(id int64, in ParentInput) (model.Parent, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	if _, ok := s.parents.ByID(id); !ok {
		return model.Parent{}, NotFoundf("parent %d not found", id)
	}
	if err := s.check(in, id); err != nil {
		return model.Parent{}, err
	}

	updated, _ := s.parents.Update(id, func(p *model.Parent) {
		p.StudentID = in.StudentID
		p.Name = in.Name
		p.Relationship = in.Relationship
		p.ContactPhone = in.ContactPhone
		p.Email = in.Email
		p.Address = in.Address
	})
	return updated, nil
}

// Delete removes a contact.
func (s *ParentService) Delete(id int64) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	if !s.parents.Delete(id) {
		return NotFoundf("parent %d not found", id)
	}
	return nil
}

// ForStudent returns a student's contacts.
func (s *ParentService) ForStudent(studentID int64) []model.Parent {
	return s.parents.ByStudentID(studentID)
}

// ByID returns one contact.
func (s *ParentService) ByID(id int64) (model.Parent, error) {
	parent, ok := s.parents.ByID(id)
	if !ok {
		return model.Parent{}, NotFoundf("parent %d not found", id)
	}
	return parent, nil
}

func (s *ParentService) check(in ParentInput, excludeID int64) error {
	if err := checkInput(in); err != nil {
		return err
	}
	if _, ok := s.students.ByID(in.StudentID); !ok {
		return NotFoundf("student %d not found", in.StudentID)
	}
	if dup, ok := s.parents.ByRelationship(in.StudentID, in.Relationship); ok && dup.ID != excludeID {
		return Duplicatef("student %d already has a %s on file", in.StudentID, in.Relationship)
	}
	return nil
}
