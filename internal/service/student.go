package service

import (
	"sync"

	"github.com/dreamware/campus/internal/model"
	"github.com/dreamware/campus/internal/repo"
)

// StudentInput carries the fields for creating or updating a student.
type StudentInput struct {
	Name            string `validate:"required"`
	Gender          string `validate:"required"`
	Age             int    `validate:"required,gt=0"`
	StudentNo       string `validate:"required"`
	ContactPhone    string
	FamilyInfo      string
	ClassName       string
	HomeroomTeacher string
}

// StudentService manages student records and owns the cascade that runs
// when a student is removed.
type StudentService struct {
	gate        *sync.Mutex
	students    *repo.Students
	enrollments *repo.Enrollments
	attendance  *repo.Attendance
	rewards     *repo.RewardsPunishments
	parents     *repo.Parents
	users       *repo.Users
}

// Create adds a student. Student numbers are globally unique.
func (s *StudentService) Create(in StudentInput) (model.Student, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	if err := checkInput(in); err != nil {
		return model.Student{}, err
	}
	if _, ok := s.students.ByStudentNo(in.StudentNo); ok {
		return model.Student{}, Duplicatef("student number %q already exists", in.StudentNo)
	}

	student := model.Student{
		ID:              s.students.NextID(),
		Name:            in.Name,
		Gender:          in.Gender,
		Age:             in.Age,
		StudentNo:       in.StudentNo,
		ContactPhone:    in.ContactPhone,
		FamilyInfo:      in.FamilyInfo,
		ClassName:       in.ClassName,
		HomeroomTeacher: in.HomeroomTeacher,
	}
	return s.students.Create(student), nil
}

// Update changes a student. The student-number uniqueness check excludes
// the record being updated.
func (s *StudentService) Update(id int64, in StudentInput) (model.Student, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	if _, ok := s.students.ByID(id); !ok {
		return model.Student{}, NotFoundf("student %d not found", id)
	}
	if err := checkInput(in); err != nil {
		return model.Student{}, err
	}
	if other, ok := s.students.ByStudentNo(in.StudentNo); ok && other.ID != id {
		return model.Student{}, Duplicatef("student number %q already exists", in.StudentNo)
	}

	updated, _ := s.students.Update(id, func(st *model.Student) {
		st.Name = in.Name
		st.Gender = in.Gender
		st.Age = in.Age
		st.StudentNo = in.StudentNo
		st.ContactPhone = in.ContactPhone
		st.FamilyInfo = in.FamilyInfo
		st.ClassName = in.ClassName
		st.HomeroomTeacher = in.HomeroomTeacher
	})
	return updated, nil
}

// Delete removes a student and everything referencing it: enrollments,
// attendance, reward/punishment records and parent contacts, in that
// order, then the student row itself and any linked login account. The
// cascade is explicit orchestration; the store knows nothing about foreign
// keys.
func (s *StudentService) Delete(id int64) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	if _, ok := s.students.ByID(id); !ok {
		return NotFoundf("student %d not found", id)
	}

	s.enrollments.DeleteByStudentID(id)
	s.attendance.DeleteByStudentID(id)
	s.rewards.DeleteByStudentID(id)
	s.parents.DeleteByStudentID(id)
	s.students.Delete(id)
	s.users.DeleteByStudentInfoID(id)
	return nil
}

// ByID returns one student.
func (s *StudentService) ByID(id int64) (model.Student, error) {
	student, ok := s.students.ByID(id)
	if !ok {
		return model.Student{}, NotFoundf("student %d not found", id)
	}
	return student, nil
}

// ByStudentNo returns the student with the given student number.
func (s *StudentService) ByStudentNo(no string) (model.Student, error) {
	student, ok := s.students.ByStudentNo(no)
	if !ok {
		return model.Student{}, NotFoundf("student number %q not found", no)
	}
	return student, nil
}

// List returns every student in insertion order.
func (s *StudentService) List() []model.Student {
	return s.students.All()
}

// Search matches keyword against names and student numbers.
func (s *StudentService) Search(keyword string) []model.Student {
	return s.students.Search(keyword)
}

// ByClass returns every student in the named class.
func (s *StudentService) ByClass(className string) []model.Student {
	return s.students.ByClass(className)
}
