package service

import (
	"sync"

	"github.com/dreamware/campus/internal/model"
	"github.com/dreamware/campus/internal/repo"
)

// CourseInput carries the fields for creating or updating a course. A nil
// Capacity means unlimited seats.
type CourseInput struct {
	Name        string `validate:"required"`
	Description string
	Credits     int  `validate:"required,gt=0"`
	Capacity    *int `validate:"omitempty,gt=0"`
}

// CourseService manages the course catalog and owns the cascade that runs
// when a course is removed.
type CourseService struct {
	gate        *sync.Mutex
	courses     *repo.Courses
	enrollments *repo.Enrollments
	schedules   *repo.Schedules
}

// Create adds a course. Course names are globally unique.
func (s *CourseService) Create(in CourseInput) (model.Course, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	if err := checkInput(in); err != nil {
		return model.Course{}, err
	}
	if _, ok := s.courses.ByName(in.Name); ok {
		return model.Course{}, Duplicatef("course name %q already exists", in.Name)
	}

	course := model.Course{
		ID:          s.courses.NextID(),
		Name:        in.Name,
		Description: in.Description,
		Credits:     in.Credits,
		Capacity:    in.Capacity,
	}
	return s.courses.Create(course), nil
}

// Update changes a course. The name uniqueness check excludes the record
// being updated.
func (s *CourseService) Update(id int64, in CourseInput) (model.Course, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	if _, ok := s.courses.ByID(id); !ok {
		return model.Course{}, NotFoundf("course %d not found", id)
	}
	if err := checkInput(in); err != nil {
		return model.Course{}, err
	}
	if other, ok := s.courses.ByName(in.Name); ok && other.ID != id {
		return model.Course{}, Duplicatef("course name %q already exists", in.Name)
	}

	updated, _ := s.courses.Update(id, func(c *model.Course) {
		c.Name = in.Name
		c.Description = in.Description
		c.Credits = in.Credits
		c.Capacity = in.Capacity
	})
	return updated, nil
}

// Delete removes a course after cascading through its enrollments and
// schedule slots.
func (s *CourseService) Delete(id int64) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	if _, ok := s.courses.ByID(id); !ok {
		return NotFoundf("course %d not found", id)
	}

	s.enrollments.DeleteByCourseID(id)
	s.schedules.DeleteByCourseID(id)
	s.courses.Delete(id)
	return nil
}

// ByID returns one course.
func (s *CourseService) ByID(id int64) (model.Course, error) {
	course, ok := s.courses.ByID(id)
	if !ok {
		return model.Course{}, NotFoundf("course %d not found", id)
	}
	return course, nil
}

// List returns every course in insertion order.
func (s *CourseService) List() []model.Course {
	return s.courses.All()
}

// Search matches keyword against names and descriptions.
func (s *CourseService) Search(keyword string) []model.Course {
	return s.courses.Search(keyword)
}

// EnrolledCount returns the number of enrollments in a course.
func (s *CourseService) EnrolledCount(courseID int64) int {
	return s.enrollments.CountByCourse(courseID)
}

// HasSeat reports whether a course can take one more enrollment. Unknown
// courses have no seats.
func (s *CourseService) HasSeat(courseID int64) bool {
	course, ok := s.courses.ByID(courseID)
	if !ok {
		return false
	}
	if course.Capacity == nil {
		return true
	}
	return s.enrollments.CountByCourse(courseID) < *course.Capacity
}
