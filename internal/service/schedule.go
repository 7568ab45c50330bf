package service

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dreamware/campus/internal/model"
	"github.com/dreamware/campus/internal/repo"
)

// ScheduleInput carries the fields for one weekly teaching slot.
type ScheduleInput struct {
	CourseID      int64  `validate:"required"`
	TeacherUserID int64  `validate:"required"`
	DayOfWeek     string `validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime     string `validate:"required,datetime=15:04"`
	EndTime       string `validate:"required,datetime=15:04"`
	Location      string `validate:"required"`
	Semester      string `validate:"required"`
}

// ScheduleService manages teaching slots. Every create and update runs the
// conflict detector; a clash rejects the call, it is never retried or
// rescheduled automatically.
type ScheduleService struct {
	gate      *sync.Mutex
	schedules *repo.Schedules
	courses   *repo.Courses
	users     *repo.Users
}

// Create adds a slot after checking references, time order and conflicts.
func (s *ScheduleService) Create(in ScheduleInput) (model.Schedule, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	if err := s.check(in, 0); err != nil {
		return model.Schedule{}, err
	}

	slot := model.Schedule{
		ID:            s.schedules.NextID(),
		CourseID:      in.CourseID,
		TeacherUserID: in.TeacherUserID,
		DayOfWeek:     in.DayOfWeek,
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
		Location:      in.Location,
		Semester:      in.Semester,
	}
	return s.schedules.Create(slot), nil
}

// Update changes a slot. The conflict scan excludes the slot being edited.
func (s *ScheduleService) Update(id int64, in ScheduleInput) (model.Schedule, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	if _, ok := s.schedules.ByID(id); !ok {
		return model.Schedule{}, NotFoundf("schedule %d not found", id)
	}
	if err := s.check(in, id); err != nil {
		return model.Schedule{}, err
	}

	updated, _ := s.schedules.Update(id, func(slot *model.Schedule) {
		slot.CourseID = in.CourseID
		slot.TeacherUserID = in.TeacherUserID
		slot.DayOfWeek = in.DayOfWeek
		slot.StartTime = in.StartTime
		slot.EndTime = in.EndTime
		slot.Location = in.Location
		slot.Semester = in.Semester
	})
	return updated, nil
}

// Delete removes a slot.
func (s *ScheduleService) Delete(id int64) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	if !s.schedules.Delete(id) {
		return NotFoundf("schedule %d not found", id)
	}
	return nil
}

// ForCourse returns a course's slots.
func (s *ScheduleService) ForCourse(courseID int64) []model.Schedule {
	return s.schedules.ByCourseID(courseID)
}

// ForTeacher returns a teacher's slots.
func (s *ScheduleService) ForTeacher(teacherUserID int64) []model.Schedule {
	return s.schedules.ByTeacherID(teacherUserID)
}

// ForDay returns every slot on one weekday.
func (s *ScheduleService) ForDay(dayOfWeek string) []model.Schedule {
	return s.schedules.ByDay(dayOfWeek)
}

// check runs the full validation sequence shared by Create and Update.
func (s *ScheduleService) check(in ScheduleInput, excludeID int64) error {
	if err := checkInput(in); err != nil {
		return err
	}
	if _, ok := s.courses.ByID(in.CourseID); !ok {
		return NotFoundf("course %d not found", in.CourseID)
	}
	teacher, ok := s.users.ByID(in.TeacherUserID)
	if !ok {
		return NotFoundf("teacher user %d not found", in.TeacherUserID)
	}
	if teacher.Role != model.RoleTeacher {
		return Validationf("user %q is not a teacher", teacher.Username)
	}
	if in.StartTime >= in.EndTime {
		return Validationf("start time must be before end time")
	}

	candidate := model.Schedule{
		CourseID:      in.CourseID,
		TeacherUserID: in.TeacherUserID,
		DayOfWeek:     in.DayOfWeek,
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
		Location:      in.Location,
	}
	if existing, ok := s.schedules.FirstConflict(candidate, excludeID); ok {
		return s.conflictError(existing, in)
	}
	return nil
}

// conflictError names the clashing course, room and teacher so the message
// can be shown as-is.
func (s *ScheduleService) conflictError(existing model.Schedule, in ScheduleInput) error {
	courseName := "another course"
	if course, ok := s.courses.ByID(existing.CourseID); ok {
		courseName = fmt.Sprintf("%q", course.Name)
	}

	var parts []string
	if strings.EqualFold(existing.Location, in.Location) {
		parts = append(parts, fmt.Sprintf("room %s is already booked for course %s", in.Location, courseName))
	}
	if existing.TeacherUserID == in.TeacherUserID {
		parts = append(parts, fmt.Sprintf("the teacher is already scheduled for course %s", courseName))
	}
	return Conflictf("%s", strings.Join(parts, "; "))
}
