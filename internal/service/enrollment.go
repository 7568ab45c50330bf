package service

import (
	"sync"

	"github.com/dreamware/campus/internal/model"
	"github.com/dreamware/campus/internal/repo"
)

// EnrollmentService manages course enrollments: the enrollment window, the
// one-enrollment-per-pair rule, capacity, and score recording.
type EnrollmentService struct {
	gate        *sync.Mutex
	enrollments *repo.Enrollments
	students    *repo.Students
	courses     *repo.Courses
	status      *repo.EnrollmentStatus
}

// Enroll adds a student to a course. The checks and the insert run inside
// one critical section, so two racing calls for the last seat cannot both
// succeed.
func (s *EnrollmentService) Enroll(studentID, courseID int64) (model.Enrollment, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	if _, ok := s.students.ByID(studentID); !ok {
		return model.Enrollment{}, NotFoundf("student %d not found", studentID)
	}
	if !s.status.Get().Open {
		return model.Enrollment{}, Conflictf("enrollment is currently closed")
	}
	course, ok := s.courses.ByID(courseID)
	if !ok {
		return model.Enrollment{}, NotFoundf("course %d not found", courseID)
	}
	if _, ok := s.enrollments.ByStudentAndCourse(studentID, courseID); ok {
		return model.Enrollment{}, Duplicatef("student is already enrolled in course %q", course.Name)
	}
	if course.Capacity != nil && s.enrollments.CountByCourse(courseID) >= *course.Capacity {
		return model.Enrollment{}, Conflictf("course %q is full", course.Name)
	}

	enrollment := model.Enrollment{
		ID:        s.enrollments.NextID(),
		StudentID: studentID,
		CourseID:  courseID,
	}
	return s.enrollments.Create(enrollment), nil
}

// Unenroll removes a student from a course.
func (s *EnrollmentService) Unenroll(studentID, courseID int64) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	enrollment, ok := s.enrollments.ByStudentAndCourse(studentID, courseID)
	if !ok {
		return NotFoundf("student %d is not enrolled in course %d", studentID, courseID)
	}
	s.enrollments.Delete(enrollment.ID)
	return nil
}

// UpdateScores records exam and/or performance scores. A nil score leaves
// the stored value untouched; provided scores must each lie in [0, 100]
// with no coupling between the two.
func (s *EnrollmentService) UpdateScores(enrollmentID int64, examScore, performanceScore *float64) (model.Enrollment, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	if _, ok := s.enrollments.ByID(enrollmentID); !ok {
		return model.Enrollment{}, NotFoundf("enrollment %d not found", enrollmentID)
	}
	if examScore != nil && (*examScore < 0 || *examScore > 100) {
		return model.Enrollment{}, Validationf("exam score must be between 0 and 100")
	}
	if performanceScore != nil && (*performanceScore < 0 || *performanceScore > 100) {
		return model.Enrollment{}, Validationf("performance score must be between 0 and 100")
	}

	updated, _ := s.enrollments.Update(enrollmentID, func(e *model.Enrollment) {
		if examScore != nil {
			e.ExamScore = examScore
		}
		if performanceScore != nil {
			e.PerformanceScore = performanceScore
		}
	})
	return updated, nil
}

// ForStudent returns a student's enrollments.
func (s *EnrollmentService) ForStudent(studentID int64) []model.Enrollment {
	return s.enrollments.ByStudentID(studentID)
}

// ForCourse returns a course's enrollments.
func (s *EnrollmentService) ForCourse(courseID int64) []model.Enrollment {
	return s.enrollments.ByCourseID(courseID)
}

// IsEnrolled reports whether the (student, course) pair exists.
func (s *EnrollmentService) IsEnrolled(studentID, courseID int64) bool {
	_, ok := s.enrollments.ByStudentAndCourse(studentID, courseID)
	return ok
}

// EnrollmentStatusService manages the singleton enrollment-window flag.
type EnrollmentStatusService struct {
	gate   *sync.Mutex
	status *repo.EnrollmentStatus
}

// Get returns the current flag, materializing the closed default when the
// table is empty. The materialization is a check-then-act, so it takes the
// gate like every mutating path; two first-ever readers must not both
// insert the singleton row.
func (s *EnrollmentStatusService) Get() model.EnrollmentStatus {
	s.gate.Lock()
	defer s.gate.Unlock()
	return s.status.Get()
}

// Set stores the flag.
func (s *EnrollmentStatusService) Set(open bool) model.EnrollmentStatus {
	s.gate.Lock()
	defer s.gate.Unlock()
	return s.status.Set(open)
}

// Toggle flips the flag and returns the new state.
func (s *EnrollmentStatusService) Toggle() model.EnrollmentStatus {
	s.gate.Lock()
	defer s.gate.Unlock()
	return s.status.Set(!s.status.Get().Open)
}
