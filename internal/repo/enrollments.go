package repo

import (
	"github.com/dreamware/campus/internal/model"
	"github.com/dreamware/campus/internal/store"
)

// Enrollments is the repository over the enrollments table.
type Enrollments struct {
	*store.Repository[model.Enrollment]
}

func NewEnrollments(s *store.Store) *Enrollments {
	return &Enrollments{store.NewRepository[model.Enrollment](s, TableEnrollments)}
}

// ByStudentID returns every enrollment of one student.
func (r *Enrollments) ByStudentID(studentID int64) []model.Enrollment {
	return r.Find(func(e model.Enrollment) bool { return e.StudentID == studentID })
}

// ByCourseID returns every enrollment in one course.
func (r *Enrollments) ByCourseID(courseID int64) []model.Enrollment {
	return r.Find(func(e model.Enrollment) bool { return e.CourseID == courseID })
}

// ByStudentAndCourse returns the enrollment for one (student, course) pair.
func (r *Enrollments) ByStudentAndCourse(studentID, courseID int64) (model.Enrollment, bool) {
	return r.FindOne(func(e model.Enrollment) bool {
		return e.StudentID == studentID && e.CourseID == courseID
	})
}

// CountByCourse returns the number of enrollments in one course.
func (r *Enrollments) CountByCourse(courseID int64) int {
	return len(r.ByCourseID(courseID))
}

// DeleteByStudentID removes every enrollment of one student.
func (r *Enrollments) DeleteByStudentID(studentID int64) int {
	return r.DeleteWhere(func(e model.Enrollment) bool { return e.StudentID == studentID })
}

// DeleteByCourseID removes every enrollment in one course.
func (r *Enrollments) DeleteByCourseID(courseID int64) int {
	return r.DeleteWhere(func(e model.Enrollment) bool { return e.CourseID == courseID })
}
