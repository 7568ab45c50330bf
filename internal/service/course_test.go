package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCourseCreate verifies catalog validation and name uniqueness.
func TestCourseCreate(t *testing.T) {
	t.Run("rejects duplicate name", func(t *testing.T) {
		svcs, _ := newTestServices(t)
		mustCourse(t, svcs, "Math", nil)

		_, err := svcs.Courses.Create(CourseInput{Name: "Math", Credits: 2})
		require.Error(t, err)
		assert.True(t, IsKind(err, KindDuplicate))
	})

	t.Run("rejects non-positive credits", func(t *testing.T) {
		svcs, _ := newTestServices(t)

		_, err := svcs.Courses.Create(CourseInput{Name: "Math", Credits: 0})
		assert.True(t, IsKind(err, KindValidation))
	})

	t.Run("rejects non-positive capacity", func(t *testing.T) {
		svcs, _ := newTestServices(t)

		zero := 0
		_, err := svcs.Courses.Create(CourseInput{Name: "Math", Credits: 3, Capacity: &zero})
		assert.True(t, IsKind(err, KindValidation))
	})
}

// TestCourseUpdate verifies the uniqueness check excludes the course itself.
func TestCourseUpdate(t *testing.T) {
	svcs, _ := newTestServices(t)
	math := mustCourse(t, svcs, "Math", nil)
	mustCourse(t, svcs, "English", nil)

	_, err := svcs.Courses.Update(math.ID, CourseInput{Name: "Math", Credits: 4})
	assert.NoError(t, err, "saving own name succeeds")

	_, err = svcs.Courses.Update(math.ID, CourseInput{Name: "English", Credits: 4})
	require.Error(t, err)
	assert.True(t, IsKind(err, KindDuplicate))
}

// TestCourseSeats verifies the seat accounting helpers.
func TestCourseSeats(t *testing.T) {
	svcs, _ := newTestServices(t)
	svcs.EnrollmentWindow.Set(true)

	one := 1
	course := mustCourse(t, svcs, "Seminar", &one)
	student := mustStudent(t, svcs, "S001")

	assert.True(t, svcs.Courses.HasSeat(course.ID))
	assert.Equal(t, 0, svcs.Courses.EnrolledCount(course.ID))

	_, err := svcs.Enrollments.Enroll(student.ID, course.ID)
	require.NoError(t, err)

	assert.False(t, svcs.Courses.HasSeat(course.ID))
	assert.Equal(t, 1, svcs.Courses.EnrolledCount(course.ID))
}
