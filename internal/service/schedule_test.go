package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamware/campus/internal/model"
)

func scheduleFixture(t *testing.T) (*Services, model.Course, model.User) {
	t.Helper()
	svcs, _ := newTestServices(t)
	course := mustCourse(t, svcs, "Math", nil)
	teacher := mustUser(t, svcs, "teach", model.RoleTeacher, nil)
	return svcs, course, teacher
}

// TestScheduleCreate verifies slot creation rules and the conflict check.
func TestScheduleCreate(t *testing.T) {
	base := func(course model.Course, teacher model.User) ScheduleInput {
		return ScheduleInput{
			CourseID:      course.ID,
			TeacherUserID: teacher.ID,
			DayOfWeek:     "Monday",
			StartTime:     "09:00",
			EndTime:       "10:00",
			Location:      "Room 101",
			Semester:      "2024-1",
		}
	}

	t.Run("valid slot accepted", func(t *testing.T) {
		svcs, course, teacher := scheduleFixture(t)

		slot, err := svcs.Schedules.Create(base(course, teacher))
		require.NoError(t, err)
		assert.Equal(t, "Monday", slot.DayOfWeek)
	})

	t.Run("unknown weekday rejected", func(t *testing.T) {
		svcs, course, teacher := scheduleFixture(t)

		in := base(course, teacher)
		in.DayOfWeek = "Funday"
		_, err := svcs.Schedules.Create(in)
		assert.True(t, IsKind(err, KindValidation))
	})

	t.Run("start must precede end", func(t *testing.T) {
		svcs, course, teacher := scheduleFixture(t)

		in := base(course, teacher)
		in.StartTime, in.EndTime = "10:00", "09:00"
		_, err := svcs.Schedules.Create(in)
		assert.True(t, IsKind(err, KindValidation))

		in.StartTime, in.EndTime = "09:00", "09:00"
		_, err = svcs.Schedules.Create(in)
		assert.True(t, IsKind(err, KindValidation), "zero-length slot rejected")
	})

	t.Run("assignee must hold the teacher role", func(t *testing.T) {
		svcs, course, _ := scheduleFixture(t)
		admin := mustUser(t, svcs, "boss", model.RoleAdmin, nil)

		in := base(course, model.User{})
		in.TeacherUserID = admin.ID
		_, err := svcs.Schedules.Create(in)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindValidation))
	})

	t.Run("unknown course rejected", func(t *testing.T) {
		svcs, _, teacher := scheduleFixture(t)

		in := base(model.Course{ID: 99}, teacher)
		_, err := svcs.Schedules.Create(in)
		assert.True(t, IsKind(err, KindNotFound))
	})

	t.Run("room clash rejected with course named", func(t *testing.T) {
		svcs, course, teacher := scheduleFixture(t)
		_, err := svcs.Schedules.Create(base(course, teacher))
		require.NoError(t, err)

		other := mustUser(t, svcs, "teach2", model.RoleTeacher, nil)
		in := base(course, model.User{})
		in.TeacherUserID = other.ID
		in.StartTime, in.EndTime = "09:30", "10:30"
		_, err = svcs.Schedules.Create(in)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindConflict))
		assert.Contains(t, err.Error(), "Room 101")
		assert.Contains(t, err.Error(), "Math")
	})

	t.Run("teacher clash rejected across rooms", func(t *testing.T) {
		svcs, course, teacher := scheduleFixture(t)
		_, err := svcs.Schedules.Create(base(course, teacher))
		require.NoError(t, err)

		in := base(course, teacher)
		in.Location = "Room 202"
		in.StartTime, in.EndTime = "09:30", "10:30"
		_, err = svcs.Schedules.Create(in)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindConflict))
		assert.Contains(t, err.Error(), "teacher")
	})

	t.Run("back-to-back slots accepted", func(t *testing.T) {
		svcs, course, teacher := scheduleFixture(t)
		_, err := svcs.Schedules.Create(base(course, teacher))
		require.NoError(t, err)

		in := base(course, teacher)
		in.StartTime, in.EndTime = "10:00", "11:00"
		_, err = svcs.Schedules.Create(in)
		assert.NoError(t, err)
	})
}

// TestScheduleUpdate verifies the edit path excludes the slot itself from
// the conflict scan.
func TestScheduleUpdate(t *testing.T) {
	svcs, course, teacher := scheduleFixture(t)

	slot, err := svcs.Schedules.Create(ScheduleInput{
		CourseID:      course.ID,
		TeacherUserID: teacher.ID,
		DayOfWeek:     "Monday",
		StartTime:     "09:00",
		EndTime:       "10:00",
		Location:      "Room 101",
		Semester:      "2024-1",
	})
	require.NoError(t, err)

	// Saving the slot unchanged must not clash with itself
	_, err = svcs.Schedules.Update(slot.ID, ScheduleInput{
		CourseID:      course.ID,
		TeacherUserID: teacher.ID,
		DayOfWeek:     "Monday",
		StartTime:     "09:00",
		EndTime:       "10:00",
		Location:      "Room 101",
		Semester:      "2024-2",
	})
	assert.NoError(t, err)

	_, err = svcs.Schedules.Update(99, ScheduleInput{
		CourseID:      course.ID,
		TeacherUserID: teacher.ID,
		DayOfWeek:     "Monday",
		StartTime:     "09:00",
		EndTime:       "10:00",
		Location:      "Room 101",
		Semester:      "2024-1",
	})
	assert.True(t, IsKind(err, KindNotFound))
}
