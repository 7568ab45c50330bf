package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamware/campus/internal/model"
)

// TestStudentCreate verifies validation and student number uniqueness.
func TestStudentCreate(t *testing.T) {
	t.Run("rejects duplicate student number", func(t *testing.T) {
		svcs, _ := newTestServices(t)
		mustStudent(t, svcs, "S001")

		_, err := svcs.Students.Create(StudentInput{
			Name:      "Other",
			Gender:    "male",
			Age:       17,
			StudentNo: "S001",
		})
		require.Error(t, err)
		assert.True(t, IsKind(err, KindDuplicate))
	})

	t.Run("rejects non-positive age", func(t *testing.T) {
		svcs, _ := newTestServices(t)

		_, err := svcs.Students.Create(StudentInput{
			Name:      "Kid",
			Gender:    "male",
			Age:       0,
			StudentNo: "S002",
		})
		require.Error(t, err)
		assert.True(t, IsKind(err, KindValidation))
	})
}

// TestStudentUpdate verifies the uniqueness check excludes the record itself.
func TestStudentUpdate(t *testing.T) {
	svcs, _ := newTestServices(t)
	a := mustStudent(t, svcs, "S001")
	mustStudent(t, svcs, "S002")

	t.Run("saving own number succeeds", func(t *testing.T) {
		_, err := svcs.Students.Update(a.ID, StudentInput{
			Name:      "Renamed",
			Gender:    "female",
			Age:       16,
			StudentNo: "S001",
		})
		assert.NoError(t, err)
	})

	t.Run("taking another student's number is rejected", func(t *testing.T) {
		_, err := svcs.Students.Update(a.ID, StudentInput{
			Name:      "Renamed",
			Gender:    "female",
			Age:       16,
			StudentNo: "S002",
		})
		require.Error(t, err)
		assert.True(t, IsKind(err, KindDuplicate))
	})
}

// TestStudentDeleteCascade verifies that removing a student removes every
// dependent record and the linked login account.
func TestStudentDeleteCascade(t *testing.T) {
	svcs, reg := newTestServices(t)

	student := mustStudent(t, svcs, "S001")
	other := mustStudent(t, svcs, "S002")
	mustUser(t, svcs, "kid", model.RoleStudent, &student.ID)

	svcs.EnrollmentWindow.Set(true)
	courseA := mustCourse(t, svcs, "Math", nil)
	courseB := mustCourse(t, svcs, "English", nil)
	_, err := svcs.Enrollments.Enroll(student.ID, courseA.ID)
	require.NoError(t, err)
	_, err = svcs.Enrollments.Enroll(student.ID, courseB.ID)
	require.NoError(t, err)
	_, err = svcs.Enrollments.Enroll(other.ID, courseA.ID)
	require.NoError(t, err)

	for _, date := range []string{"2024-03-01", "2024-03-02", "2024-03-03"} {
		_, err := svcs.Attendance.Record(RecordAttendanceInput{
			StudentID: student.ID,
			Date:      date,
			Status:    "present",
		})
		require.NoError(t, err)
	}
	_, err = svcs.Rewards.Create(RewardPunishmentInput{
		StudentID:   student.ID,
		Type:        "reward",
		Description: "perfect attendance",
		Date:        "2024-03-10",
	})
	require.NoError(t, err)
	for _, rel := range []string{"mother", "father"} {
		_, err := svcs.Parents.Create(ParentInput{
			StudentID:    student.ID,
			Name:         "Parent",
			Relationship: rel,
			ContactPhone: "13800138000",
		})
		require.NoError(t, err)
	}

	require.NoError(t, svcs.Students.Delete(student.ID))

	assert.Empty(t, reg.Enrollments.ByStudentID(student.ID))
	assert.Empty(t, reg.Attendance.ByStudentID(student.ID))
	assert.Empty(t, reg.Rewards.ByStudentID(student.ID))
	assert.Empty(t, reg.Parents.ByStudentID(student.ID))
	_, ok := reg.Users.ByUsername("kid")
	assert.False(t, ok, "linked account should be removed")

	// Unrelated records survive
	assert.Len(t, reg.Enrollments.ByStudentID(other.ID), 1)
	_, err = svcs.Students.ByID(other.ID)
	assert.NoError(t, err)
}

// TestStudentQueries covers search and class filters.
func TestStudentQueries(t *testing.T) {
	svcs, _ := newTestServices(t)

	_, err := svcs.Students.Create(StudentInput{
		Name: "Alice Zhang", Gender: "female", Age: 16, StudentNo: "S001", ClassName: "Class 1",
	})
	require.NoError(t, err)
	_, err = svcs.Students.Create(StudentInput{
		Name: "Bob Li", Gender: "male", Age: 17, StudentNo: "S002", ClassName: "Class 2",
	})
	require.NoError(t, err)

	assert.Len(t, svcs.Students.List(), 2)
	assert.Len(t, svcs.Students.ByClass("Class 1"), 1)

	found := svcs.Students.Search("zhang")
	require.Len(t, found, 1)
	assert.Equal(t, "Alice Zhang", found[0].Name)

	_, err = svcs.Students.ByStudentNo("S002")
	assert.NoError(t, err)
	_, err = svcs.Students.ByStudentNo("S999")
	assert.True(t, IsKind(err, KindNotFound))
}
