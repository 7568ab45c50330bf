package repo

import (
	"path/filepath"
	"testing"

	"github.com/dreamware/campus/internal/model"
	"github.com/dreamware/campus/internal/store"
)

func newTestSchedules(t *testing.T) *Schedules {
	t.Helper()
	s := store.Open(filepath.Join(t.TempDir(), "data.json"))
	return NewSchedules(s)
}

func slot(r *Schedules, courseID, teacherID int64, day, start, end, location string) model.Schedule {
	return r.Create(model.Schedule{
		ID:            r.NextID(),
		CourseID:      courseID,
		TeacherUserID: teacherID,
		DayOfWeek:     day,
		StartTime:     start,
		EndTime:       end,
		Location:      location,
	})
}

// TestFirstConflict tests the schedule overlap rule
func TestFirstConflict(t *testing.T) {
	cand := func(teacherID int64, day, start, end, location string) model.Schedule {
		return model.Schedule{
			CourseID:      2,
			TeacherUserID: teacherID,
			DayOfWeek:     day,
			StartTime:     start,
			EndTime:       end,
			Location:      location,
		}
	}

	t.Run("same room overlapping times clash", func(t *testing.T) {
		r := newTestSchedules(t)
		existing := slot(r, 1, 10, "Monday", "09:00", "10:00", "Room 101")

		got, ok := r.FirstConflict(cand(20, "Monday", "09:30", "10:30", "Room 101"), 0)
		if !ok {
			t.Fatal("Expected a conflict, got none")
		}
		if got.ID != existing.ID {
			t.Errorf("Expected conflict with slot %d, got %d", existing.ID, got.ID)
		}
	})

	t.Run("same teacher different rooms clash", func(t *testing.T) {
		r := newTestSchedules(t)
		slot(r, 1, 10, "Monday", "09:00", "10:00", "Room 101")

		if _, ok := r.FirstConflict(cand(10, "Monday", "09:30", "10:30", "Room 202"), 0); !ok {
			t.Error("Expected teacher double-booking to conflict")
		}
	})

	t.Run("touching boundaries do not clash", func(t *testing.T) {
		r := newTestSchedules(t)
		slot(r, 1, 10, "Monday", "09:00", "10:00", "Room 101")

		if _, ok := r.FirstConflict(cand(10, "Monday", "10:00", "11:00", "Room 101"), 0); ok {
			t.Error("Back-to-back slots should not conflict")
		}
	})

	t.Run("different day never clashes", func(t *testing.T) {
		r := newTestSchedules(t)
		slot(r, 1, 10, "Monday", "09:00", "10:00", "Room 101")

		if _, ok := r.FirstConflict(cand(10, "Tuesday", "09:00", "10:00", "Room 101"), 0); ok {
			t.Error("Slots on different days should not conflict")
		}
	})

	t.Run("different room and teacher never clash", func(t *testing.T) {
		r := newTestSchedules(t)
		slot(r, 1, 10, "Monday", "09:00", "10:00", "Room 101")

		if _, ok := r.FirstConflict(cand(20, "Monday", "09:00", "10:00", "Room 202"), 0); ok {
			t.Error("Disjoint room and teacher should not conflict")
		}
	})

	t.Run("location comparison ignores case", func(t *testing.T) {
		r := newTestSchedules(t)
		slot(r, 1, 10, "Monday", "09:00", "10:00", "Room 101")

		if _, ok := r.FirstConflict(cand(20, "Monday", "09:00", "10:00", "ROOM 101"), 0); !ok {
			t.Error("Expected case-insensitive room match to conflict")
		}
	})

	t.Run("exclude id skips the slot being edited", func(t *testing.T) {
		r := newTestSchedules(t)
		existing := slot(r, 1, 10, "Monday", "09:00", "10:00", "Room 101")

		// Re-saving a slot against itself must not report a clash
		if _, ok := r.FirstConflict(cand(10, "Monday", "09:00", "10:00", "Room 101"), existing.ID); ok {
			t.Error("Slot conflicts with itself despite exclusion")
		}
	})

	t.Run("containment counts as overlap", func(t *testing.T) {
		r := newTestSchedules(t)
		slot(r, 1, 10, "Monday", "09:00", "12:00", "Room 101")

		if _, ok := r.FirstConflict(cand(20, "Monday", "10:00", "11:00", "Room 101"), 0); !ok {
			t.Error("Slot inside an existing range should conflict")
		}
	})
}
