package repo

import (
	"strings"

	"github.com/dreamware/campus/internal/model"
	"github.com/dreamware/campus/internal/store"
)

// Schedules is the repository over the schedules table.
type Schedules struct {
	*store.Repository[model.Schedule]
}

func NewSchedules(s *store.Store) *Schedules {
	return &Schedules{store.NewRepository[model.Schedule](s, TableSchedules)}
}

// ByCourseID returns every slot of one course.
func (r *Schedules) ByCourseID(courseID int64) []model.Schedule {
	return r.Find(func(s model.Schedule) bool { return s.CourseID == courseID })
}

// ByTeacherID returns every slot taught by one teacher.
func (r *Schedules) ByTeacherID(teacherUserID int64) []model.Schedule {
	return r.Find(func(s model.Schedule) bool { return s.TeacherUserID == teacherUserID })
}

// ByDay returns every slot on one weekday.
func (r *Schedules) ByDay(dayOfWeek string) []model.Schedule {
	return r.Find(func(s model.Schedule) bool { return s.DayOfWeek == dayOfWeek })
}

// DeleteByCourseID removes every slot of one course.
func (r *Schedules) DeleteByCourseID(courseID int64) int {
	return r.DeleteWhere(func(s model.Schedule) bool { return s.CourseID == courseID })
}

// FirstConflict scans existing slots for one that clashes with the
// candidate, skipping the slot with excludeID (pass 0 when creating). Two
// slots clash when they fall on the same weekday, their time ranges
// strictly overlap, and they share a location (case-insensitively) or a
// teacher. Touching boundaries, where one ends exactly when the other
// starts, do not overlap.
//
// The first clash in table iteration order is returned; existence is all
// the services need.
func (r *Schedules) FirstConflict(candidate model.Schedule, excludeID int64) (model.Schedule, bool) {
	return r.FindOne(func(s model.Schedule) bool {
		if s.ID == excludeID {
			return false
		}
		if s.DayOfWeek != candidate.DayOfWeek {
			return false
		}
		// Times are "15:04" strings; lexicographic max/min is chronological.
		if max(candidate.StartTime, s.StartTime) >= min(candidate.EndTime, s.EndTime) {
			return false
		}
		return strings.EqualFold(s.Location, candidate.Location) ||
			s.TeacherUserID == candidate.TeacherUserID
	})
}
