package repo

import (
	"github.com/dreamware/campus/internal/model"
	"github.com/dreamware/campus/internal/store"
)

// Attendance is the repository over the attendance table.
type Attendance struct {
	*store.Repository[model.Attendance]
}

func NewAttendance(s *store.Store) *Attendance {
	return &Attendance{store.NewRepository[model.Attendance](s, TableAttendance)}
}

// ByStudentID returns every attendance row of one student.
func (r *Attendance) ByStudentID(studentID int64) []model.Attendance {
	return r.Find(func(a model.Attendance) bool { return a.StudentID == studentID })
}

// ByDate returns every attendance row for one date.
func (r *Attendance) ByDate(date string) []model.Attendance {
	return r.Find(func(a model.Attendance) bool { return a.Date == date })
}

// ByStudentAndDate returns the row for one (student, date) pair.
func (r *Attendance) ByStudentAndDate(studentID int64, date string) (model.Attendance, bool) {
	return r.FindOne(func(a model.Attendance) bool {
		return a.StudentID == studentID && a.Date == date
	})
}

// DeleteByStudentID removes every attendance row of one student.
func (r *Attendance) DeleteByStudentID(studentID int64) int {
	return r.DeleteWhere(func(a model.Attendance) bool { return a.StudentID == studentID })
}

// RangeStats holds per-status counts over a date range.
type RangeStats struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Leave   int `json:"leave"`
}

// StatsBetween counts rows with start <= date <= end. Dates are YYYY-MM-DD
// strings, so lexicographic comparison matches chronological order.
func (r *Attendance) StatsBetween(start, end string) RangeStats {
	var stats RangeStats
	for _, a := range r.All() {
		if a.Date < start || a.Date > end {
			continue
		}
		stats.Total++
		switch a.Status {
		case model.AttendancePresent:
			stats.Present++
		case model.AttendanceAbsent:
			stats.Absent++
		case model.AttendanceLeave:
			stats.Leave++
		}
	}
	return stats
}
