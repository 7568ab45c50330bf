package service

import (
	"sync"
	"time"

	"github.com/dreamware/campus/internal/model"
	"github.com/dreamware/campus/internal/repo"
)

// RecordAttendanceInput carries the fields for one attendance row.
type RecordAttendanceInput struct {
	StudentID int64                  `validate:"required"`
	Date      string                 `validate:"required,datetime=2006-01-02"`
	Status    model.AttendanceStatus `validate:"required,oneof=present absent leave"`
	Reason    string
}

// AttendanceService manages daily attendance. At most one row exists per
// (student, date) pair.
type AttendanceService struct {
	gate       *sync.Mutex
	attendance *repo.Attendance
	students   *repo.Students
	now        func() time.Time
}

// CheckIn records a self check-in for the given date, defaulting to today.
// A second check-in for the same day is rejected.
func (s *AttendanceService) CheckIn(studentID int64, date string) (model.Attendance, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	if _, ok := s.students.ByID(studentID); !ok {
		return model.Attendance{}, NotFoundf("student %d not found", studentID)
	}

	if date == "" {
		date = s.now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return model.Attendance{}, Validationf("date must use the YYYY-MM-DD format")
	}
	if _, ok := s.attendance.ByStudentAndDate(studentID, date); ok {
		return model.Attendance{}, Duplicatef("student has already checked in on %s", date)
	}

	row := model.Attendance{
		ID:        s.attendance.NextID(),
		StudentID: studentID,
		Date:      date,
		Status:    model.AttendancePresent,
		Reason:    "self check-in",
	}
	return s.attendance.Create(row), nil
}

// Record adds an attendance row with an explicit status.
func (s *AttendanceService) Record(in RecordAttendanceInput) (model.Attendance, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	if err := checkInput(in); err != nil {
		return model.Attendance{}, err
	}
	if _, ok := s.students.ByID(in.StudentID); !ok {
		return model.Attendance{}, NotFoundf("student %d not found", in.StudentID)
	}
	if _, ok := s.attendance.ByStudentAndDate(in.StudentID, in.Date); ok {
		return model.Attendance{}, Duplicatef("an attendance row for %s already exists", in.Date)
	}

	row := model.Attendance{
		ID:        s.attendance.NextID(),
		StudentID: in.StudentID,
		Date:      in.Date,
		Status:    in.Status,
		Reason:    in.Reason,
	}
	return s.attendance.Create(row), nil
}

// Update changes the status and reason of an existing row. Date and
// student are immutable; correcting those means delete and re-record.
func (s *AttendanceService) Update(id int64, status model.AttendanceStatus, reason string) (model.Attendance, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	switch status {
	case model.AttendancePresent, model.AttendanceAbsent, model.AttendanceLeave:
	default:
		return model.Attendance{}, Validationf("invalid attendance status %q", status)
	}

	updated, ok := s.attendance.Update(id, func(a *model.Attendance) {
		a.Status = status
		a.Reason = reason
	})
	if !ok {
		return model.Attendance{}, NotFoundf("attendance row %d not found", id)
	}
	return updated, nil
}

// ForStudent returns a student's attendance rows.
func (s *AttendanceService) ForStudent(studentID int64) []model.Attendance {
	return s.attendance.ByStudentID(studentID)
}

// ForDate returns every attendance row on one date.
func (s *AttendanceService) ForDate(date string) []model.Attendance {
	return s.attendance.ByDate(date)
}

// StatsBetween returns per-status counts over an inclusive date range.
func (s *AttendanceService) StatsBetween(start, end string) repo.RangeStats {
	return s.attendance.StatsBetween(start, end)
}
