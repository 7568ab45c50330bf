package service

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dreamware/campus/internal/model"
	"github.com/dreamware/campus/internal/repo"
)

// LeaveService manages leave requests and their projection into the
// attendance table. A request moves pending -> approved or pending ->
// rejected, exactly once; both outcomes are terminal.
type LeaveService struct {
	gate       *sync.Mutex
	leaves     *repo.LeaveRequests
	attendance *repo.Attendance
	students   *repo.Students
	users      *repo.Users
	now        func() time.Time
}

// Apply submits a leave request for the inclusive range [startDate,
// endDate]. The request starts pending.
func (s *LeaveService) Apply(studentID int64, startDate, endDate, reason string) (model.LeaveRequest, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return model.LeaveRequest{}, Validationf("a reason is required")
	}
	if _, ok := s.students.ByID(studentID); !ok {
		return model.LeaveRequest{}, NotFoundf("student %d not found", studentID)
	}

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return model.LeaveRequest{}, Validationf("dates must use the YYYY-MM-DD format")
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return model.LeaveRequest{}, Validationf("dates must use the YYYY-MM-DD format")
	}
	if start.After(end) {
		return model.LeaveRequest{}, Validationf("start date must not be after end date")
	}

	leave := model.LeaveRequest{
		ID:        s.leaves.NextID(),
		StudentID: studentID,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    reason,
		Status:    model.LeavePending,
		CreatedAt: s.now().Format(timestampLayout),
	}
	return s.leaves.Create(leave), nil
}

// Review decides a pending request. Only users with the teacher or admin
// role may review. Approval projects every date of the range into the
// attendance table: existing rows are overwritten to leave status,
// missing rows are created.
func (s *LeaveService) Review(leaveID, approverID int64, decision model.LeaveStatus) (model.LeaveRequest, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	leave, ok := s.leaves.ByID(leaveID)
	if !ok {
		return model.LeaveRequest{}, NotFoundf("leave request %d not found", leaveID)
	}
	if leave.Status != model.LeavePending {
		return model.LeaveRequest{}, Statef("leave request %d has already been decided", leaveID)
	}
	if decision != model.LeaveApproved && decision != model.LeaveRejected {
		return model.LeaveRequest{}, Validationf("decision must be approved or rejected")
	}
	approver, ok := s.users.ByID(approverID)
	if !ok || (approver.Role != model.RoleTeacher && approver.Role != model.RoleAdmin) {
		return model.LeaveRequest{}, Validationf("only a teacher or admin can review leave requests")
	}

	updated, _ := s.leaves.Update(leaveID, func(l *model.LeaveRequest) {
		l.Status = decision
		l.ApproverID = &approverID
		l.UpdatedAt = s.now().Format(timestampLayout)
	})

	if decision == model.LeaveApproved {
		if err := s.projectApproved(updated); err != nil {
			return model.LeaveRequest{}, err
		}
	}
	return updated, nil
}

// Delete removes a request. For an approved request the attendance rows
// it produced are reversed first, but only rows still in leave status;
// a row a teacher has since overridden to another status stays.
func (s *LeaveService) Delete(leaveID int64) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	leave, ok := s.leaves.ByID(leaveID)
	if !ok {
		return NotFoundf("leave request %d not found", leaveID)
	}

	if leave.Status == model.LeaveApproved {
		err := eachDate(leave.StartDate, leave.EndDate, func(date string) {
			row, ok := s.attendance.ByStudentAndDate(leave.StudentID, date)
			if ok && row.Status == model.AttendanceLeave {
				s.attendance.Delete(row.ID)
			}
		})
		if err != nil {
			return err
		}
	}

	s.leaves.Delete(leaveID)
	return nil
}

// ForStudent returns one student's requests.
func (s *LeaveService) ForStudent(studentID int64) []model.LeaveRequest {
	return s.leaves.ByStudentID(studentID)
}

// ByStatus returns every request in one state.
func (s *LeaveService) ByStatus(status model.LeaveStatus) []model.LeaveRequest {
	return s.leaves.ByStatus(status)
}

// List returns every request in insertion order.
func (s *LeaveService) List() []model.LeaveRequest {
	return s.leaves.All()
}

// projectApproved writes one leave-status attendance row per calendar date
// of the approved range.
func (s *LeaveService) projectApproved(leave model.LeaveRequest) error {
	reason := fmt.Sprintf("approved leave: %s", leave.Reason)
	return eachDate(leave.StartDate, leave.EndDate, func(date string) {
		if existing, ok := s.attendance.ByStudentAndDate(leave.StudentID, date); ok {
			s.attendance.Update(existing.ID, func(a *model.Attendance) {
				a.Status = model.AttendanceLeave
				a.Reason = reason
			})
			return
		}
		s.attendance.Create(model.Attendance{
			ID:        s.attendance.NextID(),
			StudentID: leave.StudentID,
			Date:      date,
			Status:    model.AttendanceLeave,
			Reason:    reason,
		})
	})
}

// eachDate calls fn for every calendar date in the inclusive range.
func eachDate(startDate, endDate string, fn func(date string)) error {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return fmt.Errorf("parse leave start date: %w", err)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return fmt.Errorf("parse leave end date: %w", err)
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		fn(d.Format(dateLayout))
	}
	return nil
}
