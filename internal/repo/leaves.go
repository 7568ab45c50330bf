package repo

import (
	"github.com/dreamware/campus/internal/model"
	"github.com/dreamware/campus/internal/store"
)

// LeaveRequests is the repository over the leave_requests table.
type LeaveRequests struct {
	*store.Repository[model.LeaveRequest]
}

func NewLeaveRequests(s *store.Store) *LeaveRequests {
	return &LeaveRequests{store.NewRepository[model.LeaveRequest](s, TableLeaveRequests)}
}

// ByStudentID returns every request of one student.
func (r *LeaveRequests) ByStudentID(studentID int64) []model.LeaveRequest {
	return r.Find(func(l model.LeaveRequest) bool { return l.StudentID == studentID })
}

// ByStatus returns every request in one state.
func (r *LeaveRequests) ByStatus(status model.LeaveStatus) []model.LeaveRequest {
	return r.Find(func(l model.LeaveRequest) bool { return l.Status == status })
}
