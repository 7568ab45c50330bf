package repo

import (
	"github.com/dreamware/campus/internal/store"
)

// Fixed table names of the backing data file.
const (
	TableUsers            = "users"
	TableStudents         = "students"
	TableCourses          = "courses"
	TableEnrollments      = "enrollments"
	TableAttendance       = "attendance"
	TableRewardsPunish    = "rewards_punishments"
	TableParents          = "parents"
	TableNotices          = "notices"
	TableSchedules        = "schedules"
	TableLeaveRequests    = "leave_requests"
	TableEnrollmentStatus = "enrollment_status"
)

// Registry bundles every entity repository over one shared Store. All
// repositories read and write the same in-memory tables; only the Store
// touches the backing file.
type Registry struct {
	Store *store.Store

	Users       *Users
	Students    *Students
	Courses     *Courses
	Enrollments *Enrollments
	Attendance  *Attendance
	Rewards     *RewardsPunishments
	Parents     *Parents
	Notices     *Notices
	Schedules   *Schedules
	Leaves      *LeaveRequests
	Status      *EnrollmentStatus
}

// NewRegistry constructs all repositories over s, creating any table the
// backing file never mentioned.
func NewRegistry(s *store.Store) *Registry {
	return &Registry{
		Store:       s,
		Users:       NewUsers(s),
		Students:    NewStudents(s),
		Courses:     NewCourses(s),
		Enrollments: NewEnrollments(s),
		Attendance:  NewAttendance(s),
		Rewards:     NewRewardsPunishments(s),
		Parents:     NewParents(s),
		Notices:     NewNotices(s),
		Schedules:   NewSchedules(s),
		Leaves:      NewLeaveRequests(s),
		Status:      NewEnrollmentStatus(s),
	}
}
