package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/dreamware/campus/internal/password"
	"github.com/dreamware/campus/internal/repo"
)

// Notifier delivers outbound messages to guardians. Actual delivery is an
// external concern; this layer only hands messages over.
type Notifier interface {
	SendSMS(phone, message string) error
	SendEmail(to, subject, body string) error
}

// LogNotifier is the stub Notifier: it logs would-be deliveries and
// succeeds. Wire a real gateway in its place when one exists.
type LogNotifier struct{}

func (LogNotifier) SendSMS(phone, message string) error {
	slog.Info("sms delivery (stub)", "to", phone, "message", message)
	return nil
}

func (LogNotifier) SendEmail(to, subject, body string) error {
	slog.Info("email delivery (stub)", "to", to, "subject", subject)
	return nil
}

// Services bundles every domain service over one repository registry.
//
// All mutating service methods serialize on a single shared gate, making
// each call one critical section: check-then-act invariants (username and
// student-number uniqueness, course capacity, schedule conflicts) hold even
// when two callers race for the last seat. Callers flush the store at the
// end of a unit of work; services themselves never write the file.
type Services struct {
	Users            *UserService
	Students         *StudentService
	Courses          *CourseService
	Enrollments      *EnrollmentService
	EnrollmentWindow *EnrollmentStatusService
	Attendance       *AttendanceService
	Leaves           *LeaveService
	Rewards          *RewardPunishmentService
	Parents          *ParentService
	Notices          *NoticeService
	Schedules        *ScheduleService
	Statistics       *StatisticsService
	Notifications    *NotificationService
}

// New wires every service over reg. A nil notifier gets the logging stub.
func New(reg *repo.Registry, hasher password.Hasher, notifier Notifier) *Services {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	gate := &sync.Mutex{}

	return &Services{
		Users: &UserService{
			gate:     gate,
			users:    reg.Users,
			students: reg.Students,
			hasher:   hasher,
		},
		Students: &StudentService{
			gate:        gate,
			students:    reg.Students,
			enrollments: reg.Enrollments,
			attendance:  reg.Attendance,
			rewards:     reg.Rewards,
			parents:     reg.Parents,
			users:       reg.Users,
		},
		Courses: &CourseService{
			gate:        gate,
			courses:     reg.Courses,
			enrollments: reg.Enrollments,
			schedules:   reg.Schedules,
		},
		Enrollments: &EnrollmentService{
			gate:        gate,
			enrollments: reg.Enrollments,
			students:    reg.Students,
			courses:     reg.Courses,
			status:      reg.Status,
		},
		EnrollmentWindow: &EnrollmentStatusService{
			gate:   gate,
			status: reg.Status,
		},
		Attendance: &AttendanceService{
			gate:       gate,
			attendance: reg.Attendance,
			students:   reg.Students,
			now:        time.Now,
		},
		Leaves: &LeaveService{
			gate:       gate,
			leaves:     reg.Leaves,
			attendance: reg.Attendance,
			students:   reg.Students,
			users:      reg.Users,
			now:        time.Now,
		},
		Rewards: &RewardPunishmentService{
			gate:     gate,
			rewards:  reg.Rewards,
			students: reg.Students,
		},
		Parents: &ParentService{
			gate:     gate,
			parents:  reg.Parents,
			students: reg.Students,
		},
		Notices: &NoticeService{
			gate:    gate,
			notices: reg.Notices,
			now:     time.Now,
		},
		Schedules: &ScheduleService{
			gate:      gate,
			schedules: reg.Schedules,
			courses:   reg.Courses,
			users:     reg.Users,
		},
		Statistics: &StatisticsService{
			users:       reg.Users,
			students:    reg.Students,
			courses:     reg.Courses,
			attendance:  reg.Attendance,
			enrollments: reg.Enrollments,
			rewards:     reg.Rewards,
			now:         time.Now,
		},
		Notifications: &NotificationService{
			gate:     gate,
			notices:  reg.Notices,
			parents:  reg.Parents,
			notifier: notifier,
			now:      time.Now,
		},
	}
}
