// Package model defines the persisted entities of the campus records
// system. Field names mirror the JSON keys of the backing data file;
// optional fields are pointers so "absent" and "zero" stay distinct.
package model

// Role classifies a user account.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// AttendanceStatus is the recorded state of one student on one date.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLeave   AttendanceStatus = "leave"
)

// LeaveStatus tracks a leave request through its lifecycle. Pending is the
// only non-terminal state.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// RecordType distinguishes rewards from punishments.
type RecordType string

const (
	TypeReward     RecordType = "reward"
	TypePunishment RecordType = "punishment"
)

// User is a login account. Password holds an opaque hash produced by the
// password collaborator; this layer never sees plaintext beyond hashing.
// A student account links to its Student row via StudentInfoID.
type User struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	Password      string `json:"password"`
	Role          Role   `json:"role"`
	StudentInfoID *int64 `json:"student_info_id"`
}

func (u User) RecordID() int64 { return u.ID }

// Student is one enrolled pupil. StudentNo is the school-assigned student
// number, globally unique and distinct from the store identifier.
type Student struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Gender          string `json:"gender"`
	Age             int    `json:"age"`
	StudentNo       string `json:"student_id"`
	ContactPhone    string `json:"contact_phone"`
	FamilyInfo      string `json:"family_info"`
	ClassName       string `json:"class_name"`
	HomeroomTeacher string `json:"homeroom_teacher"`
}

func (s Student) RecordID() int64 { return s.ID }

// Course is one offered course. A nil Capacity means unlimited seats.
type Course struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Credits     int    `json:"credits"`
	Capacity    *int   `json:"capacity"`
}

func (c Course) RecordID() int64 { return c.ID }

// Enrollment links a student to a course. Scores stay nil until graded.
type Enrollment struct {
	ID               int64    `json:"id"`
	StudentID        int64    `json:"student_id"`
	CourseID         int64    `json:"course_id"`
	ExamScore        *float64 `json:"exam_score"`
	PerformanceScore *float64 `json:"performance_score"`
}

func (e Enrollment) RecordID() int64 { return e.ID }

// Attendance is one student's state on one date (YYYY-MM-DD). At most one
// row exists per (student, date) pair.
type Attendance struct {
	ID        int64            `json:"id"`
	StudentID int64            `json:"student_id"`
	Date      string           `json:"date"`
	Status    AttendanceStatus `json:"status"`
	Reason    string           `json:"reason"`
}

func (a Attendance) RecordID() int64 { return a.ID }

// LeaveRequest covers the inclusive date range [StartDate, EndDate].
// Timestamps use "2006-01-02 15:04:05"; dates use "2006-01-02".
type LeaveRequest struct {
	ID         int64       `json:"id"`
	StudentID  int64       `json:"student_id"`
	StartDate  string      `json:"start_date"`
	EndDate    string      `json:"end_date"`
	Reason     string      `json:"reason"`
	Status     LeaveStatus `json:"status"`
	ApproverID *int64      `json:"approver_id"`
	CreatedAt  string      `json:"created_at"`
	UpdatedAt  string      `json:"updated_at"`
}

func (l LeaveRequest) RecordID() int64 { return l.ID }

// RewardPunishment is one disciplinary or merit record.
type RewardPunishment struct {
	ID          int64      `json:"id"`
	StudentID   int64      `json:"student_id"`
	Type        RecordType `json:"type"`
	Description string     `json:"description"`
	Date        string     `json:"date"`
}

func (r RewardPunishment) RecordID() int64 { return r.ID }

// Parent is one guardian contact. A student has at most one parent record
// per relationship.
type Parent struct {
	ID           int64  `json:"id"`
	StudentID    int64  `json:"student_id"`
	Name         string `json:"parent_name"`
	Relationship string `json:"relationship"`
	ContactPhone string `json:"contact_phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
}

func (p Parent) RecordID() int64 { return p.ID }

// Notice is a published announcement. Target narrows the audience; an
// empty target means everyone.
type Notice struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Target  string `json:"target"`
	Sender  string `json:"sender"`
	Date    string `json:"date"`
}

func (n Notice) RecordID() int64 { return n.ID }

// Schedule is one weekly teaching slot. Times are "15:04" strings, which
// order correctly under lexicographic comparison.
type Schedule struct {
	ID            int64  `json:"id"`
	CourseID      int64  `json:"course_id"`
	TeacherUserID int64  `json:"teacher_user_id"`
	DayOfWeek     string `json:"day_of_week"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Location      string `json:"location"`
	Semester      string `json:"semester"`
}

func (s Schedule) RecordID() int64 { return s.ID }

// EnrollmentStatus is the singleton enrollment-window flag. Exactly one row
// exists, with identifier 1.
type EnrollmentStatus struct {
	ID   int64 `json:"id"`
	Open bool  `json:"enrollment_open"`
}

func (e EnrollmentStatus) RecordID() int64 { return e.ID }
