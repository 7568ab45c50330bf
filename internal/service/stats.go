package service

import (
	"math"
	"sort"
	"time"

	"github.com/dreamware/campus/internal/model"
	"github.com/dreamware/campus/internal/repo"
)

// CourseAverages holds the graded averages of one course. Ungraded
// enrollments are excluded from the average, not counted as zero.
type CourseAverages struct {
	CourseID       int64    `json:"course_id"`
	CourseName     string   `json:"course_name"`
	Enrolled       int      `json:"enrolled"`
	AvgExam        *float64 `json:"avg_exam_score"`
	AvgPerformance *float64 `json:"avg_performance_score"`
}

// GenderCount is one gender bucket of the student body.
type GenderCount struct {
	Gender string `json:"gender"`
	Count  int    `json:"count"`
}

// GeneralStats is the school-wide dashboard summary.
type GeneralStats struct {
	Students    int              `json:"total_students"`
	Courses     int              `json:"total_courses"`
	Enrollments int              `json:"total_enrollments"`
	Users       int              `json:"total_users"`
	ByGender    []GenderCount    `json:"students_by_gender"`
	Attendance  repo.RangeStats  `json:"attendance_last_7_days"`
	PerCourse   []CourseAverages `json:"course_averages"`
	Rewards     int              `json:"rewards"`
	Punishments int              `json:"punishments"`
}

// StudentStats is the per-student summary.
type StudentStats struct {
	Student     model.Student   `json:"student"`
	Attendance  repo.RangeStats `json:"attendance"`
	Courses     []CourseScore   `json:"courses"`
	Rewards     int             `json:"rewards"`
	Punishments int             `json:"punishments"`
}

// CourseScore is one student's standing in one course.
type CourseScore struct {
	CourseID         int64    `json:"course_id"`
	CourseName       string   `json:"course_name"`
	ExamScore        *float64 `json:"exam_score"`
	PerformanceScore *float64 `json:"performance_score"`
}

// StatisticsService computes read-only summaries over the whole data set.
// It takes no lock; each underlying read is individually consistent and a
// dashboard tolerates counts from adjacent instants.
type StatisticsService struct {
	users       *repo.Users
	students    *repo.Students
	courses     *repo.Courses
	enrollments *repo.Enrollments
	attendance  *repo.Attendance
	rewards     *repo.RewardsPunishments
	now         func() time.Time
}

// General builds the school-wide summary. A non-empty classFilter restricts
// the student counts and gender breakdown to one class.
func (s *StatisticsService) General(classFilter string) GeneralStats {
	students := s.students.All()
	if classFilter != "" {
		students = s.students.ByClass(classFilter)
	}

	genders := map[string]int{}
	for _, st := range students {
		genders[st.Gender]++
	}
	byGender := make([]GenderCount, 0, len(genders))
	for g, n := range genders {
		byGender = append(byGender, GenderCount{Gender: g, Count: n})
	}
	sort.Slice(byGender, func(i, j int) bool { return byGender[i].Gender < byGender[j].Gender })

	today := s.now()
	weekAgo := today.AddDate(0, 0, -6)

	stats := GeneralStats{
		Students:    len(students),
		Courses:     s.courses.Count(),
		Enrollments: s.enrollments.Count(),
		Users:       s.users.Count(),
		ByGender:    byGender,
		Attendance:  s.attendance.StatsBetween(weekAgo.Format(dateLayout), today.Format(dateLayout)),
		PerCourse:   s.courseAverages(),
	}
	for _, rec := range s.rewards.All() {
		switch rec.Type {
		case model.TypeReward:
			stats.Rewards++
		case model.TypePunishment:
			stats.Punishments++
		}
	}
	return stats
}

// ForStudent builds the per-student summary across all recorded history.
func (s *StatisticsService) ForStudent(studentID int64) (StudentStats, error) {
	student, ok := s.students.ByID(studentID)
	if !ok {
		return StudentStats{}, NotFoundf("student %d not found", studentID)
	}

	stats := StudentStats{
		Student:    student,
		Attendance: s.studentAttendance(studentID),
	}
	for _, e := range s.enrollments.ByStudentID(studentID) {
		score := CourseScore{
			CourseID:         e.CourseID,
			ExamScore:        e.ExamScore,
			PerformanceScore: e.PerformanceScore,
		}
		if course, ok := s.courses.ByID(e.CourseID); ok {
			score.CourseName = course.Name
		}
		stats.Courses = append(stats.Courses, score)
	}
	stats.Rewards, stats.Punishments = s.rewards.StudentStats(studentID)
	return stats, nil
}

func (s *StatisticsService) studentAttendance(studentID int64) repo.RangeStats {
	var rs repo.RangeStats
	for _, a := range s.attendance.ByStudentID(studentID) {
		rs.Total++
		switch a.Status {
		case model.AttendancePresent:
			rs.Present++
		case model.AttendanceAbsent:
			rs.Absent++
		case model.AttendanceLeave:
			rs.Leave++
		}
	}
	return rs
}

func (s *StatisticsService) courseAverages() []CourseAverages {
	courses := s.courses.All()
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })

	out := make([]CourseAverages, 0, len(courses))
	for _, c := range courses {
		enrolled := s.enrollments.ByCourseID(c.ID)
		ca := CourseAverages{
			CourseID:   c.ID,
			CourseName: c.Name,
			Enrolled:   len(enrolled),
		}
		var examSum, perfSum float64
		var examN, perfN int
		for _, e := range enrolled {
			if e.ExamScore != nil {
				examSum += *e.ExamScore
				examN++
			}
			if e.PerformanceScore != nil {
				perfSum += *e.PerformanceScore
				perfN++
			}
		}
		if examN > 0 {
			avg := round2(examSum / float64(examN))
			ca.AvgExam = &avg
		}
		if perfN > 0 {
			avg := round2(perfSum / float64(perfN))
			ca.AvgPerformance = &avg
		}
		out = append(out, ca)
	}
	return out
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
