// Command seed initializes a fresh data file with a usable set of accounts,
// a sample student, and a small course catalog. Running it against a file
// that already has users is a no-op.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/dreamware/campus/internal/config"
	"github.com/dreamware/campus/internal/logger"
	"github.com/dreamware/campus/internal/model"
	"github.com/dreamware/campus/internal/password"
	"github.com/dreamware/campus/internal/repo"
	"github.com/dreamware/campus/internal/service"
	"github.com/dreamware/campus/internal/store"
)

func main() {
	adminUser := flag.String("admin-user", "admin", "username of the seeded admin account")
	adminPass := flag.String("admin-pass", "admin123", "password of the seeded admin account")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	st := store.Open(cfg.DataFile)
	reg := repo.NewRegistry(st)
	svcs := service.New(reg, password.NewBcryptHasher(cfg.BcryptCost), nil)

	if reg.Users.Count() > 0 {
		slog.Info("data file already seeded, nothing to do", "path", cfg.DataFile)
		return
	}

	if err := seed(svcs, *adminUser, *adminPass); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
	if err := st.Save(); err != nil {
		slog.Error("save failed", "path", cfg.DataFile, "error", err)
		os.Exit(1)
	}
	slog.Info("seeded data file", "path", cfg.DataFile)
}

func seed(svcs *service.Services, adminUser, adminPass string) error {
	if _, err := svcs.Users.Create(service.CreateUserInput{
		Username: adminUser,
		Password: adminPass,
		Role:     model.RoleAdmin,
	}); err != nil {
		return err
	}

	teacher, err := svcs.Users.Create(service.CreateUserInput{
		Username: "teacher1",
		Password: "teacher123",
		Role:     model.RoleTeacher,
	})
	if err != nil {
		return err
	}

	student, err := svcs.Students.Create(service.StudentInput{
		Name:            "Alice Zhang",
		Gender:          "female",
		Age:             16,
		StudentNo:       "S2024001",
		ContactPhone:    "13800138000",
		ClassName:       "Class 1",
		HomeroomTeacher: "teacher1",
	})
	if err != nil {
		return err
	}

	if _, err := svcs.Users.Create(service.CreateUserInput{
		Username:      "student1",
		Password:      "student123",
		Role:          model.RoleStudent,
		StudentInfoID: &student.ID,
	}); err != nil {
		return err
	}

	mathCap, englishCap := 50, 40
	math, err := svcs.Courses.Create(service.CourseInput{
		Name:        "Mathematics",
		Description: "Core mathematics",
		Credits:     3,
		Capacity:    &mathCap,
	})
	if err != nil {
		return err
	}
	english, err := svcs.Courses.Create(service.CourseInput{
		Name:        "English",
		Description: "Core English",
		Credits:     4,
		Capacity:    &englishCap,
	})
	if err != nil {
		return err
	}
	if _, err := svcs.Courses.Create(service.CourseInput{
		Name:        "History",
		Description: "World history survey",
		Credits:     2,
	}); err != nil {
		return err
	}

	if _, err := svcs.Schedules.Create(service.ScheduleInput{
		CourseID:      math.ID,
		TeacherUserID: teacher.ID,
		DayOfWeek:     "Monday",
		StartTime:     "09:00",
		EndTime:       "10:30",
		Location:      "Room 101",
		Semester:      "2024-2025-1",
	}); err != nil {
		return err
	}
	if _, err := svcs.Schedules.Create(service.ScheduleInput{
		CourseID:      english.ID,
		TeacherUserID: teacher.ID,
		DayOfWeek:     "Tuesday",
		StartTime:     "10:00",
		EndTime:       "11:30",
		Location:      "Room 203",
		Semester:      "2024-2025-1",
	}); err != nil {
		return err
	}

	return nil
}
