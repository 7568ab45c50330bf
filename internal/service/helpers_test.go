package service

import (
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dreamware/campus/internal/model"
	"github.com/dreamware/campus/internal/password"
	"github.com/dreamware/campus/internal/repo"
	"github.com/dreamware/campus/internal/store"
)

// newTestServices wires a full service bundle over a throwaway data file.
// The minimum bcrypt cost keeps the hashing fast enough for tests.
func newTestServices(t *testing.T) (*Services, *repo.Registry) {
	t.Helper()
	st := store.Open(filepath.Join(t.TempDir(), "data.json"))
	reg := repo.NewRegistry(st)
	svcs := New(reg, password.NewBcryptHasher(bcrypt.MinCost), nil)
	return svcs, reg
}

// fixedClock pins a service's notion of now for deterministic timestamps.
func fixedClock(at string) func() time.Time {
	ts, err := time.Parse("2006-01-02 15:04:05", at)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return ts }
}

func mustStudent(t *testing.T, svcs *Services, no string) model.Student {
	t.Helper()
	student, err := svcs.Students.Create(StudentInput{
		Name:      "Student " + no,
		Gender:    "female",
		Age:       16,
		StudentNo: no,
	})
	if err != nil {
		t.Fatalf("Failed to create fixture student: %v", err)
	}
	return student
}

func mustCourse(t *testing.T, svcs *Services, name string, capacity *int) model.Course {
	t.Helper()
	course, err := svcs.Courses.Create(CourseInput{
		Name:     name,
		Credits:  3,
		Capacity: capacity,
	})
	if err != nil {
		t.Fatalf("Failed to create fixture course: %v", err)
	}
	return course
}

func mustUser(t *testing.T, svcs *Services, username string, role model.Role, studentInfoID *int64) model.User {
	t.Helper()
	user, err := svcs.Users.Create(CreateUserInput{
		Username:      username,
		Password:      "secret123",
		Role:          role,
		StudentInfoID: studentInfoID,
	})
	if err != nil {
		t.Fatalf("Failed to create fixture user: %v", err)
	}
	return user
}
