package repo

import (
	"github.com/dreamware/campus/internal/model"
	"github.com/dreamware/campus/internal/store"
)

// enrollmentStatusID is the fixed identifier of the singleton row.
const enrollmentStatusID = 1

// EnrollmentStatus is the repository over the enrollment_status table,
// which holds exactly one row: the enrollment-window flag.
type EnrollmentStatus struct {
	*store.Repository[model.EnrollmentStatus]
}

func NewEnrollmentStatus(s *store.Store) *EnrollmentStatus {
	return &EnrollmentStatus{store.NewRepository[model.EnrollmentStatus](s, TableEnrollmentStatus)}
}

// Get returns the singleton row, creating it closed if the table is empty.
func (r *EnrollmentStatus) Get() model.EnrollmentStatus {
	if status, ok := r.ByID(enrollmentStatusID); ok {
		return status
	}
	return r.Create(model.EnrollmentStatus{ID: enrollmentStatusID, Open: false})
}

// Set stores the enrollment-window flag and returns the resulting row.
func (r *EnrollmentStatus) Set(open bool) model.EnrollmentStatus {
	r.Get() // materialize the row first
	status, _ := r.Update(enrollmentStatusID, func(s *model.EnrollmentStatus) {
		s.Open = open
	})
	return status
}
