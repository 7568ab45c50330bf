package service

import (
	"sync"

	"github.com/dreamware/campus/internal/model"
	"github.com/dreamware/campus/internal/repo"
)

// RewardPunishmentInput carries the fields for one conduct record.
type RewardPunishmentInput struct {
	StudentID   int64  `validate:"required"`
	Type        string `validate:"required,oneof=reward punishment"`
	Description string `validate:"required"`
	Date        string `validate:"required,datetime=2006-01-02"`
}

// UpdateRewardPunishmentInput covers the fields an edit may change. The
// student link is fixed once the record exists.
type UpdateRewardPunishmentInput struct {
	Type        string `validate:"required,oneof=reward punishment"`
	Description string `validate:"required"`
	Date        string `validate:"required,datetime=2006-01-02"`
}

// RewardPunishmentService manages conduct records and their summaries.
type RewardPunishmentService struct {
	gate     *sync.Mutex
	rewards  *repo.RewardsPunishments
	students *repo.Students
}

// Create records a reward or punishment for an existing student.
func (s *RewardPunishmentService) Create(in RewardPunishmentInput) (model.RewardPunishment, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	if err := checkInput(in); err != nil {
		return model.RewardPunishment{}, err
	}
	if _, ok := s.students.ByID(in.StudentID); !ok {
		return model.RewardPunishment{}, NotFoundf("student %d not found", in.StudentID)
	}

	rec := model.RewardPunishment{
		ID:          s.rewards.NextID(),
		StudentID:   in.StudentID,
		Type:        model.RecordType(in.Type),
		Description: in.Description,
		Date:        in.Date,
	}
	return s.rewards.Create(rec), nil
}

// Update edits an existing record.
func (s *RewardPunishmentService) Update(id int64, in UpdateRewardPunishmentInput) (model.RewardPunishment, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	if err := checkInput(in); err != nil {
		return model.RewardPunishment{}, err
	}
	updated, ok := s.rewards.Update(id, func(rec *model.RewardPunishment) {
		rec.Type = model.RecordType(in.Type)
		rec.Description = in.Description
		rec.Date = in.Date
	})
	if !ok {
		return model.RewardPunishment{}, NotFoundf("record %d not found", id)
	}
	return updated, nil
}

// Delete removes a record.
func (s *RewardPunishmentService) Delete(id int64) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	if !s.rewards.Delete(id) {
		return NotFoundf("record %d not found", id)
	}
	return nil
}

// ForStudent returns every record for a student.
func (s *RewardPunishmentService) ForStudent(studentID int64) []model.RewardPunishment {
	return s.rewards.ByStudentID(studentID)
}

// Rewards returns every reward record.
func (s *RewardPunishmentService) Rewards() []model.RewardPunishment {
	return s.rewards.ByType(model.TypeReward)
}

// Punishments returns every punishment record.
func (s *RewardPunishmentService) Punishments() []model.RewardPunishment {
	return s.rewards.ByType(model.TypePunishment)
}

// StudentStats counts rewards and punishments for one student.
func (s *RewardPunishmentService) StudentStats(studentID int64) (rewards, punishments int, err error) {
	if _, ok := s.students.ByID(studentID); !ok {
		return 0, 0, NotFoundf("student %d not found", studentID)
	}
	rewards, punishments = s.rewards.StudentStats(studentID)
	return rewards, punishments, nil
}

// ConductSummary aggregates conduct records school-wide.
type ConductSummary struct {
	Rewards     int            `json:"rewards"`
	Punishments int            `json:"punishments"`
	ByMonth     map[string]int `json:"by_month"`
}

// OverallStats totals all records, bucketed by month of the record date.
// Month keys use the YYYY-MM prefix of the date string.
func (s *RewardPunishmentService) OverallStats() ConductSummary {
	sum := ConductSummary{ByMonth: map[string]int{}}
	for _, rec := range s.rewards.All() {
		switch rec.Type {
		case model.TypeReward:
			sum.Rewards++
		case model.TypePunishment:
			sum.Punishments++
		}
		if len(rec.Date) >= 7 {
			sum.ByMonth[rec.Date[:7]]++
		}
	}
	return sum
}

// Between returns records dated within [start, end] inclusive. Dates are
// YYYY-MM-DD strings so a plain string compare orders them correctly.
func (s *RewardPunishmentService) Between(start, end string) []model.RewardPunishment {
	return s.rewards.Find(func(rec model.RewardPunishment) bool {
		return rec.Date >= start && rec.Date <= end
	})
}
