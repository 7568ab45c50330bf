package repo

import (
	"github.com/dreamware/campus/internal/model"
	"github.com/dreamware/campus/internal/store"
)

// RewardsPunishments is the repository over the rewards_punishments table.
type RewardsPunishments struct {
	*store.Repository[model.RewardPunishment]
}

func NewRewardsPunishments(s *store.Store) *RewardsPunishments {
	return &RewardsPunishments{store.NewRepository[model.RewardPunishment](s, TableRewardsPunish)}
}

// ByStudentID returns every record of one student.
func (r *RewardsPunishments) ByStudentID(studentID int64) []model.RewardPunishment {
	return r.Find(func(rp model.RewardPunishment) bool { return rp.StudentID == studentID })
}

// ByType returns every record of one type.
func (r *RewardsPunishments) ByType(t model.RecordType) []model.RewardPunishment {
	return r.Find(func(rp model.RewardPunishment) bool { return rp.Type == t })
}

// StudentStats counts one student's rewards and punishments.
func (r *RewardsPunishments) StudentStats(studentID int64) (rewards, punishments int) {
	for _, rp := range r.ByStudentID(studentID) {
		switch rp.Type {
		case model.TypeReward:
			rewards++
		case model.TypePunishment:
			punishments++
		}
	}
	return rewards, punishments
}

// DeleteByStudentID removes every record of one student.
func (r *RewardsPunishments) DeleteByStudentID(studentID int64) int {
	return r.DeleteWhere(func(rp model.RewardPunishment) bool { return rp.StudentID == studentID })
}
