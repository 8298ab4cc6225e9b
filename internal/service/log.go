package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/goalhours/goalhours/internal/model"
	"github.com/goalhours/goalhours/internal/repository"
	"github.com/google/uuid"
)

const (
	MinHoursPerEntry = 0.1
	MaxHoursPerEntry = 24
)

var (
	ErrInvalidHours = errors.New("hours must be between 0.1 and 24")
)

type LogService struct {
	repo     repository.LogRepository
	goalRepo repository.GoalRepository
}

func NewLogService(repo repository.LogRepository, goalRepo repository.GoalRepository) *LogService {
	return &LogService{
		repo:     repo,
		goalRepo: goalRepo,
	}
}

// Create inserts a log for goalID. It performs no ownership check: the
// caller resolves the goal through GoalService.ByID first and needs that
// goal context to re-render the form when validation fails.
func (s *LogService) Create(goalID, date string, hoursSpent float64, notes string) (*model.Log, error) {
	if hoursSpent < MinHoursPerEntry || hoursSpent > MaxHoursPerEntry {
		return nil, ErrInvalidHours
	}

	log := &model.Log{
		ID:         uuid.New().String(),
		GoalID:     goalID,
		Date:       date,
		HoursSpent: hoursSpent,
		Notes:      notes,
		CreatedAt:  time.Now(),
	}

	err := s.repo.Create(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create log: %w", err)
	}

	return log, nil
}

// Logs returns the goal and its logs, newest date first. The goal lookup
// doubles as the ownership check.
func (s *LogService) Logs(userID, goalID string) (*model.Goal, []*model.Log, error) {
	goal, err := s.goalRepo.ByID(userID, goalID)
	if err != nil {
		return nil, nil, err
	}

	logs, err := s.repo.Logs(goalID)
	if err != nil {
		return nil, nil, err
	}

	return goal, logs, nil
}

func (s *LogService) ByID(userID, logID string) (*model.Log, error) {
	return s.repo.ByID(userID, logID)
}

func (s *LogService) Update(userID, logID, date string, hoursSpent float64, notes string) error {
	// Ownership resolves transitively: log -> goal -> user
	log, err := s.repo.ByID(userID, logID)
	if err != nil {
		return err
	}

	if hoursSpent < MinHoursPerEntry || hoursSpent > MaxHoursPerEntry {
		return ErrInvalidHours
	}

	log.Date = date
	log.HoursSpent = hoursSpent
	log.Notes = notes

	return s.repo.Update(log)
}

func (s *LogService) Delete(userID, logID string) error {
	// Ownership resolves transitively: log -> goal -> user
	_, err := s.repo.ByID(userID, logID)
	if err != nil {
		return err
	}

	return s.repo.Delete(logID)
}

// WeeklySummary returns per-day totals across all the user's goals for the
// trailing 7-day window ending today (server-local calendar date,
// dates >= today-7d). Days without logs are omitted.
func (s *LogService) WeeklySummary(userID string) ([]*model.DailyTotal, error) {
	since := time.Now().AddDate(0, 0, -7).Format("2006-01-02")
	return s.repo.DailyTotals(userID, since)
}
