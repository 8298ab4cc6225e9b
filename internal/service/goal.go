package service

import (
	"fmt"
	"time"

	"github.com/goalhours/goalhours/internal/model"
	"github.com/goalhours/goalhours/internal/repository"
	"github.com/google/uuid"
)

type GoalService struct {
	repo repository.GoalRepository
}

func NewGoalService(repo repository.GoalRepository) *GoalService {
	return &GoalService{repo: repo}
}

// GoalsWithTotals returns the user's goals for the dashboard, newest first,
// each with the summed hours of its logs.
func (s *GoalService) GoalsWithTotals(userID string) ([]*model.GoalWithTotal, error) {
	return s.repo.GoalsWithTotals(userID)
}

func (s *GoalService) Create(userID, name, targetDate string) (*model.Goal, error) {
	goal := &model.Goal{
		ID:         uuid.New().String(),
		UserID:     userID,
		Name:       name,
		TargetDate: nullableDate(targetDate),
		Status:     model.GoalStatusActive,
		CreatedAt:  time.Now(),
	}

	err := s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

func (s *GoalService) ByID(userID, goalID string) (*model.Goal, error) {
	return s.repo.ByID(userID, goalID)
}

func (s *GoalService) Update(userID, goalID, name, targetDate string) error {
	return s.repo.Update(userID, goalID, name, nullableDate(targetDate))
}

// Delete removes the goal when owned by userID; its logs go with it via
// the storage engine's cascade.
func (s *GoalService) Delete(userID, goalID string) error {
	return s.repo.Delete(userID, goalID)
}

// nullableDate stores a blank form value as NULL rather than "".
func nullableDate(d string) *string {
	if d == "" {
		return nil
	}
	return &d
}
