package repository

import (
	"database/sql"
	"errors"

	"github.com/goalhours/goalhours/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Create(goal *model.Goal) error
	ByID(userID, goalID string) (*model.Goal, error)
	GoalsWithTotals(userID string) ([]*model.GoalWithTotal, error)
	Update(userID, goalID, name string, targetDate *string) error
	Delete(userID, goalID string) error
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(goal *model.Goal) error {
	query := `INSERT INTO goals (id, user_id, name, target_date, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		goal.ID,
		goal.UserID,
		goal.Name,
		goal.TargetDate,
		goal.Status,
		goal.CreatedAt,
	)

	return err
}

// ByID returns the goal only when it is owned by userID. A goal belonging
// to another user is indistinguishable from a goal that does not exist.
func (r *goalRepository) ByID(userID, goalID string) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT * FROM goals WHERE id = $1 AND user_id = $2`

	err := r.db.Get(goal, query, goalID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrGoalNotFound
	}

	return goal, err
}

// GoalsWithTotals returns every goal owned by userID, newest first, each
// annotated with the summed hours of its logs. Goals without logs total 0.
func (r *goalRepository) GoalsWithTotals(userID string) ([]*model.GoalWithTotal, error) {
	var goals []*model.GoalWithTotal

	query := `SELECT g.id, g.user_id, g.name, g.target_date, g.status, g.created_at,
	                 COALESCE(SUM(l.hours_spent), 0) AS total_hours
	          FROM goals g
	          LEFT JOIN logs l ON l.goal_id = g.id
	          WHERE g.user_id = $1
	          GROUP BY g.id, g.user_id, g.name, g.target_date, g.status, g.created_at
	          ORDER BY g.created_at DESC`

	err := r.db.Select(&goals, query, userID)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) Update(userID, goalID, name string, targetDate *string) error {
	query := `UPDATE goals SET name = $1, target_date = $2 WHERE id = $3 AND user_id = $4`

	result, err := r.db.Exec(query, name, targetDate, goalID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}

func (r *goalRepository) Delete(userID, goalID string) error {
	query := `DELETE FROM goals WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, goalID, userID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}
