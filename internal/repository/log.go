package repository

import (
	"database/sql"
	"errors"

	"github.com/goalhours/goalhours/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrLogNotFound = errors.New("log not found")
)

type LogRepository interface {
	Create(log *model.Log) error
	ByID(userID, logID string) (*model.Log, error)
	Logs(goalID string) ([]*model.Log, error)
	Update(log *model.Log) error
	Delete(logID string) error
	DailyTotals(userID, since string) ([]*model.DailyTotal, error)
}

type logRepository struct {
	db *sqlx.DB
}

func NewLogRepository(db *sqlx.DB) LogRepository {
	return &logRepository{db: db}
}

func (r *logRepository) Create(log *model.Log) error {
	query := `INSERT INTO logs (id, goal_id, date, hours_spent, notes, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		log.ID,
		log.GoalID,
		log.Date,
		log.HoursSpent,
		log.Notes,
		log.CreatedAt,
	)

	return err
}

// ByID resolves ownership transitively: log -> goal -> user. A log hanging
// off another user's goal is reported as not found.
func (r *logRepository) ByID(userID, logID string) (*model.Log, error) {
	log := &model.Log{}
	query := `SELECT l.id, l.goal_id, l.date, l.hours_spent, COALESCE(l.notes, '') AS notes, l.created_at
	          FROM logs l
	          JOIN goals g ON g.id = l.goal_id
	          WHERE l.id = $1 AND g.user_id = $2`

	err := r.db.Get(log, query, logID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrLogNotFound
	}

	return log, err
}

// Logs returns all logs of a goal ordered by date descending. NULL notes
// are normalized to the empty string at this boundary.
func (r *logRepository) Logs(goalID string) ([]*model.Log, error) {
	var logs []*model.Log
	query := `SELECT id, goal_id, date, hours_spent, COALESCE(notes, '') AS notes, created_at
	          FROM logs WHERE goal_id = $1 ORDER BY date DESC`

	err := r.db.Select(&logs, query, goalID)
	if err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *logRepository) Update(log *model.Log) error {
	query := `UPDATE logs SET date = $1, hours_spent = $2, notes = $3 WHERE id = $4`

	result, err := r.db.Exec(query, log.Date, log.HoursSpent, log.Notes, log.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrLogNotFound
	}

	return nil
}

func (r *logRepository) Delete(logID string) error {
	query := `DELETE FROM logs WHERE id = $1`

	result, err := r.db.Exec(query, logID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrLogNotFound
	}

	return nil
}

// DailyTotals sums hours per date across all of a user's goals for dates on
// or after since (YYYY-MM-DD), ascending. Dates without logs are omitted.
func (r *logRepository) DailyTotals(userID, since string) ([]*model.DailyTotal, error) {
	var totals []*model.DailyTotal
	query := `SELECT l.date, SUM(l.hours_spent) AS total_hours
	          FROM logs l
	          JOIN goals g ON g.id = l.goal_id
	          WHERE g.user_id = $1 AND l.date >= $2
	          GROUP BY l.date
	          ORDER BY l.date ASC`

	err := r.db.Select(&totals, query, userID, since)
	if err != nil {
		return nil, err
	}

	return totals, nil
}
