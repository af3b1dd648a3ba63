package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/workroster/workroster-api/internal/models"
)

var scheduleColumns = func() string {
	cols := []string{"id", "user_id", "service"}
	for _, day := range models.Weekdays {
		cols = append(cols, dayColumns(day)...)
	}
	return strings.Join(append(cols, "created_at", "updated_at"), ", ")
}()

func dayColumns(day models.Weekday) []string {
	d := string(day)
	return []string{d + "_start", d + "_break_start", d + "_break_end", d + "_end"}
}

// ScheduleRepository provides persistence for weekly schedules.
type ScheduleRepository struct {
	db *sqlx.DB
}

// NewScheduleRepository creates a new schedule repository.
func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// GetByUserID loads the schedule row of one employee.
func (r *ScheduleRepository) GetByUserID(ctx context.Context, userID string) (*models.WeeklySchedule, error) {
	query := "SELECT " + scheduleColumns + " FROM weekly_schedules WHERE user_id = $1"
	var sched models.WeeklySchedule
	if err := r.db.GetContext(ctx, &sched, query, userID); err != nil {
		return nil, err
	}
	return &sched, nil
}

// List returns all schedules in creation order.
func (r *ScheduleRepository) List(ctx context.Context) ([]models.WeeklySchedule, error) {
	query := "SELECT " + scheduleColumns + " FROM weekly_schedules ORDER BY created_at ASC"
	var schedules []models.WeeklySchedule
	if err := r.db.SelectContext(ctx, &schedules, query); err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return schedules, nil
}

// UpsertDay replaces the four time columns of a single day, creating the
// schedule row when the employee has none yet.
func (r *ScheduleRepository) UpsertDay(ctx context.Context, userID, service string, day models.Weekday, times models.DayTimes) error {
	if !models.ValidWeekday(day) {
		return fmt.Errorf("unknown day %q", day)
	}
	cols := dayColumns(day)
	now := time.Now().UTC()

	query := fmt.Sprintf(`INSERT INTO weekly_schedules (id, user_id, service, %[1]s, %[2]s, %[3]s, %[4]s, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
	ON CONFLICT (user_id) DO UPDATE SET
		%[1]s = EXCLUDED.%[1]s,
		%[2]s = EXCLUDED.%[2]s,
		%[3]s = EXCLUDED.%[3]s,
		%[4]s = EXCLUDED.%[4]s,
		updated_at = EXCLUDED.updated_at`,
		cols[0], cols[1], cols[2], cols[3])

	if _, err := r.db.ExecContext(ctx, query, uuid.NewString(), userID, service,
		times.Start, times.BreakStart, times.BreakEnd, times.End, now); err != nil {
		return fmt.Errorf("upsert schedule day: %w", err)
	}
	return nil
}

// UpsertFull replaces the whole week in one statement. The single-row write
// keeps the all-or-nothing contract without an explicit transaction.
func (r *ScheduleRepository) UpsertFull(ctx context.Context, sched *models.WeeklySchedule) error {
	if sched.ID == "" {
		sched.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if sched.CreatedAt.IsZero() {
		sched.CreatedAt = now
	}
	sched.UpdatedAt = now

	insertCols := []string{"id", "user_id", "service"}
	for _, day := range models.Weekdays {
		insertCols = append(insertCols, dayColumns(day)...)
	}
	insertCols = append(insertCols, "created_at", "updated_at")

	placeholders := make([]string, len(insertCols))
	updates := make([]string, 0, len(insertCols))
	for i, col := range insertCols {
		placeholders[i] = ":" + col
		if col == "id" || col == "user_id" || col == "created_at" {
			continue
		}
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}

	query := fmt.Sprintf(`INSERT INTO weekly_schedules (%s) VALUES (%s)
	ON CONFLICT (user_id) DO UPDATE SET %s`,
		strings.Join(insertCols, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "))

	if _, err := r.db.NamedExecContext(ctx, query, sched); err != nil {
		return fmt.Errorf("upsert schedule: %w", err)
	}
	return nil
}
