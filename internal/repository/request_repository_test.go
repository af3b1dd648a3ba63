package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/workroster/workroster-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

var requestRowColumns = []string{
	"id", "employee_id", "request_type", "requested_date", "current_schedule",
	"requested_schedule", "reason", "status", "coordinator_response",
	"decided_by", "decided_at", "created_at",
}

func TestRequestRepositoryCreateAndGet(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewRequestRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schedule_requests")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	request := &models.ScheduleRequest{
		EmployeeID:    "emp-1",
		Type:          models.RequestTypeDayOff,
		RequestedDate: "2026-09-14",
		Reason:        "family matter",
	}
	require.NoError(t, repo.Create(context.Background(), request))
	require.NotEmpty(t, request.ID)
	require.Equal(t, models.RequestStatusPending, request.Status)

	rows := sqlmock.NewRows(requestRowColumns).
		AddRow(request.ID, "emp-1", "day_off", "2026-09-14", nil, nil, "family matter", "pending", nil, nil, nil, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, employee_id, request_type")).
		WithArgs(request.ID).
		WillReturnRows(rows)

	found, err := repo.GetByID(context.Background(), request.ID)
	require.NoError(t, err)
	require.Equal(t, request.ID, found.ID)
	require.Equal(t, models.RequestStatusPending, found.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepositoryListFilters(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewRequestRepository(db)
	rows := sqlmock.NewRows(requestRowColumns).
		AddRow("req-1", "emp-1", "schedule_change", "2026-09-21", nil, nil, "swap shift", "pending", nil, nil, nil, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, employee_id, request_type")).
		WithArgs("pending", "emp-1").
		WillReturnRows(rows)

	list, err := repo.List(context.Background(), models.ScheduleRequestFilter{
		Status:     []models.RequestStatus{models.RequestStatusPending},
		EmployeeID: "emp-1",
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "req-1", list[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepositoryDecideGuard(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewRequestRepository(db)
	now := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE schedule_requests")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	err := repo.Decide(context.Background(), DecideRequestParams{
		ID:        "req-1",
		Status:    models.RequestStatusApproved,
		Response:  "ok",
		DecidedBy: "coord-1",
		DecidedAt: now,
	})
	require.NoError(t, err)

	// Already decided: the status guard matches no rows.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE schedule_requests")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	err = repo.Decide(context.Background(), DecideRequestParams{
		ID:        "req-1",
		Status:    models.RequestStatusRejected,
		Response:  "no",
		DecidedBy: "coord-2",
		DecidedAt: now,
	})
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}
