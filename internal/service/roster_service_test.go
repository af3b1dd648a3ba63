package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/workroster/workroster-api/internal/models"
	appErrors "github.com/workroster/workroster-api/pkg/errors"
)

func newRosterFixture() (*RosterService, *scheduleStoreStub, *userDirectoryStub) {
	store := newScheduleStoreStub()
	users := newUserDirectoryStub(
		&models.User{ID: "emp-1", Email: "ana@example.com", FullName: "Ana Silva", Role: models.RoleEmployee, Service: "Reception"},
		&models.User{ID: "emp-2", Email: "bruno@example.com", FullName: "Bruno Costa", Role: models.RoleEmployee, Service: "Kitchen"},
	)
	svc := NewRosterService(store, users, nil, nil, nil, nil, 0, nil)
	return svc, store, users
}

func TestRosterHeadersShape(t *testing.T) {
	headers := RosterHeaders()
	require.Len(t, headers, 3+7*4)
	require.Equal(t, []string{"email", "full_name", "service"}, headers[:3])
	require.Equal(t, "monday_start", headers[3])
	require.Equal(t, "sunday_end", headers[len(headers)-1])
}

func TestRosterServiceExportAllIncludesScheduleless(t *testing.T) {
	svc, store, _ := newRosterFixture()
	store.schedules["emp-1"] = &models.WeeklySchedule{
		UserID:      "emp-1",
		Service:     "Reception",
		MondayStart: str("08:00"),
		MondayEnd:   str("16:00"),
	}

	payload, err := svc.ExportAll(context.Background(), coordinatorClaims())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(payload)), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, string(payload), "ana@example.com")
	// Employees without a stored schedule still get a row, with empty day cells.
	require.Contains(t, string(payload), "bruno@example.com")
}

func TestRosterServiceExportAllRequiresReviewer(t *testing.T) {
	svc, _, _ := newRosterFixture()

	_, err := svc.ExportAll(context.Background(), employeeClaims("emp-1"))
	require.Error(t, err)
	require.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestRosterServiceExportOwnFormats(t *testing.T) {
	svc, store, _ := newRosterFixture()
	store.schedules["emp-1"] = &models.WeeklySchedule{UserID: "emp-1", MondayStart: str("08:00"), MondayEnd: str("16:00")}

	csvPayload, err := svc.ExportOwn(context.Background(), "emp-1", FormatCSV, employeeClaims("emp-1"))
	require.NoError(t, err)
	require.Contains(t, string(csvPayload), "ana@example.com")

	pdfPayload, err := svc.ExportOwn(context.Background(), "emp-1", FormatPDF, employeeClaims("emp-1"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(pdfPayload), "%PDF"))

	_, err = svc.ExportOwn(context.Background(), "emp-1", "xlsx", employeeClaims("emp-1"))
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestRosterServiceExportOwnForbiddenForOtherEmployee(t *testing.T) {
	svc, _, _ := newRosterFixture()

	_, err := svc.ExportOwn(context.Background(), "emp-2", FormatCSV, employeeClaims("emp-1"))
	require.Error(t, err)
	require.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestRosterServiceTemplateMatchesImportSchema(t *testing.T) {
	svc, store, _ := newRosterFixture()

	payload, err := svc.Template(context.Background(), coordinatorClaims())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(payload), strings.Join(RosterHeaders(), ",")))

	// The template itself must survive a round trip through import, minus the
	// example employee nobody knows.
	result, err := svc.Import(context.Background(), strings.NewReader(string(payload)), coordinatorClaims())
	require.NoError(t, err)
	require.Equal(t, 1, result.Processed)
	require.Equal(t, 0, result.Applied)
	require.Len(t, result.Errors, 1)
	require.Contains(t, result.Errors[0].Reason, "unknown employee")
	require.Zero(t, store.upserts)
}

func TestRosterServiceImportAppliesRows(t *testing.T) {
	svc, store, _ := newRosterFixture()

	csv := strings.Join([]string{
		"email,full_name,service,monday_start,monday_break_start,monday_break_end,monday_end",
		"ana@example.com,Ana Silva,Reception,08:00,12:00,13:00,17:00",
		"bruno@example.com,Bruno Costa,,09:00,,,15:00",
	}, "\n")

	result, err := svc.Import(context.Background(), strings.NewReader(csv), coordinatorClaims())
	require.NoError(t, err)
	require.Equal(t, 2, result.Processed)
	require.Equal(t, 2, result.Applied)
	require.Zero(t, result.Skipped)
	require.Empty(t, result.Errors)

	ana := store.schedules["emp-1"]
	require.NotNil(t, ana)
	require.Equal(t, "08:00", *ana.MondayStart)
	require.Equal(t, "17:00", *ana.MondayEnd)

	// Missing service falls back to the employee's directory entry.
	bruno := store.schedules["emp-2"]
	require.NotNil(t, bruno)
	require.Equal(t, "Kitchen", bruno.Service)
	require.Nil(t, bruno.MondayBreakStart)
}

func TestRosterServiceImportPartialFailure(t *testing.T) {
	svc, store, _ := newRosterFixture()

	csv := strings.Join([]string{
		"email,monday_start,monday_end",
		"ana@example.com,08:00,16:00",
		"nobody@example.com,08:00,16:00",
		"bruno@example.com,17:00,08:00",
		",08:00,16:00",
	}, "\n")

	result, err := svc.Import(context.Background(), strings.NewReader(csv), coordinatorClaims())
	require.NoError(t, err)
	require.Equal(t, 4, result.Processed)
	require.Equal(t, 1, result.Applied)
	require.Equal(t, 3, result.Skipped)
	require.Len(t, result.Errors, 3)

	// Row numbers are 1-based over data rows, in file order.
	require.Equal(t, 2, result.Errors[0].Row)
	require.Contains(t, result.Errors[0].Reason, "unknown employee nobody@example.com")
	require.Equal(t, 3, result.Errors[1].Row)
	require.Contains(t, result.Errors[1].Reason, "invalid time ordering on monday")
	require.Equal(t, 4, result.Errors[2].Row)
	require.Equal(t, "missing employee email", result.Errors[2].Reason)

	// The good row still applied; the bad ordering row wrote nothing.
	require.NotNil(t, store.schedules["emp-1"])
	require.Nil(t, store.schedules["emp-2"])
}

func TestRosterServiceImportRejectsFileWithoutEmailColumn(t *testing.T) {
	svc, _, _ := newRosterFixture()

	csv := "full_name,monday_start\nAna Silva,08:00\n"
	_, err := svc.Import(context.Background(), strings.NewReader(csv), coordinatorClaims())
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing email column")
}

func TestRosterServiceImportEnforcesRowLimit(t *testing.T) {
	store := newScheduleStoreStub()
	users := newUserDirectoryStub(&models.User{ID: "emp-1", Email: "ana@example.com", Role: models.RoleEmployee})
	svc := NewRosterService(store, users, nil, nil, nil, nil, 2, nil)

	csv := strings.Join([]string{
		"email,monday_start,monday_end",
		"ana@example.com,08:00,16:00",
		"ana@example.com,08:00,16:00",
		"ana@example.com,08:00,16:00",
	}, "\n")
	_, err := svc.Import(context.Background(), strings.NewReader(csv), coordinatorClaims())
	require.Error(t, err)
	require.Contains(t, err.Error(), "row limit")
}

func TestRosterServiceExportImportRoundTrip(t *testing.T) {
	svc, store, _ := newRosterFixture()
	store.schedules["emp-1"] = &models.WeeklySchedule{
		UserID:       "emp-1",
		Service:      "Reception",
		MondayStart:  str("08:00"),
		MondayEnd:    str("16:00"),
		FridayStart:  str("10:00"),
		FridayEnd:    str("18:30"),
		SundayStart:  str("07:15"),
		SundayEnd:    str("12:00"),
		SaturdayEnd:  nil,
		TuesdayStart: nil,
	}

	first, err := svc.ExportAll(context.Background(), coordinatorClaims())
	require.NoError(t, err)

	result, err := svc.Import(context.Background(), strings.NewReader(string(first)), coordinatorClaims())
	require.NoError(t, err)
	require.Equal(t, 2, result.Applied)
	require.Empty(t, result.Errors)

	second, err := svc.ExportAll(context.Background(), coordinatorClaims())
	require.NoError(t, err)
	require.Equal(t, string(first), string(second))
}

func TestRosterServiceImportInvalidatesCacheOnce(t *testing.T) {
	store := newScheduleStoreStub()
	users := newUserDirectoryStub(&models.User{ID: "emp-1", Email: "ana@example.com", Role: models.RoleEmployee})
	cache := &cacheStub{}
	svc := NewRosterService(store, users, cache, nil, nil, nil, 0, nil)

	csv := "email,monday_start,monday_end\nana@example.com,08:00,16:00\n"
	_, err := svc.Import(context.Background(), strings.NewReader(csv), coordinatorClaims())
	require.NoError(t, err)
	require.Equal(t, []string{"schedules:*"}, cache.deletes)
}
