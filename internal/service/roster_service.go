package service

import (
	"context"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/workroster/workroster-api/internal/dto"
	"github.com/workroster/workroster-api/internal/models"
	appErrors "github.com/workroster/workroster-api/pkg/errors"
	"github.com/workroster/workroster-api/pkg/export"
)

// ExportFormat selects the rendition of a single-employee export.
type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)

type rosterUserDirectory interface {
	List(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// RosterService reconciles the weekly schedule store with its tabular
// representation: full export, per-employee export, import template, and bulk
// import with per-row failure reporting. Rows are matched to employees by
// email, the only identity column guaranteed unique.
type RosterService struct {
	store   scheduleStore
	users   rosterUserDirectory
	cache   scheduleCache
	audit   auditLogger
	csv     csvRenderer
	pdf     pdfRenderer
	logger  *zap.Logger
	maxRows int
}

// NewRosterService constructs the service.
func NewRosterService(store scheduleStore, users rosterUserDirectory, cache scheduleCache, audit auditLogger, csvR csvRenderer, pdfR pdfRenderer, maxRows int, logger *zap.Logger) *RosterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csvR == nil {
		csvR = export.NewCSVExporter()
	}
	if pdfR == nil {
		pdfR = export.NewPDFExporter()
	}
	if maxRows <= 0 {
		maxRows = 2000
	}
	return &RosterService{store: store, users: users, cache: cache, audit: audit, csv: csvR, pdf: pdfR, maxRows: maxRows, logger: logger}
}

// RosterHeaders returns the fixed column schema: identity columns followed by
// the four time fields of each day, Monday through Sunday.
func RosterHeaders() []string {
	headers := []string{"email", "full_name", "service"}
	for _, day := range models.Weekdays {
		d := string(day)
		headers = append(headers, d+"_start", d+"_break_start", d+"_break_end", d+"_end")
	}
	return headers
}

// ExportAll renders one CSV row per employee. Employees without a schedule
// appear with empty day cells.
func (s *RosterService) ExportAll(ctx context.Context, actor *models.JWTClaims) ([]byte, error) {
	if err := requireScheduleWriter(actor); err != nil {
		return nil, err
	}

	role := models.RoleEmployee
	employees, err := s.users.List(ctx, models.UserFilter{Role: &role})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list employees")
	}
	schedules, err := s.store.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list schedules")
	}
	byUser := make(map[string]*models.WeeklySchedule, len(schedules))
	for i := range schedules {
		byUser[schedules[i].UserID] = &schedules[i]
	}

	rows := make([]map[string]string, 0, len(employees))
	for _, emp := range employees {
		rows = append(rows, rosterRow(&emp, byUser[emp.ID]))
	}

	payload, err := s.csv.Render(export.Dataset{Headers: RosterHeaders(), Rows: rows})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	return payload, nil
}

// ExportOwn renders one employee's schedule as CSV (single wide row) or as a
// PDF day table. Employees may only export their own record.
func (s *RosterService) ExportOwn(ctx context.Context, userID string, format ExportFormat, actor *models.JWTClaims) ([]byte, error) {
	if actor == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if actor.Role == models.RoleEmployee && actor.UserID != userID {
		return nil, appErrors.ErrForbidden
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "employee not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load employee")
	}

	sched, err := s.store.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedule")
	}

	switch format {
	case FormatPDF:
		payload, err := s.pdf.Render(dayDataset(sched), user.FullName)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
		}
		return payload, nil
	case FormatCSV, "":
		payload, err := s.csv.Render(export.Dataset{Headers: RosterHeaders(), Rows: []map[string]string{rosterRow(user, sched)}})
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
		}
		return payload, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

// Template renders the import template: the header row plus one example row.
func (s *RosterService) Template(ctx context.Context, actor *models.JWTClaims) ([]byte, error) {
	if err := requireScheduleWriter(actor); err != nil {
		return nil, err
	}
	example := map[string]string{
		"email":     "jane.doe@example.com",
		"full_name": "Jane Doe",
		"service":   "Administration",
	}
	for _, day := range []models.Weekday{models.Monday, models.Tuesday, models.Wednesday, models.Thursday, models.Friday} {
		d := string(day)
		example[d+"_start"] = "08:00"
		example[d+"_break_start"] = "12:00"
		example[d+"_break_end"] = "13:00"
		example[d+"_end"] = "17:00"
	}
	payload, err := s.csv.Render(export.Dataset{Headers: RosterHeaders(), Rows: []map[string]string{example}})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render template")
	}
	return payload, nil
}

// Import parses a CSV stream and replaces one employee's full week per row.
// Failures are per-row: a bad row is skipped and reported, the rest still
// apply. Only a structurally unreadable file fails the whole call.
func (s *RosterService) Import(ctx context.Context, reader io.Reader, actor *models.JWTClaims) (*dto.ImportResult, error) {
	if err := requireScheduleWriter(actor); err != nil {
		return nil, err
	}

	cr := csv.NewReader(reader)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unreadable file: missing header row")
	}
	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := colIndex["email"]; !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unreadable file: missing email column")
	}

	result := &dto.ImportResult{Errors: []dto.RowError{}}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "unreadable file")
		}
		result.Processed++
		if result.Processed > s.maxRows {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("import exceeds the %d row limit", s.maxRows))
		}

		row := result.Processed
		if reason := s.importRow(ctx, record, colIndex); reason != "" {
			result.Skipped++
			result.Errors = append(result.Errors, dto.RowError{Row: row, Reason: reason})
			continue
		}
		result.Applied++
	}

	if result.Applied > 0 && s.cache != nil {
		if err := s.cache.DeleteByPattern(ctx, scheduleCachePattern); err != nil {
			s.logger.Warn("failed to invalidate schedule cache after import", zap.Error(err))
		}
	}
	s.emitAudit(ctx, actor, result)
	return result, nil
}

// importRow applies one record, returning a non-empty reason when the row is
// skipped.
func (s *RosterService) importRow(ctx context.Context, record []string, colIndex map[string]int) string {
	cell := func(name string) string {
		idx, ok := colIndex[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	email := cell("email")
	if email == "" {
		return "missing employee email"
	}
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Sprintf("unknown employee %s", email)
		}
		return fmt.Sprintf("failed to look up employee %s", email)
	}

	service := cell("service")
	if service == "" {
		service = user.Service
	}
	sched := &models.WeeklySchedule{UserID: user.ID, Service: service}
	for _, day := range models.Weekdays {
		d := string(day)
		times := models.DayTimes{
			Start:      importValue(cell(d + "_start")),
			BreakStart: importValue(cell(d + "_break_start")),
			BreakEnd:   importValue(cell(d + "_break_end")),
			End:        importValue(cell(d + "_end")),
		}
		if err := ValidateDayTimes(day, times); err != nil {
			return appErrors.FromError(err).Message
		}
		sched.SetDay(day, times)
	}

	if err := s.store.UpsertFull(ctx, sched); err != nil {
		s.logger.Warn("failed to apply import row", zap.String("email", email), zap.Error(err))
		return fmt.Sprintf("failed to save schedule for %s", email)
	}
	return ""
}

func (s *RosterService) emitAudit(ctx context.Context, actor *models.JWTClaims, result *dto.ImportResult) {
	if s.audit == nil {
		return
	}
	payload, _ := json.Marshal(result)
	log := &models.AuditLog{
		UserID:    &actor.UserID,
		Action:    models.AuditActionScheduleImport,
		Resource:  "schedule",
		NewValues: payload,
		IPAddress: "system",
		UserAgent: "roster-service",
	}
	if err := s.audit.CreateAuditLog(ctx, log); err != nil {
		s.logger.Warn("failed to persist audit log", zap.Error(err))
	}
}

// importValue maps an empty cell to "no value": import is a full replacement
// of the stored week, never a merge against prior state.
func importValue(raw string) *string {
	if raw == "" {
		return nil
	}
	return &raw
}

func rosterRow(user *models.User, sched *models.WeeklySchedule) map[string]string {
	row := map[string]string{
		"email":     user.Email,
		"full_name": user.FullName,
		"service":   user.Service,
	}
	if sched == nil {
		return row
	}
	if sched.Service != "" {
		row["service"] = sched.Service
	}
	for _, day := range models.Weekdays {
		d := string(day)
		times := sched.Day(day)
		row[d+"_start"] = deref(times.Start)
		row[d+"_break_start"] = deref(times.BreakStart)
		row[d+"_break_end"] = deref(times.BreakEnd)
		row[d+"_end"] = deref(times.End)
	}
	return row
}

func dayDataset(sched *models.WeeklySchedule) export.Dataset {
	headers := []string{"day", "start", "break_start", "break_end", "end"}
	rows := make([]map[string]string, 0, len(models.Weekdays))
	for _, day := range models.Weekdays {
		row := map[string]string{"day": string(day)}
		if sched != nil {
			times := sched.Day(day)
			row["start"] = deref(times.Start)
			row["break_start"] = deref(times.BreakStart)
			row["break_end"] = deref(times.BreakEnd)
			row["end"] = deref(times.End)
		}
		rows = append(rows, row)
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
