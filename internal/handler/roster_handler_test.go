package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workroster/workroster-api/internal/dto"
	"github.com/workroster/workroster-api/internal/middleware"
	"github.com/workroster/workroster-api/internal/models"
	"github.com/workroster/workroster-api/internal/service"
)

type rosterServiceMock struct {
	exportAllResp []byte
	exportAllErr  error
	exportOwnResp []byte
	exportOwnErr  error
	templateResp  []byte
	importResp    *dto.ImportResult
	importErr     error
	importedBody  string
	lastFormat    service.ExportFormat
}

func (m *rosterServiceMock) ExportAll(ctx context.Context, actor *models.JWTClaims) ([]byte, error) {
	return m.exportAllResp, m.exportAllErr
}

func (m *rosterServiceMock) ExportOwn(ctx context.Context, userID string, format service.ExportFormat, actor *models.JWTClaims) ([]byte, error) {
	m.lastFormat = format
	return m.exportOwnResp, m.exportOwnErr
}

func (m *rosterServiceMock) Template(ctx context.Context, actor *models.JWTClaims) ([]byte, error) {
	return m.templateResp, nil
}

func (m *rosterServiceMock) Import(ctx context.Context, reader io.Reader, actor *models.JWTClaims) (*dto.ImportResult, error) {
	body, _ := io.ReadAll(reader)
	m.importedBody = string(body)
	return m.importResp, m.importErr
}

func TestRosterHandlerExportAllSetsAttachmentHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &rosterServiceMock{exportAllResp: []byte("email,full_name\n")}
	handler := NewRosterHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/export-schedules", nil)
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "coord-1", Role: models.RoleCoordinator})

	handler.ExportAll(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "schedules.csv")
	assert.Equal(t, "email,full_name\n", w.Body.String())
}

func TestRosterHandlerExportOwnDefaultsToCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &rosterServiceMock{exportOwnResp: []byte("email\n")}
	handler := NewRosterHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/my-schedule/export", nil)
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "emp-1", Role: models.RoleEmployee})

	handler.ExportOwn(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, service.FormatCSV, mockSvc.lastFormat)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "my-schedule.csv")
}

func TestRosterHandlerExportOwnPDF(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &rosterServiceMock{exportOwnResp: []byte("%PDF-1.4")}
	handler := NewRosterHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/my-schedule/export?format=pdf", nil)
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "emp-1", Role: models.RoleEmployee})

	handler.ExportOwn(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, service.FormatPDF, mockSvc.lastFormat)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
}

func TestRosterHandlerImport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &rosterServiceMock{
		importResp: &dto.ImportResult{Processed: 2, Applied: 1, Skipped: 1, Errors: []dto.RowError{{Row: 2, Reason: "unknown employee x"}}},
	}
	handler := NewRosterHandler(mockSvc)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "schedules.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("email\nana@example.com\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/import-schedules", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "coord-1", Role: models.RoleCoordinator})

	handler.Import(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "email\nana@example.com\n", mockSvc.importedBody)
	assert.Contains(t, w.Body.String(), "unknown employee x")
}

func TestRosterHandlerImportMissingFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewRosterHandler(&rosterServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/import-schedules", nil)
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "coord-1", Role: models.RoleCoordinator})

	handler.Import(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
