package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bradycon/gatherpoint/internal/models"
	"github.com/bradycon/gatherpoint/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAttendanceRepo struct {
	mock.Mock
}

func (m *MockAttendanceRepo) List(ctx context.Context) ([]models.EventAttendance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EventAttendance), args.Error(1)
}

func (m *MockAttendanceRepo) Create(ctx context.Context, link *models.EventAttendance) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockAttendanceRepo) Get(ctx context.Context, id uint) (models.EventAttendance, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.EventAttendance), args.Error(1)
}

func (m *MockAttendanceRepo) Update(ctx context.Context, id uint, update models.EventAttendanceUpdate) (models.EventAttendance, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(models.EventAttendance), args.Error(1)
}

func (m *MockAttendanceRepo) Delete(ctx context.Context, id uint) (models.EventAttendance, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.EventAttendance), args.Error(1)
}

func (m *MockAttendanceRepo) ListByEvent(ctx context.Context, eventID uint) ([]models.EventAttendeeRow, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EventAttendeeRow), args.Error(1)
}

func (m *MockAttendanceRepo) ListByAttendee(ctx context.Context, attendeeID uint) ([]models.AttendeeEventRow, error) {
	args := m.Called(ctx, attendeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AttendeeEventRow), args.Error(1)
}

func setupAttendanceRouter(repo *MockAttendanceRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAttendanceHandler(repo)
	r.GET("/event-attendance", h.List)
	r.POST("/event-attendance", h.Create)
	r.PUT("/event-attendance", h.Update)
	r.DELETE("/event-attendance", h.Delete)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAttendanceCreate_Success(t *testing.T) {
	repo := new(MockAttendanceRepo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.EventAttendance")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.EventAttendance).ID = 12
		}).
		Return(nil)

	r := setupAttendanceRouter(repo)
	w := doJSON(r, http.MethodPost, "/event-attendance", `{"eventId":1,"attendeeId":1,"status":"Confirmed"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var created models.EventAttendance
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, uint(12), created.ID)
	assert.Equal(t, models.RSVPConfirmed, created.Status)
	repo.AssertExpectations(t)
}

func TestAttendanceCreate_MissingFields(t *testing.T) {
	repo := new(MockAttendanceRepo)
	r := setupAttendanceRouter(repo)

	for _, body := range []string{
		`{}`,
		`{"eventId":1}`,
		`{"eventId":1,"attendeeId":2}`,
		`{"eventId":1,"attendeeId":2,"status":""}`,
		`{"attendeeId":2,"status":"Confirmed"}`,
	} {
		w := doJSON(r, http.MethodPost, "/event-attendance", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		assert.Contains(t, w.Body.String(), "Missing required fields")
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// eventId 0 is falsy but present; it must reach the existence check rather
// than being rejected as missing.
func TestAttendanceCreate_ZeroEventIDNotMissing(t *testing.T) {
	repo := new(MockAttendanceRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(l *models.EventAttendance) bool {
		return l.EventID == 0 && l.AttendeeID == 1
	})).Return(repository.ErrEventNotFound)

	r := setupAttendanceRouter(repo)
	w := doJSON(r, http.MethodPost, "/event-attendance", `{"eventId":0,"attendeeId":1,"status":"Confirmed"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Event not found")
	repo.AssertExpectations(t)
}

func TestAttendanceCreate_EventNotFound(t *testing.T) {
	repo := new(MockAttendanceRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrEventNotFound)

	r := setupAttendanceRouter(repo)
	w := doJSON(r, http.MethodPost, "/event-attendance", `{"eventId":999,"attendeeId":1,"status":"Confirmed"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Event not found")
}

func TestAttendanceCreate_AttendeeNotFound(t *testing.T) {
	repo := new(MockAttendanceRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrAttendeeNotFound)

	r := setupAttendanceRouter(repo)
	w := doJSON(r, http.MethodPost, "/event-attendance", `{"eventId":1,"attendeeId":999,"status":"Confirmed"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Attendee not found")
}

func TestAttendanceCreate_Duplicate(t *testing.T) {
	repo := new(MockAttendanceRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateAttendance)

	r := setupAttendanceRouter(repo)
	w := doJSON(r, http.MethodPost, "/event-attendance", `{"eventId":1,"attendeeId":1,"status":"Confirmed"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Already registered")
}

func TestAttendanceUpdate_RequiresID(t *testing.T) {
	repo := new(MockAttendanceRepo)
	r := setupAttendanceRouter(repo)

	w := doJSON(r, http.MethodPut, "/event-attendance", `{"status":"Declined"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Attendance ID is required")
}

func TestAttendanceUpdate_StatusChange(t *testing.T) {
	repo := new(MockAttendanceRepo)
	repo.On("Update", mock.Anything, uint(3), mock.MatchedBy(func(u models.EventAttendanceUpdate) bool {
		return u.Status != nil && *u.Status == models.RSVPDeclined && u.EventID == nil && u.AttendeeID == nil
	})).Return(models.EventAttendance{ID: 3, EventID: 1, AttendeeID: 2, Status: models.RSVPDeclined}, nil)

	r := setupAttendanceRouter(repo)
	w := doJSON(r, http.MethodPut, "/event-attendance", `{"id":3,"status":"Declined"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var updated models.EventAttendance
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, models.RSVPDeclined, updated.Status)
	repo.AssertExpectations(t)
}

func TestAttendanceDelete_ReturnsDeletedRecord(t *testing.T) {
	repo := new(MockAttendanceRepo)
	repo.On("Delete", mock.Anything, uint(5)).
		Return(models.EventAttendance{ID: 5, EventID: 1, AttendeeID: 2, Status: models.RSVPConfirmed}, nil)

	r := setupAttendanceRouter(repo)
	w := doJSON(r, http.MethodDelete, "/event-attendance", `{"id":5}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Message       string                 `json:"message"`
		DeletedRecord models.EventAttendance `json:"deletedRecord"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint(5), resp.DeletedRecord.ID)
	assert.NotEmpty(t, resp.Message)
}

func TestAttendanceDelete_NotFound(t *testing.T) {
	repo := new(MockAttendanceRepo)
	repo.On("Delete", mock.Anything, uint(404)).
		Return(models.EventAttendance{}, repository.ErrAttendanceNotFound)

	r := setupAttendanceRouter(repo)
	w := doJSON(r, http.MethodDelete, "/event-attendance", `{"id":404}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAttendanceList(t *testing.T) {
	repo := new(MockAttendanceRepo)
	repo.On("List", mock.Anything).Return([]models.EventAttendance{
		{ID: 1, EventID: 1, AttendeeID: 1, Status: models.RSVPConfirmed},
	}, nil)

	r := setupAttendanceRouter(repo)
	w := doJSON(r, http.MethodGet, "/event-attendance", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var links []models.EventAttendance
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &links))
	assert.Len(t, links, 1)
}
