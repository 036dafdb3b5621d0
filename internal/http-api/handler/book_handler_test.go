package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookhub/internal/http-api/models"
	"bookhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBookService mocks the BookService interface
type MockBookService struct {
	mock.Mock
}

func (m *MockBookService) Upsert(ctx context.Context, record *models.BookRecord) (*models.BookRecord, error) {
	args := m.Called(record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookRecord), args.Error(1)
}

func (m *MockBookService) Get(ctx context.Context, bookID string, userID int64) (*models.BookRecord, error) {
	args := m.Called(bookID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookRecord), args.Error(1)
}

func (m *MockBookService) ListShelf(ctx context.Context, userID int64, status string) ([]models.BookRecord, error) {
	args := m.Called(userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookRecord), args.Error(1)
}

func (m *MockBookService) Delete(ctx context.Context, bookID string, userID int64) error {
	args := m.Called(bookID, userID)
	return args.Error(0)
}

func setupRouter(svc service.BookService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewBookHandler(svc).RegisterRoutes(r.Group("/api"))
	return r
}

func strptr(s string) *string { return &s }

func TestUpdate_Success(t *testing.T) {
	mockSvc := new(MockBookService)
	router := setupRouter(mockSvc)

	stored := &models.BookRecord{
		ID:     7,
		BookID: "abc123",
		UserID: 1,
		Title:  "The Go Programming Language",
		Status: strptr(models.StatusCurrentlyReading),
	}
	mockSvc.On("Upsert", mock.MatchedBy(func(r *models.BookRecord) bool {
		return r.BookID == "abc123" && r.UserID == 1 &&
			r.Status != nil && *r.Status == models.StatusCurrentlyReading
	})).Return(stored, nil)

	body, _ := json.Marshal(map[string]string{"status": "currentlyReading"})
	req, _ := http.NewRequest("PUT", "/api/books/abc123/users/1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]any
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "abc123", response["bookid"])
	assert.Equal(t, "currentlyReading", response["status"])

	mockSvc.AssertExpectations(t)
}

func TestUpdate_BlankBookID(t *testing.T) {
	mockSvc := new(MockBookService)
	router := setupRouter(mockSvc)

	body, _ := json.Marshal(map[string]string{"status": "read"})
	req, _ := http.NewRequest("PUT", "/api/books/%20/users/1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	// the store must not be touched
	mockSvc.AssertNotCalled(t, "Upsert", mock.Anything)
}

func TestUpdate_InvalidUserID(t *testing.T) {
	mockSvc := new(MockBookService)
	router := setupRouter(mockSvc)

	for _, userID := range []string{"0", "-3", "abc"} {
		body, _ := json.Marshal(map[string]string{"status": "read"})
		req, _ := http.NewRequest("PUT", "/api/books/abc123/users/"+userID, bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "user_id=%s", userID)
	}
	mockSvc.AssertNotCalled(t, "Upsert", mock.Anything)
}

func TestUpdate_MalformedBody(t *testing.T) {
	mockSvc := new(MockBookService)
	router := setupRouter(mockSvc)

	req, _ := http.NewRequest("PUT", "/api/books/abc123/users/1", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdate_UnknownUser(t *testing.T) {
	mockSvc := new(MockBookService)
	router := setupRouter(mockSvc)

	mockSvc.On("Upsert", mock.Anything).Return(nil, service.ErrUserNotFound)

	body, _ := json.Marshal(map[string]string{"status": "read"})
	req, _ := http.NewRequest("PUT", "/api/books/abc123/users/99", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdate_StoreFailure(t *testing.T) {
	mockSvc := new(MockBookService)
	router := setupRouter(mockSvc)

	mockSvc.On("Upsert", mock.Anything).Return(nil, errors.New("update book record: connection refused"))

	body, _ := json.Marshal(map[string]string{"status": "read"})
	req, _ := http.NewRequest("PUT", "/api/books/abc123/users/1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// the underlying message is surfaced to the caller
	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Contains(t, response["error"], "connection refused")
}

func TestGet_NotFound(t *testing.T) {
	mockSvc := new(MockBookService)
	router := setupRouter(mockSvc)

	mockSvc.On("Get", "abc123", int64(1)).Return(nil, service.ErrBookNotFound)

	req, _ := http.NewRequest("GET", "/api/books/abc123/users/1", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGet_Success(t *testing.T) {
	mockSvc := new(MockBookService)
	router := setupRouter(mockSvc)

	record := &models.BookRecord{
		ID:       3,
		BookID:   "abc123",
		UserID:   1,
		Title:    "Dune",
		Status:   strptr(models.StatusRead),
		DateRead: strptr("2024-01-05"),
	}
	mockSvc.On("Get", "abc123", int64(1)).Return(record, nil)

	req, _ := http.NewRequest("GET", "/api/books/abc123/users/1", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]any
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Dune", response["title"])
	assert.Equal(t, "2024-01-05", response["dateRead"])
}

func TestListShelf_FilterAndTotal(t *testing.T) {
	mockSvc := new(MockBookService)
	router := setupRouter(mockSvc)

	shelf := []models.BookRecord{
		{ID: 1, BookID: "a", UserID: 1, Title: "A", Status: strptr(models.StatusRead)},
		{ID: 2, BookID: "b", UserID: 1, Title: "B", Status: strptr(models.StatusRead)},
	}
	mockSvc.On("ListShelf", int64(1), "read").Return(shelf, nil)

	req, _ := http.NewRequest("GET", "/api/users/1/books?status=read", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Items []map[string]any `json:"items"`
		Total int              `json:"total"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, 2, response.Total)
	assert.Len(t, response.Items, 2)
}

func TestRemove_Success(t *testing.T) {
	mockSvc := new(MockBookService)
	router := setupRouter(mockSvc)

	mockSvc.On("Delete", "abc123", int64(1)).Return(nil)

	req, _ := http.NewRequest("DELETE", "/api/books/abc123/users/1", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockSvc.AssertExpectations(t)
}
