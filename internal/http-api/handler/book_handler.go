package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"bookhub/internal/http-api/dto"
	"bookhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	svc service.BookService
}

func NewBookHandler(svc service.BookService) *BookHandler {
	return &BookHandler{svc: svc}
}

func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/books/:book_id/users/:user_id", h.Update)
	rg.GET("/books/:book_id/users/:user_id", h.Get)
	rg.DELETE("/books/:book_id/users/:user_id", h.Remove)
	rg.GET("/users/:user_id/books", h.ListShelf)
}

// pathKey validates and extracts the (book_id, user_id) pair every book
// route is keyed by.
func pathKey(c *gin.Context) (string, int64, bool) {
	bookID := strings.TrimSpace(c.Param("book_id"))
	if bookID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "book_id must not be empty"})
		return "", 0, false
	}

	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be a positive integer"})
		return "", 0, false
	}

	return bookID, userID, true
}

// Update upserts the book record identified by the path. The body may be a
// full record or just the fields that changed; last write wins at the store.
func (h *BookHandler) Update(c *gin.Context) {
	bookID, userID, ok := pathKey(c)
	if !ok {
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	record := req.ToModel(bookID, userID)
	stored, err := h.svc.Upsert(ctx, &record)
	if err != nil {
		status := statusForError(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToResponse(*stored))
}

// Get returns the stored record for (book_id, user_id), 404 when the user
// has not shelved the book yet.
func (h *BookHandler) Get(c *gin.Context) {
	bookID, userID, ok := pathKey(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	record, err := h.svc.Get(ctx, bookID, userID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToResponse(*record))
}

// Remove deletes the record from the user's shelf
func (h *BookHandler) Remove(c *gin.Context) {
	bookID, userID, ok := pathKey(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Delete(ctx, bookID, userID); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// ListShelf returns the user's bookshelf, optionally filtered by ?status=
func (h *BookHandler) ListShelf(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be a positive integer"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	shelf, err := h.svc.ListShelf(ctx, userID, c.Query("status"))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	items := make([]dto.BookResponse, 0, len(shelf))
	for _, record := range shelf {
		items = append(items, dto.FromModelToResponse(record))
	}

	c.JSON(http.StatusOK, dto.ShelfListResponse{
		Items: items,
		Total: len(items),
	})
}

// statusForError maps service errors to HTTP statuses: validation failures
// are 400, missing users/books 404, anything else is a store failure and
// surfaces as 500 with the underlying message.
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrEmptyBookID),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidDateRead),
		errors.Is(err, service.ErrMissingTitle):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrBookNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
