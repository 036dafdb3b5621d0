package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"bookhub/internal/http-api/models"
	"bookhub/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrEmptyBookID     = errors.New("bookid must not be empty")
	ErrInvalidStatus   = errors.New("status must be one of: read, toRead, currentlyReading")
	ErrInvalidDateRead = errors.New("dateRead must be in YYYY-MM-DD format")
	ErrMissingTitle    = errors.New("title is required for a new book record")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookNotFound    = errors.New("book not found")
)

// RecordCache is the slice of the Redis cache the service needs. A nil cache
// satisfies it; every method degrades to a miss.
type RecordCache interface {
	Get(ctx context.Context, userID int64, bookID string) (*models.BookRecord, error)
	Set(ctx context.Context, record *models.BookRecord) error
	Invalidate(ctx context.Context, userID int64, bookID string) error
}

type BookService interface {
	Upsert(ctx context.Context, record *models.BookRecord) (*models.BookRecord, error)
	Get(ctx context.Context, bookID string, userID int64) (*models.BookRecord, error)
	ListShelf(ctx context.Context, userID int64, status string) ([]models.BookRecord, error)
	Delete(ctx context.Context, bookID string, userID int64) error
}

type bookService struct {
	repo     repository.BookRepository
	userRepo repository.UserRepository
	cache    RecordCache
}

func NewBookService(repo repository.BookRepository, userRepo repository.UserRepository, cache RecordCache) BookService {
	return &bookService{
		repo:     repo,
		userRepo: userRepo,
		cache:    cache,
	}
}

// Upsert validates the record and writes it through to the store. Repeating
// the same call leaves the same stored state.
func (s *bookService) Upsert(ctx context.Context, record *models.BookRecord) (*models.BookRecord, error) {
	if strings.TrimSpace(record.BookID) == "" {
		return nil, ErrEmptyBookID
	}

	if record.Status != nil && !models.ValidStatus(*record.Status) {
		return nil, ErrInvalidStatus
	}

	if record.DateRead != nil {
		if _, err := time.Parse(models.DateReadLayout, *record.DateRead); err != nil {
			return nil, ErrInvalidDateRead
		}
	}

	// Check the owner exists before touching the books table
	if _, err := s.userRepo.FindByID(ctx, record.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// A first-time add needs at least a title; updates may omit it
	if record.Title == "" {
		if _, err := s.repo.Get(ctx, record.BookID, record.UserID); errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMissingTitle
		}
	}

	stored, err := s.repo.Upsert(ctx, record)
	if err != nil {
		return nil, err
	}

	// Drop the stale cache entry, then refill with what the store returned.
	// Cache failures never fail the request.
	_ = s.cache.Invalidate(ctx, stored.UserID, stored.BookID)
	_ = s.cache.Set(ctx, stored)

	return stored, nil
}

func (s *bookService) Get(ctx context.Context, bookID string, userID int64) (*models.BookRecord, error) {
	if strings.TrimSpace(bookID) == "" {
		return nil, ErrEmptyBookID
	}

	if cached, err := s.cache.Get(ctx, userID, bookID); err == nil && cached != nil {
		return cached, nil
	}

	record, err := s.repo.Get(ctx, bookID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	_ = s.cache.Set(ctx, record)
	return record, nil
}

func (s *bookService) ListShelf(ctx context.Context, userID int64, status string) ([]models.BookRecord, error) {
	if status != "" && !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.repo.ListByUser(ctx, userID, status)
}

func (s *bookService) Delete(ctx context.Context, bookID string, userID int64) error {
	if strings.TrimSpace(bookID) == "" {
		return ErrEmptyBookID
	}

	if err := s.repo.Delete(ctx, bookID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		return err
	}

	_ = s.cache.Invalidate(ctx, userID, bookID)
	return nil
}
