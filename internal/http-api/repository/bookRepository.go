package repository

import (
	"context"
	"fmt"
	"time"

	"bookhub/internal/http-api/models"

	"gorm.io/gorm"
)

type BookRepository interface {
	Upsert(ctx context.Context, record *models.BookRecord) (*models.BookRecord, error)
	Get(ctx context.Context, bookID string, userID int64) (*models.BookRecord, error)
	ListByUser(ctx context.Context, userID int64, status string) ([]models.BookRecord, error)
	Delete(ctx context.Context, bookID string, userID int64) error
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

// Upsert the record keyed by (bookid, userid). Last write wins: there is no
// concurrency token, a concurrent writer's committed update is simply
// overwritten field by field.
func (r *bookRepository) Upsert(ctx context.Context, record *models.BookRecord) (*models.BookRecord, error) {
	// Try to find existing record
	var existing models.BookRecord
	err := r.db.WithContext(ctx).
		Where("bookid = ? AND userid = ?", record.BookID, record.UserID).
		First(&existing).Error

	if err == gorm.ErrRecordNotFound {
		// Create new record
		if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
			return nil, fmt.Errorf("create book record: %w", err)
		}
		return record, nil
	} else if err != nil {
		return nil, fmt.Errorf("lookup book record: %w", err)
	}

	// Update existing record; only fields carried by the request overwrite
	// stored values, so a partial body leaves the rest intact.
	updates := mutableFieldUpdates(record)
	if err := r.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update book record: %w", err)
	}

	// Re-read so the caller sees what was stored, not what was sent
	return r.Get(ctx, record.BookID, record.UserID)
}

func (r *bookRepository) Get(ctx context.Context, bookID string, userID int64) (*models.BookRecord, error) {
	var record models.BookRecord
	if err := r.db.WithContext(ctx).
		Where("bookid = ? AND userid = ?", bookID, userID).
		First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *bookRepository) ListByUser(ctx context.Context, userID int64, status string) ([]models.BookRecord, error) {
	var list []models.BookRecord

	q := r.db.WithContext(ctx).Where("userid = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Order("updated_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list bookshelf: %w", err)
	}

	return list, nil
}

func (r *bookRepository) Delete(ctx context.Context, bookID string, userID int64) error {
	result := r.db.WithContext(ctx).
		Where("bookid = ? AND userid = ?", bookID, userID).
		Delete(&models.BookRecord{})

	if result.Error != nil {
		return fmt.Errorf("delete book record: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// mutableFieldUpdates maps the incoming record's set fields to column
// updates. bookid/userid are immutable and never appear here.
func mutableFieldUpdates(record *models.BookRecord) map[string]any {
	updates := map[string]any{
		"updated_at": time.Now(),
	}
	if record.Title != "" {
		updates["title"] = record.Title
	}
	setIfPresent(updates, "subtitle", record.Subtitle)
	setIfPresent(updates, "author", record.Author)
	setIfPresent(updates, "genre", record.Genre)
	setIfPresent(updates, "img", record.Img)
	setIfPresent(updates, "desc", record.Desc)
	setIfPresent(updates, "preview_link", record.PreviewLink)
	setIfPresent(updates, "language", record.Language)
	setIfPresent(updates, "published_date", record.PublishedDate)
	setIfPresent(updates, "date_read", record.DateRead)
	setIfPresent(updates, "status", record.Status)
	if record.PageCount != nil {
		updates["page_count"] = *record.PageCount
	}
	return updates
}

func setIfPresent(updates map[string]any, column string, value *string) {
	if value != nil {
		updates[column] = *value
	}
}
