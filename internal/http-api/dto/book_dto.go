package dto

import (
	"time"

	"bookhub/internal/http-api/models"
)

// UpdateBookRequest: payload for the book upsert endpoint. Everything is
// optional at the binding layer; partial bodies are allowed for display
// fields, status and dateRead are the fields expected to change.
type UpdateBookRequest struct {
	Title         *string `json:"title,omitempty"`
	Subtitle      *string `json:"subtitle,omitempty"`
	Author        *string `json:"author,omitempty"`
	Genre         *string `json:"genre,omitempty"`
	Img           *string `json:"img,omitempty"`
	Desc          *string `json:"desc,omitempty"`
	PageCount     *int    `json:"pageCount,omitempty"`
	PreviewLink   *string `json:"previewLink,omitempty"`
	Language      *string `json:"language,omitempty"`
	PublishedDate *string `json:"publishedDate,omitempty"`
	DateRead      *string `json:"dateRead,omitempty"`
	Status        *string `json:"status,omitempty"`
}

// ToModel builds the record the path parameters identify. The key fields
// always come from the path, never from the body.
func (r UpdateBookRequest) ToModel(bookID string, userID int64) models.BookRecord {
	m := models.BookRecord{
		BookID:        bookID,
		UserID:        userID,
		Subtitle:      r.Subtitle,
		Author:        r.Author,
		Genre:         r.Genre,
		Img:           r.Img,
		Desc:          r.Desc,
		PageCount:     r.PageCount,
		PreviewLink:   r.PreviewLink,
		Language:      r.Language,
		PublishedDate: r.PublishedDate,
		DateRead:      r.DateRead,
		Status:        r.Status,
	}
	if r.Title != nil {
		m.Title = *r.Title
	}
	return m
}

// BookResponse: response for a single book record
type BookResponse struct {
	ID            int64     `json:"id"`
	BookID        string    `json:"bookid"`
	UserID        int64     `json:"userid"`
	Title         string    `json:"title"`
	Subtitle      *string   `json:"subtitle,omitempty"`
	Author        *string   `json:"author,omitempty"`
	Genre         *string   `json:"genre,omitempty"`
	Img           *string   `json:"img,omitempty"`
	Desc          *string   `json:"desc,omitempty"`
	PageCount     *int      `json:"pageCount,omitempty"`
	PreviewLink   *string   `json:"previewLink,omitempty"`
	Language      *string   `json:"language,omitempty"`
	PublishedDate *string   `json:"publishedDate,omitempty"`
	DateRead      *string   `json:"dateRead,omitempty"`
	Status        *string   `json:"status,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromModelToResponse(m models.BookRecord) BookResponse {
	return BookResponse{
		ID:            m.ID,
		BookID:        m.BookID,
		UserID:        m.UserID,
		Title:         m.Title,
		Subtitle:      m.Subtitle,
		Author:        m.Author,
		Genre:         m.Genre,
		Img:           m.Img,
		Desc:          m.Desc,
		PageCount:     m.PageCount,
		PreviewLink:   m.PreviewLink,
		Language:      m.Language,
		PublishedDate: m.PublishedDate,
		DateRead:      m.DateRead,
		Status:        m.Status,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ShelfListResponse: a user's bookshelf
type ShelfListResponse struct {
	Items []BookResponse `json:"items"`
	Total int            `json:"total"`
}
