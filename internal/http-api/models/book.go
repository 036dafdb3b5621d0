package models

import "time"

// Reading status values a book record can hold. A record keeps a NULL
// status until the user classifies the book for the first time.
const (
	StatusRead             = "read"
	StatusToRead           = "toRead"
	StatusCurrentlyReading = "currentlyReading"
)

// DateReadLayout is the canonical storage format for BookRecord.DateRead.
const DateReadLayout = "2006-01-02"

type BookRecord struct {
	ID     int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	BookID string `gorm:"column:bookid;size:64;not null;uniqueIndex:idx_book_user" json:"bookid"`
	UserID int64  `gorm:"column:userid;not null;uniqueIndex:idx_book_user" json:"userid"`

	Title         string  `gorm:"not null" json:"title"`
	Subtitle      *string `json:"subtitle,omitempty"`
	Author        *string `json:"author,omitempty"`
	Genre         *string `json:"genre,omitempty"`
	Img           *string `json:"img,omitempty"`
	Desc          *string `json:"desc,omitempty"`
	PageCount     *int    `json:"pageCount,omitempty"`
	PreviewLink   *string `json:"previewLink,omitempty"`
	Language      *string `json:"language,omitempty"`
	PublishedDate *string `json:"publishedDate,omitempty"`

	DateRead *string `gorm:"size:10" json:"dateRead,omitempty"`
	Status   *string `gorm:"size:20" json:"status,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Association
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (BookRecord) TableName() string {
	return "books"
}

// ValidStatus reports whether s is one of the three shelf statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusRead, StatusToRead, StatusCurrentlyReading:
		return true
	}
	return false
}
