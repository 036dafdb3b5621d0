package client

// fetch.go = resolves the authoritative working copy for the update form.

import (
	"context"
	"errors"
	"strings"
)

// CatalogBook is the external catalog's search-result shape. It is read-only
// input here; its schema belongs to the catalog.
type CatalogBook struct {
	ID         string `json:"id"`
	VolumeInfo struct {
		Title      string   `json:"title"`
		Subtitle   string   `json:"subtitle,omitempty"`
		Authors    []string `json:"authors,omitempty"`
		Categories []string `json:"categories,omitempty"`
		ImageLinks struct {
			SmallThumbnail string `json:"smallThumbnail,omitempty"`
		} `json:"imageLinks,omitempty"`
		Description   string `json:"description,omitempty"`
		PageCount     int    `json:"pageCount,omitempty"`
		PreviewLink   string `json:"previewLink,omitempty"`
		Language      string `json:"language,omitempty"`
		PublishedDate string `json:"publishedDate,omitempty"`
	} `json:"volumeInfo"`
}

// WorkingCopy is the record the update form edits before submission.
type WorkingCopy struct {
	Record BookRecord
	// Seeded is true when the record came from the catalog fallback rather
	// than the store, i.e. a first-time add.
	Seeded bool
}

// FetchWorkingCopy looks up the stored record for (bookID, userID). When the
// user has not shelved the book yet, the working copy is seeded from the
// catalog fallback with status and dateRead unset. Transport and server
// errors are returned verbatim; there is no automatic retry.
func (c *BookClient) FetchWorkingCopy(ctx context.Context, bookID string, userID int64, fallback *CatalogBook) (*WorkingCopy, error) {
	record, err := c.GetBook(ctx, bookID, userID)
	if err == nil {
		return &WorkingCopy{Record: *record}, nil
	}
	if !errors.Is(err, ErrBookNotFound) {
		return nil, err
	}

	if fallback == nil {
		return nil, ErrBookNotFound
	}

	seed := SeedFromCatalog(bookID, userID, fallback)
	return &WorkingCopy{Record: seed, Seeded: true}, nil
}

// SeedFromCatalog flattens a catalog result into a fresh, unclassified book
// record for (bookID, userID).
func SeedFromCatalog(bookID string, userID int64, cat *CatalogBook) BookRecord {
	record := BookRecord{
		BookID: bookID,
		UserID: userID,
		Title:  cat.VolumeInfo.Title,
	}

	if len(cat.VolumeInfo.Authors) > 0 {
		record.Author = strptr(strings.Join(cat.VolumeInfo.Authors, ", "))
	}
	if len(cat.VolumeInfo.Categories) > 0 {
		record.Genre = strptr(strings.Join(cat.VolumeInfo.Categories, ", "))
	}
	if cat.VolumeInfo.Subtitle != "" {
		record.Subtitle = strptr(cat.VolumeInfo.Subtitle)
	}
	if cat.VolumeInfo.ImageLinks.SmallThumbnail != "" {
		record.Img = strptr(cat.VolumeInfo.ImageLinks.SmallThumbnail)
	}
	if cat.VolumeInfo.Description != "" {
		record.Desc = strptr(cat.VolumeInfo.Description)
	}
	if cat.VolumeInfo.PageCount > 0 {
		pages := cat.VolumeInfo.PageCount
		record.PageCount = &pages
	}
	if cat.VolumeInfo.PreviewLink != "" {
		record.PreviewLink = strptr(cat.VolumeInfo.PreviewLink)
	}
	if cat.VolumeInfo.Language != "" {
		record.Language = strptr(cat.VolumeInfo.Language)
	}
	if cat.VolumeInfo.PublishedDate != "" {
		record.PublishedDate = strptr(cat.VolumeInfo.PublishedDate)
	}

	return record
}

func strptr(s string) *string {
	return &s
}
