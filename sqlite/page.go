package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/mwalkowski/laradoc"
)

// Compile-time interface verification.
var _ laradoc.PageService = (*PageService)(nil)

// PageService implements laradoc.PageService using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// ReplacePages replaces the stored pages with the given harvest,
// preserving order. When every page's content hash matches what is
// already stored, the write is skipped and the existing rows survive
// untouched.
func (s *PageService) ReplacePages(ctx context.Context, pages []*laradoc.Page) error {
	if len(pages) == 0 {
		return laradoc.Errorf(laradoc.EINVALID, "no pages to store")
	}
	for _, page := range pages {
		if err := page.Validate(); err != nil {
			return err
		}
	}

	stored, err := s.pageHashes(ctx)
	if err != nil {
		return err
	}
	if len(stored) == len(pages) {
		unchanged := true
		for _, page := range pages {
			if stored[page.URL] != hashContent(page.Content) {
				unchanged = false
				break
			}
		}
		if unchanged {
			return nil
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM pages"); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO pages (id, url, title, content, format, content_hash, position, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	fetchedAt := time.Now().UTC().Format(time.RFC3339)
	for i, page := range pages {
		format := page.Format
		if format == "" {
			format = laradoc.FormatMarkdown
		}
		if _, err := stmt.ExecContext(ctx, uuid.New().String(), page.URL, page.Title,
			page.Content, string(format), hashContent(page.Content), i, fetchedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindPages returns all stored pages in harvest order.
func (s *PageService) FindPages(ctx context.Context) ([]*laradoc.Page, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT url, title, content, format
		FROM pages
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*laradoc.Page
	for rows.Next() {
		var page laradoc.Page
		var format string
		if err := rows.Scan(&page.URL, &page.Title, &page.Content, &format); err != nil {
			return nil, err
		}
		page.Format = laradoc.PageFormat(format)
		pages = append(pages, &page)
	}

	return pages, rows.Err()
}

// pageHashes returns the stored content hash per URL.
func (s *PageService) pageHashes(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT url, content_hash FROM pages")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hashes := make(map[string]string)
	for rows.Next() {
		var url, hash string
		if err := rows.Scan(&url, &hash); err != nil {
			return nil, err
		}
		hashes[url] = hash
	}

	return hashes, rows.Err()
}
