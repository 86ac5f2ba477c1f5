package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/use-agent/brandscout/models"
)

const creativeColumns = `id, brand_id, regional_profile_id, platform, prompt_used, image_url, copy_text, match_score, created_at`

// CreateCreative inserts c, filling in its ID, CreatedAt and IsManualUpload.
func (s *Store) CreateCreative(ctx context.Context, c *models.Creative) error {
	c.ID, c.CreatedAt = s.stamp()
	c.IsManualUpload = c.PromptUsed == models.ManualUploadPrompt

	var score sql.NullInt64
	if c.MatchScore != nil {
		score = sql.NullInt64{Int64: int64(*c.MatchScore), Valid: true}
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO creatives (`+creativeColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.BrandID, c.RegionalProfileID, c.Platform, c.PromptUsed, c.ImageURL, c.CopyText,
		score, toUnixMicro(c.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert creative: %w", err)
	}
	return nil
}

// ListCreatives returns creatives matching q, newest first.
func (s *Store) ListCreatives(ctx context.Context, q models.ListCreativesQuery) ([]models.Creative, error) {
	q.Defaults()

	var where []string
	var args []any
	if q.BrandID != "" {
		where = append(where, "brand_id = ?")
		args = append(args, q.BrandID)
	}
	if q.Platform != "" {
		where = append(where, "platform = ?")
		args = append(args, q.Platform)
	}

	query := `SELECT ` + creativeColumns + ` FROM creatives`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id LIMIT ?"
	args = append(args, q.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list creatives: %w", err)
	}
	defer rows.Close()

	creatives := []models.Creative{}
	for rows.Next() {
		var (
			c       models.Creative
			score   sql.NullInt64
			created int64
		)
		if err := rows.Scan(&c.ID, &c.BrandID, &c.RegionalProfileID, &c.Platform, &c.PromptUsed,
			&c.ImageURL, &c.CopyText, &score, &created); err != nil {
			return nil, err
		}
		if score.Valid {
			v := int(score.Int64)
			c.MatchScore = &v
		}
		c.CreatedAt = fromUnixMicro(created)
		c.IsManualUpload = c.PromptUsed == models.ManualUploadPrompt
		creatives = append(creatives, c)
	}
	return creatives, rows.Err()
}
