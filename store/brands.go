package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/use-agent/brandscout/models"
)

const brandColumns = `id, name, primary_color, secondary_color, tone, website_url, logo_url, product_images, created_at`

// CreateBrand inserts a brand built from req and returns it.
func (s *Store) CreateBrand(ctx context.Context, req *models.CreateBrandRequest) (*models.Brand, error) {
	id, now := s.stamp()
	b := &models.Brand{
		ID:             id,
		Name:           req.Name,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: stringPtr(nullString(req.SecondaryColor)),
		Tone:           req.Tone,
		WebsiteURL:     stringPtr(nullString(req.WebsiteURL)),
		LogoURL:        stringPtr(nullString(req.LogoURL)),
		ProductImages:  req.ProductImages,
		CreatedAt:      now,
	}
	if b.ProductImages == nil {
		b.ProductImages = []string{}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO brands (`+brandColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Name, b.PrimaryColor, nullString(b.SecondaryColor), b.Tone,
		nullString(b.WebsiteURL), nullString(b.LogoURL), encodeList(b.ProductImages), toUnixMicro(now),
	)
	if err != nil {
		return nil, fmt.Errorf("insert brand: %w", err)
	}
	return b, nil
}

// GetBrand returns the brand with id, or ErrNotFound.
func (s *Store) GetBrand(ctx context.Context, id string) (*models.Brand, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+brandColumns+` FROM brands WHERE id = ?`, id)
	b, err := scanBrand(row)
	if err != nil {
		return nil, notFound(err, "brand "+id)
	}
	return b, nil
}

// ListBrands returns every brand, newest first.
func (s *Store) ListBrands(ctx context.Context) ([]models.Brand, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+brandColumns+` FROM brands ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()

	brands := []models.Brand{}
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, err
		}
		brands = append(brands, *b)
	}
	return brands, rows.Err()
}

func scanBrand(sc scanner) (*models.Brand, error) {
	var (
		b                        models.Brand
		secondary, website, logo sql.NullString
		images                   string
		created                  int64
	)
	if err := sc.Scan(&b.ID, &b.Name, &b.PrimaryColor, &secondary, &b.Tone, &website, &logo, &images, &created); err != nil {
		return nil, err
	}
	var err error
	if b.ProductImages, err = decodeList(images); err != nil {
		return nil, err
	}
	b.SecondaryColor = stringPtr(secondary)
	b.WebsiteURL = stringPtr(website)
	b.LogoURL = stringPtr(logo)
	b.CreatedAt = fromUnixMicro(created)
	return &b, nil
}
