package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/use-agent/brandscout/models"
	"gopkg.in/yaml.v3"
)

//go:embed data/regions.yaml
var seedRegions []byte

const regionColumns = `id, name, region_code, cultural_motifs, trending_colors, slang_phrases, created_at`

// ListRegionalProfiles returns every profile ordered by name.
func (s *Store) ListRegionalProfiles(ctx context.Context) ([]models.RegionalProfile, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+regionColumns+` FROM regional_profiles ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list regional profiles: %w", err)
	}
	defer rows.Close()

	profiles := []models.RegionalProfile{}
	for rows.Next() {
		p, err := scanRegion(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

// GetRegionalProfile returns the profile with id, or ErrNotFound.
func (s *Store) GetRegionalProfile(ctx context.Context, id string) (*models.RegionalProfile, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+regionColumns+` FROM regional_profiles WHERE id = ?`, id)
	p, err := scanRegion(row)
	if err != nil {
		return nil, notFound(err, "regional profile "+id)
	}
	return p, nil
}

// SeedRegionalProfiles inserts the bundled profiles whose region code is
// not stored yet and returns how many were added. Running it again is a
// no-op.
func (s *Store) SeedRegionalProfiles(ctx context.Context) (int, error) {
	var seeds []models.RegionalProfile
	if err := yaml.Unmarshal(seedRegions, &seeds); err != nil {
		return 0, fmt.Errorf("parse region seeds: %w", err)
	}

	added := 0
	for _, p := range seeds {
		var existing string
		err := s.db.QueryRowContext(ctx, `SELECT id FROM regional_profiles WHERE region_code = ?`, p.RegionCode).Scan(&existing)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return added, fmt.Errorf("check region %s: %w", p.RegionCode, err)
		}
		if err := s.insertRegion(ctx, &p); err != nil {
			return added, err
		}
		added++
	}
	if added > 0 {
		slog.Info("regional profiles seeded", "count", added)
	}
	return added, nil
}

func (s *Store) insertRegion(ctx context.Context, p *models.RegionalProfile) error {
	p.ID, p.CreatedAt = s.stamp()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO regional_profiles (`+regionColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.RegionCode,
		encodeList(p.CulturalMotifs), encodeList(p.TrendingColors), encodeList(p.SlangPhrases),
		toUnixMicro(p.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert region %s: %w", p.RegionCode, err)
	}
	return nil
}

func scanRegion(sc scanner) (*models.RegionalProfile, error) {
	var (
		p                     models.RegionalProfile
		motifs, colors, slang string
		created               int64
	)
	if err := sc.Scan(&p.ID, &p.Name, &p.RegionCode, &motifs, &colors, &slang, &created); err != nil {
		return nil, err
	}
	var err error
	if p.CulturalMotifs, err = decodeList(motifs); err != nil {
		return nil, err
	}
	if p.TrendingColors, err = decodeList(colors); err != nil {
		return nil, err
	}
	if p.SlangPhrases, err = decodeList(slang); err != nil {
		return nil, err
	}
	p.CreatedAt = fromUnixMicro(created)
	return &p, nil
}
