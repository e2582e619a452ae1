package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Jeffawe/JobScanner/internal/types"
)

// GetFreshCareerPage returns the stored career page for a company when
// its last verification is within maxAge. The company name match is
// case-insensitive. A missing or stale row is (nil, nil).
func (db *DB) GetFreshCareerPage(ctx context.Context, companyName string, maxAge time.Duration) (*types.CareerPageResult, error) {
	cutoff := time.Now().Add(-maxAge)

	var result types.CareerPageResult
	err := db.pool.QueryRow(ctx,
		`SELECT company_domain, career_url, source, confidence_score, last_verified
		 FROM career_pages
		 WHERE company_name ILIKE $1 AND last_verified > $2`,
		companyName, cutoff,
	).Scan(&result.Domain, &result.CareerURL, &result.Source,
		&result.ConfidenceScore, &result.LastVerified)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get career page: %w", err)
	}

	return &result, nil
}

// UpsertCareerPage stores a resolved career page keyed by company name,
// replacing any prior entry. Last-writer-wins on concurrent upserts.
func (db *DB) UpsertCareerPage(ctx context.Context, companyName string, result *types.CareerPageResult) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO career_pages (company_name, company_domain, career_url, source, confidence_score, last_verified)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (company_name) DO UPDATE SET
		   company_domain = $2, career_url = $3, source = $4,
		   confidence_score = $5, last_verified = $6`,
		companyName, result.Domain, result.CareerURL, result.Source,
		result.ConfidenceScore, result.LastVerified,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert career page: %w", err)
	}
	return nil
}

// CareerPageStats summarizes the stored career pages.
type CareerPageStats struct {
	TotalEntries    int            `json:"total_entries"`
	SourceBreakdown map[string]int `json:"source_breakdown"`
}

// GetCareerPageStats returns the total row count and a per-source
// breakdown.
func (db *DB) GetCareerPageStats(ctx context.Context) (*CareerPageStats, error) {
	stats := &CareerPageStats{SourceBreakdown: make(map[string]int)}

	rows, err := db.pool.Query(ctx,
		`SELECT source, COUNT(*) FROM career_pages GROUP BY source`)
	if err != nil {
		return nil, fmt.Errorf("failed to get career page stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var source string
		var count int
		if err := rows.Scan(&source, &count); err != nil {
			return nil, fmt.Errorf("failed to scan career page stats: %w", err)
		}
		stats.SourceBreakdown[source] = count
		stats.TotalEntries += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read career page stats: %w", err)
	}

	return stats, nil
}
