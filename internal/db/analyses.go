package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jordan/resume-coach/internal/gaps"
	"github.com/jordan/resume-coach/internal/scoring"
	"github.com/jordan/resume-coach/internal/types"
)

// Analysis is a persisted gap analysis: the AI-produced inputs plus the
// computed checklist and score.
type Analysis struct {
	ID           uuid.UUID                  `json:"id"`
	RoleTitle    string                     `json:"roleTitle"`
	OverallScore int                        `json:"overallScore"`
	TierName     string                     `json:"tierName"`
	Breakdown    *types.MatchScoreBreakdown `json:"breakdown"`
	Benchmark    *types.BenchmarkCandidate  `json:"benchmark"`
	Checklist    *gaps.Checklist            `json:"checklist"`
	CreatedAt    time.Time                  `json:"createdAt"`
}

// AnalysisSummary is the listing row for stored analyses.
type AnalysisSummary struct {
	ID           uuid.UUID `json:"id"`
	RoleTitle    string    `json:"roleTitle"`
	OverallScore int       `json:"overallScore"`
	TierName     string    `json:"tierName"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SaveAnalysis stores a completed analysis and returns its ID.
func (db *DB) SaveAnalysis(ctx context.Context, roleTitle string, summary scoring.Summary,
	breakdown *types.MatchScoreBreakdown, benchmark *types.BenchmarkCandidate, checklist *gaps.Checklist) (uuid.UUID, error) {

	breakdownJSON, err := json.Marshal(breakdown)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal breakdown: %w", err)
	}
	benchmarkJSON, err := json.Marshal(benchmark)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal benchmark: %w", err)
	}
	checklistJSON, err := json.Marshal(checklist)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal checklist: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO analyses (role_title, overall_score, tier_name, breakdown, benchmark, checklist)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		roleTitle, summary.Overall, summary.Tier.Name, breakdownJSON, benchmarkJSON, checklistJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves a stored analysis by ID. Returns (nil, nil) when the
// row does not exist.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	var (
		analysis      Analysis
		breakdownJSON []byte
		benchmarkJSON []byte
		checklistJSON []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, role_title, overall_score, tier_name, breakdown, benchmark, checklist, created_at
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&analysis.ID, &analysis.RoleTitle, &analysis.OverallScore, &analysis.TierName,
		&breakdownJSON, &benchmarkJSON, &checklistJSON, &analysis.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	if err := json.Unmarshal(breakdownJSON, &analysis.Breakdown); err != nil {
		return nil, fmt.Errorf("failed to unmarshal breakdown: %w", err)
	}
	if err := json.Unmarshal(benchmarkJSON, &analysis.Benchmark); err != nil {
		return nil, fmt.Errorf("failed to unmarshal benchmark: %w", err)
	}
	if err := json.Unmarshal(checklistJSON, &analysis.Checklist); err != nil {
		return nil, fmt.Errorf("failed to unmarshal checklist: %w", err)
	}
	return &analysis, nil
}

// ListAnalyses returns the most recent analyses, newest first.
func (db *DB) ListAnalyses(ctx context.Context, limit int) ([]AnalysisSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, role_title, overall_score, tier_name, created_at
		 FROM analyses ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var summaries []AnalysisSummary
	for rows.Next() {
		var s AnalysisSummary
		if err := rows.Scan(&s.ID, &s.RoleTitle, &s.OverallScore, &s.TierName, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analyses: %w", err)
	}
	return summaries, nil
}

// DeleteAnalysis removes a stored analysis. Returns true if a row was deleted.
func (db *DB) DeleteAnalysis(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete analysis: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
