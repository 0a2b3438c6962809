package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"kepler/internal/domain"
	"kepler/internal/engine"
)

// AssessmentRepository

func (db *DB) Create(ctx context.Context, operatorName string, profile engine.OperatorProfile) (string, error) {
	payload, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("marshal profile: %w", err)
	}
	var id string
	err = db.Pool.QueryRow(ctx, `
		INSERT INTO assessments (operator_name, profile)
		VALUES ($1, $2)
		RETURNING id
	`, operatorName, payload).Scan(&id)
	return id, err
}

func (db *DB) Get(ctx context.Context, id string) (domain.Assessment, error) {
	var (
		a       domain.Assessment
		payload []byte
	)
	err := db.Pool.QueryRow(ctx, `
		SELECT id, operator_name, profile, overall_score, risk, created_at, updated_at
		FROM assessments WHERE id = $1
	`, id).Scan(&a.ID, &a.OperatorName, &payload, &a.OverallScore, &a.Risk, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, domain.ErrNotFound
	}
	if err != nil {
		return a, err
	}
	if err := json.Unmarshal(payload, &a.Profile); err != nil {
		return a, fmt.Errorf("unmarshal profile: %w", err)
	}
	return a, nil
}

func (db *DB) SaveScore(ctx context.Context, id string, overall int, risk engine.RiskLevel) error {
	tag, err := db.Pool.Exec(ctx, `
		UPDATE assessments SET overall_score = $2, risk = $3, updated_at = now()
		WHERE id = $1
	`, id, overall, string(risk))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// StatusRepository

func (db *DB) Snapshot(ctx context.Context, assessmentID string) (engine.StatusMap, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT requirement_id, status, notes, evidence_notes, target_date
		FROM requirement_statuses WHERE assessment_id = $1
	`, assessmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshot := engine.StatusMap{}
	for rows.Next() {
		var rs engine.RequirementStatus
		if err := rows.Scan(&rs.RequirementID, &rs.Status, &rs.Notes, &rs.EvidenceNotes, &rs.TargetDate); err != nil {
			return nil, err
		}
		snapshot[rs.RequirementID] = rs
	}
	return snapshot, rows.Err()
}

func (db *DB) Upsert(ctx context.Context, rec domain.StatusRecord) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO requirement_statuses (assessment_id, requirement_id, status, notes, evidence_notes, target_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (assessment_id, requirement_id) DO UPDATE SET
			status = EXCLUDED.status,
			notes = EXCLUDED.notes,
			evidence_notes = EXCLUDED.evidence_notes,
			target_date = EXCLUDED.target_date,
			updated_at = now()
	`, rec.AssessmentID, rec.RequirementID, string(rec.Status), rec.Notes, rec.EvidenceNotes, rec.TargetDate)
	return err
}
