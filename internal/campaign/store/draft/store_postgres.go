package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"giftwell/internal/campaign/models"
	"giftwell/internal/campaign/store"
)

// PostgresStore persists campaign drafts in PostgreSQL. The full draft is
// stored as a jsonb payload; the indexed columns exist for listing and
// status filters only.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the drafts table if it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS campaign_drafts (
			id         UUID PRIMARY KEY,
			name       TEXT NOT NULL,
			status     TEXT NOT NULL,
			payload    JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("ensure drafts schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, draft models.CampaignDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO campaign_drafts (id, name, status, payload, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at`,
		draft.ID, draft.Name, string(draft.Status), payload, draft.CreatedAt, draft.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id uuid.UUID) (models.CampaignDraft, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT payload FROM campaign_drafts WHERE id = $1`, id).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.CampaignDraft{}, store.ErrNotFound
	}
	if err != nil {
		return models.CampaignDraft{}, fmt.Errorf("get draft: %w", err)
	}

	var draft models.CampaignDraft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return models.CampaignDraft{}, fmt.Errorf("decode draft: %w", err)
	}
	return draft, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]models.CampaignDraft, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT payload FROM campaign_drafts ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	defer rows.Close()

	var out []models.CampaignDraft
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan draft: %w", err)
		}
		var draft models.CampaignDraft
		if err := json.Unmarshal(payload, &draft); err != nil {
			return nil, fmt.Errorf("decode draft: %w", err)
		}
		out = append(out, draft)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	return out, nil
}
