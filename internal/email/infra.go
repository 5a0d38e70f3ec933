package email

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

type repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) Repo {
	return &repo{db: db}
}

func (r *repo) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS generations (
			id         BIGSERIAL PRIMARY KEY,
			content    TEXT NOT NULL,
			tone       TEXT NOT NULL DEFAULT '',
			replies    TEXT[] NOT NULL,
			outcome    TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	return err
}

func (r *repo) SaveGeneration(ctx context.Context, g *Generation) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO generations (content, tone, replies, outcome)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`,
		g.Content,
		g.Tone,
		pq.Array(g.Replies),
		string(g.Outcome),
	).Scan(&g.ID, &g.CreatedAt)
}

func (r *repo) RecentGenerations(ctx context.Context, limit int) ([]Generation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, content, tone, replies, outcome, created_at
		FROM generations
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Generation
	for rows.Next() {
		var g Generation
		var outcome string
		if err := rows.Scan(
			&g.ID,
			&g.Content,
			&g.Tone,
			pq.Array(&g.Replies),
			&outcome,
			&g.CreatedAt,
		); err != nil {
			return nil, err
		}
		g.Outcome = Outcome(outcome)
		out = append(out, g)
	}

	return out, rows.Err()
}

// nopRepo используется, когда DATABASE_URL не задан.
type nopRepo struct{}

func (nopRepo) EnsureSchema(context.Context) error { return nil }
func (nopRepo) SaveGeneration(context.Context, *Generation) error { return nil }
func (nopRepo) RecentGenerations(context.Context, int) ([]Generation, error) {
	return []Generation{}, nil
}
