package lib

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// Calculation is one evaluated expression as stored in the history table.
type Calculation struct {
	ID         uuid.UUID
	Expression string
	Result     int
	At         time.Time
}

// History records evaluated expressions in Postgres.
type History struct {
	db *sql.DB
}

func OpenHistory(ctx context.Context, connectionString string) (*History, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, err
	}

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	h := &History{db: db}
	err = h.requireCalculationsTable(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}
	return h, nil
}

func (h *History) requireCalculationsTable(ctx context.Context) error {
	_, err := h.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS calculations (
	id UUID PRIMARY KEY,
	expression TEXT NOT NULL,
	result BIGINT NOT NULL,
	at TIMESTAMP WITH TIME ZONE NOT NULL
)`)
	return err
}

func (h *History) Record(ctx context.Context, expression string, result int) (uuid.UUID, error) {
	id := uuid.New()
	_, err := h.db.ExecContext(ctx,
		"INSERT INTO calculations (id, expression, result, at) VALUES ($1, $2, $3, $4)",
		id, expression, result, time.Now().UTC())
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Recent returns up to limit calculations, newest first.
func (h *History) Recent(ctx context.Context, limit int) ([]Calculation, error) {
	rows, err := h.db.QueryContext(ctx,
		"SELECT id, expression, result, at FROM calculations ORDER BY at DESC LIMIT $1", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []Calculation{}
	for rows.Next() {
		c := Calculation{}
		err = rows.Scan(&c.ID, &c.Expression, &c.Result, &c.At)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (h *History) Close() error {
	return h.db.Close()
}
