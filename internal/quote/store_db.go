package quote

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 5 * time.Second
	pgUniqueCode = "23505"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return s.db.PingContext(ctx)
}

func (s *PostgresStore) Create(ctx context.Context, q Quote) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO quotes (id, user_id, subtotal_cents, discount_rate, discount_cents, total_cents, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, q.ID, q.UserID, q.SubtotalCents, q.DiscountRate, q.DiscountCents, q.TotalCents, q.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrQuoteExists
		}
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO quote_items (quote_id, product_id, qty)
		VALUES ($1, $2, $3)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, it := range q.Items {
		if _, err := stmt.ExecContext(ctx, q.ID, it.ProductID, it.Qty); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *PostgresStore) Get(ctx context.Context, id string) (Quote, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var q Quote
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, subtotal_cents, discount_rate, discount_cents, total_cents, created_at
		FROM quotes
		WHERE id = $1
	`, id).Scan(&q.ID, &q.UserID, &q.SubtotalCents, &q.DiscountRate, &q.DiscountCents, &q.TotalCents, &q.CreatedAt)

	if err == sql.ErrNoRows {
		return Quote{}, false, nil
	}
	if err != nil {
		return Quote{}, false, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT product_id, qty
		FROM quote_items
		WHERE quote_id = $1
		ORDER BY product_id ASC
	`, id)
	if err != nil {
		return Quote{}, false, err
	}
	defer rows.Close()

	items := make([]Item, 0, 8)
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ProductID, &it.Qty); err != nil {
			return Quote{}, false, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return Quote{}, false, err
	}
	q.Items = items

	return q, true, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueCode
}
