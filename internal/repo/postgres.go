package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/SergeyBogomolovv/donation-service/internal/entities"
	"github.com/SergeyBogomolovv/donation-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) SaveDonation(ctx context.Context, d entities.Donation) error {
	row := Donation{
		PaymentID:  d.PaymentID,
		OrderID:    d.OrderID,
		Amount:     nullInt64(d.Amount),
		Currency:   nullString(d.Currency),
		Receipt:    nullString(d.Receipt),
		VerifiedAt: d.VerifiedAt,
	}

	query, args := r.qb.Insert("donations").
		Columns("payment_id", "order_id", "amount", "currency", "receipt", "verified_at").
		Values(row.PaymentID, row.OrderID, row.Amount, row.Currency, row.Receipt, row.VerifiedAt).
		Suffix("ON CONFLICT (payment_id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save donation: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveNotes(ctx context.Context, paymentID string, notes map[string]string) error {
	if len(notes) == 0 {
		return nil
	}

	keys := make([]string, 0, len(notes))
	for k := range notes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	q := r.qb.Insert("donation_notes").
		Columns("payment_id", "key", "value").
		Suffix("ON CONFLICT (payment_id, key) DO NOTHING")

	for _, k := range keys {
		q = q.Values(paymentID, k, notes[k])
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save notes: %w", err)
	}
	return nil
}

// GetDonation возвращает запись журнала вместе с заметками
func (r *postgresRepo) GetDonation(ctx context.Context, paymentID string) (entities.Donation, error) {
	query, args := r.qb.Select("payment_id", "order_id", "amount", "currency", "receipt", "verified_at").
		From("donations").
		Where(sq.Eq{"payment_id": paymentID}).
		MustSql()

	var row Donation
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.Donation{}, entities.ErrDonationNotFound
		}
		return entities.Donation{}, fmt.Errorf("failed to get donation: %w", err)
	}

	query, args = r.qb.Select("key", "value").
		From("donation_notes").
		Where(sq.Eq{"payment_id": paymentID}).
		MustSql()

	var notes []Note
	if err := r.db.SelectContext(ctx, &notes, query, args...); err != nil {
		return entities.Donation{}, fmt.Errorf("failed to get donation notes: %w", err)
	}

	return DonationToEntity(row, notes), nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}
