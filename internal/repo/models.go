package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/donation-service/internal/entities"
)

type Donation struct {
	PaymentID  string         `db:"payment_id"`
	OrderID    string         `db:"order_id"`
	Amount     sql.NullInt64  `db:"amount"`
	Currency   sql.NullString `db:"currency"`
	Receipt    sql.NullString `db:"receipt"`
	VerifiedAt time.Time      `db:"verified_at"`
}

type Note struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

func DonationToEntity(d Donation, notes []Note) entities.Donation {
	res := entities.Donation{
		PaymentID:  d.PaymentID,
		OrderID:    d.OrderID,
		Amount:     d.Amount.Int64,
		Currency:   d.Currency.String,
		Receipt:    d.Receipt.String,
		VerifiedAt: d.VerifiedAt,
	}
	if len(notes) > 0 {
		res.Notes = make(map[string]string, len(notes))
		for _, n := range notes {
			res.Notes[n.Key] = n.Value
		}
	}
	return res
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// сумма неизвестна, если заказ не удалось получить из шлюза
func nullInt64(i int64) sql.NullInt64 {
	if i == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: i, Valid: true}
}
