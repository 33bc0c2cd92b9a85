package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/donation-service/internal/entities"
	"github.com/SergeyBogomolovv/donation-service/internal/postgres"
	"github.com/SergeyBogomolovv/donation-service/internal/repo"
	"github.com/SergeyBogomolovv/donation-service/pkg/trm"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type PostgresRepoTestSuite struct {
	suite.Suite
	ctx       context.Context
	container *tcpostgres.PostgresContainer
	db        *sqlx.DB
	sut       interface {
		SaveDonation(ctx context.Context, d entities.Donation) error
		SaveNotes(ctx context.Context, paymentID string, notes map[string]string) error
		GetDonation(ctx context.Context, paymentID string) (entities.Donation, error)
	}
	txManager trm.Manager
}

func TestPostgresRepo(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}
	suite.Run(t, new(PostgresRepoTestSuite))
}

func (s *PostgresRepoTestSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := tcpostgres.Run(s.ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("donations"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", dsn)
	s.Require().NoError(err)
	s.Require().NoError(postgres.Migrate(db))

	s.db = db
	s.sut = repo.NewPostgresRepo(db)
	s.txManager = trm.NewManager(db)
}

func (s *PostgresRepoTestSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(s.ctx))
	}
}

func (s *PostgresRepoTestSuite) SetupTest() {
	_, err := s.db.ExecContext(s.ctx, "TRUNCATE donations CASCADE")
	s.Require().NoError(err)
}

func (s *PostgresRepoTestSuite) TestSaveAndGet() {
	t := s.T()
	verifiedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	d := entities.Donation{
		PaymentID:  "pay_1",
		OrderID:    "order_1",
		Amount:     50000,
		Currency:   "INR",
		Receipt:    "receipt_1",
		Notes:      map[string]string{"donor_name": "Asha", "donation_purpose": "Animal Rescue"},
		VerifiedAt: verifiedAt,
	}

	err := s.txManager.Do(s.ctx, func(ctx context.Context) error {
		if err := s.sut.SaveDonation(ctx, d); err != nil {
			return err
		}
		return s.sut.SaveNotes(ctx, d.PaymentID, d.Notes)
	})
	require.NoError(t, err)

	got, err := s.sut.GetDonation(s.ctx, "pay_1")
	require.NoError(t, err)
	assert.Equal(t, d.OrderID, got.OrderID)
	assert.Equal(t, d.Amount, got.Amount)
	assert.Equal(t, d.Currency, got.Currency)
	assert.Equal(t, d.Notes, got.Notes)
	assert.True(t, verifiedAt.Equal(got.VerifiedAt))
}

func (s *PostgresRepoTestSuite) TestSaveIsIdempotent() {
	t := s.T()
	d := entities.Donation{PaymentID: "pay_1", OrderID: "order_1", VerifiedAt: time.Now()}

	require.NoError(t, s.sut.SaveDonation(s.ctx, d))
	require.NoError(t, s.sut.SaveDonation(s.ctx, entities.Donation{PaymentID: "pay_1", OrderID: "order_2", VerifiedAt: time.Now()}))

	got, err := s.sut.GetDonation(s.ctx, "pay_1")
	require.NoError(t, err)
	assert.Equal(t, "order_1", got.OrderID)
	assert.Zero(t, got.Amount)
	assert.Nil(t, got.Notes)
}

func (s *PostgresRepoTestSuite) TestRollback() {
	t := s.T()
	d := entities.Donation{PaymentID: "pay_1", OrderID: "order_1", VerifiedAt: time.Now()}

	err := s.txManager.Do(s.ctx, func(ctx context.Context) error {
		if err := s.sut.SaveDonation(ctx, d); err != nil {
			return err
		}
		// заметки к несуществующему платежу нарушают внешний ключ
		return s.sut.SaveNotes(ctx, "pay_missing", map[string]string{"k": "v"})
	})
	require.Error(t, err)

	_, err = s.sut.GetDonation(s.ctx, "pay_1")
	assert.ErrorIs(t, err, entities.ErrDonationNotFound)
}
