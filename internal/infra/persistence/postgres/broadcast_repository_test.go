package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"marketbot/internal/domain/entity"
	domainerrors "marketbot/internal/domain/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func newTestBroadcast() (*entity.Broadcast, []*entity.DeliveryLog) {
	now := time.Now()
	broadcast := &entity.Broadcast{
		Kind:        entity.EventVehicleApproved,
		Audience:    entity.AudienceInterested,
		Recipients:  2,
		TotalSent:   1,
		TotalFailed: 1,
		Batches:     1,
		StartedAt:   now,
		CompletedAt: now,
	}
	logs := []*entity.DeliveryLog{
		{ChatID: "1", Batch: 1, Status: entity.DeliveryStatusSent, SentAt: now},
		{ChatID: "2", Batch: 1, Status: entity.DeliveryStatusFailed, ErrorMessage: "blocked", SentAt: now},
	}

	return broadcast, logs
}

func TestBroadcastRepository_CreateBroadcast(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBroadcastRepository(BroadcastRepositoryParams{DB: db})

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "broadcasts"`)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "delivery_logs"`)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	broadcast, logs := newTestBroadcast()
	err := repo.CreateBroadcast(context.Background(), broadcast, logs)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, broadcast.ID)
	for _, log := range logs {
		assert.Equal(t, broadcast.ID, log.BroadcastID)
		assert.NotEqual(t, uuid.Nil, log.ID)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBroadcastRepository_CreateBroadcastWithoutLogs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBroadcastRepository(BroadcastRepositoryParams{DB: db})

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "broadcasts"`)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	broadcast, _ := newTestBroadcast()
	require.NoError(t, repo.CreateBroadcast(context.Background(), broadcast, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBroadcastRepository_CreateBroadcastRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBroadcastRepository(BroadcastRepositoryParams{DB: db})

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "broadcasts"`)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "delivery_logs"`)).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	broadcast, logs := newTestBroadcast()
	err := repo.CreateBroadcast(context.Background(), broadcast, logs)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBroadcastRepository_CreateBroadcastConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "pg error", err: &pgconn.PgError{Code: pgForeignKeyViolation, Message: "violates foreign key"}},
		{name: "flattened text", err: errors.New("ERROR: null value in column (SQLSTATE 23502)")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewBroadcastRepository(BroadcastRepositoryParams{DB: db})

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "broadcasts"`)).WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "delivery_logs"`)).WillReturnError(tt.err)
			mock.ExpectRollback()

			broadcast, logs := newTestBroadcast()
			err := repo.CreateBroadcast(context.Background(), broadcast, logs)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "INTERNAL_ERROR", appErr.ErrorCode())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestNewBroadcastRepository_WithoutDB(t *testing.T) {
	repo := NewBroadcastRepository(BroadcastRepositoryParams{})

	broadcast, logs := newTestBroadcast()
	assert.NoError(t, repo.CreateBroadcast(context.Background(), broadcast, logs))
}
