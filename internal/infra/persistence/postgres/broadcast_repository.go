// Package postgres contains the audit trail persistence built on GORM and PostgreSQL.
package postgres

import (
	"context"

	"marketbot/internal/domain/entity"
	domainerrors "marketbot/internal/domain/errors"
	"marketbot/internal/domain/repository"
	"marketbot/internal/infra/persistence/model"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const logInsertBatchSize = 100

// broadcastRepository implements the repository.BroadcastRepository interface.
type broadcastRepository struct {
	db *gorm.DB
}

// noopBroadcastRepository drops audit rows when no audit database is configured.
type noopBroadcastRepository struct{}

func (noopBroadcastRepository) CreateBroadcast(context.Context, *entity.Broadcast, []*entity.DeliveryLog) error {
	return nil
}

// BroadcastRepositoryParams holds dependencies for the broadcast repository.
type BroadcastRepositoryParams struct {
	fx.In

	DB *gorm.DB `optional:"true"`
}

// NewBroadcastRepository is the constructor for broadcastRepository.
func NewBroadcastRepository(params BroadcastRepositoryParams) repository.BroadcastRepository {
	if params.DB == nil {
		return noopBroadcastRepository{}
	}

	return &broadcastRepository{
		db: params.DB,
	}
}

// CreateBroadcast persists the broadcast row and its delivery logs in one transaction.
func (repo *broadcastRepository) CreateBroadcast(ctx context.Context, broadcast *entity.Broadcast, logs []*entity.DeliveryLog) error {
	if broadcast.ID == uuid.Nil {
		broadcast.ID = uuid.New()
	}

	broadcastM := fromBroadcastDomain(broadcast)
	logModels := make([]*model.DeliveryLogModel, 0, len(logs))
	for _, log := range logs {
		log.BroadcastID = broadcast.ID
		logModels = append(logModels, fromDeliveryLogDomain(log))
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(broadcastM).Error; err != nil {
			return err
		}
		if len(logModels) == 0 {
			return nil
		}

		return tx.CreateInBatches(logModels, logInsertBatchSize).Error
	})
	if err != nil {
		switch constraintCode(err) {
		case pgNotNullViolation:
			return domainerrors.ErrInternalError.WrapMessage("missing required broadcast information")
		case pgForeignKeyViolation:
			return domainerrors.ErrInternalError.WrapMessage("delivery log references an unknown broadcast")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create broadcast")
	}

	return nil
}

// --- Mapper Functions ---

func fromBroadcastDomain(data *entity.Broadcast) *model.BroadcastModel {
	return &model.BroadcastModel{
		ID:          data.ID,
		Kind:        string(data.Kind),
		Audience:    data.Audience,
		Recipients:  data.Recipients,
		TotalSent:   data.TotalSent,
		TotalFailed: data.TotalFailed,
		Batches:     data.Batches,
		StartedAt:   data.StartedAt,
		CompletedAt: data.CompletedAt,
	}
}

func fromDeliveryLogDomain(data *entity.DeliveryLog) *model.DeliveryLogModel {
	id := data.ID
	if id == uuid.Nil {
		id = uuid.New()
		data.ID = id
	}

	return &model.DeliveryLogModel{
		ID:           id,
		BroadcastID:  data.BroadcastID,
		ChatID:       data.ChatID,
		Batch:        data.Batch,
		Status:       data.Status,
		ErrorMessage: data.ErrorMessage,
		SentAt:       data.SentAt,
	}
}
