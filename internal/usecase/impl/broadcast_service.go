package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"marketbot/config"
	deliverycontext "marketbot/internal/delivery/context"
	"marketbot/internal/domain/entity"
	"marketbot/internal/domain/repository"
	"marketbot/internal/domain/service"
	"marketbot/internal/errors"
	"marketbot/internal/infra/metrics"
	"marketbot/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	defaultBroadcastBatchSize  = 30
	defaultBroadcastBatchDelay = time.Minute
)

// waitFunc blocks for d or until ctx is done.
type waitFunc func(ctx context.Context, d time.Duration) error

type broadcastService struct {
	userRepo      repository.UserRepository
	broadcastRepo repository.BroadcastRepository
	messenger     service.Messenger
	metrics       *metrics.Metrics
	logger        *slog.Logger

	adminChatIDs []string
	batchSize    int
	batchDelay   time.Duration

	wait waitFunc
	now  func() time.Time
}

// BroadcastServiceParams holds dependencies for BroadcastService, injected by Fx.
type BroadcastServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	BroadcastRepo repository.BroadcastRepository
	Messenger     service.Messenger
	Metrics       *metrics.Metrics
	Config        *config.Config
	Logger        *slog.Logger
}

// NewBroadcastService creates the batched fan-out dispatcher.
func NewBroadcastService(params BroadcastServiceParams) usecase.BroadcastUsecase {
	srv := &broadcastService{
		userRepo:      params.UserRepo,
		broadcastRepo: params.BroadcastRepo,
		messenger:     params.Messenger,
		metrics:       params.Metrics,
		logger:        params.Logger,
		batchSize:     defaultBroadcastBatchSize,
		batchDelay:    defaultBroadcastBatchDelay,
		wait:          waitFor,
		now:           time.Now,
	}

	if cfg := params.Config; cfg != nil {
		srv.adminChatIDs = cfg.Telegram.AdminChatIDList()
		if cfg.Broadcast != nil {
			if cfg.Broadcast.BatchSize > 0 {
				srv.batchSize = cfg.Broadcast.BatchSize
			}
			if cfg.Broadcast.BatchDelay >= 0 {
				srv.batchDelay = cfg.Broadcast.BatchDelay
			}
		}
	}

	return srv
}

func (srv *broadcastService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *broadcastService) SendToAdmins(ctx context.Context, kind entity.EventKind, msg entity.OutboundMessage) (*entity.BroadcastResult, error) {
	return srv.dispatch(ctx, kind, entity.AudienceAdmins, srv.adminChatIDs, msg)
}

// SendToInterested resolves the recipients at call time so preference
// changes apply to the next dispatch.
func (srv *broadcastService) SendToInterested(ctx context.Context, kind entity.EventKind, filter entity.RecipientFilter, msg entity.OutboundMessage) (*entity.BroadcastResult, error) {
	chatIDs, err := srv.userRepo.FindNotificationRecipients(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("[Broadcast] Failed to resolve recipients",
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "resolve notification recipients")
	}

	return srv.dispatch(ctx, kind, entity.AudienceInterested, chatIDs, msg)
}

func (srv *broadcastService) SendDirect(ctx context.Context, kind entity.EventKind, chatID string, msg entity.OutboundMessage) (*entity.BroadcastResult, error) {
	return srv.dispatch(ctx, kind, entity.AudienceDirect, []string{chatID}, msg)
}

// dispatch sends msg in batches of batchSize. Sends within a batch run
// concurrently; the next batch starts once every send settled and the
// cool-down elapsed.
func (srv *broadcastService) dispatch(
	ctx context.Context,
	kind entity.EventKind,
	audience string,
	chatIDs []string,
	msg entity.OutboundMessage,
) (*entity.BroadcastResult, error) {
	recipients := uniqueChatIDs(chatIDs)
	if len(recipients) == 0 {
		srv.log(ctx).Debug("[Broadcast] No recipients",
			slog.String("kind", string(kind)),
			slog.String("audience", audience),
		)

		return &entity.BroadcastResult{}, nil
	}

	broadcast := &entity.Broadcast{
		ID:         uuid.New(),
		Kind:       kind,
		Audience:   audience,
		Recipients: len(recipients),
		StartedAt:  srv.now(),
	}
	logs := make([]*entity.DeliveryLog, len(recipients))

	var interrupted error
	for start := 0; start < len(recipients); start += srv.batchSize {
		if start > 0 {
			if err := srv.wait(ctx, srv.batchDelay); err != nil {
				interrupted = err

				break
			}
		}

		end := min(start+srv.batchSize, len(recipients))
		broadcast.Batches++
		srv.sendBatch(ctx, broadcast, start, recipients[start:end], msg, logs)
		srv.metrics.BroadcastBatches.WithLabelValues(audience).Inc()
	}

	delivered := make([]*entity.DeliveryLog, 0, len(logs))
	for _, entry := range logs {
		if entry == nil {
			continue
		}
		delivered = append(delivered, entry)
		if entry.Status == entity.DeliveryStatusSent {
			broadcast.TotalSent++
		} else {
			broadcast.TotalFailed++
		}
	}
	broadcast.CompletedAt = srv.now()

	srv.metrics.MessagesSent.WithLabelValues(audience).Add(float64(broadcast.TotalSent))
	srv.metrics.MessagesFailed.WithLabelValues(audience).Add(float64(broadcast.TotalFailed))
	srv.metrics.BroadcastDuration.WithLabelValues(audience).Observe(broadcast.CompletedAt.Sub(broadcast.StartedAt).Seconds())

	if err := srv.broadcastRepo.CreateBroadcast(context.WithoutCancel(ctx), broadcast, delivered); err != nil {
		srv.log(ctx).Error("[Broadcast] Failed to record broadcast audit",
			slog.String("broadcast_id", broadcast.ID.String()),
			slog.Any("error", err),
		)
	}

	result := &entity.BroadcastResult{
		Recipients: broadcast.Recipients,
		Sent:       broadcast.TotalSent,
		Failed:     broadcast.TotalFailed,
		Batches:    broadcast.Batches,
	}

	srv.log(ctx).Info("[Broadcast] Dispatch finished",
		slog.String("broadcast_id", broadcast.ID.String()),
		slog.String("kind", string(kind)),
		slog.String("audience", audience),
		slog.Int("recipients", result.Recipients),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("batches", result.Batches),
	)

	if interrupted != nil {
		return result, errors.Wrap(interrupted, "broadcast interrupted")
	}

	return result, nil
}

// sendBatch writes one delivery log per recipient into logs[offset:].
// Failures are recorded, never retried.
func (srv *broadcastService) sendBatch(
	ctx context.Context,
	broadcast *entity.Broadcast,
	offset int,
	batch []string,
	msg entity.OutboundMessage,
	logs []*entity.DeliveryLog,
) {
	var group errgroup.Group
	for idx, chatID := range batch {
		group.Go(func() error {
			entry := &entity.DeliveryLog{
				ID:          uuid.New(),
				BroadcastID: broadcast.ID,
				ChatID:      chatID,
				Batch:       broadcast.Batches,
				Status:      entity.DeliveryStatusSent,
			}

			if err := srv.messenger.Send(ctx, chatID, msg); err != nil {
				entry.Status = entity.DeliveryStatusFailed
				entry.ErrorMessage = err.Error()
				srv.log(ctx).Warn("[Broadcast] Send failed",
					slog.String("chat_id", chatID),
					slog.Int("batch", broadcast.Batches),
					slog.Any("error", err),
				)
			}
			entry.SentAt = srv.now()
			logs[offset+idx] = entry

			return nil
		})
	}

	_ = group.Wait()
}

func waitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// uniqueChatIDs drops blanks and repeats, keeping the first occurrence order.
func uniqueChatIDs(chatIDs []string) []string {
	seen := make(map[string]struct{}, len(chatIDs))
	unique := make([]string, 0, len(chatIDs))
	for _, chatID := range chatIDs {
		chatID = strings.TrimSpace(chatID)
		if chatID == "" {
			continue
		}
		if _, ok := seen[chatID]; ok {
			continue
		}
		seen[chatID] = struct{}{}
		unique = append(unique, chatID)
	}

	return unique
}
