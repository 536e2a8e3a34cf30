package mongo

import (
	"context"
	"time"

	"marketbot/config"
	"marketbot/internal/domain/entity"
	"marketbot/internal/domain/repository"
	"marketbot/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	users   *mongo.Collection
	timeout time.Duration
}

// UserRepositoryParams holds dependencies for the user repository.
type UserRepositoryParams struct {
	fx.In

	Collections *Collections
	Config      *config.Config
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(params UserRepositoryParams) repository.UserRepository {
	return newUserRepository(params.Collections.Users, params.Config.Mongo.Timeout)
}

func newUserRepository(users *mongo.Collection, timeout time.Duration) *userRepository {
	return &userRepository{users: users, timeout: timeout}
}

// LinkChatIdentity redeems the token and binds the identity in one conditional update.
func (repo *userRepository) LinkChatIdentity(ctx context.Context, token string, identity entity.ChatIdentity, now time.Time) (*entity.User, error) {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	var doc userDocument
	err := repo.users.FindOneAndUpdate(ctx,
		linkTokenFilter(token, now),
		linkUpdate(identity, now),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrLinkTokenNotFound
		}

		return nil, errors.Wrap(err, "link chat identity")
	}

	return toUser(&doc), nil
}

// FindByChatUserID retrieves the user linked to a chat user id.
func (repo *userRepository) FindByChatUserID(ctx context.Context, chatUserID string) (*entity.User, error) {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	var doc userDocument
	if err := repo.users.FindOne(ctx, chatUserFilter(chatUserID)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "find user by chat id")
	}

	return toUser(&doc), nil
}

// SetNotificationsEnabled updates the preference of the user linked to chatUserID.
func (repo *userRepository) SetNotificationsEnabled(ctx context.Context, chatUserID string, enabled bool) error {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	result, err := repo.users.UpdateOne(ctx,
		chatUserFilter(chatUserID),
		bson.M{"$set": bson.M{fieldNotifications: enabled, "updatedAt": time.Now()}},
	)
	if err != nil {
		return errors.Wrap(err, "update notification preference")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// FindNotificationRecipients resolves the chat ids of opted-in linked users.
func (repo *userRepository) FindNotificationRecipients(ctx context.Context, filter entity.RecipientFilter) ([]string, error) {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	cursor, err := repo.users.Find(ctx, recipientFilter(filter),
		options.Find().SetProjection(bson.M{fieldChatUserID: 1}))
	if err != nil {
		return nil, errors.Wrap(err, "find notification recipients")
	}

	var docs []struct {
		ChatUserID bson.RawValue `bson:"telegramUserId"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decode notification recipients")
	}

	seen := make(map[string]struct{}, len(docs))
	recipients := make([]string, 0, len(docs))
	for _, doc := range docs {
		chatID, ok := rawIDString(doc.ChatUserID)
		if !ok || chatID == filter.ExcludeChatID {
			continue
		}
		if _, dup := seen[chatID]; dup {
			continue
		}
		seen[chatID] = struct{}{}
		recipients = append(recipients, chatID)
	}

	return recipients, nil
}

func (repo *userRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if repo.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, repo.timeout)
}
