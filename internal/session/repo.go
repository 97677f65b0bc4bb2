package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/fited/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	usersCollectionKey = "users-collection"
	currentSessionKey  = "current-session"
)

var _ Repo = (*RedisRepo)(nil)
var _ Repo = (*repoMock)(nil)

// Repo persists the users collection and the current session pointer.
// Absent or malformed values are reported as not found, transport errors
// propagate to the caller.
type Repo interface {
	SaveUsers(ctx context.Context, users []User) error
	LoadUsers(ctx context.Context) (_ []User, found bool, err error)
	SaveSession(ctx context.Context, userID string) error
	LoadSession(ctx context.Context) (userID string, found bool, err error)
	ClearSession(ctx context.Context) error
}

// sessionRecord is the persisted current-session value. Only the id is
// needed, the live user is re-resolved against the collection on startup.
type sessionRecord struct {
	UserID string `json:"id"`
}

type RedisRepo struct {
	redisClient *redis.Client
}

func NewRedisRepo(redisClient *redis.Client) *RedisRepo {
	return &RedisRepo{
		redisClient: redisClient,
	}
}

func (r *RedisRepo) SaveUsers(ctx context.Context, users []User) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.session.saveUsers")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	usersJson, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("marshal users collection: %w", err)
	}

	if err := r.redisClient.Set(ctx, usersCollectionKey, usersJson, 0).Err(); err != nil {
		return fmt.Errorf("save users collection: %w", err)
	}

	return nil
}

func (r *RedisRepo) LoadUsers(ctx context.Context) (_ []User, found bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.session.loadUsers")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cmd := r.redisClient.Get(ctx, usersCollectionKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load users collection: %w", err)
	}

	var users []User
	if err := json.Unmarshal([]byte(cmd.Val()), &users); err != nil {
		// malformed collection, caller falls back to the seed set
		log.Warnf("failed to unmarshal stored users collection: %s", err)
		return nil, false, nil
	}

	return users, true, nil
}

func (r *RedisRepo) SaveSession(ctx context.Context, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.session.saveSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sessionJson, err := json.Marshal(sessionRecord{UserID: userID})
	if err != nil {
		return fmt.Errorf("marshal session record: %w", err)
	}

	if err := r.redisClient.Set(ctx, currentSessionKey, sessionJson, 0).Err(); err != nil {
		return fmt.Errorf("save session record: %w", err)
	}

	return nil
}

func (r *RedisRepo) LoadSession(ctx context.Context) (userID string, found bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.session.loadSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cmd := r.redisClient.Get(ctx, currentSessionKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("load session record: %w", err)
	}

	var record sessionRecord
	if err := json.Unmarshal([]byte(cmd.Val()), &record); err != nil {
		// malformed session pointer, session simply stays anonymous
		log.Warnf("failed to unmarshal stored session record: %s", err)
		return "", false, nil
	}

	return record.UserID, true, nil
}

func (r *RedisRepo) ClearSession(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.session.clearSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.redisClient.Del(ctx, currentSessionKey).Err(); err != nil {
		return fmt.Errorf("clear session record: %w", err)
	}
	return nil
}
