package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "posyandu:session:"

// SessionRepository menyimpan token yang masih berlaku di Redis. Token yang
// tidak ada di registry dianggap sudah logout atau dicabut.
type SessionRepository interface {
	Save(ctx context.Context, tokenID string, userID int64, ttl time.Duration) error
	// Find mengembalikan user id pemilik token, atau ok=false jika token
	// tidak terdaftar.
	Find(ctx context.Context, tokenID string) (userID int64, ok bool, err error)
	Delete(ctx context.Context, tokenID string) error
	DeleteAllForUser(ctx context.Context, userID int64) error
}

type sessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) SessionRepository {
	return &sessionRepository{client: client}
}

func sessionKey(tokenID string) string {
	return sessionKeyPrefix + tokenID
}

func userSessionsKey(userID int64) string {
	return fmt.Sprintf("%suser:%d", sessionKeyPrefix, userID)
}

func (r *sessionRepository) Save(ctx context.Context, tokenID string, userID int64, ttl time.Duration) error {
	setKey := userSessionsKey(userID)

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, sessionKey(tokenID), userID, ttl)
	pipe.SAdd(ctx, setKey, tokenID)
	// set per user ikut kedaluwarsa bersama token terakhir
	pipe.Expire(ctx, setKey, ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *sessionRepository) Find(ctx context.Context, tokenID string) (int64, bool, error) {
	val, err := r.client.Get(ctx, sessionKey(tokenID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("session %s rusak: %w", tokenID, err)
	}
	return userID, true, nil
}

func (r *sessionRepository) Delete(ctx context.Context, tokenID string) error {
	val, err := r.client.Get(ctx, sessionKey(tokenID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, sessionKey(tokenID))
	if userID, err := strconv.ParseInt(val, 10, 64); err == nil {
		pipe.SRem(ctx, userSessionsKey(userID), tokenID)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (r *sessionRepository) DeleteAllForUser(ctx context.Context, userID int64) error {
	setKey := userSessionsKey(userID)
	tokenIDs, err := r.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(tokenIDs)+1)
	for _, id := range tokenIDs {
		keys = append(keys, sessionKey(id))
	}
	keys = append(keys, setKey)
	return r.client.Del(ctx, keys...).Err()
}

var _ SessionRepository = (*sessionRepository)(nil)
