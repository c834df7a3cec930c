package confirmations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/spot-the-spy/internal/entities"
	spyerr "github.com/KirkDiggler/spot-the-spy/internal/errors"
)

const (
	confirmationKeyPattern = "confirmation:%s"
	gameIndexKeyPattern    = "game:%s:confirmation"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client    redis.UniversalClient
	KeyPrefix string
}

// clearIndexScript deletes the per-game index only while it still names the
// taken confirmation, so a newer request's index survives.
var clearIndexScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// redisRepository resolves confirmations with GETDEL so the read and the
// delete are one command. The per-game index may point at a confirmation that
// was already taken; such an index entry is treated as empty.
type redisRepository struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisRepository creates a new Redis-backed confirmation repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	return &redisRepository{
		client: cfg.Client,
		prefix: cfg.KeyPrefix,
	}
}

func (r *redisRepository) confirmationKey(id string) string {
	return r.prefix + fmt.Sprintf(confirmationKeyPattern, id)
}

func (r *redisRepository) gameIndexKey(gameID string) string {
	return r.prefix + fmt.Sprintf(gameIndexKeyPattern, gameID)
}

func (r *redisRepository) Create(ctx context.Context, confirmation *entities.PendingConfirmation) error {
	if err := validateCreate(confirmation); err != nil {
		return err
	}

	data, err := json.Marshal(confirmation)
	if err != nil {
		return spyerr.WrapWithCode(err, spyerr.CodeInternal, "failed to serialize confirmation")
	}

	var created *redis.BoolCmd
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		created = pipe.SetNX(ctx, r.confirmationKey(confirmation.ID), data, 0)
		pipe.Set(ctx, r.gameIndexKey(confirmation.GameID), confirmation.ID, 0)
		return nil
	})
	if err != nil {
		return spyerr.WrapWithCode(err, spyerr.CodeInternal, "failed to save confirmation")
	}
	if !created.Val() {
		return spyerr.Conflict("confirmation id already in use").WithMeta("confirmation_id", confirmation.ID)
	}
	return nil
}

func (r *redisRepository) Get(ctx context.Context, id string) (*entities.PendingConfirmation, error) {
	return r.decode(id, r.client.Get(ctx, r.confirmationKey(id)))
}

func (r *redisRepository) Take(ctx context.Context, id string) (*entities.PendingConfirmation, error) {
	confirmation, err := r.decode(id, r.client.GetDel(ctx, r.confirmationKey(id)))
	if err != nil {
		return nil, err
	}

	// The confirmation is already ours; a stale index only costs a key
	if err := clearIndexScript.Run(ctx, r.client, []string{r.gameIndexKey(confirmation.GameID)}, id).Err(); err != nil {
		log.Warn().Err(err).
			Str("game_id", confirmation.GameID).
			Str("confirmation_id", id).
			Msg("failed to clear confirmation index")
	}
	return confirmation, nil
}

func (r *redisRepository) TakeByGame(ctx context.Context, gameID string) (*entities.PendingConfirmation, error) {
	id, err := r.client.GetDel(ctx, r.gameIndexKey(gameID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, noneForGame(gameID)
		}
		return nil, spyerr.WrapWithCode(err, spyerr.CodeInternal, "failed to get game confirmation")
	}

	confirmation, err := r.decode(id, r.client.GetDel(ctx, r.confirmationKey(id)))
	if spyerr.Is(err, spyerr.CodeNoPendingConfirmation) {
		return nil, noneForGame(gameID)
	}
	return confirmation, err
}

func (r *redisRepository) decode(id string, cmd *redis.StringCmd) (*entities.PendingConfirmation, error) {
	data, err := cmd.Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, spyerr.NoPendingConfirmation(id)
		}
		return nil, spyerr.WrapWithCode(err, spyerr.CodeInternal, "failed to get confirmation")
	}

	var confirmation entities.PendingConfirmation
	if err := json.Unmarshal(data, &confirmation); err != nil {
		return nil, spyerr.WrapWithCode(err, spyerr.CodeInternal, "failed to deserialize confirmation")
	}
	return &confirmation, nil
}
