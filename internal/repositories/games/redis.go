package games

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/spot-the-spy/internal/entities"
	spyerr "github.com/KirkDiggler/spot-the-spy/internal/errors"
)

const (
	// Key patterns
	gameKeyPattern         = "game:%s"
	participantsKeyPattern = "game:%s:participants"
	locationsKeyPattern    = "game:%s:locations"
	hostKeyPattern         = "host:%s:game"

	// maxTxAttempts bounds optimistic retries when a watched key changes
	maxTxAttempts = 8
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client    redis.UniversalClient
	KeyPrefix string // Optional namespace prepended to every key
}

// redisRepository implements Repository on Redis. Conditional writes run as
// WATCH/MULTI optimistic transactions: the preconditions are read under WATCH
// and the MULTI block fails if any watched key changed in between.
type redisRepository struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisRepository creates a new Redis-backed game repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	return &redisRepository{
		client: cfg.Client,
		prefix: cfg.KeyPrefix,
	}
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (r *redisRepository) gameKey(id string) string {
	return r.prefix + fmt.Sprintf(gameKeyPattern, id)
}

func (r *redisRepository) participantsKey(id string) string {
	return r.prefix + fmt.Sprintf(participantsKeyPattern, id)
}

func (r *redisRepository) locationsKey(id string) string {
	return r.prefix + fmt.Sprintf(locationsKeyPattern, id)
}

func (r *redisRepository) hostKey(hostID string) string {
	return r.prefix + fmt.Sprintf(hostKeyPattern, hostID)
}

// transact runs fn under WATCH on keys, retrying when another client touched
// one of them before EXEC.
func (r *redisRepository) transact(ctx context.Context, fn func(tx *redis.Tx) error, keys ...string) error {
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err := r.client.Watch(ctx, fn, keys...)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		var spyErr *spyerr.Error
		if err != nil && !errors.As(err, &spyErr) {
			return storeErr(err, "commit transaction")
		}
		return err
	}
	return spyerr.Conflict("too many concurrent updates").WithMeta("keys", keys)
}

func storeErr(err error, action string) error {
	return spyerr.WrapWithCode(err, spyerr.CodeInternal, "failed to "+action)
}

func (r *redisRepository) readGame(ctx context.Context, c getter, id string) (*entities.GameSession, error) {
	data, err := c.Get(ctx, r.gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, spyerr.SessionNotFound(id)
		}
		return nil, storeErr(err, "get game")
	}

	var game entities.GameSession
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, storeErr(err, "deserialize game")
	}
	if !game.State.IsValid() {
		return nil, spyerr.Internalf("game '%s' has unknown state %q", id, game.State)
	}
	return &game, nil
}

func (r *redisRepository) readRoster(ctx context.Context, c getter, id string) (entities.Roster, error) {
	data, err := c.Get(ctx, r.participantsKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, spyerr.SessionNotFound(id)
		}
		return nil, storeErr(err, "get participants")
	}

	var roster entities.Roster
	if err := json.Unmarshal(data, &roster); err != nil {
		return nil, storeErr(err, "deserialize participants")
	}
	return roster, nil
}

func (r *redisRepository) Create(ctx context.Context, game *entities.GameSession, host *entities.Participant) error {
	if err := validateCreate(game, host); err != nil {
		return err
	}

	seat := *host
	seat.GameID = game.ID
	seat.Role = entities.RoleUnassigned

	gameData, err := json.Marshal(game)
	if err != nil {
		return storeErr(err, "serialize game")
	}
	rosterData, err := json.Marshal(entities.Roster{&seat})
	if err != nil {
		return storeErr(err, "serialize participants")
	}

	hostKey := r.hostKey(game.HostID)
	gameKey := r.gameKey(game.ID)

	return r.transact(ctx, func(tx *redis.Tx) error {
		existingID, err := tx.Get(ctx, hostKey).Result()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return storeErr(err, "get host index")
		default:
			existing, err := r.readGame(ctx, tx, existingID)
			if err == nil && existing.IsLive() {
				return spyerr.HostAlreadyHosting(game.HostID).WithMeta("game_id", existingID)
			}
			if err != nil && !spyerr.IsSessionNotFound(err) {
				return err
			}
		}

		exists, err := tx.Exists(ctx, gameKey).Result()
		if err != nil {
			return storeErr(err, "check game id")
		}
		if exists > 0 {
			return spyerr.Conflict("game id already in use").WithMeta("game_id", game.ID)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, gameKey, gameData, 0)
			pipe.Set(ctx, r.participantsKey(game.ID), rosterData, 0)
			pipe.Set(ctx, hostKey, game.ID, 0)
			return nil
		})
		return err
	}, hostKey, gameKey)
}

func (r *redisRepository) Get(ctx context.Context, id string) (*entities.GameSession, error) {
	return r.readGame(ctx, r.client, id)
}

func (r *redisRepository) GetActiveByHost(ctx context.Context, hostID string) (*entities.GameSession, error) {
	id, err := r.client.Get(ctx, r.hostKey(hostID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, noActiveGame(hostID)
		}
		return nil, storeErr(err, "get host index")
	}

	game, err := r.readGame(ctx, r.client, id)
	if err != nil {
		if spyerr.IsSessionNotFound(err) {
			return nil, noActiveGame(hostID)
		}
		return nil, err
	}
	if !game.IsLive() {
		return nil, noActiveGame(hostID)
	}
	return game, nil
}

func (r *redisRepository) ListParticipants(ctx context.Context, id string) (entities.Roster, error) {
	return r.readRoster(ctx, r.client, id)
}

func (r *redisRepository) AddParticipant(ctx context.Context, id string, participant *entities.Participant) (entities.Roster, error) {
	if participant == nil || participant.UserID == "" {
		return nil, spyerr.InvalidArgument("participant user ID is required")
	}

	var result entities.Roster
	err := r.transact(ctx, func(tx *redis.Tx) error {
		game, err := r.readGame(ctx, tx, id)
		if err != nil {
			return err
		}
		roster, err := r.readRoster(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := checkJoin(game, roster, participant.UserID); err != nil {
			return err
		}

		seat := *participant
		seat.GameID = id
		seat.Role = entities.RoleUnassigned
		roster = append(roster, &seat)
		sort.SliceStable(roster, func(i, j int) bool {
			return roster[i].JoinedAt.Before(roster[j].JoinedAt)
		})

		if err := r.writeRoster(ctx, tx, id, roster); err != nil {
			return err
		}
		result = roster
		return nil
	}, r.gameKey(id), r.participantsKey(id))
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *redisRepository) RemoveParticipant(ctx context.Context, id, userID string) (entities.Roster, error) {
	var result entities.Roster
	err := r.transact(ctx, func(tx *redis.Tx) error {
		game, err := r.readGame(ctx, tx, id)
		if err != nil {
			return err
		}
		roster, err := r.readRoster(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := checkLeave(game, roster, userID); err != nil {
			return err
		}

		kept := make(entities.Roster, 0, len(roster)-1)
		for _, p := range roster {
			if p.UserID != userID {
				kept = append(kept, p)
			}
		}

		if err := r.writeRoster(ctx, tx, id, kept); err != nil {
			return err
		}
		result = kept
		return nil
	}, r.gameKey(id), r.participantsKey(id))
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *redisRepository) writeRoster(ctx context.Context, tx *redis.Tx, id string, roster entities.Roster) error {
	data, err := json.Marshal(roster)
	if err != nil {
		return storeErr(err, "serialize participants")
	}
	_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.participantsKey(id), data, 0)
		return nil
	})
	return err
}

// updateGame applies mutate to the stored game under WATCH
func (r *redisRepository) updateGame(ctx context.Context, id string, mutate func(game *entities.GameSession) error) error {
	gameKey := r.gameKey(id)
	return r.transact(ctx, func(tx *redis.Tx) error {
		game, err := r.readGame(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := mutate(game); err != nil {
			return err
		}
		data, err := json.Marshal(game)
		if err != nil {
			return storeErr(err, "serialize game")
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, gameKey, data, 0)
			return nil
		})
		return err
	}, gameKey)
}

func (r *redisRepository) SetMessages(ctx context.Context, id string, host, control entities.MessageHandle) error {
	return r.updateGame(ctx, id, func(game *entities.GameSession) error {
		game.HostMessage = host
		game.ControlMessage = control
		return nil
	})
}

func (r *redisRepository) CompareAndSwapState(ctx context.Context, id string, from, to entities.SessionState) error {
	if to == entities.SessionStateClosed {
		return spyerr.InvalidArgument("use Close to close a game")
	}
	return r.updateGame(ctx, id, func(game *entities.GameSession) error {
		if game.State != from {
			return spyerr.SessionNotOpen(id, game.State)
		}
		game.State = to
		return nil
	})
}

func (r *redisRepository) CommitAssignment(ctx context.Context, id string, assignment *entities.Assignment, startedAt time.Time) error {
	gameKey := r.gameKey(id)
	participantsKey := r.participantsKey(id)

	return r.transact(ctx, func(tx *redis.Tx) error {
		game, err := r.readGame(ctx, tx, id)
		if err != nil {
			return err
		}
		if game.State != entities.SessionStateOpen {
			return spyerr.SessionNotOpen(id, game.State)
		}
		roster, err := r.readRoster(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := checkAssignment(id, roster.UserIDs(), assignment); err != nil {
			return err
		}

		for _, p := range roster {
			p.Role = assignment.Roles[p.UserID]
		}
		started := startedAt
		game.State = entities.SessionStateRunning
		game.SelectedLocation = assignment.Locations.SelectedLocation
		game.FirstAskerID = assignment.FirstAskerID
		game.StartedAt = &started

		gameData, err := json.Marshal(game)
		if err != nil {
			return storeErr(err, "serialize game")
		}
		rosterData, err := json.Marshal(roster)
		if err != nil {
			return storeErr(err, "serialize participants")
		}
		locationData, err := json.Marshal(assignment.Locations)
		if err != nil {
			return storeErr(err, "serialize locations")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, gameKey, gameData, 0)
			pipe.Set(ctx, participantsKey, rosterData, 0)
			pipe.Set(ctx, r.locationsKey(id), locationData, 0)
			return nil
		})
		return err
	}, gameKey, participantsKey)
}

func (r *redisRepository) GetLocations(ctx context.Context, id string) (*entities.LocationSet, error) {
	if _, err := r.readGame(ctx, r.client, id); err != nil {
		return nil, err
	}

	data, err := r.client.Get(ctx, r.locationsKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, noLocations(id)
		}
		return nil, storeErr(err, "get locations")
	}

	var locations entities.LocationSet
	if err := json.Unmarshal(data, &locations); err != nil {
		return nil, storeErr(err, "deserialize locations")
	}
	return &locations, nil
}

func (r *redisRepository) Close(ctx context.Context, id string, from entities.SessionState) error {
	gameKey := r.gameKey(id)

	// The host index key is only known after reading the game, so read it
	// first and then watch it together with the game key.
	game, err := r.readGame(ctx, r.client, id)
	if err != nil {
		return err
	}
	hostKey := r.hostKey(game.HostID)

	return r.transact(ctx, func(tx *redis.Tx) error {
		game, err := r.readGame(ctx, tx, id)
		if err != nil {
			return err
		}
		if game.State != from {
			return spyerr.SessionNotOpen(id, game.State)
		}

		indexed, err := tx.Get(ctx, hostKey).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return storeErr(err, "get host index")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, gameKey, r.participantsKey(id), r.locationsKey(id))
			if indexed == id {
				pipe.Del(ctx, hostKey)
			}
			return nil
		})
		return err
	}, gameKey, hostKey)
}

func (r *redisRepository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return spyerr.Unavailable(err, "redis ping failed")
	}
	return nil
}
