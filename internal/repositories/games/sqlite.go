package games

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/KirkDiggler/spot-the-spy/internal/entities"
	spyerr "github.com/KirkDiggler/spot-the-spy/internal/errors"
	"github.com/KirkDiggler/spot-the-spy/internal/repositories/games/migrations"
)

// OpenSQLite opens the SQLite database at path
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, spyerr.InvalidArgument("sqlite path is required")
	}

	dsn := filepath.Clean(path) +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return db, nil
}

// Migrate applies the embedded goose migrations
func Migrate(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	for _, res := range results {
		log.Info().
			Str("migration", res.Source.Path).
			Dur("duration", res.Duration).
			Msg("applied migration")
	}
	return nil
}

type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// sqliteRepository implements Repository on SQLite. Joins and state swaps are
// single conditional statements, multi-table changes run in one transaction.
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a repository on an opened and migrated
// database. The pool is pinned to one connection so write transactions are
// serialized inside the process instead of racing for the database lock.
func NewSQLiteRepository(db *sql.DB) Repository {
	if db == nil {
		panic("sqlite db is required")
	}
	db.SetMaxOpenConns(1)
	return &sqliteRepository{db: db}
}

const gameColumns = `id, host_id, max_players, state, selected_location, first_asker_id,
	host_channel_id, host_message_id, control_channel_id, control_message_id, created_at, started_at`

func toNanos(t time.Time) int64 {
	return t.UTC().UnixNano()
}

func fromNanos(v int64) time.Time {
	return time.Unix(0, v).UTC()
}

func isConstraint(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed")
}

func (r *sqliteRepository) loadGame(ctx context.Context, q queryer, id string) (*entities.GameSession, error) {
	row := q.QueryRowContext(ctx, `SELECT `+gameColumns+` FROM games WHERE id = ?`, id)

	var (
		game      entities.GameSession
		state     string
		createdAt int64
		startedAt sql.NullInt64
	)
	err := row.Scan(
		&game.ID, &game.HostID, &game.MaxPlayers, &state, &game.SelectedLocation, &game.FirstAskerID,
		&game.HostMessage.ChannelID, &game.HostMessage.MessageID,
		&game.ControlMessage.ChannelID, &game.ControlMessage.MessageID,
		&createdAt, &startedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, spyerr.SessionNotFound(id)
		}
		return nil, storeErr(err, "get game")
	}

	game.State, err = entities.ParseSessionState(state)
	if err != nil {
		return nil, storeErr(err, "parse game state")
	}
	game.CreatedAt = fromNanos(createdAt)
	if startedAt.Valid {
		started := fromNanos(startedAt.Int64)
		game.StartedAt = &started
	}
	return &game, nil
}

func (r *sqliteRepository) loadRoster(ctx context.Context, q queryer, id string) (entities.Roster, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT user_id, role, joined_at FROM participants WHERE game_id = ? ORDER BY joined_at, rowid`, id)
	if err != nil {
		return nil, storeErr(err, "list participants")
	}
	defer rows.Close()

	var roster entities.Roster
	for rows.Next() {
		var (
			p        = &entities.Participant{GameID: id}
			role     string
			joinedAt int64
		)
		if err := rows.Scan(&p.UserID, &role, &joinedAt); err != nil {
			return nil, storeErr(err, "scan participant")
		}
		if p.Role, err = entities.ParseRole(role); err != nil {
			return nil, storeErr(err, "parse role")
		}
		p.JoinedAt = fromNanos(joinedAt)
		roster = append(roster, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err, "list participants")
	}
	return roster, nil
}

func (r *sqliteRepository) loadLocations(ctx context.Context, q queryer, table, id string) ([]string, error) {
	rows, err := q.QueryContext(ctx, `SELECT name FROM `+table+` WHERE game_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, storeErr(err, "list locations")
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, storeErr(err, "scan location")
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err, "list locations")
	}
	return names, nil
}

// inTx runs fn in a transaction, rolling back on any error
func (r *sqliteRepository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr(err, "begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return storeErr(err, "commit transaction")
	}
	return nil
}

func (r *sqliteRepository) Create(ctx context.Context, game *entities.GameSession, host *entities.Participant) error {
	if err := validateCreate(game, host); err != nil {
		return err
	}

	return r.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO games (`+gameColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)`,
			game.ID, game.HostID, game.MaxPlayers, string(game.State), game.SelectedLocation, game.FirstAskerID,
			game.HostMessage.ChannelID, game.HostMessage.MessageID,
			game.ControlMessage.ChannelID, game.ControlMessage.MessageID,
			toNanos(game.CreatedAt),
		)
		if err != nil {
			if isConstraint(err) {
				if strings.Contains(err.Error(), "games.host_id") {
					return spyerr.HostAlreadyHosting(game.HostID)
				}
				return spyerr.Conflict("game id already in use").WithMeta("game_id", game.ID)
			}
			return storeErr(err, "insert game")
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO participants (game_id, user_id, role, joined_at) VALUES (?, ?, ?, ?)`,
			game.ID, host.UserID, string(entities.RoleUnassigned), toNanos(host.JoinedAt))
		if err != nil {
			return storeErr(err, "insert host participant")
		}
		return nil
	})
}

func (r *sqliteRepository) Get(ctx context.Context, id string) (*entities.GameSession, error) {
	return r.loadGame(ctx, r.db, id)
}

func (r *sqliteRepository) GetActiveByHost(ctx context.Context, hostID string) (*entities.GameSession, error) {
	var id string
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM games WHERE host_id = ? AND state <> ?`, hostID, string(entities.SessionStateClosed)).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, noActiveGame(hostID)
		}
		return nil, storeErr(err, "get active game")
	}
	return r.loadGame(ctx, r.db, id)
}

func (r *sqliteRepository) ListParticipants(ctx context.Context, id string) (entities.Roster, error) {
	var roster entities.Roster
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := r.loadGame(ctx, tx, id); err != nil {
			return err
		}
		var err error
		roster, err = r.loadRoster(ctx, tx, id)
		return err
	})
	return roster, err
}

func (r *sqliteRepository) AddParticipant(ctx context.Context, id string, participant *entities.Participant) (entities.Roster, error) {
	if participant == nil || participant.UserID == "" {
		return nil, spyerr.InvalidArgument("participant user ID is required")
	}

	var roster entities.Roster
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		// Seat the user only while the game is open and below capacity
		res, err := tx.ExecContext(ctx, `
			INSERT INTO participants (game_id, user_id, role, joined_at)
			SELECT g.id, ?, ?, ?
			FROM games g
			WHERE g.id = ?
			  AND g.state = ?
			  AND (SELECT COUNT(*) FROM participants p WHERE p.game_id = g.id) < g.max_players`,
			participant.UserID, string(entities.RoleUnassigned), toNanos(participant.JoinedAt),
			id, string(entities.SessionStateOpen))
		if err != nil {
			if isConstraint(err) {
				return spyerr.AlreadyJoined(id, participant.UserID)
			}
			return storeErr(err, "insert participant")
		}

		if affected, err := res.RowsAffected(); err != nil {
			return storeErr(err, "insert participant")
		} else if affected == 0 {
			return r.explainJoin(ctx, tx, id, participant.UserID)
		}

		roster, err = r.loadRoster(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return roster, nil
}

// explainJoin finds out which precondition rejected a join
func (r *sqliteRepository) explainJoin(ctx context.Context, q queryer, id, userID string) error {
	game, err := r.loadGame(ctx, q, id)
	if err != nil {
		return err
	}
	roster, err := r.loadRoster(ctx, q, id)
	if err != nil {
		return err
	}
	if err := checkJoin(game, roster, userID); err != nil {
		return err
	}
	return spyerr.Conflict("join rejected without a failed precondition").WithMeta("game_id", id)
}

func (r *sqliteRepository) RemoveParticipant(ctx context.Context, id, userID string) (entities.Roster, error) {
	var roster entities.Roster
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			DELETE FROM participants
			WHERE game_id = ? AND user_id = ?
			  AND EXISTS (SELECT 1 FROM games g WHERE g.id = ? AND g.state = ? AND g.host_id <> ?)`,
			id, userID, id, string(entities.SessionStateOpen), userID)
		if err != nil {
			return storeErr(err, "delete participant")
		}

		if affected, err := res.RowsAffected(); err != nil {
			return storeErr(err, "delete participant")
		} else if affected == 0 {
			game, err := r.loadGame(ctx, tx, id)
			if err != nil {
				return err
			}
			current, err := r.loadRoster(ctx, tx, id)
			if err != nil {
				return err
			}
			if err := checkLeave(game, current, userID); err != nil {
				return err
			}
			return spyerr.Conflict("leave rejected without a failed precondition").WithMeta("game_id", id)
		}

		roster, err = r.loadRoster(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return roster, nil
}

func (r *sqliteRepository) SetMessages(ctx context.Context, id string, host, control entities.MessageHandle) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE games
		SET host_channel_id = ?, host_message_id = ?, control_channel_id = ?, control_message_id = ?
		WHERE id = ?`,
		host.ChannelID, host.MessageID, control.ChannelID, control.MessageID, id)
	if err != nil {
		return storeErr(err, "update game messages")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storeErr(err, "update game messages")
	}
	if affected == 0 {
		return spyerr.SessionNotFound(id)
	}
	return nil
}

// swapState runs the conditional state update and explains a miss
func (r *sqliteRepository) swapState(ctx context.Context, q queryer, id string, from, to entities.SessionState) error {
	res, err := q.ExecContext(ctx, `UPDATE games SET state = ? WHERE id = ? AND state = ?`,
		string(to), id, string(from))
	if err != nil {
		return storeErr(err, "update game state")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storeErr(err, "update game state")
	}
	if affected == 1 {
		return nil
	}

	game, err := r.loadGame(ctx, q, id)
	if err != nil {
		return err
	}
	return spyerr.SessionNotOpen(id, game.State)
}

func (r *sqliteRepository) CompareAndSwapState(ctx context.Context, id string, from, to entities.SessionState) error {
	if to == entities.SessionStateClosed {
		return spyerr.InvalidArgument("use Close to close a game")
	}
	return r.swapState(ctx, r.db, id, from, to)
}

func (r *sqliteRepository) CommitAssignment(ctx context.Context, id string, assignment *entities.Assignment, startedAt time.Time) error {
	if assignment == nil || assignment.Locations == nil {
		return spyerr.InvalidArgument("assignment cannot be nil")
	}

	return r.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.swapState(ctx, tx, id, entities.SessionStateOpen, entities.SessionStateRunning); err != nil {
			return err
		}

		roster, err := r.loadRoster(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := checkAssignment(id, roster.UserIDs(), assignment); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE games SET selected_location = ?, first_asker_id = ?, started_at = ? WHERE id = ?`,
			assignment.Locations.SelectedLocation, assignment.FirstAskerID, toNanos(startedAt), id)
		if err != nil {
			return storeErr(err, "update game")
		}

		for _, p := range roster {
			_, err := tx.ExecContext(ctx, `UPDATE participants SET role = ? WHERE game_id = ? AND user_id = ?`,
				string(assignment.Roles[p.UserID]), id, p.UserID)
			if err != nil {
				return storeErr(err, "assign role")
			}
		}

		for i, name := range assignment.Locations.SpyLocations {
			_, err := tx.ExecContext(ctx, `INSERT INTO game_locations (game_id, position, name) VALUES (?, ?, ?)`,
				id, i, name)
			if err != nil {
				return storeErr(err, "insert location")
			}
		}
		for i, name := range assignment.Locations.MoleLocations {
			_, err := tx.ExecContext(ctx, `INSERT INTO game_mole_locations (game_id, position, name) VALUES (?, ?, ?)`,
				id, i, name)
			if err != nil {
				return storeErr(err, "insert mole location")
			}
		}
		return nil
	})
}

func (r *sqliteRepository) GetLocations(ctx context.Context, id string) (*entities.LocationSet, error) {
	var locations *entities.LocationSet
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		game, err := r.loadGame(ctx, tx, id)
		if err != nil {
			return err
		}
		spy, err := r.loadLocations(ctx, tx, "game_locations", id)
		if err != nil {
			return err
		}
		if len(spy) == 0 {
			return noLocations(id)
		}
		mole, err := r.loadLocations(ctx, tx, "game_mole_locations", id)
		if err != nil {
			return err
		}
		locations = &entities.LocationSet{
			SpyLocations:     spy,
			MoleLocations:    mole,
			SelectedLocation: game.SelectedLocation,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *sqliteRepository) Close(ctx context.Context, id string, from entities.SessionState) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `UPDATE games SET state = ? WHERE id = ? AND state = ?`,
			string(entities.SessionStateClosed), id, string(from))
		if err != nil {
			return storeErr(err, "close game")
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return storeErr(err, "close game")
		}
		if affected == 0 {
			game, err := r.loadGame(ctx, tx, id)
			if err != nil {
				return err
			}
			return spyerr.SessionNotOpen(id, game.State)
		}

		for _, stmt := range []string{
			`DELETE FROM game_mole_locations WHERE game_id = ?`,
			`DELETE FROM game_locations WHERE game_id = ?`,
			`DELETE FROM participants WHERE game_id = ?`,
			`DELETE FROM games WHERE id = ?`,
		} {
			if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
				return storeErr(err, "delete closed game")
			}
		}
		return nil
	})
}

func (r *sqliteRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return spyerr.Unavailable(err, "sqlite ping failed")
	}
	return nil
}
