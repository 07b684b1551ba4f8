// Package sqlite stores unit definitions in SQLite so rosters can be
// assembled once and replayed across simulations.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/louisbranch/skirmish/internal/battle"
	"github.com/louisbranch/skirmish/internal/content"
	apperrors "github.com/louisbranch/skirmish/internal/platform/errors"
	"github.com/louisbranch/skirmish/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/skirmish/internal/storage"
	"github.com/louisbranch/skirmish/internal/storage/sqlite/migrations"
)

var _ storage.RosterStore = (*Store)(nil)

// Store persists unit definitions in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens a SQLite store and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutUnit stores a unit definition for side. The definition must carry a
// unique id.
func (s *Store) PutUnit(ctx context.Context, side battle.Side, def map[string]any) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	return putUnit(ctx, s.sqlDB, side, def, s.now().UTC())
}

// ImportRoster stores every unit of roster in one transaction.
func (s *Store) ImportRoster(ctx context.Context, roster content.Roster) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	now := s.now().UTC()
	sides := []struct {
		side battle.Side
		defs []map[string]any
	}{
		{battle.SideLeft, roster.Left},
		{battle.SideRight, roster.Right},
	}
	for _, group := range sides {
		for _, def := range group.defs {
			if err := putUnit(ctx, tx, group.side, def, now); err != nil {
				_ = tx.Rollback()
				return err
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

// Unit returns the definition stored under id.
func (s *Store) Unit(ctx context.Context, id string) (battle.Side, map[string]any, error) {
	if err := s.ready(ctx); err != nil {
		return "", nil, err
	}
	var side, body string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT side, body FROM units WHERE unit_id = ?`, id).Scan(&side, &body)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil, notFound(id)
	}
	if err != nil {
		return "", nil, fmt.Errorf("get unit %s: %w", id, err)
	}
	def, err := content.UnmarshalUnit([]byte(body))
	if err != nil {
		return "", nil, fmt.Errorf("get unit %s: %w", id, err)
	}
	return battle.Side(side), def, nil
}

// DeleteUnit removes the definition stored under id.
func (s *Store) DeleteUnit(ctx context.Context, id string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM units WHERE unit_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete unit %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete unit %s: %w", id, err)
	}
	if affected == 0 {
		return notFound(id)
	}
	return nil
}

// Roster returns every stored definition grouped by side in insertion order.
func (s *Store) Roster(ctx context.Context) (content.Roster, error) {
	if err := s.ready(ctx); err != nil {
		return content.Roster{}, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT side, body FROM units ORDER BY seq`)
	if err != nil {
		return content.Roster{}, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	var roster content.Roster
	for rows.Next() {
		var side, body string
		if err := rows.Scan(&side, &body); err != nil {
			return content.Roster{}, fmt.Errorf("scan unit: %w", err)
		}
		def, err := content.UnmarshalUnit([]byte(body))
		if err != nil {
			return content.Roster{}, err
		}
		switch battle.Side(side) {
		case battle.SideLeft:
			roster.Left = append(roster.Left, def)
		case battle.SideRight:
			roster.Right = append(roster.Right, def)
		}
	}
	if err := rows.Err(); err != nil {
		return content.Roster{}, fmt.Errorf("list units: %w", err)
	}
	return roster, nil
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func putUnit(ctx context.Context, db execer, side battle.Side, def map[string]any, now time.Time) error {
	if !side.Valid() {
		return fmt.Errorf("unknown side %q", side)
	}
	id, _ := def["id"].(string)
	if strings.TrimSpace(id) == "" {
		return apperrors.WithMetadata(apperrors.CodeUnitMissingField, "unit field \"id\" is required", map[string]string{"Field": "id"})
	}
	body, err := content.MarshalUnit(def)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO units (unit_id, side, body, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id, string(side), string(body), now.UnixMilli(), now.UnixMilli(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.WrapWithMetadata(
				apperrors.CodeCommandDuplicateUnit,
				fmt.Sprintf("unit id %q is already stored", id),
				map[string]string{"UnitID": id},
				err,
			)
		}
		return fmt.Errorf("put unit %s: %w", id, err)
	}
	return nil
}

func notFound(id string) error {
	return apperrors.WrapWithMetadata(apperrors.CodeNotFound, fmt.Sprintf("unit %q is not stored", id), map[string]string{"UnitID": id}, storage.ErrNotFound)
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
