package storage

import (
	"context"

	"github.com/louisbranch/skirmish/internal/battle"
	"github.com/louisbranch/skirmish/internal/content"
	apperrors "github.com/louisbranch/skirmish/internal/platform/errors"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// UnitStore persists unit definitions by side.
type UnitStore interface {
	PutUnit(ctx context.Context, side battle.Side, def map[string]any) error
	Unit(ctx context.Context, id string) (battle.Side, map[string]any, error)
	DeleteUnit(ctx context.Context, id string) error
}

// RosterStore persists whole rosters on top of single units.
type RosterStore interface {
	UnitStore
	ImportRoster(ctx context.Context, roster content.Roster) error
	Roster(ctx context.Context) (content.Roster, error)
	Close() error
}
