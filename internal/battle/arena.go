package battle

import (
	"fmt"

	apperrors "github.com/louisbranch/skirmish/internal/platform/errors"
)

// Arena registers both commands of a battle. Actions and effects address
// units by id and resolve allies and enemies through the arena when used.
type Arena struct {
	commands map[Side]*Command
}

// NewArena pairs the two commands. Unit ids must be unique across both.
func NewArena(left, right *Command) (*Arena, error) {
	if left == nil || right == nil {
		return nil, fmt.Errorf("both commands are required")
	}
	if left.side == right.side {
		return nil, fmt.Errorf("commands must fight for opposite sides, both are %s", left.side)
	}
	for _, u := range left.Units() {
		if _, ok := right.Unit(u.id); ok {
			return nil, apperrors.WithMetadata(
				apperrors.CodeCommandDuplicateUnit,
				fmt.Sprintf("unit id %q is registered on both sides", u.id),
				map[string]string{"UnitID": u.id},
			)
		}
	}
	return &Arena{commands: map[Side]*Command{left.side: left, right.side: right}}, nil
}

// Command returns the roster of side.
func (a *Arena) Command(side Side) *Command {
	return a.commands[side]
}

// Unit finds a unit on either side.
func (a *Arena) Unit(id string) (*Unit, bool) {
	for _, side := range []Side{SideLeft, SideRight} {
		if u, ok := a.commands[side].Unit(id); ok {
			return u, true
		}
	}
	return nil, false
}

// Units returns the left roster followed by the right roster.
func (a *Arena) Units() []*Unit {
	return append(a.commands[SideLeft].Units(), a.commands[SideRight].Units()...)
}

// Allies returns u's own command.
func (a *Arena) Allies(u *Unit) *Command {
	return a.commands[u.side]
}

// Enemies returns the command u fights against.
func (a *Arena) Enemies(u *Unit) *Command {
	return a.commands[u.side.Opponent()]
}

// Summon inserts u into side's command through the normal append path.
func (a *Arena) Summon(side Side, u *Unit) error {
	if _, ok := a.Unit(u.id); ok {
		return apperrors.WithMetadata(
			apperrors.CodeCommandDuplicateUnit,
			fmt.Sprintf("summoned unit id %q already exists", u.id),
			map[string]string{"UnitID": u.id},
		)
	}
	return a.commands[side].Add(u)
}

// Winner reports the side left standing once the other has no living unit.
func (a *Arena) Winner() (Side, bool) {
	left := a.commands[SideLeft].HasLiving()
	right := a.commands[SideRight].HasLiving()
	switch {
	case left && !right:
		return SideLeft, true
	case right && !left:
		return SideRight, true
	default:
		return "", false
	}
}

// actor resolves the acting unit of an action.
func (a *Arena) actor(id string) (*Unit, error) {
	if a == nil {
		return nil, apperrors.WithMetadata(apperrors.CodeUnitNotFound, fmt.Sprintf("unit %q is not in a battle", id), map[string]string{"UnitID": id})
	}
	u, ok := a.Unit(id)
	if !ok {
		return nil, apperrors.WithMetadata(apperrors.CodeUnitNotFound, fmt.Sprintf("unit %q not found", id), map[string]string{"UnitID": id})
	}
	return u, nil
}
