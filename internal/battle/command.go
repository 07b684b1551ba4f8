package battle

import (
	"fmt"

	"github.com/louisbranch/skirmish/internal/collection"
	apperrors "github.com/louisbranch/skirmish/internal/platform/errors"
)

// Command is one side's roster, ordered by insertion and keyed by unit id.
type Command struct {
	side  Side
	units *collection.Keyed[string, *Unit]
}

// NewCommand builds a roster for side. Duplicate ids fail with ErrDuplicateUnit.
func NewCommand(side Side, units ...*Unit) (*Command, error) {
	c := &Command{
		side:  side,
		units: collection.NewKeyed(func(u *Unit) string { return u.id }),
	}
	for _, u := range units {
		if err := c.Add(u); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Side returns the side the command fights for.
func (c *Command) Side() Side { return c.side }

// Add appends u and tags it with the command's side.
func (c *Command) Add(u *Unit) error {
	if err := c.units.Add(u); err != nil {
		return apperrors.WrapWithMetadata(
			apperrors.CodeCommandDuplicateUnit,
			fmt.Sprintf("unit id %q already exists in %s command", u.id, c.side),
			map[string]string{"UnitID": u.id, "Side": string(c.side)},
			err,
		)
	}
	u.side = c.side
	return nil
}

// Unit returns the unit with id.
func (c *Command) Unit(id string) (*Unit, bool) { return c.units.Get(id) }

// Count returns the number of units, dead ones included.
func (c *Command) Count() int { return c.units.Count() }

// Units returns every unit in roster order.
func (c *Command) Units() []*Unit { return c.units.Values() }

// Living returns the units with life left.
func (c *Command) Living() []*Unit {
	return c.filter(func(u *Unit) bool { return u.Alive() })
}

// LivingMelee returns the living melee units.
func (c *Command) LivingMelee() []*Unit {
	return c.filter(func(u *Unit) bool { return u.Alive() && u.melee })
}

// Dead returns the units with no life left.
func (c *Command) Dead() []*Unit {
	return c.filter(func(u *Unit) bool { return !u.Alive() })
}

// Wounded returns the living units below total life.
func (c *Command) Wounded() []*Unit {
	return c.filter(func(u *Unit) bool { return u.Wounded() })
}

// HasLiving reports whether any unit is alive.
func (c *Command) HasLiving() bool { return len(c.Living()) > 0 }

// HasLivingMelee reports whether any melee unit is alive.
func (c *Command) HasLivingMelee() bool { return len(c.LivingMelee()) > 0 }

func (c *Command) filter(keep func(*Unit) bool) []*Unit {
	var out []*Unit
	for _, u := range c.units.Values() {
		if keep(u) {
			out = append(out, u)
		}
	}
	return out
}
