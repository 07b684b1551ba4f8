package battle

import (
	"math"

	"github.com/louisbranch/skirmish/internal/random"
)

// Side tags the command a unit fights for.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Opponent returns the opposing side.
func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Valid reports whether s is a known side.
func (s Side) Valid() bool {
	return s == SideLeft || s == SideRight
}

// Resource limits and gains. Gains are scaled by the unit's multipliers.
const (
	MaxConcentration         = 1000
	MaxRage                  = 1000
	ConcentrationPerAction   = 10
	ConcentrationPerReceived = 5
	RagePerAction            = 7
	RagePerReceived          = 3

	// HealMultiplier scales the healer's damage into default heal power.
	HealMultiplier = 1.2
)

// UnitParams holds the values of a unit built directly rather than from a
// definition map. Zero Life means full life.
type UnitParams struct {
	ID                      string
	Name                    string
	Level                   int
	Avatar                  string
	Life                    int
	TotalLife               int
	Mana                    int
	TotalMana               int
	Melee                   bool
	Side                    Side
	Offense                 Offense
	Defense                 Defense
	Race                    Race
	Class                   *Class
	ConcentrationMultiplier float64
	RageMultiplier          float64
}

// Unit is one combatant. Its state only changes through ApplyAction, Act,
// and NewRound.
type Unit struct {
	id        string
	name      string
	level     int
	avatar    string
	life      int
	totalLife int
	mana      int
	totalMana int
	melee     bool
	side      Side
	offense   Offense
	defense   Defense
	race      Race
	class     *Class

	concentration           int
	rage                    int
	concentrationMultiplier float64
	rageMultiplier          float64

	effects *EffectCollection
	acted   bool
}

// NewUnit builds a unit, clamping life and mana into their ranges.
func NewUnit(p UnitParams) *Unit {
	if p.TotalLife < 1 {
		p.TotalLife = 1
	}
	if p.Life == 0 {
		p.Life = p.TotalLife
	}
	if p.Level < 1 {
		p.Level = 1
	}
	if p.ConcentrationMultiplier == 0 {
		p.ConcentrationMultiplier = 1
	}
	if p.RageMultiplier == 0 {
		p.RageMultiplier = 1
	}
	if p.Race.ID == 0 {
		p.Race = races[RaceHuman]
	}
	return &Unit{
		id:                      p.ID,
		name:                    p.Name,
		level:                   p.Level,
		avatar:                  p.Avatar,
		life:                    clampInt(p.Life, 0, p.TotalLife),
		totalLife:               p.TotalLife,
		mana:                    clampInt(p.Mana, 0, max(p.TotalMana, 0)),
		totalMana:               max(p.TotalMana, 0),
		melee:                   p.Melee,
		side:                    p.Side,
		offense:                 p.Offense,
		defense:                 p.Defense,
		race:                    p.Race,
		class:                   p.Class,
		concentrationMultiplier: p.ConcentrationMultiplier,
		rageMultiplier:          p.RageMultiplier,
		effects:                 NewEffectCollection(),
	}
}

func (u *Unit) ID() string         { return u.id }
func (u *Unit) Name() string       { return u.name }
func (u *Unit) Level() int         { return u.level }
func (u *Unit) Avatar() string     { return u.avatar }
func (u *Unit) Life() int          { return u.life }
func (u *Unit) TotalLife() int     { return u.totalLife }
func (u *Unit) Mana() int          { return u.mana }
func (u *Unit) TotalMana() int     { return u.totalMana }
func (u *Unit) Melee() bool        { return u.melee }
func (u *Unit) Side() Side         { return u.side }
func (u *Unit) Offense() Offense   { return u.offense }
func (u *Unit) Defense() Defense   { return u.defense }
func (u *Unit) Race() Race         { return u.race }
func (u *Unit) Class() *Class      { return u.class }
func (u *Unit) Concentration() int { return u.concentration }
func (u *Unit) Rage() int          { return u.rage }

// Effects returns the effects the unit currently holds.
func (u *Unit) Effects() *EffectCollection { return u.effects }

// Acted reports whether the unit has used its turn this round.
func (u *Unit) Acted() bool { return u.acted }

// Alive reports whether the unit has life left.
func (u *Unit) Alive() bool { return u.life > 0 }

// Wounded reports whether a living unit is below total life.
func (u *Unit) Wounded() bool { return u.life > 0 && u.life < u.totalLife }

// Clone returns a copy with its own effect collection, used as the template
// of summoned units.
func (u *Unit) Clone() *Unit {
	cp := *u
	cp.effects = u.effects.Clone()
	return &cp
}

// lifeRatio is used to pick the most wounded ally.
func (u *Unit) lifeRatio() float64 {
	return float64(u.life) / float64(u.totalLife)
}

// NewRound clears the acted flag and ticks the unit's effects. The caller
// executes the returned actions in order.
func (u *Unit) NewRound() *ActionCollection {
	u.acted = false
	return u.effects.NextRound()
}

// Act returns what the unit does this turn: a ready class ability when its
// resource is full and one of its actions is usable, otherwise default
// attacks per attack speed. A unit that rolls zero attacks waits.
func (u *Unit) Act(arena *Arena) (*ActionCollection, error) {
	out := NewActionCollection()
	if !u.Alive() || u.acted {
		return out, nil
	}

	actions, ok, err := u.readyAbility(arena)
	if err != nil {
		return nil, err
	}
	if ok {
		u.acted = true
		return actions, nil
	}

	attacks := u.attackCount()
	if attacks == 0 {
		out.Add(NewWaitAction(arena, u, Presentation{}))
	}
	for i := 0; i < attacks; i++ {
		out.Add(u.defaultAttack(arena))
	}
	u.acted = true
	u.addPerformed()
	return out, nil
}

func (u *Unit) defaultAttack(arena *Arena) Action {
	return NewDamageAction(arena, u, DamageParams{
		Mode:         TargetRandomEnemy,
		CanBeAvoided: true,
	})
}

// readyAbility builds the first class ability whose resource is full and
// which has at least one usable action. Unusable actions are replaced by a
// default attack; the resource is spent only when the ability fires.
func (u *Unit) readyAbility(arena *Arena) (*ActionCollection, bool, error) {
	if u.class == nil {
		return nil, false, nil
	}
	for _, ability := range u.class.Abilities {
		if !u.resourceFull(ability.Resource) {
			continue
		}
		actions, err := ability.Build(arena, u)
		if err != nil {
			return nil, false, err
		}
		out := NewActionCollection()
		usable := 0
		for _, action := range actions.Values() {
			if action.CanBeUsed() {
				out.Add(action)
				usable++
				continue
			}
			out.Add(u.defaultAttack(arena))
		}
		if usable == 0 {
			continue
		}
		u.spendResource(ability.Resource)
		return out, true, nil
	}
	return nil, false, nil
}

func (u *Unit) attackCount() int {
	speed := u.offense.AttackSpeed
	if speed <= 0 {
		return 0
	}
	whole, frac := math.Modf(speed)
	count := int(whole)
	if frac > 0 && random.Float64() < frac {
		count++
	}
	return count
}

func (u *Unit) resourceFull(resource Resource) bool {
	switch resource {
	case ResourceConcentration:
		return u.concentration >= MaxConcentration
	case ResourceRage:
		return u.rage >= MaxRage
	default:
		return false
	}
}

func (u *Unit) spendResource(resource Resource) {
	switch resource {
	case ResourceConcentration:
		u.concentration = 0
	case ResourceRage:
		u.rage = 0
	}
}

// addPerformed adds the resources earned by acting.
func (u *Unit) addPerformed() {
	u.addConcentration(ConcentrationPerAction)
	u.addRage(RagePerAction)
}

// addReceived adds the resources earned by being the target of an action.
func (u *Unit) addReceived() {
	u.addConcentration(ConcentrationPerReceived)
	u.addRage(RagePerReceived)
}

func (u *Unit) addConcentration(base int) {
	gain := int(math.Round(float64(base) * u.concentrationMultiplier))
	u.concentration = clampInt(u.concentration+gain, 0, MaxConcentration)
}

func (u *Unit) addRage(base int) {
	gain := int(math.Round(float64(base) * u.rageMultiplier))
	u.rage = clampInt(u.rage+gain, 0, MaxRage)
}
