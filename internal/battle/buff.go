package battle

import (
	"math"
	"sort"
	"strings"
)

// BuffStat names a stat a buff multiplies.
type BuffStat string

const (
	BuffMaxLife        BuffStat = "max_life"
	BuffMaxMana        BuffStat = "max_mana"
	BuffPhysicalDamage BuffStat = "physical_damage"
	BuffMagicDamage    BuffStat = "magic_damage"
	BuffAttackSpeed    BuffStat = "attack_speed"
	BuffAccuracy       BuffStat = "accuracy"
	BuffCriticalChance BuffStat = "critical_chance"
	BuffBlock          BuffStat = "block"
	BuffDodge          BuffStat = "dodge"
	BuffPhysicalResist BuffStat = "physical_resist"
	BuffMagicResist    BuffStat = "magic_resist"
)

const (
	modifyMethodPrefix = "multiplier_"
	rollbackSuffix     = "_rollback"
)

// statAccessor reads and writes one buffable stat. set clamps the value
// into the stat's range; the buff records the delta that actually landed.
type statAccessor struct {
	get func(u *Unit) float64
	set func(u *Unit, v float64)
}

var buffStats = map[BuffStat]statAccessor{
	BuffMaxLife: {
		get: func(u *Unit) float64 { return float64(u.totalLife) },
		set: func(u *Unit, v float64) {
			total := max(int(math.Round(v)), 1)
			if gained := total - u.totalLife; gained > 0 && u.Alive() {
				u.life += gained
			}
			u.totalLife = total
			u.life = clampInt(u.life, 0, u.totalLife)
		},
	},
	BuffMaxMana: {
		get: func(u *Unit) float64 { return float64(u.totalMana) },
		set: func(u *Unit, v float64) {
			total := max(int(math.Round(v)), 0)
			if gained := total - u.totalMana; gained > 0 {
				u.mana += gained
			}
			u.totalMana = total
			u.mana = clampInt(u.mana, 0, u.totalMana)
		},
	},
	BuffPhysicalDamage: intStat(func(u *Unit) *int { return &u.offense.PhysicalDamage }, 0, math.MaxInt32),
	BuffMagicDamage:    intStat(func(u *Unit) *int { return &u.offense.MagicDamage }, 0, math.MaxInt32),
	BuffAttackSpeed: {
		get: func(u *Unit) float64 { return u.offense.AttackSpeed },
		set: func(u *Unit, v float64) { u.offense.AttackSpeed = math.Max(v, 0) },
	},
	BuffAccuracy:       intStat(func(u *Unit) *int { return &u.offense.Accuracy }, 0, 100),
	BuffCriticalChance: intStat(func(u *Unit) *int { return &u.offense.CriticalChance }, 0, 100),
	BuffBlock:          intStat(func(u *Unit) *int { return &u.defense.Block }, 0, 100),
	BuffDodge:          intStat(func(u *Unit) *int { return &u.defense.Dodge }, 0, 100),
	BuffPhysicalResist: intStat(func(u *Unit) *int { return &u.defense.PhysicalResist }, 0, 100),
	BuffMagicResist:    intStat(func(u *Unit) *int { return &u.defense.MagicResist }, 0, 100),
}

func intStat(field func(u *Unit) *int, lo, hi int) statAccessor {
	return statAccessor{
		get: func(u *Unit) float64 { return float64(*field(u)) },
		set: func(u *Unit, v float64) { *field(u) = clampInt(int(math.Round(v)), lo, hi) },
	}
}

// ParseModifyMethod maps a modify method such as "multiplier_max_life" to its stat.
func ParseModifyMethod(method string) (BuffStat, bool) {
	stat := BuffStat(strings.TrimPrefix(method, modifyMethodPrefix))
	if !strings.HasPrefix(method, modifyMethodPrefix) {
		return "", false
	}
	_, ok := buffStats[stat]
	return stat, ok
}

// ModifyMethods lists the accepted modify methods in sorted order.
func ModifyMethods() []string {
	out := make([]string, 0, len(buffStats))
	for stat := range buffStats {
		out = append(out, modifyMethodPrefix+string(stat))
	}
	sort.Strings(out)
	return out
}

// multiply applies power percent to stat and returns the delta that landed.
func (s statAccessor) multiply(u *Unit, power int) float64 {
	before := s.get(u)
	s.set(u, before*float64(power)/100)
	return s.get(u) - before
}

// rollback removes a previously landed delta.
func (s statAccessor) rollback(u *Unit, delta float64) {
	s.set(u, s.get(u)-delta)
}
