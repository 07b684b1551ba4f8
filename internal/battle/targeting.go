package battle

import (
	"github.com/louisbranch/skirmish/internal/random"
)

// resolveTargets applies a targeting mode against the live rosters. Every
// call re-reads the commands. Random modes pick one unit; wounded_allies
// picks the lowest life ratio; dead_allies picks the first dead ally in
// roster order.
func resolveTargets(arena *Arena, actor *Unit, mode TargetMode) []*Unit {
	switch mode {
	case TargetSelf:
		if !actor.Alive() {
			return nil
		}
		return []*Unit{actor}
	case TargetRandomEnemy:
		return pickOne(arena.Enemies(actor).Living())
	case TargetAllEnemies:
		return arena.Enemies(actor).Living()
	case TargetWoundedAllies:
		return mostWounded(arena.Allies(actor).Wounded())
	case TargetDeadAllies:
		dead := arena.Allies(actor).Dead()
		if len(dead) == 0 {
			return nil
		}
		return dead[:1]
	default:
		return nil
	}
}

// resolveDamageTargets applies the front-line rule: a melee attacker facing
// living enemy melee units may only hit those.
func resolveDamageTargets(arena *Arena, actor *Unit, mode TargetMode) ([]*Unit, error) {
	if mode == TargetSelf {
		return resolveTargets(arena, actor, mode), nil
	}
	enemies := arena.Enemies(actor)
	if !enemies.HasLiving() {
		return nil, ErrNoDefined
	}
	var targets []*Unit
	switch mode {
	case TargetRandomEnemy:
		pool := enemies.Living()
		if actor.melee && enemies.HasLivingMelee() {
			pool = enemies.LivingMelee()
		}
		targets = pickOne(pool)
	default:
		targets = resolveTargets(arena, actor, mode)
	}
	if len(targets) == 0 {
		return nil, ErrNoDefinedAgain
	}
	return targets, nil
}

func pickOne(units []*Unit) []*Unit {
	u, ok := random.Pick(units)
	if !ok {
		return nil
	}
	return []*Unit{u}
}

func mostWounded(units []*Unit) []*Unit {
	if len(units) == 0 {
		return nil
	}
	best := units[0]
	for _, u := range units[1:] {
		if u.lifeRatio() < best.lifeRatio() {
			best = u
		}
	}
	return []*Unit{best}
}
