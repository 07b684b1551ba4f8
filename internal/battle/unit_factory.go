package battle

import (
	"fmt"
	"math"
	"strconv"
)

// NewUnitFromMap builds a unit from a definition map. Class ability
// definitions are checked here so a broken roster fails before the battle
// starts. A missing life means full life; a missing command leaves the side
// to the command the unit joins.
func NewUnitFromMap(data map[string]any) (*Unit, error) {
	f := unitFields(data)
	p := UnitParams{
		ID:        f.str("id"),
		Name:      f.str("name"),
		Level:     f.optInt("level", 1, 1, 100),
		Avatar:    f.optStr("avatar", ""),
		TotalLife: f.integer("total_life", 1, math.MaxInt32),
		TotalMana: f.optInt("total_mana", 0, 0, math.MaxInt32),
		Melee:     f.boolean("melee", false),
		Side:      Side(f.optStr("command", "")),
	}
	life := f.optInt("life", p.TotalLife, 0, max(p.TotalLife, 0))
	p.Mana = f.optInt("mana", p.TotalMana, 0, max(p.TotalMana, 0))
	concentration := f.number("add_concentration_multiplier", 1, 0, 10)
	rage := f.number("add_rage_multiplier", 1, 0, 10)
	if p.Side != "" && !p.Side.Valid() {
		f.failInvalid("command", "must be left or right", map[string]string{"Value": string(p.Side)})
	}

	raceID := f.optInt("race", RaceHuman, RaceHuman, RaceDemon)
	p.Race, _ = RaceByID(raceID)

	offense := f.sub("offense")
	p.Offense = Offense{
		PhysicalDamage:     offense.optInt("physical_damage", 0, 0, math.MaxInt32),
		MagicDamage:        offense.optInt("magic_damage", 0, 0, math.MaxInt32),
		AttackSpeed:        offense.number("attack_speed", 1, 0, 10),
		Accuracy:           offense.optInt("accuracy", 0, 0, 100),
		CriticalChance:     offense.optInt("critical_chance", 0, 0, 100),
		CriticalMultiplier: offense.optInt("critical_multiplier", 150, 100, 1000),
	}
	if offense.err != nil {
		return nil, offense.err
	}
	defense := f.sub("defense")
	p.Defense = Defense{
		PhysicalResist: defense.optInt("physical_resist", 0, 0, 100),
		MagicResist:    defense.optInt("magic_resist", 0, 0, 100),
		Block:          defense.optInt("block", 0, 0, 100),
		Dodge:          defense.optInt("dodge", 0, 0, 100),
	}
	if defense.err != nil {
		return nil, defense.err
	}

	class, err := classFromMap(f.sub("class"))
	if err != nil {
		return nil, err
	}
	p.Class = class
	if f.err != nil {
		return nil, f.err
	}

	u := NewUnit(p)
	u.life = life
	u.concentrationMultiplier = concentration
	u.rageMultiplier = rage

	if class != nil {
		for _, ability := range class.Abilities {
			if _, err := ability.Build(nil, u); err != nil {
				return nil, fmt.Errorf("unit %s ability %s: %w", u.id, ability.Name, err)
			}
		}
	}
	return u, nil
}

func classFromMap(f *fields) (*Class, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.data == nil {
		return nil, nil
	}
	class := &Class{
		ID:   f.optStr("id", ""),
		Name: f.optStr("name", ""),
	}
	for i, def := range f.list("abilities") {
		af := &fields{scope: f.scope + ".abilities[" + strconv.Itoa(i) + "]", data: def, missing: f.missing, invalid: f.invalid}
		ability := Ability{
			Name:     af.str("name"),
			Resource: Resource(af.optStr("resource", string(ResourceConcentration))),
			Actions:  af.list("actions"),
		}
		if ability.Resource != ResourceConcentration && ability.Resource != ResourceRage {
			af.failInvalid("resource", "must be concentration or rage", map[string]string{"Value": string(ability.Resource)})
		}
		if af.err != nil {
			return nil, af.err
		}
		class.Abilities = append(class.Abilities, ability)
	}
	if f.err != nil {
		return nil, f.err
	}
	return class, nil
}
