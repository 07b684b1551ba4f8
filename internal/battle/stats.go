package battle

import "math"

// Offense describes how hard and how often a unit hits.
type Offense struct {
	PhysicalDamage int
	MagicDamage    int
	// AttackSpeed is the number of default attacks per turn. The fractional
	// part is the chance of one extra attack.
	AttackSpeed float64
	Accuracy    int
	// CriticalChance is a percentage.
	CriticalChance int
	// CriticalMultiplier is a percentage applied to critical hits, e.g. 150.
	CriticalMultiplier int
}

// Damage returns the unmitigated damage of one hit.
func (o Offense) Damage() int {
	return o.PhysicalDamage + o.MagicDamage
}

// Defense describes how a unit avoids and absorbs damage. All values are percentages.
type Defense struct {
	PhysicalResist int
	MagicResist    int
	Block          int
	Dodge          int
}

// Race is a cosmetic provider that may add resistances.
type Race struct {
	ID             int
	Name           string
	PhysicalResist int
	MagicResist    int
}

// Race ids.
const (
	RaceHuman = 1
	RaceElf   = 2
	RaceOrc   = 3
	RaceDwarf = 4
	RaceAngel = 5
	RaceDemon = 6
)

var races = map[int]Race{
	RaceHuman: {ID: RaceHuman, Name: "human"},
	RaceElf:   {ID: RaceElf, Name: "elf", MagicResist: 10},
	RaceOrc:   {ID: RaceOrc, Name: "orc", PhysicalResist: 10},
	RaceDwarf: {ID: RaceDwarf, Name: "dwarf", PhysicalResist: 5, MagicResist: 5},
	RaceAngel: {ID: RaceAngel, Name: "angel", MagicResist: 15},
	RaceDemon: {ID: RaceDemon, Name: "demon", PhysicalResist: 15},
}

// RaceByID looks up a built-in race.
func RaceByID(id int) (Race, bool) {
	race, ok := races[id]
	return race, ok
}

// MitigateDamage applies the target's resistances to one hit of offense.
// Physical and magic parts are resisted separately.
func MitigateDamage(offense Offense, defense Defense, race Race) int {
	physical := resist(offense.PhysicalDamage, defense.PhysicalResist+race.PhysicalResist)
	magic := resist(offense.MagicDamage, defense.MagicResist+race.MagicResist)
	return physical + magic
}

func resist(amount, percent int) int {
	if amount <= 0 {
		return 0
	}
	percent = clampInt(percent, 0, 100)
	return int(math.Round(float64(amount) * float64(100-percent) / 100))
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
