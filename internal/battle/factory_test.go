package battle

import (
	"errors"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/skirmish/internal/platform/errors"
)

func TestActionFactoryErrors(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
		want error
	}{
		{"missing type", map[string]any{}, ErrActionMissingField},
		{"unknown type", map[string]any{"type": "dance"}, ErrUnknownActionType},
		{"type not a string", map[string]any{"type": 3.0}, ErrActionInvalidField},
		{"unknown target mode", map[string]any{"type": "damage", "type_target": "everyone"}, ErrActionInvalidField},
		{"fractional power", map[string]any{"type": "damage", "power": 12.5}, ErrActionInvalidField},
		{"buff without method", map[string]any{"type": "buff", "power": 120.0}, ErrActionMissingField},
		{"buff unknown method", map[string]any{"type": "buff", "power": 120.0, "modify_method": "multiplier_luck"}, ErrActionInvalidField},
		{"effect without table", map[string]any{"type": "effect"}, ErrActionMissingField},
		{"effect without duration", map[string]any{"type": "effect", "effect": map[string]any{"name": "x"}}, ErrEffectMissingField},
		{"effect zero duration", map[string]any{"type": "effect", "effect": map[string]any{"name": "x", "duration": 0.0}}, ErrEffectInvalidField},
		{"effect unknown rebind", map[string]any{"type": "effect", "effect": map[string]any{"name": "x", "duration": 1.0, "rebind": "target"}}, ErrEffectInvalidField},
		{"effect broken action", map[string]any{"type": "effect", "effect": map[string]any{"name": "x", "duration": 1.0, "on_apply_actions": []any{map[string]any{"type": "nap"}}}}, ErrUnknownActionType},
		{"resurrection power zero", map[string]any{"type": "resurrection", "power": 0.0}, ErrInvalidResurrectedPower},
		{"resurrection without power", map[string]any{"type": "resurrection"}, ErrActionMissingField},
		{"mana restore on enemy", map[string]any{"type": "mana_restore", "power": 5.0, "type_target": "random_enemy"}, ErrInvalidManaRestoreTarget},
		{"summon without unit", map[string]any{"type": "summon"}, ErrActionMissingField},
		{"summon incomplete unit", map[string]any{"type": "summon", "summon": map[string]any{"name": "wolf"}}, ErrUnitMissingField},
	}
	actor := newTestUnit("alice", 100, 100)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ActionFactory{}.Create(tt.data, nil, actor)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestActionFactoryBuildsDamage(t *testing.T) {
	actor := newTestUnit("alice", 100, 100)
	action, err := ActionFactory{}.Create(map[string]any{
		"type":             "damage",
		"name":             "slash",
		"icon":             "sword.png",
		"animation_method": "swing",
		"message_method":   "slash",
		"power":            20.0,
	}, nil, actor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	damage, ok := action.(*DamageAction)
	if !ok {
		t.Fatalf("action = %T, want *DamageAction", action)
	}
	if damage.Power() != 20 || damage.Name() != "slash" || damage.Icon() != "sword.png" || damage.AnimationMethod() != "swing" {
		t.Fatalf("damage = %+v", damage.presentation)
	}
	if !damage.CanBeAvoided() {
		t.Fatal("expected damage to be avoidable by default")
	}
	if damage.TargetMode() != TargetRandomEnemy {
		t.Fatalf("mode = %s, want %s", damage.TargetMode(), TargetRandomEnemy)
	}
	if damage.ActorID() != "alice" {
		t.Fatalf("actor = %s, want alice", damage.ActorID())
	}
}

func TestSummonGeneratesIDAndJoinsAllies(t *testing.T) {
	druid := newTestUnit("druid", 100, 100)
	arena := newTestArena(t, []*Unit{druid}, []*Unit{newTestUnit("orc", 100, 100)})

	action := createAction(t, map[string]any{
		"type":   "summon",
		"summon": map[string]any{"name": "wolf", "total_life": 30.0, "melee": true},
	}, arena, druid)
	summon := action.(*SummonAction)
	id := summon.Unit().ID()
	if !strings.HasPrefix(id, "summon_") || len(id) != len("summon_")+8 {
		t.Fatalf("id = %q, want summon_ and eight characters", id)
	}
	if !action.CanBeUsed() {
		t.Fatal("expected summon to be usable")
	}
	outcome, err := action.Handle()
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	wolf, ok := arena.Unit(id)
	if !ok {
		t.Fatal("expected wolf in arena")
	}
	if wolf.Side() != SideLeft {
		t.Fatalf("side = %s, want %s", wolf.Side(), SideLeft)
	}
	if arena.Command(SideLeft).Count() != 2 {
		t.Fatalf("left count = %d, want 2", arena.Command(SideLeft).Count())
	}
	if outcome.Description != "druid summons wolf" {
		t.Fatalf("description = %q", outcome.Description)
	}
	if action.CanBeUsed() {
		t.Fatal("expected second summon of the same unit to be unusable")
	}
}

func TestNewUnitFromMap(t *testing.T) {
	u, err := NewUnitFromMap(map[string]any{
		"id":                  "hero",
		"name":                "Hero",
		"level":               12.0,
		"total_life":          150.0,
		"life":                130.0,
		"total_mana":          40.0,
		"melee":               true,
		"race":                3.0,
		"command":             "left",
		"add_rage_multiplier": 1.5,
		"offense":             map[string]any{"physical_damage": 20.0, "attack_speed": 1.5},
		"defense":             map[string]any{"block": 10.0},
		"class": map[string]any{
			"id":   "warrior",
			"name": "Warrior",
			"abilities": []any{
				map[string]any{"name": "cleave", "resource": "rage", "actions": []any{
					map[string]any{"type": "damage", "type_target": "all_enemies"},
				}},
			},
		},
	})
	if err != nil {
		t.Fatalf("new unit: %v", err)
	}
	if u.Life() != 130 || u.TotalLife() != 150 || u.Mana() != 40 {
		t.Fatalf("life/mana = %d/%d %d", u.Life(), u.TotalLife(), u.Mana())
	}
	if u.Race().Name != "orc" || !u.Melee() || u.Level() != 12 || u.Side() != SideLeft {
		t.Fatalf("unit = %+v", u)
	}
	if u.Offense().AttackSpeed != 1.5 || u.Defense().Block != 10 {
		t.Fatalf("stats = %+v %+v", u.Offense(), u.Defense())
	}
	if u.Class() == nil || len(u.Class().Abilities) != 1 || u.Class().Abilities[0].Resource != ResourceRage {
		t.Fatalf("class = %+v", u.Class())
	}
}

func TestNewUnitFromMapExplicitZeroLifeIsDead(t *testing.T) {
	u, err := NewUnitFromMap(map[string]any{"id": "ghost", "name": "Ghost", "total_life": 10.0, "life": 0.0})
	if err != nil {
		t.Fatalf("new unit: %v", err)
	}
	if u.Alive() {
		t.Fatalf("life = %d, want 0", u.Life())
	}
}

func TestNewUnitFromMapErrors(t *testing.T) {
	base := func(overrides map[string]any) map[string]any {
		data := map[string]any{"id": "hero", "name": "Hero", "total_life": 100.0}
		for k, v := range overrides {
			data[k] = v
		}
		return data
	}
	tests := []struct {
		name      string
		data      map[string]any
		want      error
		wantField string
	}{
		{"missing id", map[string]any{"name": "Hero", "total_life": 100.0}, ErrUnitMissingField, "id"},
		{"missing total life", map[string]any{"id": "hero", "name": "Hero"}, ErrUnitMissingField, "total_life"},
		{"level too high", base(map[string]any{"level": 101.0}), ErrUnitInvalidField, "level"},
		{"life above total", base(map[string]any{"life": 101.0}), ErrUnitInvalidField, "life"},
		{"multiplier too high", base(map[string]any{"add_concentration_multiplier": 11.0}), ErrUnitInvalidField, "add_concentration_multiplier"},
		{"unknown race", base(map[string]any{"race": 9.0}), ErrUnitInvalidField, "race"},
		{"unknown command", base(map[string]any{"command": "center"}), ErrUnitInvalidField, "command"},
		{"dodge too high", base(map[string]any{"defense": map[string]any{"dodge": 150.0}}), ErrUnitInvalidField, "dodge"},
		{"bad resource", base(map[string]any{"class": map[string]any{"abilities": []any{map[string]any{"name": "x", "resource": "mana"}}}}), ErrUnitInvalidField, "resource"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUnitFromMap(tt.data)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			var domainErr *apperrors.Error
			if !errors.As(err, &domainErr) {
				t.Fatalf("err = %T, want *errors.Error", err)
			}
			if domainErr.Metadata["Field"] != tt.wantField {
				t.Fatalf("field = %q, want %q", domainErr.Metadata["Field"], tt.wantField)
			}
		})
	}
}

func TestNewUnitFromMapRangeMetadata(t *testing.T) {
	_, err := NewUnitFromMap(map[string]any{"id": "hero", "name": "Hero", "total_life": 100.0, "level": 0.0})
	var domainErr *apperrors.Error
	if !errors.As(err, &domainErr) {
		t.Fatalf("err = %v, want *errors.Error", err)
	}
	if domainErr.Metadata["Min"] != "1" || domainErr.Metadata["Max"] != "100" {
		t.Fatalf("metadata = %v, want Min 1 and Max 100", domainErr.Metadata)
	}
}

func TestNewUnitFromMapChecksAbilities(t *testing.T) {
	_, err := NewUnitFromMap(map[string]any{
		"id": "hero", "name": "Hero", "total_life": 100.0,
		"class": map[string]any{"abilities": []any{
			map[string]any{"name": "nap", "actions": []any{map[string]any{"type": "nap"}}},
		}},
	})
	if !errors.Is(err, ErrUnknownActionType) {
		t.Fatalf("err = %v, want %v", err, ErrUnknownActionType)
	}
}
