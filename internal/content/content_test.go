package content

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/louisbranch/skirmish/internal/battle"
)

func TestLoadLuaRoster(t *testing.T) {
	roster, err := Load(filepath.Join("testdata", "roster.lua"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(roster.Left) != 2 || len(roster.Right) != 1 {
		t.Fatalf("roster sizes = %d/%d, want 2/1", len(roster.Left), len(roster.Right))
	}
	arena, err := roster.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	grunt, ok := arena.Unit("grunt-1")
	if !ok {
		t.Fatal("expected grunt-1")
	}
	if grunt.Race().Name != "orc" || !grunt.Melee() || grunt.Defense().Block != 10 {
		t.Fatalf("grunt = race %s melee %v block %d", grunt.Race().Name, grunt.Melee(), grunt.Defense().Block)
	}
	paladin, _ := arena.Unit("paladin")
	if paladin.Offense().AttackSpeed != 1.5 || paladin.Side() != battle.SideRight {
		t.Fatalf("paladin = speed %v side %s", paladin.Offense().AttackSpeed, paladin.Side())
	}
	if paladin.Class() == nil || len(paladin.Class().Abilities) != 1 {
		t.Fatalf("paladin class = %+v", paladin.Class())
	}
}

func TestLoadJSONRoster(t *testing.T) {
	roster, err := Load(filepath.Join("testdata", "roster.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	arena, err := roster.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	ranger, ok := arena.Unit("ranger")
	if !ok {
		t.Fatal("expected ranger")
	}
	if ranger.Race().Name != "elf" || ranger.Offense().Accuracy != 20 || ranger.Defense().Dodge != 15 {
		t.Fatalf("ranger = %+v %+v", ranger.Offense(), ranger.Defense())
	}
	necro, _ := arena.Unit("necromancer")
	if necro.TotalMana() != 60 || necro.Mana() != 60 {
		t.Fatalf("mana = %d/%d, want 60/60", necro.Mana(), necro.TotalMana())
	}
}

func TestParseLuaErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", "return {"},
		{"runtime", "error('boom')"},
		{"not a table", "return 3"},
		{"missing right", "return { left = {} }"},
		{"left not a list", "return { left = 3, right = {} }"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLua(tt.src); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestParseLuaEmptySides(t *testing.T) {
	roster, err := ParseLua("return { left = {}, right = {} }")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(roster.Left) != 0 || len(roster.Right) != 0 {
		t.Fatalf("roster = %+v, want empty", roster)
	}
}

func TestBuildRejectsInvalidUnits(t *testing.T) {
	tests := []struct {
		name   string
		roster Roster
		want   error
	}{
		{
			name:   "missing field",
			roster: Roster{Left: []map[string]any{{"name": "nameless", "total_life": 10.0}}},
			want:   battle.ErrUnitMissingField,
		},
		{
			name: "duplicate across sides",
			roster: Roster{
				Left:  []map[string]any{{"id": "a", "name": "A", "total_life": 10.0}},
				Right: []map[string]any{{"id": "a", "name": "A", "total_life": 10.0}},
			},
			want: battle.ErrDuplicateUnit,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.roster.Build(); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBuildRejectsMismatchedCommand(t *testing.T) {
	roster := Roster{Left: []map[string]any{{"id": "a", "name": "A", "total_life": 10.0, "command": "right"}}}
	if _, err := roster.Build(); err == nil {
		t.Fatal("expected error for unit declaring the other command")
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	if _, err := Load("roster.yaml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestUnitJSONRoundTripKeepsNumbers(t *testing.T) {
	data, err := MarshalUnit(map[string]any{"id": "a", "total_life": 10, "offense": map[string]any{"attack_speed": 1.5}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	def, err := UnmarshalUnit(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	u, err := battle.NewUnitFromMap(map[string]any{"id": def["id"], "name": "A", "total_life": def["total_life"], "offense": def["offense"]})
	if err != nil {
		t.Fatalf("unit: %v", err)
	}
	if u.TotalLife() != 10 || u.Offense().AttackSpeed != 1.5 {
		t.Fatalf("unit = %d %v", u.TotalLife(), u.Offense().AttackSpeed)
	}
}
