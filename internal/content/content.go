// Package content loads battle rosters from Lua scripts and JSON documents.
//
// A roster has a left and a right list of unit definitions. Each definition
// is the flat map accepted by battle.NewUnitFromMap.
package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/skirmish/internal/battle"
)

// Roster is the pair of unit definition lists for one battle.
type Roster struct {
	Left  []map[string]any
	Right []map[string]any
}

// Load reads a roster file, choosing the decoder by extension.
func Load(path string) (Roster, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".lua":
		return LoadLua(path)
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return Roster{}, fmt.Errorf("read roster: %w", err)
		}
		return ParseJSON(data)
	default:
		return Roster{}, fmt.Errorf("unsupported roster format %q", filepath.Ext(path))
	}
}

// Build creates both commands and registers them in a new arena.
func (r Roster) Build() (*battle.Arena, error) {
	left, err := buildCommand(battle.SideLeft, r.Left)
	if err != nil {
		return nil, err
	}
	right, err := buildCommand(battle.SideRight, r.Right)
	if err != nil {
		return nil, err
	}
	return battle.NewArena(left, right)
}

func buildCommand(side battle.Side, defs []map[string]any) (*battle.Command, error) {
	command, err := battle.NewCommand(side)
	if err != nil {
		return nil, err
	}
	for i, def := range defs {
		unit, err := battle.NewUnitFromMap(def)
		if err != nil {
			return nil, fmt.Errorf("%s unit %d: %w", side, i, err)
		}
		if declared := unit.Side(); declared != "" && declared != side {
			return nil, fmt.Errorf("%s unit %s declares command %s", side, unit.ID(), declared)
		}
		if err := command.Add(unit); err != nil {
			return nil, err
		}
	}
	return command, nil
}

// rosterFromMap reads the left and right lists out of a decoded document.
func rosterFromMap(doc map[string]any) (Roster, error) {
	left, err := unitList(doc, "left")
	if err != nil {
		return Roster{}, err
	}
	right, err := unitList(doc, "right")
	if err != nil {
		return Roster{}, err
	}
	return Roster{Left: left, Right: right}, nil
}

func unitList(doc map[string]any, key string) ([]map[string]any, error) {
	raw, ok := doc[key]
	if !ok || raw == nil {
		return nil, fmt.Errorf("roster %s is required", key)
	}
	switch items := raw.(type) {
	case []any:
		out := make([]map[string]any, 0, len(items))
		for i, item := range items {
			unit, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("roster %s[%d] must be a table", key, i)
			}
			out = append(out, unit)
		}
		return out, nil
	case map[string]any:
		// Empty Lua tables decode as maps.
		if len(items) == 0 {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("roster %s must be a list", key)
}
