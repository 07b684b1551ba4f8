package content

import (
	"fmt"
	"math"
	"strings"

	lua "github.com/Shopify/go-lua"

	"github.com/louisbranch/skirmish/internal/battle"
)

// LoadLua runs a Lua roster file. The script returns a table with left and
// right lists of unit tables.
func LoadLua(path string) (Roster, error) {
	state := newState()
	if err := lua.LoadFile(state, path, ""); err != nil {
		return Roster{}, fmt.Errorf("load roster script: %w", err)
	}
	return runRoster(state)
}

// ParseLua runs a Lua roster script held in memory.
func ParseLua(src string) (Roster, error) {
	state := newState()
	if err := lua.LoadString(state, src); err != nil {
		return Roster{}, fmt.Errorf("load roster script: %w", err)
	}
	return runRoster(state)
}

func newState() *lua.State {
	state := lua.NewState()
	lua.OpenLibraries(state)
	registerRaces(state)
	return state
}

// registerRaces exposes race ids as the global Race table, e.g. Race.ORC.
func registerRaces(state *lua.State) {
	state.NewTable()
	for id := battle.RaceHuman; id <= battle.RaceDemon; id++ {
		race, ok := battle.RaceByID(id)
		if !ok {
			continue
		}
		state.PushInteger(race.ID)
		state.SetField(-2, strings.ToUpper(race.Name))
	}
	state.SetGlobal("Race")
}

func runRoster(state *lua.State) (Roster, error) {
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return Roster{}, fmt.Errorf("run roster script: %w", err)
	}
	if state.TypeOf(-1) != lua.TypeTable {
		state.Pop(1)
		return Roster{}, fmt.Errorf("roster script must return a table")
	}
	doc := tableToMap(state, -1)
	state.Pop(1)
	return rosterFromMap(doc)
}

func tableToMap(state *lua.State, index int) map[string]any {
	output := map[string]any{}
	if state.TypeOf(index) != lua.TypeTable {
		return output
	}
	index = state.AbsIndex(index)
	state.PushNil()
	for state.Next(index) {
		if state.TypeOf(-2) == lua.TypeString {
			key, _ := state.ToString(-2)
			output[key] = luaToGo(state, -1)
		}
		state.Pop(1)
	}
	return output
}

func luaToGo(state *lua.State, index int) any {
	switch state.TypeOf(index) {
	case lua.TypeString:
		value, _ := state.ToString(index)
		return value
	case lua.TypeNumber:
		value, _ := state.ToNumber(index)
		return normalizeNumber(value)
	case lua.TypeBoolean:
		return state.ToBoolean(index)
	case lua.TypeTable:
		return tableToGo(state, index)
	default:
		return nil
	}
}

// tableToGo returns a []any for sequences 1..n and a map otherwise.
func tableToGo(state *lua.State, index int) any {
	index = state.AbsIndex(index)
	sequence := true
	maxIndex, count := 0, 0
	state.PushNil()
	for state.Next(index) {
		if sequence {
			idx, ok := state.ToInteger(-2)
			if state.TypeOf(-2) != lua.TypeNumber || !ok || idx < 1 {
				sequence = false
			} else {
				count++
				maxIndex = max(maxIndex, idx)
			}
		}
		state.Pop(1)
	}
	if !sequence || count == 0 || maxIndex != count {
		return tableToMap(state, index)
	}
	out := make([]any, 0, count)
	for i := 1; i <= count; i++ {
		state.RawGetInt(index, i)
		out = append(out, luaToGo(state, -1))
		state.Pop(1)
	}
	return out
}

func normalizeNumber(value float64) any {
	if math.Mod(value, 1) == 0 {
		return int(value)
	}
	return value
}
