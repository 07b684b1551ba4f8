package battle

import (
	"math"
)

// EffectFactory turns effect definition maps into effect templates.
type EffectFactory struct{}

// Create builds the effect described by data. Its actions are built for
// caster and rebound to the holder when the effect lands.
func (EffectFactory) Create(data map[string]any, arena *Arena, caster *Unit) (*Effect, error) {
	f := effectFields(data)
	p := EffectParams{
		Name:     f.str("name"),
		Icon:     f.optStr("icon", ""),
		Duration: f.integer("duration", 1, math.MaxInt32),
		Rebind:   RebindScope(f.optStr("rebind", string(RebindActor))),
	}
	if p.Rebind != RebindActor && p.Rebind != RebindNone {
		f.failInvalid("rebind", "must be actor or none", map[string]string{"Value": string(p.Rebind)})
	}
	lists := []struct {
		key  string
		dest **ActionCollection
	}{
		{"on_apply_actions", &p.OnApply},
		{"on_next_round_actions", &p.OnNextRound},
		{"on_disable_actions", &p.OnDisable},
	}
	for _, l := range lists {
		defs := f.list(l.key)
		if f.err != nil {
			return nil, f.err
		}
		actions := NewActionCollection()
		for _, def := range defs {
			action, err := ActionFactory{}.Create(def, arena, caster)
			if err != nil {
				return nil, err
			}
			actions.Add(action)
		}
		*l.dest = actions
	}
	if f.err != nil {
		return nil, f.err
	}
	return NewEffect(p), nil
}
