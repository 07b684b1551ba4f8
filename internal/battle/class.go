package battle

// Resource gates when an ability may fire.
type Resource string

const (
	ResourceConcentration Resource = "concentration"
	ResourceRage          Resource = "rage"
)

// Class provides a unit's abilities.
type Class struct {
	ID        string
	Name      string
	Abilities []Ability
}

// Ability is a named set of action definitions fired when its resource is full.
// Definitions are validated when the owning unit is built and turned into live
// actions on every use.
type Ability struct {
	Name     string
	Resource Resource
	Actions  []map[string]any
}

// Build creates the ability's actions for actor.
func (a Ability) Build(arena *Arena, actor *Unit) (*ActionCollection, error) {
	out := NewActionCollection()
	factory := ActionFactory{}
	for _, def := range a.Actions {
		action, err := factory.Create(def, arena, actor)
		if err != nil {
			return nil, err
		}
		out.Add(action)
	}
	return out, nil
}
