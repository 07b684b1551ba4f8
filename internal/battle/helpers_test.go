package battle

import "testing"

func newTestUnit(id string, life, total int) *Unit {
	return NewUnit(UnitParams{
		ID:        id,
		Name:      id,
		Life:      life,
		TotalLife: total,
		Offense:   Offense{PhysicalDamage: 10, AttackSpeed: 1},
	})
}

func newTestArena(t *testing.T, left, right []*Unit) *Arena {
	t.Helper()
	l, err := NewCommand(SideLeft, left...)
	if err != nil {
		t.Fatalf("left command: %v", err)
	}
	r, err := NewCommand(SideRight, right...)
	if err != nil {
		t.Fatalf("right command: %v", err)
	}
	arena, err := NewArena(l, r)
	if err != nil {
		t.Fatalf("arena: %v", err)
	}
	return arena
}

func kill(u *Unit) { u.life = 0 }
