package simulate

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/louisbranch/skirmish/internal/battle"
)

func newArena(t *testing.T, left, right []*battle.Unit) *battle.Arena {
	t.Helper()
	l, err := battle.NewCommand(battle.SideLeft, left...)
	if err != nil {
		t.Fatalf("left: %v", err)
	}
	r, err := battle.NewCommand(battle.SideRight, right...)
	if err != nil {
		t.Fatalf("right: %v", err)
	}
	arena, err := battle.NewArena(l, r)
	if err != nil {
		t.Fatalf("arena: %v", err)
	}
	return arena
}

func fighter(id string, life, damage int, speed float64) *battle.Unit {
	return battle.NewUnit(battle.UnitParams{
		ID:        id,
		Name:      id,
		TotalLife: life,
		Offense:   battle.Offense{PhysicalDamage: damage, AttackSpeed: speed},
	})
}

func TestRunEndsWithWinner(t *testing.T) {
	arena := newArena(t,
		[]*battle.Unit{fighter("knight", 100, 50, 1)},
		[]*battle.Unit{fighter("goblin", 30, 5, 1)},
	)
	report, err := Run(context.Background(), arena, Options{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !report.Decided || report.Winner != battle.SideLeft {
		t.Fatalf("winner = %q decided = %v, want left", report.Winner, report.Decided)
	}
	if report.Rounds != 1 {
		t.Fatalf("rounds = %d, want 1", report.Rounds)
	}
	if len(report.Log) != 1 || report.Log[0].Description != "knight hits goblin for 30 damage" {
		t.Fatalf("log = %+v", report.Log)
	}
}

func TestRunStopsAtRoundCap(t *testing.T) {
	arena := newArena(t,
		[]*battle.Unit{fighter("statue", 100, 5, 0)},
		[]*battle.Unit{fighter("idol", 100, 5, 0)},
	)
	report, err := Run(context.Background(), arena, Options{MaxRounds: 3})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.Decided {
		t.Fatalf("winner = %q, want undecided", report.Winner)
	}
	if report.Rounds != 3 {
		t.Fatalf("rounds = %d, want 3", report.Rounds)
	}
	if len(report.Log) != 6 {
		t.Fatalf("log entries = %d, want 6 waits", len(report.Log))
	}
}

func TestRunAlternatesSides(t *testing.T) {
	arena := newArena(t,
		[]*battle.Unit{fighter("l1", 100, 1, 1), fighter("l2", 100, 1, 1)},
		[]*battle.Unit{fighter("r1", 100, 1, 1)},
	)
	report, err := Run(context.Background(), arena, Options{MaxRounds: 1})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var order []string
	for _, entry := range report.Log {
		order = append(order, entry.UnitID)
	}
	want := []string{"l1", "r1", "l2"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestRunHonorsCanceledContext(t *testing.T) {
	arena := newArena(t,
		[]*battle.Unit{fighter("a", 100, 1, 1)},
		[]*battle.Unit{fighter("b", 100, 1, 1)},
	)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, arena, Options{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want %v", err, context.Canceled)
	}
}

func TestRunRecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	arena := newArena(t,
		[]*battle.Unit{fighter("knight", 100, 50, 1)},
		[]*battle.Unit{fighter("goblin", 100, 5, 1)},
	)
	if _, err := Run(context.Background(), arena, Options{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	counts := map[string]int{}
	for _, span := range recorder.Ended() {
		counts[span.Name()]++
	}
	if counts["simulate.battle"] != 1 {
		t.Fatalf("battle spans = %d, want 1", counts["simulate.battle"])
	}
	if counts["simulate.round"] != 2 {
		t.Fatalf("round spans = %d, want 2", counts["simulate.round"])
	}
}

func TestRunParalyzedUnitSkipsTurn(t *testing.T) {
	stunned := fighter("stunned", 100, 50, 1)
	dummy := fighter("dummy", 100, 5, 0)
	arena := newArena(t, []*battle.Unit{stunned}, []*battle.Unit{dummy})

	stun, err := battle.ActionFactory{}.Create(map[string]any{
		"type":        "effect",
		"type_target": "self",
		"effect": map[string]any{
			"name":                  "stun",
			"duration":              2.0,
			"on_next_round_actions": []any{map[string]any{"type": "paralysis"}},
		},
	}, arena, stunned)
	if err != nil {
		t.Fatalf("create stun: %v", err)
	}
	if _, err := battle.Execute(stun); err != nil {
		t.Fatalf("apply stun: %v", err)
	}

	report, err := Run(context.Background(), arena, Options{MaxRounds: 1})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []Entry{
		{Round: 1, UnitID: "stunned", Description: "stunned is paralyzed and skips the turn"},
		{Round: 1, UnitID: "dummy", Description: "dummy waits"},
	}
	if len(report.Log) != len(want) {
		t.Fatalf("log = %+v, want %+v", report.Log, want)
	}
	for i := range want {
		if report.Log[i] != want[i] {
			t.Fatalf("log[%d] = %+v, want %+v", i, report.Log[i], want[i])
		}
	}
	if dummy.Life() != 100 {
		t.Fatalf("dummy life = %d, want 100", dummy.Life())
	}
}
