// Package simulate runs a battle between the two commands of an arena
// round by round until one side is left standing or the round cap is hit.
package simulate

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/skirmish/internal/battle"
)

// DefaultMaxRounds caps battles when Options leaves MaxRounds unset.
const DefaultMaxRounds = 100

const tracerName = "github.com/louisbranch/skirmish/internal/simulate"

// Options controls a simulation.
type Options struct {
	MaxRounds int
}

// Entry is one line of the battle log.
type Entry struct {
	Round       int
	UnitID      string
	Description string
}

// Report summarizes a finished simulation.
type Report struct {
	Rounds  int
	Winner  battle.Side
	Decided bool
	Log     []Entry
}

// Run simulates the battle. Each round first ticks every unit's effects,
// then lets living units act in turn, alternating sides in roster order.
func Run(ctx context.Context, arena *battle.Arena, opts Options) (Report, error) {
	if arena == nil {
		return Report{}, fmt.Errorf("arena is required")
	}
	maxRounds := opts.MaxRounds
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "simulate.battle",
		trace.WithAttributes(
			attribute.Int("skirmish.units", len(arena.Units())),
			attribute.Int("skirmish.max_rounds", maxRounds),
		))
	defer span.End()

	s := &simulation{arena: arena}
	for round := 1; round <= maxRounds; round++ {
		if err := ctx.Err(); err != nil {
			return s.fail(span, err)
		}
		s.report.Rounds = round
		if err := s.round(ctx, round); err != nil {
			return s.fail(span, err)
		}
		if s.report.Decided {
			break
		}
	}
	span.SetAttributes(
		attribute.Int("skirmish.rounds", s.report.Rounds),
		attribute.Bool("skirmish.decided", s.report.Decided),
		attribute.String("skirmish.winner", string(s.report.Winner)),
	)
	return s.report, nil
}

type simulation struct {
	arena  *battle.Arena
	report Report
}

func (s *simulation) fail(span trace.Span, err error) (Report, error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return s.report, err
}

func (s *simulation) round(ctx context.Context, round int) error {
	_, span := otel.Tracer(tracerName).Start(ctx, "simulate.round",
		trace.WithAttributes(attribute.Int("skirmish.round", round)))
	defer span.End()

	for _, u := range s.arena.Units() {
		if err := s.execute(round, u, u.NewRound()); err != nil {
			return fmt.Errorf("round %d effects of %s: %w", round, u.ID(), err)
		}
	}
	if s.decided() {
		return nil
	}

	for _, u := range turnOrder(s.arena) {
		if !u.Alive() || u.Acted() {
			continue
		}
		actions, err := u.Act(s.arena)
		if err != nil {
			return fmt.Errorf("round %d turn of %s: %w", round, u.ID(), err)
		}
		if err := s.execute(round, u, actions); err != nil {
			return fmt.Errorf("round %d turn of %s: %w", round, u.ID(), err)
		}
		if s.decided() {
			break
		}
	}
	span.SetAttributes(attribute.Int("skirmish.log_entries", len(s.report.Log)))
	return nil
}

func (s *simulation) execute(round int, u *battle.Unit, actions *battle.ActionCollection) error {
	outcomes, err := battle.ExecuteAll(actions)
	for _, outcome := range outcomes {
		if outcome.Description == "" {
			continue
		}
		s.report.Log = append(s.report.Log, Entry{Round: round, UnitID: u.ID(), Description: outcome.Description})
	}
	return err
}

func (s *simulation) decided() bool {
	winner, ok := s.arena.Winner()
	if ok {
		s.report.Winner = winner
		s.report.Decided = true
	}
	return ok
}

// turnOrder alternates left and right units in roster order. Units
// summoned during the round join the order from the next round.
func turnOrder(arena *battle.Arena) []*battle.Unit {
	left := arena.Command(battle.SideLeft).Units()
	right := arena.Command(battle.SideRight).Units()
	order := make([]*battle.Unit, 0, len(left)+len(right))
	for i := 0; i < len(left) || i < len(right); i++ {
		if i < len(left) {
			order = append(order, left[i])
		}
		if i < len(right) {
			order = append(order, right[i])
		}
	}
	return order
}
