package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	Definitions string `env:"CMD_TEST_DEFINITIONS" envDefault:"roster.lua"`
	MaxRounds   int    `env:"CMD_TEST_MAX_ROUNDS" envDefault:"30"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("CMD_TEST_DEFINITIONS", "env.lua")
	t.Setenv("CMD_TEST_MAX_ROUNDS", "12")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := testConfig{}
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfg.Definitions, "definitions", cfg.Definitions, "definitions")
	fs.IntVar(&cfg.MaxRounds, "max-rounds", cfg.MaxRounds, "max rounds")

	if err := ParseArgs(fs, []string{"-definitions", "flag.json"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfg.Definitions != "flag.json" {
		t.Fatalf("expected flag value for definitions, got %q", cfg.Definitions)
	}
	if cfg.MaxRounds != 12 {
		t.Fatalf("expected env max rounds, got %d", cfg.MaxRounds)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	var cfg *testConfig
	if err := ParseConfig(cfg); err == nil {
		t.Fatal("expected nil target error")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestLogPrefix(t *testing.T) {
	if got := LogPrefix(ServiceSkirmish); got != "[SKIRMISH] " {
		t.Fatalf("prefix = %q, want %q", got, "[SKIRMISH] ")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceSkirmish, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryPropagatesRunError(t *testing.T) {
	t.Setenv("SKIRMISH_OTEL_ENDPOINT", "")
	want := errors.New("battle failed")
	err := RunWithTelemetry(context.Background(), ServiceSkirmish, func(context.Context) error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("error = %v, want %v", err, want)
	}
}
