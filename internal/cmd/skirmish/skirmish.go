// Package skirmish wires the battle simulator command: it loads a roster
// from a definitions file or the unit store, runs the battle, and prints
// the log.
package skirmish

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/louisbranch/skirmish/internal/content"
	platformcmd "github.com/louisbranch/skirmish/internal/platform/cmd"
	"github.com/louisbranch/skirmish/internal/random"
	"github.com/louisbranch/skirmish/internal/simulate"
	"github.com/louisbranch/skirmish/internal/storage"
	"github.com/louisbranch/skirmish/internal/storage/sqlite"
)

// Config holds skirmish command configuration.
type Config struct {
	Definitions string `env:"SKIRMISH_DEFINITIONS"`
	DBPath      string `env:"SKIRMISH_DB_PATH"`
	Import      bool   `env:"SKIRMISH_IMPORT"`
	Seed        int64  `env:"SKIRMISH_SEED"`
	MaxRounds   int    `env:"SKIRMISH_MAX_ROUNDS" envDefault:"100"`
	Quiet       bool   `env:"SKIRMISH_QUIET"`
}

// ParseConfig reads environment defaults and lets flags override them.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Definitions, "definitions", cfg.Definitions, "path to a roster file (.lua or .json)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to the unit store database")
	fs.BoolVar(&cfg.Import, "import", cfg.Import, "store the definitions file in the unit store before fighting")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one)")
	fs.IntVar(&cfg.MaxRounds, "max-rounds", cfg.MaxRounds, "round cap before the battle is called a draw")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "print only the result")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes one battle and writes its log to out. Domain failures are
// also reported on errOut with their status code and metadata.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	logger := log.New(errOut, platformcmd.LogPrefix(platformcmd.ServiceSkirmish), 0)
	if err := run(ctx, cfg, out, logger); err != nil {
		reportFailure(logger, err)
		return err
	}
	return nil
}

func run(ctx context.Context, cfg Config, out io.Writer, logger *log.Logger) error {
	seed, err := random.ParseSeed(cfg.Seed)
	if err != nil {
		return err
	}
	random.Seed(seed)
	logger.Printf("seed %d", seed)

	roster, err := loadRoster(ctx, cfg, logger)
	if err != nil {
		return err
	}
	arena, err := roster.Build()
	if err != nil {
		return fmt.Errorf("build arena: %w", err)
	}

	report, err := simulate.Run(ctx, arena, simulate.Options{MaxRounds: cfg.MaxRounds})
	if err != nil {
		return err
	}
	if !cfg.Quiet {
		for _, entry := range report.Log {
			fmt.Fprintf(out, "round %d: %s\n", entry.Round, entry.Description)
		}
	}
	if report.Decided {
		fmt.Fprintf(out, "%s wins after %d rounds\n", report.Winner, report.Rounds)
		return nil
	}
	fmt.Fprintf(out, "no winner after %d rounds\n", report.Rounds)
	return nil
}

func loadRoster(ctx context.Context, cfg Config, logger *log.Logger) (content.Roster, error) {
	definitions := strings.TrimSpace(cfg.Definitions)
	dbPath := strings.TrimSpace(cfg.DBPath)
	if definitions == "" && dbPath == "" {
		return content.Roster{}, errors.New("definitions path or db path is required")
	}
	if cfg.Import && (definitions == "" || dbPath == "") {
		return content.Roster{}, errors.New("import needs both definitions and db path")
	}

	var roster content.Roster
	if definitions != "" {
		loaded, err := content.Load(definitions)
		if err != nil {
			return content.Roster{}, err
		}
		roster = loaded
		if !cfg.Import {
			return roster, nil
		}
	}

	var store storage.RosterStore
	store, err := sqlite.Open(ctx, dbPath)
	if err != nil {
		return content.Roster{}, err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Printf("close store: %v", err)
		}
	}()

	if cfg.Import {
		if err := store.ImportRoster(ctx, roster); err != nil {
			return content.Roster{}, fmt.Errorf("import roster: %w", err)
		}
		logger.Printf("imported %d units into %s", len(roster.Left)+len(roster.Right), dbPath)
	}
	return store.Roster(ctx)
}
