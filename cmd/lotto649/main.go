package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/kydenul/lotto649"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	configFlag  string
	countFlag   int
	noBonusFlag bool
	secureFlag  bool
	seedFlag    uint64
	quietFlag   bool
	statsFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "lotto649 [count]",
	Short: "Generate unique Lotto 6/49 tickets",
	Long: `lotto649 generates randomized lottery tickets: six distinct main numbers
from 1 to 49, sorted ascending, plus a bonus number distinct from the main
six. No two tickets in one run are identical.

The count argument selects how many tickets to generate (default 5). A count
that is not a positive integer is rejected.

Output is not suitable for gambling-stakes or cryptographic use.`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runGenerate,
}

func init() {
	rootCmd.Flags().StringVar(&configFlag, "config", "", "Path to a config file (default: standard search paths)")
	rootCmd.Flags().IntVar(&countFlag, "count", 0, "Number of tickets to generate (overrides the positional argument)")
	rootCmd.Flags().BoolVar(&noBonusFlag, "no-bonus", false, "Draw main numbers only, no bonus number")
	rootCmd.Flags().BoolVar(&secureFlag, "secure", false, "Draw from the platform CSPRNG behind the entropy breaker")
	rootCmd.Flags().Uint64Var(&seedFlag, "seed", 0, "Fixed engine seed for reproducible output")
	rootCmd.Flags().BoolVar(&quietFlag, "quiet", false, "Suppress log output")
	rootCmd.Flags().BoolVar(&statsFlag, "stats", false, "Print draw metrics to stderr after the run")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	var cm *lotto649.ConfigManager
	if configFlag != "" {
		cm = lotto649.NewConfigManagerWithFile(configFlag)
	} else {
		cm = lotto649.NewConfigManager()
	}

	cfg, err := cm.LoadConfig()
	if err != nil {
		return err
	}

	count, err := resolveCount(cmd, args, cfg)
	if err != nil {
		return err
	}

	if noBonusFlag {
		cfg.Lotto.Bonus = false
	}
	if secureFlag {
		cfg.Random.Source = lotto649.SourceSecure
	}

	var logger lotto649.Logger = &lotto649.DefaultLogger{}
	if quietFlag {
		logger = lotto649.NewSilentLogger()
	}

	gen, err := buildGenerator(cmd, cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = gen.GenerateWithProgress(ctx, count, func(completed, total int, ticket lotto649.Ticket) {
		fmt.Printf("Ticket %2d: %s\n", completed, ticket.Format())
	})
	if err != nil {
		return err
	}

	if statsFlag {
		printStats(gen.Metrics())
	}

	return nil
}

// resolveCount applies the count policy: the --count flag wins over the
// positional argument, which wins over the configured default. A present but
// non-numeric or non-positive value is an error, never a silent fallback.
func resolveCount(cmd *cobra.Command, args []string, cfg *lotto649.Config) (int, error) {
	count := cfg.Lotto.DefaultCount

	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return 0, fmt.Errorf("invalid ticket count %q: must be a positive integer", args[0])
		}
		count = n
	}

	if cmd.Flags().Changed("count") {
		if countFlag < 1 {
			return 0, fmt.Errorf("invalid ticket count %d: must be a positive integer", countFlag)
		}
		count = countFlag
	}

	return count, nil
}

// buildGenerator wires the random source. A fixed --seed pins the xorshift
// engine for reproducible runs and ignores the configured source.
func buildGenerator(cmd *cobra.Command, cfg *lotto649.Config, logger lotto649.Logger) (*lotto649.Generator, error) {
	if cmd.Flags().Changed("seed") {
		generatorConfig := &lotto649.GeneratorConfig{
			Rule:       cfg.Lotto.Rule(),
			MaxRetries: cfg.Lotto.MaxRetries,
		}
		return lotto649.NewGeneratorWithConfigAndLogger(lotto649.NewEngine(seedFlag), generatorConfig, logger)
	}

	return lotto649.NewGeneratorFromConfig(cfg, logger)
}

func printStats(m lotto649.DrawMetrics) {
	fmt.Fprintf(os.Stderr, "draws: %d  accepted: %d  duplicates: %d (%.2f%%)  entropy fallbacks: %d  avg draw: %s\n",
		m.TotalDraws, m.AcceptedTickets, m.DuplicateRejects, m.GetDuplicateRate(),
		m.EntropyFallbacks, time.Duration(m.AverageDrawTime))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
