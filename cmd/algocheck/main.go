// algocheck 运行算法库的自检场景：固定的端到端用例、与朴素实现的随机比对以及代数定律检查。
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/codes"

	"github.com/wyfcoding/algo/config"
	"github.com/wyfcoding/algo/logging"
	"github.com/wyfcoding/algo/verify"
	"github.com/wyfcoding/algo/xerrors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		scenarios  []string
	)

	cmd := &cobra.Command{
		Use:          "algocheck",
		Short:        "Run the self-check scenarios of the algorithm library",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config.RegisterReloadHook(func(c *config.Config) {
				slog.Info("config reloaded", "version", c.Version, "level", c.Log.Level)
			})

			// 热更新写入 loaded，本次运行只使用它的快照。
			loaded := config.Default()
			if configPath != "" {
				if err := config.Load(configPath, &loaded); err != nil {
					return err
				}
			}
			cfg := config.Snapshot(&loaded)
			if cmd.Flags().Changed("scenario") {
				cfg.Check.Scenarios = scenarios
			}

			logging.InitLogger(logging.Config{
				Service:    "algocheck",
				Module:     "verify",
				Level:      cfg.Log.Level,
				File:       cfg.Log.File,
				MaxSize:    cfg.Log.MaxSize,
				MaxBackups: cfg.Log.MaxBackups,
				MaxAge:     cfg.Log.MaxAge,
				Compress:   cfg.Log.Compress,
			})
			config.PrintWithMask(cfg)

			return run(cmd.Context(), cmd, cfg)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
	cmd.Flags().StringSliceVarP(&scenarios, "scenario", "s", nil, "scenario names to run (default: all)")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the built-in scenarios",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, s := range verify.Builtin() {
				fmt.Fprintln(cmd.OutOrStdout(), s.Name)
			}
		},
	})
	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, cfg config.Config) error {
	selected, err := verify.Select(verify.Builtin(), cfg.Check.Scenarios)
	if err != nil {
		return err
	}

	done := logging.LogDuration(ctx, "algocheck", "scenarios", len(selected), "seed", cfg.Check.Seed)
	runner := verify.Runner{Parallelism: cfg.Check.Parallelism, Timeout: cfg.Check.Timeout}
	results, runErr := runner.Run(ctx, cfg.Check, selected)
	done()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tSTATUS\tCODE\tDURATION")
	failed := 0
	for _, res := range results {
		status, code := "ok", codes.OK
		if res.Err != nil {
			status, code = "FAIL", codes.Unknown
			if e, ok := xerrors.FromError(res.Err); ok {
				code = e.GRPCCode()
			}
			failed++
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", res.Name, status, code, res.Duration)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if runErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d scenarios failed:\n%v\n", failed, len(results), runErr)
	}
	return runErr
}
