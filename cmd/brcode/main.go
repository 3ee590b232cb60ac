package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mkadit/brcode/internal/config"
	"github.com/mkadit/brcode/internal/logger"
)

type app struct {
	cfg *config.Config
	log *zap.Logger
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "brcode",
		Short:         "Build and inspect PIX QR code payloads",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(&logger.Config{
				Level:      a.cfg.LogLevel,
				Filename:   a.cfg.LogFilename,
				MaxSize:    a.cfg.LogMaxSize,
				MaxBackups: a.cfg.LogMaxBackups,
				MaxAge:     a.cfg.LogMaxAge,
				Compress:   a.cfg.LogCompress,
			})
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.AddCommand(newGenerateCommand(a), newDecodeCommand(a))
	return root
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	a := &app{cfg: cfg, log: zap.NewNop()}
	if err := newRootCommand(a).Execute(); err != nil {
		a.log.Error("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
