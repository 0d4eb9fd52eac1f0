package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rulebot/internal/app"
	"rulebot/internal/config"
	"rulebot/internal/inputprocessor"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "rulebot",
	Short: "Rule-based IT support bot",
	Long: `RuleBot maps a free-text support question to a canned troubleshooting
checklist using ordered keyword rules. Run it as an HTTP API with "serve" or
classify messages directly from the command line.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is given, print help.
		return cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" || cmd == cmd.Root() {
			return nil
		}

		cfg, err := config.LoadConfig(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		appInstance, err := app.NewApp(cfg, inputprocessor.New())
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cmd.SetContext(context.WithValue(ctx, appKey, appInstance))
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type contextKey string

const appKey contextKey = "app"

// GetAppFromContext returns the App stored by PersistentPreRunE.
func GetAppFromContext(ctx context.Context) (*app.App, error) {
	if ctx == nil {
		return nil, fmt.Errorf("application instance not found in context")
	}
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		return nil, fmt.Errorf("application instance not found in context")
	}
	return appInstance, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a config file (default: ./config.yaml or ~/.config/rulebot/config.yaml)")
}
