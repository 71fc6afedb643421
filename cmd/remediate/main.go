package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fieldservice/internal/config"
	"github.com/GlebRadaev/fieldservice/internal/remediation"
	"github.com/GlebRadaev/fieldservice/pkg/clients"
	"github.com/GlebRadaev/fieldservice/pkg/logger"
)

type options struct {
	url      string
	token    string
	login    string
	password string
	plan     string
	logLvl   string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "remediate",
		Short: "Force-close stuck field service orders",
		Long: `remediate drives each order of a plan through nominate, accept, log,
complete-work and complete. Steps the order is already past are skipped:
orders in review are only completed and work logged by an earlier run is
not logged again, so a plan can be rerun safely.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.url, "url", "http://localhost:8080", "API base url")
	cmd.Flags().StringVar(&opts.token, "token", os.Getenv("FIELDSERVICE_TOKEN"), "operator bearer token")
	cmd.Flags().StringVar(&opts.login, "login", "", "operator login, used when no token is given")
	cmd.Flags().StringVar(&opts.password, "password", os.Getenv("FIELDSERVICE_PASSWORD"), "operator password")
	cmd.Flags().StringVar(&opts.plan, "plan", "", "JSON file with the orders to close")
	cmd.Flags().StringVar(&opts.logLvl, "log-level", "info", "log level")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	if err := logger.InitLogger(&config.Config{LogLvl: opts.logLvl}); err != nil {
		return err
	}
	defer zap.L().Sync()

	items, err := readPlan(opts.plan)
	if err != nil {
		return err
	}

	runner := remediation.New(clients.NewHTTPClient(), opts.url, opts.token)
	if opts.token == "" {
		if opts.login == "" {
			return fmt.Errorf("either --token or --login is required")
		}
		if err := runner.SignIn(opts.login, opts.password); err != nil {
			return err
		}
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	zap.L().Info("remediation started", zap.String("runId", runner.RunID()), zap.Int("orders", len(items)))
	report := runner.Run(ctx, items)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return err
	}
	if report.Failed > 0 {
		return fmt.Errorf("%d of %d orders could not be closed", report.Failed, len(items))
	}
	return nil
}

func readPlan(path string) ([]remediation.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read plan: %w", err)
	}
	var items []remediation.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("can't parse plan %s: %w", path, err)
	}
	return items, nil
}

