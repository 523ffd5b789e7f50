package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"countdown-timer/internal/widget"
	"countdown-timer/internal/widget/sqlitestore"

	"github.com/spf13/cobra"
)

var (
	configPath string
	baseURL    string
	productID  string
	storePath  string
	interval   time.Duration
	debug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Show a product's active countdown timer in the terminal",
	Long: `countdown resolves the active timer for a product the same way the storefront widget does
and renders it on one terminal line until it expires or you interrupt it.

Evergreen expiries are kept in a SQLite file, so running it again continues the same window.`,
	Example: `  countdown --product-id gid://shopify/Product/1 --base-url https://timers.example.com
  countdown --config countdown.yaml --store /tmp/expiries.db`,
	RunE:          runCountdown,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.Flags().StringVar(&baseURL, "base-url", "", "Origin serving the timer API")
	rootCmd.Flags().StringVarP(&productID, "product-id", "p", "", "Product to show the countdown for")
	rootCmd.Flags().StringVar(&storePath, "store", "", "SQLite file holding evergreen expiries")
	rootCmd.Flags().DurationVar(&interval, "interval", 0, "Tick interval (default 1s)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

func runCountdown(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)
	if err := cfg.validate(); err != nil {
		return err
	}

	logger := newLogger(cfg.LogLevel)

	store, err := sqlitestore.Open(cfg.StorePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close expiry store", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	w := widget.New(widget.Config{
		BaseURL:      cfg.BaseURL,
		TickInterval: cfg.Interval,
		Logger:       logger,
	}, &terminalHost{out: out}, store)

	cd := w.Boot(ctx, cfg.ProductID)
	if cd == nil {
		fmt.Fprintln(out, "No active countdown for this product.")
		return nil
	}

	select {
	case <-cd.Done():
	case <-ctx.Done():
	}
	cd.Stop()

	if cd.State() == widget.StateExpired {
		fmt.Fprintln(out, "Offer expired.")
	} else {
		fmt.Fprintln(out)
	}
	return nil
}

// applyFlags lets explicitly set flags win over the config file.
func applyFlags(cmd *cobra.Command, cfg *Config) {
	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.BaseURL = baseURL
	}
	if flags.Changed("product-id") {
		cfg.ProductID = productID
	}
	if flags.Changed("store") {
		cfg.StorePath = storePath
	}
	if flags.Changed("interval") {
		cfg.Interval = interval
	}
	if debug {
		cfg.LogLevel = "debug"
	}
}

func newLogger(level string) *slog.Logger {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		lv = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lv}))
}
