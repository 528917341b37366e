package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kerbaras/comics/pkg/app"
	"github.com/kerbaras/comics/pkg/config"
	"github.com/kerbaras/comics/pkg/services"
)

var rootCmd = &cobra.Command{
	Use:   "comics",
	Short: "A terminal comic viewer",
	Long:  "Browse a numbered folder of comic images (001.png, 002.png, ...) from disk or the web",
	Run: func(cmd *cobra.Command, args []string) {
		// the terminal belongs to the viewer, log to file only
		cfg, log, err := loadConfig(cmd, true)
		cobra.CheckErr(err)
		defer log.Sync()

		controller, err := newController(cfg, log)
		cobra.CheckErr(err)
		defer controller.Close()

		a := app.NewApp(controller, cfg.Viewer.Title)
		if err := a.Run(cmd.Context()); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Configuration file (YAML)")
	rootCmd.PersistentFlags().String("folder", "", "Image folder or base URL holding 001.png, 002.png, ...")
	rootCmd.PersistentFlags().String("catalog", "", "Catalog configuration document with totalComics and imageFolder")
	rootCmd.PersistentFlags().String("lang", "", "Language of messages (nb, en)")
	rootCmd.PersistentFlags().Bool("debug", false, "Log at debug level")

	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configuration file, applies command line overrides
// and prepares the logger.
func loadConfig(cmd *cobra.Command, interactive bool) (*config.Config, *zap.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfiguration(path)
	if err != nil {
		return nil, nil, err
	}

	if folder, _ := cmd.Flags().GetString("folder"); folder != "" {
		cfg.Catalog.ImageFolder = folder
	}
	if catalog, _ := cmd.Flags().GetString("catalog"); catalog != "" {
		cfg.Catalog.ConfigURL = catalog
	}
	if lang, _ := cmd.Flags().GetString("lang"); lang != "" {
		cfg.Viewer.Language = lang
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Logging.ConsoleLogger.Level = "debug"
		if cfg.Logging.FileLogger.Level != "none" {
			cfg.Logging.FileLogger.Level = "debug"
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log, err := cfg.Logging.Prepare(interactive)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to prepare logger: %w", err)
	}
	return cfg, log, nil
}

func controllerConfig(cfg *config.Config) services.ControllerConfig {
	return services.ControllerConfig{
		ImageFolder:  cfg.Catalog.ImageFolder,
		ConfigURL:    cfg.Catalog.ConfigURL,
		MaxIndex:     cfg.Catalog.MaxIndex,
		GapTolerance: cfg.Catalog.GapTolerance,
		Preload:      cfg.Viewer.Preload,
		Language:     cfg.Viewer.Language,
		Title:        cfg.Viewer.Title,
		HTTPTimeout:  cfg.HTTP.Timeout,
		UserAgent:    cfg.HTTP.UserAgent,
		JournalPath:  cfg.Journal.Path,
	}
}

func newController(cfg *config.Config, log *zap.Logger) (*services.Controller, error) {
	return services.NewController(controllerConfig(cfg), log)
}
