package cmd

import (
	"context"
	stderrors "errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/lepinkainen/narou/internal/config"
	"github.com/lepinkainen/narou/internal/errors"
)

// CLI represents the complete command structure for the narou application
type CLI struct {
	// Global flags
	Verbose   bool    `short:"v" help:"Enable debug logging"`
	Transport string  `help:"How requests reach the API: fetch, script or browser (defaults to narou.transport)"`
	RateLimit float64 `help:"Maximum requests per second, 0 disables pacing (defaults to narou.rate_limit)"`

	// Datastore flags
	DB     bool   `help:"Export results into the datastore"`
	DBFile string `name:"db-file" help:"Path to SQLite database file (defaults to datastore.dbfile)"`

	Search  SearchCmd  `cmd:"" help:"Search novels"`
	R18     R18Cmd     `cmd:"" name:"r18" help:"Search R18 novels"`
	Users   UsersCmd   `cmd:"" help:"Search users"`
	Ranking RankingCmd `cmd:"" help:"Show a ranking joined with novel details"`
	History HistoryCmd `cmd:"" help:"Show every ranking a novel appeared in"`
}

func kongOptions(ctx context.Context) []kong.Option {
	return []kong.Option{
		kong.Name("narou"),
		kong.Description("Query the Narou novel, ranking and user APIs."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
	}
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging(false)
	if err := initConfig(); err != nil {
		slog.Error("Fatal error config file", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var cli CLI
	kctx := kong.Parse(&cli, kongOptions(ctx)...)

	if cli.Verbose {
		initLogging(true)
	}
	updateGlobalConfig(&cli)

	if err := kctx.Run(); err != nil {
		if errors.IsStopProcessingError(err) {
			slog.Info("Stopped", "reason", err.Error())
			return
		}
		slog.Error("Command failed", "error", err)
		stop()
		os.Exit(1)
	}
}

// initConfig registers defaults, environment overrides and an optional
// config.yaml in the working directory.
func initConfig() error {
	config.SetDefaults()
	viper.SetDefault("output.dir", "")

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if stderrors.As(err, &notFound) {
			slog.Debug("Config file not found, using defaults")
			return nil
		}
		return err
	}
	slog.Debug("Loaded config file", "path", viper.ConfigFileUsed())
	return nil
}

func updateGlobalConfig(cli *CLI) {
	if cli.Transport != "" {
		viper.Set("narou.transport", cli.Transport)
	}
	if cli.RateLimit > 0 {
		viper.Set("narou.rate_limit", cli.RateLimit)
	}
	if cli.DB {
		viper.Set("datastore.enabled", true)
	}
	if cli.DBFile != "" {
		viper.Set("datastore.dbfile", cli.DBFile)
	}
}

func initLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// stdout carries command output
	handler := humanlog.NewHandler(os.Stderr, &humanlog.Options{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
