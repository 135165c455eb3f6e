// Package cli contains the cobra command tree of the airops console.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/example/airops/internal/config"
	"github.com/example/airops/internal/ctxutil"
	"github.com/example/airops/internal/db"
	"github.com/example/airops/internal/logging"
	"github.com/example/airops/internal/ports/primary"
	"github.com/example/airops/internal/wire"
)

type rootOptions struct {
	driver     string
	host       string
	password   string
	configDir  string
	envFile    string
	logFile    string
	logLevel   string
	logFormat  string
	initSchema bool
	seed       bool
	saveConfig bool
}

// RootCmd returns the airops root command.
func RootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "airops <dbname> <port> <user>",
		Short: "Airline operations console",
		Long: `airops is an interactive console over an airline-operations database.

It records planes, pilots, flights and technicians, books customers onto
flights with an atomic capacity check, and runs the fleet reports.

Examples:
  airops flights 5432 ops                      # PostgreSQL on localhost
  airops --driver mysql flights 3306 ops       # MySQL
  airops --driver sqlite --init-schema --seed demo 1 local`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts, args)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true
			return runSession(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cfg, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.driver, "driver", "", "store driver: postgres, mysql or sqlite")
	flags.StringVar(&opts.host, "host", "", "database host")
	flags.StringVar(&opts.password, "password", "", "database password")
	flags.StringVar(&opts.configDir, "config-dir", ".", "directory holding .airops/config.json")
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded into the environment")
	flags.StringVar(&opts.logFile, "log-file", "", "log file (default airops.log)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: text or json")
	flags.BoolVar(&opts.initSchema, "init-schema", false, "create the reference schema (sqlite only)")
	flags.BoolVar(&opts.seed, "seed", false, "load demo fixtures into an empty store")
	flags.BoolVar(&opts.saveConfig, "save-config", false, "write the resolved settings to the config file")

	return cmd
}

// resolveConfig layers defaults, config file, .env, environment, flags and
// positional arguments, later sources winning.
func resolveConfig(cmd *cobra.Command, opts *rootOptions, args []string) (*config.Config, error) {
	cfg, err := config.LoadConfig(opts.configDir)
	if err != nil {
		return nil, err
	}
	if err := config.LoadDotEnv(opts.envFile); err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	flags := cmd.Flags()
	overlay := func(dst *string, name, value string) {
		if flags.Changed(name) {
			*dst = value
		}
	}
	overlay(&cfg.Driver, "driver", opts.driver)
	overlay(&cfg.Host, "host", opts.host)
	overlay(&cfg.Password, "password", opts.password)
	overlay(&cfg.LogFile, "log-file", opts.logFile)
	overlay(&cfg.LogLevel, "log-level", opts.logLevel)
	overlay(&cfg.LogFormat, "log-format", opts.logFormat)

	cfg.DBName, cfg.Port, cfg.User = args[0], args[1], args[2]

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runSession(ctx context.Context, in io.Reader, out io.Writer, cfg *config.Config, opts *rootOptions) error {
	logger, closer, err := logging.New(logging.Config{Path: cfg.LogFile, Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx = ctxutil.WithSessionID(ctx, ctxutil.NewSessionID())
	log := logging.FromContext(ctx, logger)

	dbOpts, err := cfg.Options()
	if err != nil {
		return err
	}

	fmt.Fprint(out, "Connecting to database...")
	database, dialect, err := db.Open(ctx, dbOpts)
	if err != nil {
		fmt.Fprintln(out)
		log.Error("connection failed", "driver", cfg.Driver, "host", cfg.Host, "error", err)
		return fmt.Errorf("%w: %w", primary.ErrConnectionFailed, err)
	}
	fmt.Fprintln(out, "Done")
	log.Info("connected", "driver", cfg.Driver, "host", cfg.Host, "dbname", cfg.DBName)

	defer func() {
		fmt.Fprint(out, "Disconnecting from database...")
		database.Close()
		fmt.Fprintln(out, "Done\n\nBye !")
		log.Info("disconnected")
	}()

	if opts.initSchema {
		if err := db.InitSchema(ctx, database, dialect); err != nil {
			return err
		}
	}
	if opts.seed {
		if err := db.SeedFixtures(ctx, database); err != nil {
			return err
		}
	}
	if opts.saveConfig {
		if err := config.SaveConfig(opts.configDir, cfg); err != nil {
			return err
		}
	}

	err = wire.New(database, dialect, logger).Menu(in, out).Run(ctx)
	if errors.Is(err, primary.ErrInputExhausted) {
		log.Info("input exhausted")
		return nil
	}
	return err
}
