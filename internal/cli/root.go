package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hsiuhsiu/talib-go/pkg/talib"
	"github.com/hsiuhsiu/talib-go/pkg/talib/logging"
)

// Configuration keys shared by the YAML file, TALIB_* environment variables
// and flags.
const (
	keyLogLevel      = "log_level"
	keyCompatibility = "compatibility"
	keyUnstable      = "unstable"
)

type app struct {
	v        *viper.Viper
	cfgFile  string
	envFile  string
	unstable []string
	log      logging.Logger
}

// NewRootCommand builds the talib-go command tree.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New(), log: logging.Discard()}

	root := &cobra.Command{
		Use:   "talib-go",
		Short: "Compute TA-Lib technical indicators from CSV candles",
		Long: `talib-go runs TA-Lib indicators over OHLCV data.

Flags win over TALIB_* environment variables (which --env-file can supply
from a dotenv file), and those win over the optional YAML file (--config):

  log_level: debug
  compatibility: default
  unstable:
    EMA: 10

Examples:
  talib-go functions --group "Momentum Indicators"
  talib-go compute RSI --input candles.csv --param period=14
  talib-go compute BBANDS --input candles.csv --param ma_type=sma --format json`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML config file")
	pf.StringVar(&a.envFile, "env-file", "", "dotenv file with TALIB_* variables")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.String("compat", "default", "compatibility mode (default, metastock)")
	pf.StringArrayVar(&a.unstable, "unstable", nil, "unstable period as NAME=N (repeatable)")

	a.v.SetEnvPrefix("talib")
	a.v.AutomaticEnv()
	_ = a.v.BindPFlag(keyLogLevel, pf.Lookup("log-level"))
	_ = a.v.BindPFlag(keyCompatibility, pf.Lookup("compat"))

	root.AddCommand(newVersionCommand(), newFunctionsCommand(a), newComputeCommand(a))
	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.envFile != "" {
		if err := godotenv.Load(a.envFile); err != nil {
			return fmt.Errorf("read env file %s: %w", a.envFile, err)
		}
	}
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		a.v.SetConfigType("yaml")
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.cfgFile, err)
		}
	}

	level, err := logging.ParseLevel(a.v.GetString(keyLogLevel))
	if err != nil {
		return err
	}
	a.log = logging.New(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	a.log.Debug(cmd.Context(), "configuration loaded", "file", a.v.ConfigFileUsed(), "command", cmd.Name())
	return nil
}

// libraryConfig merges the unstable periods of the config file with the
// --unstable flags, flags winning.
func (a *app) libraryConfig() (talib.Config, error) {
	compat, err := talib.ParseCompatibility(a.v.GetString(keyCompatibility))
	if err != nil {
		return talib.Config{}, err
	}
	periods := map[string]int{}
	for name, raw := range a.v.GetStringMapString(keyUnstable) {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return talib.Config{}, fmt.Errorf("config %s.%s: %q is not an integer", keyUnstable, name, raw)
		}
		periods[strings.ToUpper(name)] = n
	}
	for _, kv := range a.unstable {
		name, raw, ok := strings.Cut(kv, "=")
		if !ok {
			return talib.Config{}, fmt.Errorf("--unstable %q: want NAME=N", kv)
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return talib.Config{}, fmt.Errorf("--unstable %q: %q is not an integer", kv, raw)
		}
		periods[strings.ToUpper(strings.TrimSpace(name))] = n
	}
	return talib.Config{Compatibility: compat, UnstablePeriods: periods, Logger: a.log}, nil
}

func (a *app) open(ctx context.Context) (*talib.Library, error) {
	cfg, err := a.libraryConfig()
	if err != nil {
		return nil, err
	}
	lib, err := talib.Open(cfg)
	if err != nil {
		return nil, err
	}
	a.log.Debug(ctx, "library opened", "backend", talib.Backend())
	return lib, nil
}

func (a *app) close(ctx context.Context, lib *talib.Library) {
	if err := lib.Close(); err != nil {
		a.log.Warn(ctx, "close library", "error", err)
	}
}
