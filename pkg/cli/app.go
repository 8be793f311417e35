package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mchmarny/pwdctl/pkg/config"
	"github.com/mchmarny/pwdctl/pkg/data"
	"github.com/mchmarny/pwdctl/pkg/logging"
	urfave "github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const (
	appName      = "pwdctl"
	appConfigKey = "app-config"

	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	outputFormat = formatJSON

	debugFlag = &urfave.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}

	formatFlag = &urfave.StringFlag{
		Name:  "format",
		Usage: "Output format [json, yaml]",
		Value: formatJSON,
	}

	configDirFlag = &urfave.StringFlag{
		Name:  "config-dir",
		Usage: "Path to the config directory (optional, defaults to $HOME/.pwdctl)",
	}
)

// Execute creates and runs the CLI application.
func Execute() {
	logging.SetDefaultCLILogger("info")

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

type appConfig struct {
	Dir   string
	Conf  *config.Config
	Cache *data.BucketStore
}

func getConfig(c *urfave.Context) *appConfig {
	return c.App.Metadata[appConfigKey].(*appConfig)
}

func newApp() *urfave.App {
	return &urfave.App{
		Name:                 appName,
		Version:              fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Compiled:             time.Now(),
		EnableBashCompletion: true,
		HideHelpCommand:      true,
		Usage:                "CLI for password strength and breach exposure checks",
		Flags: []urfave.Flag{
			debugFlag,
			formatFlag,
			configDirFlag,
		},
		Commands: []*urfave.Command{
			scoreCmd,
			pwnedCmd,
			hashCmd,
			generateCmd,
		},
		// no subcommand drops into the interactive menu
		Action: cmdMenu,
		Before: func(c *urfave.Context) error {
			dir := c.String(configDirFlag.Name)
			if dir == "" {
				d, _, err := config.GetOrCreateHomeDir(appName)
				if err != nil {
					return fmt.Errorf("resolving config dir: %w", err)
				}
				dir = d
			}

			conf, err := config.ReadOrCreate(dir)
			if err != nil {
				return fmt.Errorf("reading config: %w", err)
			}

			level := conf.LogLevel
			if c.Bool(debugFlag.Name) {
				level = "debug"
			}
			logging.SetDefaultCLILogger(level)

			if f := c.String(formatFlag.Name); f == formatYAML || f == "yml" {
				outputFormat = formatYAML
			}

			cfg := &appConfig{Dir: dir, Conf: conf}
			if conf.Cache {
				store, err := data.Open(filepath.Join(dir, data.DataFileName), conf.CacheTTL())
				if err != nil {
					slog.Debug("bucket cache unavailable", "error", err)
				} else {
					cfg.Cache = store
				}
			}

			c.App.Metadata[appConfigKey] = cfg
			return nil
		},
		After: func(c *urfave.Context) error {
			if cfg, ok := c.App.Metadata[appConfigKey].(*appConfig); ok && cfg.Cache != nil {
				cfg.Cache.Close()
			}
			return nil
		},
	}
}

func encode(v any) error {
	if outputFormat == formatYAML {
		return yaml.NewEncoder(os.Stdout).Encode(v)
	}
	e := json.NewEncoder(os.Stdout)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
