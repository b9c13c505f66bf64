package main

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/LeonardoGraham/tink/common"
	"github.com/LeonardoGraham/tink/config"
	"github.com/LeonardoGraham/tink/interfaces"
	"github.com/LeonardoGraham/tink/registry"
)

var flags []cli.Flag = []cli.Flag{
	&cli.BoolFlag{
		Name:  "log-json",
		Value: false,
		Usage: "log in JSON format",
	},
	&cli.BoolFlag{
		Name:  "log-debug",
		Value: false,
		Usage: "log debug messages",
	},
	&cli.BoolFlag{
		Name:  "log-uid",
		Value: false,
		Usage: "generate a uuid and add to all log messages",
	},
	&cli.StringFlag{
		Name:  "log-service",
		Value: "tinkconfig",
		Usage: "add 'service' tag to logs",
	},
}

var flagConfigFile *cli.StringFlag = &cli.StringFlag{
	Name:     "config",
	Required: true,
	Usage:    "path to a JSON registration configuration file",
}

var flagPrimitive *cli.StringFlag = &cli.StringFlag{
	Name:     "primitive",
	Required: true,
	Usage:    "primitive name to register the wrapper for (case-insensitive)",
}

func main() {
	app := &cli.App{
		Name:  "tinkconfig",
		Usage: "Validate and apply primitive registration configurations",
		Flags: flags,
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "check a registration configuration without registering anything",
				Flags:       []cli.Flag{flagConfigFile},
				Description: "Checks every entry for missing required fields and for primitive names outside the known set: " + fmt.Sprint(interfaces.PrimitiveNames()),
				Action: func(cCtx *cli.Context) error {
					logger := setupLogger(cCtx)
					return runValidate(cCtx.String("config"), logger)
				},
			},
			{
				Name:  "apply",
				Usage: "validate a registration configuration and register all of its entries",
				Flags: []cli.Flag{flagConfigFile},
				Action: func(cCtx *cli.Context) error {
					logger := setupLogger(cCtx)
					return runApply(cCtx.String("config"), logger)
				},
			},
			{
				Name:  "register-wrapper",
				Usage: "register only the primitive wrapper for one named primitive",
				Flags: []cli.Flag{flagPrimitive},
				Action: func(cCtx *cli.Context) error {
					logger := setupLogger(cCtx)
					primitive := cCtx.String("primitive")
					if err := config.RegisterWrapper(primitive); err != nil {
						logger.Error("Wrapper registration failed", "primitive", primitive, "err", err)
						return err
					}
					logger.Info("Wrapper registered", "primitive", primitive)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(cCtx *cli.Context) *slog.Logger {
	logger := common.SetupLogger(&common.LoggingOpts{
		Debug:   cCtx.Bool("log-debug"),
		JSON:    cCtx.Bool("log-json"),
		Service: cCtx.String("log-service"),
		Version: common.Version,
	})

	if cCtx.Bool("log-uid") {
		id := uuid.Must(uuid.NewRandom())
		logger = logger.With("uid", id.String())
	}
	return logger
}

func loadRegistryConfig(path string) (*interfaces.RegistryConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening configuration: %w", err)
	}
	defer f.Close()

	var cfg interfaces.RegistryConfig
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return &cfg, nil
}

// validateAll reports every problem in the configuration, not just the
// first, so a file can be fixed in one pass.
func validateAll(cfg *interfaces.RegistryConfig, logger *slog.Logger) error {
	var firstErr error
	for i, entry := range cfg.Entries {
		err := config.Validate(&entry)
		if err == nil {
			_, err = interfaces.ParsePrimitiveFamily(entry.PrimitiveName)
		}
		if err != nil {
			logger.Error("Invalid entry", "index", i, "typeURL", entry.TypeURL, "err", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("entry %d: %w", i, err)
			}
			continue
		}
		logger.Debug("Entry OK", "index", i, "primitive", entry.PrimitiveName, "typeURL", entry.TypeURL)
	}
	return firstErr
}

func runValidate(path string, logger *slog.Logger) error {
	cfg, err := loadRegistryConfig(path)
	if err != nil {
		logger.Error("Failed to load configuration", "err", err)
		return err
	}

	if err := validateAll(cfg, logger); err != nil {
		return err
	}
	logger.Info("Configuration is valid", "entries", len(cfg.Entries))
	return nil
}

func runApply(path string, logger *slog.Logger) error {
	cfg, err := loadRegistryConfig(path)
	if err != nil {
		logger.Error("Failed to load configuration", "err", err)
		return err
	}

	if err := validateAll(cfg, logger); err != nil {
		return err
	}

	c := config.New(registry.Global(), logger)
	if err := c.Register(cfg); err != nil {
		logger.Error("Registration failed; earlier entries stay registered and the whole batch can be re-applied", "err", err)
		return err
	}

	logger.Info("Configuration applied", "entries", len(cfg.Entries))
	return nil
}
