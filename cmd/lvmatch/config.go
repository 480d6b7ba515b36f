package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/blossom/matching"
)

// config is the merged view of the TOML file and the command line.
type config struct {
	Algorithm   string `toml:"algorithm"`
	Initializer string `toml:"initializer"`
	Verify      bool   `toml:"verify"`
	Verbose     bool   `toml:"verbose"`
}

func defaultConfig() config {
	return config{Algorithm: "edmonds", Initializer: "empty"}
}

// loadConfig reads --config when given, then applies explicitly set flags.
func loadConfig(c *cli.Context) (config, error) {
	cfg := defaultConfig()
	if path := c.String(ConfigFlag); path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			names := make([]string, len(keys))
			for i, k := range keys {
				names[i] = k.String()
			}
			return cfg, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(names, ", "))
		}
	}
	if c.IsSet(AlgorithmFlag) {
		cfg.Algorithm = c.String(AlgorithmFlag)
	}
	if c.IsSet(InitializerFlag) {
		cfg.Initializer = c.String(InitializerFlag)
	}
	if c.IsSet(VerifyFlag) {
		cfg.Verify = c.Bool(VerifyFlag)
	}
	if c.IsSet(VerboseFlag) {
		cfg.Verbose = c.Bool(VerboseFlag)
	}

	return cfg, nil
}

// options resolves the algorithm and the engine options of cfg.
func (cfg config) options(c *cli.Context, log *zap.SugaredLogger) (matching.Algorithm, []matching.Option, error) {
	algo, err := matching.ByName(cfg.Algorithm)
	if err != nil {
		return nil, nil, err
	}
	seed, err := matching.ParseInitializer(cfg.Initializer)
	if err != nil {
		return nil, nil, err
	}

	return algo, []matching.Option{
		matching.WithContext(c.Context),
		matching.WithLogger(log.Desugar()),
		matching.WithInitializer(seed),
	}, nil
}
