// Command lvmatch computes maximum-cardinality matchings of YAML graph files.
//
//	lvmatch match [--algorithm edmonds|gabow] [--initializer empty|greedy] [--verify] graph.yaml
//	lvmatch compare graph.yaml
//	lvmatch decompose graph.yaml
//	lvmatch verify graph.yaml report.yaml
//
// Settings may also come from a TOML file passed with --config; flags given
// on the command line win over the file.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const (
	AlgorithmFlag   = "algorithm"
	InitializerFlag = "initializer"
	VerifyFlag      = "verify"
	VerboseFlag     = "verbose"
	ConfigFlag      = "config"
)

func engineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    AlgorithmFlag,
			Aliases: []string{"a"},
			Usage:   "matching algorithm (edmonds, gabow)",
			Value:   "edmonds",
		},
		&cli.StringFlag{
			Name:  InitializerFlag,
			Usage: "initial matching (empty, greedy)",
			Value: "empty",
		},
		&cli.BoolFlag{
			Name:  VerifyFlag,
			Usage: "check the result for augmenting paths",
		},
		&cli.BoolFlag{
			Name:    VerboseFlag,
			Aliases: []string{"v"},
			Usage:   "debug logging and statistics in reports",
		},
		&cli.StringFlag{
			Name:    ConfigFlag,
			Aliases: []string{"c"},
			Usage:   "TOML file with algorithm, initializer, verify and verbose keys",
		},
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "lvmatch",
		Usage: "maximum-cardinality matching in general graphs",
		Commands: []*cli.Command{
			{
				Name:      "match",
				Aliases:   []string{"m"},
				Usage:     "compute a maximum matching and print it as YAML",
				ArgsUsage: "graph.yaml",
				Flags:     engineFlags(),
				Action:    matchAction,
			},
			{
				Name:      "compare",
				Usage:     "run every algorithm and check that they agree",
				ArgsUsage: "graph.yaml",
				Flags:     engineFlags(),
				Action:    compareAction,
			},
			{
				Name:      "decompose",
				Usage:     "print the Gallai–Edmonds decomposition and the Tutte–Berge bound",
				ArgsUsage: "graph.yaml",
				Flags:     engineFlags(),
				Action:    decomposeAction,
			},
			{
				Name:      "verify",
				Usage:     "check that a reported matching is maximum",
				ArgsUsage: "graph.yaml report.yaml",
				Flags:     engineFlags(),
				Action:    verifyAction,
			},
		},
	}
}

// newLogger is the development logger when verbose, the production one
// otherwise.
func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	var (
		raw *zap.Logger
		err error
	)
	if verbose {
		raw, err = zap.NewDevelopment()
	} else {
		raw, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}

	return raw.Sugar(), nil
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "lvmatch:", err)
		os.Exit(1)
	}
}
