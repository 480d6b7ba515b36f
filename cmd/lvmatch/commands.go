package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/blossom/core"
	"github.com/katalvlaran/blossom/graphio"
	"github.com/katalvlaran/blossom/matching"
)

var (
	errMissingGraph  = errors.New("missing graph file argument")
	errMissingReport = errors.New("missing report file argument")
	errDisagree      = errors.New("algorithms disagree")
	errBound         = errors.New("matching size differs from the Tutte–Berge bound")
)

// run carries what every command needs.
type run struct {
	cfg  config
	log  *zap.SugaredLogger
	g    *core.Graph
	algo matching.Algorithm
	opts []matching.Option
}

func setup(c *cli.Context) (*run, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg.Verbose)
	if err != nil {
		return nil, err
	}
	algo, opts, err := cfg.options(c, log)
	if err != nil {
		return nil, err
	}

	path := c.Args().First()
	if path == "" {
		return nil, errMissingGraph
	}
	g, err := graphio.Load(path)
	if err != nil {
		return nil, err
	}
	log.Debugw("graph loaded", "file", path, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	return &run{cfg: cfg, log: log, g: g, algo: algo, opts: opts}, nil
}

func (r *run) close() {
	_ = r.log.Sync()
}

// compute runs the configured algorithm and, with --verify, checks the result.
func (r *run) compute(algo matching.Algorithm) (*matching.Matching, error) {
	m, err := algo(r.g, r.opts...)
	if err != nil {
		return nil, err
	}
	st := m.Stats()
	r.log.Infow("matching computed",
		"algorithm", m.Algorithm(),
		"size", m.Size(),
		"perfect", m.IsPerfect(),
		"phases", st.Phases,
		"blossoms", st.Blossoms,
	)
	if r.cfg.Verify {
		if err := matching.Verify(r.g, m, r.opts...); err != nil {
			return nil, err
		}
		r.log.Infow("matching verified", "algorithm", m.Algorithm())
	}

	return m, nil
}

func matchAction(c *cli.Context) error {
	r, err := setup(c)
	if err != nil {
		return err
	}
	defer r.close()

	m, err := r.compute(r.algo)
	if err != nil {
		return err
	}

	return graphio.EncodeReport(c.App.Writer, graphio.NewReport(m, r.cfg.Verbose))
}

func compareAction(c *cli.Context) error {
	r, err := setup(c)
	if err != nil {
		return err
	}
	defer r.close()

	var first *matching.Matching
	for _, name := range matching.Names() {
		algo, err := matching.ByName(name)
		if err != nil {
			return err
		}
		m, err := r.compute(algo)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		st := m.Stats()
		fmt.Fprintf(c.App.Writer, "%-8s size=%d phases=%d augmentations=%d blossoms=%d\n",
			name, m.Size(), st.Phases, st.Augmentations, st.Blossoms)
		if first == nil {
			first = m
			continue
		}
		if m.Size() != first.Size() {
			return fmt.Errorf("%w: %s=%d %s=%d", errDisagree, first.Algorithm(), first.Size(), name, m.Size())
		}
	}

	return nil
}

func decomposeAction(c *cli.Context) error {
	r, err := setup(c)
	if err != nil {
		return err
	}
	defer r.close()

	m, err := r.compute(r.algo)
	if err != nil {
		return err
	}
	d, err := matching.Decompose(r.g, m, r.opts...)
	if err != nil {
		return err
	}
	if d.TutteBerge != m.Size() {
		return fmt.Errorf("%w: size %d, bound %d", errBound, m.Size(), d.TutteBerge)
	}

	return graphio.EncodeDecomposition(c.App.Writer, graphio.NewDecompositionReport(d, m.Size()))
}

func verifyAction(c *cli.Context) error {
	r, err := setup(c)
	if err != nil {
		return err
	}
	defer r.close()

	path := c.Args().Get(1)
	if path == "" {
		return errMissingReport
	}
	rep, err := loadReport(path)
	if err != nil {
		return err
	}
	m, err := rep.Matching(r.g)
	if err != nil {
		return err
	}
	if err := matching.Verify(r.g, m, r.opts...); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "ok: matching of size %d is maximum\n", m.Size())

	return nil
}

func loadReport(path string) (rep *graphio.Report, err error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { err = multierr.Append(err, fh.Close()) }()

	return graphio.DecodeReport(fh)
}
