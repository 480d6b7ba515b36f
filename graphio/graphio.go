// File: graphio.go
// Role: YAML graph files in and out.
//
// Format:
//
//	vertices: [a, b, c]   # optional; lists isolated vertices
//	edges:
//	  - [a, b]
//	  - [b, c]
//
// Determinism:
//   - Decode adds vertices first, then edges in file order, so edge IDs
//     follow the file.
//   - Encode writes vertices sorted and edges by edge ID.

package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/blossom/core"
)

var (
	// ErrMalformedEdge is returned for an edge entry that is not a pair of
	// non-empty vertex IDs.
	ErrMalformedEdge = errors.New("graphio: malformed edge")

	// ErrDecode wraps YAML syntax and type errors.
	ErrDecode = errors.New("graphio: decode failed")
)

// File is the on-disk shape of a graph.
type File struct {
	Vertices []string   `yaml:"vertices,omitempty"`
	Edges    [][]string `yaml:"edges"`
}

// Decode reads a graph file.
//
// The graph is built with loops and multi-edges enabled so that a file with
// a self-loop or a repeated pair still loads; the matching engine then
// reports those edges as invalid instead of the file silently losing them.
func Decode(r io.Reader) (*core.Graph, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return f.Graph()
}

// Graph materializes f as a core.Graph.
func (f *File) Graph() (*core.Graph, error) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	for _, v := range f.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("graphio: vertex %q: %w", v, err)
		}
	}
	for i, e := range f.Edges {
		if len(e) != 2 || e[0] == "" || e[1] == "" {
			return nil, fmt.Errorf("%w: entry %d is %v", ErrMalformedEdge, i, e)
		}
		if _, err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("graphio: edge %d %s-%s: %w", i, e[0], e[1], err)
		}
	}

	return g, nil
}

// Load opens path and decodes it.
func Load(path string) (g *core.Graph, err error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { err = multierr.Append(err, fh.Close()) }()

	return Decode(fh)
}

// FromGraph captures g in file form: all vertices sorted, edges by ID.
func FromGraph(g *core.Graph) File {
	f := File{Vertices: g.Vertices()}
	for _, e := range g.Edges() {
		f.Edges = append(f.Edges, []string{e.From, e.To})
	}

	return f
}

// Encode writes g as a graph file.
func Encode(w io.Writer, g *core.Graph) error {
	return writeYAML(w, FromGraph(g))
}

func writeYAML(w io.Writer, v interface{}) (err error) {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer func() { err = multierr.Append(err, enc.Close()) }()

	return enc.Encode(v)
}
