// File: report.go
// Role: YAML matching reports, written by lvmatch and read back by its
// verify command.

package graphio

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/blossom/matching"
)

// Report is the serialized form of one matching.
type Report struct {
	Algorithm string       `yaml:"algorithm"`
	Size      int          `yaml:"size"`
	Perfect   bool         `yaml:"perfect"`
	Pairs     [][]string   `yaml:"pairs"`
	Free      []string     `yaml:"free,omitempty"`
	Stats     *ReportStats `yaml:"stats,omitempty"`
}

// ReportStats mirrors matching.Stats.
type ReportStats struct {
	Passes        int `yaml:"passes"`
	Phases        int `yaml:"phases"`
	Augmentations int `yaml:"augmentations"`
	Blossoms      int `yaml:"blossoms"`
	Seeded        int `yaml:"seeded"`
}

// NewReport captures m. Stats are included only when withStats is set, so
// that reports of equal matchings compare equal.
func NewReport(m *matching.Matching, withStats bool) Report {
	r := Report{
		Algorithm: m.Algorithm(),
		Size:      m.Size(),
		Perfect:   m.IsPerfect(),
		Pairs:     [][]string{},
		Free:      m.Free(),
	}
	for _, p := range m.Pairs() {
		r.Pairs = append(r.Pairs, []string{p[0], p[1]})
	}
	if withStats {
		st := m.Stats()
		r.Stats = &ReportStats{
			Passes:        st.Passes,
			Phases:        st.Phases,
			Augmentations: st.Augmentations,
			Blossoms:      st.Blossoms,
			Seeded:        st.Seeded,
		}
	}

	return r
}

// EncodeReport writes r as YAML.
func EncodeReport(w io.Writer, r Report) error {
	return writeYAML(w, r)
}

// DecodeReport reads a report. Only Pairs is needed to rebuild the matching
// with matching.FromPairs; the other fields are informational.
func DecodeReport(rd io.Reader) (*Report, error) {
	var r Report
	if err := yaml.NewDecoder(rd).Decode(&r); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	for i, p := range r.Pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("%w: pair %d is %v", ErrMalformedEdge, i, p)
		}
	}

	return &r, nil
}

// Matching rebuilds the reported pairs as a matching of g.
func (r *Report) Matching(g matching.GraphView) (*matching.Matching, error) {
	pairs := make([][2]string, len(r.Pairs))
	for i, p := range r.Pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("%w: pair %d is %v", ErrMalformedEdge, i, p)
		}
		pairs[i] = [2]string{p[0], p[1]}
	}

	return matching.FromPairs(g, pairs)
}

// DecompositionReport is the serialized Gallai–Edmonds decomposition.
type DecompositionReport struct {
	Even          []string `yaml:"even"`
	Odd           []string `yaml:"odd"`
	Unreached     []string `yaml:"unreached"`
	OddComponents int      `yaml:"odd_components"`
	TutteBerge    int      `yaml:"tutte_berge"`
	Deficiency    int      `yaml:"deficiency"`
	Size          int      `yaml:"size"`
}

// NewDecompositionReport captures d together with the size of the matching
// it was derived from.
func NewDecompositionReport(d *matching.Decomposition, size int) DecompositionReport {
	return DecompositionReport{
		Even:          d.Even,
		Odd:           d.Odd,
		Unreached:     d.Unreached,
		OddComponents: d.OddComponents,
		TutteBerge:    d.TutteBerge,
		Deficiency:    d.Deficiency(),
		Size:          size,
	}
}

// EncodeDecomposition writes r as YAML.
func EncodeDecomposition(w io.Writer, r DecompositionReport) error {
	return writeYAML(w, r)
}
