package main

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/b97tsk/idscan/internal/idrange"
)

type report struct {
	Query   string   `yaml:"query" json:"query"`
	Result  uint64   `yaml:"result" json:"result"`
	Ranges  []string `yaml:"ranges,omitempty" json:"ranges,omitempty"`
	Matches []uint64 `yaml:"matches,omitempty" json:"matches,omitempty"`
}

func rangeStrings(set idrange.Set) []string {
	ranges := make([]string, set.Len())
	for i := range ranges {
		ranges[i] = set.At(i).String()
	}
	return ranges
}

// writeReport prints r in format. The text format carries the result alone.
func writeReport(w io.Writer, format string, r report) error {
	var err error
	switch format {
	case _formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(r); err == nil {
			err = enc.Close()
		}
	case _formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(r)
	default:
		err = fprintln(w, utoa(r.Result))
	}
	return errors.Wrap(err, "writing report")
}
