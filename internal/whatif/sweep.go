package whatif

import (
	"io"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"

	"github.com/kmall/stepdiag/internal/scenario"
)

// Row is one sweep sample in long format: the swept parameter value
// crossed with one computed result.
type Row struct {
	Param  string  `csv:"param"`
	Value  float64 `csv:"value"`
	Label  string  `csv:"label"`
	Result float64 `csv:"result"`
	Unit   string  `csv:"unit"`
}

// Sweep recomputes a scenario's panel across n evenly spaced values of
// one parameter, the way a slider drag replays the calculation. Each
// sample builds a fresh diagram; samples that fail validation (e.g. a
// sweep crossing zero mass) are skipped rather than aborting the sweep.
func Sweep(reg *scenario.Registry, cfg *scenario.Config, param string, lo, hi float64, n int) ([]Row, error) {
	if n < 2 {
		n = 2
	}
	values := floats.Span(make([]float64, n), lo, hi)

	rows := make([]Row, 0, n)
	for _, v := range values {
		sample := *cfg
		if err := sample.Params.Set(param, v); err != nil {
			return nil, err
		}
		d, err := reg.Build(cfg.Scenario, &sample)
		if err != nil {
			continue
		}
		results, err := Panel(d)
		if err != nil {
			return nil, err
		}
		for _, res := range results {
			rows = append(rows, Row{
				Param:  param,
				Value:  v,
				Label:  res.Label,
				Result: res.Value,
				Unit:   res.Unit,
			})
		}
	}
	return rows, nil
}

// WriteCSV exports sweep rows for spreadsheets and plotting tools.
func WriteCSV(w io.Writer, rows []Row) error {
	return gocsv.Marshal(&rows, w)
}
