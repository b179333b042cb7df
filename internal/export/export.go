// Package export writes solved trajectories to JSON or CSV.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"
)

// Trajectory bundles a solved run with the settings that produced it.
type Trajectory struct {
	Preset       string    `json:"preset"`
	Sampler      string    `json:"sampler"`
	Dx           float64   `json:"dx"`
	QbitsInteger int       `json:"qbits_integer"`
	QbitsDecimal int       `json:"qbits_decimal"`
	Signed       bool      `json:"signed"`
	Points       int       `json:"points"`
	X            []float64 `json:"x"`
	Solution     []float64 `json:"solution"`
	Analytic     []float64 `json:"analytic,omitempty"`
	Energy       float64   `json:"energy"`
}

// JSON writes t as indented JSON to path, or to stdout when path is
// "-" or empty.
func JSON(path string, t *Trajectory) error {
	w, closeFn, err := output(path)
	if err != nil {
		return err
	}
	defer closeFn()
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(t)
}

// CSV writes the trajectory as x,solution[,analytic] rows with a
// header, to path or stdout when path is "-" or empty.
func CSV(path string, t *Trajectory) error {
	w, closeFn, err := output(path)
	if err != nil {
		return err
	}
	defer closeFn()

	writer := csv.NewWriter(w)
	header := []string{"x", "solution"}
	if len(t.Analytic) > 0 {
		header = append(header, "analytic")
	}
	if err := writer.Write(header); err != nil {
		return err
	}
	for i := range t.X {
		row := []string{
			strconv.FormatFloat(t.X[i], 'g', -1, 64),
			strconv.FormatFloat(t.Solution[i], 'g', -1, 64),
		}
		if len(t.Analytic) > 0 {
			row = append(row, strconv.FormatFloat(t.Analytic[i], 'g', -1, 64))
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func output(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return file, file.Close, nil
}
