package config

import (
	"math"
	"sort"
)

// Preset is a named right-hand side y' = f(x) with its boundary value
// and, where one exists in closed form, the analytic solution for
// error reporting.
type Preset struct {
	Name        string
	Description string
	Y0          float64
	Derivative  func(x float64) float64
	Analytic    func(x float64) float64
}

var Presets = map[string]Preset{
	"zero": {
		Name:        "zero",
		Description: "y' = 0, constant solution",
		Y0:          1,
		Derivative:  func(x float64) float64 { return 0 },
		Analytic:    func(x float64) float64 { return 1 },
	},
	"constant": {
		Name:        "constant",
		Description: "y' = 1, linear ramp",
		Y0:          0,
		Derivative:  func(x float64) float64 { return 1 },
		Analytic:    func(x float64) float64 { return x },
	},
	"cosine": {
		Name:        "cosine",
		Description: "y' = cos(x), y = y0 + sin(x)",
		Y0:          1,
		Derivative:  math.Cos,
		Analytic:    func(x float64) float64 { return 1 + math.Sin(x) },
	},
	"ramp": {
		Name:        "ramp",
		Description: "y' = x, quadratic growth",
		Y0:          0,
		Derivative:  func(x float64) float64 { return x },
		Analytic:    func(x float64) float64 { return x * x / 2 },
	},
	"gauss": {
		Name:        "gauss",
		Description: "y' = exp(-x²), error-function solution",
		Y0:          0,
		Derivative:  func(x float64) float64 { return math.Exp(-x * x) },
		Analytic:    func(x float64) float64 { return math.Sqrt(math.Pi) / 2 * math.Erf(x) },
	},
}

// Sample evaluates the preset's derivative on a uniform grid.
func (p Preset) Sample(npoints int, dx float64) []float64 {
	f := make([]float64, npoints)
	for i := range f {
		f[i] = p.Derivative(float64(i) * dx)
	}
	return f
}

// Names lists the presets in stable order.
func Names() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
