package export

import (
	"fmt"
	"strings"
)

const (
	svgWidth  = 640
	svgHeight = 360
)

// SVG renders the trajectory as a line plot, with the analytic
// solution overlaid in a second color when present, and writes it to
// path or stdout when path is "-" or empty.
func SVG(path string, t *Trajectory) error {
	w, closeFn, err := output(path)
	if err != nil {
		return err
	}
	defer closeFn()
	_, err = fmt.Fprint(w, trajectorySVG(t))
	return err
}

func trajectorySVG(t *Trajectory) string {
	minX, maxX := bounds(t.X)
	minY, maxY := bounds(t.Solution)
	if len(t.Analytic) > 0 {
		lo, hi := bounds(t.Analytic)
		minY = min(minY, lo)
		maxY = max(maxY, hi)
	}
	// Pad so curves stay off the frame; degenerate ranges widen to 1.
	minX, maxX = pad(minX, maxX)
	minY, maxY = pad(minY, maxY)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, svgWidth, svgHeight, svgWidth, svgHeight))

	if len(t.Analytic) > 0 {
		writePath(&sb, t.X, t.Analytic, minX, maxX, minY, maxY, "#555555")
	}
	writePath(&sb, t.X, t.Solution, minX, maxX, minY, maxY, "#00ff00")
	sb.WriteString("</svg>\n")
	return sb.String()
}

func writePath(sb *strings.Builder, xs, ys []float64, minX, maxX, minY, maxY float64, stroke string) {
	if len(xs) < 2 || len(ys) < len(xs) {
		return
	}
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke))
	for i := range xs {
		px := (xs[i] - minX) / (maxX - minX) * svgWidth
		py := svgHeight - (ys[i]-minY)/(maxY-minY)*svgHeight
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
		}
	}
	sb.WriteString("\"/>\n")
}

func bounds(vs []float64) (lo, hi float64) {
	lo, hi = vs[0], vs[0]
	for _, v := range vs {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

func pad(lo, hi float64) (float64, float64) {
	span := hi - lo
	if span == 0 {
		span = 1
	}
	return lo - span*0.1, hi + span*0.1
}
