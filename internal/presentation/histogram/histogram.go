// Package histogram renders the sampled distribution of a trait as a text
// histogram, for eyeballing parameters during population design.
package histogram

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/aretw0/traits/pkg/domain"
	"github.com/muesli/termenv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	// DefaultSamples is the number of occupants drawn when none is requested.
	DefaultSamples = 1000
	// DefaultBins is the number of histogram bins when none is requested.
	DefaultBins = 10
	// DefaultWidth is the length, in cells, of the longest bar.
	DefaultWidth = 40
)

// Bin is one histogram bucket covering [Lo, Hi).
type Bin struct {
	Lo    float64
	Hi    float64
	Count int
}

// Report is everything needed to draw a trait's histogram.
type Report struct {
	Title    string
	XLabel   string
	YLabel   string
	Mean     float64
	Variance float64 // population variance of the draws
	Samples  []float64
	Bins     []Bin
}

// Build samples t for n occupied slots and bins the result.
// Non-positive n or bins fall back to the defaults.
func Build(t domain.Trait, n, bins int) (*Report, error) {
	if n <= 0 {
		n = DefaultSamples
	}
	if bins <= 0 {
		bins = DefaultBins
	}

	occ := make([]float64, n)
	for i := range occ {
		occ[i] = 1
	}
	values, err := t.Sample(occ)
	if err != nil {
		return nil, fmt.Errorf("failed to sample %s: %w", t.Name(), err)
	}

	mean, variance := stat.PopMeanVariance(values, nil)
	return &Report{
		Title:    fmt.Sprintf("%s.\nSample mean %.2f and sample var %.2f", t, mean, variance),
		XLabel:   fmt.Sprintf("relative magnitude of %s", t.Name()),
		YLabel:   "# people",
		Mean:     mean,
		Variance: variance,
		Samples:  values,
		Bins:     binValues(values, bins),
	}, nil
}

func binValues(values []float64, bins int) []Bin {
	if len(values) == 0 {
		return nil
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		return []Bin{{Lo: lo, Hi: hi, Count: len(sorted)}}
	}

	dividers := make([]float64, bins+1)
	floats.Span(dividers, lo, hi)
	// stat.Histogram bins are half-open; nudge the top edge so the maximum lands in the last bin.
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, sorted, nil)
	out := make([]Bin, bins)
	for i, c := range counts {
		out[i] = Bin{Lo: dividers[i], Hi: dividers[i+1], Count: int(c)}
	}
	return out
}

// Render writes the report to w. Bars are scaled so the fullest bin is width
// cells long; color is used only when w is a terminal that supports it.
func Render(w io.Writer, r *Report, width int) error {
	if width <= 0 {
		width = DefaultWidth
	}
	out := termenv.NewOutput(w)

	maxCount := 0
	for _, b := range r.Bins {
		maxCount = max(maxCount, b.Count)
	}

	var sb strings.Builder
	sb.WriteString(out.String(r.Title).Bold().String())
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "%s\n", r.YLabel)
	for _, b := range r.Bins {
		cells := 0
		if maxCount > 0 {
			cells = int(math.Round(float64(b.Count) / float64(maxCount) * float64(width)))
		}
		bar := out.String(strings.Repeat("█", cells)).Foreground(out.Color("#a78bfa"))
		fmt.Fprintf(&sb, "[%8.3f, %8.3f) | %s %d\n", b.Lo, b.Hi, bar, b.Count)
	}
	fmt.Fprintf(&sb, "%s\n", r.XLabel)

	_, err := io.WriteString(w, sb.String())
	return err
}
