/*
Copyright © 2019 the SATUR authors.
This file is part of SATUR.

SATUR is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

SATUR is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with SATUR.  If not, see <http://www.gnu.org/licenses/>.
*/

package saturutil

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/satur"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Timing is the mean run time of one kernel.
type Timing struct {
	Kernel  string
	Elapsed time.Duration
}

// Benchmark runs the forward, tangent-linear and adjoint kernels repeats
// times each on the idealized columns described by pc, and returns their
// mean run times.
func Benchmark(k *satur.Kernel, c *satur.Constants, pc ProfileConfig, b satur.Bounds, mode satur.Mode, linear bool, repeats int) ([]Timing, error) {
	if repeats < 1 {
		return nil, fmt.Errorf("satur: benchmark repeats must be at least 1 but is %d", repeats)
	}
	p, t, err := pc.Fields(c)
	if err != nil {
		return nil, err
	}
	qsat := satur.NewField(pc.NLon, pc.NLev)
	pI, tI, qsatI := satur.NewField(pc.NLon, pc.NLev), satur.NewField(pc.NLon, pc.NLev), satur.NewField(pc.NLon, pc.NLev)
	pA, tA, qsatA := satur.NewField(pc.NLon, pc.NLev), satur.NewField(pc.NLon, pc.NLev), satur.NewField(pc.NLon, pc.NLev)
	for i := range pI.Elements {
		pI.Elements[i] = 100
		tI.Elements[i] = 1
	}

	kernels := []struct {
		name string
		f    func() error
	}{
		{"non-linear", func() error { return k.Satur(b, p, t, qsat, linear, mode) }},
		{"tangent-linear", func() error { return k.SaturTL(b, p, pI, t, tI, qsatI, linear, mode) }},
		{"adjoint", func() error {
			for i := range qsatA.Elements {
				qsatA.Elements[i] = 1
			}
			return k.SaturAD(b, p, pA, t, tA, qsatA, linear, mode)
		}},
	}
	timings := make([]Timing, len(kernels))
	for i, kern := range kernels {
		var total time.Duration
		for r := 0; r < repeats; r++ {
			start := time.Now()
			if err := kern.f(); err != nil {
				return nil, err
			}
			total += time.Since(start)
		}
		timings[i] = Timing{Kernel: kern.name, Elapsed: total / time.Duration(repeats)}
		k.Log.WithFields(logrus.Fields{
			"kernel":  kern.name,
			"repeats": repeats,
			"mean":    timings[i].Elapsed,
		}).Info("benchmark finished")
	}
	return timings, nil
}

// WriteTimings writes a table of timings to w.
func WriteTimings(w io.Writer, timings []Timing) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "kernel\truntime [ms]\t")
	for _, t := range timings {
		fmt.Fprintf(tw, "%s\t%.4f\t\n", t.Kernel, milliseconds(t.Elapsed))
	}
	return tw.Flush()
}

func milliseconds(d time.Duration) float64 { return d.Seconds() * 1000 }

// PlotTimings draws a bar chart of timings and writes it to w in PNG format.
func PlotTimings(w io.Writer, timings []Timing) error {
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = "SATUR kernels"
	p.Y.Label.Text = "Runtime [ms]"
	p.Y.Min = 0

	values := make(plotter.Values, len(timings))
	names := make([]string, len(timings))
	for i, t := range timings {
		values[i] = milliseconds(t.Elapsed)
		names[i] = t.Kernel
	}
	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return err
	}
	bars.Color = plotutil.Color(0)
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(names...)

	img := vgimg.New(4*vg.Inch, 3*vg.Inch)
	dc := draw.New(img)
	p.Draw(dc)
	png := vgimg.PngCanvas{Canvas: img}
	_, err = png.WriteTo(w)
	return err
}
