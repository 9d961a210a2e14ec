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
	"math"
	"text/tabwriter"

	"github.com/ctessum/sparse"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/satur"
	"gonum.org/v1/gonum/floats"
)

// tropopauseTemperature is the lowest temperature [K] of the idealized
// profiles.
const tropopauseTemperature = 216.65

// ProfileConfig describes a grid of idealized atmospheric columns.
type ProfileConfig struct {
	// NLon and NLev are the numbers of columns and levels.
	NLon, NLev int

	// SurfacePressure is the pressure of the lowest level and TopPressure
	// is the pressure at the top of the model [Pa]. Levels are evenly
	// spaced in pressure.
	SurfacePressure, TopPressure float64

	// SurfaceTemperature is the temperature [K] of the lowest level in the
	// middle column. ColumnStep [K] is added for each column to the east.
	SurfaceTemperature, ColumnStep float64

	// LapseRate is the temperature decrease with height [K/m].
	LapseRate float64
}

func (pc ProfileConfig) validate() error {
	if pc.NLon < 1 || pc.NLev < 1 {
		return fmt.Errorf("satur: profile must have at least one column and one level but has %d and %d", pc.NLon, pc.NLev)
	}
	if !(pc.TopPressure >= 0 && pc.SurfacePressure > pc.TopPressure) {
		return fmt.Errorf("satur: surface pressure %g Pa must be greater than top pressure %g Pa", pc.SurfacePressure, pc.TopPressure)
	}
	if !(pc.SurfaceTemperature > 0) || math.IsInf(pc.SurfaceTemperature, 0) {
		return fmt.Errorf("satur: invalid surface temperature %g K", pc.SurfaceTemperature)
	}
	return nil
}

// Fields returns the pressure [Pa] and temperature [K] fields of the
// idealized columns. Level 0 is the top of the model.
func (pc ProfileConfig) Fields(c *satur.Constants) (p, t *sparse.DenseArray, err error) {
	if err = pc.validate(); err != nil {
		return nil, nil, err
	}
	p = satur.NewField(pc.NLon, pc.NLev)
	t = satur.NewField(pc.NLon, pc.NLev)
	exponent := c.RD * pc.LapseRate / c.RG
	for i := 0; i < pc.NLon; i++ {
		tsfc := pc.SurfaceTemperature + pc.ColumnStep*(float64(i)-float64(pc.NLon-1)/2)
		for k := 0; k < pc.NLev; k++ {
			pk := pc.TopPressure + (pc.SurfacePressure-pc.TopPressure)*float64(k+1)/float64(pc.NLev)
			p.Elements[i*pc.NLev+k] = pk
			t.Elements[i*pc.NLev+k] = math.Max(tsfc*math.Pow(pk/pc.SurfacePressure, exponent), tropopauseTemperature)
		}
	}
	return p, t, nil
}

// Profile calculates saturation specific humidity for the idealized columns
// described by pc within the active range b, and writes a table of the
// results to w. Cells outside of b are NaN in the returned field.
func Profile(w io.Writer, k *satur.Kernel, c *satur.Constants, pc ProfileConfig, b satur.Bounds, mode satur.Mode, linear bool) (*sparse.DenseArray, error) {
	p, t, err := pc.Fields(c)
	if err != nil {
		return nil, err
	}
	qsat := satur.NewField(pc.NLon, pc.NLev)
	for i := range qsat.Elements {
		qsat.Elements[i] = math.NaN()
	}
	if err = k.Satur(b, p, t, qsat, linear, mode); err != nil {
		return nil, err
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "column\tlevel\tpressure [Pa]\ttemperature [K]\tqsat [kg/kg]\t")
	var active []float64
	for i := 0; i < pc.NLon; i++ {
		for lev := 0; lev < pc.NLev; lev++ {
			ik := i*pc.NLev + lev
			q := "-"
			if v := qsat.Elements[ik]; !math.IsNaN(v) {
				q = fmt.Sprintf("%.6e", v)
				active = append(active, v)
			}
			fmt.Fprintf(tw, "%d\t%d\t%.1f\t%.2f\t%s\t\n", i+1, lev+1, p.Elements[ik], t.Elements[ik], q)
		}
	}
	if err = tw.Flush(); err != nil {
		return nil, err
	}

	if len(active) == 0 {
		fmt.Fprintln(w, "no active cells")
		return qsat, nil
	}
	min, max := floats.Min(active), floats.Max(active)
	mean := floats.Sum(active) / float64(len(active))
	fmt.Fprintf(w, "%d active cells: min %.6e, mean %.6e, max %.6e kg/kg\n", len(active), min, mean, max)
	k.Log.WithFields(logrus.Fields{
		"mode":   mode,
		"linear": linear,
		"cells":  len(active),
		"min":    min,
		"max":    max,
	}).Info("profile complete")
	return qsat, nil
}
