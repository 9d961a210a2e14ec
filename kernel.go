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

package satur

import (
	"runtime"
	"sync"
	"time"

	"github.com/ctessum/sparse"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/satur/internal/cpu"
)

// Kernel runs the saturation kernels concurrently over the active columns
// of a field. Every column is handled by exactly one goroutine, so results
// are identical to Satur, SaturTL and SaturAD.
type Kernel struct {
	th     *Thermo
	nprocs int
	Log    logrus.FieldLogger
}

// Option configures a Kernel.
type Option func(*Kernel)

// Concurrency sets the number of goroutines used by a Kernel. Values
// below 1 are ignored.
func Concurrency(n int) Option {
	return func(k *Kernel) {
		if n > 0 {
			k.nprocs = n
		}
	}
}

// Logger sets where a Kernel writes its diagnostic messages.
func Logger(l logrus.FieldLogger) Option {
	return func(k *Kernel) { k.Log = l }
}

// NewKernel returns a Kernel using the thermodynamic function table th.
// By default it uses runtime.GOMAXPROCS(0) goroutines and the standard
// logrus logger.
func NewKernel(th *Thermo, opts ...Option) *Kernel {
	k := &Kernel{
		th:     th,
		nprocs: runtime.GOMAXPROCS(0),
		Log:    logrus.StandardLogger(),
	}
	for _, o := range opts {
		o(k)
	}
	return k
}

// Thermo returns the thermodynamic function table used by k.
func (k *Kernel) Thermo() *Thermo { return k.th }

// Satur is the concurrent version of the Satur function.
func (k *Kernel) Satur(b Bounds, p, t, qsat *sparse.DenseArray, linear bool, mode Mode) error {
	c, err := prepare(k.th, b, mode, linear,
		namedField{"pressure", p}, namedField{"temperature", t}, namedField{"qsat", qsat})
	if err != nil {
		return err
	}
	k.run(c, "satur", func(c0, c1 int) {
		c.satur(k.th, c0, c1, p.Elements, t.Elements, qsat.Elements)
	})
	return nil
}

// SaturTL is the concurrent version of the SaturTL function.
func (k *Kernel) SaturTL(b Bounds, p, pI, t, tI, qsatI *sparse.DenseArray, linear bool, mode Mode) error {
	c, err := prepare(k.th, b, mode, linear,
		namedField{"pressure", p}, namedField{"pressure perturbation", pI},
		namedField{"temperature", t}, namedField{"temperature perturbation", tI},
		namedField{"qsat perturbation", qsatI})
	if err != nil {
		return err
	}
	k.run(c, "satur_tl", func(c0, c1 int) {
		c.saturTL(k.th, c0, c1, p.Elements, pI.Elements, t.Elements, tI.Elements, qsatI.Elements)
	})
	return nil
}

// SaturAD is the concurrent version of the SaturAD function.
func (k *Kernel) SaturAD(b Bounds, p, pI, t, tI, qsatI *sparse.DenseArray, linear bool, mode Mode) error {
	c, err := prepare(k.th, b, mode, linear,
		namedField{"pressure", p}, namedField{"pressure adjoint", pI},
		namedField{"temperature", t}, namedField{"temperature adjoint", tI},
		namedField{"qsat adjoint", qsatI})
	if err != nil {
		return err
	}
	k.run(c, "satur_ad", func(c0, c1 int) {
		c.saturAD(k.th, c0, c1, p.Elements, pI.Elements, t.Elements, tI.Elements, qsatI.Elements)
	})
	return nil
}

// run calls f on every active column, spreading the columns over
// k.nprocs goroutines.
func (k *Kernel) run(c call, name string, f func(c0, c1 int)) {
	start := time.Now()
	nprocs := k.nprocs
	if ncol := c.b.ColEnd - c.b.ColBegin; nprocs > ncol {
		nprocs = ncol
	}
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for pp := 0; pp < nprocs; pp++ {
		go func(pp int) {
			defer wg.Done()
			var n int
			for ii := c.b.ColBegin + pp; ii < c.b.ColEnd; ii += nprocs {
				f(ii, ii+1)
				n++
			}
			k.Log.WithFields(logrus.Fields{
				"kernel":  name,
				"worker":  pp,
				"cpu":     cpu.Current(),
				"columns": n,
			}).Debug("satur: worker finished")
		}(pp)
	}
	wg.Wait()
	k.Log.WithFields(logrus.Fields{
		"kernel":  name,
		"variant": c.v.Mode.String(),
		"linear":  c.v.Linear,
		"columns": c.b.ColEnd - c.b.ColBegin,
		"levels":  c.nlev - c.b.LevBegin,
		"workers": nprocs,
		"time":    time.Since(start),
	}).Debug("satur: kernel finished")
}
