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

// Package satur calculates saturation specific humidity for the columns and
// levels of an atmospheric model grid. Fields are [columns, levels] dense
// arrays and only an active sub-rectangle of them is used, so that the
// kernels can be called on one block of a larger domain.
package satur

import (
	"fmt"

	"github.com/ctessum/sparse"
)

// Version gives the version number.
const Version = "1.0.0"

// call holds a validated kernel call.
type call struct {
	v          Variant
	b          Bounds
	nlon, nlev int
}

// prepare checks the arguments of a kernel call. Nothing is written to any
// field unless prepare succeeds.
func prepare(th *Thermo, b Bounds, mode Mode, linear bool, fields ...namedField) (call, error) {
	if th == nil {
		return call{}, fmt.Errorf("satur: nil thermodynamic function table")
	}
	nlon, nlev, err := checkFields(fields...)
	if err != nil {
		return call{}, err
	}
	if err = b.check(nlon, nlev); err != nil {
		return call{}, err
	}
	v, err := NewVariant(mode, linear)
	if err != nil {
		return call{}, err
	}
	return call{v: v, b: b, nlon: nlon, nlev: nlev}, nil
}

// satur fills qsat for the columns [c0, c1).
func (c call) satur(th *Thermo, c0, c1 int, p, t, qsat []float64) {
	c.b.active(c0, c1, c.nlev, func(i, k int) {
		ik := i*c.nlev + k
		qsat[ik] = c.v.QSat(th, p[ik], t[ik])
	})
}

// saturTL fills qsatI for the columns [c0, c1).
func (c call) saturTL(th *Thermo, c0, c1 int, p, pI, t, tI, qsatI []float64) {
	c.b.active(c0, c1, c.nlev, func(i, k int) {
		ik := i*c.nlev + k
		dqdt, dqdp := c.v.Tangent(th, p[ik], t[ik])
		qsatI[ik] = dqdt*tI[ik] + dqdp*pI[ik]
	})
}

// saturAD accumulates the adjoint of saturTL into pI and tI for the
// columns [c0, c1) and zeroes qsatI there.
func (c call) saturAD(th *Thermo, c0, c1 int, p, pI, t, tI, qsatI []float64) {
	c.b.active(c0, c1, c.nlev, func(i, k int) {
		ik := i*c.nlev + k
		dqdt, dqdp := c.v.Tangent(th, p[ik], t[ik])
		tI[ik] += dqdt * qsatI[ik]
		pI[ik] += dqdp * qsatI[ik]
		qsatI[ik] = 0
	})
}

// Satur calculates the saturation specific humidity qsat [kg/kg] from full
// level pressure p [Pa] and temperature t [K] within the active bounds b.
// mode selects the formula family and linear selects the linearized
// formula used by tangent-linear and adjoint physics. Cells of qsat outside
// of b are not changed. An error is returned, and qsat is left unchanged, if
// the fields do not share a [columns, levels] shape, if b does not fit in
// them (*RangeError), or if mode is not recognized (*ModeError).
func Satur(b Bounds, p, t, qsat *sparse.DenseArray, linear bool, mode Mode, th *Thermo) error {
	c, err := prepare(th, b, mode, linear,
		namedField{"pressure", p}, namedField{"temperature", t}, namedField{"qsat", qsat})
	if err != nil {
		return err
	}
	c.satur(th, b.ColBegin, b.ColEnd, p.Elements, t.Elements, qsat.Elements)
	return nil
}

// SaturTL is the tangent-linear version of Satur. Given perturbations of
// pressure pI [Pa] and temperature tI [K] around the state (p, t), it
// calculates the perturbation of saturation specific humidity qsatI
// [kg/kg] within b. The perturbation is zero where Satur limits qsat.
func SaturTL(b Bounds, p, pI, t, tI, qsatI *sparse.DenseArray, linear bool, mode Mode, th *Thermo) error {
	c, err := prepare(th, b, mode, linear,
		namedField{"pressure", p}, namedField{"pressure perturbation", pI},
		namedField{"temperature", t}, namedField{"temperature perturbation", tI},
		namedField{"qsat perturbation", qsatI})
	if err != nil {
		return err
	}
	c.saturTL(th, b.ColBegin, b.ColEnd, p.Elements, pI.Elements, t.Elements, tI.Elements, qsatI.Elements)
	return nil
}

// SaturAD is the adjoint of SaturTL. Given the adjoint of saturation
// specific humidity qsatI [kg/kg] at the state (p, t), it adds the
// resulting adjoints of pressure to pI [Pa] and of temperature to tI [K],
// and sets qsatI to zero, within b. Cells outside of b are not changed.
func SaturAD(b Bounds, p, pI, t, tI, qsatI *sparse.DenseArray, linear bool, mode Mode, th *Thermo) error {
	c, err := prepare(th, b, mode, linear,
		namedField{"pressure", p}, namedField{"pressure adjoint", pI},
		namedField{"temperature", t}, namedField{"temperature adjoint", tI},
		namedField{"qsat adjoint", qsatI})
	if err != nil {
		return err
	}
	c.saturAD(th, b.ColBegin, b.ColEnd, p.Elements, pI.Elements, t.Elements, tI.Elements, qsatI.Elements)
	return nil
}
