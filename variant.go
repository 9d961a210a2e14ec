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

// Variant is one of the saturation formulas: a Mode evaluated either with
// the full nonlinear formula or with its linearization around TRef.
// Exactly one Variant is used for every point of a kernel call.
type Variant struct {
	Mode   Mode
	Linear bool
}

// NewVariant returns the Variant selected by the mode and linearity flags,
// or a *ModeError if mode does not name a formula family.
func NewVariant(mode Mode, linear bool) (Variant, error) {
	if !mode.valid() {
		return Variant{}, &ModeError{Mode: mode}
	}
	return Variant{Mode: mode, Linear: linear}, nil
}

// QSat returns the saturation specific humidity [kg/kg] at pressure p [Pa]
// and temperature t [K].
func (v Variant) QSat(th *Thermo, p, t float64) float64 {
	if v.Linear {
		return th.QSatLinear(p, t, v.Mode)
	}
	return th.QSat(p, t, v.Mode)
}

// Tangent returns the derivatives of QSat with respect to temperature
// [kg/kg/K] and pressure [kg/kg/Pa].
func (v Variant) Tangent(th *Thermo, p, t float64) (dqdt, dqdp float64) {
	if v.Linear {
		return th.linearTangent(p, t, v.Mode)
	}
	return th.tangent(p, t, v.Mode)
}

// Point returns the saturation specific humidity [kg/kg] at a single grid
// point.
func (th *Thermo) Point(p, t float64, mode Mode, linear bool) (float64, error) {
	v, err := NewVariant(mode, linear)
	if err != nil {
		return 0, err
	}
	return v.QSat(th, p, t), nil
}
