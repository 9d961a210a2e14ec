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

// Constants holds the fundamental physical constants of the host model.
// Values are in SI units.
type Constants struct {
	RTT    float64 `desc:"Triple point temperature of water" units:"K"`
	RKBOL  float64 `desc:"Boltzmann constant" units:"J/K"`
	RNAVO  float64 `desc:"Avogadro number" units:"1/mol"`
	R      float64 `desc:"Universal gas constant" units:"J/K/mol"`
	RMD    float64 `desc:"Molar mass of dry air" units:"g/mol"`
	RMV    float64 `desc:"Molar mass of water vapour" units:"g/mol"`
	RD     float64 `desc:"Gas constant of dry air" units:"J/K/kg"`
	RV     float64 `desc:"Gas constant of water vapour" units:"J/K/kg"`
	RCPD   float64 `desc:"Specific heat of dry air at constant pressure" units:"J/K/kg"`
	RCPV   float64 `desc:"Specific heat of water vapour at constant pressure" units:"J/K/kg"`
	RETV   float64 `desc:"RV/RD-1, virtual temperature factor" units:"-"`
	RVTMP2 float64 `desc:"RCPV/RCPD-1" units:"-"`
	RLVTT  float64 `desc:"Latent heat of vaporisation at RTT" units:"J/kg"`
	RLSTT  float64 `desc:"Latent heat of sublimation at RTT" units:"J/kg"`
	RLMLT  float64 `desc:"Latent heat of fusion at RTT" units:"J/kg"`
	RG     float64 `desc:"Gravitational acceleration" units:"m/s²"`
}

// NewConstants returns the constant table of the ECMWF Integrated Forecasting
// System.
func NewConstants() *Constants {
	c := &Constants{
		RTT:   273.16,
		RKBOL: 1.380658e-23,
		RNAVO: 6.0221367e+23,
		RMD:   28.9644,
		RMV:   18.0153,
		RLVTT: 2.5008e+6,
		RLSTT: 2.8345e+6,
		RG:    9.80665,
	}
	c.Derive()
	return c
}

// Derive recalculates the derived constants from RKBOL, RNAVO, RMD, RMV,
// RLVTT and RLSTT.
func (c *Constants) Derive() {
	c.R = c.RNAVO * c.RKBOL
	c.RD = 1000 * c.R / c.RMD
	c.RV = 1000 * c.R / c.RMV
	c.RCPD = 3.5 * c.RD
	c.RCPV = 4 * c.RV
	c.RETV = c.RV/c.RD - 1
	c.RVTMP2 = c.RCPV/c.RCPD - 1
	c.RLMLT = c.RLSTT - c.RLVTT
}

// Epsilon returns the ratio of the gas constants of dry air and
// water vapour.
func (c *Constants) Epsilon() float64 { return c.RD / c.RV }
