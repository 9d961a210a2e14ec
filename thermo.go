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
	"fmt"
	"math"
)

// Mode selects the family of saturation vapour pressure formulas.
type Mode int

// Saturation formula families. ModeMixed and ModeMixedConvective keep the
// values of the host model's KFLAG argument.
const (
	// ModeWater uses saturation over liquid water at all temperatures.
	ModeWater Mode = iota
	// ModeMixed blends ice and water saturation between RTICE and RTWAT.
	ModeMixed
	// ModeMixedConvective blends ice and water saturation between RTICECU
	// and RTWAT, as the convection scheme does.
	ModeMixedConvective

	numModes
)

func (m Mode) valid() bool { return m >= ModeWater && m < numModes }

func (m Mode) String() string {
	switch m {
	case ModeWater:
		return "water"
	case ModeMixed:
		return "mixed"
	case ModeMixedConvective:
		return "mixed-convective"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode returns the Mode with the given name or KFLAG number.
func ParseMode(s string) (Mode, error) {
	for m := ModeWater; m < numModes; m++ {
		if s == m.String() || s == fmt.Sprint(int(m)) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("satur: invalid mode %q; valid modes are water (0), mixed (1) and mixed-convective (2)", s)
}

// Thermo is the thermodynamic function table used by the saturation
// kernels. It is derived from a Constants table by NewThermo. Every formula
// reads the fields when it is evaluated, so a changed field takes effect at
// the next call. A table must not be changed while a kernel is using it.
type Thermo struct {
	RTT  float64 `desc:"Triple point temperature of water" units:"K"`
	RETV float64 `desc:"RV/RD-1" units:"-"`

	// Tetens coefficients. R2ES includes the factor RD/RV.
	R2ES  float64 `units:"Pa"`
	R3LES float64 `desc:"Tetens exponent factor, water" units:"-"`
	R3IES float64 `desc:"Tetens exponent factor, ice" units:"-"`
	R4LES float64 `desc:"Tetens temperature offset, water" units:"K"`
	R4IES float64 `desc:"Tetens temperature offset, ice" units:"K"`

	// Blend bands.
	RTWAT   float64 `desc:"Temperature above which there is only water" units:"K"`
	RTICE   float64 `desc:"Temperature below which there is only ice" units:"K"`
	RTICECU float64 `desc:"RTICE for the convection scheme" units:"K"`

	// QuadraticBlend squares the water fraction inside the blend band.
	QuadraticBlend bool

	ZQMAX float64 `desc:"Upper limit of saturation vapour pressure over pressure" units:"-"`
	QMin  float64 `desc:"Lower limit of saturation specific humidity" units:"kg/kg"`

	// TRef is the reference temperature of the linearized formulas.
	TRef float64 `units:"K"`
}

// ThermoOption changes a Thermo table while it is being derived.
type ThermoOption func(*Thermo) error

// QuadraticBlend squares the water fraction in the mixed-phase band, which
// is the operational formulation of the host model.
func QuadraticBlend() ThermoOption {
	return func(th *Thermo) error {
		th.QuadraticBlend = true
		return nil
	}
}

// LinearizeAt sets the reference temperature [K] of the linearized formulas.
func LinearizeAt(tref float64) ThermoOption {
	return func(th *Thermo) error {
		if tref <= th.R4LES || math.IsNaN(tref) || math.IsInf(tref, 0) {
			return fmt.Errorf("satur: linearization reference temperature %g K must be above %g K", tref, th.R4LES)
		}
		th.TRef = tref
		return nil
	}
}

// IceThresholds sets the temperatures [K] below which there is only ice,
// for the large-scale and the convective blend bands.
func IceThresholds(tice, ticecu float64) ThermoOption {
	return func(th *Thermo) error {
		if tice >= th.RTWAT || ticecu >= th.RTWAT {
			return fmt.Errorf("satur: ice thresholds (%g K, %g K) must be below RTWAT=%g K", tice, ticecu, th.RTWAT)
		}
		th.RTICE, th.RTICECU = tice, ticecu
		return nil
	}
}

// QMax sets the upper limit of saturation vapour pressure over pressure.
func QMax(zqmax float64) ThermoOption {
	return func(th *Thermo) error {
		if zqmax <= 0 || zqmax*th.RETV >= 1 {
			return fmt.Errorf("satur: ZQMAX=%g must be in (0, %g)", zqmax, 1/th.RETV)
		}
		th.ZQMAX = zqmax
		return nil
	}
}

// NewThermo derives the thermodynamic function table from c.
func NewThermo(c *Constants, opts ...ThermoOption) (*Thermo, error) {
	if c == nil {
		return nil, fmt.Errorf("satur: nil constant table")
	}
	th := &Thermo{
		RTT:   c.RTT,
		RETV:  c.RETV,
		R2ES:  611.21 * c.RD / c.RV,
		R3LES: 17.502,
		R3IES: 22.587,
		R4LES: 32.19,
		R4IES: -0.7,
		RTWAT: c.RTT,
		ZQMAX: 0.5,
		QMin:  1.e-12,
	}
	th.RTICE = c.RTT - 23
	th.RTICECU = c.RTT - 23
	th.TRef = c.RTT

	for _, o := range opts {
		if err := o(th); err != nil {
			return nil, err
		}
	}
	return th, nil
}

// iceThreshold returns the lower end of the blend band of mode m.
func (th *Thermo) iceThreshold(m Mode) float64 {
	if m == ModeMixedConvective {
		return th.RTICECU
	}
	return th.RTICE
}
