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

import "math"

// Alpha returns the fraction of water [0-1] at temperature t [K] used to
// blend saturation over water and over ice. It is 1 for ModeWater and at
// or above RTWAT, and 0 at or below the ice threshold of the mode.
func (th *Thermo) Alpha(t float64, m Mode) float64 {
	if m == ModeWater {
		return 1
	}
	tice := th.iceThreshold(m)
	a := (math.Max(tice, math.Min(th.RTWAT, t)) - tice) / (th.RTWAT - tice)
	if th.QuadraticBlend {
		return a * a
	}
	return a
}

// dAlpha is the derivative of Alpha with respect to temperature. At the ends
// of the band the flat side is taken.
func (th *Thermo) dAlpha(t float64, m Mode) float64 {
	if m == ModeWater {
		return 0
	}
	tice := th.iceThreshold(m)
	if t <= tice || t >= th.RTWAT {
		return 0
	}
	r := 1 / (th.RTWAT - tice)
	if th.QuadraticBlend {
		return 2 * (t - tice) * r * r
	}
	return r
}

// foeew is the Tetens formula, multiplied by RD/RV.
func (th *Thermo) foeew(t, r3, r4 float64) float64 {
	return th.R2ES * math.Exp(r3*(t-th.RTT)/(t-r4))
}

// dlnfoeew is the temperature derivative of the logarithm of foeew.
func (th *Thermo) dlnfoeew(t, r3, r4 float64) float64 {
	return r3 * (th.RTT - r4) / ((t - r4) * (t - r4))
}

// VapourPressure returns the saturation vapour pressure [Pa] at
// temperature t [K], multiplied by RD/RV.
// Terms with zero weight are not evaluated.
func (th *Thermo) VapourPressure(t float64, m Mode) float64 {
	a := th.Alpha(t, m)
	switch a {
	case 1:
		return th.foeew(t, th.R3LES, th.R4LES)
	case 0:
		return th.foeew(t, th.R3IES, th.R4IES)
	default:
		return a*th.foeew(t, th.R3LES, th.R4LES) + (1-a)*th.foeew(t, th.R3IES, th.R4IES)
	}
}

// dVapourPressure is the temperature derivative of VapourPressure [Pa/K].
func (th *Thermo) dVapourPressure(t float64, m Mode) float64 {
	a := th.Alpha(t, m)
	da := th.dAlpha(t, m)
	var de float64
	if a > 0 {
		ew := th.foeew(t, th.R3LES, th.R4LES)
		de += a * ew * th.dlnfoeew(t, th.R3LES, th.R4LES)
		if da != 0 {
			de += da * ew
		}
	}
	if a < 1 {
		ei := th.foeew(t, th.R3IES, th.R4IES)
		de += (1 - a) * ei * th.dlnfoeew(t, th.R3IES, th.R4IES)
		if da != 0 {
			de -= da * ei
		}
	}
	return de
}

// zqs returns the limited ratio of vapour pressure e [Pa] to pressure
// p [Pa], and whether the limit was applied. Pressures that are not
// positive are treated as vanishing pressure.
func (th *Thermo) zqs(p, e float64) (float64, bool) {
	z := e / p
	if !(p > 0) || z > th.ZQMAX || math.IsNaN(z) {
		return th.ZQMAX, true
	}
	return z, false
}

// qMax is the largest saturation specific humidity the kernels return.
func (th *Thermo) qMax() float64 { return th.ZQMAX / (1 - th.RETV*th.ZQMAX) }

// specificHumidity converts e [Pa], multiplied by RD/RV, to saturation
// specific humidity [kg/kg] at pressure p [Pa]. This is
// ε e / (p - (1-ε) e) with ε = RD/RV.
func (th *Thermo) specificHumidity(p, e float64) float64 {
	z, _ := th.zqs(p, e)
	return math.Max(z/(1-th.RETV*z), th.QMin)
}

// QSat returns the saturation specific humidity [kg/kg] at pressure p [Pa]
// and temperature t [K].
func (th *Thermo) QSat(p, t float64, m Mode) float64 {
	return th.specificHumidity(p, th.VapourPressure(t, m))
}

// DQSatDT returns the temperature derivative of QSat [kg/kg/K].
// It is zero where QSat is limited.
func (th *Thermo) DQSatDT(p, t float64, m Mode) float64 {
	dqdt, _ := th.tangent(p, t, m)
	return dqdt
}

// tangent returns the derivatives of QSat with respect to temperature and
// pressure.
func (th *Thermo) tangent(p, t float64, m Mode) (dqdt, dqdp float64) {
	e := th.VapourPressure(t, m)
	z, limited := th.zqs(p, e)
	if limited || z/(1-th.RETV*z) <= th.QMin {
		return 0, 0
	}
	cor := 1 / (1 - th.RETV*z)
	dqdz := cor * cor
	return dqdz * th.dVapourPressure(t, m) / p, -dqdz * e / (p * p)
}

// QSatLinear returns the first-order Taylor expansion of QSat around TRef,
// evaluated at pressure p [Pa] and temperature t [K]. It equals QSat at
// TRef and is limited to [QMin, ZQMAX/(1-RETV*ZQMAX)].
func (th *Thermo) QSatLinear(p, t float64, m Mode) float64 {
	q0, q1 := th.linearCoefficients(p, m)
	return math.Min(math.Max(q0+q1*(t-th.TRef), th.QMin), th.qMax())
}

// linearCoefficients returns QSat and its temperature derivative at TRef
// for pressure p.
func (th *Thermo) linearCoefficients(p float64, m Mode) (q0, q1 float64) {
	e0 := th.VapourPressure(th.TRef, m)
	z, limited := th.zqs(p, e0)
	cor := 1 / (1 - th.RETV*z)
	q0 = z * cor
	if limited {
		return q0, 0
	}
	return q0, th.dVapourPressure(th.TRef, m) / p * cor * cor
}

// linearTangent returns the derivatives of QSatLinear with respect to
// temperature and pressure.
func (th *Thermo) linearTangent(p, t float64, m Mode) (dqdt, dqdp float64) {
	q0, q1 := th.linearCoefficients(p, m)
	q := q0 + q1*(t-th.TRef)
	if q <= th.QMin || q >= th.qMax() {
		return 0, 0
	}
	e0 := th.VapourPressure(th.TRef, m)
	z, limited := th.zqs(p, e0)
	if limited {
		return 0, 0
	}
	d := 1 - th.RETV*z
	e1 := th.dVapourPressure(th.TRef, m)
	dq0dp := -e0 / (p * p * d * d)
	dq1dp := -e1/(p*p*d*d) - 2*e1*th.RETV*e0/(p*p*p*d*d*d)
	return q1, dq0dp + dq1dp*(t-th.TRef)
}
