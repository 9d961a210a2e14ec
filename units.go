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

	"github.com/ctessum/unit"
)

var (
	pressureDims    = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -1, unit.TimeDim: -2}
	temperatureDims = unit.Dimensions{unit.TemperatureDim: 1}
)

// PointUnits is Point with dimension checking. p must be a pressure and t
// a temperature; the result is dimensionless [kg/kg].
func (th *Thermo) PointUnits(p, t *unit.Unit, mode Mode, linear bool) (*unit.Unit, error) {
	if err := p.Check(pressureDims); err != nil {
		return nil, fmt.Errorf("satur: pressure: %v", err)
	}
	if err := t.Check(temperatureDims); err != nil {
		return nil, fmt.Errorf("satur: temperature: %v", err)
	}
	q, err := th.Point(p.Value(), t.Value(), mode, linear)
	if err != nil {
		return nil, err
	}
	return unit.New(q, unit.Dimensions{}), nil
}
