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

import "fmt"

// RangeError is returned when the active bounds of a kernel call do not fit
// inside the fields or are out of order.
type RangeError struct {
	Bounds     Bounds
	NLon, NLev int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("satur: invalid active range columns [%d, %d) levels [%d, %d) for a %d×%d grid",
		e.Bounds.ColBegin, e.Bounds.ColEnd, e.Bounds.LevBegin, e.NLev, e.NLon, e.NLev)
}

// ModeError is returned when a kernel is called with a mode flag that
// does not select a saturation formula.
type ModeError struct {
	Mode Mode
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("satur: unrecognized mode %d; valid modes are %d (water), %d (mixed) and %d (mixed convective)",
		int(e.Mode), int(ModeWater), int(ModeMixed), int(ModeMixedConvective))
}

// ShapeError is returned when a field is not two-dimensional or its
// shape differs from the other fields of the same call.
type ShapeError struct {
	Field       string
	Shape, Want []int
}

func (e *ShapeError) Error() string {
	if e.Want == nil {
		return fmt.Sprintf("satur: field %s has shape %v; it must have dimensions [columns, levels]",
			e.Field, e.Shape)
	}
	return fmt.Sprintf("satur: field %s has shape %v but should have shape %v", e.Field, e.Shape, e.Want)
}
