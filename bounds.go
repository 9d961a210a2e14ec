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

import "github.com/ctessum/sparse"

// Bounds is the active sub-rectangle of a [columns, levels] field.
// Indices are zero-based: columns in [ColBegin, ColEnd) and levels in
// [LevBegin, nlev) are read and written; nothing else is touched.
type Bounds struct {
	ColBegin, ColEnd int
	LevBegin         int
}

// FortranBounds converts the one-based, inclusive KIDIA, KFDIA and KTDIA
// convention of the host model into Bounds.
func FortranBounds(kidia, kfdia, ktdia int) Bounds {
	return Bounds{ColBegin: kidia - 1, ColEnd: kfdia, LevBegin: ktdia - 1}
}

// Full returns Bounds covering every cell of a field with nlon columns.
func Full(nlon int) Bounds {
	return Bounds{ColBegin: 0, ColEnd: nlon, LevBegin: 0}
}

// check makes sure that b fits in a nlon×nlev field and is ordered.
func (b Bounds) check(nlon, nlev int) error {
	if b.ColBegin < 0 || b.ColBegin >= b.ColEnd || b.ColEnd > nlon ||
		b.LevBegin < 0 || b.LevBegin >= nlev {
		return &RangeError{Bounds: b, NLon: nlon, NLev: nlev}
	}
	return nil
}

// active calls f for every active (column, level) pair of the columns
// [c0, c1).
func (b Bounds) active(c0, c1, nlev int, f func(i, k int)) {
	for i := c0; i < c1; i++ {
		for k := b.LevBegin; k < nlev; k++ {
			f(i, k)
		}
	}
}

// NewField allocates a zeroed nlon×nlev field.
func NewField(nlon, nlev int) *sparse.DenseArray {
	return sparse.ZerosDense(nlon, nlev)
}

// namedField pairs a field with the name used in error messages.
type namedField struct {
	name string
	f    *sparse.DenseArray
}

// checkFields makes sure that all fields are two-dimensional and have the
// same shape, and returns that shape.
func checkFields(fields ...namedField) (nlon, nlev int, err error) {
	var want []int
	for _, nf := range fields {
		if nf.f == nil || len(nf.f.Shape) != 2 || len(nf.f.Elements) != nf.f.Shape[0]*nf.f.Shape[1] {
			var shape []int
			if nf.f != nil {
				shape = nf.f.Shape
			}
			return 0, 0, &ShapeError{Field: nf.name, Shape: shape}
		}
		if want == nil {
			want = nf.f.Shape
			continue
		}
		if nf.f.Shape[0] != want[0] || nf.f.Shape[1] != want[1] {
			return 0, 0, &ShapeError{Field: nf.name, Shape: nf.f.Shape, Want: want}
		}
	}
	return want[0], want[1], nil
}
