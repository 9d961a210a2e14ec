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

// Package cpu reports which processor core the calling thread is running
// on, for performance diagnostics.
package cpu

// Current returns the index of the core executing the calling thread.
// It returns 0 where the operating system cannot report it.
// Goroutines migrate between threads, so the value is only a snapshot.
func Current() int {
	n, err := getcpu()
	if err != nil {
		return 0
	}
	return n
}
