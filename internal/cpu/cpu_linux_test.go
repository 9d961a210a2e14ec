//go:build linux && (amd64 || arm64)
// +build linux
// +build amd64 arm64

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

package cpu

import (
	"runtime"
	"testing"
)

func TestGetcpu(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	n, err := getcpu()
	if err != nil {
		t.Fatal(err)
	}
	if c := Current(); n < 0 || c < 0 {
		t.Errorf("core indices should not be negative: %d, %d", n, c)
	}
}
