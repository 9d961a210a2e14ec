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

// Command satur is a command-line interface for the SATUR saturation
// specific humidity kernels.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spatialmodel/satur/saturutil"
)

func main() {
	os.Exit(run(os.Stderr))
}

// run executes the command line, writing any error to stderr, and returns
// the exit status.
func run(stderr io.Writer) int {
	if err := saturutil.Root.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return -1
	}
	return 0
}
