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

package saturutil

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/satur"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestBenchmark(t *testing.T) {
	pc := testProfileConfig()
	c := satur.NewConstants()
	th, err := satur.NewThermo(c)
	if err != nil {
		t.Fatal(err)
	}
	log := logrus.New()
	log.Out = new(bytes.Buffer)
	k := satur.NewKernel(th, satur.Logger(log))
	timings, err := Benchmark(k, c, pc, satur.Full(pc.NLon), satur.ModeMixed, true, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"non-linear", "tangent-linear", "adjoint"}
	if len(timings) != len(want) {
		t.Fatalf("have %d timings, want %d", len(timings), len(want))
	}
	for i, tm := range timings {
		if tm.Kernel != want[i] {
			t.Errorf("timing %d: kernel %q, want %q", i, tm.Kernel, want[i])
		}
		if tm.Elapsed < 0 {
			t.Errorf("%s: negative runtime %v", tm.Kernel, tm.Elapsed)
		}
	}

	if _, err = Benchmark(k, c, pc, satur.Full(pc.NLon), satur.ModeMixed, true, 0); err == nil {
		t.Error("zero repeats should be an error")
	}
	if _, err = Benchmark(k, c, pc, satur.Full(pc.NLon+1), satur.ModeMixed, true, 1); err == nil {
		t.Error("bounds outside of the grid should be an error")
	}
}

func TestWriteTimings(t *testing.T) {
	timings := []Timing{{"non-linear", 1500 * time.Microsecond}, {"adjoint", 2 * time.Millisecond}}
	var b bytes.Buffer
	if err := WriteTimings(&b, timings); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"non-linear", "1.5000", "adjoint", "2.0000"} {
		if !strings.Contains(b.String(), want) {
			t.Errorf("output does not contain %q:\n%s", want, b.String())
		}
	}
}

func TestPlotTimings(t *testing.T) {
	timings := []Timing{
		{"non-linear", 3 * time.Millisecond},
		{"tangent-linear", 5 * time.Millisecond},
		{"adjoint", 6 * time.Millisecond},
	}
	var b bytes.Buffer
	if err := PlotTimings(&b, timings); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b.Bytes(), pngMagic) {
		t.Error("output is not a PNG image")
	}
}

func TestBenchmarkCmd(t *testing.T) {
	dir, err := ioutil.TempDir("", "satur")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	fname := filepath.Join(dir, "runtimes.png")
	out, err := execute(t, "benchmark", "--Thermo.File=", "--Thermo.TRef=0",
		"--Profile.NLon=5", "--Profile.NLev=6", "--Profile.KIDIA=1", "--Profile.KFDIA=-1", "--Profile.KTDIA=1",
		"--Mode=mixed", "--Linear=false", "--Benchmark.Repeats=2", "--Benchmark.Plot="+fname)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"non-linear", "tangent-linear", "adjoint", "runtime [ms]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
	img, err := ioutil.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(img, pngMagic) {
		t.Error("benchmark plot is not a PNG image")
	}
	if _, err = execute(t, "benchmark", "--Benchmark.Repeats=0", "--Benchmark.Plot="); err == nil {
		t.Error("zero repeats should be an error")
	}
}
