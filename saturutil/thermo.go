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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lnashier/viper"
	"github.com/spatialmodel/satur"
)

// tableFile holds the overridable entries of the constant tables. Other
// keys, such as derived constants, are ignored when reading.
type tableFile struct {
	Constants struct {
		RTT, RKBOL, RNAVO, RMD, RMV, RLVTT, RLSTT, RG *float64
	}
	Thermo struct {
		RTICE, RTICECU, ZQMAX, TRef *float64
		QuadraticBlend              *bool
	}
}

// ReadTables reads constant table overrides in TOML format from r and
// derives the thermodynamic function table from them. opts are applied
// after the overrides.
func ReadTables(r io.Reader, opts ...satur.ThermoOption) (*satur.Constants, *satur.Thermo, error) {
	var f tableFile
	if _, err := toml.DecodeReader(r, &f); err != nil {
		return nil, nil, fmt.Errorf("satur: reading constant tables: %v", err)
	}

	c := satur.NewConstants()
	for _, o := range []struct {
		v   *float64
		dst *float64
	}{
		{f.Constants.RTT, &c.RTT},
		{f.Constants.RKBOL, &c.RKBOL},
		{f.Constants.RNAVO, &c.RNAVO},
		{f.Constants.RMD, &c.RMD},
		{f.Constants.RMV, &c.RMV},
		{f.Constants.RLVTT, &c.RLVTT},
		{f.Constants.RLSTT, &c.RLSTT},
		{f.Constants.RG, &c.RG},
	} {
		if o.v != nil {
			*o.dst = *o.v
		}
	}
	c.Derive()

	var thOpts []satur.ThermoOption
	if f.Thermo.RTICE != nil || f.Thermo.RTICECU != nil {
		tice, ticecu := c.RTT-23, c.RTT-23
		if f.Thermo.RTICE != nil {
			tice = *f.Thermo.RTICE
		}
		if f.Thermo.RTICECU != nil {
			ticecu = *f.Thermo.RTICECU
		}
		thOpts = append(thOpts, satur.IceThresholds(tice, ticecu))
	}
	if f.Thermo.ZQMAX != nil {
		thOpts = append(thOpts, satur.QMax(*f.Thermo.ZQMAX))
	}
	if f.Thermo.TRef != nil {
		thOpts = append(thOpts, satur.LinearizeAt(*f.Thermo.TRef))
	}
	if f.Thermo.QuadraticBlend != nil && *f.Thermo.QuadraticBlend {
		thOpts = append(thOpts, satur.QuadraticBlend())
	}
	th, err := satur.NewThermo(c, append(thOpts, opts...)...)
	if err != nil {
		return nil, nil, err
	}
	return c, th, nil
}

// WriteTables writes c and th to w in TOML format. The output can be read
// by ReadTables.
func WriteTables(w io.Writer, c *satur.Constants, th *satur.Thermo) error {
	return toml.NewEncoder(w).Encode(struct {
		Constants satur.Constants
		Thermo    satur.Thermo
	}{Constants: *c, Thermo: *th})
}

// loadThermo derives the constant tables from the Thermo.* settings in cfg.
func loadThermo(cfg *viper.Viper) (*satur.Constants, *satur.Thermo, error) {
	var opts []satur.ThermoOption
	if tref := cfg.GetFloat64("Thermo.TRef"); tref != 0 {
		opts = append(opts, satur.LinearizeAt(tref))
	}
	if cfg.GetBool("Thermo.QuadraticBlend") {
		opts = append(opts, satur.QuadraticBlend())
	}

	fname := cfg.GetString("Thermo.File")
	if fname == "" {
		return ReadTables(strings.NewReader(""), opts...)
	}
	f, err := os.Open(os.ExpandEnv(fname))
	if err != nil {
		return nil, nil, fmt.Errorf("satur: opening constant table file: %v", err)
	}
	defer f.Close()
	return ReadTables(f, opts...)
}
