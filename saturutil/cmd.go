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

// Package saturutil contains the command-line interface of SATUR.
package saturutil

import (
	"fmt"
	"os"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/satur"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to SATUR.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel is the minimum severity of log messages that are printed.
              Options are panic, fatal, error, warning, info, and debug. At the
              debug level, each kernel worker reports the processor core it ran on.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Mode",
			usage: `
              Mode selects the saturation formula family: water (0) for saturation over
              liquid water only, mixed (1) to blend ice and water saturation between
              Thermo.RTICE and the triple point, or mixed-convective (2) to use the
              blend band of the convection scheme.`,
			shorthand:  "m",
			defaultVal: "mixed",
			flagsets:   []*pflag.FlagSet{profileCmd.Flags(), benchmarkCmd.Flags()},
		},
		{
			name: "Linear",
			usage: `
              Linear specifies whether to use the formula linearized around
              Thermo.TRef, as tangent-linear and adjoint physics do.`,
			shorthand:  "l",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{profileCmd.Flags(), benchmarkCmd.Flags()},
		},
		{
			name: "Concurrency",
			usage: `
              Concurrency is the number of goroutines the kernel uses. Values
              below 1 use one goroutine per processor.`,
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{profileCmd.Flags(), benchmarkCmd.Flags()},
		},
		{
			name: "Thermo.File",
			usage: `
              Thermo.File is the location of an optional TOML file with [Constants]
              and [Thermo] tables that override the default constants. The output of
              the 'constants' command has the right format.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{profileCmd.Flags(), constantsCmd.Flags(), benchmarkCmd.Flags()},
		},
		{
			name: "Thermo.QuadraticBlend",
			usage: `
              Thermo.QuadraticBlend specifies whether to square the water fraction
              in the mixed-phase band instead of interpolating it linearly.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{profileCmd.Flags(), constantsCmd.Flags(), benchmarkCmd.Flags()},
		},
		{
			name: "Thermo.TRef",
			usage: `
              Thermo.TRef is the reference temperature [K] of the linearized formulas.
              Zero uses the value in Thermo.File, or the triple point of water.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{profileCmd.Flags(), constantsCmd.Flags(), benchmarkCmd.Flags()},
		},
		{
			name: "Benchmark.Repeats",
			usage: `
              Benchmark.Repeats is the number of times each kernel is run by the
              benchmark command. Reported runtimes are means over the repeats.`,
			defaultVal: 10,
			flagsets:   []*pflag.FlagSet{benchmarkCmd.Flags()},
		},
		{
			name: "Benchmark.Plot",
			usage: `
              Benchmark.Plot is the location of a PNG file to write a bar chart of
              the kernel runtimes to. No chart is drawn if it is empty.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{benchmarkCmd.Flags()},
		},
		{
			name: "Profile.NLon",
			usage: `
              Profile.NLon is the number of columns (KLON).`,
			defaultVal: 4,
			flagsets:   []*pflag.FlagSet{profileCmd.Flags(), benchmarkCmd.Flags()},
		},
		{
			name: "Profile.NLev",
			usage: `
              Profile.NLev is the number of levels (KLEV). Level 1 is the top.`,
			defaultVal: 10,
			flagsets:   []*pflag.FlagSet{profileCmd.Flags(), benchmarkCmd.Flags()},
		},
		{
			name: "Profile.KIDIA",
			usage: `
              Profile.KIDIA is the first active column, starting at 1.`,
			defaultVal: 1,
			flagsets:   []*pflag.FlagSet{profileCmd.Flags(), benchmarkCmd.Flags()},
		},
		{
			name: "Profile.KFDIA",
			usage: `
              Profile.KFDIA is the last active column. Values below 1 select the
              last column of the grid.`,
			defaultVal: -1,
			flagsets:   []*pflag.FlagSet{profileCmd.Flags(), benchmarkCmd.Flags()},
		},
		{
			name: "Profile.KTDIA",
			usage: `
              Profile.KTDIA is the first active level, starting at 1.`,
			defaultVal: 1,
			flagsets:   []*pflag.FlagSet{profileCmd.Flags(), benchmarkCmd.Flags()},
		},
		{
			name: "Profile.SurfacePressure",
			usage: `
              Profile.SurfacePressure is the pressure [Pa] of the lowest level.`,
			defaultVal: 101325.0,
			flagsets:   []*pflag.FlagSet{profileCmd.Flags(), benchmarkCmd.Flags()},
		},
		{
			name: "Profile.TopPressure",
			usage: `
              Profile.TopPressure is the pressure [Pa] at the top of the model.`,
			defaultVal: 10000.0,
			flagsets:   []*pflag.FlagSet{profileCmd.Flags(), benchmarkCmd.Flags()},
		},
		{
			name: "Profile.SurfaceTemperature",
			usage: `
              Profile.SurfaceTemperature is the temperature [K] of the lowest level
              in the middle column.`,
			defaultVal: 288.15,
			flagsets:   []*pflag.FlagSet{profileCmd.Flags(), benchmarkCmd.Flags()},
		},
		{
			name: "Profile.LapseRate",
			usage: `
              Profile.LapseRate is the temperature decrease with height [K/m] up to
              the tropopause temperature of 216.65 K.`,
			defaultVal: 0.0065,
			flagsets:   []*pflag.FlagSet{profileCmd.Flags(), benchmarkCmd.Flags()},
		},
		{
			name: "Profile.ColumnStep",
			usage: `
              Profile.ColumnStep is the surface temperature difference [K] between
              adjacent columns.`,
			defaultVal: 2.0,
			flagsets:   []*pflag.FlagSet{profileCmd.Flags(), benchmarkCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("SATUR")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(constantsCmd)
	Root.AddCommand(profileCmd)
	Root.AddCommand(benchmarkCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets the log level.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("satur: problem reading configuration file: %v", err)
		}
	}
	level, err := logrus.ParseLevel(Cfg.GetString("LogLevel"))
	if err != nil {
		return fmt.Errorf("satur: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "satur",
	Short: "Saturation specific humidity for atmospheric model columns.",
	Long: `SATUR calculates saturation specific humidity from pressure and temperature
for the columns and levels of an atmospheric model grid.
Use the subcommands specified below to access the model functionality.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'SATUR_var' where 'var' is the
name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of SATUR.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("SATUR v%s\n", satur.Version)
	},
	DisableAutoGenTag: true,
}

// constantsCmd prints the constant tables.
var constantsCmd = &cobra.Command{
	Use:   "constants",
	Short: "Print the constant tables",
	Long: `constants prints the physical constants and the derived thermodynamic
function table, after applying any overrides, in TOML format. The output can be
edited and used as the Thermo.File of later runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, th, err := loadThermo(Cfg)
		if err != nil {
			return err
		}
		return WriteTables(cmd.OutOrStdout(), c, th)
	},
	DisableAutoGenTag: true,
}

// profileCmd calculates saturation specific humidity for an idealized grid.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Calculate saturation specific humidity for idealized columns",
	Long: `profile creates Profile.NLon columns of Profile.NLev levels with a
standard-atmosphere temperature profile, calculates saturation specific
humidity within the active range given by Profile.KIDIA, Profile.KFDIA and
Profile.KTDIA, and prints the result for each level.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := satur.ParseMode(Cfg.GetString("Mode"))
		if err != nil {
			return err
		}
		c, th, err := loadThermo(Cfg)
		if err != nil {
			return err
		}
		pc, b, err := profileConfig(Cfg)
		if err != nil {
			return err
		}
		k := satur.NewKernel(th, satur.Concurrency(Cfg.GetInt("Concurrency")))
		_, err = Profile(cmd.OutOrStdout(), k, c, pc, b, mode, Cfg.GetBool("Linear"))
		return err
	},
	DisableAutoGenTag: true,
}

// benchmarkCmd times the kernels on idealized columns.
var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Time the non-linear, tangent-linear and adjoint kernels",
	Long: `benchmark creates the idealized columns of the profile command and runs
the non-linear, tangent-linear and adjoint kernels Benchmark.Repeats times
each, printing the mean runtime of each kernel. If Benchmark.Plot is set, a
bar chart of the runtimes is written there in PNG format.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := satur.ParseMode(Cfg.GetString("Mode"))
		if err != nil {
			return err
		}
		c, th, err := loadThermo(Cfg)
		if err != nil {
			return err
		}
		pc, b, err := profileConfig(Cfg)
		if err != nil {
			return err
		}
		repeats, err := cast.ToIntE(Cfg.Get("Benchmark.Repeats"))
		if err != nil {
			return fmt.Errorf("satur: reading Benchmark.Repeats: %v", err)
		}
		k := satur.NewKernel(th, satur.Concurrency(Cfg.GetInt("Concurrency")))
		timings, err := Benchmark(k, c, pc, b, mode, Cfg.GetBool("Linear"), repeats)
		if err != nil {
			return err
		}
		if err = WriteTimings(cmd.OutOrStdout(), timings); err != nil {
			return err
		}
		fname := Cfg.GetString("Benchmark.Plot")
		if fname == "" {
			return nil
		}
		f, err := os.Create(os.ExpandEnv(fname))
		if err != nil {
			return fmt.Errorf("satur: creating benchmark plot: %v", err)
		}
		if err = PlotTimings(f, timings); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	},
	DisableAutoGenTag: true,
}

// profileConfig reads the idealized grid and its active range from cfg.
func profileConfig(cfg *viper.Viper) (ProfileConfig, satur.Bounds, error) {
	var pc ProfileConfig
	var err error
	if pc.NLon, err = cast.ToIntE(cfg.Get("Profile.NLon")); err != nil {
		return pc, satur.Bounds{}, fmt.Errorf("satur: reading Profile.NLon: %v", err)
	}
	if pc.NLev, err = cast.ToIntE(cfg.Get("Profile.NLev")); err != nil {
		return pc, satur.Bounds{}, fmt.Errorf("satur: reading Profile.NLev: %v", err)
	}
	pc.SurfacePressure = cfg.GetFloat64("Profile.SurfacePressure")
	pc.TopPressure = cfg.GetFloat64("Profile.TopPressure")
	pc.SurfaceTemperature = cfg.GetFloat64("Profile.SurfaceTemperature")
	pc.LapseRate = cfg.GetFloat64("Profile.LapseRate")
	pc.ColumnStep = cfg.GetFloat64("Profile.ColumnStep")

	kfdia := cfg.GetInt("Profile.KFDIA")
	if kfdia < 1 {
		kfdia = pc.NLon
	}
	b := satur.FortranBounds(cfg.GetInt("Profile.KIDIA"), kfdia, cfg.GetInt("Profile.KTDIA"))
	return pc, b, nil
}
