/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/fvweno/InputParameters"
	"github.com/notargets/fvweno/eos"
	"github.com/notargets/fvweno/model_problems/Euler2D"
	"github.com/notargets/fvweno/output"
)

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Two dimensional structured grid solver with the two dimensional HLLE flux",
	Long: `
Two dimensional structured grid solver for Riemann configurations, planar shock tubes, the
isentropic vortex and freestream flows

fvweno 2D -I input.yaml
########################################
Title: "Lax Liu Configuration 3"
CFL: 0.4
FinalTime: 0.3
M: 200
N: 200
FluxType: HLLE2d # Can be HLLE1d
InitType: Quadrant3 # Can be Quadrant6, ShockTube, IVortex, Freestream
BCs:
  West: Out
  North: Wall
########################################`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip *InputParameters.InputParameters2D
		)
		if ip, err = processInput2D(cmd.Flags()); err != nil {
			return
		}
		outFile, _ := cmd.Flags().GetString("output")
		return Run2D(ip, outFile, viper.GetBool("verbose"))
	},
}

func init() {
	rootCmd.AddCommand(TwoDCmd)
	ip := InputParameters.NewInputParameters2D()
	TwoDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters, flags override its values")
	TwoDCmd.Flags().StringP("output", "o", "", "write the final solution as CSV, zstd compressed if the name ends in .zst")
	TwoDCmd.Flags().IntP("m", "m", ip.M, "Number of interior cells along x")
	TwoDCmd.Flags().IntP("n", "n", ip.N, "Number of interior cells along y")
	TwoDCmd.Flags().StringP("case", "c", ip.InitType, "Quadrant3, Quadrant6, ShockTube, IVortex or Freestream")
	TwoDCmd.Flags().StringP("flux", "f", ip.FluxType, "HLLE1d or HLLE2d")
	TwoDCmd.Flags().Float64("CFL", ip.CFL, "CFL - increase for speedup, decrease for stability")
	TwoDCmd.Flags().Float64("finalTime", ip.FinalTime, "FinalTime - the target end time for the sim")
	TwoDCmd.Flags().Int("maxIterations", ip.MaxIterations, "stop after this many steps, 0 is no limit")
}

func processInput2D(flags *pflag.FlagSet) (ip *InputParameters.InputParameters2D, err error) {
	var (
		data  []byte
		fname string
	)
	ip = InputParameters.NewInputParameters2D()
	if fname, _ = flags.GetString("inputConditionsFile"); len(fname) != 0 {
		if data, err = os.ReadFile(fname); err != nil {
			return nil, err
		}
		if err = ip.Parse(data); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", fname, err)
		}
	}
	if flags.Changed("m") {
		ip.M, _ = flags.GetInt("m")
	}
	if flags.Changed("n") {
		ip.N, _ = flags.GetInt("n")
	}
	if flags.Changed("case") {
		ip.InitType, _ = flags.GetString("case")
		ip.Title = ip.InitType
	}
	if flags.Changed("flux") {
		ip.FluxType, _ = flags.GetString("flux")
	}
	if flags.Changed("CFL") {
		ip.CFL, _ = flags.GetFloat64("CFL")
	}
	if flags.Changed("finalTime") {
		ip.FinalTime, _ = flags.GetFloat64("finalTime")
	}
	if flags.Changed("maxIterations") {
		ip.MaxIterations, _ = flags.GetInt("maxIterations")
	}
	if pd := viper.GetInt("parallel"); pd != 0 {
		ip.ParallelDegree = pd
	}
	return
}

func Run2D(ip *InputParameters.InputParameters2D, outFile string, verbose bool) (err error) {
	var (
		c  *Euler2D.Euler
		pf Euler2D.Profile
	)
	if verbose {
		ip.Print()
	}
	if c, err = Euler2D.NewEuler(ip, verbose); err != nil {
		return
	}
	if err = instrumented(c.Run); err != nil {
		return
	}
	if pf, err = c.InteriorProfile(); err != nil {
		return
	}
	mach := c.GetFlowFunction(eos.Mach)
	fmt.Printf("Density [%8.5f, %8.5f], Max Mach = %8.5f at t = %8.5f\n",
		floats.Min(pf.Rho), floats.Max(pf.Rho), floats.Max(mach), c.Time)
	if exact, exErr := c.ExactDensity(); exErr == nil {
		fmt.Printf("L1 density error = %11.4e\n", floats.Distance(pf.Rho, exact, 1)*c.Grid.DX*c.Grid.DY)
	}
	if len(outFile) != 0 {
		if err = output.WriteFile(outFile, []string{"x", "y", "rho", "u", "v", "p", "mach"},
			pf.X, pf.Y, pf.Rho, pf.U, pf.V, pf.P, mach); err != nil {
			return
		}
		fmt.Printf("Wrote %s\n", outFile)
	}
	return
}
