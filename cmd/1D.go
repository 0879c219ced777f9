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

	"github.com/notargets/fvweno/InputParameters"
	"github.com/notargets/fvweno/model_problems/Euler1D"
	"github.com/notargets/fvweno/output"
	"github.com/notargets/fvweno/sod_shock_tube"
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One Dimensional Euler Shock Tube Solutions",
	Long: `
Executes the finite volume WENO solver for one dimensional shock tube and smooth flow problems,

fvweno 1D -I input.yaml --K 400 --flux roe`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip *InputParameters.InputParameters1D
		)
		if ip, err = processInput1D(cmd.Flags()); err != nil {
			return
		}
		outFile, _ := cmd.Flags().GetString("output")
		return Run1D(ip, outFile, viper.GetBool("verbose"))
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	ip := InputParameters.NewInputParameters1D()
	OneDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters, flags override its values")
	OneDCmd.Flags().StringP("output", "o", "", "write the final profile as CSV, zstd compressed if the name ends in .zst")
	OneDCmd.Flags().IntP("k", "k", ip.K, "Number of interior cells")
	OneDCmd.Flags().StringP("case", "c", ip.InitType, "Case to run: Sod, Lax, ShuOsher, 123, DensityWave")
	OneDCmd.Flags().StringP("reconstruction", "r", ip.Reconstruction, "WENO5, WENO7, Poly5 or Poly7")
	OneDCmd.Flags().StringP("flux", "f", ip.FluxType, "HLLE, HLLC, Roe, LF, Rusanov or AUSM")
	OneDCmd.Flags().Float64("CFL", ip.CFL, "CFL - increase for speedup, decrease for stability")
	OneDCmd.Flags().Float64("finalTime", ip.FinalTime, "FinalTime - the target end time for the sim")
	OneDCmd.Flags().Int("maxIterations", ip.MaxIterations, "stop after this many steps, 0 is no limit")
	OneDCmd.Flags().String("bcLeft", ip.BCLeft, "left boundary: Out, Wall or Periodic")
	OneDCmd.Flags().String("bcRight", ip.BCRight, "right boundary: Out, Wall or Periodic")
}

// processInput1D starts from the defaults, applies the input file, then any flags set on the command line
func processInput1D(flags *pflag.FlagSet) (ip *InputParameters.InputParameters1D, err error) {
	var (
		data  []byte
		fname string
	)
	ip = InputParameters.NewInputParameters1D()
	if fname, _ = flags.GetString("inputConditionsFile"); len(fname) != 0 {
		if data, err = os.ReadFile(fname); err != nil {
			return nil, err
		}
		if err = ip.Parse(data); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", fname, err)
		}
	}
	if flags.Changed("k") {
		ip.K, _ = flags.GetInt("k")
	}
	if flags.Changed("case") {
		ip.InitType, _ = flags.GetString("case")
		ip.Title = ip.InitType
	}
	if flags.Changed("reconstruction") {
		ip.Reconstruction, _ = flags.GetString("reconstruction")
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
	if flags.Changed("bcLeft") {
		ip.BCLeft, _ = flags.GetString("bcLeft")
	}
	if flags.Changed("bcRight") {
		ip.BCRight, _ = flags.GetString("bcRight")
	}
	if pd := viper.GetInt("parallel"); pd != 0 {
		ip.ParallelDegree = pd
	}
	return
}

func Run1D(ip *InputParameters.InputParameters1D, outFile string, verbose bool) (err error) {
	var (
		c  *Euler1D.Euler
		pf Euler1D.Profile
	)
	if verbose {
		ip.Print()
	}
	if c, err = Euler1D.NewEuler(ip, verbose); err != nil {
		return
	}
	if err = instrumented(c.Run); err != nil {
		return
	}
	if pf, err = c.InteriorProfile(); err != nil {
		return
	}
	names, cols := []string{"x", "rho", "u", "p", "e"}, [][]float64{pf.X, pf.Rho, pf.U, pf.P, pf.E}
	if exact, exErr := c.ExactDensity(); exErr == nil {
		fmt.Printf("L1 density error = %11.4e at t = %8.5f\n",
			sod_shock_tube.L1Error(pf.Rho, exact, c.Grid.DX), c.Time)
		names, cols = append(names, "rho_exact"), append(cols, exact)
	}
	if len(outFile) != 0 {
		if err = output.WriteFile(outFile, names, cols...); err != nil {
			return
		}
		fmt.Printf("Wrote %s\n", outFile)
	}
	return
}
