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

	perf "github.com/hodgesds/perf-utils"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fvweno",
	Short: "Finite volume WENO solvers for the Euler equations",
	Long: `
Structured grid finite volume solutions of the compressible Euler equations, using WENO and
polynomial reconstructions with approximate Riemann fluxes in 1D and the two dimensional HLLE flux
in 2D, advanced in time with SSP Runge-Kutta 3.

fvweno 1D -I input.yaml
fvweno 2D -I input.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fvweno.yaml)")
	rootCmd.PersistentFlags().String("profile", "", "write a CPU profile of the run into this directory")
	rootCmd.PersistentFlags().Bool("perfCounters", false, "count CPU instructions executed by the run (Linux only)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", true, "print the input parameters and a progress table")
	rootCmd.PersistentFlags().IntP("parallel", "p", 0, "number of go routines, 0 uses every CPU")
	for _, name := range []string{"profile", "perfCounters", "verbose", "parallel"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		// Search config in home directory with name ".fvweno" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".fvweno")
	}
	viper.SetEnvPrefix("FVWENO")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// instrumented executes run under the profilers selected on the command line
func instrumented(run func() error) (err error) {
	var (
		ran    bool
		runErr error
		pv     *perf.ProfileValue
	)
	if dir := viper.GetString("profile"); len(dir) != 0 {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(dir)).Stop()
	}
	if !viper.GetBool("perfCounters") {
		return run()
	}
	pv, err = perf.CPUInstructions(func() error {
		ran = true
		runErr = run()
		return runErr
	})
	switch {
	case runErr != nil:
		return runErr
	case err != nil && !ran:
		fmt.Printf("Performance counters unavailable: %v\n", err)
		return run()
	case err != nil:
		fmt.Printf("Performance counters unavailable: %v\n", err)
		return nil
	}
	fmt.Printf("CPU instructions executed = %d\n", pv.Value)
	return nil
}
