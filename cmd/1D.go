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
	"math"
	"os"

	"github.com/notargets/gofv/FV1D"
	"github.com/notargets/gofv/InputParameters"
	"github.com/notargets/gofv/equations"
	"github.com/notargets/gofv/riemann"
	"github.com/notargets/gofv/sod_shock_tube"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One Dimensional Finite Volume Solutions",
	Long: `
Executes the Godunov-type wave propagation solver for 1D model problems,

gofv 1D `,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("1D called")
		ip := InputParameters.NewDefaults()
		if inputFile, _ := cmd.Flags().GetString("input"); inputFile != "" {
			data, err := os.ReadFile(inputFile)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			if err = ip.Parse(data); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		} else {
			mr, _ := cmd.Flags().GetInt("model")
			applyModelDefaults(ip, ModelType1D(mr))
			applyFlagOverrides(ip, cmd.Flags())
			if err := ip.Validate(); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		}
		ip.CFL = LimitCFL(ip.Scheme, ip.CFL)
		ip.Print()
		if err := Run1D(ip); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	OneDCmd.Flags().StringP("input", "i", "", "YAML input parameter file, overrides the other flags")
	OneDCmd.Flags().IntP("model", "m", int(M_1DEulerSod), "model to run: 0 = Burgers Shock, 1 = Burgers Transonic, 2 = Euler SOD Shock Tube")
	OneDCmd.Flags().IntP("k", "k", 500, "Number of cells in model")
	OneDCmd.Flags().Float64("CFL", 0.9, "CFL - increase for speedup, decrease for stability")
	OneDCmd.Flags().Float64("finalTime", 0.2, "FinalTime - the target end time for the sim")
	OneDCmd.Flags().String("flux", "Roe", "Riemann solver: Roe or HLL")
	OneDCmd.Flags().String("scheme", "Classic", "update scheme: Classic or WENO")
	OneDCmd.Flags().Int("order", 1, "Classic scheme order: 1 or 2")
	OneDCmd.Flags().String("limiter", "None", "wave limiter for order 2: None, MinMod, MC, Superbee")
	OneDCmd.Flags().Bool("entropyFix", false, "transonic entropy fix, scalar Roe solver only")
}

type ModelType1D uint8

const (
	M_1DBurgersShock ModelType1D = iota
	M_1DBurgersTransonic
	M_1DEulerSod
)

var (
	maxCFL = map[string]float64{"Classic": 1.0, "WENO": 0.6}
)

func applyModelDefaults(ip *InputParameters.InputParameters1D, model ModelType1D) {
	switch model {
	case M_1DBurgersShock:
		ip.Title = "Burgers Shock"
		ip.Equation = "Burgers"
	case M_1DBurgersTransonic:
		ip.Title = "Burgers Transonic Rarefaction"
		ip.Equation = "Burgers"
		ip.EntropyFix = true
	case M_1DEulerSod:
		ip.Title = "Sod Shock Tube"
		ip.Equation = "Euler"
	}
}

// applyFlagOverrides layers the flags the user actually set over the model
// defaults; an unset flag must not clobber what the preset chose
func applyFlagOverrides(ip *InputParameters.InputParameters1D, flags *pflag.FlagSet) {
	if flags.Changed("k") {
		ip.K, _ = flags.GetInt("k")
	}
	if flags.Changed("CFL") {
		ip.CFL, _ = flags.GetFloat64("CFL")
	}
	if flags.Changed("finalTime") {
		ip.FinalTime, _ = flags.GetFloat64("finalTime")
	}
	if flags.Changed("flux") {
		ip.FluxType, _ = flags.GetString("flux")
	}
	if flags.Changed("scheme") {
		ip.Scheme, _ = flags.GetString("scheme")
	}
	if flags.Changed("order") {
		ip.Order, _ = flags.GetInt("order")
	}
	if flags.Changed("limiter") {
		ip.Limiter, _ = flags.GetString("limiter")
	}
	if flags.Changed("entropyFix") {
		ip.EntropyFix, _ = flags.GetBool("entropyFix")
	}
}

func LimitCFL(scheme string, CFL float64) (CFLNew float64) {
	var (
		CFLMax = maxCFL[scheme]
	)
	if CFL > CFLMax {
		fmt.Printf("Input CFL is higher than max CFL for this scheme\nReplacing with Max CFL: %8.2f\n", CFLMax)
		return CFLMax
	}
	return CFL
}

// sodProblem is the shock tube reference for the configured gas, so the run
// and its analytic scoring share the same gamma
func sodProblem(ip *InputParameters.InputParameters1D, mid float64) sod_shock_tube.Problem {
	sod := sod_shock_tube.NewSod(mid)
	sod.Gamma = ip.Gamma
	return sod
}

func Run1D(ip *InputParameters.InputParameters1D) (err error) {
	var (
		g   = FV1D.NewGrid(ip.XMin, ip.XMax, ip.K)
		sys equations.System
		ic  func(x float64) []float64
		mid = 0.5 * (ip.XMin + ip.XMax)
	)
	switch ip.Equation {
	case "Burgers":
		sys = equations.NewBurgers()
		if ip.EntropyFix {
			ic = func(x float64) []float64 {
				if x < mid {
					return []float64{-1}
				}
				return []float64{2}
			}
		} else {
			ic = func(x float64) []float64 {
				if x < mid {
					return []float64{2}
				}
				return []float64{1}
			}
		}
	case "Euler":
		eq := equations.NewEuler(ip.Gamma)
		sys = eq
		sod := sodProblem(ip, mid)
		ic = func(x float64) []float64 {
			if x < mid {
				return eq.ConservedFromPrimitive(sod.RhoL, 0, sod.PL)
			}
			return eq.ConservedFromPrimitive(sod.RhoR, 0, sod.PR)
		}
	}
	rs, err := riemann.NewSolver(ip.FluxType, sys, ip.EntropyFix)
	if err != nil {
		return
	}
	var scheme FV1D.Scheme
	switch ip.Scheme {
	case "WENO":
		scheme = FV1D.NewWENOScheme(g, sys, rs)
	default:
		cs := FV1D.NewClassicScheme(g, sys, rs)
		cs.Order = ip.Order
		if cs.Limiter, err = FV1D.NewLimiter(ip.Limiter); err != nil {
			return
		}
		scheme = cs
	}
	fmt.Printf("%s in 1 Dimension\nFlux: %s, Scheme: %s\n", ip.Equation, rs.Name(), ip.Scheme)
	fmt.Printf("CFL = %8.4f, Num Cells K = %d, FinalTime = %8.4f\n\n", ip.CFL, ip.K, ip.FinalTime)
	runner := &FV1D.Runner{
		Grid:         g,
		Sys:          sys,
		Scheme:       scheme,
		CFLMax:       ip.CFL,
		FinalTime:    ip.FinalTime,
		LogFrequency: 50,
	}
	q0 := FV1D.InitField(g, sys.NumEquations(), scheme.NumGhost(), ic)
	snaps, err := runner.Run(q0)
	if err != nil {
		return
	}
	final := snaps[len(snaps)-1]
	for n := 0; n < sys.NumEquations(); n++ {
		fmt.Printf("Conservation check [%d]: initial = %10.6f, final = %10.6f\n",
			n, q0.Total(n)*g.Dx, final.Q.Total(n)*g.Dx)
	}
	if ip.Equation == "Euler" {
		sod := sodProblem(ip, mid)
		_, rhoX, _, _ := sod.SampleGrid(ip.XMin, ip.XMax, ip.K, final.Time)
		var l1 float64
		for i, rho := range rhoX {
			l1 += math.Abs(final.Q.Cell(i)[0]-rho) * g.Dx
		}
		fmt.Printf("Density L1 error vs analytic SOD: %8.6f\n", l1)
	}
	return
}
