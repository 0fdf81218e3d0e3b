// Command tsptw-solve reads a TSPTW instance from a JSON document, runs
// the Beam-ACO solver on it, and writes the document back with the
// solution record (tour, cost, violations, timing, host info) embedded.
//
// Flag defaults can be overridden through a .env file or environment
// variables prefixed TSPTW_ (input/output paths only; numeric parameters
// stay on flags).
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"

	"github.com/katalvlaran/tsptw/beam"
	"github.com/katalvlaran/tsptw/instance"
	"github.com/katalvlaran/tsptw/pheromone"
	"github.com/katalvlaran/tsptw/solver"
)

var (
	inputF      *string
	outputF     *string
	iterations  *int
	trials      *int
	ants        *int
	beamWidth   *int
	mu          *float64
	determinism *float64
	rho         *float64
	timeLimit   *time.Duration
	seed        *int64
	localSearch *bool
	reduce      *bool
	logLvl      *int
)

func main() {
	_ = godotenv.Load()

	inputF = flag.String("input", envOr("TSPTW_INPUT", "input.json"), "Path to the input instance")
	outputF = flag.String("output", envOr("TSPTW_OUTPUT", ""), "Path to the output file. By default the input file will be overwritten adding the solution")
	iterations = flag.Int("iter", solver.DefaultIterations, "Number of iterations per trial")
	trials = flag.Int("trials", solver.DefaultTrials, "Number of independent trials")
	ants = flag.Int("ants", solver.DefaultAnts, "Number of constructions per iteration")
	beamWidth = flag.Int("beam", beam.DefaultBeamWidth, "Beam width k_bw")
	mu = flag.Float64("mu", beam.DefaultMu, "Child-budget amplification factor")
	determinism = flag.Float64("det", beam.DefaultDeterminismRate, "Rate of determinism in the solution construction")
	rho = flag.Float64("rho", pheromone.DefaultLearningRate, "Learning rate for pheromone values")
	timeLimit = flag.Duration("time", 0, "Wall-clock budget per trial (0 = unlimited)")
	seed = flag.Int64("seed", 0, "RNG seed (0 = fixed default stream)")
	localSearch = flag.Bool("localsearch", false, "Polish each iteration best with 1-opt")
	reduce = flag.Bool("reduce", false, "Prune each beam depth to the best k_bw partial tours")
	logLvl = flag.Int("log", 2, "Level of the logging output. Higher value is more verbose. Range 1-4")

	flag.Parse()
	InitLoggers(*logLvl)

	doc, err := instance.Load(*inputF)
	if err != nil {
		Log(1, "At %s: %s\n", *inputF, err.Error())
		return
	}
	inst, err := doc.Instance()
	if err != nil {
		Log(1, "At %s: %s\n", *inputF, err.Error())
		return
	}

	hostStat, _ := host.Info()
	cpuStat, _ := cpu.Info()
	vmStat, _ := mem.VirtualMemory()
	cpuModel := ""
	if len(cpuStat) > 0 {
		cpuModel = cpuStat[0].ModelName
	}
	sol := &instance.Solution{
		System: instance.SysInfo{
			Platform: hostStat.Platform,
			CPU:      cpuModel,
			RAM:      fmt.Sprintf("%d GB", vmStat.Total/1024/1024/1024),
		},
		Comment: fmt.Sprintf("Solver-Settings: iter=%d, trials=%d, ants=%d, beam=%d, mu=%g, det=%g, rho=%g, seed=%d, localsearch=%v, reduce=%v",
			*iterations, *trials, *ants, *beamWidth, *mu, *determinism, *rho, *seed, *localSearch, *reduce),
	}

	opts := []solver.Option{
		solver.WithIterations(*iterations),
		solver.WithTrials(*trials),
		solver.WithAnts(*ants),
		solver.WithBeamWidth(*beamWidth),
		solver.WithMu(*mu),
		solver.WithDeterminismRate(*determinism),
		solver.WithLearningRate(*rho),
		solver.WithTimeLimit(*timeLimit),
		solver.WithSeed(*seed),
		solver.WithProgress(func(s solver.Snapshot) {
			Log(4, "trial %d iter %d phase %s cf=%.3f best=%.3f\n",
				s.Trial, s.Iteration, s.Phase, s.ConvergenceFactor, s.BestCost)
		}),
	}
	if *localSearch {
		opts = append(opts, solver.WithLocalSearch())
	}
	if *reduce {
		opts = append(opts, solver.WithReduce())
	}

	eng, err := solver.New(inst, opts...)
	if err != nil {
		Log(1, "At %s: %s\n", *inputF, err.Error())
		return
	}

	Log(2, "Solving %s (%d nodes)\n", doc.Name, inst.NumNodes())
	res, err := eng.Run()
	if err != nil {
		Log(1, "At %s: %s\n", *inputF, err.Error())
		return
	}

	sol.Tour = res.Tour
	sol.Cost = res.Cost
	sol.Violations = res.Violations
	sol.Feasible = res.Feasible
	sol.Iterations = res.Iterations
	sol.Time = res.Duration.String()
	doc.Solution = sol

	fileName := *outputF
	if fileName == "" {
		fileName = *inputF
	}
	if err = doc.Save(fileName); err != nil {
		Log(1, "At %s: %s\n", fileName, err.Error())
		return
	}

	Log(2, "Found a tour with cost %.3f (%d violations, feasible=%v) after %d iterations in %s\n",
		res.Cost, res.Violations, res.Feasible, res.Iterations, res.Duration)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
