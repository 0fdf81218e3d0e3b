// Command tsptw-gen generates random TSPTW instances and writes them as
// JSON documents, one file per size/count combination. Instances are
// symmetric Euclidean with windows laid out along a hidden reference
// tour, so every generated file admits a feasible solution.
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/tsptw/instance"
)

// arrayIntFlags collects repeated or comma-separated integer flag values.
type arrayIntFlags []int

func (a *arrayIntFlags) String() string {
	parts := make([]string, len(*a))
	for i, v := range *a {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}

func (a *arrayIntFlags) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return err
		}
		*a = append(*a, v)
	}

	return nil
}

var nodes arrayIntFlags
var name *string
var output *string
var count *int
var span *float64
var window *float64
var seed *int64

func main() {
	flag.Var(&nodes, "n", "List of number of nodes")
	name = flag.String("name", "tsptw", "Name prefix for the instances")
	output = flag.String("outputDir", ".", "Output directory")
	count = flag.Int("count", 1, "Number of instances per size")
	span = flag.Float64("span", 100, "Coordinate range: points are drawn from [0,span)^2")
	window = flag.Float64("window", 50, "Width of each service window around the reference arrival (0 = unconstrained)")
	seed = flag.Int64("seed", 0, "Base RNG seed (0 = fixed default stream)")

	flag.Parse()
	if len(nodes) == 0 {
		nodes = append(nodes, 10)
	}

	base := *seed
	if base == 0 {
		base = 1
	}

	idx := int64(0)
	for _, n := range nodes {
		for c := 0; c < *count; c++ {
			idx++
			inst, err := instance.Synthesize(n, instance.SynthesisConfig{
				Span:   *span,
				Window: *window,
				Seed:   base + idx,
			})
			if err != nil {
				log.Printf("Couldn't generate n=%d: %s\n", n, err.Error())
				return
			}

			doc := instance.NewDocument(inst,
				fmt.Sprintf("%s_n%d_%d", *name, n, c),
				fmt.Sprintf("Generated TSPTW instance: span=%g, window=%g, seed=%d", *span, *window, base+idx))
			fileName := filepath.Join(*output, doc.Name+".json")
			if err = doc.Save(fileName); err != nil {
				log.Printf("Couldn't write %s: %s\n", fileName, err.Error())
				return
			}
			log.Printf("Wrote %s\n", fileName)
		}
	}
}
