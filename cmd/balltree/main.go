package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/TrevorS/balltree"
)

func main() {
	def := balltree.DefaultConfig()
	configPath := flag.String("config", "", "YAML file with n, d, low, high and seed")
	n := flag.Int("n", def.N, "number of points to sample")
	d := flag.Int("d", def.D, "dimension of each point")
	low := flag.Float64("low", def.Low, "lower bound of each coordinate")
	high := flag.Float64("high", def.High, "upper bound of each coordinate")
	seed := flag.Uint64("seed", def.Seed, "random seed (0 seeds from the clock)")
	stats := flag.Bool("stats", false, "log node, leaf and depth counts")
	flag.Parse()

	cfg := def
	if *configPath != "" {
		var err error
		if cfg, err = balltree.LoadConfig(*configPath); err != nil {
			log.Fatalf("balltree: %v", err)
		}
	}
	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.N = *n
		case "d":
			cfg.D = *d
		case "low":
			cfg.Low = *low
		case "high":
			cfg.High = *high
		case "seed":
			cfg.Seed = *seed
		}
	})

	points, err := cfg.Points()
	if err != nil {
		log.Fatalf("balltree: %v", err)
	}
	root, err := balltree.Build(points)
	if err != nil {
		log.Fatalf("balltree: %v", err)
	}

	w := bufio.NewWriter(os.Stdout)
	fmt.Fprintln(w, len(points))
	if err := balltree.WriteTo(w, root); err != nil {
		log.Fatalf("balltree: writing tree: %v", err)
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("balltree: writing tree: %v", err)
	}

	if *stats {
		s := balltree.Stats(root)
		log.Printf("balltree: %d points, %d nodes, %d leaves, max depth %d", len(points), s.Nodes, s.Leaves, s.MaxDepth)
	}
}
