package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/automoto/springies/headless"
	"github.com/automoto/springies/shared/mechanics"
)

func main() {
	environment := flag.String("environment", "models/environment.xsp", "Environment file (empty for none)")
	assemblies := flag.String("assembly", "models/square.xsp", "Comma separated assembly files")
	tickRate := flag.Int("tickrate", 0, "Ticks per second of wall time (0 = unthrottled)")
	ticks := flag.Int("ticks", 250, "Ticks to run (0 = until interrupted)")
	printEvery := flag.Int("print", 25, "Print the state every N ticks (0 = only at the end)")
	width := flag.Float64("width", 800, "Arena width in pixels")
	height := flag.Float64("height", 600, "Arena height in pixels")
	offset := flag.Float64("offset", 0, "Walled area offset in pixels")
	fps := flag.Int("fps", 25, "Simulation ticks per simulated second")
	flag.Parse()

	var refs []string
	if *environment != "" {
		refs = append(refs, *environment)
	}
	for _, a := range strings.Split(*assemblies, ",") {
		if a = strings.TrimSpace(a); a != "" {
			refs = append(refs, a)
		}
	}

	sim := mechanics.NewSimulation(mechanics.Arena{Width: *width, Height: *height}, mechanics.DefaultSettings())
	if err := headless.LoadModels(sim, refs); err != nil {
		log.Fatalf("Failed to load models: %v", err)
	}
	sim.SetWalledAreaOffset(*offset)

	runner := headless.NewRunner(sim, headless.Options{
		TickRate:   *tickRate,
		StepSize:   1 / float64(max(*fps, 1)),
		MaxTicks:   *ticks,
		PrintEvery: *printEvery,
		Out:        os.Stdout,
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		runner.Stop()
	}()

	runner.Run()
}
