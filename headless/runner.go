// Package headless steps a simulation without a window, printing its state
// at a fixed interval. It is used for batch runs and for inspecting models.
package headless

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/automoto/springies/assets"
	"github.com/automoto/springies/shared/mechanics"
	"github.com/automoto/springies/shared/modeldata"
)

// Options configures a Runner.
type Options struct {
	// Ticks per second of wall time. Zero or less runs as fast as possible.
	TickRate int
	// Seconds advanced per tick.
	StepSize float64
	// Stop after this many ticks. Zero runs until Stop.
	MaxTicks int
	// Print the state every PrintEvery ticks. Zero prints only at the end.
	PrintEvery int
	Out        io.Writer
}

// Runner drives a Simulation on its own clock.
type Runner struct {
	sim      *mechanics.Simulation
	opts     Options
	ticks    int
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewRunner(sim *mechanics.Simulation, opts Options) *Runner {
	if opts.StepSize <= 0 {
		opts.StepSize = 1.0 / 25
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	return &Runner{
		sim:      sim,
		opts:     opts,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until MaxTicks is reached or Stop is called, then prints the
// final state.
func (r *Runner) Run() {
	defer r.print()

	if r.opts.TickRate <= 0 {
		log.Printf("Headless run started (unthrottled)")
		for !r.done() {
			select {
			case <-r.stopChan:
				return
			default:
				r.Step()
			}
		}
		return
	}

	ticker := time.NewTicker(time.Second / time.Duration(r.opts.TickRate))
	defer ticker.Stop()

	log.Printf("Headless run started at %d ticks/second", r.opts.TickRate)

	for !r.done() {
		select {
		case <-r.stopChan:
			log.Println("Headless run stopped")
			return
		case <-ticker.C:
			r.Step()
		}
	}
}

// Stop ends Run. Safe to call more than once and from another goroutine.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() { close(r.stopChan) })
}

// Step advances the simulation one tick.
func (r *Runner) Step() {
	r.sim.Update(r.opts.StepSize)
	r.ticks++
	if r.opts.PrintEvery > 0 && r.ticks%r.opts.PrintEvery == 0 {
		r.print()
	}
}

func (r *Runner) Ticks() int {
	return r.ticks
}

func (r *Runner) done() bool {
	return r.opts.MaxTicks > 0 && r.ticks >= r.opts.MaxTicks
}

func (r *Runner) print() {
	fmt.Fprintf(r.opts.Out, "tick %d\n%s\n", r.ticks, r.sim)
}

// LoadModels loads every reference into sim in order. Bare names of bundled
// models resolve to the embedded files.
func LoadModels(sim *mechanics.Simulation, refs []string) error {
	for _, ref := range refs {
		src, name := assets.ResolveRef(ref)
		kind, err := modeldata.LoadModel(sim, src.FS, name)
		if err != nil {
			return err
		}
		log.Printf("Loaded %s %s", kind, ref)
	}
	return nil
}
