package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"golife/internal/app"
	"golife/internal/core"
	_ "golife/internal/render"
	"golife/internal/sims/life"
)

func main() {
	log.SetFlags(0)

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.LoadFile(flag.CommandLine); err != nil {
		log.Fatal(err)
	}

	simCfg, err := cfg.SimConfig()
	if err != nil {
		log.Fatal(err)
	}

	factory, ok := core.Renderers()[cfg.RenderTo]
	if !ok {
		log.Fatalf("unknown render target %q", cfg.RenderTo)
	}

	sim, err := life.New(simCfg)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Welcome to Game of Life: running pattern %q for %d ticks once every %d millis\n",
		cfg.Pattern, cfg.NumTicks, cfg.TickInterval)

	interval := time.Duration(cfg.TickInterval) * time.Millisecond
	renderer := factory(nil)
	if err := renderer.Run(sim, cfg.NumTicks, interval); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Goodbye")
}
