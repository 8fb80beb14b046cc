package main

import (
	"flag"
	"log"
	"os"

	"github.com/minaorangina/klondike/config"
	"github.com/minaorangina/klondike/game"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err.Error())
	}

	seed := flag.Int64("seed", cfg.Seed, "shuffle seed (0 seeds from the clock)")
	draws := flag.Int("draws", 0, "number of cards to turn from the stock before printing")
	flag.Parse()
	cfg.Seed = *seed

	layout, err := config.LoadLayout(cfg.LayoutFile)
	if err != nil {
		log.Fatal(err.Error())
	}

	g, err := game.New(cfg.GameOptions(layout))
	if err != nil {
		log.Fatal("Could not deal a new game: ", err)
	}

	for i := 0; i < *draws; i++ {
		if err := g.Draw(); err != nil {
			log.Fatal(err.Error())
		}
	}

	g.WriteText(os.Stdout)
}
