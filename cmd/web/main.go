package main

import (
	"log"
	"net/http"

	"github.com/minaorangina/klondike/config"
	"github.com/minaorangina/klondike/game"
	"github.com/minaorangina/klondike/server"
	"github.com/minaorangina/klondike/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err.Error())
	}

	layout, err := config.LoadLayout(cfg.LayoutFile)
	if err != nil {
		log.Fatal(err.Error())
	}

	newOptions := func() game.Options { return cfg.GameOptions(layout) }
	s := server.NewServer(store.NewInMemoryGameStore(), newOptions, cfg.StaticDir)

	log.Printf("Listening on port %d...", cfg.Port)
	log.Fatal(http.ListenAndServe(cfg.Addr(), s))
}
