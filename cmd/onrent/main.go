package main

import (
	"log"

	"github.com/westerlund126/onrent-sub000/internal/app"
	"github.com/westerlund126/onrent-sub000/internal/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
