package main

import (
	"log"

	"openpay-gateway/config"
	"openpay-gateway/internal/app"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}
	app.Run(cfg)
}
