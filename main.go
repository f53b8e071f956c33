package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/eeshan-ajmera/finance-project-ai/config"
	"github.com/eeshan-ajmera/finance-project-ai/di"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	container := di.NewContainer(cfg)

	fmt.Println("starting server!")
	container.FinanceHttpServer.Start()
	fmt.Println("server stopped!")
}
