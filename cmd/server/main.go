// Command server runs the user management service over HTTP and gRPC.
package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/usermanager/internal/server"
	"github.com/dmitrijs2005/usermanager/internal/server/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("config error: %v", err)
		os.Exit(2)
	}

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("startup: %v", err)
		os.Exit(1)
	}

	app.Run(context.Background())
}
