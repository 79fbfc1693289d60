package main

import (
	"context"
	"copytrade/cmd"
	"copytrade/internal/logger"
	"os"
)

func main() {
	log := logger.FromContext(context.Background())
	log.Infow("starting api", "commitHash", os.Getenv("commit_hash"))

	deps, err := cmd.InitializeDependencies(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(deps)

	err = deps.ApiHandler.StartApi(deps.Secrets.Port)
	if err != nil {
		log.Fatal(err)
	}
}
