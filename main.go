package main

import (
	"context"
	"log"
	"time"

	"comcigan-server/config"
	"comcigan-server/di"
)

func main() {
	config.LoadEnv()
	env := config.GetEnv(config.ENV_APP_ENV, "prod")
	container := di.NewContainer(env)
	defer func() {
		if err := container.RedisClient.Close(); err != nil {
			log.Printf("[MAIN] Closing redis client: %v", err)
		}
	}()

	log.Println("[MAIN] Warming school directory cache")
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	if _, err := container.SchoolDirectoryRefresherService.RefreshDirectory(ctx); err != nil {
		log.Printf("[MAIN] Initial directory refresh failed: %v", err)
	}
	cancel()

	spec := config.GetEnv(config.ENV_REFRESHER_CRON, config.SCHOOL_DIRECTORY_REFRESHER_CRON)
	if err := container.SchoolDirectoryRefresherService.Start(spec); err != nil {
		log.Fatalf("[MAIN] Could not start directory refresher: %v", err)
	}
	defer container.SchoolDirectoryRefresherService.Stop()

	log.Println("[MAIN] Starting server")
	container.ComciganHttpServer.Start()
}
