package main

import (
	"errors"
	"log"
	"net/http"

	"weather-dashboard/internal/bootstrap"
	"weather-dashboard/internal/config"
)

func main() {
	cfg := config.Load()

	if cfg.OpenWeatherKey == "" {
		log.Println("OPENWEATHER_API_KEY not set — weather endpoints will return errors")
	}
	if cfg.AnthropicKey == "" {
		log.Println("ANTHROPIC_API_KEY not set — recommendation endpoints will return errors")
	}

	bundle := bootstrap.InitBootstrap(cfg)
	r := bootstrap.InitRoutes(bundle)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	bootstrap.GracefulShutdown(srv)

	log.Printf("Server started on :%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
