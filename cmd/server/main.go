package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/andrewcovenant/n8n-youtube-transcript-service/internal/api"
	"github.com/andrewcovenant/n8n-youtube-transcript-service/internal/config"
	"github.com/andrewcovenant/n8n-youtube-transcript-service/internal/repository"
	"github.com/andrewcovenant/n8n-youtube-transcript-service/internal/service"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, using system environment variables")
	}

	cfg := config.Load()

	proxy := cfg.WebshareProxy()
	if proxy != nil {
		if len(proxy.Locations) > 0 {
			log.Printf("[INFO] Using Webshare rotating residential proxies, locations %v", proxy.Locations)
		} else {
			log.Println("[INFO] Using Webshare rotating residential proxies")
		}
	} else {
		log.Println("[INFO] Using direct connection (no proxy)")
	}

	fetcher := repository.NewHTMLFetcher(proxy)
	transcripts := service.NewTranscriptService(service.NewClient(fetcher))
	handler := api.NewHandler(transcripts)

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: handler.Routes(),
	}

	log.Printf("[INFO] YouTube transcript service listening on %s", server.Addr)
	log.Fatal(server.ListenAndServe())
}
