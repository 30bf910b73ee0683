package main

import (
	"log"
	"net/http"
)

func main() {
	cfg := LoadConfig()
	timeout := configureExternalHTTPClient(cfg.ExternalHTTPTimeoutSeconds)
	log.Printf("Config loaded. Provider=%s WorkerURL=%s ListenAddr=%s ExternalHTTPTimeout=%s",
		cfg.LLMProvider, cfg.WorkerURL, cfg.ListenAddr, timeout)

	log.Println("Starting notedash insight service...")
	if err := http.ListenAndServe(cfg.ListenAddr, newServeMux(cfg)); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
