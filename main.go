package main

import (
	"context"
	"log"
	"os"

	"article-index/pkg/config"
	"article-index/pkg/report"
	"article-index/pkg/scraper"
)

func main() {
	cfg := config.Default()

	s, err := scraper.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create scraper: %v", err)
	}

	result, err := s.Scrape(context.Background())
	if err != nil {
		log.Fatalf("Failed to scrape %s: %v", cfg.TargetURL, err)
	}

	if err := report.Write(os.Stdout, cfg.LinkPrefix, result.Articles); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
}
