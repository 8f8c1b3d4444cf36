package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"tripfluencer/internal/ai"
	"tripfluencer/internal/config"
	"tripfluencer/internal/infra"
	"tripfluencer/internal/modules/itinerary"
)

func main() {
	source := flag.String("source", "New York", "departure city")
	destination := flag.String("destination", "Paris", "destination city")
	people := flag.String("people", "2", "who is travelling")
	days := flag.Int("days", 3, "trip length in days")
	interests := flag.String("interests", "", "comma separated interests")
	budget := flag.String("budget", "", "Budget, Mid-range or Luxury")
	extras := flag.String("extras", "", "anything else the planner should know")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := zap.NewNop()
	if *verbose {
		if logger, err = infra.NewLogger(true); err != nil {
			log.Fatalf("init logger: %v", err)
		}
	}

	svc := itinerary.NewService(config.NewEnvCredentialSource(cfg), ai.NewGeminiClient, cfg.AI.FallbackModel, logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	res, err := svc.Generate(ctx, map[string]any{
		"source":      *source,
		"destination": *destination,
		"people":      *people,
		"duration":    *days,
		"interests":   *interests,
		"budget":      *budget,
		"extras":      *extras,
	})
	if err != nil {
		log.Fatalf("generate itinerary: %v", err)
	}

	fmt.Printf("<!-- model: %s -->\n%s\n", res.Model, res.Markdown)
}
