package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/attribute-engine/internal/config"
	"github.com/KirkDiggler/attribute-engine/internal/domain/condition"
	"github.com/KirkDiggler/attribute-engine/internal/domain/entity"
	"github.com/KirkDiggler/attribute-engine/internal/services"
	"github.com/KirkDiggler/attribute-engine/internal/services/aggregator"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Println("Usage: debug-attributes -entity <file.json> [-site <slot>]")
			os.Exit(1)
		}
		log.Fatal(err)
	}
}

var errUsage = errors.New("entity file is required")

// run returns instead of exiting so deferred cleanup always happens
func run(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("debug-attributes", flag.ContinueOnError)
	entityPath := flags.String("entity", "", "path to a JSON entity file")
	siteName := flags.String("site", "", "only evaluate this slot (default: all slots)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *entityPath == "" {
		return errUsage
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	providerConfig := &services.ProviderConfig{Config: cfg}

	if cfg.Store == config.StoreRedis {
		opts, optsErr := cfg.Redis.Options()
		if optsErr != nil {
			return fmt.Errorf("failed to configure Redis: %w", optsErr)
		}

		client := redis.NewClient(opts)
		defer func() {
			if clientErr := client.Close(); clientErr != nil {
				log.Printf("Failed to close Redis connection: %v", clientErr)
			}
		}()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		pingErr := client.Ping(pingCtx).Err()
		cancel()
		if pingErr != nil {
			return fmt.Errorf("failed to connect to Redis at %s: %w", opts.Addr, pingErr)
		}
		providerConfig.RedisClient = client
	}

	provider, err := services.NewProvider(providerConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	character, err := readCharacter(*entityPath)
	if err != nil {
		return fmt.Errorf("failed to read entity: %w", err)
	}

	filter := condition.Site(*siteName)
	breakdown, err := provider.AggregatorService.Explain(ctx, character, filter)
	if err != nil {
		return fmt.Errorf("failed to compute attributes: %w", err)
	}

	printBreakdown(out, provider.AggregatorService, character, breakdown)
	return nil
}

func readCharacter(path string) (*entity.Character, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var character entity.Character
	if err := json.Unmarshal(data, &character); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if character.ID == "" {
		return nil, fmt.Errorf("%s has no id", path)
	}
	return &character, nil
}

func printBreakdown(out io.Writer, svc aggregator.Service, character *entity.Character, breakdown *aggregator.Breakdown) {
	fmt.Fprintf(out, "Entity: %s (%s)\n", character.GetID(), character.GetKind())
	fmt.Fprintf(out, "Level: %s\n", svc.EntityLevel(character))
	fmt.Fprintf(out, "Filter: %s\n", breakdown.Filter)
	fmt.Fprintf(out, "Intrinsic: %s\n", breakdown.Intrinsic)

	fmt.Fprintln(out, "Slots:")
	for _, site := range breakdown.Sites {
		if site.Source == nil {
			fmt.Fprintf(out, "  %-10s (empty)\n", site.Site)
			continue
		}
		fmt.Fprintf(out, "  %-10s %-20s %-8s requires=%s usable=%t %s\n",
			site.Site,
			site.Source.GetName(),
			site.Outcome,
			site.Facts.SourceLevel,
			svc.IsUsable(character, condition.AllSites(), site.Source),
			site.Attributes,
		)
	}

	fmt.Fprintf(out, "Scoped: %s\n", breakdown.Scoped)
	fmt.Fprintf(out, "Projectile: %s\n", breakdown.Projectile)
	fmt.Fprintf(out, "Effective: %s\n", breakdown.Total)
}
