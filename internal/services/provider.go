package services

import (
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/attribute-engine/internal/config"
	"github.com/KirkDiggler/attribute-engine/internal/domain/condition"
	"github.com/KirkDiggler/attribute-engine/internal/domain/consumer"
	"github.com/KirkDiggler/attribute-engine/internal/domain/entity"
	"github.com/KirkDiggler/attribute-engine/internal/domain/events"
	"github.com/KirkDiggler/attribute-engine/internal/domain/item"
	"github.com/KirkDiggler/attribute-engine/internal/domain/slot"
	atterr "github.com/KirkDiggler/attribute-engine/internal/errors"
	"github.com/KirkDiggler/attribute-engine/internal/repositories/projectiles"
	"github.com/KirkDiggler/attribute-engine/internal/repositories/scoped"
	"github.com/KirkDiggler/attribute-engine/internal/services/aggregator"
	"github.com/KirkDiggler/attribute-engine/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	AggregatorService aggregator.Service
	Evaluator         *condition.Evaluator
	Slots             *slot.Registry
	Consumers         *consumer.Registry
	EventBus          *events.EventBus
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	// Config selects the store and tuning. Defaults apply when nil.
	Config *config.Config

	// RedisClient is required when Config.Store is redis
	RedisClient redis.UniversalClient

	// Optional - the lore parser is used when nil
	Parser item.Parser

	// Optional - level plugins go here; KindLeveler is used when nil
	Leveler entity.Leveler

	// Optional - read from Config.SlotsFile, else the default layout
	Slots []config.SlotDefinition

	// Rules are registered after the built-in level and site rules
	Rules []condition.Rule

	// Optional - random UUIDs when nil
	UUIDGenerator uuid.Generator
}

// NewProvider creates a new service provider with all services initialized.
// Every error it returns is a configuration error.
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	appCfg := cfg.Config
	if appCfg == nil {
		var err error
		appCfg, err = config.LoadFrom(map[string]string{})
		if err != nil {
			return nil, err
		}
	} else if err := appCfg.Validate(); err != nil {
		return nil, err
	}

	parser := cfg.Parser
	if parser == nil {
		parser = item.NewLoreParser(nil)
	}

	evaluator, err := condition.NewEvaluator(&condition.EvaluatorConfig{
		Parser:  parser,
		Leveler: cfg.Leveler,
	})
	if err != nil {
		return nil, err
	}
	for _, rule := range cfg.Rules {
		if err := evaluator.Register(rule); err != nil {
			return nil, err
		}
	}

	slots, err := buildSlots(cfg.Slots, appCfg.SlotsFile)
	if err != nil {
		return nil, err
	}

	var scopedRepo scoped.Repository
	var projectileRepo projectiles.Repository
	switch appCfg.Store {
	case config.StoreRedis:
		if cfg.RedisClient == nil {
			return nil, atterr.Configuration("redis store selected but no redis client provided")
		}
		scopedRepo = scoped.NewRedisRepository(&scoped.RedisRepoConfig{
			Client: cfg.RedisClient,
		})
		projectileRepo = projectiles.NewRedisRepository(&projectiles.RedisRepoConfig{
			Client: cfg.RedisClient,
			TTL:    appCfg.ProjectileTTL,
		})
		log.Println("Using Redis for scoped and projectile attributes")
	default:
		scopedRepo = scoped.NewInMemoryRepository()
		projectileRepo = projectiles.NewInMemoryRepository()
		log.Println("Using in-memory attribute stores")
	}

	eventBus := events.NewEventBus(cfg.UUIDGenerator)
	consumers := consumer.NewRegistry(cfg.UUIDGenerator)

	aggregatorService := aggregator.NewService(&aggregator.ServiceConfig{
		Evaluator:          evaluator,
		Parser:             parser,
		Slots:              slots,
		Consumers:          consumers,
		Scoped:             scopedRepo,
		Projectiles:        projectileRepo,
		EventBus:           eventBus,
		RefreshConcurrency: appCfg.RefreshConcurrency,
	})

	return &Provider{
		AggregatorService: aggregatorService,
		Evaluator:         evaluator,
		Slots:             slots,
		Consumers:         consumers,
		EventBus:          eventBus,
	}, nil
}

// buildSlots registers explicit definitions, else the slots file, else the
// default layout
func buildSlots(defs []config.SlotDefinition, slotsFile string) (*slot.Registry, error) {
	if len(defs) == 0 && slotsFile != "" {
		loaded, err := config.LoadSlots(slotsFile)
		if err != nil {
			return nil, err
		}
		defs = loaded
	}
	if len(defs) == 0 {
		defs = config.DefaultSlots()
	}

	registry := slot.NewRegistry()
	for _, def := range defs {
		position := def.Position
		if position == "" {
			position = def.Name
		}
		if err := registry.Register(slot.Site{
			Name:     def.Name,
			Priority: def.Priority,
			Extract:  slot.EquipmentExtractor(position),
		}); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
