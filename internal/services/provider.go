package services

import (
	"github.com/KirkDiggler/battle-ammo/internal/dice"
	"github.com/KirkDiggler/battle-ammo/internal/domain/items"
	"github.com/KirkDiggler/battle-ammo/internal/repositories/slots"
	ammoService "github.com/KirkDiggler/battle-ammo/internal/services/ammo"
	partyService "github.com/KirkDiggler/battle-ammo/internal/services/party"
)

// Provider holds all service instances
type Provider struct {
	AmmoService  ammoService.Service
	PartyService partyService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Library        *items.Library
	SlotRepository slots.Repository
	DiceRoller     dice.Roller
	Stacks         map[int]int
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	slotRepo := cfg.SlotRepository
	if slotRepo == nil {
		slotRepo = slots.NewInMemoryRepository()
	}

	pSvc := partyService.NewService(&partyService.ServiceConfig{
		Library: cfg.Library,
		Stacks:  cfg.Stacks,
	})

	aSvc := ammoService.NewService(&ammoService.ServiceConfig{
		SlotRepository: slotRepo,
		Party:          pSvc,
		Library:        cfg.Library,
		DiceRoller:     cfg.DiceRoller,
	})

	return &Provider{
		AmmoService:  aSvc,
		PartyService: pSvc,
	}
}
