package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/battle-ammo/internal/config"
	"github.com/KirkDiggler/battle-ammo/internal/data"
	"github.com/KirkDiggler/battle-ammo/internal/dice"
	"github.com/KirkDiggler/battle-ammo/internal/domain/combat"
	"github.com/KirkDiggler/battle-ammo/internal/domain/items"
	"github.com/KirkDiggler/battle-ammo/internal/repositories/slots"
	"github.com/KirkDiggler/battle-ammo/internal/services"
	"github.com/KirkDiggler/battle-ammo/internal/services/ammo"
	"github.com/KirkDiggler/battle-ammo/internal/uuid"
)

var (
	runTurns  int
	runArrows int
	runSkill  int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scripted encounter",
	Long:  `Run pits an archer against a goblin for a fixed number of turns, resolving every attack through the ammo engine.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEncounter(cmd.Context())
	},
}

func init() {
	runCmd.Flags().IntVar(&runTurns, "turns", 10, "maximum turns to simulate")
	runCmd.Flags().IntVar(&runArrows, "arrows", 8, "iron arrows in the party inventory")
	runCmd.Flags().IntVar(&runSkill, "skill", 0, "skill id the archer uses every turn (0 = basic attack)")
}

func runEncounter(ctx context.Context) error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	library, err := data.Load(cfg.Data.Path)
	if err != nil {
		return fmt.Errorf("failed to load definitions: %w", err)
	}

	slotRepo, err := newSlotRepository(ctx, cfg)
	if err != nil {
		return err
	}

	roller := dice.NewRandomRoller()
	provider := services.NewProvider(&services.ProviderConfig{
		Library:        library,
		SlotRepository: slotRepo,
		DiceRoller:     roller,
		Stacks:         map[int]int{5: runArrows},
	})
	ammoSvc := provider.AmmoService

	archer := &combat.Combatant{
		ID:       "archer-1",
		Name:     "Archer",
		HitRate:  0.5,
		CritRate: 0.05,
		Attack:   20,
		MaxHP:    30,
		HP:       30,
		WeaponID: 1,
	}
	goblin := &combat.Combatant{
		ID:      "goblin-1",
		Name:    "Goblin",
		Hostile: true,
		HitRate: 0.4,
		Attack:  5,
		MaxHP:   60,
		HP:      60,
	}

	encounter := &combat.Encounter{
		ID:         uuid.NewGoogleUUIDGenerator().New(),
		Name:       "Simulated Skirmish",
		Combatants: []*combat.Combatant{archer, goblin},
	}

	selections, err := slotRepo.GetAll(ctx, library.SlotIDs())
	if err != nil {
		return fmt.Errorf("failed to read slot selections: %w", err)
	}
	for slotID, itemID := range selections {
		if itemID <= 0 {
			continue
		}
		log.Printf("Slot %d carries item %d from a previous session", slotID, itemID)
	}

	if err := ammoSvc.SetupEncounter(ctx, encounter); err != nil {
		return fmt.Errorf("failed to set up encounter: %w", err)
	}
	defer func() {
		if err := ammoSvc.EndEncounter(ctx, encounter); err != nil {
			log.Printf("failed to end encounter: %v", err)
		}
	}()

	action := ammo.BasicAttack()
	if runSkill > 0 {
		def, ok := library.Skill(runSkill)
		if !ok {
			return fmt.Errorf("unknown skill id %d", runSkill)
		}
		action = ammo.SkillAction(def)
		log.Printf("Archer uses %s every turn", def.Name)
	}

	for turn := 1; turn <= runTurns && goblin.IsAlive(); turn++ {
		if err := playTurn(ctx, ammoSvc, archer, goblin, action, roller, turn); err != nil {
			return err
		}
	}

	if goblin.IsAlive() {
		log.Printf("Goblin survives with %d/%d HP", goblin.HP, goblin.MaxHP)
	} else {
		log.Printf("Goblin is defeated")
	}
	log.Printf("Arrows remaining: %d", provider.PartyService.OwnedCount(5))

	return nil
}

func playTurn(ctx context.Context, svc ammo.Service, archer, goblin *combat.Combatant, action ammo.Action, roller dice.Roller, turn int) error {
	if err := svc.BeginAction(ctx, archer, action); err != nil {
		return fmt.Errorf("turn %d: begin action: %w", turn, err)
	}
	defer svc.EndAction(archer)

	chance, err := svc.HitChance(ctx, archer, action, archer.HitChance())
	if err != nil {
		return fmt.Errorf("turn %d: hit chance: %w", turn, err)
	}

	hit, err := roller.RollChance(int(chance * 100))
	if err != nil {
		return fmt.Errorf("turn %d: hit roll: %w", turn, err)
	}

	inflicted, err := svc.ApplyResult(ctx, archer, action, goblin, hit)
	if err != nil {
		return fmt.Errorf("turn %d: apply result: %w", turn, err)
	}

	if !hit {
		log.Printf("Turn %2d: Archer misses (%.0f%% to hit)", turn, chance*100)
		return nil
	}

	damage := archer.AttackPower()
	goblin.HP -= damage
	if goblin.HP < 0 {
		goblin.HP = 0
	}

	element := ""
	if id := svc.ElementID(archer, action); id != items.ElementNone {
		element = fmt.Sprintf(" [element %d]", id)
	}

	log.Printf("Turn %2d: Archer hits for %d%s (%.0f%% to hit, anim %d), Goblin at %d/%d HP",
		turn, damage, element, chance*100, svc.AnimationID(archer), goblin.HP, goblin.MaxHP)
	for _, stateID := range inflicted {
		log.Printf("         Goblin afflicted with state %d", stateID)
	}

	return nil
}

// newSlotRepository picks the slot store: Redis when configured,
// otherwise an in-memory store that lives for the run.
func newSlotRepository(ctx context.Context, cfg *config.Config) (slots.Repository, error) {
	if cfg.Redis.Addr == "" {
		log.Println("REDIS_ADDR not set, using in-memory slot store")
		return slots.NewInMemoryRepository(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.Addr, err)
	}

	log.Printf("Using Redis slot store at %s", cfg.Redis.Addr)
	return slots.NewRedis(client), nil
}
