package status

import (
	"context"
	"errors"
	"testing"
	"time"

	"pocketpet/internal/app/achievements"
	"pocketpet/internal/app/inventory"
	"pocketpet/internal/domain/achievement"
	"pocketpet/internal/domain/evolution"
	"pocketpet/internal/domain/pet"
)

func TestUseCase_AssemblesReadModel(t *testing.T) {
	p := pet.NewState("Bun", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	p.Needs.Hunger = 20
	p.Needs.Energy = 10
	evo := evolution.NewState()
	evo.Level = 3

	uc := UseCase{
		Pet:       petReader{state: p},
		Evolution: evolutionReader{state: evo},
		Achievements: achievementReader{summary: achievements.Summary{
			Achievements: make([]achievement.Achievement, 18),
			Unlocked:     2,
			Streak:       4,
		}},
		Inventory: inventoryReader{summary: inventory.Summary{Coins: 35, Equipped: []string{"beach"}}},
	}
	resp, err := uc.Execute(context.Background(), Request{Horizon: 10 * time.Minute})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.Pet.Name != "Bun" || resp.Evolution.Level != 3 || resp.Evolution.ExperienceForNextLevel != 450 {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.Achievements != (AchievementCounts{Unlocked: 2, Total: 18, Streak: 4}) {
		t.Fatalf("achievements = %+v", resp.Achievements)
	}
	if resp.Coins != 35 || len(resp.Equipped) != 1 {
		t.Fatalf("inventory view = %d %v", resp.Coins, resp.Equipped)
	}
	if len(resp.StatusEffects) != 1 || resp.StatusEffects[0] != "EXHAUSTED" {
		t.Fatalf("status effects = %v", resp.StatusEffects)
	}
	if !resp.Outlook.IsLosingHealth || resp.Outlook.HorizonSeconds != 600 {
		t.Fatalf("outlook = %+v", resp.Outlook)
	}
}

func TestUseCase_PropagatesReaderError(t *testing.T) {
	wantErr := errors.New("not ready")
	uc := UseCase{
		Pet:          petReader{state: pet.NewState("", time.Now())},
		Evolution:    evolutionReader{err: wantErr},
		Achievements: achievementReader{},
		Inventory:    inventoryReader{},
	}
	if _, err := uc.Execute(context.Background(), Request{}); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}

type petReader struct {
	state pet.State
	err   error
}

func (r petReader) State() (pet.State, error) { return r.state, r.err }

type evolutionReader struct {
	state evolution.State
	err   error
}

func (r evolutionReader) State() (evolution.State, error) { return r.state, r.err }
func (r evolutionReader) ExperienceForNextLevel() int {
	return evolution.ExperienceForNextLevel(r.state.Level)
}

type achievementReader struct{ summary achievements.Summary }

func (r achievementReader) Summary() (achievements.Summary, error) { return r.summary, nil }

type inventoryReader struct{ summary inventory.Summary }

func (r inventoryReader) Summary() (inventory.Summary, error) { return r.summary, nil }

var (
	_ PetReader         = petReader{}
	_ EvolutionReader   = evolutionReader{}
	_ AchievementReader = achievementReader{}
	_ InventoryReader   = inventoryReader{}
)
