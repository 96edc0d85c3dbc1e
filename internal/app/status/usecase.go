package status

import (
	"context"

	"pocketpet/internal/app/achievements"
	"pocketpet/internal/app/inventory"
	"pocketpet/internal/app/shared/stateview"
	"pocketpet/internal/domain/evolution"
	"pocketpet/internal/domain/pet"
)

type PetReader interface {
	State() (pet.State, error)
}

type EvolutionReader interface {
	State() (evolution.State, error)
	ExperienceForNextLevel() int
}

type AchievementReader interface {
	Summary() (achievements.Summary, error)
}

type InventoryReader interface {
	Summary() (inventory.Summary, error)
}

// UseCase assembles the read model of one profile. It never mutates.
type UseCase struct {
	Pet          PetReader
	Evolution    EvolutionReader
	Achievements AchievementReader
	Inventory    InventoryReader
}

func (u UseCase) Execute(_ context.Context, req Request) (Response, error) {
	p, err := u.Pet.State()
	if err != nil {
		return Response{}, err
	}
	evo, err := u.Evolution.State()
	if err != nil {
		return Response{}, err
	}
	ach, err := u.Achievements.Summary()
	if err != nil {
		return Response{}, err
	}
	inv, err := u.Inventory.Summary()
	if err != nil {
		return Response{}, err
	}

	return Response{
		Pet:           p,
		StatusEffects: stateview.StatusEffects(p.Needs),
		Outlook:       stateview.EstimateHealthDrain(p.Needs, req.Horizon),
		Evolution: EvolutionView{
			State:                  evo,
			ExperienceForNextLevel: u.Evolution.ExperienceForNextLevel(),
		},
		Achievements: AchievementCounts{
			Unlocked: ach.Unlocked,
			Total:    len(ach.Achievements),
			Streak:   ach.Streak,
		},
		Coins:    inv.Coins,
		Equipped: inv.Equipped,
	}, nil
}
