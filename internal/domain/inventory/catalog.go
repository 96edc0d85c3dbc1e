package inventory

import "pocketpet/internal/domain/pet"

type ItemType string

const (
	TypeAccessory  ItemType = "accessory"
	TypeOutfit     ItemType = "outfit"
	TypeFood       ItemType = "food"
	TypeDecoration ItemType = "decoration"
	TypeBackground ItemType = "background"
)

var Types = []ItemType{TypeAccessory, TypeOutfit, TypeFood, TypeDecoration, TypeBackground}

// Equippable reports whether items of this type occupy an equip slot.
func (t ItemType) Equippable() bool {
	switch t {
	case TypeAccessory, TypeOutfit, TypeDecoration, TypeBackground:
		return true
	}
	return false
}

type Definition struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Type        ItemType    `json:"type"`
	Price       int         `json:"price"`
	Effects     pet.Effects `json:"effects"`
	Icon        string      `json:"icon"`
}

var catalog = []Definition{
	{ID: "bow-tie", Name: "Bow Tie", Description: "A fancy bow tie for special occasions", Type: TypeAccessory, Price: 100, Effects: pet.Effects{Happiness: 5}, Icon: "ribbon"},
	{ID: "glasses", Name: "Smart Glasses", Description: "Makes your pet look intellectual", Type: TypeAccessory, Price: 150, Effects: pet.Effects{Happiness: 8}, Icon: "glasses"},
	{ID: "summer-outfit", Name: "Summer Outfit", Description: "Perfect for sunny days", Type: TypeOutfit, Price: 200, Effects: pet.Effects{Happiness: 10, Energy: 5}, Icon: "shirt"},
	{ID: "premium-food", Name: "Premium Pet Food", Description: "High-quality nutritious food", Type: TypeFood, Price: 50, Effects: pet.Effects{Hunger: 40, Health: 5}, Icon: "fast-food"},
	{ID: "energy-drink", Name: "Pet Energy Drink", Description: "Boosts energy quickly", Type: TypeFood, Price: 75, Effects: pet.Effects{Energy: 30, Hunger: -5}, Icon: "battery-full"},
	{ID: "pet-bed", Name: "Luxury Pet Bed", Description: "A comfortable bed for better rest", Type: TypeDecoration, Price: 300, Effects: pet.Effects{Energy: 10, Happiness: 5}, Icon: "bed"},
	{ID: "toy-box", Name: "Toy Box", Description: "A collection of fun toys", Type: TypeDecoration, Price: 250, Effects: pet.Effects{Happiness: 15}, Icon: "game-controller"},
	{ID: "beach", Name: "Beach Paradise", Description: "A sunny beach environment", Type: TypeBackground, Price: 500, Effects: pet.Effects{Happiness: 20}, Icon: "sunny"},
	{ID: "space", Name: "Space Adventure", Description: "An otherworldly space environment", Type: TypeBackground, Price: 1000, Effects: pet.Effects{Happiness: 30}, Icon: "planet"},
}

func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}
