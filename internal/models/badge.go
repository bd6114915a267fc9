package models

import "time"

// Badge ids are fixed; the catalog never grows or shrinks at runtime.
const (
	BadgeBeginner  = "b1" // Iniciante: account created
	BadgeFocused   = "b2" // Focada: first meal logged
	BadgeHydrated  = "b3" // Hidratada: 2L of water in one day
	BadgeFitness   = "b4" // Fitness: first workout completed
	BadgeSocial    = "b5" // Social: first post
	BadgeMuse      = "b6" // Musa: reached level 5
)

// Badge is a fixed catalog entry. Unlocked transitions false->true at most
// once and is never re-locked.
type Badge struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Icon         string     `json:"icon"`
	Unlocked     bool       `json:"unlocked"`
	DateUnlocked *time.Time `json:"dateUnlocked,omitempty"`
	Color        string     `json:"color"`
}

// InitialBadges returns the fixed badge catalog for a fresh user. Iniciante
// ships already unlocked.
func InitialBadges() []Badge {
	return []Badge{
		{ID: BadgeBeginner, Name: "Iniciante", Description: "Criou sua conta", Icon: "Star", Unlocked: true, Color: "bg-blue-400"},
		{ID: BadgeFocused, Name: "Focada", Description: "Registrou 1ª refeição", Icon: "Utensils", Color: "bg-green-400"},
		{ID: BadgeHydrated, Name: "Hidratada", Description: "Bebeu 2L de água", Icon: "Droplets", Color: "bg-blue-500"},
		{ID: BadgeFitness, Name: "Fitness", Description: "Completou 1º treino", Icon: "Dumbbell", Color: "bg-orange-400"},
		{ID: BadgeSocial, Name: "Social", Description: "Fez 1º post", Icon: "MessageCircle", Color: "bg-pink-400"},
		{ID: BadgeMuse, Name: "Musa", Description: "Atingiu Nível 5", Icon: "Crown", Color: "bg-purple-500"},
	}
}
