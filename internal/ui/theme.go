// Package ui holds the terminal styles used by petctl.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pocketpet/internal/domain/achievement"
	"pocketpet/internal/domain/pet"
)

const (
	IconPaw     = "🐾"
	IconSparkle = "✨"
	IconTrophy  = "🏆"
	IconCoin    = "🪙"
	IconShop    = "🛍️"
	IconError   = "🧨"
	IconWarn    = "⚠️"
	IconClock   = "⏱️"
)

const barWidth = 20

var (
	cPink   = lipgloss.Color("#FF75B5")
	cBlue   = lipgloss.Color("63")
	cGood   = lipgloss.Color("42")
	cWarn   = lipgloss.Color("214")
	cBad    = lipgloss.Color("196")
	cMuted  = lipgloss.Color("244")
	cGold   = lipgloss.Color("220")
	cSilver = lipgloss.Color("250")
	cBronze = lipgloss.Color("130")
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cPink)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cBlue)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cBlue)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cPink).Padding(0, 1)
)

var emotionFaces = map[pet.Emotion]string{
	pet.EmotionLove:         "😍",
	pet.EmotionJoyful:       "😄",
	pet.EmotionHappy:        "🙂",
	pet.EmotionSatisfied:    "😌",
	pet.EmotionDissatisfied: "😕",
	pet.EmotionUpset:        "😟",
	pet.EmotionSad:          "😢",
	pet.EmotionAngry:        "😠",
	pet.EmotionCry:          "😭",
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Bar renders a 0..100 need as a fixed width meter coloured by level.
func Bar(label string, value float64) string {
	filled := int(value/100*barWidth + 0.5)
	filled = max(0, min(filled, barWidth))
	style := Good
	switch {
	case value < 30:
		style = Bad
	case value < 60:
		style = Warn
	}
	meter := style.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", barWidth-filled))
	return fmt.Sprintf("%-10s %s %5.1f", label, meter, value)
}

func Emotion(e pet.Emotion) string {
	face, ok := emotionFaces[e]
	if !ok {
		face = "❔"
	}
	return face + " " + string(e)
}

func Medal(level achievement.Level) string {
	switch level {
	case achievement.LevelGold:
		return lipgloss.NewStyle().Foreground(cGold).Render("gold")
	case achievement.LevelSilver:
		return lipgloss.NewStyle().Foreground(cSilver).Render("silver")
	default:
		return lipgloss.NewStyle().Foreground(cBronze).Render("bronze")
	}
}

func Progress(current, total int) string {
	return Muted.Render(fmt.Sprintf("%d/%d", current, total))
}
