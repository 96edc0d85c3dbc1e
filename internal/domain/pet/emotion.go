package pet

// Classify derives the emotion from the needs. Rules are evaluated top to
// bottom and the first match wins; critical conditions outrank happy ones.
func Classify(n Needs) Emotion {
	switch {
	case n.Health < 30:
		return EmotionCry
	case n.Hunger < 20:
		return EmotionAngry
	case n.Happiness < 20:
		return EmotionSad
	case n.Energy < 20:
		return EmotionDissatisfied
	case n.Happiness > 80 && n.Hunger > 80 && n.Energy > 80:
		return EmotionLove
	case n.Happiness > 70 && n.Hunger > 60:
		return EmotionJoyful
	case n.Happiness > 50 && n.Energy > 50:
		return EmotionSatisfied
	case n.Happiness < 40 || n.Hunger < 40 || n.Energy < 40:
		return EmotionUpset
	default:
		return EmotionHappy
	}
}
