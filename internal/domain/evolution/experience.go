package evolution

import "time"

// ExperienceForNextLevel is floor(level * 100 * 1.5).
func ExperienceForNextLevel(level int) int {
	return level * 150
}

// Outcome describes what an award changed beyond the raw counters.
type Outcome struct {
	LevelsGained int     `json:"levels_gained"`
	Evolutions   []Stage `json:"evolutions,omitempty"`
}

// AddExperience credits amount and one point on path, then resolves level-ups
// until the remainder is below the next threshold. Evolution is checked once
// per level gained.
func AddExperience(s State, amount int, path Path, now time.Time) (State, Outcome, error) {
	if amount < 0 {
		return s, Outcome{}, ErrNegativeExperience
	}
	if !IsValidPath(path) {
		return s, Outcome{}, ErrUnknownPath
	}

	next := s
	next.Experience += amount
	next.PathPoints.add(path, 1)
	next.Path = next.PathPoints.Dominant()

	var out Outcome
	for next.Experience >= ExperienceForNextLevel(next.Level) {
		next.Experience -= ExperienceForNextLevel(next.Level)
		next.Level++
		out.LevelsGained++

		var evolved bool
		next, evolved = CheckEvolution(next, now)
		if evolved {
			out.Evolutions = append(out.Evolutions, next.Stage)
		}
	}
	return next, out, nil
}

// CheckEvolution performs at most one stage transition, testing the highest
// stage first.
func CheckEvolution(s State, now time.Time) (State, bool) {
	switch {
	case s.Level >= AdultLevel && s.Stage == StageTeen:
		return Evolve(s, StageAdult, now), true
	case s.Level >= TeenLevel && s.Stage == StageChild:
		return Evolve(s, StageTeen, now), true
	case s.Level >= ChildLevel && s.Stage == StageBaby:
		return Evolve(s, StageChild, now), true
	}
	return s, false
}

// Evolve sets the stage and stamps the evolution time.
func Evolve(s State, stage Stage, now time.Time) State {
	s.Stage = stage
	at := now
	s.LastEvolution = &at
	return s
}
