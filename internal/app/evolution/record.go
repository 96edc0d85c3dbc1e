package evolution

import (
	"time"

	evo "pocketpet/internal/domain/evolution"
)

type pathPointsRecord struct {
	Athletic     int `json:"athletic"`
	Intellectual int `json:"intellectual"`
	Social       int `json:"social"`
	Balanced     int `json:"balanced"`
}

// record is the evolutionState document.
type record struct {
	Level         int              `json:"level"`
	Experience    int              `json:"experience"`
	Path          evo.Path         `json:"path"`
	Stage         evo.Stage        `json:"stage"`
	LastEvolution *time.Time       `json:"lastEvolution"`
	PathPoints    pathPointsRecord `json:"pathPoints"`
}

func fromState(s evo.State) record {
	return record{
		Level:         s.Level,
		Experience:    s.Experience,
		Path:          s.Path,
		Stage:         s.Stage,
		LastEvolution: s.LastEvolution,
		PathPoints:    pathPointsRecord(s.PathPoints),
	}
}

func (r record) toState() evo.State {
	return evo.Normalize(evo.State{
		Level:         r.Level,
		Experience:    r.Experience,
		Path:          r.Path,
		Stage:         r.Stage,
		LastEvolution: r.LastEvolution,
		PathPoints:    evo.PathPoints(r.PathPoints),
	})
}
