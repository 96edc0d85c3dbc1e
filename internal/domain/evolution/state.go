package evolution

import (
	"time"

	"pocketpet/internal/domain/faults"
)

type Path string

const (
	PathAthletic     Path = "athletic"
	PathIntellectual Path = "intellectual"
	PathSocial       Path = "social"
	PathBalanced     Path = "balanced"
)

// Paths is the iteration order used when resolving ties in path points.
var Paths = []Path{PathAthletic, PathIntellectual, PathSocial, PathBalanced}

type Stage string

const (
	StageBaby  Stage = "baby"
	StageChild Stage = "child"
	StageTeen  Stage = "teen"
	StageAdult Stage = "adult"
)

const (
	ChildLevel = 5
	TeenLevel  = 15
	AdultLevel = 30
)

var (
	ErrNegativeExperience = faults.New(faults.ErrInvalidInput, "experience amount must not be negative")
	ErrUnknownPath        = faults.New(faults.ErrInvalidInput, "unknown evolution path")
)

type PathPoints struct {
	Athletic     int `json:"athletic"`
	Intellectual int `json:"intellectual"`
	Social       int `json:"social"`
	Balanced     int `json:"balanced"`
}

func (p PathPoints) Get(path Path) int {
	switch path {
	case PathAthletic:
		return p.Athletic
	case PathIntellectual:
		return p.Intellectual
	case PathSocial:
		return p.Social
	case PathBalanced:
		return p.Balanced
	}
	return 0
}

func (p *PathPoints) add(path Path, n int) {
	switch path {
	case PathAthletic:
		p.Athletic += n
	case PathIntellectual:
		p.Intellectual += n
	case PathSocial:
		p.Social += n
	case PathBalanced:
		p.Balanced += n
	}
}

// Dominant is the path with the most points; ties go to the earlier entry in Paths.
func (p PathPoints) Dominant() Path {
	best, bestPoints := PathBalanced, -1
	for _, path := range Paths {
		if v := p.Get(path); v > bestPoints {
			best, bestPoints = path, v
		}
	}
	return best
}

type State struct {
	Level         int        `json:"level"`
	Experience    int        `json:"experience"`
	Path          Path       `json:"path"`
	Stage         Stage      `json:"stage"`
	LastEvolution *time.Time `json:"last_evolution"`
	PathPoints    PathPoints `json:"path_points"`
}

func NewState() State {
	return State{Level: 1, Path: PathBalanced, Stage: StageBaby}
}

func IsValidPath(p Path) bool {
	switch p {
	case PathAthletic, PathIntellectual, PathSocial, PathBalanced:
		return true
	}
	return false
}

func IsValidStage(s Stage) bool {
	return stageRank(s) >= 0
}

func stageRank(s Stage) int {
	switch s {
	case StageBaby:
		return 0
	case StageChild:
		return 1
	case StageTeen:
		return 2
	case StageAdult:
		return 3
	}
	return -1
}

// Normalize repairs a loaded state. Experience at or above the threshold is
// resolved into levels without touching the stage; the next award checks
// evolution. The stored path is kept only when it matches the path points and
// stage is never lowered.
func Normalize(s State) State {
	if s.Level < 1 {
		s.Level = 1
	}
	if s.Experience < 0 {
		s.Experience = 0
	}
	for s.Experience >= ExperienceForNextLevel(s.Level) {
		s.Experience -= ExperienceForNextLevel(s.Level)
		s.Level++
	}
	if !IsValidStage(s.Stage) {
		s.Stage = StageBaby
	}
	s.PathPoints.Athletic = max(0, s.PathPoints.Athletic)
	s.PathPoints.Intellectual = max(0, s.PathPoints.Intellectual)
	s.PathPoints.Social = max(0, s.PathPoints.Social)
	s.PathPoints.Balanced = max(0, s.PathPoints.Balanced)
	if s.PathPoints == (PathPoints{}) {
		if !IsValidPath(s.Path) {
			s.Path = PathBalanced
		}
	} else {
		s.Path = s.PathPoints.Dominant()
	}
	return s
}
