package ports

import "pocketpet/internal/domain/pet"

type ActionMetrics interface {
	RecordApplied(action pet.ActionType)
	RecordNoop(action pet.ActionType)
	RecordFailure(action pet.ActionType)
}
