package ports

import "context"

// Keys under which each engine keeps its own snapshot.
const (
	KeyPetState          = "petState"
	KeyEvolutionState    = "evolutionState"
	KeyAchievementsState = "achievementsState"
	KeyItemsState        = "itemsState"
)

// StateStore is the persistence gateway shared by the engines. Values are
// JSON documents. Open is idempotent and is called before every read or write.
// Get reports ok=false for a missing key.
type StateStore interface {
	Open(ctx context.Context) error
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}
