package invaders

import (
	"strconv"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Category tags an entity with its kind. The render layer uses it as the
// visual class of the entity.
type Category string

const (
	CategoryBullet  Category = "bullet"
	CategoryInvader Category = "invader"
	CategoryShip    Category = "ship"
	CategoryShield  Category = "shield"
	CategoryBoss    Category = "boss"
)

// Entity is a positioned, radius-bearing simulation body.
// Entities are values: moving one yields a new Entity.
type Entity struct {
	ID        string // Category followed by NumericID, e.g. "invader12"
	NumericID int
	X, Y      float64
	Radius    float64
	CreatedAt int // Tick of creation, used for bullet expiry
	Category  Category
}

// EntitySpec holds the parameters for Create.
type EntitySpec struct {
	Category  Category
	NumericID int
	CreatedAt int
	Radius    float64
	X, Y      float64
}

// Create builds an entity. The ID is derived from the category and the
// numeric id, so creating twice from the same EntitySpec yields equal entities.
func Create(spec EntitySpec) Entity {
	return Entity{
		ID:        string(spec.Category) + strconv.Itoa(spec.NumericID),
		NumericID: spec.NumericID,
		X:         spec.X,
		Y:         spec.Y,
		Radius:    spec.Radius,
		CreatedAt: spec.CreatedAt,
		Category:  spec.Category,
	}
}

// Circle returns the collision body of the entity.
func (e Entity) Circle() core.Circle {
	return core.Circle{X: e.X, Y: e.Y, R: e.Radius}
}

// appendCopy returns a freshly allocated slice holding xs followed by more.
// Snapshots share no backing arrays, so an older State is never altered by
// appends made on a newer one.
func appendCopy(xs []Entity, more ...Entity) []Entity {
	out := make([]Entity, 0, len(xs)+len(more))
	out = append(out, xs...)
	return append(out, more...)
}

// mapEntities applies f to every entity and returns a new slice.
func mapEntities(xs []Entity, f func(Entity) Entity) []Entity {
	if len(xs) == 0 {
		return nil
	}
	out := make([]Entity, len(xs))
	for i, e := range xs {
		out[i] = f(e)
	}
	return out
}
