package ecs

// EntityID is a unique identifier for an entity within one World.
// Zero is never allocated and can be used as "no entity".
type EntityID uint64

// Entity represents a game object in the ECS architecture
type Entity struct {
	ID EntityID
	// Tags are used for quick identification (e.g. "snake", "wall")
	Tags map[string]bool
}

// newEntity creates an entity with the given id
func newEntity(id EntityID) *Entity {
	return &Entity{
		ID:   id,
		Tags: make(map[string]bool),
	}
}

// HasTag checks if the entity has a specific tag
func (e *Entity) HasTag(tag string) bool {
	return e.Tags[tag]
}
