package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnFunc creates entities once the current tick has finished iterating.
type SpawnFunc func(e *ecs.ECS)

// LifecycleData defers structural changes to the end of the tick.
type LifecycleData struct {
	Removals []donburi.Entity
	Spawns   []SpawnFunc
}

// QueueRemove schedules entity for removal. Duplicates are dropped at flush.
func (l *LifecycleData) QueueRemove(entity donburi.Entity) {
	l.Removals = append(l.Removals, entity)
}

// QueueSpawn schedules f to run at flush.
func (l *LifecycleData) QueueSpawn(f SpawnFunc) {
	l.Spawns = append(l.Spawns, f)
}

var Lifecycle = donburi.NewComponentType[LifecycleData]()
