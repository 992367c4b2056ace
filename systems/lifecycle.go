package systems

import (
	"github.com/automoto/swordcrawl/components"
	"github.com/automoto/swordcrawl/logger"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FlushLifecycle applies the removals and spawns queued during the tick. It
// must be the last system of a tick. Removing an entity twice is logged and
// skipped.
func FlushLifecycle(ecs *ecs.ECS) {
	l := lifecycle(ecs.World)
	if l == nil {
		return
	}

	removed := make(map[donburi.Entity]bool, len(l.Removals))
	for _, entity := range l.Removals {
		if removed[entity] {
			logger.Log.WithField("entity", entity).Warn("entity queued for removal twice")
			continue
		}
		removed[entity] = true
		if !ecs.World.Valid(entity) {
			logger.Log.WithField("entity", entity).Warn("entity already removed")
			continue
		}
		removeEntity(ecs.World, ecs.World.Entry(entity))
	}
	l.Removals = l.Removals[:0]

	// Spawns may queue more spawns; those run next tick.
	spawns := l.Spawns
	l.Spawns = nil
	for _, spawn := range spawns {
		spawn(ecs)
	}
}

// removeEntity drops the entity and its broad-phase object.
func removeEntity(w donburi.World, e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	logger.Log.WithFields(logrus.Fields{"entity": e.Entity()}).Trace("removed")
	w.Remove(e.Entity())
}
