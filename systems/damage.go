package systems

import (
	"github.com/automoto/swordcrawl/components"
	"github.com/automoto/swordcrawl/logger"
	"github.com/automoto/swordcrawl/systems/factory"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// damageFlash is how long a damaged sprite stays tinted, in seconds.
const damageFlash = 0.1

// OnCollisionDamage applies destroyer damage for both orderings of the
// colliding pair.
func OnCollisionDamage(w donburi.World, ev components.CollisionEvent) {
	applyDamage(w, ev.Mover, ev.Other)
	applyDamage(w, ev.Other, ev.Mover)
}

func applyDamage(w donburi.World, destroyer, target donburi.Entity) {
	if !w.Valid(destroyer) || !w.Valid(target) {
		return
	}
	de, te := w.Entry(destroyer), w.Entry(target)
	if !de.HasComponent(components.Destroyer) || !te.HasComponent(components.Destroyable) {
		return
	}

	d := components.Destroyable.Get(te)
	wasAlive := d.Health >= 0
	d.Health -= components.Destroyer.Get(de).Damage

	if te.HasComponent(components.Flash) {
		flash := components.Flash.Get(te)
		flash.Remaining = damageFlash
		flash.R, flash.G, flash.B = 3, 1, 1 // Red tint (multiplier)
	}

	if d.Health >= 0 {
		return
	}
	queueRemove(w, target)

	// Burst once, on the hit that broke it.
	if wasAlive && te.HasComponent(components.Position) {
		pos := components.Position.Get(te)
		x, y := pos.X, pos.Y
		if l := lifecycle(w); l != nil {
			l.QueueSpawn(func(e *ecs.ECS) {
				factory.SpawnHitParticles(e, x, y)
			})
		}
		logger.Log.WithFields(logrus.Fields{
			"entity": target,
			"health": d.Health,
		}).Debug("destroyed")
	}
}
