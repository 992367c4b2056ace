package factory

import (
	"math"

	"github.com/automoto/swordcrawl/archetypes"
	"github.com/automoto/swordcrawl/components"
	cfg "github.com/automoto/swordcrawl/config"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// SpawnHitParticles bursts cfg.Particles.Count particles outward from (x, y)
// at evenly spaced angles.
func SpawnHitParticles(ecs *ecs.ECS, x, y float64) {
	n := cfg.Particles.Count
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		p := archetypes.Particle.Spawn(ecs)
		components.Position.SetValue(p, components.PositionData{X: x, Y: y, Depth: -y})
		components.Velocity.SetValue(p, components.VelocityData{Vec2: dmath.Vec2{
			X: math.Cos(angle) * cfg.Particles.Speed,
			Y: math.Sin(angle) * cfg.Particles.Speed,
		}})
		components.DelayedRemove.SetValue(p, components.NewDelayedRemove(cfg.Particles.Lifespan))
		components.Sprite.SetValue(p, components.SpriteData{Name: cfg.ImageParticle, Frame: imageIndex(cfg.ImageParticle)})
	}
}
