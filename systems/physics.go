package systems

import (
	"runtime"

	"github.com/automoto/swordcrawl/components"
	cfg "github.com/automoto/swordcrawl/config"
	"github.com/automoto/swordcrawl/gamemath"
	"github.com/automoto/swordcrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	"golang.org/x/sync/errgroup"
)

var movers = donburi.NewQuery(filter.Contains(
	components.Physics,
	components.Position,
	components.Bounds,
	components.Object,
))

// solidSnapshot is a candidate solid frozen at the start of the tick.
type solidSnapshot struct {
	entity donburi.Entity
	rect   gamemath.Rect
}

// moverStep is the per-mover working state of one physics tick.
type moverStep struct {
	entry     *donburi.Entry
	tentX     float64
	tentY     float64
	tentative gamemath.Rect
	vx, vy    float64
	sensor    bool
	solids    []solidSnapshot

	// narrow phase output
	corrX, corrY float64
	hits         []donburi.Entity
}

// Correction returns the push that separates mover from solid along the
// shallow axis. The sign opposes the velocity on that axis. A mover at rest
// on that axis is pushed away from the solid's center, positive when the
// centers coincide.
func Correction(mover, solid gamemath.Rect, vx, vy float64) (float64, float64) {
	ix, iy := gamemath.Penetration(mover, solid)
	mx, my := mover.Center()
	sx, sy := solid.Center()

	if gamemath.ShallowAxis(ix, iy) == gamemath.AxisY {
		return 0, correctionSign(vy, my, sy) * iy
	}
	return correctionSign(vx, mx, sx) * ix, 0
}

func correctionSign(velocity, moverCenter, solidCenter float64) float64 {
	switch {
	case velocity > 0:
		return -1
	case velocity < 0:
		return 1
	case moverCenter < solidCenter:
		return -1
	default:
		return 1
	}
}

// narrowPhase tests the tentative rect against every candidate and sums the
// corrections. Sensors collect hits but are never corrected.
func (s *moverStep) narrowPhase() {
	for _, solid := range s.solids {
		if !gamemath.Overlaps(s.tentative, solid.rect) {
			continue
		}
		s.hits = append(s.hits, solid.entity)
		if s.sensor {
			continue
		}
		cx, cy := Correction(s.tentative, solid.rect, s.vx, s.vy)
		s.corrX += cx
		s.corrY += cy
	}
}

// UpdatePhysics moves every movable by velocity*dt, resolves overlaps with
// solids and publishes a CollisionEvent per overlapping pair. Corrections are
// computed from tick-start positions and applied together after the scan.
func UpdatePhysics(ecs *ecs.ECS) {
	w := ecs.World
	dt := delta(w)

	var steps []*moverStep
	movers.Each(w, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		bounds := components.Bounds.Get(e)
		vel := components.Physics.Get(e).Velocity
		obj := components.Object.Get(e)

		dx, dy := vel.X*dt, vel.Y*dt
		step := &moverStep{
			entry:  e,
			tentX:  pos.X + dx,
			tentY:  pos.Y + dy,
			vx:     vel.X,
			vy:     vel.Y,
			sensor: e.HasComponent(tags.Sensor),
		}
		step.tentative = bounds.At(step.tentX, step.tentY)

		// Broad phase
		obj.MoveTo(bounds.World(pos))
		if check := obj.Check(dx, dy, tags.ResolvSolid); check != nil {
			for _, o := range check.Objects {
				other, ok := o.Data.(*donburi.Entry)
				if !ok || other.Entity() == e.Entity() || !w.Valid(other.Entity()) {
					continue
				}
				if !other.HasComponent(tags.Solid) {
					continue
				}
				otherPos := components.Position.Get(other)
				otherBounds := components.Bounds.Get(other)
				step.solids = append(step.solids, solidSnapshot{
					entity: other.Entity(),
					rect:   otherBounds.World(otherPos),
				})
			}
		}
		steps = append(steps, step)
	})

	// Narrow phase
	if len(steps) > cfg.Physics.ParallelThreshold {
		var g errgroup.Group
		g.SetLimit(runtime.GOMAXPROCS(0))
		for _, step := range steps {
			g.Go(func() error {
				step.narrowPhase()
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for _, step := range steps {
			step.narrowPhase()
		}
	}

	// Commit
	for _, step := range steps {
		e := step.entry
		pos := components.Position.Get(e)
		pos.X = step.tentX + step.corrX
		pos.Y = step.tentY + step.corrY
		pos.Depth = -pos.Y

		bounds := components.Bounds.Get(e)
		components.Object.Get(e).MoveTo(bounds.World(pos))

		phys := components.Physics.Get(e)
		phys.Velocity.X, phys.Velocity.Y = 0, 0

		for _, other := range step.hits {
			components.Collision.Publish(w, components.CollisionEvent{
				Mover: e.Entity(),
				Other: other,
			})
		}
	}
}
