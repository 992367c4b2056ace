package systems

import (
	"testing"

	"github.com/automoto/swordcrawl/components"
	cfg "github.com/automoto/swordcrawl/config"
	"github.com/automoto/swordcrawl/gamemath"
	"github.com/automoto/swordcrawl/logger"
	"github.com/automoto/swordcrawl/room"
	"github.com/automoto/swordcrawl/systems/factory"
	"github.com/automoto/swordcrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tick = 1.0 / 60

func newTestECS(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	logger.Discard()
	e := ecs.NewECS(donburi.NewWorld())
	SubscribeCollisions(e.World)
	factory.CreateSpace(e, 640, 480, 16, 16)
	game := factory.CreateGame(e, components.DungeonData{
		Room: room.New(20, 15),
	})
	components.Clock.Get(game).Delta = tick
	return e, game
}

func createWallAt(e *ecs.ECS, cx, cy int) *donburi.Entry {
	x, y := factory.CellCenter(cx, cy)
	return factory.CreateWall(e, x, y)
}

func countCollisions(w donburi.World) *int {
	n := new(int)
	components.Collision.Subscribe(w, func(w donburi.World, ev components.CollisionEvent) {
		*n++
	})
	return n
}

func TestCorrection(t *testing.T) {
	mover := gamemath.Rect{Left: 0, Right: 2, Bottom: 0, Top: 2}
	tests := []struct {
		name   string
		solid  gamemath.Rect
		vx, vy float64
		wantX  float64
		wantY  float64
	}{
		{"moving right into solid", gamemath.Rect{Left: 1.5, Right: 3.5, Bottom: 0, Top: 2}, 1, 0, -0.5, 0},
		{"moving left into solid", gamemath.Rect{Left: -1.5, Right: 0.5, Bottom: 0, Top: 2}, -1, 0, 0.5, 0},
		{"at rest pushes away from center", gamemath.Rect{Left: 1.5, Right: 3.5, Bottom: 0, Top: 2}, 0, 0, -0.5, 0},
		{"falling onto solid", gamemath.Rect{Left: 0, Right: 2, Bottom: -1.5, Top: 0.5}, 0, -1, 0, 0.5},
		{"equal depths resolve on x", gamemath.Rect{Left: 1, Right: 3, Bottom: 1, Top: 3}, 0, 0, -1, 0},
		{"same center pushes positive", mover, 0, 0, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Correction(mover, tt.solid, tt.vx, tt.vy)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Correction = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPhysicsRestingMoverEmitsNothing(t *testing.T) {
	e, _ := newTestECS(t)
	n := countCollisions(e.World)

	x, y := factory.CellCenter(1, 1)
	player := factory.CreatePlayer(e, x, y)
	createWallAt(e, 0, 1)

	UpdatePhysics(e)
	ProcessEvents(e)

	if *n != 0 {
		t.Errorf("%d collision events for a resting mover touching a wall", *n)
	}
	pos := components.Position.Get(player)
	if pos.X != x || pos.Y != y {
		t.Errorf("resting mover moved to (%v, %v)", pos.X, pos.Y)
	}
}

func TestPhysicsPushesMoverOutOfWall(t *testing.T) {
	e, game := newTestECS(t)
	components.Clock.Get(game).Delta = 0.25
	n := countCollisions(e.World)

	x, y := factory.CellCenter(1, 1)
	player := factory.CreatePlayer(e, x, y)
	createWallAt(e, 0, 1)

	components.Physics.Get(player).Velocity.X = -4

	UpdatePhysics(e)
	ProcessEvents(e)

	if *n != 1 {
		t.Errorf("%d collision events, want 1", *n)
	}
	pos := components.Position.Get(player)
	if pos.X != x || pos.Y != y {
		t.Errorf("mover at (%v, %v), want pushed back to (%v, %v)", pos.X, pos.Y, x, y)
	}
	if pos.Depth != -pos.Y {
		t.Errorf("Depth = %v, want %v", pos.Depth, -pos.Y)
	}
	if v := components.Physics.Get(player).Velocity; v.X != 0 || v.Y != 0 {
		t.Errorf("velocity not cleared: %v", v)
	}
}

func TestPhysicsSumsCorrections(t *testing.T) {
	e, game := newTestECS(t)
	components.Clock.Get(game).Delta = 0.25

	// Moving down-left into a corner of two walls
	x, y := factory.CellCenter(1, 1)
	player := factory.CreatePlayer(e, x, y)
	createWallAt(e, 0, 1)
	createWallAt(e, 1, 0)

	phys := components.Physics.Get(player)
	phys.Velocity.X, phys.Velocity.Y = -4, -4

	UpdatePhysics(e)

	pos := components.Position.Get(player)
	if pos.X != x || pos.Y != y {
		t.Errorf("mover at (%v, %v), want (%v, %v)", pos.X, pos.Y, x, y)
	}
}

func recordCollisions(w donburi.World) *[]components.CollisionEvent {
	events := new([]components.CollisionEvent)
	components.Collision.Subscribe(w, func(w donburi.World, ev components.CollisionEvent) {
		*events = append(*events, ev)
	})
	return events
}

func TestPhysicsSubUnitOverlap(t *testing.T) {
	// Wall at cell (3,1) spans x 96..128 and y 32..64.
	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"right edge into wall", 80.5, 48, 80, 48},
		{"top edge into wall", 112, 16.5, 112, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestECS(t)
			n := countCollisions(e.World)

			createWallAt(e, 3, 1)
			player := factory.CreatePlayer(e, tt.x, tt.y)

			UpdatePhysics(e)
			ProcessEvents(e)

			if *n != 1 {
				t.Errorf("%d collision events for a 0.5 overlap, want 1", *n)
			}
			pos := components.Position.Get(player)
			if pos.X != tt.wantX || pos.Y != tt.wantY {
				t.Errorf("mover at (%v, %v), want (%v, %v)", pos.X, pos.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPhysicsMoversBlockEachOther(t *testing.T) {
	e, game := newTestECS(t)
	components.Clock.Get(game).Delta = 0.25
	events := recordCollisions(e.World)

	// Apart at tick start; each tentative rect overlaps the other's
	// starting rect by 0.5.
	px, py := factory.CellCenter(3, 3)
	player := factory.CreatePlayer(e, px, py)
	enemy := factory.CreateEnemy(e, 142.5, py)

	components.Physics.Get(player).Velocity.X = 4
	components.Physics.Get(enemy).Velocity.X = -4

	UpdatePhysics(e)
	ProcessEvents(e)

	if pos := components.Position.Get(player); pos.X != 112.5 || pos.Y != py {
		t.Errorf("player at (%v, %v), want (112.5, %v)", pos.X, pos.Y, py)
	}
	if pos := components.Position.Get(enemy); pos.X != 142 || pos.Y != py {
		t.Errorf("enemy at (%v, %v), want (142, %v)", pos.X, pos.Y, py)
	}

	if len(*events) != 2 {
		t.Fatalf("%d collision events, want 2: %v", len(*events), *events)
	}
	seen := map[donburi.Entity]donburi.Entity{}
	for _, ev := range *events {
		if ev.Mover == ev.Other {
			t.Errorf("entity %v paired with itself", ev.Mover)
		}
		seen[ev.Mover] = ev.Other
	}
	if seen[player.Entity()] != enemy.Entity() || seen[enemy.Entity()] != player.Entity() {
		t.Errorf("events = %v, want one player->enemy and one enemy->player", *events)
	}
}

// crowdedRoom builds walls and movers heading into them and into each other.
func crowdedRoom(t *testing.T) (*ecs.ECS, []*donburi.Entry) {
	t.Helper()
	e, game := newTestECS(t)
	components.Clock.Get(game).Delta = 0.25

	for x := 0; x < 10; x++ {
		createWallAt(e, x, 0)
	}
	var bodies []*donburi.Entry
	for i := 0; i < 8; i++ {
		x, y := factory.CellCenter(1+i, 1)
		var b *donburi.Entry
		if i%2 == 0 {
			b = factory.CreatePlayer(e, x, y-0.5)
		} else {
			b = factory.CreateEnemy(e, x+0.5, y)
		}
		phys := components.Physics.Get(b)
		phys.Velocity.X = float64(4 * (i%3 - 1))
		phys.Velocity.Y = -4
		bodies = append(bodies, b)
	}
	return e, bodies
}

func TestPhysicsParallelMatchesSequential(t *testing.T) {
	run := func(threshold int) ([]components.PositionData, []components.CollisionEvent) {
		saved := cfg.Physics.ParallelThreshold
		cfg.Physics.ParallelThreshold = threshold
		defer func() { cfg.Physics.ParallelThreshold = saved }()

		e, bodies := crowdedRoom(t)
		events := recordCollisions(e.World)
		UpdatePhysics(e)
		ProcessEvents(e)

		var positions []components.PositionData
		for _, b := range bodies {
			positions = append(positions, *components.Position.Get(b))
		}
		return positions, *events
	}

	seqPos, seqEvents := run(1 << 30)
	parPos, parEvents := run(0)

	if len(seqEvents) == 0 {
		t.Fatal("scene produced no collisions")
	}
	for i := range seqPos {
		if seqPos[i] != parPos[i] {
			t.Errorf("body %d: parallel %+v, sequential %+v", i, parPos[i], seqPos[i])
		}
	}
	if len(parEvents) != len(seqEvents) {
		t.Fatalf("parallel published %d events, sequential %d", len(parEvents), len(seqEvents))
	}
	for i := range seqEvents {
		if parEvents[i] != seqEvents[i] {
			t.Errorf("event %d: parallel %v, sequential %v", i, parEvents[i], seqEvents[i])
		}
	}
}

func TestSwordBreaksBush(t *testing.T) {
	e, _ := newTestECS(t)

	x, y := factory.CellCenter(3, 3)
	bush := factory.CreateBush(e, x, y)
	sword := factory.CreateSword(e, x, y)

	UpdatePhysics(e)
	ProcessEvents(e)

	if got := components.Destroyable.Get(bush).Health; got != cfg.Combat.BushHealth-cfg.Combat.SwordDamage {
		t.Errorf("bush health = %v", got)
	}
	if pos := components.Position.Get(sword); pos.X != x || pos.Y != y {
		t.Errorf("sensor moved to (%v, %v)", pos.X, pos.Y)
	}

	FlushLifecycle(e)

	if e.World.Valid(bush.Entity()) {
		t.Error("bush still alive")
	}
	particles := 0
	tags.Particle.Each(e.World, func(*donburi.Entry) { particles++ })
	if particles != cfg.Particles.Count {
		t.Errorf("%d particles, want %d", particles, cfg.Particles.Count)
	}
}

func TestDamageAccumulates(t *testing.T) {
	e, _ := newTestECS(t)
	w := e.World

	destroyer := w.Entry(w.Create(components.Destroyer))
	components.Destroyer.SetValue(destroyer, components.DestroyerData{Damage: 1.5})
	target := w.Entry(w.Create(components.Destroyable))
	components.Destroyable.SetValue(target, components.DestroyableData{Health: 2.0})

	ev := components.CollisionEvent{Mover: destroyer.Entity(), Other: target.Entity()}

	OnCollisionDamage(w, ev)
	if got := components.Destroyable.Get(target).Health; got != 0.5 {
		t.Fatalf("after first hit health = %v, want 0.5", got)
	}
	if n := len(lifecycle(w).Removals); n != 0 {
		t.Fatalf("%d removals queued at health 0.5", n)
	}

	OnCollisionDamage(w, ev)
	if got := components.Destroyable.Get(target).Health; got != -1.0 {
		t.Fatalf("after second hit health = %v, want -1.0", got)
	}

	FlushLifecycle(e)
	if w.Valid(target.Entity()) {
		t.Error("target not removed")
	}
	if !w.Valid(destroyer.Entity()) {
		t.Error("destroyer removed")
	}
}

func TestDamageIgnoresPlainSolids(t *testing.T) {
	e, _ := newTestECS(t)
	w := e.World

	a := w.Entry(w.Create(components.Destroyable))
	components.Destroyable.SetValue(a, components.DestroyableData{Health: 1})
	b := w.Entry(w.Create(components.Destroyable))
	components.Destroyable.SetValue(b, components.DestroyableData{Health: 1})

	OnCollisionDamage(w, components.CollisionEvent{Mover: a.Entity(), Other: b.Entity()})

	if components.Destroyable.Get(a).Health != 1 || components.Destroyable.Get(b).Health != 1 {
		t.Error("health changed without a destroyer")
	}
}

func TestDelayedRemoveStrictThreshold(t *testing.T) {
	e, game := newTestECS(t)
	w := e.World
	components.Clock.Get(game).Delta = 0.1

	entry := w.Entry(w.Create(components.DelayedRemove))
	components.DelayedRemove.SetValue(entry, components.NewDelayedRemove(0.2))

	for i, wantAlive := range []bool{true, true, false} {
		UpdateDelayedRemove(e)
		FlushLifecycle(e)
		if got := w.Valid(entry.Entity()); got != wantAlive {
			t.Fatalf("tick %d: alive = %v, want %v", i+1, got, wantAlive)
		}
	}
}

func TestFlushLifecycleDuplicateRemoval(t *testing.T) {
	e, _ := newTestECS(t)
	w := e.World

	x, y := factory.CellCenter(2, 2)
	bush := factory.CreateBush(e, x, y)
	l := lifecycle(w)
	l.QueueRemove(bush.Entity())
	l.QueueRemove(bush.Entity())

	FlushLifecycle(e)

	if w.Valid(bush.Entity()) {
		t.Error("entity not removed")
	}
	if len(l.Removals) != 0 {
		t.Errorf("%d removals left after flush", len(l.Removals))
	}
}

func TestRoomExitFirstWins(t *testing.T) {
	e, game := newTestECS(t)
	w := e.World

	player := w.Entry(w.Create(tags.Player))
	north := w.Entry(w.Create(components.Exit))
	components.Exit.SetValue(north, components.ExitData{Dest: room.Relative(0, -1, 10, 1)})
	east := w.Entry(w.Create(components.Exit))
	components.Exit.SetValue(east, components.ExitData{Dest: room.Relative(1, 0, 1, 7)})
	enemy := w.Entry(w.Create(tags.Enemy))

	// Non-player movers never take exits
	OnCollisionRoomExit(w, components.CollisionEvent{Mover: enemy.Entity(), Other: east.Entity()})
	OnCollisionRoomExit(w, components.CollisionEvent{Mover: player.Entity(), Other: north.Entity()})
	OnCollisionRoomExit(w, components.CollisionEvent{Mover: player.Entity(), Other: east.Entity()})

	dest, ok := components.RoomExit.Get(game).Take()
	if !ok {
		t.Fatal("no exit pending")
	}
	if got := dest.Resolve(room.Coordinate{}); got != (room.Coordinate{X: 0, Y: -1}) {
		t.Errorf("resolved to %v, want north neighbour", got)
	}
	if _, ok := components.RoomExit.Get(game).Take(); ok {
		t.Error("outbox not emptied by Take")
	}
}

func TestFacing(t *testing.T) {
	down := components.CharacterMetaData{Direction: cfg.Down}
	tests := []struct {
		name   string
		ix, iy float64
		want   components.CharacterMetaData
	}{
		{"right", 1, 0, components.CharacterMetaData{Direction: cfg.Right, Moving: true}},
		{"left", -1, 0, components.CharacterMetaData{Direction: cfg.Left, Moving: true}},
		{"up", 0, 1, components.CharacterMetaData{Direction: cfg.Up, Moving: true}},
		{"down", 0, -1, components.CharacterMetaData{Direction: cfg.Down, Moving: true}},
		{"horizontal wins", -1, 1, components.CharacterMetaData{Direction: cfg.Left, Moving: true}},
		{"idle keeps facing", 0, 0, down},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Facing(down, tt.ix, tt.iy); got != tt.want {
				t.Errorf("Facing = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFacingGateKeepsAnimationRunning(t *testing.T) {
	e, game := newTestECS(t)
	components.Clock.Get(game).Delta = 0.06

	x, y := factory.CellCenter(5, 5)
	player := factory.CreatePlayer(e, x, y)
	anim := components.CharacterAnimation.Get(player)
	anim.Walk[cfg.Right] = []int{9, 10, 11}

	in := components.Input.Get(game)
	var right [cfg.ActionCount]bool
	right[cfg.ActionMoveRight] = true

	for range 2 {
		PushInput(in, right)
		UpdateCharacterMove(e)
		UpdateCharacterAnimation(e)
		UpdateSpriteAnimation(e)
	}

	sprite := components.SpriteAnimation.Get(player)
	if sprite.Index != 1 {
		t.Errorf("Index = %d, want 1: unchanged facing must not restart the clip", sprite.Index)
	}
	if got := components.Sprite.Get(player).Frame; got != 10 {
		t.Errorf("Frame = %d, want 10", got)
	}
	if v := components.Physics.Get(player).Velocity; v.X != cfg.Player.Speed || v.Y != 0 {
		t.Errorf("velocity = %v", v)
	}
}

func TestAttackSpawnsSwordOnPressEdge(t *testing.T) {
	e, game := newTestECS(t)

	x, y := factory.CellCenter(5, 5)
	factory.CreatePlayer(e, x, y)
	in := components.Input.Get(game)
	var attack [cfg.ActionCount]bool
	attack[cfg.ActionAttack] = true

	swords := func() int {
		n := 0
		tags.Sword.Each(e.World, func(*donburi.Entry) { n++ })
		return n
	}

	for i, want := range []int{1, 1} {
		PushInput(in, attack)
		UpdateCharacterMove(e)
		FlushLifecycle(e)
		if got := swords(); got != want {
			t.Fatalf("tick %d: %d swords, want %d", i+1, got, want)
		}
	}

	sword, _ := tags.Sword.First(e.World)
	pos := components.Position.Get(sword)
	if pos.X != x || pos.Y != y-cfg.Player.HalfSize {
		t.Errorf("sword at (%v, %v), want below the player", pos.X, pos.Y)
	}
}

func TestSavedSettingsScale(t *testing.T) {
	tests := []struct {
		index int
		want  float64
	}{
		{0, cfg.Settings.Scales[0]},
		{len(cfg.Settings.Scales) - 1, cfg.Settings.Scales[len(cfg.Settings.Scales)-1]},
		{-1, cfg.Settings.Scales[cfg.Settings.DefaultScale]},
		{99, cfg.Settings.Scales[cfg.Settings.DefaultScale]},
	}
	for _, tt := range tests {
		if got := (SavedSettings{ScaleIndex: tt.index}).Scale(); got != tt.want {
			t.Errorf("Scale(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestLoadSettingsWithoutStorage(t *testing.T) {
	if got := LoadSettings(); got != DefaultSettings() {
		t.Errorf("LoadSettings = %+v, want defaults", got)
	}
	if err := SaveSettings(SavedSettings{Seed: 9}); err != nil {
		t.Errorf("SaveSettings without storage: %v", err)
	}
}

func TestTransitionFadesOut(t *testing.T) {
	e, game := newTestECS(t)
	components.Clock.Get(game).Delta = float64(cfg.Transition.Duration) / 2

	StartTransition(e.World)
	tr := components.Transition.Get(game)
	if !tr.Active() || tr.Alpha != 1 {
		t.Fatalf("after start: active %v alpha %v", tr.Active(), tr.Alpha)
	}

	UpdateTransition(e)
	if tr.Alpha <= 0 || tr.Alpha >= 1 {
		t.Errorf("halfway alpha = %v", tr.Alpha)
	}

	UpdateTransition(e)
	UpdateTransition(e)
	if tr.Active() || tr.Alpha != 0 {
		t.Errorf("after fade: active %v alpha %v", tr.Active(), tr.Alpha)
	}
}
