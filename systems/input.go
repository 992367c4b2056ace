package systems

import (
	"github.com/automoto/swordcrawl/components"
	cfg "github.com/automoto/swordcrawl/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard and gamepads into the Input singleton.
// Must run BEFORE UpdateCharacterMove in the system order.
func UpdateInput(ecs *ecs.ECS) {
	in := input(ecs.World)
	if in == nil {
		return
	}
	PushInput(in, pollActions())
}

// PushInput makes pressed the current frame and keeps the old one for edge
// detection.
func PushInput(in *components.InputData, pressed [cfg.ActionCount]bool) {
	in.Previous = in.Current
	in.Current = pressed
}

func pollActions() [cfg.ActionCount]bool {
	var pressed [cfg.ActionCount]bool

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					pressed[actionID] = true
				}
			}
		}
	}

	// Merge analog stick into directional actions
	left, right, up, down := getAnalogStickState(gamepadIDs)
	pressed[cfg.ActionMoveLeft] = pressed[cfg.ActionMoveLeft] || left
	pressed[cfg.ActionMoveRight] = pressed[cfg.ActionMoveRight] || right
	pressed[cfg.ActionMoveUp] = pressed[cfg.ActionMoveUp] || up
	pressed[cfg.ActionMoveDown] = pressed[cfg.ActionMoveDown] || down

	return pressed
}

// getAnalogStickState reads the left analog stick from all gamepads.
// Stick up is negative on the standard layout.
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			left = true
		}
		if horizontal > deadzone {
			right = true
		}
		if vertical < -deadzone {
			up = true
		}
		if vertical > deadzone {
			down = true
		}
	}

	return
}
