package game

import (
	"gridshot/internal/character"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keepSlot leaves the selected slot unchanged.
const keepSlot = -2

// Intent is one tick of player input, decoupled from the keyboard so the
// frame logic can be driven by tests.
type Intent struct {
	Move float64 // +1 forward, -1 backward
	Turn float64 // +1 clockwise, -1 counter-clockwise

	Fire     bool // held
	Reload   bool
	Interact bool
	Consume  bool
	Select   int // slot index, character.NoSlot for fists, keepSlot otherwise

	ToggleMap  bool
	TogglePerf bool
	Confirm    bool // start or restart from a menu screen
	Menu       bool // back to the title screen from an end screen
}

// NoInput is an idle tick.
func NoInput() Intent {
	return Intent{Select: keepSlot}
}

var slotKeys = []struct {
	key  ebiten.Key
	slot int
}{
	{ebiten.Key0, character.NoSlot},
	{ebiten.Key1, 0},
	{ebiten.Key2, 1},
	{ebiten.Key3, 2},
	{ebiten.Key4, 3},
	{ebiten.Key5, 4},
}

// InputHandler samples the keyboard once per tick.
type InputHandler struct{}

func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Read builds the intent for this tick. Movement and firing are level
// triggered; everything else fires on the key press edge.
func (ih *InputHandler) Read() Intent {
	in := NoInput()

	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		in.Move++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		in.Move--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		in.Turn++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		in.Turn--
	}

	in.Fire = ebiten.IsKeyPressed(ebiten.KeySpace)
	in.Reload = inpututil.IsKeyJustPressed(ebiten.KeyR)
	in.Interact = inpututil.IsKeyJustPressed(ebiten.KeyE)
	in.Consume = inpututil.IsKeyJustPressed(ebiten.KeyF)
	in.ToggleMap = inpututil.IsKeyJustPressed(ebiten.KeyM)
	in.TogglePerf = inpututil.IsKeyJustPressed(ebiten.KeyF3)
	in.Confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.Menu = inpututil.IsKeyJustPressed(ebiten.KeyM)

	for _, sk := range slotKeys {
		if inpututil.IsKeyJustPressed(sk.key) {
			in.Select = sk.slot
		}
	}
	return in
}
