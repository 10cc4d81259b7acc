package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/platformer/internal/application/input"
)

// DefaultKeys maps buttons to keys: Z confirms, X cancels, arrows move.
var DefaultKeys = map[input.Button]ebiten.Key{
	input.A:     ebiten.KeyZ,
	input.B:     ebiten.KeyX,
	input.Up:    ebiten.KeyArrowUp,
	input.Down:  ebiten.KeyArrowDown,
	input.Left:  ebiten.KeyArrowLeft,
	input.Right: ebiten.KeyArrowRight,
}

// Keyboard is an input.Source backed by ebiten's key state. It is also an
// input.TextSource: typed characters come from ebiten's input chars and
// Backspace is the delete key.
type Keyboard struct {
	Keys  map[input.Button]ebiten.Key
	chars []rune
}

// NewKeyboard creates a keyboard with DefaultKeys.
func NewKeyboard() *Keyboard {
	return &Keyboard{Keys: DefaultKeys}
}

func (k *Keyboard) Pressed(b input.Button) bool {
	key, ok := k.Keys[b]
	return ok && inpututil.IsKeyJustPressed(key)
}

func (k *Keyboard) Held(b input.Button) bool {
	key, ok := k.Keys[b]
	return ok && ebiten.IsKeyPressed(key)
}

func (k *Keyboard) Text() ([]rune, bool) {
	k.chars = ebiten.AppendInputChars(k.chars[:0])
	return k.chars, inpututil.IsKeyJustPressed(ebiten.KeyBackspace)
}
