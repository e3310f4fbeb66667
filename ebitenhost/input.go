package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the per-frame input the host polls. EbitenInput reads it from
// ebiten; tests substitute a fake.
type Input interface {
	CursorPosition() (x, y int)
	Wheel() (dx, dy float64)
	IsFocused() bool
	LeftJustPressed() bool
}

// EbitenInput polls ebiten's global input state.
type EbitenInput struct{}

func (EbitenInput) CursorPosition() (int, int) { return ebiten.CursorPosition() }
func (EbitenInput) Wheel() (float64, float64)  { return ebiten.Wheel() }
func (EbitenInput) IsFocused() bool            { return ebiten.IsFocused() }

func (EbitenInput) LeftJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}
