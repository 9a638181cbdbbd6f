package vis

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/elektrokombinacija/sokoban/internal/core"
)

// Board colors.
var (
	colorFloor     = color.NRGBA{R: 38, G: 42, B: 48, A: 255}
	colorWall      = color.NRGBA{R: 90, G: 96, B: 104, A: 255}
	colorGoal      = color.NRGBA{R: 120, G: 180, B: 120, A: 255}
	colorBox       = color.NRGBA{R: 210, G: 150, B: 70, A: 255}
	colorBoxOnGoal = color.NRGBA{R: 120, G: 200, B: 120, A: 255}
	colorPlayer    = color.NRGBA{R: 100, G: 170, B: 255, A: 255}
)

// DrawBoard renders the puzzle state centered inside the current
// constraints, scaling cells to fit.
func DrawBoard(gtx layout.Context, p *core.Puzzle, s core.State) {
	bounds := gtx.Constraints.Max

	cell := bounds.X / p.Width
	if c := bounds.Y / p.Height; c < cell {
		cell = c
	}
	if cell < 4 {
		cell = 4
	}
	offX := (bounds.X - cell*p.Width) / 2
	offY := (bounds.Y - cell*p.Height) / 2

	cellRect := func(pos core.Pos) image.Rectangle {
		return image.Rect(
			offX+pos.X*cell, offY+pos.Y*cell,
			offX+(pos.X+1)*cell, offY+(pos.Y+1)*cell,
		)
	}

	// Floor plate under the whole grid.
	paint.FillShape(gtx.Ops, colorFloor,
		clip.Rect(image.Rect(offX, offY, offX+cell*p.Width, offY+cell*p.Height)).Op())

	for pos := range p.Walls {
		paint.FillShape(gtx.Ops, colorWall, clip.Rect(cellRect(pos)).Op())
	}

	// Goals drawn as inset squares so boxes and player remain visible.
	for pos := range p.Goals {
		r := cellRect(pos)
		inset := cell / 3
		goalRect := image.Rect(r.Min.X+inset, r.Min.Y+inset, r.Max.X-inset, r.Max.Y-inset)
		paint.FillShape(gtx.Ops, colorGoal, clip.Rect(goalRect).Op())
	}

	for _, box := range s.Boxes {
		r := cellRect(box)
		inset := cell / 8
		boxRect := image.Rect(r.Min.X+inset, r.Min.Y+inset, r.Max.X-inset, r.Max.Y-inset)
		col := colorBox
		if p.Goals[box] {
			col = colorBoxOnGoal
		}
		paint.FillShape(gtx.Ops, col, clip.Rect(boxRect).Op())
	}

	// Player as a circle.
	r := cellRect(s.Player)
	inset := cell / 6
	playerRect := image.Rect(r.Min.X+inset, r.Min.Y+inset, r.Max.X-inset, r.Max.Y-inset)
	paint.FillShape(gtx.Ops, colorPlayer, clip.Ellipse(playerRect).Op(gtx.Ops))
}
