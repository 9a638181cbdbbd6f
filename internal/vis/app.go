// Package vis implements a Gio-based playback visualizer for solved
// puzzles.
package vis

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/sokoban/internal/algo"
	"github.com/elektrokombinacija/sokoban/internal/core"
)

// App is the playback application: a solved puzzle plus playback state.
type App struct {
	puzzle   *core.Puzzle
	playback *PlaybackState
	result   algo.Result
	theme    *material.Theme
}

// NewApp solves the puzzle text and prepares the replayed state sequence.
func NewApp(puzzleText string, opts algo.Options) (*App, error) {
	result := algo.SolvePuzzle(puzzleText, opts)
	if !result.Success {
		return nil, fmt.Errorf("solve failed (%s): %s", result.Reason, result.Err)
	}

	puzzle, initial, err := core.ParsePuzzle(puzzleText)
	if err != nil {
		return nil, err
	}
	states, err := core.Replay(initial, result.Solution, puzzle)
	if err != nil {
		return nil, err
	}

	return &App{
		puzzle:   puzzle,
		playback: NewPlaybackState(states),
		result:   result,
		theme:    material.NewTheme(),
	}, nil
}

// Run starts the application event loop.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops

	tag := new(int)

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			for {
				ev, ok := gtx.Event(key.Filter{Focus: tag})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					a.handleKeyEvent(ke)
				}
			}
			event.Op(gtx.Ops, tag)

			a.layout(gtx)
			e.Frame(gtx.Ops)

			if a.playback.Playing {
				a.playback.Advance()
				w.Invalidate()
			}
		}
	}
}

func (a *App) handleKeyEvent(e key.Event) {
	switch e.Name {
	case key.NameSpace:
		a.playback.TogglePlay()
	case key.NameLeftArrow:
		a.playback.StepBack()
	case key.NameRightArrow:
		a.playback.StepForward()
	case key.NameUpArrow:
		a.playback.SetSpeed(a.playback.Speed * 1.5)
	case key.NameDownArrow:
		a.playback.SetSpeed(a.playback.Speed / 1.5)
	case key.NameHome, "R":
		a.playback.Reset()
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.Fill(gtx.Ops, color.NRGBA{R: 30, G: 30, B: 35, A: 255})

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(a.layoutHeader),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			DrawBoard(gtx, a.puzzle, a.playback.Current())
			return layout.Dimensions{Size: gtx.Constraints.Max}
		}),
		layout.Rigid(a.layoutProgress),
	)
}

func (a *App) layoutHeader(gtx layout.Context) layout.Dimensions {
	caption := fmt.Sprintf("Push %d/%d  |  solution %s  |  %d states explored  |  space play/pause, arrows step",
		a.playback.Index, len(a.playback.States)-1, a.result.Solution, a.result.StatesExplored)

	label := material.Label(a.theme, 14, caption)
	label.Color = color.NRGBA{R: 210, G: 210, B: 215, A: 255}

	return layout.Inset{
		Top: unit.Dp(8), Bottom: unit.Dp(8), Left: unit.Dp(12), Right: unit.Dp(12),
	}.Layout(gtx, label.Layout)
}

func (a *App) layoutProgress(gtx layout.Context) layout.Dimensions {
	height := 24
	width := gtx.Constraints.Max.X

	paint.FillShape(gtx.Ops, color.NRGBA{R: 35, G: 38, B: 42, A: 255},
		clip.Rect(image.Rect(0, 0, width, height)).Op())

	margin := 12
	trackWidth := width - 2*margin
	trackRect := image.Rect(margin, height/2-3, margin+trackWidth, height/2+3)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 60, G: 65, B: 70, A: 255}, clip.Rect(trackRect).Op())

	fillWidth := int(float64(trackWidth) * a.playback.Progress())
	if fillWidth > 0 {
		fillRect := image.Rect(margin, height/2-3, margin+fillWidth, height/2+3)
		paint.FillShape(gtx.Ops, color.NRGBA{R: 100, G: 180, B: 255, A: 255}, clip.Rect(fillRect).Op())
	}

	return layout.Dimensions{Size: image.Point{X: width, Y: height}}
}
