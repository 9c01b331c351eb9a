package ui

import (
	"bytes"
	"image/color"

	"github.com/automoto/wallhop/player"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TuningPanel edits the player's movement properties while the game runs.
// Every change is pushed through OnChange; OnSave persists the current values.
type TuningPanel struct {
	UI *ebitenui.UI

	OnChange func(props player.Properties)
	OnSave   func(props player.Properties)

	props player.Properties

	valueLabels  []*widget.Label
	toggleLabels []*widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewTuningPanel(props player.Properties, onChange, onSave func(props player.Properties)) (*TuningPanel, error) {
	ui := &TuningPanel{
		OnChange: onChange,
		OnSave:   onSave,
		props:    props,
	}
	if err := ui.loadFonts(); err != nil {
		return nil, err
	}
	ui.buildUI()
	return ui, nil
}

func (ui *TuningPanel) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 14}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 11}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 9}
	return nil
}

func (ui *TuningPanel) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 220})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(6)),
			widget.RowLayoutOpts.Spacing(3),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("TUNING", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))
	contentContainer.AddChild(ui.buildRows())
	contentContainer.AddChild(ui.buildToggles())
	contentContainer.AddChild(ui.buildButtons())

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (ui *TuningPanel) buildRows() *widget.Container {
	grid := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(4),
			widget.GridLayoutOpts.Spacing(4, 1),
		)),
	)

	ui.valueLabels = make([]*widget.Label, len(tunables))
	for i, t := range tunables {
		grid.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(t.name, &ui.smallFace, &widget.LabelColor{
				Idle: color.RGBA{200, 200, 200, 255},
			}),
		))
		grid.AddChild(ui.stepButton("-", func() { ui.adjust(i, -1) }))
		ui.valueLabels[i] = widget.NewLabel(
			widget.LabelOpts.Text(t.format(&ui.props), &ui.smallFace, &widget.LabelColor{
				Idle: color.RGBA{255, 255, 200, 255},
			}),
		)
		grid.AddChild(ui.valueLabels[i])
		grid.AddChild(ui.stepButton("+", func() { ui.adjust(i, 1) }))
	}
	return grid
}

func (ui *TuningPanel) buildToggles() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	ui.toggleLabels = make([]*widget.Label, len(toggles))
	for i, t := range toggles {
		container.AddChild(ui.stepButton(t.name, func() { ui.flip(i) }))
		ui.toggleLabels[i] = widget.NewLabel(
			widget.LabelOpts.Text(onOff(t.get(&ui.props)), &ui.smallFace, &widget.LabelColor{
				Idle: color.RGBA{255, 255, 200, 255},
			}),
		)
		container.AddChild(ui.toggleLabels[i])
	}
	return container
}

func (ui *TuningPanel) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	saveButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(60, 18)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		}),
		widget.ButtonOpts.Text("Save", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ui.save()
		}),
	)
	container.AddChild(saveButton)

	resetButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(60, 18)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text("Reset", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ui.reset()
		}),
	)
	container.AddChild(resetButton)

	return container
}

func (ui *TuningPanel) stepButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(16, 12)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{70, 70, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{30, 30, 50, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.smallFace, &widget.ButtonTextColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (ui *TuningPanel) adjust(i, dir int) {
	tunables[i].adjust(&ui.props, dir)
	ui.changed()
}

func (ui *TuningPanel) flip(i int) {
	toggles[i].flip(&ui.props)
	ui.changed()
}

func (ui *TuningPanel) reset() {
	ui.props = player.DefaultProperties()
	ui.changed()
}

func (ui *TuningPanel) save() {
	if ui.OnSave != nil {
		ui.OnSave(ui.props)
	}
}

func (ui *TuningPanel) changed() {
	ui.props = ui.props.Sanitize()
	ui.refresh()
	if ui.OnChange != nil {
		ui.OnChange(ui.props)
	}
}

func (ui *TuningPanel) refresh() {
	for i, l := range ui.valueLabels {
		l.Label = tunables[i].format(&ui.props)
	}
	for i, l := range ui.toggleLabels {
		l.Label = onOff(toggles[i].get(&ui.props))
	}
}

// Properties returns the values currently shown.
func (ui *TuningPanel) Properties() player.Properties {
	return ui.props
}

// SetProperties replaces the shown values without firing OnChange, for
// example after the config file was reloaded.
func (ui *TuningPanel) SetProperties(props player.Properties) {
	ui.props = props
	ui.refresh()
}

func (ui *TuningPanel) Update() {
	ui.UI.Update()
}

func (ui *TuningPanel) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
