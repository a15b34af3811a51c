package pareto

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const FontSize = 12.0

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

type Axis interface {
	Render(float64, float64, float64, float64) Element
}

type NumberAxis struct {
	Label string
	Class []string
	Orientation
	Ticks          int
	Scaler         Scaler[float64]
	Domain         []float64
	Format         func(float64) string
	WithInnerTicks bool
	WithLabelTicks bool
	WithOuterTicks bool
}

func (a NumberAxis) Render(length, size, left, top float64) Element {
	g := NewGroup(a.Class...)
	g.Transform = Translate(left, top)
	d := domainLine(a.Orientation, length)
	g.Append(d)

	var (
		data   = a.Domain
		format = a.Format
	)
	if len(data) == 0 {
		data = a.Scaler.Values(a.Ticks)
	}
	if format == nil {
		format = func(f float64) string {
			return strconv.FormatFloat(f, 'f', 2, 64)
		}
	}
	for _, f := range data {
		var (
			pos = a.Scaler.Scale(f)
			grp = NewGroup("tick")
		)
		grp.Transform = Translate(pos, 0)
		if a.Vertical() {
			grp.Transform = Translate(0, pos)
		}
		if a.WithInnerTicks {
			grp.Append(lineTick(a.Orientation, 0, FontSize*0.5, d.Stroke))
		}
		if a.WithLabelTicks {
			grp.Append(tickText(a.Orientation, format(f), 0))
		}
		if a.WithOuterTicks {
			tick := lineTick(a.Orientation, 0, -size, d.Stroke)
			tick.Opacity = 0.1
			grp.Append(tick)
		}
		g.Append(grp)
	}
	if a.Label != "" {
		g.Append(axisLabel(a.Orientation, a.Label, length))
	}
	return g
}

type CategoryAxis struct {
	Label  string
	Class  []string
	Scaler Scaler[string]
	Orientation
	Domain         []string
	WithInnerTicks bool
	WithOuterTicks bool
}

func (a CategoryAxis) Render(length, size, left, top float64) Element {
	g := NewGroup(a.Class...)
	g.Transform = Translate(left, top)
	d := domainLine(a.Orientation, length)
	g.Append(d)

	var (
		align = a.Scaler.Space() / 2
		data  = a.Domain
	)
	if len(data) == 0 {
		data = a.Scaler.Values(0)
	}
	for _, s := range data {
		var (
			pos = a.Scaler.Scale(s)
			grp = NewGroup("tick")
		)
		grp.Transform = Translate(pos, 0)
		if a.Vertical() {
			grp.Transform = Translate(0, pos)
		}
		if a.WithInnerTicks {
			grp.Append(lineTick(a.Orientation, align, FontSize*0.5, d.Stroke))
		}
		if a.WithOuterTicks {
			tick := lineTick(a.Orientation, align, -size, d.Stroke)
			tick.Dash = 5
			grp.Append(tick)
		}
		grp.Append(tickText(a.Orientation, s, align))
		g.Append(grp)
	}
	if a.Label != "" {
		g.Append(axisLabel(a.Orientation, a.Label, length))
	}
	return g
}

var printer = message.NewPrinter(language.English)

// NumberFormat formats tick values with thousands separators and as many
// decimals as the tick step needs.
func NumberFormat(step float64) func(float64) string {
	layout := fmt.Sprintf("%%.%df", precisionFixed(step))
	return func(f float64) string {
		return printer.Sprintf(layout, f)
	}
}

// PercentFormat formats fractions as percentages with as many decimals as the
// tick step needs once multiplied by 100.
func PercentFormat(step float64) func(float64) string {
	prec := precisionFixed(step) - 2
	if prec < 0 {
		prec = 0
	}
	return func(f float64) string {
		return strconv.FormatFloat(f*100, 'f', prec, 64) + "%"
	}
}

func precisionFixed(step float64) int {
	step = math.Abs(step)
	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return 0
	}
	prec := -int(math.Floor(math.Log10(step)))
	if prec < 0 {
		return 0
	}
	return prec
}

func domainLine(orient Orientation, length float64) Line {
	x, y := length, 0.0
	if orient.Vertical() {
		x, y = y, x
	}
	return Line{
		X2:     x,
		Y2:     y,
		Stroke: "black",
		Width:  1,
	}
}

func lineTick(orient Orientation, offset, size float64, stroke string) Line {
	var (
		x1, y1 = offset, 0.0
		x2, y2 = offset, size
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		x2, y2 = -y2, x2
		x1, y1 = 0, offset
	case orient.Vertical() && orient.Reverse():
		x2, y2 = y2, x2
		x1, y1 = 0, offset
	case !orient.Vertical() && orient.Reverse():
		y2 = -y2
	default:
	}
	return Line{
		X1:     x1,
		Y1:     y1,
		X2:     x2,
		Y2:     y2,
		Stroke: stroke,
		Width:  1,
	}
}

func tickText(orient Orientation, str string, offset float64) Text {
	var (
		base   = "hanging"
		anchor = "middle"
		x, y   = offset, FontSize * 0.8
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		base = "middle"
		anchor = "end"
		x, y = -y, x
	case orient.Vertical() && orient.Reverse():
		base = "middle"
		anchor = "start"
		x, y = y, x
	case !orient.Vertical() && orient.Reverse():
		base = "auto"
		y = -y
	default:
	}
	return Text{
		X:        x,
		Y:        y,
		Content:  str,
		Size:     FontSize,
		Anchor:   anchor,
		Baseline: base,
	}
}

func axisLabel(orient Orientation, str string, length float64) Text {
	txt := Text{
		Content: str,
		Size:    FontSize,
		Anchor:  "middle",
	}
	switch {
	case orient.Vertical() && !orient.Reverse():
		txt.Anchor = "end"
		txt.Y = -FontSize
	case orient.Vertical() && orient.Reverse():
		txt.Anchor = "start"
		txt.Y = -FontSize
	case !orient.Vertical() && orient.Reverse():
		txt.X = length / 2
		txt.Y = -FontSize * 2.5
	default:
		txt.X = length / 2
		txt.Y = FontSize * 2.8
	}
	return txt
}
