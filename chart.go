package pareto

import (
	"strings"
)

const (
	DefaultTicks       = 10
	DefaultBandPadding = 0.1
)

var DefaultPadding = Padding{
	Top:    20,
	Right:  40,
	Bottom: 40,
	Left:   40,
}

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Chart holds the settings of a pareto chart: value bars sorted in descending
// order with the cumulative share drawn over them.
type Chart struct {
	Padding
	Style

	Ticks       int
	BandPadding float64
	Grid        bool
	Point       PointFunc
	LineLabel   TextPosition

	ValueLabel string
	ShareLabel string
}

func DefaultChart() Chart {
	return Chart{
		Padding:     DefaultPadding,
		Style:       DefaultStyle(),
		Ticks:       DefaultTicks,
		BandPadding: DefaultBandPadding,
	}
}

// Render draws items on s with the default chart settings.
func Render(s *Surface, items []Item) {
	DefaultChart().Render(s, items)
}

// Area gives the width and height left on s once the padding is removed.
func (c Chart) Area(s *Surface) (float64, float64) {
	return s.Width - c.Padding.Horizontal(), s.Height - c.Padding.Vertical()
}

// Render replaces the content of s with the pareto chart of items. Nothing
// happens when items is empty, s is left as it was.
func (c Chart) Render(s *Surface, items []Item) {
	if len(items) < 1 {
		return
	}
	items = Normalize(items)
	s.Clear()

	var (
		width, height = c.Area(s)
		names         = make([]string, len(items))
		area          = c.getArea()
	)
	for i := range items {
		names[i] = items[i].Name
	}
	var (
		xscale = BandScaler(names, NewRange(0, width), c.BandPadding)
		yscale = NumberScaler(NumberDomain(0, maxValue(items)), NewRange(height, 0))
		pscale = NumberScaler(NumberDomain(0, 1), NewRange(height, 0))
	)

	area.Append(c.bottomAxis(xscale).Render(width, height, 0, height))
	area.Append(c.leftAxis(yscale, maxValue(items)).Render(height, width, 0, 0))
	area.Append(c.rightAxis(pscale).Render(height, width, width, 0))

	bars := Serie{
		Title:  "values",
		X:      xscale,
		Y:      yscale,
		Points: valuePoints(items),
		Renderer: BarRenderer{
			Fill:      c.Fill.List,
			WithTitle: true,
		},
	}
	area.Append(bars.Render())

	var (
		count    = float64(len(items))
		barWidth = (1 - c.BandPadding) * width / (count + c.BandPadding)
	)
	line := Serie{
		Title:  "cumulative",
		X:      xscale,
		Y:      pscale,
		Points: sharePoints(items),
		Renderer: LineRenderer{
			Color:  c.Line.Color,
			Width:  c.Line.Width,
			Offset: barWidth,
			Point:  c.Point,
			Text:   c.LineLabel,
		},
	}
	area.Append(line.Render())

	s.Append(area)
}

func (c Chart) getArea() *Group {
	g := NewGroup("area")
	g.Transform = Translate(c.Padding.Left, c.Padding.Top)
	g.FontFamily = strings.Join(c.Text.Families, ",")
	g.FontSize = c.Text.Size
	return g
}

func (c Chart) bottomAxis(scaler Scaler[string]) Axis {
	return CategoryAxis{
		Class:          []string{"axis", "axis--x"},
		Orientation:    OrientBottom,
		Scaler:         scaler,
		WithInnerTicks: true,
	}
}

func (c Chart) leftAxis(scaler Scaler[float64], top float64) Axis {
	return NumberAxis{
		Label:          c.ValueLabel,
		Class:          []string{"axis", "axis--y"},
		Orientation:    OrientLeft,
		Ticks:          c.Ticks,
		Scaler:         scaler,
		Format:         NumberFormat(TickStep(0, top, c.Ticks)),
		WithInnerTicks: true,
		WithLabelTicks: true,
		WithOuterTicks: c.Grid,
	}
}

func (c Chart) rightAxis(scaler Scaler[float64]) Axis {
	return NumberAxis{
		Label:          c.ShareLabel,
		Class:          []string{"axis", "axis--y"},
		Orientation:    OrientRight,
		Ticks:          c.Ticks,
		Scaler:         scaler,
		Format:         PercentFormat(TickStep(0, 1, c.Ticks)),
		WithInnerTicks: true,
		WithLabelTicks: true,
	}
}
