package pareto

import (
	"github.com/midbel/slices"
)

type TextPosition int

const (
	TextBefore TextPosition = 1 << iota
	TextAfter
)

// TextPositionByName maps start (or before) and end (or after) to the place
// of a line label. An empty name and none give no label.
func TextPositionByName(name string) (TextPosition, bool) {
	switch name {
	case "", "none":
		return 0, true
	case "start", "before":
		return TextBefore, true
	case "end", "after":
		return TextAfter, true
	default:
		return 0, false
	}
}

const currentColour = "currentColor"

type Renderer interface {
	Render(Serie) Element
}

type BarRenderer struct {
	Fill      []string
	Width     float64
	WithTitle bool
}

func (r BarRenderer) Render(serie Serie) Element {
	if r.Width <= 0 {
		r.Width = 1
	}
	if len(r.Fill) == 0 {
		r.Fill = []string{currentColour}
	}
	grp := getBaseGroup("", "bars")
	for i, pt := range serie.Points {
		var (
			w = serie.X.Space() * r.Width
			o = (serie.X.Space() - w) / 2
			x = serie.X.Scale(pt.X) + o
			y = serie.Y.Scale(pt.Y)
		)
		el := Rect{
			X:     x,
			Y:     y,
			W:     w,
			H:     serie.Y.Max() - y,
			Class: []string{"bar"},
			Fill:  r.Fill[i%len(r.Fill)],
		}
		if r.WithTitle {
			el.Title = pt.X
		}
		grp.Append(el)
	}
	return grp
}

// LineRenderer joins the points of a serie with straight segments. Named
// points are shifted by Offset from the start of their band; unnamed points
// are placed at x = 0.
type LineRenderer struct {
	Color  string
	Width  float64
	Offset float64
	Point  PointFunc
	Text   TextPosition
}

func (r LineRenderer) Render(serie Serie) Element {
	var (
		grp = getBaseGroup(r.Color, "cumulative")
		pat = getBasePath(r.Width)
	)
	grp.Id = serie.Title
	for i, pt := range serie.Points {
		x, y := r.position(serie, pt)
		if pat.Len() == 0 {
			pat.MoveTo(x, y)
		} else {
			pat.LineTo(x, y)
		}
		if r.Point != nil && i > 0 {
			if el := r.Point(x, y); el != nil {
				grp.Append(el)
			}
		}
	}
	grp.Append(pat)

	if len(serie.Points) == 0 {
		return grp
	}
	switch r.Text {
	case TextBefore:
		pt := slices.Fst(serie.Points)
		x, y := r.position(serie, pt)
		grp.Append(getLineText(serie.Title, x, y, true))
	case TextAfter:
		pt := slices.Lst(serie.Points)
		x, y := r.position(serie, pt)
		grp.Append(getLineText(serie.Title, x, y, false))
	default:
	}
	return grp
}

func (r LineRenderer) position(serie Serie, pt Point) (float64, float64) {
	var x float64
	if pt.X != "" {
		x = serie.X.Scale(pt.X) + r.Offset
	}
	return x, serie.Y.Scale(pt.Y)
}

func getLineText(str string, x, y float64, before bool) Text {
	txt := Text{
		Content:  str,
		X:        x,
		Y:        y,
		Size:     FontSize,
		Anchor:   "end",
		Baseline: "middle",
	}
	if !before {
		txt.Anchor = "start"
		txt.X += FontSize * 0.4
	} else {
		txt.X -= FontSize * 0.4
	}
	return txt
}

func getBasePath(width float64) *Path {
	if width <= 0 {
		width = 1
	}
	return &Path{
		Class:       []string{"line"},
		Stroke:      currentColour,
		StrokeWidth: width,
		Fill:        "none",
	}
}

func getBaseGroup(color string, class ...string) *Group {
	g := NewGroup(class...)
	if color != "" {
		g.Fill = color
		g.Stroke = color
	}
	return g
}
