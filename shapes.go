package pareto

import (
	"strings"
)

var DefaultSize float64 = 4

type PointFunc func(x, y float64) Element

func GetCircle(x, y float64) Element {
	return Circle{
		X:      x,
		Y:      y,
		Radius: DefaultSize / 2,
		Fill:   currentColour,
	}
}

func GetSquare(x, y float64) Element {
	half := DefaultSize / 2
	return Rect{
		X:    x - half,
		Y:    y - half,
		W:    DefaultSize,
		H:    DefaultSize,
		Fill: currentColour,
	}
}

func GetDiamond(x, y float64) Element {
	half := DefaultSize / 2
	pat := Path{
		Fill: currentColour,
	}
	pat.MoveTo(x, y-half)
	pat.LineTo(x+half, y)
	pat.LineTo(x, y+half)
	pat.LineTo(x-half, y)
	pat.ClosePath()
	return &pat
}

// PointByName gives the marker drawn by name. An empty name or "none" means
// no marker.
func PointByName(name string) (PointFunc, bool) {
	switch strings.ToLower(name) {
	case "", "none":
		return nil, true
	case "circle":
		return GetCircle, true
	case "square":
		return GetSquare, true
	case "diamond":
		return GetDiamond, true
	default:
		return nil, false
	}
}
