package pareto

const (
	DefaultFill      = "steelblue"
	DefaultLineColor = "black"
	DefaultFont      = "sans-serif"
)

type Style struct {
	Line struct {
		Color string
		Width float64
	}
	Fill struct {
		List []string
	}
	Text struct {
		Size     float64
		Families []string
	}
}

func DefaultStyle() Style {
	var s Style
	s.Line.Color = DefaultLineColor
	s.Line.Width = 1.5
	s.Fill.List = []string{DefaultFill}
	s.Text.Size = FontSize
	s.Text.Families = []string{DefaultFont}
	return s
}
