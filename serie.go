package pareto

type Serie struct {
	Title string

	X      Scaler[string]
	Y      Scaler[float64]
	Points []Point

	Renderer Renderer
}

func (s Serie) Render() Element {
	return s.Renderer.Render(s)
}

type Point struct {
	X string
	Y float64
}

func CategoryPoint(x string, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func valuePoints(items []Item) []Point {
	points := make([]Point, 0, len(items))
	for _, i := range items {
		points = append(points, CategoryPoint(i.Name, i.Value))
	}
	return points
}

// sharePoints starts with an unnamed point at zero so that the line begins at
// the origin of the first bar.
func sharePoints(items []Item) []Point {
	points := make([]Point, 0, len(items)+1)
	points = append(points, CategoryPoint("", 0))
	for _, i := range items {
		points = append(points, CategoryPoint(i.Name, i.Share))
	}
	return points
}
