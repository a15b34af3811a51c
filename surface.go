package pareto

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo/float"
)

// Element is a node of the surface's visual tree.
type Element interface {
	Render(*svg.SVG)
}

// Surface is the drawing target of a chart. Width and Height are the declared
// dimensions of the output document; the children are replaced by every
// non-empty render.
type Surface struct {
	Width  float64
	Height float64
	Title  string

	children []Element
}

func NewSurface(width, height float64) *Surface {
	return &Surface{
		Width:  width,
		Height: height,
	}
}

func (s *Surface) Append(el Element) {
	if el == nil {
		return
	}
	s.children = append(s.children, el)
}

func (s *Surface) Clear() {
	s.children = nil
}

func (s *Surface) Children() []Element {
	return s.children
}

func (s *Surface) Len() int {
	return len(s.children)
}

// WriteTo serializes the surface as a standalone SVG document.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	var (
		cw     = countWriter{Writer: w}
		bw     = bufio.NewWriter(&cw)
		canvas = svg.New(bw)
	)
	canvas.Start(s.Width, s.Height)
	if s.Title != "" {
		canvas.Title(s.Title)
	}
	for _, el := range s.children {
		el.Render(canvas)
	}
	canvas.End()
	if err := bw.Flush(); err != nil {
		return cw.n, err
	}
	return cw.n, cw.err
}

type countWriter struct {
	io.Writer
	n   int64
	err error
}

func (w *countWriter) Write(b []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.Writer.Write(b)
	w.n += int64(n)
	if err != nil {
		w.err = err
	}
	return n, err
}

type Transform struct {
	TX float64
	TY float64
}

func Translate(x, y float64) Transform {
	return Transform{
		TX: x,
		TY: y,
	}
}

func (t Transform) isZero() bool {
	return t.TX == 0 && t.TY == 0
}

func (t Transform) String() string {
	return fmt.Sprintf("translate(%s,%s)", formatFloat(t.TX), formatFloat(t.TY))
}

type Group struct {
	Id         string
	Class      []string
	Transform  Transform
	Fill       string
	Stroke     string
	FontFamily string
	FontSize   float64

	Children []Element
}

func NewGroup(class ...string) *Group {
	return &Group{
		Class: class,
	}
}

func (g *Group) Append(el Element) {
	if el == nil {
		return
	}
	g.Children = append(g.Children, el)
}

func (g *Group) Render(canvas *svg.SVG) {
	var attrs []string
	if g.Id != "" {
		attrs = append(attrs, attr("id", g.Id))
	}
	if len(g.Class) > 0 {
		attrs = append(attrs, attr("class", strings.Join(g.Class, " ")))
	}
	if !g.Transform.isZero() {
		attrs = append(attrs, attr("transform", g.Transform.String()))
	}
	if g.Fill != "" {
		attrs = append(attrs, attr("fill", g.Fill))
	}
	if g.Stroke != "" {
		attrs = append(attrs, attr("stroke", g.Stroke))
	}
	if g.FontFamily != "" {
		attrs = append(attrs, attr("font-family", g.FontFamily))
	}
	if g.FontSize > 0 {
		attrs = append(attrs, attr("font-size", formatFloat(g.FontSize)))
	}
	canvas.Group(attrs...)
	for _, el := range g.Children {
		el.Render(canvas)
	}
	canvas.Gend()
}

type Rect struct {
	X     float64
	Y     float64
	W     float64
	H     float64
	Class []string
	Fill  string
	Title string
}

func (r Rect) Render(canvas *svg.SVG) {
	var attrs []string
	if len(r.Class) > 0 {
		attrs = append(attrs, attr("class", strings.Join(r.Class, " ")))
	}
	if r.Fill != "" {
		attrs = append(attrs, attr("fill", r.Fill))
	}
	if r.Title == "" {
		canvas.Rect(r.X, r.Y, r.W, r.H, attrs...)
		return
	}
	canvas.Group()
	canvas.Title(r.Title)
	canvas.Rect(r.X, r.Y, r.W, r.H, attrs...)
	canvas.Gend()
}

type Line struct {
	X1 float64
	Y1 float64
	X2 float64
	Y2 float64

	Stroke  string
	Width   float64
	Opacity float64
	Dash    float64
}

func (i Line) Render(canvas *svg.SVG) {
	var attrs []string
	if i.Stroke != "" {
		attrs = append(attrs, attr("stroke", i.Stroke))
	}
	if i.Width > 0 {
		attrs = append(attrs, attr("stroke-width", formatFloat(i.Width)))
	}
	if i.Opacity > 0 {
		attrs = append(attrs, attr("stroke-opacity", formatFloat(i.Opacity)))
	}
	if i.Dash > 0 {
		attrs = append(attrs, attr("stroke-dasharray", formatFloat(i.Dash)))
	}
	canvas.Line(i.X1, i.Y1, i.X2, i.Y2, attrs...)
}

type Text struct {
	X       float64
	Y       float64
	Content string

	Anchor   string
	Baseline string
	Fill     string
	Size     float64
}

func (t Text) Render(canvas *svg.SVG) {
	var attrs []string
	if t.Anchor != "" {
		attrs = append(attrs, attr("text-anchor", t.Anchor))
	}
	if t.Baseline != "" {
		attrs = append(attrs, attr("dominant-baseline", t.Baseline))
	}
	if t.Fill != "" {
		attrs = append(attrs, attr("fill", t.Fill))
	}
	if t.Size > 0 {
		attrs = append(attrs, attr("font-size", formatFloat(t.Size)))
	}
	canvas.Text(t.X, t.Y, t.Content, attrs...)
}

type Circle struct {
	X      float64
	Y      float64
	Radius float64
	Fill   string
}

func (c Circle) Render(canvas *svg.SVG) {
	var attrs []string
	if c.Fill != "" {
		attrs = append(attrs, attr("fill", c.Fill))
	}
	canvas.Circle(c.X, c.Y, c.Radius, attrs...)
}

// Path is a line path builder. Coordinates are written with full precision;
// NaN and infinite values are kept as is.
type Path struct {
	Class       []string
	Stroke      string
	StrokeWidth float64
	Fill        string

	commands []string
}

func (p *Path) MoveTo(x, y float64) {
	p.commands = append(p.commands, "M"+formatPoint(x, y))
}

func (p *Path) LineTo(x, y float64) {
	p.commands = append(p.commands, "L"+formatPoint(x, y))
}

func (p *Path) ClosePath() {
	p.commands = append(p.commands, "Z")
}

func (p *Path) Len() int {
	return len(p.commands)
}

func (p *Path) D() string {
	return strings.Join(p.commands, "")
}

func (p *Path) Render(canvas *svg.SVG) {
	var attrs []string
	if len(p.Class) > 0 {
		attrs = append(attrs, attr("class", strings.Join(p.Class, " ")))
	}
	if p.Stroke != "" {
		attrs = append(attrs, attr("stroke", p.Stroke))
	}
	if p.StrokeWidth > 0 {
		attrs = append(attrs, attr("stroke-width", formatFloat(p.StrokeWidth)))
	}
	if p.Fill != "" {
		attrs = append(attrs, attr("fill", p.Fill))
	}
	canvas.Path(p.D(), attrs...)
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func attr(name, value string) string {
	return fmt.Sprintf(`%s="%s"`, name, attrEscaper.Replace(value))
}

func formatPoint(x, y float64) string {
	return formatFloat(x) + "," + formatFloat(y)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
