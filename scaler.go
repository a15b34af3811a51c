package pareto

import (
	"math"
)

type ScalerConstraint interface {
	~float64 | ~string
}

type Domain[T ScalerConstraint] interface {
	Diff(T) float64
	Extend() float64
	Values(int) []T
}

type numberDomain struct {
	fst float64
	lst float64
}

func NumberDomain(f, t float64) Domain[float64] {
	return numberDomain{
		fst: f,
		lst: t,
	}
}

func (n numberDomain) Diff(v float64) float64 {
	return v - n.fst
}

func (n numberDomain) Extend() float64 {
	return n.lst - n.fst
}

func (n numberDomain) Values(c int) []float64 {
	return Ticks(n.fst, n.lst, c)
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return math.Max(r.F, r.T)
}

func (r Range) Min() float64 {
	return math.Min(r.F, r.T)
}

type Scaler[T ScalerConstraint] interface {
	Scale(T) float64
	Space() float64
	Values(int) []T
	Max() float64
	Min() float64
}

type numberScaler struct {
	Range
	Domain[float64]
}

// NumberScaler maps the domain linearly onto the range. An inverted range
// (F > T) gives the usual y axis with the domain minimum at the bottom.
func NumberScaler(dom Domain[float64], rg Range) Scaler[float64] {
	return numberScaler{
		Range:  rg,
		Domain: dom,
	}
}

// Scale maps every value of an empty domain (same start and end) to the
// middle of the range.
func (n numberScaler) Scale(v float64) float64 {
	if n.Extend() == 0 {
		return n.F + n.Len()/2
	}
	return n.F + n.Diff(v)*n.Space()
}

func (n numberScaler) Space() float64 {
	return n.Len() / n.Extend()
}

type bandScaler struct {
	Range
	Strings []string
	Padding float64
}

// BandScaler splits the range in one band per value. Padding is the fraction
// of a step left empty between bands and, on both ends, around them.
func BandScaler(str []string, rg Range, padding float64) Scaler[string] {
	return bandScaler{
		Range:   rg,
		Strings: str,
		Padding: padding,
	}
}

func (s bandScaler) Scale(v string) float64 {
	for i := range s.Strings {
		if s.Strings[i] == v {
			return s.offset() + float64(i)*s.step()
		}
	}
	return math.NaN()
}

// Space gives the width of a single band.
func (s bandScaler) Space() float64 {
	return s.step() * (1 - s.Padding)
}

func (s bandScaler) Values(c int) []string {
	if c > 0 && c < len(s.Strings) {
		return s.Strings[:c]
	}
	return s.Strings
}

func (s bandScaler) step() float64 {
	n := float64(len(s.Strings)) - s.Padding + s.Padding*2
	return s.Len() / math.Max(1, n)
}

func (s bandScaler) offset() float64 {
	n := float64(len(s.Strings)) - s.Padding
	return s.F + (s.Len()-s.step()*n)/2
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// Ticks returns about count round values spanning [start, stop]. Steps are
// 1, 2 or 5 times a power of ten.
func Ticks(start, stop float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	i1, i2, inc := tickSpec(start, stop, float64(count))
	if !(i2 >= i1) {
		return nil
	}
	var (
		n   = int(i2-i1) + 1
		all = make([]float64, n)
	)
	for i := 0; i < n; i++ {
		j := i
		if reverse {
			j = n - 1 - i
		}
		if inc < 0 {
			all[j] = (i1 + float64(i)) / -inc
		} else {
			all[j] = (i1 + float64(i)) * inc
		}
	}
	return all
}

// TickStep returns the distance between two ticks computed by Ticks.
func TickStep(start, stop float64, count int) float64 {
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	_, _, inc := tickSpec(start, stop, float64(count))
	step := inc
	if inc < 0 {
		step = 1 / -inc
	}
	if reverse {
		return -step
	}
	return step
}

func tickSpec(start, stop, count float64) (float64, float64, float64) {
	var (
		step   = (stop - start) / math.Max(0, count)
		power  = math.Floor(math.Log10(step))
		err    = step / math.Pow(10, power)
		factor = 1.0
	)
	switch {
	case err >= e10:
		factor = 10
	case err >= e5:
		factor = 5
	case err >= e2:
		factor = 2
	}
	var i1, i2, inc float64
	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = math.Round(start * inc)
		i2 = math.Round(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = math.Round(start / inc)
		i2 = math.Round(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}
	if i2 < i1 && 0.5 <= count && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return i1, i2, inc
}
