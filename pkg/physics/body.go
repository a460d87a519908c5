package physics

import (
	"image/color"
	"math"
)

// --- Wektor 2D ---
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{0, 0}
	}
	return Vec2{v.X / l, v.Y / l}
}

// --- Ciało fizyczne ---
type Body struct {
	Mass   float64
	Pos    Vec2
	Vel    Vec2
	Acc    Vec2
	Radius float64
	ColorC color.RGBA
	Locked bool // ciało zablokowane - nie porusza się
	Anti   bool // ciało anty-grawitacyjne - odpycha zamiast przyciągać
}

// Update przesuwa ciało o jeden krok metodą semi-implicit Euler.
// Przyspieszenie acc jest policzone na zewnątrz (drzewo czwórkowe albo
// sumowanie wprost), n to numer klatki symulacji.
func (b *Body) Update(acc Vec2, dt float64, n int) {
	if b.Anti {
		acc = acc.Mul(-1)
	}
	b.Acc = acc

	if b.Locked {
		// nie aktualizujemy prędkości i pozycji zablokowanego ciała
		b.Vel = Vec2{0, 0}
		return
	}

	// Semi-implicit Euler: najpierw aktualizujemy prędkość
	b.Vel = b.Vel.Add(acc.Mul(dt))

	// Następnie aktualizujemy pozycję według nowej prędkości
	b.Pos = b.Pos.Add(b.Vel.Mul(dt))
}

func (b Body) Color() color.Color {
	return b.ColorC
}
