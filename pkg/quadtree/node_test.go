package quadtree

import (
	"math"
	"math/rand"
	"testing"

	"github.com/hhenu/nbody-sim/pkg/physics"
)

func TestFindQuadrantTotality(t *testing.T) {
	// każdy skończony niezerowy wektor musi trafić do dokładnie jednej ćwiartki
	rng := rand.New(rand.NewSource(42))
	center := physics.Vec2{X: 0, Y: 0}
	for i := 0; i < 10000; i++ {
		angle := (rng.Float64()*2 - 1) * math.Pi
		r := math.Pow(10, rng.Float64()*12-6)
		p := physics.Vec2{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
		if p == center {
			continue
		}
		q := findQuadrant(p, center)
		if q != NW && q != NE && q != SW && q != SE {
			t.Fatalf("findQuadrant(%v) = %v, nie jest ćwiartką", p, q)
		}
	}
}

func TestFindQuadrantRanges(t *testing.T) {
	center := physics.Vec2{X: 0, Y: 0}
	cases := []struct {
		pos  physics.Vec2
		want Quad
	}{
		{physics.Vec2{X: 1, Y: 1}, NE},
		{physics.Vec2{X: -1, Y: 1}, NW},
		{physics.Vec2{X: -1, Y: -1}, SE}, // kąt -3π/4 leży w (−π, −π/2]
		{physics.Vec2{X: 1, Y: -1}, SW},  // kąt -π/4 leży w (−π/2, 0]
		// granice przedziałów - domknięte z prawej strony
		{physics.Vec2{X: 0, Y: 1}, NE},  // kąt π/2
		{physics.Vec2{X: -1, Y: 0}, NW}, // kąt π
		{physics.Vec2{X: 1, Y: 0}, SW},  // kąt 0
		{physics.Vec2{X: 0, Y: -1}, SE}, // kąt −π/2
	}
	for _, c := range cases {
		if got := findQuadrant(c.pos, center); got != c.want {
			t.Errorf("findQuadrant(%v) = %v, oczekiwano %v", c.pos, got, c.want)
		}
	}
}

func TestFindQuadrantZeroOffset(t *testing.T) {
	// ciało dokładnie w środku węzła: Atan2(0, 0) == 0, czyli SW
	p := physics.Vec2{X: 3, Y: -7}
	if got := findQuadrant(p, p); got != SW {
		t.Errorf("findQuadrant dla zerowego wektora = %v, oczekiwano SW", got)
	}
}

func TestEmptyNode(t *testing.T) {
	n := NewNode(physics.Vec2{}, 10, 10, nil)
	if n.TotalMass != 0 {
		t.Errorf("TotalMass = %v, oczekiwano 0", n.TotalMass)
	}
	if n.Cm != (physics.Vec2{}) {
		t.Errorf("Cm = %v, oczekiwano wektora zerowego", n.Cm)
	}
	if len(n.Children) != 0 {
		t.Errorf("pusty węzeł ma %d dzieci", len(n.Children))
	}
}

func TestLeafNode(t *testing.T) {
	b := physics.Body{Mass: 7.5, Pos: physics.Vec2{X: 3.25, Y: -1.5}}
	n := NewNode(physics.Vec2{}, 10, 10, []physics.Body{b})
	if len(n.Children) != 0 {
		t.Fatalf("liść ma %d dzieci", len(n.Children))
	}
	if n.TotalMass != b.Mass {
		t.Errorf("TotalMass = %v, oczekiwano %v", n.TotalMass, b.Mass)
	}
	// środek masy liścia to dokładnie pozycja ciała, bez ważenia
	if n.Cm != b.Pos {
		t.Errorf("Cm = %v, oczekiwano dokładnie %v", n.Cm, b.Pos)
	}
}

func randomBodies(rng *rand.Rand, n int) []physics.Body {
	bodies := make([]physics.Body, n)
	for i := range bodies {
		bodies[i] = physics.Body{
			Mass: rng.Float64()*100 + 1,
			Pos:  physics.Vec2{X: rng.Float64()*800 - 400, Y: rng.Float64()*800 - 400},
		}
	}
	return bodies
}

// checkMass sprawdza rekurencyjnie, że masa węzła wewnętrznego jest sumą
// mas jego dzieci
func checkMass(t *testing.T, n *Node) {
	t.Helper()
	if len(n.Children) == 0 {
		return
	}
	sum := 0.0
	for _, c := range n.Children {
		sum += c.TotalMass
		checkMass(t, c)
	}
	if math.Abs(sum-n.TotalMass) > 1e-9*n.TotalMass {
		t.Errorf("masa węzła %v, suma dzieci %v", n.TotalMass, sum)
	}
}

func TestMassConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bodies := randomBodies(rng, 200)
	total := 0.0
	for i := range bodies {
		total += bodies[i].Mass
	}
	root := NewNode(physics.Vec2{}, 500, 500, bodies)
	if math.Abs(root.TotalMass-total) > 1e-9*total {
		t.Errorf("masa korzenia %v, suma mas ciał %v", root.TotalMass, total)
	}
	checkMass(t, root)
}

func TestCenterOfMass(t *testing.T) {
	bodies := []physics.Body{
		{Mass: 1, Pos: physics.Vec2{X: 100, Y: 0}},
		{Mass: 3, Pos: physics.Vec2{X: -100, Y: 40}},
		{Mass: 6, Pos: physics.Vec2{X: 20, Y: -60}},
	}
	var want physics.Vec2
	total := 0.0
	for _, b := range bodies {
		want = want.Add(b.Pos.Mul(b.Mass))
		total += b.Mass
	}
	want = want.Mul(1 / total)

	root := NewNode(physics.Vec2{}, 200, 200, bodies)
	if math.Abs(root.Cm.X-want.X) > 1e-9 || math.Abs(root.Cm.Y-want.Y) > 1e-9 {
		t.Errorf("Cm = %v, oczekiwano %v", root.Cm, want)
	}
}

func TestChildGeometry(t *testing.T) {
	// dzieci mają połówkowe wymiary i środki przesunięte po przekątnych
	bodies := []physics.Body{
		{Mass: 1, Pos: physics.Vec2{X: 50, Y: 50}},
		{Mass: 1, Pos: physics.Vec2{X: -50, Y: 50}},
		{Mass: 1, Pos: physics.Vec2{X: -50, Y: -50}},
		{Mass: 1, Pos: physics.Vec2{X: 50, Y: -50}},
	}
	root := NewNode(physics.Vec2{}, 100, 100, bodies)
	if len(root.Children) != 4 {
		t.Fatalf("oczekiwano 4 dzieci, jest %d", len(root.Children))
	}
	seen := map[physics.Vec2]bool{}
	for _, c := range root.Children {
		if c.W != 50 || c.H != 50 {
			t.Errorf("dziecko %v x %v, oczekiwano 50 x 50", c.W, c.H)
		}
		seen[c.Pos] = true
	}
	for _, want := range []physics.Vec2{
		{X: -50, Y: 50}, {X: 50, Y: 50}, {X: -50, Y: -50}, {X: 50, Y: -50},
	} {
		if !seen[want] {
			t.Errorf("brak dziecka o środku %v", want)
		}
	}
}

func TestSkipsEmptyQuadrants(t *testing.T) {
	// dwa ciała w tej samej połówce - rodzic nie tworzy pustych dzieci
	bodies := []physics.Body{
		{Mass: 1, Pos: physics.Vec2{X: 30, Y: 40}},
		{Mass: 1, Pos: physics.Vec2{X: 70, Y: 60}},
	}
	root := NewNode(physics.Vec2{}, 100, 100, bodies)
	if len(root.Children) != 1 {
		t.Fatalf("oczekiwano 1 dziecka (NE), jest %d", len(root.Children))
	}
}

func TestCoincidentBodiesTerminate(t *testing.T) {
	// identyczne pozycje nigdy się nie rozdzielą - budowa musi się
	// zakończyć, a węzeł końcowy zachować łączną masę
	p := physics.Vec2{X: 12.5, Y: -3}
	bodies := []physics.Body{
		{Mass: 2, Pos: p},
		{Mass: 3, Pos: p},
	}
	root := NewNode(physics.Vec2{}, 100, 100, bodies)
	if root.TotalMass != 5 {
		t.Errorf("TotalMass = %v, oczekiwano 5", root.TotalMass)
	}
	if math.Abs(root.Cm.X-p.X) > 1e-9 || math.Abs(root.Cm.Y-p.Y) > 1e-9 {
		t.Errorf("Cm = %v, oczekiwano %v", root.Cm, p)
	}
}
