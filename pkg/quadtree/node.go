// Package quadtree implementuje drzewo czwórkowe Barnes-Hut dzielące
// przestrzeń układu n ciał na mniejsze obszary. Dzięki kryterium
// size/dist < limit odległe skupiska ciał traktujemy jak pojedyncze masy
// punktowe, co daje złożoność bliską O(N log N) zamiast O(N²).
package quadtree

import (
	"math"

	"github.com/hhenu/nbody-sim/pkg/physics"
)

// --- Ćwiartki ---
type Quad int

const (
	NW Quad = iota // północny zachód
	NE             // północny wschód
	SW             // południowy zachód
	SE             // południowy wschód
)

// findQuadrant zwraca ćwiartkę, do której należy ciało o pozycji bPos
// względem środka ćwiartki qPos. Podział jest kątowy: atan2 daje kąt w
// (−π, π], a cztery prawostronnie domknięte przedziały pokrywają go w
// całości - gałąź domyślna łapie (−π, −π/2] razem z wartością −π, którą
// Atan2 potrafi zwrócić dla ujemnego zera. Zerowy wektor (ciało dokładnie
// w środku) ma kąt 0 i trafia do SW.
func findQuadrant(bPos, qPos physics.Vec2) Quad {
	vec := bPos.Sub(qPos)
	direc := math.Atan2(vec.Y, vec.X)
	pi2 := math.Pi * 0.5
	switch {
	case direc > 0 && direc <= pi2:
		return NE
	case direc > pi2:
		return NW
	case direc > -pi2:
		return SW
	default:
		return SE
	}
}

// quadOffset zwraca przesunięcie środka ćwiartki q względem środka rodzica
// o połówkowych wymiarach halfW x halfH
func quadOffset(q Quad, halfW, halfH float64) physics.Vec2 {
	switch q {
	case NW:
		return physics.Vec2{X: -halfW, Y: halfH}
	case NE:
		return physics.Vec2{X: halfW, Y: halfH}
	case SW:
		return physics.Vec2{X: -halfW, Y: -halfH}
	default:
		return physics.Vec2{X: halfW, Y: -halfH}
	}
}

// --- Węzeł drzewa ---
type Node struct {
	Pos       physics.Vec2 // środek ćwiartki
	W, H      float64      // szerokość i wysokość ćwiartki
	Cm        physics.Vec2 // środek masy ciał pod węzłem
	TotalMass float64      // suma mas ciał pod węzłem
	Children  []*Node      // 0-4 dzieci, po jednym na niepustą ćwiartkę
}

// NewNode buduje rekurencyjnie węzeł o środku pos i wymiarach w x h dla
// podanych ciał. Węzeł pusty ma zerową masę i zerowy środek masy, węzeł z
// jednym ciałem to liść ze środkiem masy dokładnie w pozycji tego ciała,
// węzeł z co najmniej dwoma ciałami dostaje ważony środek masy i dziecko
// na każdą zajętą ćwiartkę.
func NewNode(pos physics.Vec2, w, h float64, bodies []physics.Body) *Node {
	n := &Node{Pos: pos, W: w, H: h}
	for i := range bodies {
		n.TotalMass += bodies[i].Mass
	}

	// Pusty węzeł: nic więcej do zrobienia
	if len(bodies) == 0 {
		return n
	}
	// Jedno ciało: środek masy to dokładnie jego pozycja, bez dzieci
	if len(bodies) == 1 {
		n.Cm = bodies[0].Pos
		return n
	}

	// Ważony środek masy - dzielenie przez TotalMass jest bezpieczne,
	// bo pusty przypadek już wrócił wyżej
	var prod physics.Vec2
	for i := range bodies {
		prod = prod.Add(bodies[i].Pos.Mul(bodies[i].Mass))
	}
	n.Cm = prod.Mul(1 / n.TotalMass)

	halfW, halfH := w/2, h/2
	if halfW == 0 && halfH == 0 {
		// Wymiary spadły do zera, a ciała wciąż się nie rozdzielają -
		// pozycje są identyczne. Zostawiamy je jako jedną masę punktową,
		// inaczej rekurencja nigdy by się nie skończyła.
		return n
	}

	// Podział ciał na ćwiartki i rekurencyjna budowa dzieci,
	// puste ćwiartki pomijamy
	var groups [4][]physics.Body
	for i := range bodies {
		q := findQuadrant(bodies[i].Pos, n.Pos)
		groups[q] = append(groups[q], bodies[i])
	}
	for q := range groups {
		if len(groups[q]) == 0 {
			continue
		}
		childPos := n.Pos.Add(quadOffset(Quad(q), halfW, halfH))
		n.Children = append(n.Children, NewNode(childPos, halfW, halfH, groups[q]))
	}
	return n
}
