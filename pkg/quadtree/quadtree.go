package quadtree

import "github.com/hhenu/nbody-sim/pkg/physics"

// Domyślne parametry symulacji: próg akceptacji kryterium Barnes-Hut
// i softening Plummera
const (
	DefaultLimit = 5.0
	DefaultEps   = 1e3
)

// --- Drzewo czwórkowe ---
type QuadTree struct {
	Bodies []physics.Body
	Dt     float64
	Limit  float64 // próg kryterium akceptacji size/dist < limit
	Eps    float64 // parametr softeningu
	Root   *Node
}

// New buduje drzewo obejmujące wszystkie ciała. Korzeń leży w początku
// układu, a jego wymiary to największa odległość ciała od początku -
// zakłada się, że ciała są rozmieszczone wokół początku układu.
// StepForward aktualizuje ciała bezpośrednio w przekazanym slice.
func New(bodies []physics.Body, dt, limit, eps float64) *QuadTree {
	dist := 0.0
	for i := range bodies {
		if l := bodies[i].Pos.Len(); l > dist {
			dist = l
		}
	}
	return &QuadTree{
		Bodies: bodies,
		Dt:     dt,
		Limit:  limit,
		Eps:    eps,
		Root:   NewNode(physics.Vec2{}, dist, dist, bodies),
	}
}

// StepForward wykonuje jeden krok symulacji: dla każdego ciała przechodzi
// drzewo jawnym stosem, akumulując przyspieszenie, a na końcu aktualizuje
// stan ciała. n to numer klatki. Drzewo nie jest tu przebudowywane -
// wołający odpowiada za zbudowanie go z aktualnych pozycji.
func (t *QuadTree) StepForward(n int) {
	for i := range t.Bodies {
		body := &t.Bodies[i]
		acc := physics.Vec2{X: 0, Y: 0}
		stack := []*Node{t.Root}
		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			size := (node.W + node.H) / 2
			vec := node.Cm.Sub(body.Pos)
			dist := vec.Len()

			// Nie uwzględniamy węzła pokrywającego się z ciałem -
			// w szczególności liścia samego ciała
			if dist == 0 {
				continue
			}

			// Kryterium akceptacji: węzeł wystarczająco daleko
			// traktujemy jak pojedynczą masę punktową i nie
			// schodzimy do dzieci
			if size/dist < t.Limit {
				acc = acc.Add(physics.PointMassAccel(node.TotalMass, vec, t.Eps))
				continue
			}

			// Węzeł za blisko - schodzimy do dzieci. Liść bez
			// dzieci nie wnosi tu nic dodatkowego.
			stack = append(stack, node.Children...)
		}
		body.Update(acc, t.Dt, n)
	}
}
