package simulation

import (
	"github.com/hhenu/nbody-sim/pkg/physics"
	"github.com/hhenu/nbody-sim/pkg/quadtree"
)

// --- Główna struktura symulatora ---
type Simulator struct {
	Name   string
	Dt     float64
	Limit  float64
	Eps    float64
	Bodies []physics.Body
	Brute  bool // sumowanie wprost zamiast drzewa (tryb referencyjny)

	// drzewo z ostatniego kroku - do podglądu podziału przestrzeni
	Tree *quadtree.QuadTree

	frame int
}

// --- Tworzenie symulatora z konfiguracji ---
func NewSimulator(cfg EnvironmentConfig) *Simulator {
	bodies := make([]physics.Body, len(cfg.Bodies))

	for i, b := range cfg.Bodies {
		bodies[i] = physics.Body{
			Mass:   b.Mass,
			Pos:    physics.Vec2{X: b.Pos[0], Y: b.Pos[1]},
			Vel:    physics.Vec2{X: b.Vel[0], Y: b.Vel[1]},
			Radius: b.Radius,
			ColorC: parseColor(b.Color),
			Locked: b.Locked,
			Anti:   b.Anti,
		}
	}

	return &Simulator{
		Name:   cfg.Name,
		Dt:     cfg.Dt,
		Limit:  cfg.Limit,
		Eps:    cfg.Eps,
		Bodies: bodies,
	}
}

// --- Aktualizacja symulacji ---
// Ciała się poruszają, więc podział przestrzeni z poprzedniego kroku jest
// nieaktualny - drzewo budujemy od nowa z bieżących pozycji przed każdym
// przejściem.
func (s *Simulator) Update() {
	if s.Brute {
		s.Bodies = physics.IntegrateDirect(s.Bodies, s.Dt, s.Eps, s.frame)
		s.Tree = nil
	} else {
		s.Tree = quadtree.New(s.Bodies, s.Dt, s.Limit, s.Eps)
		s.Tree.StepForward(s.frame)
	}
	s.frame++
}

// Frame zwraca numer następnej klatki
func (s *Simulator) Frame() int {
	return s.frame
}
