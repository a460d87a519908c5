package simulation

import (
	"testing"
)

func testConfig() EnvironmentConfig {
	return EnvironmentConfig{
		Name:  "para",
		Dt:    0.1,
		Limit: 0.5,
		Eps:   5,
		Bodies: []BodyConfig{
			{Mass: 1000, Pos: [2]float64{-100, 0}, Color: "#ffffff", Radius: 5},
			{Mass: 1000, Pos: [2]float64{100, 0}, Color: "#ffffff", Radius: 5},
		},
	}
}

func TestSimulatorRebuildsTreeEachStep(t *testing.T) {
	sim := NewSimulator(testConfig())
	sim.Update()
	first := sim.Tree
	if first == nil {
		t.Fatal("brak drzewa po kroku")
	}
	sim.Update()
	// ciała się poruszyły, więc podział musi być świeży
	if sim.Tree == first {
		t.Error("drzewo nie zostało przebudowane")
	}
	if sim.Frame() != 2 {
		t.Errorf("Frame() = %d, oczekiwano 2", sim.Frame())
	}
}

func TestSimulatorAdvancesBodies(t *testing.T) {
	sim := NewSimulator(testConfig())
	sim.Update()
	if sim.Bodies[0].Pos.X <= -100 || sim.Bodies[1].Pos.X >= 100 {
		t.Errorf("ciała się nie zbliżyły: %v, %v", sim.Bodies[0].Pos, sim.Bodies[1].Pos)
	}
}

func TestSimulatorBruteMode(t *testing.T) {
	// tryb referencyjny: sumowanie wprost, bez drzewa
	sim := NewSimulator(testConfig())
	sim.Brute = true
	sim.Update()
	if sim.Tree != nil {
		t.Error("tryb brute nie powinien budować drzewa")
	}
	if sim.Bodies[0].Pos.X <= -100 {
		t.Errorf("ciało się nie poruszyło: %v", sim.Bodies[0].Pos)
	}
}

func TestSimulatorTreeAndBruteAgree(t *testing.T) {
	// przy limicie 0.5 i tej separacji drzewo rozwiązuje parę
	// indywidualnie - oba tryby muszą dać ten sam pierwszy krok
	a := NewSimulator(testConfig())
	b := NewSimulator(testConfig())
	b.Brute = true
	a.Update()
	b.Update()
	for i := range a.Bodies {
		diff := a.Bodies[i].Pos.Sub(b.Bodies[i].Pos).Len()
		if diff > 1e-12 {
			t.Errorf("ciało %d: drzewo %v, wprost %v", i, a.Bodies[i].Pos, b.Bodies[i].Pos)
		}
	}
}
