package physics

// IntegrateDirect wykonuje jeden krok symulacji sumując siły wprost, bez
// drzewa. Najpierw liczymy przyspieszenia wszystkich ciał z aktualnych
// pozycji, dopiero potem aktualizujemy stany - żadne ciało nie widzi
// nowej pozycji innego w trakcie kroku.
func IntegrateDirect(bodies []Body, dt float64, eps float64, n int) []Body {
	accs := make([]Vec2, len(bodies))
	for i := range bodies {
		accs[i] = ComputeAcceleration(bodies[i], bodies, eps)
	}
	for i := range bodies {
		bodies[i].Update(accs[i], dt, n)
	}
	return bodies
}
