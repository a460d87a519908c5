package physics

import "math"

const G = 6.67430e-1 // sztucznie zwiększone dla wizualizacji

// PointMassAccel zwraca przyspieszenie od masy punktowej m oddalonej o wektor
// dir od ciała. Model Plummera: softening eps usuwa osobliwość siły przy
// bardzo małych odległościach.
func PointMassAccel(m float64, dir Vec2, eps float64) Vec2 {
	dist := dir.Len()
	if dist == 0 {
		return Vec2{0, 0}
	}
	denom := math.Pow(dist*dist+eps*eps, 1.5)
	mag := G * m * dist / denom
	angle := math.Atan2(dir.Y, dir.X)
	return Vec2{math.Cos(angle) * mag, math.Sin(angle) * mag}
}

// ComputeAcceleration sumuje wprost (O(N²)) przyspieszenie ciała b od
// wszystkich pozostałych ciał - metoda referencyjna do porównań z drzewem
func ComputeAcceleration(b Body, others []Body, eps float64) Vec2 {
	acc := Vec2{0, 0}
	for i := range others {
		dir := others[i].Pos.Sub(b.Pos)
		if dir.Len() == 0 {
			// nie uwzględniamy ciała w jego własnym przyspieszeniu
			continue
		}
		acc = acc.Add(PointMassAccel(others[i].Mass, dir, eps))
	}
	return acc
}
