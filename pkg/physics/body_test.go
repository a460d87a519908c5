package physics

import (
	"math"
	"testing"
)

func TestVec2Ops(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: -1, Y: 2}
	if got := a.Add(b); got != (Vec2{X: 2, Y: 6}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 4, Y: 2}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mul(2); got != (Vec2{X: 6, Y: 8}) {
		t.Errorf("Mul = %v", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len = %v", got)
	}
	n := a.Normalize()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("Normalize().Len() = %v", n.Len())
	}
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("Normalize zera = %v, oczekiwano zera", got)
	}
}

func TestBodyUpdateEuler(t *testing.T) {
	b := Body{Mass: 1, Pos: Vec2{X: 10, Y: 0}, Vel: Vec2{X: 1, Y: 0}}
	acc := Vec2{X: 0, Y: 2}
	dt := 0.5
	b.Update(acc, dt, 0)
	// semi-implicit Euler: najpierw prędkość, potem pozycja z nowej prędkości
	wantVel := Vec2{X: 1, Y: 1}
	wantPos := Vec2{X: 10.5, Y: 0.5}
	if b.Vel != wantVel {
		t.Errorf("Vel = %v, oczekiwano %v", b.Vel, wantVel)
	}
	if b.Pos != wantPos {
		t.Errorf("Pos = %v, oczekiwano %v", b.Pos, wantPos)
	}
	if b.Acc != acc {
		t.Errorf("Acc = %v, oczekiwano %v", b.Acc, acc)
	}
}

func TestBodyUpdateLocked(t *testing.T) {
	pos := Vec2{X: 5, Y: 5}
	b := Body{Mass: 1, Pos: pos, Vel: Vec2{X: 3, Y: 3}, Locked: true}
	b.Update(Vec2{X: 1, Y: 1}, 0.1, 0)
	if b.Pos != pos {
		t.Errorf("Pos = %v, zablokowane ciało nie powinno się ruszyć", b.Pos)
	}
	if b.Vel != (Vec2{}) {
		t.Errorf("Vel = %v, oczekiwano wyzerowania", b.Vel)
	}
}

func TestBodyUpdateAnti(t *testing.T) {
	b := Body{Mass: 1, Anti: true}
	b.Update(Vec2{X: 2, Y: 0}, 1, 0)
	if b.Acc != (Vec2{X: -2, Y: 0}) {
		t.Errorf("Acc = %v, oczekiwano odwróconego przyspieszenia", b.Acc)
	}
}

func TestPointMassAccel(t *testing.T) {
	const (
		m   = 100.0
		eps = 5.0
	)
	dir := Vec2{X: 30, Y: 40} // odległość 50
	got := PointMassAccel(m, dir, eps)
	wantMag := G * m * 50 / math.Pow(50*50+eps*eps, 1.5)
	if math.Abs(got.Len()-wantMag)/wantMag > 1e-12 {
		t.Errorf("|acc| = %v, oczekiwano %v", got.Len(), wantMag)
	}
	// kierunek zgodny z dir
	if got.X <= 0 || got.Y <= 0 {
		t.Errorf("acc = %v, oczekiwano kierunku %v", got, dir)
	}
	if math.Abs(got.Y/got.X-dir.Y/dir.X) > 1e-9 {
		t.Errorf("acc = %v nie jest współliniowe z %v", got, dir)
	}
}

func TestPointMassAccelZeroDir(t *testing.T) {
	if got := PointMassAccel(100, Vec2{}, 5); got != (Vec2{}) {
		t.Errorf("acc = %v, oczekiwano zera dla zerowego wektora", got)
	}
}

func TestComputeAccelerationSelfExclusion(t *testing.T) {
	bodies := []Body{{Mass: 1000, Pos: Vec2{X: 7, Y: -2}}}
	if got := ComputeAcceleration(bodies[0], bodies, 5); got != (Vec2{}) {
		t.Errorf("acc = %v, ciało nie może przyciągać samego siebie", got)
	}
}

func TestIntegrateDirectSymmetric(t *testing.T) {
	// dwa równe ciała: po kroku prędkości przeciwne, środek masy w miejscu
	bodies := []Body{
		{Mass: 500, Pos: Vec2{X: -50, Y: 0}},
		{Mass: 500, Pos: Vec2{X: 50, Y: 0}},
	}
	bodies = IntegrateDirect(bodies, 0.1, 5, 0)
	if math.Abs(bodies[0].Vel.X+bodies[1].Vel.X) > 1e-12 {
		t.Errorf("prędkości niesymetryczne: %v, %v", bodies[0].Vel, bodies[1].Vel)
	}
	if bodies[0].Vel.X <= 0 || bodies[1].Vel.X >= 0 {
		t.Errorf("ciała się nie przyciągają: %v, %v", bodies[0].Vel, bodies[1].Vel)
	}
	mid := bodies[0].Pos.Add(bodies[1].Pos).Mul(0.5)
	if math.Abs(mid.X) > 1e-12 || math.Abs(mid.Y) > 1e-12 {
		t.Errorf("środek masy się przesunął: %v", mid)
	}
}

func TestIntegrateDirectSimultaneous(t *testing.T) {
	// przyspieszenia liczone ze starych pozycji: wynik nie może zależeć
	// od kolejności ciał w slice
	a := []Body{
		{Mass: 100, Pos: Vec2{X: -30, Y: 10}},
		{Mass: 900, Pos: Vec2{X: 40, Y: -20}},
	}
	b := []Body{a[1], a[0]}
	a = IntegrateDirect(a, 0.2, 5, 0)
	b = IntegrateDirect(b, 0.2, 5, 0)
	if a[0].Pos != b[1].Pos || a[1].Pos != b[0].Pos {
		t.Errorf("wynik zależy od kolejności: %v/%v vs %v/%v",
			a[0].Pos, a[1].Pos, b[1].Pos, b[0].Pos)
	}
}
