package main

import "github.com/charmbracelet/harmonica"

// rotationAxis tracks an orientation angle and an angular velocity that
// decays toward zero via a critically damped spring, giving mouse-drag
// rotation a gentle coast instead of stopping dead on release.
type rotationAxis struct {
	Position  float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64
}

func newRotationAxis(fps int) rotationAxis {
	return rotationAxis{
		// Frequency 4.0 = moderate decay speed, damping 1.0 = no overshoot.
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

func (a *rotationAxis) update() {
	a.Position += a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// orbitState holds the three rotation axes of the orbit camera's target
// orientation.
type orbitState struct {
	Pitch, Yaw, Roll rotationAxis
	fps              int
}

func newOrbitState(fps int) *orbitState {
	return &orbitState{
		Pitch: newRotationAxis(fps),
		Yaw:   newRotationAxis(fps),
		Roll:  newRotationAxis(fps),
		fps:   fps,
	}
}

func (o *orbitState) update() {
	o.Pitch.update()
	o.Yaw.update()
	o.Roll.update()
}

func (o *orbitState) applyImpulse(pitch, yaw, roll float64) {
	o.Pitch.Velocity += pitch
	o.Yaw.Velocity += yaw
	o.Roll.Velocity += roll
}

func (o *orbitState) reset() {
	*o = *newOrbitState(o.fps)
}
