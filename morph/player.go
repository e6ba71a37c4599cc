// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package morph

import "math"

// A PlayState is the playback state of a Player.
type PlayState int

// Valid playback states.
const (
	Idle PlayState = iota
	Playing
	Paused
)

// A Player is the playback state machine
// of a tree transition.
//
// The player owns no clock and no scheduling:
// the caller drives it,
// asking for the current time factor
// and producing the frame with an Engine.
// Advance moves the time forward
// only while playing;
// Step moves it one frame at a time
// while idle or paused.
type Player struct {
	state  PlayState
	t      float64
	frames int
}

// NewPlayer creates an idle player
// with the given number of frames per transition.
func NewPlayer(frames int) *Player {
	if frames < 2 {
		frames = 2
	}
	return &Player{frames: frames}
}

// State returns the playback state.
func (p *Player) State() PlayState { return p.state }

// T returns the current time factor.
func (p *Player) T() float64 { return p.t }

// Play starts or resumes the playback.
func (p *Player) Play() {
	if p.state == Idle || p.state == Paused {
		p.state = Playing
	}
}

// Pause suspends the playback.
func (p *Player) Pause() {
	if p.state == Playing {
		p.state = Paused
	}
}

// Stop resets the player
// to the idle state at time 0.
func (p *Player) Stop() {
	p.state = Idle
	p.t = 0
}

// Seek moves the time factor
// without changing the playback state.
// The value is clamped to [0, 1].
func (p *Player) Seek(t float64) {
	p.t = clamp01(t)
}

// Advance moves the time forward by one frame
// while playing,
// and reports whether the transition is still running.
// At the end of the transition
// the player pauses at time 1.
func (p *Player) Advance() bool {
	if p.state != Playing {
		return false
	}
	p.t = clamp01(p.t + p.stepSize())
	if p.t >= 1 {
		p.state = Paused
		return false
	}
	return true
}

// Step moves the time one frame forward or backward
// while idle or paused.
func (p *Player) Step(forward bool) {
	if p.state == Playing {
		return
	}
	d := p.stepSize()
	if !forward {
		d = -d
	}
	p.t = clamp01(p.t + d)
}

func (p *Player) stepSize() float64 {
	return 1 / float64(p.frames-1)
}

func clamp01(t float64) float64 {
	if math.IsNaN(t) || t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
