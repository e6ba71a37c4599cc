// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package morph_test

import (
	"math"
	"testing"

	"github.com/js-arias/treemorph/morph"
)

func TestPlayerStates(t *testing.T) {
	p := morph.NewPlayer(11)

	if p.State() != morph.Idle {
		t.Errorf("new player: state %v, want %v", p.State(), morph.Idle)
	}
	if p.T() != 0 {
		t.Errorf("new player: t %.6f, want 0", p.T())
	}

	p.Play()
	if p.State() != morph.Playing {
		t.Errorf("after play: state %v, want %v", p.State(), morph.Playing)
	}

	p.Pause()
	if p.State() != morph.Paused {
		t.Errorf("after pause: state %v, want %v", p.State(), morph.Paused)
	}

	p.Play()
	if p.State() != morph.Playing {
		t.Errorf("after resume: state %v, want %v", p.State(), morph.Playing)
	}

	p.Stop()
	if p.State() != morph.Idle || p.T() != 0 {
		t.Errorf("after stop: state %v at t=%.6f, want %v at t=0", p.State(), p.T(), morph.Idle)
	}
}

func TestPlayerAdvance(t *testing.T) {
	p := morph.NewPlayer(11)

	// advance is a no-op while idle
	if p.Advance() {
		t.Errorf("advance while idle: got true")
	}
	if p.T() != 0 {
		t.Errorf("advance while idle: t %.6f, want 0", p.T())
	}

	p.Play()
	steps := 0
	for p.Advance() {
		steps++
		if steps > 100 {
			t.Fatalf("playback does not end")
		}
	}
	if math.Abs(p.T()-1) > 1e-9 {
		t.Errorf("at the end: t %.6f, want 1", p.T())
	}
	if p.State() != morph.Paused {
		t.Errorf("at the end: state %v, want %v", p.State(), morph.Paused)
	}
	if steps != 9 {
		t.Errorf("steps: got %d, want 9", steps)
	}
}

func TestPlayerSeek(t *testing.T) {
	p := morph.NewPlayer(11)

	p.Seek(0.5)
	if p.T() != 0.5 {
		t.Errorf("after seek: t %.6f, want 0.5", p.T())
	}
	if p.State() != morph.Idle {
		t.Errorf("seek changed the state to %v", p.State())
	}

	// seek values are clamped
	p.Seek(3)
	if p.T() != 1 {
		t.Errorf("seek beyond the end: t %.6f, want 1", p.T())
	}
	p.Seek(math.NaN())
	if p.T() != 0 {
		t.Errorf("seek to NaN: t %.6f, want 0", p.T())
	}
}

func TestPlayerStep(t *testing.T) {
	p := morph.NewPlayer(11)

	p.Step(true)
	if math.Abs(p.T()-0.1) > 1e-9 {
		t.Errorf("after step: t %.6f, want 0.1", p.T())
	}
	p.Step(false)
	if p.T() != 0 {
		t.Errorf("after step back: t %.6f, want 0", p.T())
	}

	// steps do not move before the start
	p.Step(false)
	if p.T() != 0 {
		t.Errorf("step back at the start: t %.6f, want 0", p.T())
	}

	// no stepping while playing
	p.Play()
	p.Step(true)
	if p.T() != 0 {
		t.Errorf("step while playing: t %.6f, want 0", p.T())
	}
}
