// Package animation drives frame playback for multi-frame drawn layers.
package animation

import "ansiscreen/pkg/game/layer"

// Driver holds the play/pause state of one screen. The zero value is paused.
type Driver struct {
	playing bool
	ticks   uint64
}

// Play starts playback
func (d *Driver) Play() { d.playing = true }

// Pause stops playback. Frames stay where they are.
func (d *Driver) Pause() { d.playing = false }

// IsPlaying reports whether ticks advance frames
func (d *Driver) IsPlaying() bool { return d.playing }

// Ticks returns how many ticks advanced frames since creation
func (d *Driver) Ticks() uint64 { return d.ticks }

// Tick advances every multi-frame drawn layer by one frame if playing.
// Returns true if any frame changed, meaning the screen must be recomposited.
func (d *Driver) Tick(layers []*layer.Layer) bool {
	if !d.playing {
		return false
	}
	d.ticks++
	return Step(layers)
}

// Step advances every multi-frame drawn layer by one frame regardless of the
// play state. Returns true if any frame changed.
func Step(layers []*layer.Layer) bool {
	changed := false
	for _, l := range layers {
		if drawn, ok := l.Content.(*layer.Drawn); ok && drawn.Advance() {
			changed = true
		}
	}
	return changed
}
