package player

import "math"

// SetVolume sets the volume level (0.0 to 1.0).
// If muted, only stores the level without applying it.
func (p *Player) SetVolume(level float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Deleted {
		return ErrDeleted
	}
	p.setVolumeLocked(level)
	return nil
}

func (p *Player) setVolumeLocked(level float64) {
	p.volumeLevel = min(max(level, 0), 1)
	p.volume.Volume = levelToVolume(p.volumeLevel)
}

// Volume returns the current volume level (0.0 to 1.0).
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volumeLevel
}

// SetMuted silences output without touching the cursor or the level.
func (p *Player) SetMuted(muted bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Deleted {
		return ErrDeleted
	}
	p.muted = muted
	p.volume.Silent = muted
	return nil
}

// Muted returns true if audio is muted.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// levelToVolume converts a 0.0-1.0 level to beep's base-2 Volume.
// We map: 1.0 -> 0, 0.5 -> -1, 0.25 -> -2, 0 -> -10 (essentially silent)
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}
