package virusdefense

import (
	"time"

	"github.com/vovakirdan/virus-defense/internal/config"
)

// Weapons owns the selected weapon and every projectile in flight.
type Weapons struct {
	Current     WeaponType
	Projectiles []Projectile

	lastShot time.Time
	fired    bool
	cfg      config.WeaponsConfig
}

// NewWeapons starts with the Ball selected and nothing in flight.
func NewWeapons(cfg config.WeaponsConfig) Weapons {
	return Weapons{Current: WeaponBall, cfg: cfg}
}

// SizeOf returns the projectile size of weapon t.
func (w *Weapons) SizeOf(t WeaponType) int {
	switch t {
	case WeaponStar:
		return w.cfg.Sizes.Star
	case WeaponSpikyBall:
		return w.cfg.Sizes.SpikyBall
	case WeaponArrow:
		return w.cfg.Sizes.Arrow
	default:
		return w.cfg.Sizes.Ball
	}
}

// Shoot launches the current weapon from above (x, y) unless the cooldown
// since the previous shot has not elapsed at now.
func (w *Weapons) Shoot(x, y int, now time.Time) bool {
	if w.fired && now.Sub(w.lastShot) < w.cfg.Cooldown() {
		return false
	}
	w.Projectiles = append(w.Projectiles, Projectile{
		X:      float64(x),
		Y:      float64(y - w.cfg.LaunchOffset),
		Weapon: w.Current,
		Size:   w.SizeOf(w.Current),
		Speed:  w.cfg.ProjectileSpeed,
	})
	w.lastShot = now
	w.fired = true
	return true
}

// Switch cycles to the next weapon.
func (w *Weapons) Switch() {
	w.Current = w.Current.Next()
}

// Select picks a weapon directly. Unknown weapons are ignored.
func (w *Weapons) Select(t WeaponType) bool {
	if !t.valid() {
		return false
	}
	w.Current = t
	return true
}

// Advance moves every projectile and drops those past the top edge.
func (w *Weapons) Advance() {
	kept := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		p.Advance()
		if p.Y >= 0 {
			kept = append(kept, p)
		}
	}
	w.Projectiles = kept
}

// clone returns a copy that shares no projectile storage with w.
func (w Weapons) clone() Weapons {
	w.Projectiles = append([]Projectile(nil), w.Projectiles...)
	return w
}
