package virusdefense

import (
	"testing"
	"time"

	"github.com/vovakirdan/virus-defense/internal/clock"
	"github.com/vovakirdan/virus-defense/internal/config"
)

func TestWeaponsStartOnBall(t *testing.T) {
	w := NewWeapons(config.DefaultVirusDefenseConfig().Weapons)
	if w.Current != WeaponBall {
		t.Errorf("Current = %s, expected Ball", w.Current)
	}
}

func TestWeaponsSwitchCycles(t *testing.T) {
	w := NewWeapons(config.DefaultVirusDefenseConfig().Weapons)

	expected := []WeaponType{WeaponStar, WeaponSpikyBall, WeaponArrow, WeaponBall}
	for i, want := range expected {
		w.Switch()
		if w.Current != want {
			t.Errorf("switch %d: Current = %s, expected %s", i+1, w.Current, want)
		}
	}
}

func TestWeaponsSelect(t *testing.T) {
	w := NewWeapons(config.DefaultVirusDefenseConfig().Weapons)

	if !w.Select(WeaponArrow) || w.Current != WeaponArrow {
		t.Errorf("Select(Arrow) failed, Current = %s", w.Current)
	}
	if w.Select(WeaponType(7)) {
		t.Error("Select accepted an unknown weapon")
	}
	if w.Current != WeaponArrow {
		t.Errorf("unknown weapon changed Current to %s", w.Current)
	}
}

func TestWeaponsCooldown(t *testing.T) {
	w := NewWeapons(config.DefaultVirusDefenseConfig().Weapons)
	now := clock.Epoch

	if !w.Shoot(300, 700, now) {
		t.Fatal("first shot rejected")
	}
	if w.Shoot(300, 700, now.Add(249*time.Millisecond)) {
		t.Error("shot within cooldown accepted")
	}
	if !w.Shoot(300, 700, now.Add(250*time.Millisecond)) {
		t.Error("shot after cooldown rejected")
	}
	if len(w.Projectiles) != 2 {
		t.Errorf("len(Projectiles) = %d, expected 2", len(w.Projectiles))
	}
}

func TestWeaponsProjectileShape(t *testing.T) {
	cfg := config.DefaultVirusDefenseConfig().Weapons
	w := NewWeapons(cfg)
	w.Select(WeaponStar)
	w.Shoot(100, 700, clock.Epoch)

	p := w.Projectiles[0]
	if p.X != 100 || p.Y != float64(700-cfg.LaunchOffset) {
		t.Errorf("launch position = (%v, %v)", p.X, p.Y)
	}
	if p.Weapon != WeaponStar || p.Size != cfg.Sizes.Star || p.Speed != cfg.ProjectileSpeed {
		t.Errorf("projectile = %+v", p)
	}
}

func TestWeaponsAdvanceDropsOffscreen(t *testing.T) {
	w := NewWeapons(config.DefaultVirusDefenseConfig().Weapons)
	w.Projectiles = []Projectile{
		{Y: 4, Speed: 8},
		{Y: 100, Speed: 8},
	}

	w.Advance()

	if len(w.Projectiles) != 1 || w.Projectiles[0].Y != 92 {
		t.Errorf("Projectiles = %+v, expected one at y=92", w.Projectiles)
	}
}

func TestWeaponsCloneIsIndependent(t *testing.T) {
	w := NewWeapons(config.DefaultVirusDefenseConfig().Weapons)
	w.Shoot(300, 700, clock.Epoch)

	c := w.clone()
	c.Projectiles[0].Y = -50
	c.Advance()

	if len(w.Projectiles) != 1 || w.Projectiles[0].Y != 670 {
		t.Errorf("clone shares storage with the original: %+v", w.Projectiles)
	}
}
