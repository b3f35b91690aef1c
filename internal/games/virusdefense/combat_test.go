package virusdefense

import "testing"

func TestResolveCollisionsEffectiveHitAtSamePosition(t *testing.T) {
	viruses := []Virus{{X: 300, Y: 200, Size: 30, Type: VirusRound, Speed: 1}}
	projectiles := []Projectile{{X: 300, Y: 200, Weapon: WeaponBall, Size: 12, Speed: 8}}

	kept, live, events := ResolveCollisions(projectiles, viruses)

	if len(kept) != 0 {
		t.Errorf("projectile should be consumed, %d left", len(kept))
	}
	if len(live) != 1 || live[0].Hits != 1 {
		t.Fatalf("virus should survive with 1 hit, got %+v", live)
	}
	if len(events) != 1 || events[0].Result != HitEffective || events[0].Killed {
		t.Errorf("events = %+v, expected one effective non-lethal hit", events)
	}
}

func TestResolveCollisionsIneffectiveConsumesProjectile(t *testing.T) {
	viruses := []Virus{{X: 300, Y: 200, Size: 30, Type: VirusStar}}
	projectiles := []Projectile{{X: 300, Y: 205, Weapon: WeaponArrow, Size: 18}}

	kept, live, events := ResolveCollisions(projectiles, viruses)

	if len(kept) != 0 {
		t.Error("ineffective projectile should still be consumed")
	}
	if len(live) != 1 || live[0].Hits != 0 {
		t.Errorf("virus should be untouched, got %+v", live)
	}
	if len(events) != 1 || events[0].Result != HitIneffective {
		t.Errorf("events = %+v, expected one ineffective hit", events)
	}
}

func TestResolveCollisionsKill(t *testing.T) {
	viruses := []Virus{{X: 100, Y: 50, Size: 30, Type: VirusSpiky, Hits: 1}}
	projectiles := []Projectile{
		{X: 100, Y: 50, Weapon: WeaponSpikyBall, Size: 14},
		{X: 100, Y: 52, Weapon: WeaponSpikyBall, Size: 14},
	}

	kept, live, events := ResolveCollisions(projectiles, viruses)

	if len(live) != 0 {
		t.Errorf("virus should be destroyed, %d alive", len(live))
	}
	if len(events) != 1 || !events[0].Killed {
		t.Errorf("events = %+v, expected one kill", events)
	}
	// The second projectile finds nothing to hit.
	if len(kept) != 1 {
		t.Errorf("kept = %d, expected the second projectile to survive", len(kept))
	}
}

func TestResolveCollisionsFirstVirusWins(t *testing.T) {
	viruses := []Virus{
		{X: 300, Y: 200, Size: 30, Type: VirusArrow},
		{X: 300, Y: 210, Size: 30, Type: VirusArrow},
	}
	projectiles := []Projectile{{X: 300, Y: 205, Weapon: WeaponArrow, Size: 18}}

	_, live, events := ResolveCollisions(projectiles, viruses)

	if len(events) != 1 {
		t.Fatalf("a projectile must hit at most one virus, got %d events", len(events))
	}
	if live[0].Hits != 1 || live[1].Hits != 0 {
		t.Errorf("hits = %d/%d, expected 1/0", live[0].Hits, live[1].Hits)
	}
}

func TestResolveCollisionsMiss(t *testing.T) {
	viruses := []Virus{{X: 100, Y: 200, Size: 30, Type: VirusRound}}
	projectiles := []Projectile{{X: 300, Y: 200, Weapon: WeaponBall, Size: 12}}

	kept, live, events := ResolveCollisions(projectiles, viruses)

	if len(kept) != 1 || len(live) != 1 || len(events) != 0 {
		t.Errorf("miss changed state: kept=%d live=%d events=%d", len(kept), len(live), len(events))
	}
}
