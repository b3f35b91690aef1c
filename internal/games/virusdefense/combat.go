package virusdefense

// HitEvent describes one projectile striking one virus.
type HitEvent struct {
	Weapon WeaponType
	Virus  VirusType
	Result HitResult
	Killed bool
}

// ResolveCollisions tests every projectile against the live viruses in
// order. A projectile strikes at most one virus, the first it overlaps,
// and is consumed whether or not the hit was effective. Viruses destroyed
// by a hit are dropped from the returned live set and cannot be struck by
// later projectiles in the same pass.
//
// viruses is updated in place; the returned slices are freshly allocated.
func ResolveCollisions(projectiles []Projectile, viruses []Virus) ([]Projectile, []Virus, []HitEvent) {
	var (
		kept   = make([]Projectile, 0, len(projectiles))
		events []HitEvent
	)

	for _, p := range projectiles {
		consumed := false
		pc := p.Circle()
		for i := range viruses {
			v := &viruses[i]
			if v.IsDead() || !pc.Intersects(v.Circle()) {
				continue
			}
			res := v.TakeHit(p.Weapon)
			events = append(events, HitEvent{
				Weapon: p.Weapon,
				Virus:  v.Type,
				Result: res,
				Killed: res == HitEffective && v.IsDead(),
			})
			consumed = true
			break
		}
		if !consumed {
			kept = append(kept, p)
		}
	}

	live := make([]Virus, 0, len(viruses))
	for _, v := range viruses {
		if !v.IsDead() {
			live = append(live, v)
		}
	}
	return kept, live, events
}
