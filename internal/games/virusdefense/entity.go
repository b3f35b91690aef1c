package virusdefense

import "github.com/vovakirdan/virus-defense/internal/core"

// DeathThreshold is the number of effective hits that destroys a virus.
const DeathThreshold = 2

// Player is the defender at the bottom of the playfield. It moves one lane
// at a time and never leaves the outer lanes.
type Player struct {
	X    int
	Y    int
	Size int
}

// MoveLeft moves one lane left, clamped to the leftmost lane center.
func (p *Player) MoveLeft(laneWidth, screenWidth int) {
	p.X = clampLane(p.X-laneWidth, laneWidth, screenWidth)
}

// MoveRight moves one lane right, clamped to the rightmost lane center.
func (p *Player) MoveRight(laneWidth, screenWidth int) {
	p.X = clampLane(p.X+laneWidth, laneWidth, screenWidth)
}

func clampLane(x, laneWidth, screenWidth int) int {
	return core.Clamp(x, laneWidth/2, screenWidth-laneWidth/2)
}

// Virus descends its lane at a fixed speed.
type Virus struct {
	X     int
	Y     float64
	Speed float64
	Size  int
	Type  VirusType
	Hits  int
}

// NewVirus creates a virus at the top of the playfield.
func NewVirus(x int, speed float64, size int, t VirusType) Virus {
	return Virus{X: x, Speed: speed, Size: size, Type: t}
}

// Advance moves the virus down by its speed. Leaving the playfield is
// detected by the caller.
func (v *Virus) Advance() {
	v.Y += v.Speed
}

// SetSpeed overrides the speed assigned at spawn.
func (v *Virus) SetSpeed(speed float64) {
	v.Speed = speed
}

// TakeHit applies a projectile of the given weapon. Only effective hits
// count towards destruction; a destroyed virus stays destroyed.
func (v *Virus) TakeHit(weapon WeaponType) HitResult {
	res := ResolveHit(v.Type, weapon)
	if res == HitEffective {
		v.Hits++
	}
	return res
}

// IsDead reports whether the virus took enough effective hits.
func (v *Virus) IsDead() bool {
	return v.Hits >= DeathThreshold
}

// Circle returns the hit area of the virus.
func (v *Virus) Circle() core.Circle {
	return core.NewCircle(float64(v.X), v.Y, float64(v.Size/2))
}

// Projectile travels straight up from the player.
type Projectile struct {
	X      float64
	Y      float64
	Weapon WeaponType
	Size   int
	Speed  float64
}

// Advance moves the projectile up by its speed.
func (p *Projectile) Advance() {
	p.Y -= p.Speed
}

// Circle returns the hit area of the projectile.
func (p *Projectile) Circle() core.Circle {
	return core.NewCircle(p.X, p.Y, float64(p.Size/2))
}
