package virusdefense

// VirusType identifies a virus family. Each family is weak to exactly one weapon.
type VirusType int

const (
	VirusSpiky VirusType = iota
	VirusRound
	VirusStar
	VirusArrow
	virusTypeCount
)

// WeaponType identifies a projectile kind. Declaration order is the
// cycling order used by SwitchWeapon.
type WeaponType int

const (
	WeaponBall WeaponType = iota
	WeaponStar
	WeaponSpikyBall
	WeaponArrow
	weaponTypeCount
)

// HitResult is the outcome of a projectile touching a virus.
type HitResult int

const (
	HitIneffective HitResult = iota
	HitEffective
)

var virusNames = [virusTypeCount]string{
	VirusSpiky: "Spiky",
	VirusRound: "Round",
	VirusStar:  "Star",
	VirusArrow: "Arrow",
}

var weaponNames = [weaponTypeCount]string{
	WeaponBall:      "Ball",
	WeaponStar:      "Star",
	WeaponSpikyBall: "Spiky Ball",
	WeaponArrow:     "Arrow",
}

// weaknesses maps each virus family to the only weapon that damages it.
var weaknesses = [virusTypeCount]WeaponType{
	VirusSpiky: WeaponSpikyBall,
	VirusRound: WeaponBall,
	VirusStar:  WeaponStar,
	VirusArrow: WeaponArrow,
}

func (v VirusType) valid() bool  { return v >= 0 && v < virusTypeCount }
func (w WeaponType) valid() bool { return w >= 0 && w < weaponTypeCount }

// String returns the display name of the virus family.
func (v VirusType) String() string {
	if !v.valid() {
		return "Unknown"
	}
	return virusNames[v]
}

// Weakness returns the weapon that is effective against v.
func (v VirusType) Weakness() WeaponType {
	return weaknesses[v]
}

// String returns the display name of the weapon.
func (w WeaponType) String() string {
	if !w.valid() {
		return "Unknown"
	}
	return weaponNames[w]
}

// Next returns the following weapon in cycling order.
func (w WeaponType) Next() WeaponType {
	return (w + 1) % weaponTypeCount
}

func (r HitResult) String() string {
	if r == HitEffective {
		return "effective"
	}
	return "ineffective"
}

// VirusTypes returns all virus families in declaration order.
func VirusTypes() []VirusType {
	return []VirusType{VirusSpiky, VirusRound, VirusStar, VirusArrow}
}

// WeaponTypes returns all weapons in cycling order.
func WeaponTypes() []WeaponType {
	return []WeaponType{WeaponBall, WeaponStar, WeaponSpikyBall, WeaponArrow}
}

// ResolveHit decides whether weapon damages a virus of family virus.
func ResolveHit(virus VirusType, weapon WeaponType) HitResult {
	if virus.valid() && weapon == weaknesses[virus] {
		return HitEffective
	}
	return HitIneffective
}
