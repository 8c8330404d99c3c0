package domain

import "fmt"

// Tier is the reputation medal a professor earns from subscriber count.
type Tier string

const (
	TierNone    Tier = "none"
	TierSilver  Tier = "silver"
	TierGold    Tier = "gold"
	TierDiamond Tier = "diamond"
	TierKing    Tier = "king"
)

var tierRanks = map[Tier]int{
	TierNone:    0,
	TierSilver:  1,
	TierGold:    2,
	TierDiamond: 3,
	TierKing:    4,
}

// Rank orders tiers from none (0) to king (4).
func (t Tier) Rank() int {
	return tierRanks[t]
}

// TierFor maps a subscriber count to its medal. Thresholds are checked from
// the highest tier down.
func TierFor(count int) (Tier, error) {
	switch {
	case count < 0:
		return "", fmt.Errorf("tier for %d: %w", count, ErrInvalidArgument)
	case count > 150:
		return TierKing, nil
	case count > 100:
		return TierDiamond, nil
	case count > 50:
		return TierGold, nil
	case count > 0:
		return TierSilver, nil
	}
	return TierNone, nil
}

// Aura is a cosmetic colour band that cycles every 40 subscribers.
type Aura string

const (
	AuraNone   Aura = ""
	AuraRed    Aura = "red"
	AuraOrange Aura = "orange"
	AuraGreen  Aura = "green"
	AuraBlue   Aura = "blue"
)

var auraLevels = [4]Aura{AuraRed, AuraOrange, AuraGreen, AuraBlue}

// AuraFor returns the band for count; zero subscribers have no band.
func AuraFor(count int) (Aura, error) {
	if count < 0 {
		return AuraNone, fmt.Errorf("aura for %d: %w", count, ErrInvalidArgument)
	}
	if count == 0 {
		return AuraNone, nil
	}
	return auraLevels[((count-1)%40)/10], nil
}

// Standing bundles what the dashboard shows next to a professor.
type Standing struct {
	ProfessorID  string
	StudentCount int
	Tier         Tier
	Aura         Aura
}

// StandingOf computes the standing of a professor record.
func StandingOf(u User) (Standing, error) {
	tier, err := TierFor(u.StudentCount)
	if err != nil {
		return Standing{}, err
	}
	aura, err := AuraFor(u.StudentCount)
	if err != nil {
		return Standing{}, err
	}
	return Standing{ProfessorID: u.ID, StudentCount: u.StudentCount, Tier: tier, Aura: aura}, nil
}
