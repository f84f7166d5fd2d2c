package game

// MomentKind names a notable transition worth telling the player about.
type MomentKind string

const (
	MomentSkillPoint   MomentKind = "skill_point"
	MomentSkillLevelUp MomentKind = "skill_level_up"
	MomentRankUp       MomentKind = "rank_up"
	MomentCollapse     MomentKind = "collapse"
	MomentDiscovery    MomentKind = "discovery"
	MomentNewTown      MomentKind = "new_town"
	MomentDayPassed    MomentKind = "day_passed"
	MomentEventExpired MomentKind = "event_expired"
)

// Moment is returned by state transitions instead of printing. Only the fields
// relevant to Kind are set.
type Moment struct {
	Kind   MomentKind `json:"kind"`
	Skill  Skill      `json:"skill,omitempty"`
	Level  int        `json:"level,omitempty"`
	Rank   Rank       `json:"rank,omitempty"`
	Amount int        `json:"amount,omitempty"`
	Name   string     `json:"name,omitempty"`
	Text   string     `json:"text,omitempty"`
}
