package game

import "fmt"

// ExpPerSkillPoint is the XP that earns each skill point.
const ExpPerSkillPoint = 100

// IncrementsPerLevel is how many skill increments make one skill level.
const IncrementsPerLevel = 5

// Skill is one of the fixed survivor skills.
type Skill string

const (
	SkillCombat     Skill = "combat"
	SkillScavenging Skill = "scavenging"
	SkillCrafting   Skill = "crafting"
	SkillSurvival   Skill = "survival"
)

// Skills lists every skill in display order.
var Skills = []Skill{SkillCombat, SkillScavenging, SkillCrafting, SkillSurvival}

// Rank is the survivor's title, earned from experience and days survived.
type Rank string

const (
	RankRookie    Rank = "Rookie"
	RankScavenger Rank = "Scavenger"
	RankSurvivor  Rank = "Survivor"
	RankVeteran   Rank = "Veteran"
	RankLegend    Rank = "Legend"
)

// rankTable is ordered from the highest rank down; the first row whose
// thresholds are both met wins.
var rankTable = []struct {
	rank Rank
	exp  int
	days int
}{
	{RankLegend, 1000, 15},
	{RankVeteran, 500, 10},
	{RankSurvivor, 200, 5},
	{RankScavenger, 50, 2},
}

// RankFor returns the rank earned with the given experience and days survived.
// It never decreases as either input grows.
func RankFor(exp, days int) Rank {
	for _, r := range rankTable {
		if exp >= r.exp && days >= r.days {
			return r.rank
		}
	}
	return RankRookie
}

// ValidRank reports whether r is a known rank.
func ValidRank(r Rank) bool {
	return r == RankRookie || rankOrder(r) > 0
}

// rankOrder orders ranks from Rookie (0) up to Legend.
func rankOrder(r Rank) int {
	for i, row := range rankTable {
		if row.rank == r {
			return len(rankTable) - i
		}
	}
	return 0
}

// SkillLevel returns the displayed level for a raw skill value:
//
//	0-4: level 0, 5-9: level 1, 10-14: level 2 ...
func SkillLevel(value int) int {
	return value / IncrementsPerLevel
}

// Progression tracks experience, skill points, skill values and rank.
type Progression struct {
	Experience  int
	SkillPoints int
	Skills      map[Skill]int
	Rank        Rank
}

// NewProgression returns the progression of a fresh survivor.
func NewProgression() Progression {
	p := Progression{Skills: map[Skill]int{}, Rank: RankRookie}
	for _, s := range Skills {
		p.Skills[s] = 0
	}
	return p
}

// GainExperience adds XP. Every full ExpPerSkillPoint crossed grants one skill
// point, and a known skill gains one increment. Rank is recomputed afterward.
func (s *State) GainExperience(amount int, skill Skill) []Moment {
	var moments []Moment
	p := &s.Progress
	p.Experience += amount

	for p.Experience >= (p.SkillPoints+1)*ExpPerSkillPoint {
		p.SkillPoints++
		moments = append(moments, Moment{
			Kind:   MomentSkillPoint,
			Amount: p.SkillPoints,
			Text:   fmt.Sprintf("You gained a skill point! (%d total)", p.SkillPoints),
		})
	}

	if _, ok := p.Skills[skill]; ok {
		p.Skills[skill]++
		if p.Skills[skill]%IncrementsPerLevel == 0 {
			lvl := SkillLevel(p.Skills[skill])
			moments = append(moments, Moment{
				Kind:  MomentSkillLevelUp,
				Skill: skill,
				Level: lvl,
				Text:  fmt.Sprintf("Your %s skill improved to level %d!", skill, lvl),
			})
		}
	}

	return append(moments, s.updateRank()...)
}

func (s *State) updateRank() []Moment {
	next := RankFor(s.Progress.Experience, s.DaysSurvived)
	if rankOrder(next) <= rankOrder(s.Progress.Rank) {
		return nil
	}
	s.Progress.Rank = next
	return []Moment{{
		Kind: MomentRankUp,
		Rank: next,
		Text: fmt.Sprintf("Rank up! You are now a %s!", next),
	}}
}
