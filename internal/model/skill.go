package model

import "fmt"

type Proficiency string

const (
	Beginner     Proficiency = "Beginner"
	Intermediate Proficiency = "Intermediate"
	Advanced     Proficiency = "Advanced"
)

// ProficiencyForLevel maps a 0-100 level onto the proficiency bands.
func ProficiencyForLevel(level int) Proficiency {
	switch {
	case level <= 40:
		return Beginner
	case level <= 75:
		return Intermediate
	default:
		return Advanced
	}
}

// LevelForProficiency snaps a proficiency back to its representative level.
// This makes the derivation bidirectional: editing either field keeps the
// pair consistent.
func LevelForProficiency(p Proficiency) (int, error) {
	switch p {
	case Beginner:
		return 30, nil
	case Intermediate:
		return 60, nil
	case Advanced:
		return 90, nil
	}
	return 0, fmt.Errorf("invalid proficiency %q: must be one of Beginner, Intermediate, Advanced", p)
}

// SkillColors is the fixed palette of theme tokens a skill may use.
var SkillColors = []string{
	"from-blue-400 to-blue-600",
	"from-yellow-400 to-yellow-600",
	"from-green-400 to-green-600",
	"from-red-400 to-red-600",
	"from-purple-400 to-purple-600",
	"from-cyan-400 to-cyan-600",
	"from-indigo-400 to-indigo-600",
	"from-orange-400 to-orange-600",
	"from-teal-400 to-teal-600",
	"from-pink-400 to-pink-600",
	"from-amber-400 to-amber-600",
	"from-emerald-400 to-emerald-600",
	"from-rose-400 to-rose-600",
}

func ValidateSkillColor(color string) error {
	if color == "" {
		return nil
	}
	for _, c := range SkillColors {
		if color == c {
			return nil
		}
	}
	return fmt.Errorf("invalid skill color %q: not in the theme palette", color)
}

// Skill pairs a 0-100 level with a derived proficiency band. The pair is kept
// consistent by the service layer; the remote store does not enforce it.
type Skill struct {
	ID          string      `yaml:"id,omitempty" json:"id,omitempty"`
	Name        string      `yaml:"name" json:"name"`
	Level       int         `yaml:"level" json:"level"`
	Proficiency Proficiency `yaml:"proficiency,omitempty" json:"proficiency"`
	Category    string      `yaml:"category" json:"category"`
	Color       string      `yaml:"color,omitempty" json:"color"`
}

func (s *Skill) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("skill name is required")
	}
	if s.Level < 0 || s.Level > 100 {
		return fmt.Errorf("skill level must be between 0 and 100, got %d", s.Level)
	}
	if s.Category == "" {
		return fmt.Errorf("skill category is required")
	}
	return ValidateSkillColor(s.Color)
}
