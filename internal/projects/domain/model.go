package domain

import "time"

// Field length bounds enforced on every create and update.
const (
	TitleMinLen       = 3
	TitleMaxLen       = 200
	DescriptionMinLen = 10
	DescriptionMaxLen = 2000
	LanguageMaxLen    = 50
)

// Language is the primary programming language of a project.
// Only the values returned by Languages() are accepted at the boundary.
type Language string

// Difficulty is the difficulty level of a project.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
	DifficultyExpert       Difficulty = "Expert"
)

var languages = []Language{
	"Python", "JavaScript", "Java", "C++", "C", "C#",
	"Go", "Rust", "TypeScript", "Ruby", "PHP", "Swift",
	"Kotlin", "R", "MATLAB", "Scala", "Perl", "SQL", "Other",
}

var difficulties = []Difficulty{
	DifficultyBeginner,
	DifficultyIntermediate,
	DifficultyAdvanced,
	DifficultyExpert,
}

// Languages returns the accepted programming languages in declaration order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// Difficulties returns the accepted difficulty levels in ascending order.
func Difficulties() []Difficulty {
	out := make([]Difficulty, len(difficulties))
	copy(out, difficulties)
	return out
}

func (l Language) Valid() bool {
	for _, v := range languages {
		if l == v {
			return true
		}
	}
	return false
}

func (d Difficulty) Valid() bool {
	for _, v := range difficulties {
		if d == v {
			return true
		}
	}
	return false
}

// Project represents a single CS project entry.
// It is intentionally storage-agnostic and used across repository and HTTP layers.
// ID and CreatedAt are assigned by the store at creation time and never change.
type Project struct {
	ID                  string     `json:"id" firestore:"-"`
	Title               string     `json:"title" firestore:"title"`
	Description         string     `json:"description" firestore:"description"`
	ProgrammingLanguage Language   `json:"programming_language" firestore:"programming_language"`
	DifficultyLevel     Difficulty `json:"difficulty_level" firestore:"difficulty_level"`
	CreatedAt           time.Time  `json:"createdAt" firestore:"createdAt"`
}

// ProjectPatch carries a partial update. Nil fields are left untouched.
type ProjectPatch struct {
	Title               *string     `json:"title"`
	Description         *string     `json:"description"`
	ProgrammingLanguage *Language   `json:"programming_language"`
	DifficultyLevel     *Difficulty `json:"difficulty_level"`
}

// Empty reports whether the patch carries no fields at all.
func (p ProjectPatch) Empty() bool {
	return p.Title == nil && p.Description == nil &&
		p.ProgrammingLanguage == nil && p.DifficultyLevel == nil
}
