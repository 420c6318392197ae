package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageValid(t *testing.T) {
	for _, l := range Languages() {
		if !l.Valid() {
			t.Errorf("expected %q to be valid", l)
		}
	}

	assert.False(t, Language("Brainfuck").Valid())
	assert.False(t, Language("python").Valid(), "matching is case sensitive")
	assert.False(t, Language("").Valid())
}

func TestDifficultyValid(t *testing.T) {
	for _, d := range Difficulties() {
		if !d.Valid() {
			t.Errorf("expected %q to be valid", d)
		}
	}

	assert.False(t, Difficulty("Master").Valid())
	assert.False(t, Difficulty("").Valid())
}

func TestEnumListsAreCopies(t *testing.T) {
	langs := Languages()
	langs[0] = "Mutated"
	assert.Equal(t, Language("Python"), Languages()[0])

	levels := Difficulties()
	levels[0] = "Mutated"
	assert.Equal(t, DifficultyBeginner, Difficulties()[0])
}

func TestProjectPatchEmpty(t *testing.T) {
	assert.True(t, ProjectPatch{}.Empty())

	title := "A Valid Title"
	assert.False(t, ProjectPatch{Title: &title}.Empty())

	level := DifficultyExpert
	assert.False(t, ProjectPatch{DifficultyLevel: &level}.Empty())
}
