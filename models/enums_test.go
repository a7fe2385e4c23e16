package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryValid(t *testing.T) {
	for _, c := range []Category{
		CategoryHealth, CategoryWork, CategoryPersonal,
		CategoryLearning, CategoryFitness, CategoryMindfulness,
	} {
		assert.True(t, c.Valid(), "%s", c)
	}
	assert.False(t, Category("sports").Valid())
	assert.False(t, Category("").Valid())
	assert.False(t, Category("Health").Valid(), "tags are case sensitive")
}

func TestColorValid(t *testing.T) {
	assert.True(t, ColorEmerald.Valid())
	assert.True(t, ColorPink.Valid())
	assert.False(t, Color("magenta").Valid())
	assert.False(t, Color("").Valid())
}

func TestIconValid(t *testing.T) {
	assert.True(t, Icon("dumbbell").Valid())
	assert.True(t, Icon("book-open").Valid())
	assert.False(t, Icon("sword").Valid())
	assert.False(t, Icon("").Valid())
}
