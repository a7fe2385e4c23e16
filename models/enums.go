package models

// Category classifies a habit. The set is closed; anything outside it is
// rejected at the API boundary before a row is written.
type Category string

const (
	CategoryHealth      Category = "health"
	CategoryWork        Category = "work"
	CategoryPersonal    Category = "personal"
	CategoryLearning    Category = "learning"
	CategoryFitness     Category = "fitness"
	CategoryMindfulness Category = "mindfulness"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryHealth, CategoryWork, CategoryPersonal,
		CategoryLearning, CategoryFitness, CategoryMindfulness:
		return true
	}
	return false
}

// Color is a display palette tag for a habit.
type Color string

const (
	ColorEmerald Color = "emerald"
	ColorViolet  Color = "violet"
	ColorRose    Color = "rose"
	ColorAmber   Color = "amber"
	ColorSky     Color = "sky"
	ColorOrange  Color = "orange"
	ColorCyan    Color = "cyan"
	ColorPink    Color = "pink"
)

// Valid reports whether c is one of the palette colors.
func (c Color) Valid() bool {
	switch c {
	case ColorEmerald, ColorViolet, ColorRose, ColorAmber,
		ColorSky, ColorOrange, ColorCyan, ColorPink:
		return true
	}
	return false
}

// Icon is the glyph tag shown next to a habit.
type Icon string

var habitIcons = map[Icon]struct{}{
	"dumbbell": {}, "book-open": {}, "droplets": {}, "moon": {},
	"apple": {}, "brain": {}, "heart": {}, "pencil": {},
	"music": {}, "code": {}, "bike": {}, "leaf": {},
	"sun": {}, "coffee": {}, "target": {}, "zap": {},
}

// Valid reports whether i belongs to the fixed icon set.
func (i Icon) Valid() bool {
	_, ok := habitIcons[i]
	return ok
}
