package model

// Color is a closed set of category color keys. Unrecognized keys parse to
// ColorUnknown, which renders with a fixed gray fallback.
type Color string

const (
	ColorBlue    Color = "blue"
	ColorIndigo  Color = "indigo"
	ColorGreen   Color = "green"
	ColorYellow  Color = "yellow"
	ColorPurple  Color = "purple"
	ColorPink    Color = "pink"
	ColorGray    Color = "gray"
	ColorRed     Color = "red"
	ColorOrange  Color = "orange"
	ColorTeal    Color = "teal"
	ColorCyan    Color = "cyan"
	ColorUnknown Color = "unknown"
)

var colorHex = map[Color]string{
	ColorBlue:   "#3b82f6",
	ColorIndigo: "#6366f1",
	ColorGreen:  "#22c55e",
	ColorYellow: "#eab308",
	ColorPurple: "#a855f7",
	ColorPink:   "#ec4899",
	ColorGray:   "#64748b",
	ColorRed:    "#ef4444",
	ColorOrange: "#f97316",
	ColorTeal:   "#14b8a6",
	ColorCyan:   "#06b6d4",
}

const unknownHex = "#999999"

// ParseColor maps a color key to its variant, ColorUnknown on miss.
func ParseColor(s string) Color {
	c := Color(s)
	if _, ok := colorHex[c]; ok {
		return c
	}
	return ColorUnknown
}

// Hex returns the terminal/display hex value for the color. The mapping is
// total: ColorUnknown and any unmapped value yield the gray fallback.
func (c Color) Hex() string {
	if hex, ok := colorHex[c]; ok {
		return hex
	}
	return unknownHex
}

// Colors lists the known color keys in palette order.
func Colors() []Color {
	return []Color{
		ColorBlue, ColorIndigo, ColorGreen, ColorYellow, ColorPurple, ColorPink,
		ColorGray, ColorRed, ColorOrange, ColorTeal, ColorCyan,
	}
}

// Icon is a category icon key from the supported icon set.
type Icon string

// IconUnknown is the fallback variant for unrecognized icon keys.
const IconUnknown Icon = "unknown"

var knownIcons = map[Icon]struct{}{}

var iconNames = []string{
	"BookOpen", "Briefcase", "Coffee", "Code", "Dumbbell", "Gamepad2",
	"Headphones", "Laptop", "Lightbulb", "Music", "Palette", "PenTool",
	"Phone", "Camera", "ShoppingBag", "Utensils", "Video", "Wifi",
	"Anchor", "Archive", "Award", "Baby", "Banknote", "Bath", "Bike",
	"Car", "Cat", "Dog", "Cloud", "Cpu", "DollarSign", "Droplet",
	"FileText", "Film", "Flag", "Gift", "Globe", "Heart", "Home",
	"Image", "Key", "Languages", "Library", "Map", "Mic", "Moon",
	"Package", "Plane", "Rocket", "Scissors", "Search", "Server",
	"Smartphone", "Smile", "Star", "Sun", "Target", "Tool", "Truck",
	"Tv", "Umbrella", "User", "Watch", "Zap",
}

func init() {
	for _, n := range iconNames {
		knownIcons[Icon(n)] = struct{}{}
	}
}

// ParseIcon maps an icon key to its variant, IconUnknown on miss.
func ParseIcon(s string) Icon {
	if _, ok := knownIcons[Icon(s)]; ok {
		return Icon(s)
	}
	return IconUnknown
}

// Icons lists the supported icon keys.
func Icons() []string {
	return iconNames
}

// DefaultCategories is the seed registry written on first run.
func DefaultCategories() []Category {
	return []Category{
		{ID: "work", Name: "Work", Color: ColorBlue, Icon: "Briefcase", SubCategories: []SubCategory{}},
		{ID: "study", Name: "Study", Color: ColorIndigo, Icon: "BookOpen", SubCategories: []SubCategory{
			{ID: "reading", Name: "Reading"},
			{ID: "listening", Name: "Listening"},
			{ID: "english", Name: "English"},
		}},
		{ID: "exercise", Name: "Exercise", Color: ColorGreen, Icon: "Dumbbell", SubCategories: []SubCategory{}},
		{ID: "reading", Name: "Reading", Color: ColorYellow, Icon: "Coffee", SubCategories: []SubCategory{}},
		{ID: "creative", Name: "Creative", Color: ColorPurple, Icon: "Palette", SubCategories: []SubCategory{}},
		{ID: "entertainment", Name: "Leisure", Color: ColorPink, Icon: "Gamepad2", SubCategories: []SubCategory{}},
	}
}
