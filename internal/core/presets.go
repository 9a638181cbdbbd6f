package core

// Preset is a built-in puzzle for the web API, the benchmark harness, and
// the visualizer.
type Preset struct {
	ID         string
	Name       string
	Difficulty string
	Text       string
}

// All presets are verified solvable.
var presets = []Preset{
	{
		ID:         "easy_1",
		Name:       "Easy Puzzle 1",
		Difficulty: "easy",
		Text: "####\n" +
			"#. #\n" +
			"#$ #\n" +
			"#@ #\n" +
			"####",
	},
	{
		ID:         "easy_2",
		Name:       "Easy Puzzle 2",
		Difficulty: "easy",
		Text: "######\n" +
			"# @  #\n" +
			"# $  #\n" +
			"#    #\n" +
			"# .  #\n" +
			"######",
	},
	{
		ID:         "easy_3",
		Name:       "Easy Puzzle 3",
		Difficulty: "easy",
		Text: "#####\n" +
			"#.  #\n" +
			"#   #\n" +
			"#$  #\n" +
			"#@  #\n" +
			"#####",
	},
	{
		ID:         "medium_1",
		Name:       "Medium Puzzle 1",
		Difficulty: "medium",
		Text: "####\n" +
			"# .#\n" +
			"#  ###\n" +
			"#*@  #\n" +
			"#  $ #\n" +
			"#  ###\n" +
			"####",
	},
	{
		ID:         "medium_2",
		Name:       "Medium Puzzle 2",
		Difficulty: "medium",
		Text: "######\n" +
			"#    #\n" +
			"# $$ #\n" +
			"# .. #\n" +
			"# @  #\n" +
			"######",
	},
	{
		ID:         "medium_3",
		Name:       "Medium Puzzle 3",
		Difficulty: "medium",
		Text: "########\n" +
			"#      #\n" +
			"# $$$  #\n" +
			"# ...  #\n" +
			"#@     #\n" +
			"########",
	},
	{
		ID:         "hard_1",
		Name:       "Hard Puzzle 1",
		Difficulty: "hard",
		Text: "########\n" +
			"#      #\n" +
			"# .$   #\n" +
			"# . $  #\n" +
			"# .$   #\n" +
			"#  @   #\n" +
			"########",
	},
}

// Presets returns the preset catalog in a stable order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// PresetByID looks up a preset by its identifier.
func PresetByID(id string) (Preset, bool) {
	for _, p := range presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}
