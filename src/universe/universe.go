package universe

import (
	"sort"

	"github.com/pkg/errors"
)

// Template represent the seeding template which can used to settle the grid with predefined data
type Template struct {
	Name        string  // template name
	Descr       string  // template descr
	Coordinates [][]int // array of [x,y] coordinates
}

var templates = map[string]Template{
	"sample": {
		"sample",
		"the test sample with 3 stable patterns",
		[][]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 3}},
	},
	"blinker": {
		"blinker",
		"period 2 oscillator",
		[][]int{{2, 1}, {3, 1}, {4, 1}},
	},
	"glider": {
		"glider",
		"the smallest spaceship, moves diagonally",
		[][]int{{2, 1}, {3, 2}, {1, 3}, {2, 3}, {3, 3}},
	},
}

// TemplateNames returns the sorted names of the built-in templates
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for k := range templates {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// SettleTemplate populates the grid with the named template
func SettleTemplate(g *Grid, name string) error {
	tmpl, ok := templates[name]
	if !ok {
		return errors.Errorf("unknown template %q", name)
	}
	Settle(g, tmpl.Coordinates)
	return nil
}

// Settle makes alive the cells at the x,y coordinates
// coordinates outside the grid are skipped
func Settle(g *Grid, vc [][]int) {
	g.version++
	for _, v := range vc {
		if !g.Contains(v[0], v[1]) {
			continue
		}
		g.rows[v[1]][v[0]] = Alive
	}
}
