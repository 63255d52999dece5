// Package menu implements the interactive mode of the toolbox: a
// numbered module menu, a function menu per module, and a prompt per
// parameter.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/engmath/mathtools/internal/cones"
	"github.com/engmath/mathtools/internal/history"
	"github.com/engmath/mathtools/internal/section"
)

// tool is one selectable function: its parameter prompts and how to run
// it once all parameters are collected.
type tool struct {
	name   string
	doc    string
	params []string
	run    func(args []float64) string
}

type module struct {
	name  string
	tools []tool
}

// Menu drives the interactive session.
type Menu struct {
	in      *bufio.Scanner
	out     io.Writer
	store   history.Store
	modules []module
}

// New creates a menu reading choices from in and writing prompts to
// out. store may be nil to skip history recording.
func New(in io.Reader, out io.Writer, store history.Store) *Menu {
	return &Menu{
		in:      bufio.NewScanner(in),
		out:     out,
		store:   store,
		modules: buildModules(),
	}
}

func buildModules() []module {
	return []module{
		{
			name: "cones",
			tools: []tool{
				{
					name:   "distance",
					doc:    "Find the shortest path between two points on a cone.",
					params: []string{"height_point_1", "angle_point_1", "height_point_2", "angle_point_2", "cone_large_end_diameter", "cone_half_angle"},
					run: func(a []float64) string {
						return formatFloat(cones.Distance(a[0], a[1], a[2], a[3], a[4], a[5]))
					},
				},
				{
					name:   "angle",
					doc:    "Calculate the cone half-angle.",
					params: []string{"dia_lg_end", "dia_sm_end", "length"},
					run: func(a []float64) string {
						return formatFloat(cones.Angle(a[0], a[1], a[2]))
					},
				},
				{
					name:   "radius",
					doc:    "Calculate the radius at a location on a cone.",
					params: []string{"dia_lg_end", "half_apex_angle", "location_from_lg_end"},
					run: func(a []float64) string {
						return formatFloat(cones.RadiusAt(a[0], a[1], a[2]))
					},
				},
				{
					name:   "height",
					doc:    "Calculate the height of the frustum of the cone.",
					params: []string{"dia_lg_end", "dia_sm_end", "half_apex_angle"},
					run: func(a []float64) string {
						return formatFloat(cones.Height(a[0], a[1], a[2]))
					},
				},
			},
		},
		{
			name: "section_modulus",
			tools: []tool{
				{
					name:   "bar",
					doc:    "Calculate the properties of a bar.",
					params: []string{"width", "thickness"},
					run: func(a []float64) string {
						return section.Bar(a[0], a[1]).String()
					},
				},
				{
					name:   "tbeam",
					doc:    "Calculate the properties of a T beam.",
					params: []string{"depth", "web_thick", "flg_width", "flg_thick"},
					run: func(a []float64) string {
						return section.TBeam(a[0], a[1], a[2], a[3]).String()
					},
				},
				{
					name:   "angle",
					doc:    "Calculate the properties of an angle.",
					params: []string{"long_leg", "short_leg", "thick"},
					run: func(a []float64) string {
						return section.Angle(a[0], a[1], a[2]).String()
					},
				},
				{
					name:   "pipe",
					doc:    "Calculate the properties of a pipe.",
					params: []string{"od", "thickness"},
					run: func(a []float64) string {
						return section.Pipe(a[0], a[1]).String()
					},
				},
				{
					name:   "circle",
					doc:    "Calculate the properties of a solid circle.",
					params: []string{"radius"},
					run: func(a []float64) string {
						return section.Circle(a[0]).String()
					},
				},
				{
					name:   "I beam equal flange",
					doc:    "Calculate the properties of an I beam with equal flanges.",
					params: []string{"depth", "web_thick", "flg_width", "flg_thick"},
					run: func(a []float64) string {
						return section.IBeamEqualFlange(a[0], a[1], a[2], a[3]).String()
					},
				},
			},
		},
	}
}

// Run drives the session until the user quits or input ends.
func (m *Menu) Run() error {
	fmt.Fprintln(m.out, "Welcome to math tools")
	fmt.Fprintln(m.out, "=====================")

	for {
		names := make([]string, 0, len(m.modules)+1)
		for _, mod := range m.modules {
			names = append(names, mod.name)
		}
		names = append(names, "quit")

		picked, ok := m.choose(names, "Select an option:")
		if !ok || names[picked] == "quit" {
			return nil
		}
		mod := m.modules[picked]

		for {
			toolNames := make([]string, 0, len(mod.tools)+2)
			for _, t := range mod.tools {
				toolNames = append(toolNames, t.name)
			}
			toolNames = append(toolNames, "back", "quit")

			picked, ok := m.choose(toolNames, "Select a function:")
			if !ok || toolNames[picked] == "quit" {
				return nil
			}
			if toolNames[picked] == "back" {
				break
			}

			if err := m.execute(mod.name, mod.tools[picked]); err != nil {
				return err
			}
		}
	}
}

// choose prints a numbered menu and reads until a valid selection. The
// second return is false when input ends.
func (m *Menu) choose(options []string, msg string) (int, bool) {
	fmt.Fprintln(m.out, msg)
	for i, opt := range options {
		fmt.Fprintf(m.out, "%d %s\n", i+1, opt)
	}

	for {
		line, ok := m.readLine()
		if !ok {
			return 0, false
		}
		if n, err := strconv.Atoi(strings.TrimSpace(line)); err == nil && n > 0 && n <= len(options) {
			fmt.Fprintln(m.out)
			return n - 1, true
		}
		fmt.Fprintf(m.out, "Invalid choice %s, try again.\n", line)
	}
}

// execute prompts for each parameter, runs the tool, and prints and
// records the result.
func (m *Menu) execute(moduleName string, t tool) error {
	fmt.Fprintln(m.out, t.doc)

	args := make([]float64, 0, len(t.params))
	inputs := make(map[string]interface{}, len(t.params))
	for _, param := range t.params {
		val, ok := m.promptFloat(param)
		if !ok {
			return nil
		}
		args = append(args, val)
		inputs[param] = val
	}

	result := t.run(args)
	fmt.Fprintf(m.out, "\n%s\n\n", result)

	if m.store != nil {
		// Best effort; an unusable history file should not break
		// the session.
		m.store.Record(&history.Calculation{
			Tool:   moduleName + "." + t.name,
			Inputs: inputs,
			Result: result,
		})
	}

	return nil
}

// promptFloat asks for one parameter until it parses. The second return
// is false when input ends.
func (m *Menu) promptFloat(name string) (float64, bool) {
	for {
		fmt.Fprintf(m.out, "%s: ", name)
		line, ok := m.readLine()
		if !ok {
			return 0, false
		}
		val, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err == nil {
			return val, true
		}
		fmt.Fprintln(m.out, "Invalid Input, try again.")
	}
}

func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
