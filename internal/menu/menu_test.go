package menu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/engmath/mathtools/internal/cones"
	"github.com/engmath/mathtools/internal/history"
)

func runSession(t *testing.T, input string, store history.Store) string {
	t.Helper()
	var out bytes.Buffer
	m := New(strings.NewReader(input), &out, store)
	if err := m.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	return out.String()
}

func TestQuitImmediately(t *testing.T) {
	out := runSession(t, "3\n", nil)

	if !strings.Contains(out, "Welcome to math tools") {
		t.Error("Missing welcome banner")
	}
	if !strings.Contains(out, "1 cones") || !strings.Contains(out, "2 section_modulus") || !strings.Contains(out, "3 quit") {
		t.Errorf("Module menu not rendered:\n%s", out)
	}
}

func TestConesAngleCalculation(t *testing.T) {
	// cones -> angle -> parameters -> quit from function menu
	input := "1\n2\n30\n20\n8.66\n6\n"
	store := history.NewMemoryStore()
	out := runSession(t, input, store)

	if !strings.Contains(out, "Calculate the cone half-angle.") {
		t.Error("Tool doc not printed")
	}
	if !strings.Contains(out, formatFloat(cones.Angle(30, 20, 8.66))) {
		t.Errorf("Result not printed:\n%s", out)
	}

	recent, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 1 || recent[0].Tool != "cones.angle" {
		t.Errorf("Calculation not recorded: %+v", recent)
	}
	if recent[0].Inputs["length"] != 8.66 {
		t.Errorf("Inputs not recorded: %v", recent[0].Inputs)
	}
}

func TestInvalidMenuChoiceReprompts(t *testing.T) {
	out := runSession(t, "9\nzap\n3\n", nil)

	if strings.Count(out, "Invalid choice") != 2 {
		t.Errorf("Expected two re-prompts:\n%s", out)
	}
}

func TestInvalidParameterReprompts(t *testing.T) {
	// cones -> height with one bad parameter value in the middle
	input := "1\n4\n228\nwide\n38\n30\n6\n"
	out := runSession(t, input, nil)

	if !strings.Contains(out, "Invalid Input, try again.") {
		t.Errorf("Bad parameter should re-prompt:\n%s", out)
	}
	if !strings.Contains(out, formatFloat(cones.Height(228, 38, 30))) {
		t.Errorf("Result not printed after re-prompt:\n%s", out)
	}
}

func TestBackReturnsToModuleMenu(t *testing.T) {
	// section_modulus -> back -> quit
	input := "2\n7\n3\n"
	out := runSession(t, input, nil)

	if strings.Count(out, "Select an option:") != 2 {
		t.Errorf("Back should return to the module menu:\n%s", out)
	}
}

func TestSectionBarRendersProperties(t *testing.T) {
	// section_modulus -> bar -> 2 x 0.5 -> quit
	input := "2\n1\n2\n0.5\n8\n"
	out := runSession(t, input, nil)

	for _, want := range []string{"Area: 1.000", "Ixx: 0.333", "Iyy: 0.021", "CG Y: 1.000"} {
		if !strings.Contains(out, want) {
			t.Errorf("Section output missing %q:\n%s", want, out)
		}
	}
}

func TestEndOfInputEndsSession(t *testing.T) {
	// Input ends mid-prompt; the session should end cleanly.
	runSession(t, "1\n1\n60\n", nil)
}
