package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/engmath/mathtools/internal/section"
)

// sectionCmd represents the section command
var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Section property calculations",
	Long:  `Centroid, area, moments of inertia, and section moduli for common structural shapes.`,
}

var sectionBarCmd = &cobra.Command{
	Use:   "bar <width> <thickness>",
	Short: "Properties of a rectangular bar",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseFloats(args)
		if err != nil {
			return err
		}
		return printSection("section.bar",
			map[string]interface{}{"width": v[0], "thickness": v[1]},
			section.Bar(v[0], v[1]))
	},
}

var sectionTBeamCmd = &cobra.Command{
	Use:   "tbeam <depth> <web-thick> <flg-width> <flg-thick>",
	Short: "Properties of a T beam",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseFloats(args)
		if err != nil {
			return err
		}
		return printSection("section.tbeam",
			map[string]interface{}{"depth": v[0], "web_thick": v[1], "flg_width": v[2], "flg_thick": v[3]},
			section.TBeam(v[0], v[1], v[2], v[3]))
	},
}

var sectionAngleCmd = &cobra.Command{
	Use:   "angle <long-leg> <short-leg> <thick>",
	Short: "Properties of an angle",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseFloats(args)
		if err != nil {
			return err
		}
		return printSection("section.angle",
			map[string]interface{}{"long_leg": v[0], "short_leg": v[1], "thick": v[2]},
			section.Angle(v[0], v[1], v[2]))
	},
}

var sectionPipeCmd = &cobra.Command{
	Use:   "pipe <od> <thickness>",
	Short: "Properties of a pipe",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseFloats(args)
		if err != nil {
			return err
		}
		return printSection("section.pipe",
			map[string]interface{}{"od": v[0], "thickness": v[1]},
			section.Pipe(v[0], v[1]))
	},
}

var sectionCircleCmd = &cobra.Command{
	Use:   "circle <radius>",
	Short: "Properties of a solid circle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseFloats(args)
		if err != nil {
			return err
		}
		return printSection("section.circle",
			map[string]interface{}{"radius": v[0]},
			section.Circle(v[0]))
	},
}

var sectionIBeamCmd = &cobra.Command{
	Use:   "ibeam <depth> <web-thick> <flg-width> <flg-thick>",
	Short: "Properties of an I beam with equal flanges",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseFloats(args)
		if err != nil {
			return err
		}
		return printSection("section.ibeam",
			map[string]interface{}{"depth": v[0], "web_thick": v[1], "flg_width": v[2], "flg_thick": v[3]},
			section.IBeamEqualFlange(v[0], v[1], v[2], v[3]))
	},
}

func init() {
	rootCmd.AddCommand(sectionCmd)
	sectionCmd.AddCommand(sectionBarCmd)
	sectionCmd.AddCommand(sectionTBeamCmd)
	sectionCmd.AddCommand(sectionAngleCmd)
	sectionCmd.AddCommand(sectionPipeCmd)
	sectionCmd.AddCommand(sectionCircleCmd)
	sectionCmd.AddCommand(sectionIBeamCmd)
}

type sectionResult struct {
	Tool string     `json:"tool" yaml:"tool"`
	CX   [2]float64 `json:"cx" yaml:"cx"`
	CY   [2]float64 `json:"cy" yaml:"cy"`
	Area float64    `json:"area" yaml:"area"`
	Ixx  float64    `json:"ixx" yaml:"ixx"`
	Iyy  float64    `json:"iyy" yaml:"iyy"`
	Sx   [2]float64 `json:"sx" yaml:"sx"`
	Sy   [2]float64 `json:"sy" yaml:"sy"`
}

// printSection writes section properties in the requested format and
// records them.
func printSection(tool string, inputs map[string]interface{}, sec section.Section) error {
	store := openHistory()
	if store != nil {
		defer store.Close()
	}
	record(store, tool, inputs, fmt.Sprintf("area=%g ixx=%g iyy=%g", sec.Area, sec.Ixx, sec.Iyy))

	result := sectionResult{
		Tool: tool,
		CX:   sec.CX,
		CY:   sec.CY,
		Area: sec.Area,
		Ixx:  sec.Ixx,
		Iyy:  sec.Iyy,
		Sx:   sec.Sx(),
		Sy:   sec.Sy(),
	}
	if done, err := emit(result); done {
		return err
	}

	// Output as table
	sx := sec.Sx()
	sy := sec.Sy()
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	table.Append("CG X", fmt.Sprintf("%0.3f / %0.3f", sec.CX[0], sec.CX[1]))
	table.Append("CG Y", fmt.Sprintf("%0.3f / %0.3f", sec.CY[0], sec.CY[1]))
	table.Append("Area", fmt.Sprintf("%0.3f", sec.Area))
	table.Append("Ixx", fmt.Sprintf("%0.3f", sec.Ixx))
	table.Append("Iyy", fmt.Sprintf("%0.3f", sec.Iyy))
	table.Append("Sx", fmt.Sprintf("%0.3f / %0.3f", sx[0], sx[1]))
	table.Append("Sy", fmt.Sprintf("%0.3f / %0.3f", sy[0], sy[1]))

	table.Render()
	return nil
}
