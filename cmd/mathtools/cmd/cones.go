package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/engmath/mathtools/internal/cones"
)

// conesCmd represents the cones command
var conesCmd = &cobra.Command{
	Use:   "cones",
	Short: "Cone geometry calculations",
	Long:  `Calculations on conical frustums: half angles, local radii, frustum heights, and surface distances.`,
}

var conesDistanceCmd = &cobra.Command{
	Use:   "distance <height1> <angle1> <height2> <angle2> <large-end-dia> <half-angle>",
	Short: "Shortest path between two points on a cone surface",
	Args:  cobra.ExactArgs(6),
	RunE:  runConesDistance,
}

var conesAngleCmd = &cobra.Command{
	Use:   "angle <large-end-dia> <small-end-dia> <length>",
	Short: "Cone half-angle from end diameters and axial length",
	Args:  cobra.ExactArgs(3),
	RunE:  runConesAngle,
}

var conesRadiusCmd = &cobra.Command{
	Use:   "radius <large-end-dia> <half-apex-angle> <location>",
	Short: "Radius at an axial distance from the large end",
	Args:  cobra.ExactArgs(3),
	RunE:  runConesRadius,
}

var conesHeightCmd = &cobra.Command{
	Use:   "height <large-end-dia> <small-end-dia> <half-apex-angle>",
	Short: "Height of the frustum of a cone",
	Args:  cobra.ExactArgs(3),
	RunE:  runConesHeight,
}

func init() {
	rootCmd.AddCommand(conesCmd)
	conesCmd.AddCommand(conesDistanceCmd)
	conesCmd.AddCommand(conesAngleCmd)
	conesCmd.AddCommand(conesRadiusCmd)
	conesCmd.AddCommand(conesHeightCmd)
}

// parseFloats converts positional arguments to floats.
func parseFloats(args []string) ([]float64, error) {
	vals := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", arg)
		}
		vals[i] = v
	}
	return vals, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type scalarResult struct {
	Tool   string  `json:"tool" yaml:"tool"`
	Result float64 `json:"result" yaml:"result"`
}

// printScalar writes a single-number result in the requested format and
// records it.
func printScalar(tool string, inputs map[string]interface{}, result float64) error {
	store := openHistory()
	if store != nil {
		defer store.Close()
	}
	record(store, tool, inputs, formatFloat(result))

	if done, err := emit(scalarResult{Tool: tool, Result: result}); done {
		return err
	}
	fmt.Println(formatFloat(result))
	return nil
}

func runConesDistance(cmd *cobra.Command, args []string) error {
	v, err := parseFloats(args)
	if err != nil {
		return err
	}

	result := cones.Distance(v[0], v[1], v[2], v[3], v[4], v[5])
	return printScalar("cones.distance", map[string]interface{}{
		"height_point_1":     v[0],
		"angle_point_1":      v[1],
		"height_point_2":     v[2],
		"angle_point_2":      v[3],
		"large_end_diameter": v[4],
		"half_angle":         v[5],
	}, result)
}

func runConesAngle(cmd *cobra.Command, args []string) error {
	v, err := parseFloats(args)
	if err != nil {
		return err
	}

	result := cones.Angle(v[0], v[1], v[2])
	return printScalar("cones.angle", map[string]interface{}{
		"large_end_diameter": v[0],
		"small_end_diameter": v[1],
		"length":             v[2],
	}, result)
}

func runConesRadius(cmd *cobra.Command, args []string) error {
	v, err := parseFloats(args)
	if err != nil {
		return err
	}

	result := cones.RadiusAt(v[0], v[1], v[2])
	return printScalar("cones.radius", map[string]interface{}{
		"large_end_diameter":      v[0],
		"half_apex_angle":         v[1],
		"location_from_large_end": v[2],
	}, result)
}

func runConesHeight(cmd *cobra.Command, args []string) error {
	v, err := parseFloats(args)
	if err != nil {
		return err
	}

	result := cones.Height(v[0], v[1], v[2])
	return printScalar("cones.height", map[string]interface{}{
		"large_end_diameter": v[0],
		"small_end_diameter": v[1],
		"half_apex_angle":    v[2],
	}, result)
}
