package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/engmath/mathtools/internal/algebra"
)

var gcdCmd = &cobra.Command{
	Use:   "gcd <a> <b>",
	Short: "Greatest common divisor of two integers",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, b, err := parseIntPair(args)
		if err != nil {
			return err
		}
		return printInteger("gcd", map[string]interface{}{"a": a, "b": b}, algebra.GCD(a, b))
	},
}

var lcmCmd = &cobra.Command{
	Use:   "lcm <a> <b>",
	Short: "Least common multiple of two integers",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, b, err := parseIntPair(args)
		if err != nil {
			return err
		}
		if a == 0 && b == 0 {
			return fmt.Errorf("lcm(0, 0) is undefined")
		}
		return printInteger("lcm", map[string]interface{}{"a": a, "b": b}, algebra.LCM(a, b))
	},
}

var srssCmd = &cobra.Command{
	Use:   "srss <value>...",
	Short: "Square root of the sum of the squares",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseFloats(args)
		if err != nil {
			return err
		}
		inputs := map[string]interface{}{"values": v}
		return printScalar("srss", inputs, algebra.SRSS(v...))
	},
}

func init() {
	rootCmd.AddCommand(gcdCmd)
	rootCmd.AddCommand(lcmCmd)
	rootCmd.AddCommand(srssCmd)
}

func parseIntPair(args []string) (int64, int64, error) {
	a, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid integer %q", args[0])
	}
	b, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid integer %q", args[1])
	}
	return a, b, nil
}

type integerResult struct {
	Tool   string `json:"tool" yaml:"tool"`
	Result int64  `json:"result" yaml:"result"`
}

func printInteger(tool string, inputs map[string]interface{}, result int64) error {
	store := openHistory()
	if store != nil {
		defer store.Close()
	}
	record(store, tool, inputs, strconv.FormatInt(result, 10))

	if done, err := emit(integerResult{Tool: tool, Result: result}); done {
		return err
	}
	fmt.Println(result)
	return nil
}
