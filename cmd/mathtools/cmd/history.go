package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent calculations",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of calculations to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store := openHistory()
	if store == nil {
		return fmt.Errorf("history is not available")
	}
	defer store.Close()

	calcs, err := store.Recent(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if done, err := emit(calcs); done {
		return err
	}

	if len(calcs) == 0 {
		fmt.Println("No calculations recorded")
		return nil
	}

	// Output as table
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Tool", "Inputs", "Result", "When")

	for _, c := range calcs {
		inputs, err := json.Marshal(c.Inputs)
		if err != nil {
			inputs = []byte("?")
		}
		table.Append(
			strconv.FormatInt(c.ID, 10),
			c.Tool,
			string(inputs),
			c.Result,
			c.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}

	table.Render()
	return nil
}
