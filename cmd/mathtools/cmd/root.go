package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/engmath/mathtools/internal/history"
	"github.com/engmath/mathtools/internal/menu"
)

var (
	cfgFile      string
	outputFormat string
	historyPath  string
	noHistory    bool
)

// rootCmd represents the base command. Run with no subcommand it starts
// the interactive menu.
var rootCmd = &cobra.Command{
	Use:   "mathtools",
	Short: "Engineering math toolbox",
	Long: `mathtools bundles everyday mechanical engineering calculations:
cone geometry, section properties, length conversions, and small numeric
helpers. Run without arguments for the interactive menu, or call a tool
directly as a subcommand.`,
	RunE: runInteractive,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mathtools/config)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "table", "output format: table, json or yaml")
	rootCmd.PersistentFlags().StringVar(&historyPath, "history-db", "", "history database path (default is $HOME/.mathtools/history.db)")
	rootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "do not record calculations")
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".mathtools")
		viper.AddConfigPath(configDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	viper.BindEnv("history_db", "MATHTOOLS_HISTORY_DB")
	viper.BindEnv("output", "MATHTOOLS_OUTPUT")

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetString("output") != "" && !rootCmd.PersistentFlags().Changed("output") {
			outputFormat = viper.GetString("output")
		}
	}

	if historyPath == "" {
		historyPath = viper.GetString("history_db")
	}
}

func runInteractive(cmd *cobra.Command, args []string) error {
	store := openHistory()
	if store != nil {
		defer store.Close()
	}

	m := menu.New(os.Stdin, os.Stdout, store)
	if err := m.Run(); err != nil {
		return err
	}
	fmt.Println("Goodbye")
	return nil
}

// openHistory opens the configured history store. Returns nil when
// history is disabled or unavailable; calculations still work, they
// just are not recorded.
func openHistory() history.Store {
	if noHistory {
		return nil
	}

	path := historyPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		dir := filepath.Join(home, ".mathtools")
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil
		}
		path = filepath.Join(dir, "history.db")
	}

	store, err := history.NewSQLiteStore(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: history disabled: %v\n", err)
		return nil
	}
	return store
}

// record stores a finished calculation, best effort.
func record(store history.Store, tool string, inputs map[string]interface{}, result string) {
	if store == nil {
		return
	}
	if err := store.Record(&history.Calculation{Tool: tool, Inputs: inputs, Result: result}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to record calculation: %v\n", err)
	}
}

// IsJSONOutput returns true if JSON output is requested
func IsJSONOutput() bool {
	return outputFormat == "json"
}

// IsYAMLOutput returns true if YAML output is requested
func IsYAMLOutput() bool {
	return outputFormat == "yaml"
}

// emit writes v in the requested structured format. It returns false
// when the format is table, leaving rendering to the caller.
func emit(v interface{}) (bool, error) {
	switch {
	case IsJSONOutput():
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return true, fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(out))
		return true, nil
	case IsYAMLOutput():
		out, err := yaml.Marshal(v)
		if err != nil {
			return true, fmt.Errorf("failed to marshal YAML: %w", err)
		}
		fmt.Print(string(out))
		return true, nil
	}
	return false, nil
}
