package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/spf13/cobra"
)

// doctorCmd represents the doctor command
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the local environment",
	Long: `Report host resources and verify that the config directory and history
database are usable.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

type doctorCheck struct {
	Name   string `json:"name" yaml:"name"`
	Status string `json:"status" yaml:"status"`
	Detail string `json:"detail" yaml:"detail"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	var checks []doctorCheck

	checks = append(checks, doctorCheck{
		Name:   "runtime",
		Status: "ok",
		Detail: fmt.Sprintf("%s/%s, %d cores", runtime.GOOS, runtime.GOARCH, runtime.NumCPU()),
	})

	if cpuPercent, err := cpu.Percent(100*time.Millisecond, false); err == nil && len(cpuPercent) > 0 {
		checks = append(checks, doctorCheck{
			Name:   "cpu",
			Status: "ok",
			Detail: fmt.Sprintf("%.1f%% busy", cpuPercent[0]),
		})
	} else {
		checks = append(checks, doctorCheck{Name: "cpu", Status: "warn", Detail: "usage unavailable"})
	}

	if vmem, err := mem.VirtualMemory(); err == nil {
		checks = append(checks, doctorCheck{
			Name:   "memory",
			Status: "ok",
			Detail: fmt.Sprintf("%.1f GiB available of %.1f GiB", gib(vmem.Available), gib(vmem.Total)),
		})
	} else {
		checks = append(checks, doctorCheck{Name: "memory", Status: "warn", Detail: "usage unavailable"})
	}

	if cwd, err := os.Getwd(); err == nil {
		checks = append(checks, doctorCheck{Name: "working dir", Status: "ok", Detail: cwd})
	} else {
		checks = append(checks, doctorCheck{Name: "working dir", Status: "fail", Detail: err.Error()})
	}

	checks = append(checks, checkInstallDir())
	checks = append(checks, checkConfigDir())
	checks = append(checks, checkHistory())

	if done, err := emit(checks); done {
		return err
	}

	// Output as table
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Check", "Status", "Detail")
	for _, c := range checks {
		table.Append(c.Name, c.Status, c.Detail)
	}
	table.Render()

	for _, c := range checks {
		if c.Status == "fail" {
			return fmt.Errorf("environment check failed: %s", c.Name)
		}
	}
	return nil
}

func gib(b uint64) float64 {
	return float64(b) / (1 << 30)
}

// checkInstallDir verifies the directory the launcher switches into.
func checkInstallDir() doctorCheck {
	dir := os.Getenv("MATHTOOLS_HOME")
	if dir == "" {
		exe, err := os.Executable()
		if err != nil {
			return doctorCheck{Name: "install dir", Status: "fail", Detail: err.Error()}
		}
		dir = filepath.Dir(exe)
	}

	info, err := os.Stat(dir)
	switch {
	case err != nil:
		return doctorCheck{Name: "install dir", Status: "fail", Detail: err.Error()}
	case !info.IsDir():
		return doctorCheck{Name: "install dir", Status: "fail", Detail: dir + " is not a directory"}
	}
	return doctorCheck{Name: "install dir", Status: "ok", Detail: dir}
}

func checkConfigDir() doctorCheck {
	home, err := os.UserHomeDir()
	if err != nil {
		return doctorCheck{Name: "config dir", Status: "fail", Detail: err.Error()}
	}
	dir := filepath.Join(home, ".mathtools")
	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		return doctorCheck{Name: "config dir", Status: "ok", Detail: dir + " (will be created on first use)"}
	case err != nil:
		return doctorCheck{Name: "config dir", Status: "fail", Detail: err.Error()}
	case !info.IsDir():
		return doctorCheck{Name: "config dir", Status: "fail", Detail: dir + " is not a directory"}
	}
	return doctorCheck{Name: "config dir", Status: "ok", Detail: dir}
}

func checkHistory() doctorCheck {
	if noHistory {
		return doctorCheck{Name: "history", Status: "ok", Detail: "disabled"}
	}
	store := openHistory()
	if store == nil {
		return doctorCheck{Name: "history", Status: "warn", Detail: "store unavailable"}
	}
	defer store.Close()

	if _, err := store.Recent(1); err != nil {
		return doctorCheck{Name: "history", Status: "fail", Detail: err.Error()}
	}
	return doctorCheck{Name: "history", Status: "ok", Detail: "readable"}
}
