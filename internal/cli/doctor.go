package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hhmehra/rangelog/internal/output"
	"github.com/hhmehra/rangelog/internal/sensor"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(os.Stdout)
			ok := true

			pins := fmt.Sprintf("trigger=%s echo=%s", deps.Config.TriggerPin, deps.Config.EchoPin)
			if err := sensor.CheckGPIO(deps.Config.TriggerPin, deps.Config.EchoPin); err != nil {
				f.SetupCheck("GPIO", false, err.Error())
				ok = false
			} else {
				f.SetupCheck("GPIO", true, pins)
			}

			if err := checkWritable(deps.Config.LogsDir); err != nil {
				f.SetupCheck("Logs directory", false, err.Error())
				ok = false
			} else {
				f.SetupCheck("Logs directory", true, deps.Config.LogsDir)
			}

			f.SetupCheck("Recording window", true, fmt.Sprintf("%s total, %s per segment, sampling every %s",
				deps.Config.TotalDuration, deps.Config.SegmentDuration, deps.Config.SampleInterval))

			if ok {
				f.Success("\nAll prerequisites met. Ready to record!")
			} else {
				f.Warning("\nSome prerequisites are missing. Use 'record --simulate' to test without hardware.")
			}
			return nil
		},
	}
}

// checkWritable proves the log store accepts writes the way a session
// will: create, write, remove.
func checkWritable(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	probe := filepath.Join(dir, ".doctor")
	if err := os.WriteFile(probe, []byte("ok\n"), 0o644); err != nil {
		return err
	}
	return os.Remove(probe)
}
