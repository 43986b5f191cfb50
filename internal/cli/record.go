package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hhmehra/rangelog/internal/app"
	"github.com/hhmehra/rangelog/internal/domain/session/usecases"
	"github.com/hhmehra/rangelog/internal/output"
	"github.com/hhmehra/rangelog/internal/sensor"
)

func NewRecordCmd(deps *Dependencies) *cobra.Command {
	var name string
	var simulate bool

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record one distance-logging session",
		Long:  "Run one recording session in the foreground: poll the rangefinder at the sample interval and append readings to rotated datalog<N>.csv files until the total duration elapses.\nUse --simulate to run without hardware against a scripted sensor.",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			rangefinder, err := buildRangefinder(deps, simulate)
			if err != nil {
				return err
			}
			deps.App.Record.Rangefinder = rangefinder

			formatter.SessionStarted(deps.Config.LogsDir, deps.Config.TotalDuration)

			sess, err := deps.App.Record.Execute(&usecases.RecordOptions{Name: name})
			if err != nil {
				return err
			}

			formatter.SessionComplete(sess.Dir, sess.Segments, sess.Samples)
			formatter.SessionStats(sess.Timeouts, sess.Dropped)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Session name (used in directory name)")
	cmd.Flags().BoolVar(&simulate, "simulate", false, "Use a scripted sensor instead of GPIO hardware")

	return cmd
}

func buildRangefinder(deps *Dependencies, simulate bool) (sensor.Rangefinder, error) {
	if simulate {
		// A slow sweep between ~17cm and ~85cm, with the odd timeout.
		return sensor.NewStubRangefinder(
			1000*time.Microsecond,
			2000*time.Microsecond,
			3500*time.Microsecond,
			5000*time.Microsecond,
			3500*time.Microsecond,
			0,
			2000*time.Microsecond,
		), nil
	}
	return app.NewHardwareRangefinder(deps.Config)
}
