package cli

import (
	"github.com/spf13/cobra"

	"github.com/hhmehra/rangelog/config"
	"github.com/hhmehra/rangelog/internal/app"
	"github.com/hhmehra/rangelog/internal/version"
)

type Dependencies struct {
	App    *app.App
	Config *config.Config
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rangelog",
		Short: "Log ultrasonic distance readings to rotated CSV files",
		Long:  "A data logger for HC-SR04 ultrasonic rangefinders.\nRecords timestamped distance readings into sequentially-rotated CSV segment files for a fixed duration.",
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.AddCommand(NewRecordCmd(deps))
	rootCmd.AddCommand(NewListCmd(deps))
	rootCmd.AddCommand(NewDoctorCmd(deps))

	return rootCmd
}
