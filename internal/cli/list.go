package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hhmehra/rangelog/internal/output"
)

func NewListCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			entries, err := os.ReadDir(deps.Config.LogsDir)
			if err != nil {
				if os.IsNotExist(err) {
					formatter.Info("No sessions found")
					return nil
				}
				return err
			}

			// Filter to directories only
			var dirs []os.DirEntry
			for _, e := range entries {
				if e.IsDir() {
					dirs = append(dirs, e)
				}
			}

			if len(dirs) == 0 {
				formatter.Info("No sessions found")
				return nil
			}

			// Sort by name (which is date-based) descending
			sort.Slice(dirs, func(i, j int) bool {
				return dirs[i].Name() > dirs[j].Name()
			})

			formatter.SessionListHeader()
			for _, d := range dirs {
				segments, samples := countSession(filepath.Join(deps.Config.LogsDir, d.Name()))
				formatter.SessionListItem(d.Name(), segments, samples)
			}

			return nil
		},
	}

	return cmd
}

// countSession counts datalog segment files and their data rows in one
// session directory. Unreadable files count as zero rows.
func countSession(dir string) (segments, samples int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, 0
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, "datalog") || !strings.HasSuffix(name, ".csv") {
			continue
		}
		segments++
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		rows := bytes.Count(data, []byte("\n"))
		if rows > 0 {
			// Discount the header row.
			samples += rows - 1
		}
	}
	return segments, samples
}
