package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/LoadPack/internal/model"
	"github.com/piwi3910/LoadPack/internal/project"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version. The main
// package calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// rootOpts holds the persistent flags shared by every command.
type rootOpts struct {
	verbose    bool
	configPath string
}

// inventoryPath keeps the container presets next to the config file.
func (o *rootOpts) inventoryPath() string {
	return filepath.Join(filepath.Dir(o.configPath), "containers.json")
}

func (o *rootOpts) loadConfig() (model.AppConfig, error) {
	return project.LoadAppConfig(o.configPath)
}

func (o *rootOpts) loadInventory() (model.Inventory, error) {
	return project.LoadInventory(o.inventoryPath())
}

// NewRootCmd builds the loadpack command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOpts{configPath: project.DefaultConfigPath()}

	root := &cobra.Command{
		Use:          "loadpack",
		Short:        "LoadPack packs rectangular loads into a container",
		Long:         `LoadPack places rectangular items into a fixed container with a greedy bottom-left heuristic, trying each item unrotated and then rotated, and reports the wasted area.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("loadpack %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&opts.configPath, "config", opts.configPath, "path to the application config file")

	root.AddCommand(newPackCmd(opts))
	root.AddCommand(newCompareCmd(opts))
	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newContainersCmd(opts))
	root.AddCommand(newConfigCmd(opts))

	return root
}

// Execute runs the loadpack CLI.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// exists reports whether path names an existing file.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
