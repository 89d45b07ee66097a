// Command datawrangling walks through loading, cleaning, reshaping,
// aggregating and plotting tabular data, and exposes the same steps as
// subcommands over local files or URLs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	cfg := &config{}

	root := &cobra.Command{
		Use:           "datawrangling",
		Short:         "Data cooking: load, clean, reshape, aggregate and plot tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}
			*cfg = *loaded
			return nil
		},
	}
	bindFlags(root, v)

	root.AddCommand(
		newDemoCmd(cfg),
		newDescribeCmd(cfg),
		newConvertCmd(cfg),
		newGroupByCmd(cfg),
		newPlotCmd(cfg),
		newRegressCmd(cfg),
		newGotaCmd(cfg),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
