package cmd

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fedconfig/fedconfig/fom"
)

var treeConfigPath string

// treeCmd prints the reference frame hierarchy assembled from a run
// configuration, one frame per line with its create/discover mode.
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the reference frame tree of a run configuration",
	Run: func(cmd *cobra.Command, args []string) {
		bundle, err := fom.LoadRunBundle(treeConfigPath)
		if err != nil {
			logrus.Fatalf("Failed to load run config: %v", err)
		}
		_, reg, err := bundle.Build(nil)
		if err != nil {
			logrus.Fatalf("Configuration invalid: %v", err)
		}
		root := reg.Root()
		if root == nil {
			logrus.Fatalf("Run config %s declares no reference frames", treeConfigPath)
		}
		printFrame(reg, root, 0)
	},
}

func printFrame(reg *fom.Registry, frame *fom.ReferenceFrameDescriptor, depth int) {
	mode := "discover"
	if frame.Object.CreateFlag {
		mode = "create"
	}
	fmt.Printf("%s%s [%s]\n", strings.Repeat("  ", depth), frame.InstanceName(), mode)
	for _, child := range reg.Children(frame.InstanceName()) {
		printFrame(reg, child, depth+1)
	}
}

func init() {
	treeCmd.Flags().StringVar(&treeConfigPath, "config", "", "Path to the federate run YAML file")
	_ = treeCmd.MarkFlagRequired("config")

	rootCmd.AddCommand(treeCmd)
}
