package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/g-m-twostay/go-trees/Trees"
)

var configPath string

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "treectl",
		Short: "Build, inspect and verify binary search and red-black trees",
		Long: `treectl builds trees from the command line and checks their invariants.

Commands:
  build     Build a tree from values, remove some, print it
  verify    Run a random insert/remove workload with checks after every mutation`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().String("log-level", logrus.WarnLevel.String(), "tree log level")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	rootCmd.AddCommand(newBuildCommand(), newVerifyCommand())
	return rootCmd
}

// setup loads the config and applies its process wide parts.
func setup(cmd *cobra.Command) (*Config, error) {
	cfg, err := loadConfig(cmd, configPath)
	if err != nil {
		return nil, err
	}
	lvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	Trees.Log.SetLevel(lvl)
	Trees.Log.SetOutput(cmd.ErrOrStderr())
	if cfg.NoColor {
		color.NoColor = true
	}
	return cfg, nil
}

// tree is what the commands need from both kinds.
type tree interface {
	Trees.OrderedTree[float64]
	LevelNodes() [][]*Trees.Node[float64]
	Height() int
}

func newTree(kind string, opts ...Trees.Option) tree {
	if kind == kindBST {
		return Trees.NewBSTree[float64](opts...)
	}
	return Trees.NewRBTree[float64](opts...)
}

func parseValues(args []string) ([]float64, error) {
	vs := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", a, err)
		}
		vs[i] = v
	}
	return vs, nil
}
