package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/g-m-twostay/go-trees/Trees"
)

func newBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [values...]",
		Short: "Build a tree from values and print it",
		Example: `  treectl build 8 5 15 12 19 9 13 23 10
  treectl build --kind bst --remove 5,12 8 5 15 12`,
		RunE: runBuild,
	}
	cmd.Flags().String("kind", kindRB, "tree kind: rb or bst")
	cmd.Flags().StringSlice("remove", nil, "values to remove after building")
	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	vs, err := parseValues(args)
	if err != nil {
		return err
	}
	rs, err := parseValues(cfg.Remove)
	if err != nil {
		return err
	}

	t := newTree(cfg.Kind, Trees.WithName("treectl"))
	for _, v := range vs {
		err = t.Insert(v)
		var dup *Trees.DuplicateValueError[float64]
		if err != nil && !errors.As(err, &dup) {
			return err
		}
	}
	for _, v := range rs {
		err = t.Remove(v)
		var nf *Trees.NotFoundError[float64]
		var empty *Trees.EmptyTreeError
		if err != nil && !errors.As(err, &nf) && !errors.As(err, &empty) {
			return err
		}
	}

	w := cmd.OutOrStdout()
	printLevels(w, t, cfg.Kind == kindRB)
	fmt.Fprintf(w, "in-order: %v\n", t.Values())
	fmt.Fprintf(w, "size: %d, height: %d\n", t.Size(), t.Height())
	if rb, ok := t.(*Trees.RBTree[float64]); ok {
		if h, bal := rb.BlackHeight(); bal {
			fmt.Fprintf(w, "black height: %d\n", h)
		}
	}
	return printCheck(w, t.Check())
}
