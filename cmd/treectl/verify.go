package main

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/g-m-twostay/go-trees/Trees"
)

const defaultVerifyN = 10000

func newVerifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Run a random workload, checking the tree after every mutation",
		RunE:  runVerify,
	}
	cmd.Flags().String("kind", kindRB, "tree kind: rb or bst")
	cmd.Flags().Int("n", defaultVerifyN, "number of operations")
	cmd.Flags().Int64("seed", 0, "random seed")
	return cmd
}

type verifyStats struct {
	inserts, removes, dups, misses int
}

func runVerify(cmd *cobra.Command, _ []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	t := newTree(cfg.Kind, Trees.WithName("verify"))
	st, err := verify(t, cfg.N, cfg.Seed)

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "ops: %d, inserts: %d, removes: %d, duplicates: %d, misses: %d, size: %d\n",
		cfg.N, st.inserts, st.removes, st.dups, st.misses, t.Size())
	return printCheck(w, err)
}

// verify runs n random operations over values in [0, n) and returns the first
// Check failure.
func verify(t tree, n int, seed int64) (verifyStats, error) {
	var st verifyStats
	rg := rand.New(rand.NewSource(seed))
	span := max(n/2, 1)
	for i := range n {
		v := float64(rg.Intn(span))
		if rg.Intn(3) == 0 {
			err := t.Remove(v)
			var nf *Trees.NotFoundError[float64]
			var empty *Trees.EmptyTreeError
			switch {
			case err == nil:
				st.removes++
			case errors.As(err, &nf), errors.As(err, &empty):
				st.misses++
			default:
				return st, err
			}
		} else {
			err := t.Insert(v)
			var dup *Trees.DuplicateValueError[float64]
			switch {
			case err == nil:
				st.inserts++
			case errors.As(err, &dup):
				st.dups++
			default:
				return st, err
			}
		}
		if err := t.Check(); err != nil {
			Trees.Log.WithFields(logrus.Fields{"op": i, "value": v}).Error("check failed")
			return st, err
		}
	}
	if got := int(t.Size()); got != st.inserts-st.removes {
		return st, fmt.Errorf("size is %d, want %d", got, st.inserts-st.removes)
	}
	return st, nil
}
