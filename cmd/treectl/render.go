package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/g-m-twostay/go-trees/Trees"
)

var (
	redNode   = color.New(color.FgRed, color.Bold)
	blackNode = color.New(color.FgHiBlack, color.Bold)
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
)

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// printLevels writes one line per tree level. With colors, red-black nodes are
// painted by their color; without, RB nodes get an R/B suffix.
func printLevels(w io.Writer, t tree, colored bool) {
	for d, l := range t.LevelNodes() {
		fmt.Fprintf(w, "%d:", d)
		for _, n := range l {
			s := formatValue(n.Value())
			switch {
			case !colored:
			case color.NoColor:
				s += "(" + n.Color().String()[:1] + ")"
			case n.Color() == Trees.Red:
				s = redNode.Sprint(s)
			default:
				s = blackNode.Sprint(s)
			}
			fmt.Fprint(w, " ", s)
		}
		fmt.Fprintln(w)
	}
}

// printCheck reports the result of Check and hands the error back.
func printCheck(w io.Writer, err error) error {
	if err != nil {
		failColor.Fprintf(w, "check failed: %v\n", err)
		return err
	}
	okColor.Fprintln(w, "check ok")
	return nil
}
