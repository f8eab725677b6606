package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"catalog/pkg/sumton"
)

var defaultInputs = []int64{5, 100, 1000, 10000, 100000}

func main() {
	inputs, err := parseInputs(os.Args[1:])
	if err != nil {
		logrus.WithError(err).Fatal("invalid arguments")
	}
	if err := run(os.Stdout, inputs); err != nil {
		logrus.WithError(err).Fatal("sum-to-n failed")
	}
}

func parseInputs(args []string) ([]int64, error) {
	if len(args) == 0 {
		return defaultInputs, nil
	}
	inputs := make([]int64, 0, len(args))
	for _, arg := range args {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("expected an integer, got %q", arg)
		}
		inputs = append(inputs, n)
	}
	return inputs, nil
}

func run(w io.Writer, inputs []int64) error {
	for i, n := range inputs {
		result, err := sumton.Compare(n)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Testing sumToN(%d):\n", n)
		fmt.Fprintf(w, "Loop approach: %d\n", result.Loop)
		if result.RecursiveSkipped {
			fmt.Fprintf(w, "Recursive approach: skipped, depth exceeds %d\n", sumton.MaxRecursiveN)
		} else {
			fmt.Fprintf(w, "Recursive approach: %d\n", result.Recursive)
		}
		fmt.Fprintf(w, "Math approach: %d\n", result.Formula)
	}
	return nil
}
