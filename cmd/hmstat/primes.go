package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/scottcagno/hashmaps/pkg/hashmap"
)

var primesCmd = &cobra.Command{
	Use:   "primes N...",
	Short: "Print the table capacity each requested size is rounded to",
	Args:  cobra.MinimumNArgs(1),
	RunE:  execPrimes,
}

func execPrimes(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return errors.Wrapf(err, "invalid size %q", arg)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n",
			humanize.Comma(int64(n)), humanize.Comma(int64(hashmap.NextPrime(n))))
	}
	return nil
}
