package main

import (
	"fmt"

	"github.com/fwojciec/introduced"
)

// Run processes the names in order, one to completion before the next.
// Recoverable failures are already folded into outcomes by the pipeline;
// an error returned here (the search-availability precondition) aborts
// the remainder of the batch.
func (c *LookupCmd) Run(deps *Dependencies) error {
	for _, name := range c.Names {
		outcomes, err := deps.Lookup.Run(deps.Ctx, name)
		if err != nil {
			return fmt.Errorf("%s: %s", name, introduced.ErrorMessage(err))
		}
		for _, o := range outcomes {
			fmt.Fprintln(deps.Stdout, introduced.FormatOutcome(o))
		}
	}
	return nil
}
