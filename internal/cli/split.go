package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"strings"

	"github.com/google/subcommands"

	"github.com/mmynk/splitbill/internal/calculator"
	"github.com/mmynk/splitbill/internal/ledger"
)

type splitCmd struct {
	env    *Env
	name   string
	total  string
	people personFlags
	save   bool
}

func (*splitCmd) Name() string     { return "split" }
func (*splitCmd) Synopsis() string { return "split a bill among participants, optionally saving it" }
func (*splitCmd) Usage() string {
	return `splitbill split -total <amount> -person <name>[=<amount>] ... [-name <bill name>] [-save]

  Divides the total evenly among the participants. A participant given as
  name=amount is pinned to that amount and the rest is shared by the others.
  Pinned participants are marked with '*'.
`
}

func (c *splitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Bill name. Generated from the participants when empty.")
	f.StringVar(&c.total, "total", "", "Bill total.")
	f.Var(&c.people, "person", "Participant as name or name=amount. Repeatable.")
	f.BoolVar(&c.save, "save", false, "Append the bill to history.")
}

func (c *splitCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l := ledger.New()
	l.SetBillName(c.name)
	if err := l.SetTotal(c.total); err != nil {
		fmt.Fprintf(c.env.Err, "Error parsing total: %v\n", err)
		return subcommands.ExitUsageError
	}

	var pinned []int
	var amounts []string
	for i, arg := range c.people {
		name, amount, hasAmount := strings.Cut(arg, "=")
		if err := l.AddPerson(name); err != nil {
			fmt.Fprintf(c.env.Err, "Error adding participant %q: %v\n", arg, err)
			return subcommands.ExitUsageError
		}
		if hasAmount {
			pinned = append(pinned, i)
			amounts = append(amounts, amount)
		}
	}
	for i, idx := range pinned {
		err := l.SetExplicitValue(idx, amounts[i])
		if err != nil && !errors.Is(err, calculator.ErrInvalidSplit) && !errors.Is(err, calculator.ErrMissingInput) {
			fmt.Fprintf(c.env.Err, "Error setting amount for %q: %v\n", c.people[idx], err)
			return subcommands.ExitUsageError
		}
	}

	err := l.Recalculate()
	var unassigned *calculator.UnassignedError
	switch {
	case errors.As(err, &unassigned):
		// every participant is pinned: show the amounts as given
		if math.Abs(unassigned.Remaining) > 1e-9 {
			fmt.Fprintf(c.env.Err, "Warning: %s left unassigned\n", formatAmount(unassigned.Remaining, c.env.Config.Currency))
		}
	case err != nil:
		fmt.Fprintln(c.env.Err, err)
		return subcommands.ExitFailure
	}

	state := l.State()
	fmt.Fprintf(c.env.Out, "Total %s\n", formatAmount(*state.Total, c.env.Config.Currency))
	printPeople(c.env.Out, state.People, c.env.Config.Currency)

	if !c.save {
		return subcommands.ExitSuccess
	}

	history, closer, err := c.env.history(ctx)
	if err != nil {
		fmt.Fprintln(c.env.Err, err)
		return subcommands.ExitFailure
	}
	defer closer.Close()

	if state.BillName == "" {
		l.SetBillName(ledger.DefaultTitle(state.People))
	}
	bill, err := l.Save(ctx, history)
	if err != nil {
		fmt.Fprintf(c.env.Err, "Error saving bill: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(c.env.Out, "Saved %q as %s\n", bill.BillName, bill.ID)
	return subcommands.ExitSuccess
}
