package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type historyCmd struct {
	env *Env
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list saved bills, oldest first" }
func (*historyCmd) Usage() string {
	return `splitbill history

  Prints every saved bill with its participants' shares.
`
}

func (*historyCmd) SetFlags(*flag.FlagSet) {}

func (c *historyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	history, closer, err := c.env.history(ctx)
	if err != nil {
		fmt.Fprintln(c.env.Err, err)
		return subcommands.ExitFailure
	}
	defer closer.Close()

	bills, err := history.Load(ctx)
	if err != nil {
		fmt.Fprintf(c.env.Err, "Error loading history: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(bills) == 0 {
		fmt.Fprintln(c.env.Out, "No saved bills.")
		return subcommands.ExitSuccess
	}
	for _, bill := range bills {
		printBill(c.env.Out, bill, c.env.Config.Currency)
	}
	return subcommands.ExitSuccess
}

type clearCmd struct {
	env *Env
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete all saved bills" }
func (*clearCmd) Usage() string {
	return `splitbill clear
`
}

func (*clearCmd) SetFlags(*flag.FlagSet) {}

func (c *clearCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	history, closer, err := c.env.history(ctx)
	if err != nil {
		fmt.Fprintln(c.env.Err, err)
		return subcommands.ExitFailure
	}
	defer closer.Close()

	if err := history.Clear(ctx); err != nil {
		fmt.Fprintf(c.env.Err, "Error clearing history: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(c.env.Out, "History cleared.")
	return subcommands.ExitSuccess
}
