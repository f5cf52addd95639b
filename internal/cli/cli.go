// Package cli implements the splitbill command line application.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/google/subcommands"

	"github.com/mmynk/splitbill/internal/app"
	"github.com/mmynk/splitbill/internal/config"
	"github.com/mmynk/splitbill/internal/models"
	"github.com/mmynk/splitbill/internal/storage"
)

// Env is what every command needs from the process.
type Env struct {
	Config config.Config
	Out    io.Writer
	Err    io.Writer

	// openHistory is overridden in tests.
	openHistory func(ctx context.Context, cfg config.Config) (storage.History, io.Closer, error)
}

// Register the subcommands.
func Register(c *subcommands.Commander, env *Env) {
	c.Register(&splitCmd{env: env}, "bills")
	c.Register(&historyCmd{env: env}, "history")
	c.Register(&clearCmd{env: env}, "history")
}

func (e *Env) history(ctx context.Context) (storage.History, io.Closer, error) {
	if e.openHistory != nil {
		return e.openHistory(ctx, e.Config)
	}
	history, backend, err := app.OpenHistory(ctx, e.Config)
	if err != nil {
		return nil, nil, err
	}
	return history, backend, nil
}

// formatAmount renders amount in the configured currency. Rounding happens
// here only; stored values keep full precision.
func formatAmount(amount float64, currency string) string {
	if money.GetCurrency(currency) == nil {
		return fmt.Sprintf("%.2f", amount)
	}
	return money.NewFromFloat(amount, currency).Display()
}

func printPeople(w io.Writer, people []models.Person, currency string) {
	width := 0
	for _, p := range people {
		width = max(width, len(p.Name))
	}
	for _, p := range people {
		marker := " "
		if p.IsFixed {
			marker = "*"
		}
		fmt.Fprintf(w, "  %s %-*s  %s\n", marker, width, p.Name, formatAmount(p.Value, currency))
	}
}

func printBill(w io.Writer, bill models.Bill, currency string) {
	fmt.Fprintf(w, "%s  (%s)\n", bill.BillName, bill.ID)
	fmt.Fprintf(w, "  total %s\n", formatAmount(bill.Total, currency))
	printPeople(w, bill.People, currency)
}

// personFlags collects repeated -person flags.
type personFlags []string

func (p *personFlags) String() string { return strings.Join(*p, ",") }

func (p *personFlags) Set(v string) error {
	*p = append(*p, v)
	return nil
}
