package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	flag "github.com/spf13/pflag"

	"github.com/Israrkhan09/invoice-website/internal/suggest"
)

// runRemind drafts a payment reminder for an outstanding invoice and prints
// it, ready to paste into an email.
func runRemind(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseRemindFlags(args, env)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	amount, err := decimal.NewFromString(flags.amount)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidAmount, flags.amount)
	}

	msg, err := suggest.DisputeMessage(ctx, suggest.DisputeRequest{
		InvoiceNumber: flags.number,
		ClientName:    flags.client,
		AmountDue:     amount,
		DaysOverdue:   flags.days,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(env.Stdout, msg)
	return nil
}
