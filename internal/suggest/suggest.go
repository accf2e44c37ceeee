// Package suggest provides the canned data sources behind the CLI's sample
// and enrichment features: brand kits, expense matching, client lookup and
// dispute reminders. Every source answers from fixture data after a short
// delay and honors context cancellation. Callers must treat the results as
// ordinary untrusted input; nothing here is authoritative.
package suggest

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	invoicepdf "github.com/Israrkhan09/invoice-website"
)

// Sentinel errors for suggestion lookups.
var (
	ErrUnknownClient    = errors.New("no profile for client")
	ErrMissingReference = errors.New("invoice number required")
)

// latency simulates a remote suggestion service. Tests shorten it.
var latency = 150 * time.Millisecond

// wait blocks for the canned latency or until ctx is cancelled.
func wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t := time.NewTimer(latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// BrandKit is a named theme suggestion with marketing copy attached.
type BrandKit struct {
	ID      string
	Name    string
	Tagline string
	Theme   invoicepdf.Theme
}

var kitTaglines = map[string]string{
	"classic": "dependable blue for everyday billing",
	"forest":  "calm greens for studios and outdoor trades",
	"crimson": "bold red with serif headings",
	"slate":   "muted monochrome set in monospace",
}

// BrandKits returns the built-in theme presets dressed up as brand
// suggestions. Record IDs are fresh on every call.
func BrandKits(ctx context.Context) ([]BrandKit, error) {
	if err := wait(ctx); err != nil {
		return nil, err
	}

	presets := invoicepdf.Presets()
	kits := make([]BrandKit, 0, len(presets))
	for _, p := range presets {
		kits = append(kits, BrandKit{
			ID:      uuid.NewString(),
			Name:    p.Name,
			Tagline: kitTaglines[p.Name],
			Theme:   p.Theme,
		})
	}
	return kits, nil
}

// Expense is a matched expense candidate. Its amount is meant to become a
// line item rate, so it carries an exact decimal.
type Expense struct {
	ID          string
	Description string
	Category    string
	Amount      decimal.Decimal
}

type cannedExpense struct {
	description string
	category    string
	amount      string
	keywords    []string
}

var expenseCatalog = []cannedExpense{
	{
		description: "Logo and brand identity design",
		category:    "design",
		amount:      "450.00",
		keywords:    []string{"design", "logo", "brand", "identity"},
	},
	{
		description: "Responsive website build",
		category:    "development",
		amount:      "1200.00",
		keywords:    []string{"website", "web", "build", "development"},
	},
	{
		description: "Monthly hosting and maintenance",
		category:    "hosting",
		amount:      "19.99",
		keywords:    []string{"hosting", "maintenance", "server"},
	},
	{
		description: "Copywriting for landing page",
		category:    "content",
		amount:      "320.00",
		keywords:    []string{"copy", "copywriting", "content", "landing"},
	},
	{
		description: "Strategy consultation",
		category:    "consulting",
		amount:      "150.00",
		keywords:    []string{"consulting", "consultation", "strategy", "call"},
	},
	{
		description: "Domain registration renewal",
		category:    "hosting",
		amount:      "14.50",
		keywords:    []string{"domain", "renewal", "registration"},
	},
}

// MatchExpenses returns expense candidates whose keywords appear in the
// free-form note, most specific first in catalog order. An unrecognized note
// yields an empty slice, not an error.
func MatchExpenses(ctx context.Context, note string) ([]Expense, error) {
	if err := wait(ctx); err != nil {
		return nil, err
	}

	lower := strings.ToLower(note)
	var matches []Expense
	for _, c := range expenseCatalog {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				matches = append(matches, Expense{
					ID:          uuid.NewString(),
					Description: c.description,
					Category:    c.category,
					Amount:      decimal.RequireFromString(c.amount),
				})
				break
			}
		}
	}
	return matches, nil
}

// ClientProfile is enrichment data for a known billing contact.
type ClientProfile struct {
	ID      string
	Name    string
	Company string
	Email   string
	Phone   string
	Address string
}

var clientDirectory = map[string]ClientProfile{
	"globex.test": {
		Name:    "Globex LLC",
		Company: "Globex LLC",
		Email:   "ap@globex.test",
		Phone:   "+1-555-0142",
		Address: "742 Harbor Blvd\nPort Vista, CA 93011",
	},
	"acme.test": {
		Name:    "Acme Studio",
		Company: "Acme Studio LLC",
		Email:   "billing@acme.test",
		Phone:   "+1-555-0100",
		Address: "100 Main St\nSpringfield, IL 62704",
	},
	"initech.test": {
		Name:    "Initech Inc",
		Company: "Initech Inc",
		Email:   "accounts@initech.test",
		Phone:   "+1-555-0183",
		Address: "4120 Freidrich Ln\nAustin, TX 78744",
	},
}

// EnrichClient looks up a billing profile by email domain. Unknown domains
// return ErrUnknownClient; the caller decides whether that is a problem.
func EnrichClient(ctx context.Context, email string) (*ClientProfile, error) {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return nil, fmt.Errorf("parsing email: %w", err)
	}

	if err := wait(ctx); err != nil {
		return nil, err
	}

	at := strings.LastIndex(addr.Address, "@")
	domain := strings.ToLower(addr.Address[at+1:])
	profile, ok := clientDirectory[domain]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownClient, domain)
	}

	profile.ID = uuid.NewString()
	return &profile, nil
}

// DisputeRequest describes the overdue invoice a reminder is written for.
type DisputeRequest struct {
	InvoiceNumber string
	ClientName    string
	AmountDue     decimal.Decimal
	DaysOverdue   int
}

// DisputeMessage writes a payment reminder whose tone follows how overdue
// the invoice is. The text is canned; only the framing fields vary.
func DisputeMessage(ctx context.Context, req DisputeRequest) (string, error) {
	if strings.TrimSpace(req.InvoiceNumber) == "" {
		return "", ErrMissingReference
	}

	if err := wait(ctx); err != nil {
		return "", err
	}

	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		name = "there"
	}
	amount := "$" + req.AmountDue.StringFixed(2)

	switch {
	case req.DaysOverdue <= 0:
		return fmt.Sprintf(
			"Hi %s,\n\nA quick note that invoice %s for %s is coming due. No action needed if payment is already on its way.\n\nThank you!",
			name, req.InvoiceNumber, amount), nil
	case req.DaysOverdue <= 14:
		return fmt.Sprintf(
			"Hi %s,\n\nFriendly reminder that invoice %s for %s is now %d days past due. Could you let us know when to expect payment?\n\nThanks for your help.",
			name, req.InvoiceNumber, amount, req.DaysOverdue), nil
	case req.DaysOverdue <= 45:
		return fmt.Sprintf(
			"Hi %s,\n\nInvoice %s for %s remains unpaid %d days past its due date. Please arrange payment or reply with a payment date this week.\n\nRegards.",
			name, req.InvoiceNumber, amount, req.DaysOverdue), nil
	default:
		return fmt.Sprintf(
			"Hi %s,\n\nDespite earlier reminders, invoice %s for %s is %d days overdue. Please settle the balance within 7 days to avoid the account being placed on hold.\n\nRegards.",
			name, req.InvoiceNumber, amount, req.DaysOverdue), nil
	}
}
