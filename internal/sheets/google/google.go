// Package google mirrors donors and expenses into a Google spreadsheet using
// a service account.
package google

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"festival/internal/core"
	"festival/internal/log"
	ports "festival/internal/sheets"
)

const (
	DefaultDonorsSheet   = "Donors"
	DefaultExpensesSheet = "Expenses"
)

var _ ports.MirrorWriter = (*Client)(nil)

// Config selects the spreadsheet and credentials. One of CredentialsJSON or
// CredentialsFile is required.
type Config struct {
	SpreadsheetID   string
	CredentialsJSON string
	CredentialsFile string
	DonorsSheet     string
	ExpensesSheet   string
}

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	donorsSheet   string
	expensesSheet string
	logger        *log.Logger
}

// NewClient creates a Sheets client authenticated as a service account.
func NewClient(ctx context.Context, cfg Config, logger *log.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.SpreadsheetID) == "" {
		return nil, errors.New("missing spreadsheet id")
	}
	if logger == nil {
		logger = log.Discard()
	}
	logger = logger.WithComponent(log.ComponentSheets)

	creds, err := credentials(cfg)
	if err != nil {
		return nil, err
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(creds),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	logger.InfoContext(ctx, "Google Sheets service created", "spreadsheet_id", cfg.SpreadsheetID)

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		donorsSheet:   orDefault(cfg.DonorsSheet, DefaultDonorsSheet),
		expensesSheet: orDefault(cfg.ExpensesSheet, DefaultExpensesSheet),
		logger:        logger,
	}, nil
}

func credentials(cfg Config) ([]byte, error) {
	switch {
	case strings.TrimSpace(cfg.CredentialsJSON) != "":
		return []byte(cfg.CredentialsJSON), nil
	case cfg.CredentialsFile != "":
		b, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		return b, nil
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON or GOOGLE_SERVICE_ACCOUNT_FILE)")
	}
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}

func (c *Client) WriteDonors(ctx context.Context, donors []core.Donor) error {
	return c.replace(ctx, c.donorsSheet, DonorRows(donors))
}

func (c *Client) WriteExpenses(ctx context.Context, expenses []core.Expense) error {
	return c.replace(ctx, c.expensesSheet, ExpenseRows(expenses))
}

// replace clears the sheet and writes rows from A1. The two calls are not
// atomic; a reader may briefly see an empty sheet.
func (c *Client) replace(ctx context.Context, sheet string, rows [][]any) error {
	if c.svc == nil {
		return errors.New("sheets service not initialized")
	}

	if _, err := c.svc.Spreadsheets.Values.Clear(c.spreadsheetID, sheet+"!A:Z", &gsheet.ClearValuesRequest{}).
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear %s: %w", sheet, err)
	}

	vr := &gsheet.ValueRange{Values: rows}
	if _, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, sheet+"!A1", vr).
		ValueInputOption("RAW").Context(ctx).Do(); err != nil {
		return fmt.Errorf("update %s: %w", sheet, err)
	}

	c.logger.InfoContext(ctx, "Mirrored sheet", "sheet", sheet, log.FieldCount, len(rows)-2)
	return nil
}
