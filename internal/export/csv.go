// Package export writes transactions and amortization plans as CSV and reads
// transaction forms back from CSV for bulk entry.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"fjacquet/financeos/internal/fileutils"
	"fjacquet/financeos/internal/logging"
	"fjacquet/financeos/internal/models"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter is used when a Writer has no delimiter set.
const DefaultDelimiter = ','

// transactionRow is the CSV layout of an exported transaction.
type transactionRow struct {
	Date        string `csv:"Date"`
	Type        string `csv:"Type"`
	Category    string `csv:"Category"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
	ID          string `csv:"ID"`
}

// planRow is the CSV layout of one amortization month.
type planRow struct {
	Month     int    `csv:"Month"`
	Payment   string `csv:"Payment"`
	Principal string `csv:"Principal"`
	Interest  string `csv:"Interest"`
	Remaining string `csv:"Remaining"`
}

// Writer serialises ledger data as CSV with a configurable delimiter.
type Writer struct {
	Delimiter rune
	Logger    logging.Logger
}

// NewWriter creates a Writer. A zero delimiter means DefaultDelimiter.
func NewWriter(delimiter rune, logger logging.Logger) *Writer {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Writer{Delimiter: delimiter, Logger: logger}
}

func (w *Writer) csvWriter(out io.Writer) *gocsv.SafeCSVWriter {
	cw := csv.NewWriter(out)
	cw.Comma = w.Delimiter
	return gocsv.NewSafeCSVWriter(cw)
}

// WriteTransactions writes transactions in the given order. Amounts keep two
// decimals.
func (w *Writer) WriteTransactions(out io.Writer, transactions []models.Transaction) error {
	rows := make([]transactionRow, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, transactionRow{
			Date:        t.Date,
			Type:        string(t.Type),
			Category:    t.Category,
			Description: t.Description,
			Amount:      t.Amount.StringFixed(2),
			ID:          t.ID,
		})
	}
	if err := gocsv.MarshalCSV(rows, w.csvWriter(out)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WritePlan writes a debt's amortization plan, rounding money to cents.
func (w *Writer) WritePlan(out io.Writer, plan []models.ScheduleRow) error {
	rows := make([]planRow, 0, len(plan))
	for _, r := range plan {
		rows = append(rows, planRow{
			Month:     r.Month,
			Payment:   r.Payment.StringFixed(2),
			Principal: r.Principal.StringFixed(2),
			Interest:  r.Interest.StringFixed(2),
			Remaining: r.Remaining.StringFixed(2),
		})
	}
	if err := gocsv.MarshalCSV(rows, w.csvWriter(out)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// ExportTransactions writes transactions to a CSV file, creating parent
// directories as needed.
func (w *Writer) ExportTransactions(path string, transactions []models.Transaction) error {
	return w.toFile(path, len(transactions), func(out io.Writer) error {
		return w.WriteTransactions(out, transactions)
	})
}

// ExportPlan writes a plan to a CSV file.
func (w *Writer) ExportPlan(path string, plan []models.ScheduleRow) error {
	return w.toFile(path, len(plan), func(out io.Writer) error {
		return w.WritePlan(out, plan)
	})
}

func (w *Writer) toFile(path string, count int, write func(io.Writer) error) (err error) {
	file, err := fileutils.CreateFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing CSV file: %w", cerr)
		}
	}()

	if err := write(file); err != nil {
		w.Logger.WithError(err).Error("Failed to write CSV file", logging.F(logging.FieldOutputFile, path))
		return err
	}
	w.Logger.Info("Wrote CSV file",
		logging.F(logging.FieldOutputFile, path),
		logging.F(logging.FieldCount, count))
	return nil
}

// ReadTransactionForms reads transaction rows written by WriteTransactions (or
// any CSV with the same headers) as raw forms. The ID column is ignored; the
// ledger assigns fresh ids when the forms are added.
func (w *Writer) ReadTransactionForms(in io.Reader) ([]models.TransactionForm, error) {
	reader := csv.NewReader(in)
	reader.Comma = w.Delimiter
	reader.TrimLeadingSpace = true

	var rows []transactionRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV data: %w", err)
	}

	forms := make([]models.TransactionForm, 0, len(rows))
	for _, r := range rows {
		forms = append(forms, models.TransactionForm{
			Type:        r.Type,
			Amount:      r.Amount,
			Category:    r.Category,
			Description: r.Description,
			Date:        r.Date,
		})
	}
	return forms, nil
}
