// Package render turns assembled statements into downloadable documents.
package render

import (
	"bytes"
	"fmt"
	"strconv"

	"consultancy-ledger/internal/domain/billing"

	"github.com/jung-kurt/gofpdf"
)

const dateLayout = "2006-01-02"

// StatementPDF renders a statement as a single-page A4 bill: the customer
// profile, the itemized service and payment tables, and the totals block.
func StatementPDF(stmt *billing.Statement) ([]byte, error) {
	if stmt == nil || stmt.Customer == nil {
		return nil, fmt.Errorf("statement is incomplete")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Statement - %s", stmt.Customer.Name), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Consultancy Statement", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, fmt.Sprintf("Generated %s", stmt.GeneratedAt.Format("2006-01-02 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	writeProfile(pdf, stmt)
	writeServices(pdf, stmt)
	writePayments(pdf, stmt)
	writeTotals(pdf, stmt)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering statement pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeProfile(pdf *gofpdf.Fpdf, stmt *billing.Statement) {
	cust := stmt.Customer

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Customer", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	rows := [][2]string{
		{"ID", strconv.FormatInt(cust.CustomerID, 10)},
		{"Name", cust.Name},
		{"Mobile", cust.Mobile},
		{"Village", cust.Village},
		{"Bank", cust.BankName},
		{"Loan Amount", cust.LoanAmount.StringFixed(2)},
		{"Date", cust.CustomerDate.Format(dateLayout)},
	}
	for _, row := range rows {
		pdf.CellFormat(35, 6, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)
}

func writeServices(pdf *gofpdf.Fpdf, stmt *billing.Statement) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Services", "B", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(15, 6, "#", "1", 0, "C", false, 0, "")
	pdf.CellFormat(115, 6, "Service", "1", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Charge", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	if len(stmt.Services) == 0 {
		pdf.CellFormat(0, 6, "No services recorded", "1", 1, "C", false, 0, "")
	}
	for i, line := range stmt.Services {
		pdf.CellFormat(15, 6, strconv.Itoa(i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(115, 6, line.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, line.Charge.StringFixed(2), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(3)
}

func writePayments(pdf *gofpdf.Fpdf, stmt *billing.Statement) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Payments Received", "B", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(15, 6, "#", "1", 0, "C", false, 0, "")
	pdf.CellFormat(115, 6, "Date", "1", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	if len(stmt.Payments) == 0 {
		pdf.CellFormat(0, 6, "No payments recorded", "1", 1, "C", false, 0, "")
	}
	for i, payment := range stmt.Payments {
		pdf.CellFormat(15, 6, strconv.Itoa(i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(115, 6, payment.Date.Format(dateLayout), "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, payment.Amount.StringFixed(2), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(3)
}

func writeTotals(pdf *gofpdf.Fpdf, stmt *billing.Statement) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(130, 7, "Total Charges", "T", 0, "R", false, 0, "")
	pdf.CellFormat(0, 7, stmt.Totals.TotalCharges.StringFixed(2), "T", 1, "R", false, 0, "")
	pdf.CellFormat(130, 7, "Total Received", "", 0, "R", false, 0, "")
	pdf.CellFormat(0, 7, stmt.Totals.TotalReceived.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(130, 7, "Balance Due", "", 0, "R", false, 0, "")
	pdf.CellFormat(0, 7, stmt.Totals.Balance.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "I", 9)
	status := "OUTSTANDING"
	if stmt.Totals.Settled() {
		status = "SETTLED"
	}
	pdf.CellFormat(0, 7, fmt.Sprintf("Account status: %s", status), "", 1, "R", false, 0, "")
}
