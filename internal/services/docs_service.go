package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/repositories"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/utils"
)

// DocsService renders downloadable PDFs: booking invoices and teacher
// earnings statements.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	UserRepo    repositories.UserRepository
	Earnings    EarningsService
	RequestID   string
}

// GenerateInvoice renders the invoice for one booking.
func (s DocsService) GenerateInvoice(bookingID int64) ([]byte, string, error) {
	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, "", err
	}

	subject := "Unknown Subject"
	if name, err := s.UserRepo.SubjectName(b.SubjectID); err == nil && name != "" {
		subject = name
	}
	studentName := ""
	if u, err := s.UserRepo.GetByID(b.StudentID); err == nil {
		studentName = u.Name
	}
	teacherName := ""
	if u, err := s.UserRepo.GetByID(b.TeacherID); err == nil {
		teacherName = u.Name
	}

	utils.LogEvent(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("booking_id=%d", bookingID))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Invoice No : INV-%d", b.ID),
		fmt.Sprintf("Date       : %s", utils.FormatDateTime(utils.NowUTC())),
		fmt.Sprintf("Student    : %s", safe(studentName, "-")),
		fmt.Sprintf("Teacher    : %s", safe(teacherName, "-")),
		fmt.Sprintf("Subject    : %s", subject),
		fmt.Sprintf("Session    : %s %s-%s", safe(b.BookingDate, "-"), safe(b.StartTime, "-"), safe(b.EndTime, "-")),
		fmt.Sprintf("Fee        : %s %.2f", safe(b.Currency, "NGN"), b.Fee),
		fmt.Sprintf("Status     : %s", string(b.Status)),
		fmt.Sprintf("Booking Ref: %s", safe(b.UUID, "-")),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This invoice covers one tutoring session. Keep it for your records.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("INVOICE_%d.pdf", b.ID), nil
}

// GenerateStatement renders a teacher's upcoming-earnings statement.
func (s DocsService) GenerateStatement(teacherID int64) ([]byte, string, error) {
	up, err := s.Earnings.Upcoming(teacherID)
	if err != nil {
		return nil, "", err
	}
	teacherName := ""
	if u, err := s.UserRepo.GetByID(teacherID); err == nil {
		teacherName = u.Name
	}

	utils.LogEvent(s.RequestID, "docs", "generate_statement", fmt.Sprintf("teacher_id=%d", teacherID))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Earnings Statement", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "EARNINGS STATEMENT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Teacher   : "+safe(teacherName, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Generated : "+utils.FormatDateTime(utils.NowUTC()))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(40, 7, "Date")
	pdf.Cell(40, 7, "Time")
	pdf.Cell(30, 7, "Hours")
	pdf.Cell(40, 7, "USD")
	pdf.Cell(40, 7, "NGN")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for _, e := range up.Entries {
		pdf.Cell(40, 7, e.SessionDate)
		pdf.Cell(40, 7, e.StartTime+"-"+e.EndTime)
		pdf.Cell(30, 7, fmt.Sprintf("%.2f", e.Earning.DurationHours))
		pdf.Cell(40, 7, fmt.Sprintf("%.2f", e.Earning.AmountUSD))
		pdf.Cell(40, 7, fmt.Sprintf("%.2f", e.Earning.AmountNGN))
		pdf.Ln(7)
	}

	pdf.Ln(5)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Total USD %.2f / NGN %s", up.TotalUSD, formatPlain(up.TotalNGN)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("STATEMENT_%d_%s.pdf", teacherID, utils.FormatDate(utils.NowUTC())), nil
}

// formatPlain keeps thousands separators but drops the currency symbol,
// which the core PDF fonts cannot render for naira.
func formatPlain(amount float64) string {
	s := utils.FormatAmount(amount, "NGN")
	return strings.TrimPrefix(s, utils.CurrencySymbol("NGN"))
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
