package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

type ReportData struct {
	Origin      string
	Destination string
	StartDate   string
	EndDate     string
	DataSource  string
	Analysis    Analysis
}

// GenerateReportBytes renders the analysis as a PDF and returns raw bytes
// (no filesystem needed).
func GenerateReportBytes(data ReportData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Airline Demand Report", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Flight Price & Route Frequency Analysis", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Section Helpers ──────────────────────────────────────
	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	// ── Search Parameters ────────────────────────────────────
	sectionHeader("Search")
	destination := data.Destination
	if destination == "" {
		destination = "ANY"
	}
	row("Route", fmt.Sprintf("%s → %s", data.Origin, destination))
	row("Period", fmt.Sprintf("%s to %s", fmtDateReadable(data.StartDate), fmtDateReadable(data.EndDate)))
	row("Data source", data.DataSource)
	row("Generated", time.Now().Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	// ── Summary ──────────────────────────────────────────────
	s := data.Analysis.Summary
	sectionHeader("Summary")
	row("Flights analyzed", fmt.Sprintf("%d", s.TotalRoutes))
	row("Average price", fmt.Sprintf("$%.2f", s.AvgPrice))
	row("Lowest price", fmt.Sprintf("$%.2f", s.MinPrice))
	row("Highest price", fmt.Sprintf("$%.2f", s.MaxPrice))
	pdf.Ln(4)

	// ── Top Routes ───────────────────────────────────────────
	sectionHeader("Top Routes")
	if len(data.Analysis.TopRoutes) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(170, 7, "No route data for this search.", "", 1, "L", false, 0, "")
	}
	for _, r := range data.Analysis.TopRoutes {
		row(fmt.Sprintf("%s → %s", r.Origin, r.Destination), fmt.Sprintf("%d flights", r.Count))
	}
	pdf.Ln(4)

	// ── Price Trend ──────────────────────────────────────────
	sectionHeader("Average Price by Departure Date")
	if len(data.Analysis.PriceTrends) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(170, 7, "No price data for this search.", "", 1, "L", false, 0, "")
	}
	for _, p := range data.Analysis.PriceTrends {
		row(fmtDateReadable(p.DepartDate), fmt.Sprintf("$%.2f", p.Price))
	}

	// ── Footer ───────────────────────────────────────────────
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		"Generated prices are estimates, not fare quotes · Verify with carriers before booking",
		"", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func fmtDateReadable(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02 Jan 2006 (Mon)")
}
