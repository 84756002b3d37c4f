package utils

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"lightbnb/models"
	"lightbnb/repository"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// How many stays a summary lists at most.
const summaryStayLimit = 50

// GenerateTripSummaryPDF renders the guest's completed stays through
// the HTML template and prints the result to PDF with headless Chrome.
// Returns (nil, nil) when the guest does not exist.
func GenerateTripSummaryPDF(repo *repository.TripSummaryRepository, guestID int64) ([]byte, error) {
	guest, err := repo.GetGuestForSummary(guestID)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, nil
	}

	stays, err := repo.GetStaysForSummary(guestID, summaryStayLimit)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.ParseFiles("templates/trip_summary.html")
	if err != nil {
		return nil, err
	}

	data := models.TripSummaryData{
		Guest:       guest,
		Stays:       stays,
		TotalStays:  len(stays),
		GeneratedAt: time.Now().Format("02-Jan-2006"),
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return nil, err
	}

	finalHTML := `
		<!DOCTYPE html>
		<html>
		<head>
		<meta charset="UTF-8">
		<style>
		@page {
			size: A4;
			margin: 20px;
		}
		body {
			font-family: Arial, Helvetica, sans-serif;
			font-size: 12px;
			margin: 0;
			padding: 0;
		}
		.stay-row {
			page-break-inside: avoid;
		}
		</style>
		</head>
		<body>` + body.String() + `</body></html>`

	// Create temp HTML file
	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, "trip_summary_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, []byte(finalHTML), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	// Generate PDF with headless Chrome
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
