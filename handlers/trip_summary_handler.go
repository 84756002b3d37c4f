package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"lightbnb/repository"
	"lightbnb/utils"
)

type TripSummaryHandler struct {
	Repo     *repository.TripSummaryRepository
	SavePath string
}

// TripSummaryPDF generates a PDF of the guest's completed stays,
// saves it locally and, when R2 is configured, uploads it for a
// shareable URL.
func (h *TripSummaryHandler) TripSummaryPDF(w http.ResponseWriter, r *http.Request) {
	guestIDStr := r.URL.Query().Get("guest_id")
	if guestIDStr == "" {
		http.Error(w, "missing guest_id", http.StatusBadRequest)
		return
	}

	guestID, err := strconv.ParseInt(guestIDStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid guest_id", http.StatusBadRequest)
		return
	}

	saveDir := h.SavePath
	if saveDir == "" {
		saveDir = "./pdfs"
	}
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		http.Error(w, "failed to create save directory: "+err.Error(), http.StatusInternalServerError)
		return
	}

	pdfBytes, err := utils.GenerateTripSummaryPDF(h.Repo, guestID)
	if err != nil {
		http.Error(w, "failed to generate PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if len(pdfBytes) == 0 {
		http.Error(w, "no guest found", http.StatusNotFound)
		return
	}

	filename := fmt.Sprintf("trip_summary_%d_%d.pdf", guestID, time.Now().Unix())
	savePath := filepath.Join(saveDir, filename)

	if err := os.WriteFile(savePath, pdfBytes, 0644); err != nil {
		http.Error(w, "failed to save PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// Upload is best effort; the local file is already the answer.
	fileURL, err := utils.UploadToR2(pdfBytes, filename, "application/pdf")
	if err != nil {
		fmt.Printf("failed to upload trip summary for guest %d: %v\n", guestID, err)
		fileURL = ""
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{"success":true,"file":"%s","url":"%s"}`, filename, fileURL)))
}
