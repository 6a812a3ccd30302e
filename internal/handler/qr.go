package handler

import (
	"net/http"

	qrcode "github.com/skip2/go-qrcode"
)

// CustomerQR serves a PNG QR code pointing at the customer portal, for the
// table-tent card.
func (h *Handler) CustomerQR(w http.ResponseWriter, r *http.Request) {
	png, err := qrcode.Encode(h.publicURL, qrcode.Medium, 512)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	_, _ = w.Write(png)
}
