package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/craftledger/etsyprofit/internal/checkout"
	"github.com/craftledger/etsyprofit/internal/demo"
	"github.com/craftledger/etsyprofit/internal/engine"
	"github.com/craftledger/etsyprofit/internal/importer"
)

// Handler serves the report and checkout endpoints. It holds no state
// beyond its collaborators; every report request is parsed from scratch.
type Handler struct {
	checkout  *checkout.Client
	maxUpload int64
}

// NewHandler creates a Handler with the provided checkout client.
func NewHandler(checkoutClient *checkout.Client, maxUpload int64) *Handler {
	return &Handler{
		checkout:  checkoutClient,
		maxUpload: maxUpload,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CreateReport parses an uploaded transaction export and returns the
// reconciled profit report. The export arrives as a multipart "file" field
// or as the raw request body; ?source= picks the importer, defaulting to
// the file extension and then to etsy-csv.
func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	source := r.URL.Query().Get("source")
	var content io.Reader = r.Body

	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()
		content = file
		if source == "" {
			source = importer.InferSource(header.Filename)
		}
	}
	if source == "" {
		source = "etsy-csv"
	}

	imp, err := importer.Get(source)
	if err != nil {
		RespondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	data, err := imp.Import(content, engine.Options{})
	if err != nil {
		RespondError(w, http.StatusBadRequest, "could not read export", err.Error())
		return
	}
	if len(data.RawTransactions) == 0 {
		RespondError(w, http.StatusUnprocessableEntity, "no valid transactions found", nil)
		return
	}

	RespondJSON(w, http.StatusOK, data)
}

// DemoReport returns the canned report bundle.
func (h *Handler) DemoReport(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, demo.Data())
}

type checkoutRequest struct {
	Plan string `json:"plan"`
}

type checkoutResponse struct {
	URL  string `json:"url"`
	Demo bool   `json:"demo,omitempty"`
}

// CreateCheckout begins the subscription purchase flow and returns the
// redirect target.
func (h *Handler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	plan, err := checkout.ParsePlan(req.Plan)
	if err != nil {
		RespondError(w, http.StatusBadRequest, "invalid plan selected", nil)
		return
	}

	url, err := h.checkout.CreateSession(plan)
	if err != nil {
		RespondError(w, http.StatusBadGateway, "failed to create checkout session", nil)
		return
	}

	RespondJSON(w, http.StatusOK, checkoutResponse{
		URL:  url,
		Demo: h.checkout.Demo(),
	})
}
