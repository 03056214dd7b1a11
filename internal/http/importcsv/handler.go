package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jrwalden/clientdesk/internal/client"
	"github.com/jrwalden/clientdesk/internal/importer"
)

type Handler struct {
	importSvc *importer.Service
	clientSvc *client.Service
}

func NewHandler(importSvc *importer.Service, clientSvc *client.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		clientSvc: clientSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type clientResponse struct {
	ID     uuid.UUID     `json:"id"`
	Name   string        `json:"name"`
	Email  string        `json:"email"`
	Status client.Status `json:"status"`
}

type skippedDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type importResponse struct {
	Imported int              `json:"imported"`
	Clients  []clientResponse `json:"clients"`
	Skipped  []skippedDTO     `json:"skipped,omitempty"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		format = importer.FormatRoster
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(format, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.clientSvc.ImportBatch(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := importResponse{
		Imported: len(result.Created),
		Clients:  make([]clientResponse, 0, len(result.Created)),
		Skipped:  make([]skippedDTO, 0, len(result.Skipped)),
	}

	for _, c := range result.Created {
		resp.Clients = append(resp.Clients, clientResponse{
			ID:     c.ID,
			Name:   c.Name,
			Email:  c.Email,
			Status: c.Status,
		})
	}

	for _, p := range result.Skipped {
		resp.Skipped = append(resp.Skipped, skippedDTO{Name: p.Name, Email: p.Email})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
