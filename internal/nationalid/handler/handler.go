package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"egid/internal/nationalid"
	"egid/internal/nationalid/service"
	dErrors "egid/pkg/domain-errors"
	"egid/pkg/platform/httputil"
	"egid/pkg/requestcontext"
)

// Service defines the interface for decode operations.
type Service interface {
	Decode(ctx context.Context, raw string) (*service.Result, error)
}

// Handler wires national ID endpoints to the decode service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a national ID handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts national ID endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/national-id/decode", h.HandleDecode)
	r.Get("/national-id/governorates", h.HandleListGovernorates)
}

// HandleDecode handles POST /national-id/decode requests.
func (h *Handler) HandleDecode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[DecodeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Decode(ctx, req.NationalID)
	if err != nil {
		writeDecodeError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "national ID decoded",
		"request_id", requestID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}

// HandleListGovernorates handles GET /national-id/governorates requests.
func (h *Handler) HandleListGovernorates(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, ListGovernorates())
}

// writeDecodeError reports decoding failures with their kind and the
// domain message verbatim; anything else goes through the generic envelope.
func writeDecodeError(w http.ResponseWriter, err error) {
	var de *nationalid.Error
	if !errors.As(err, &de) {
		httputil.WriteError(w, err)
		return
	}
	code := dErrors.CodeValidation
	if e, ok := dErrors.As(err); ok {
		code = e.Code
	}
	httputil.WriteJSON(w, dErrors.HTTPStatus(code), DecodeErrorResponse{
		Error:            string(code),
		ErrorKind:        string(de.Kind),
		ErrorDescription: de.Error(),
	})
}
