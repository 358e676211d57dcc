package restapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"bmiguide.healthguide.org/internal/bmi"
	"bmiguide.healthguide.org/internal/logging"
	"bmiguide.healthguide.org/internal/models"
)

type errorResponse struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	Text        string `json:"text"`
	Version     int    `json:"version"`
}

func (api *RestAPI) logger(r *http.Request) *slog.Logger {
	if api.Logger != nil {
		return api.Logger
	}
	if r == nil {
		return slog.Default()
	}
	return logging.FromContext(r.Context())
}

func (api *RestAPI) logEncodeError(r *http.Request, err error) {
	logging.LogError(api.logger(r), "failed to encode response", err,
		slog.String("component", "http_server"))
}

func (api *RestAPI) writeError(w http.ResponseWriter, r *http.Request, code int, text string) {
	response := errorResponse{
		Code:        code,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        text,
		Version:     1,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.logEncodeError(r, err)
	}
}

// invalidAPIKeyResponse sends a 401 Unauthorized response for a missing or unknown API key
func (api *RestAPI) invalidAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	api.writeError(w, r, http.StatusUnauthorized, "permission denied")
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(api.logger(r), "internal server error", err,
		slog.String("path", r.URL.Path),
		slog.String("request_id", logging.RequestIDFromContext(r.Context())),
		slog.String("component", "http_server"))

	api.writeError(w, r, http.StatusInternalServerError, "internal server error")
}

// domainErrorResponse reports a measurement the BMI formula rejects with 422.
func (api *RestAPI) domainErrorResponse(w http.ResponseWriter, r *http.Request, err *bmi.DomainError) {
	api.writeError(w, r, http.StatusUnprocessableEntity, err.Error())
}

// assessmentErrorResponse maps errors from the bmi package to responses.
func (api *RestAPI) assessmentErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *bmi.DomainError
	if errors.As(err, &domainErr) {
		api.Metrics.ObserveDomainError()
		api.domainErrorResponse(w, r, domainErr)
		return
	}
	api.serverErrorResponse(w, r, err)
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.logEncodeError(r, err)
	}
}
