package api

import (
	"encoding/json"
	"net/http"

	errs "github.com/matzehuels/dashgrid/pkg/errors"
)

type errorResponse struct {
	Code    errs.Code `json:"code"`
	Message string    `json:"message"`
}

// HTTPStatus maps an error to the HTTP status it is reported with.
func HTTPStatus(err error) int {
	switch errs.GetCode(err) {
	case errs.ErrCodeInvalidInput, errs.ErrCodeInvalidSize, errs.ErrCodeInvalidKind,
		errs.ErrCodeInvalidBoard, errs.ErrCodeInvalidFormat, errs.ErrCodeInvalidID:
		return http.StatusBadRequest
	case errs.ErrCodeNotFound, errs.ErrCodeWidgetNotFound, errs.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errs.ErrCodeDuplicateWidget, errs.ErrCodePlacementRejected, errs.ErrCodeNoSpace:
		return http.StatusConflict
	case errs.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := errs.GetCode(err)
	if code == "" {
		code = errs.ErrCodeInternal
	}
	writeJSON(w, HTTPStatus(err), errorResponse{Code: code, Message: errs.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// decode reads a JSON request body into v.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidInput, err, "invalid request body: %v", err)
	}
	return nil
}

func notFound(format string, args ...any) error {
	return errs.New(errs.ErrCodeNotFound, format, args...)
}
