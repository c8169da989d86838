package utils

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/forum-api/forum/shared/errors"
	"github.com/forum-api/forum/shared/logger"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Envelope is the body of every API response.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// WriteJSON writes v wrapped into a success envelope.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	writeEnvelope(w, statusCode, Envelope{Status: StatusSuccess, Data: data})
}

func writeEnvelope(w http.ResponseWriter, statusCode int, env Envelope) {
	body, err := json.Marshal(env)
	if err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(append(body, '\n'))
}

// WriteErrorAndStatusCode maps err to its status code and writes a fail envelope.
// Unclassified errors are logged and hidden behind a generic 500.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	statusCode := errors.StatusCode(err)
	if statusCode >= http.StatusInternalServerError {
		logger.Log.Error("internal error", "error", err)
		writeEnvelope(w, statusCode, Envelope{Status: StatusError, Message: "internal server error"})
		return
	}
	writeEnvelope(w, statusCode, Envelope{Status: StatusFail, Message: err.Error()})
}

// WriteStatus writes a success envelope without data.
func WriteStatus(w http.ResponseWriter, statusCode int) {
	writeEnvelope(w, statusCode, Envelope{Status: StatusSuccess})
}

// DecodeValidate decodes a JSON body into body and runs struct validation.
// Fields of the wrong primitive type yield BAD_TYPE, missing required fields yield MISSING_FIELD.
func DecodeValidate(r io.ReadCloser, body any) error {
	if err := Decode(r, body); err != nil {
		return err
	}
	if err := validate.Struct(body); err != nil {
		var verrs validator.ValidationErrors
		if stderrors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return &errors.ValidationError{Code: errors.MissingField, Message: fmt.Sprintf("required fields missing: %s", strings.Join(fields, ", "))}
		}
		return &errors.ValidationError{Code: errors.MissingField, Message: "required fields missing"}
	}
	return nil
}

func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		var typeErr *json.UnmarshalTypeError
		if stderrors.As(err, &typeErr) {
			return &errors.ValidationError{Code: errors.BadType, Message: fmt.Sprintf("field %s must be %s", typeErr.Field, typeErr.Type)}
		}
		logger.Log.Debug("invalid json body", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	return nil
}
