package ui

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/reskin/pkg/core"
	"github.com/arthur-debert/reskin/pkg/errors"
)

// JSONRenderer writes indented JSON for machine consumption
type JSONRenderer struct {
	encoder *json.Encoder
}

// NewJSON creates a JSON renderer
func NewJSON(w io.Writer) *JSONRenderer {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return &JSONRenderer{encoder: encoder}
}

type installPayload struct {
	*core.InstallResult
	ActivationErr string `json:"ActivationErr,omitempty"`
	Message       string `json:"Message"`
}

// RenderResult renders any result type as JSON
func (r *JSONRenderer) RenderResult(result interface{}) error {
	if res, ok := result.(*core.InstallResult); ok {
		payload := installPayload{InstallResult: res, Message: res.Message()}
		if res.ActivationErr != nil {
			payload.ActivationErr = res.ActivationErr.Error()
		}
		return r.encoder.Encode(payload)
	}
	return r.encoder.Encode(result)
}

// RenderError renders an error and its code as JSON
func (r *JSONRenderer) RenderError(err error) error {
	obj := map[string]interface{}{
		"error": errorText(err),
		"code":  string(errors.GetErrorCode(err)),
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		obj["details"] = details
	}
	return r.encoder.Encode(obj)
}

// RenderMessage renders a simple message as JSON
func (r *JSONRenderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
