package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vukan322/devdash/internal/http/api"
	"github.com/vukan322/devdash/internal/lib/sl"
)

func NewLogger() *slog.Logger {
	return sl.NewDiscardLogger()
}

func DecodeErrorResponse(t *testing.T, body *bytes.Buffer) api.ErrorResponse {
	var resp api.ErrorResponse
	err := json.NewDecoder(body).Decode(&resp)
	assert.NoError(t, err)
	return resp
}
