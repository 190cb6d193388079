package handlers

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/sbilibin2017/mock-register-server/internal/logger"
	"github.com/sbilibin2017/mock-register-server/internal/middlewares"
	"github.com/sbilibin2017/mock-register-server/internal/models"
)

// Body parsing failures. All of them are answered with 500.
var (
	ErrMissingContentLength = errors.New("missing content length")
	ErrBodyRead             = errors.New("failed to read request body")
	ErrInvalidEncoding      = errors.New("request body is not valid UTF-8")
	ErrMalformedJSON        = errors.New("request body is not valid JSON")
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, nickname *string) (*models.RegistrationResponse, error)
}

// NewRegisterHandler returns an HTTP handler for mock registration.
// @Summary Register a user (mock)
// @Description Echoes email and nickname back inside a canned success response. Nothing is stored.
// @Tags auth
// @Accept json
// @Produce json
// @Param registrationRequest body models.RegistrationRequest true "Registration request"
// @Success 201 {object} models.RegistrationResponse "User registered"
// @Failure 500 "Body missing, unreadable or not valid JSON"
// @Router /api/auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqID := middlewares.RequestIDFromContext(r.Context())

		req, err := decodeRegistrationRequest(r)
		if err != nil {
			logger.Log.Errorw("failed to parse registration request", "request_id", reqID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		logger.Log.Infow("registration request received",
			"request_id", reqID,
			"email", req.Email,
			"nickname", req.Nickname,
		)

		resp, err := svc.Register(r.Context(), req.Email, req.Nickname)
		if err != nil {
			logger.Log.Errorw("internal server error", "request_id", reqID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(resp); err != nil {
			logger.Log.Errorw("failed to encode registration response", "request_id", reqID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	}
}

// decodeRegistrationRequest reads exactly Content-Length bytes and decodes them.
func decodeRegistrationRequest(r *http.Request) (models.RegistrationRequest, error) {
	var req models.RegistrationRequest

	if r.ContentLength < 0 {
		return req, ErrMissingContentLength
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, r.ContentLength))
	if err != nil {
		return req, fmt.Errorf("%w: %v", ErrBodyRead, err)
	}
	if int64(len(body)) < r.ContentLength {
		return req, fmt.Errorf("%w: got %d of %d bytes", ErrBodyRead, len(body), r.ContentLength)
	}

	if !utf8.Valid(body) {
		return req, ErrInvalidEncoding
	}

	// Keys match exactly; encoding/json alone would fold case.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return req, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	if fields == nil {
		return req, fmt.Errorf("%w: body is not a JSON object", ErrMalformedJSON)
	}

	if req.Email, err = decodeOptionalString(fields, "email"); err != nil {
		return req, err
	}
	if req.Nickname, err = decodeOptionalString(fields, "nickname"); err != nil {
		return req, err
	}

	return req, nil
}

func decodeOptionalString(fields map[string]json.RawMessage, key string) (*string, error) {
	raw, ok := fields[key]
	if !ok {
		return nil, nil
	}

	var v *string
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: field %q: %v", ErrMalformedJSON, key, err)
	}
	return v, nil
}
