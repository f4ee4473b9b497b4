package handler

import (
	"encoding/base64"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"pptxgen/manager"
)

// maxBodyBytes caps how much of a request body is copied into the event.
const maxBodyBytes = 1 << 20

// HTTPHandler serves Handler over plain net/http for local runs.
type HTTPHandler struct {
	Handler            *Handler
	ConcurrencyManager *manager.ConcurrencyManager
	// Limiter is optional; nil disables rate limiting.
	Limiter *rate.Limiter
}

// NewHTTPHandler creates a new instance of HTTPHandler
func NewHTTPHandler(h *Handler, cm *manager.ConcurrencyManager, limiter *rate.Limiter) *HTTPHandler {
	return &HTTPHandler{
		Handler:            h,
		ConcurrencyManager: cm,
		Limiter:            limiter,
	}
}

// ServeHTTP implements the http.Handler interface for HTTPHandler.
func (h *HTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.Limiter != nil && !h.Limiter.Allow() {
		logAndReturnError(w, r, "Too Many Requests", http.StatusTooManyRequests)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		logAndReturnError(w, r, "Bad Request: unable to read body", http.StatusBadRequest)
		return
	}
	r.Body.Close()

	event := toEvent(r, body)

	// Preflight never renders, so it does not need a slot.
	if event.HTTPMethod != PreflightMethod && h.ConcurrencyManager != nil {
		release, ok := h.ConcurrencyManager.Acquire(r.Context(), h.Handler.DeckName())
		if !ok {
			logAndReturnError(w, r, "Service Unavailable: too many renders in progress", http.StatusServiceUnavailable)
			return
		}
		defer release()
	}

	resp, err := h.Handler.Handle(r.Context(), event)
	if err != nil {
		logAndReturnError(w, r, "Internal Server Error: failed to generate presentation", http.StatusInternalServerError, "Error generating presentation: "+err.Error())
		return
	}

	payload := []byte(resp.Body)
	if resp.Base64Encoded() {
		payload, err = base64.StdEncoding.DecodeString(resp.Body)
		if err != nil {
			logAndReturnError(w, r, "Internal Server Error: bad response encoding", http.StatusInternalServerError, "Error decoding response body: "+err.Error())
			return
		}
	}

	for key, value := range resp.Headers {
		w.Header().Set(key, value)
	}
	w.WriteHeader(resp.StatusCode)
	w.Write(payload)
	logRequest(r, event.RequestContext.RequestID, resp.StatusCode)
}

// toEvent converts an HTTP request into the API Gateway proxy event the Lambda handler receives.
func toEvent(r *http.Request, body []byte) events.APIGatewayProxyRequest {
	headers := make(map[string]string, len(r.Header))
	for key, values := range r.Header {
		if len(values) > 0 {
			headers[key] = values[0]
		}
	}

	query := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			query[key] = values[0]
		}
	}

	return events.APIGatewayProxyRequest{
		Resource:                        r.URL.Path,
		Path:                            r.URL.Path,
		HTTPMethod:                      r.Method,
		Headers:                         headers,
		MultiValueHeaders:               r.Header.Clone(),
		QueryStringParameters:           query,
		MultiValueQueryStringParameters: r.URL.Query(),
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID:  uuid.NewString(),
			HTTPMethod: r.Method,
			Path:       r.URL.Path,
			Identity: events.APIGatewayRequestIdentity{
				SourceIP:  r.RemoteAddr,
				UserAgent: r.UserAgent(),
			},
		},
		Body: string(body),
	}
}
