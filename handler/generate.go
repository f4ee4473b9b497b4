package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"

	"pptxgen/deck"
	"pptxgen/render"
)

// PreflightMethod is compared case-sensitively; every other method generates the file.
const PreflightMethod = "OPTIONS"

// Handler answers presentation requests. Each call builds and encodes its own document.
type Handler struct {
	deck   func() deck.Deck
	render func(deck.Deck) ([]byte, error)
}

// New returns a handler serving the industrial revolution deck.
func New() *Handler {
	return &Handler{
		deck:   deck.IndustrialRevolution,
		render: render.Render,
	}
}

var defaultHandler = New()

// Handle is the Lambda entry point.
func Handle(ctx context.Context, req events.APIGatewayProxyRequest) (ProxyResponse, error) {
	return defaultHandler.Handle(ctx, req)
}

// DeckName names the deck this handler produces; render slots are keyed by it.
func (h *Handler) DeckName() string {
	return h.deck().Name()
}

// Handle answers a preflight request with CORS headers and anything else with the encoded presentation.
// Render and encode errors are returned to the caller, which reports a failed invocation.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (ProxyResponse, error) {
	entry := log.WithFields(logrus.Fields{
		"request_id": requestID(ctx, req),
		"method":     req.HTTPMethod,
	})

	if req.HTTPMethod == PreflightMethod {
		entry.Debug("preflight")
		return preflightResponse(), nil
	}

	if err := ctx.Err(); err != nil {
		return ProxyResponse{}, err
	}

	d := h.deck()
	pkg, err := h.render(d)
	if err != nil {
		entry.Errorf("Error rendering presentation: %v", err)
		return ProxyResponse{}, fmt.Errorf("render %s: %w", d.Filename, err)
	}

	encoded := base64.StdEncoding.EncodeToString(pkg)
	body, err := json.Marshal(GenerateResponse{
		Success:    true,
		Filename:   d.Filename,
		FileBase64: encoded,
		Size:       len(encoded),
	})
	if err != nil {
		entry.Errorf("Error encoding response: %v", err)
		return ProxyResponse{}, fmt.Errorf("encode response: %w", err)
	}

	entry.WithFields(logrus.Fields{
		"filename": d.Filename,
		"slides":   d.SlideCount(),
		"bytes":    len(pkg),
	}).Info("Generated presentation")

	plain := false
	return ProxyResponse{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		IsBase64Encoded: &plain,
		Body:            string(body),
	}, nil
}

func preflightResponse() ProxyResponse {
	return ProxyResponse{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Access-Control-Allow-Origin":  "*",
			"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
			"Access-Control-Allow-Headers": "Content-Type, X-User-Id",
			"Access-Control-Max-Age":       "86400",
		},
		Body: "",
	}
}

func requestID(ctx context.Context, req events.APIGatewayProxyRequest) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return req.RequestContext.RequestID
}
