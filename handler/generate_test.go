package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pptxgen/deck"
	"pptxgen/render"
)

func decodeBody(t *testing.T, resp ProxyResponse) GenerateResponse {
	t.Helper()
	var body GenerateResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	return body
}

func stubHandler(pkg []byte, err error) *Handler {
	return &Handler{
		deck: deck.IndustrialRevolution,
		render: func(deck.Deck) ([]byte, error) {
			return pkg, err
		},
	}
}

func TestPreflight(t *testing.T) {
	resp, err := Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: "OPTIONS"})
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "", resp.Body)
	assert.Equal(t, map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type, X-User-Id",
		"Access-Control-Max-Age":       "86400",
	}, resp.Headers)
}

func TestInvocationPayload(t *testing.T) {
	resp, err := Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: "GET"})
	require.NoError(t, err)
	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, float64(200), payload["statusCode"])
	require.Contains(t, payload, "isBase64Encoded")
	assert.Equal(t, false, payload["isBase64Encoded"])
	assert.IsType(t, "", payload["body"])

	resp, err = Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: "OPTIONS"})
	require.NoError(t, err)
	raw, err = json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"statusCode": 200,
		"headers": {
			"Access-Control-Allow-Origin": "*",
			"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
			"Access-Control-Allow-Headers": "Content-Type, X-User-Id",
			"Access-Control-Max-Age": "86400"
		},
		"body": ""
	}`, string(raw))
}

func TestPreflightDoesNotRender(t *testing.T) {
	h := stubHandler(nil, errors.New("must not render"))
	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: "OPTIONS"})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestGenerate(t *testing.T) {
	for _, method := range []string{"GET", "POST", "", "options", "DELETE"} {
		t.Run("method="+method, func(t *testing.T) {
			resp, err := Handle(context.Background(), events.APIGatewayProxyRequest{
				HTTPMethod: method,
				Headers:    map[string]string{"X-User-Id": "42"},
			})
			require.NoError(t, err)

			assert.Equal(t, 200, resp.StatusCode)
			require.NotNil(t, resp.IsBase64Encoded)
			assert.False(t, *resp.IsBase64Encoded)
			assert.Equal(t, "application/json", resp.Headers["Content-Type"])
			assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])

			body := decodeBody(t, resp)
			assert.True(t, body.Success)
			assert.Equal(t, "industrial_revolution.pptx", body.Filename)
			assert.Equal(t, len(body.FileBase64), body.Size)

			pkg, err := base64.StdEncoding.DecodeString(body.FileBase64)
			require.NoError(t, err)
			n, err := render.CountSlides(pkg)
			require.NoError(t, err)
			assert.Equal(t, 4, n)
		})
	}
}

func TestGenerateEndToEnd(t *testing.T) {
	resp, err := Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: "GET"})
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp)
	require.True(t, body.Success)

	pkg, err := base64.StdEncoding.DecodeString(body.FileBase64)
	require.NoError(t, err)

	outline, err := render.ReadOutline(pkg)
	require.NoError(t, err)
	require.Len(t, outline.Slides, 4)
	assert.Equal(t, "ИНДУСТРИАЛЬНАЯ РЕВОЛЮЦИЯ", outline.Slides[0].Title())
}

func TestGenerateIsIdempotent(t *testing.T) {
	req := events.APIGatewayProxyRequest{HTTPMethod: "GET"}
	first, err := Handle(context.Background(), req)
	require.NoError(t, err)
	second, err := Handle(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, decodeBody(t, first).FileBase64, decodeBody(t, second).FileBase64)
}

func TestGenerateRenderError(t *testing.T) {
	h := stubHandler(nil, errors.New("boom"))
	_, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: "GET"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "render industrial_revolution.pptx: boom")
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stubHandler([]byte("pk"), nil).Handle(ctx, events.APIGatewayProxyRequest{HTTPMethod: "GET"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRequestID(t *testing.T) {
	req := events.APIGatewayProxyRequest{
		RequestContext: events.APIGatewayProxyRequestContext{RequestID: "gw-id"},
	}
	assert.Equal(t, "gw-id", requestID(context.Background(), req))

	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "lambda-id"})
	assert.Equal(t, "lambda-id", requestID(ctx, req))
}

func TestAnyOtherMethodGenerates(t *testing.T) {
	pkg := []byte("PK\x03\x04 fake package")
	h := stubHandler(pkg, nil)
	want := base64.StdEncoding.EncodeToString(pkg)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("non-preflight methods return the encoded file", prop.ForAll(
		func(method string) bool {
			resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: method})
			if err != nil || resp.StatusCode != 200 || resp.Base64Encoded() {
				return false
			}
			var body GenerateResponse
			if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
				return false
			}
			return body.Success &&
				body.Filename == "industrial_revolution.pptx" &&
				body.FileBase64 == want &&
				body.Size == len(want)
		},
		gen.AnyString().SuchThat(func(s string) bool { return s != PreflightMethod }),
	))

	properties.TestingRun(t)
}
