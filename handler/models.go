package handler

// GenerateResponse is the JSON body of a generation response.
type GenerateResponse struct {
	Success    bool   `json:"success"`
	Filename   string `json:"filename"`
	FileBase64 string `json:"fileBase64"`
	Size       int    `json:"size"`
}

// ProxyResponse is the API Gateway proxy response returned to the Lambda runtime.
// A nil IsBase64Encoded leaves the key out, as the preflight response does.
type ProxyResponse struct {
	StatusCode      int               `json:"statusCode"`
	Headers         map[string]string `json:"headers"`
	IsBase64Encoded *bool             `json:"isBase64Encoded,omitempty"`
	Body            string            `json:"body"`
}

// Base64Encoded reports whether Body holds base64 rather than text.
func (r ProxyResponse) Base64Encoded() bool {
	return r.IsBase64Encoded != nil && *r.IsBase64Encoded
}
