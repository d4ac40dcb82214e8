package mockapi

import (
	"log/slog"

	json "github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"
)

// errorEnvelope matches the service's error body: a detail object with a
// machine-readable status and a human-readable message.
type errorEnvelope struct {
	Detail errorDetail `json:"detail"`
}

type errorDetail struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// writeJSON sets the `content-type` to `application/json` and writes data to the fasthttp context.
func writeJSON(ctx *fasthttp.RequestCtx, status int, data any) {
	ctx.Response.Header.Set("content-type", "application/json")
	ctx.SetStatusCode(status)

	body, err := json.Marshal(data)
	if err != nil {
		slog.Error("Unable to json encode response", slog.Any("error", err))
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetBody(body)
}

func writeAPIError(ctx *fasthttp.RequestCtx, status int, code, message string) {
	writeJSON(ctx, status, errorEnvelope{Detail: errorDetail{Status: code, Message: message}})
}
