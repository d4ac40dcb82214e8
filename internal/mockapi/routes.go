package mockapi

import (
	"log/slog"
	"strings"
	"time"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
)

func (s *Server) initRoutes() fasthttp.RequestHandler {
	r := router.New()

	r.GET("/api/health", func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusOK)
		_, _ = ctx.Write([]byte("OK"))
	})

	r.POST("/v1/text-to-voice/design", s.handleDesignVoice)
	r.POST("/v1/text-to-voice/create/{generated_voice_id}", s.handleCreateVoice)

	return s.withMiddlewares(r.Handler)
}

func (s *Server) withMiddlewares(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		requestURI := string(ctx.URI().FullURI())
		slog.Info("Started processing", slog.String("method", string(ctx.Method())), slog.String("request_uri", requestURI))

		// Key check, any non-empty key passes
		if strings.HasPrefix(string(ctx.Path()), "/v1/") {
			if len(ctx.Request.Header.Peek("xi-api-key")) == 0 {
				writeAPIError(ctx, fasthttp.StatusUnauthorized, "invalid_api_key", "A valid xi-api-key header is required.")
				return
			}
		}

		next(ctx)

		slog.Info("Finished processing", slog.String("method", string(ctx.Method())), slog.String("request_uri", requestURI), slog.Duration("duration", time.Since(start)))
	}
}
