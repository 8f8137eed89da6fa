package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/mi-raf/memo-blog/internal/metrics"
)

type (
	API struct {
		s      *http.Server
		listen string
	}

	Config struct {
		Listen  string
		GinMode string
	}
)

func NewApi(c *Config, h *Handler) *API {
	if c.GinMode != "" {
		gin.SetMode(c.GinMode)
	}
	server := &http.Server{
		Addr:              c.Listen,
		Handler:           NewRouter(h),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return &API{
		s:      server,
		listen: c.Listen,
	}
}

func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logMiddleware())

	r.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	g := r.Group("/api")
	g.GET("/posts", h.ListPosts)
	g.GET("/posts/:id", h.GetPost)
	g.POST("/posts", h.AddPost)
	g.POST("/posts/clear", h.Clear)
	g.GET("/archive", gzip.Gzip(gzip.DefaultCompression), h.Archive)
	g.GET("/languages", h.Languages)
	g.PUT("/language", h.SetLanguage)
	g.GET("/labels", h.Labels)
	g.GET("/labels/:key", h.Label)
	return r
}

func (a *API) Start() error {
	log.Info().Msgf("listening on %v", a.listen)
	err := a.s.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *API) Close() {
	log.Debug().Msg("start graceful server shutdown")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := a.s.Shutdown(ctx)
	if err != nil {
		log.Error().Err(err).Msg("error while shutdowning server")
		return
	}
	log.Debug().Msg("server graceful shutdowned")
}

func logMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		req := c.Request
		start := time.Now()

		c.Next()
		stop := time.Now()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		metrics.RequestDuration.
			WithLabelValues(req.Method, route, strconv.Itoa(status)).
			Observe(stop.Sub(start).Seconds())

		log.Debug().
			Str("remote", req.RemoteAddr).
			Str("user_agent", req.UserAgent()).
			Str("method", req.Method).
			Str("request uri", req.RequestURI).
			Int("status", status).
			Dur("duration", stop.Sub(start)).
			Str("duration_human", stop.Sub(start).String()).
			Msgf("called url %s", req.URL)
	}
}
