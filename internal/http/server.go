// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripfluencer/internal/http/handlers"
	"tripfluencer/internal/http/middleware"
	"tripfluencer/internal/modules/itinerary"
	"tripfluencer/internal/modules/usage"
	"tripfluencer/web"
)

type ServerDeps struct {
	Itinerary *itinerary.Service
	// Usage is optional; nil disables the generation audit log.
	Usage         *usage.Service
	CredentialEnv string
	CORSOrigins   []string
	Logger        *zap.Logger
}

type Server struct {
	itinerary     *itinerary.Service
	usage         *usage.Service
	credentialEnv string
	corsOrigins   []string
	logger        *zap.Logger
}

func NewServer(deps ServerDeps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	credentialEnv := deps.CredentialEnv
	if credentialEnv == "" {
		credentialEnv = "GEMINI_API_KEY"
	}
	return &Server{
		itinerary:     deps.Itinerary,
		usage:         deps.Usage,
		credentialEnv: credentialEnv,
		corsOrigins:   deps.CORSOrigins,
		logger:        logger,
	}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logging(s.logger), middleware.Recovery(s.logger), middleware.CORS(s.corsOrigins))
	if err := r.SetTrustedProxies(nil); err != nil {
		s.logger.Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.SetHTMLTemplate(template.Must(web.Templates()))
	r.StaticFS("/static", http.FS(web.Static()))

	r.GET("/", handlers.Index)
	r.GET("/favicon.ico", handlers.Favicon)
	r.GET("/health", handlers.Health)

	itineraryHandler := handlers.NewItineraryHandler(s.itinerary, s.usage, s.credentialEnv)
	r.POST("/generate", itineraryHandler.Generate)

	usageHandler := handlers.NewUsageHandler(s.usage)
	r.GET("/api/generations/summary", usageHandler.Summary)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
	})
	return r
}
