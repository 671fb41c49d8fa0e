package server

import (
	"context"
	"errors"
	"math/rand/v2"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Depado/ginprom"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/msgdesk/app/api/routes"
	"github.com/msgdesk/pkg/config"
	"github.com/msgdesk/pkg/domains/classification"
	"github.com/msgdesk/pkg/domains/contact"
	"github.com/msgdesk/pkg/domains/inbox"
	"github.com/msgdesk/pkg/domains/message"
	"github.com/msgdesk/pkg/domains/quickresponse"
	"github.com/msgdesk/pkg/domains/settings"
	"github.com/msgdesk/pkg/domains/simulator"
	"github.com/msgdesk/pkg/domains/suggestion"
	"github.com/msgdesk/pkg/domains/tag"
	"github.com/msgdesk/pkg/domains/whatsapp"
	"github.com/msgdesk/pkg/llm"
	"github.com/msgdesk/pkg/middleware"
	"github.com/msgdesk/pkg/state"
	"github.com/msgdesk/pkg/utils"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/msgdesk/docs"
)

// Deps is everything the API needs from the process.
type Deps struct {
	DB        *gorm.DB
	Completer llm.Completer
	WhatsApp  config.WhatsApp
	Rand      *rand.Rand
	Logger    *zap.Logger
}

// RegisterRoutes builds the domain services and mounts every area under api.
// The returned WhatsApp service owns a live session and must be closed.
func RegisterRoutes(api *gin.RouterGroup, d Deps) whatsapp.Service {
	utils.RegisterGinValidations()

	// Catalog
	contact_repo := contact.NewRepo(d.DB)
	contact_service := contact.NewService(contact_repo)
	routes.ContactRoutes(api.Group("/contacts"), contact_service, d.Logger)

	tag_service := tag.NewService(tag.NewRepo(d.DB))
	routes.TagRoutes(api.Group("/tags"), tag_service, d.Logger)

	quick_response_service := quickresponse.NewService(quickresponse.NewRepo(d.DB))
	routes.QuickResponseRoutes(api.Group("/quick-responses"), quick_response_service, d.Logger)

	settings_service := settings.NewService(settings.NewRepo(d.DB))
	routes.SettingsRoutes(api.Group("/settings"), settings_service, d.Logger)

	// Messages
	message_repo := message.NewRepo(d.DB)
	message_service := message.NewService(message_repo)
	classification_service := classification.NewService(classification.NewRepo(d.DB), d.Completer, d.Logger)
	suggestion_service := suggestion.NewService(quick_response_service, d.Completer, d.Logger)
	inbox_service := inbox.NewService(contact_service, message_service, classification_service, quick_response_service, d.Logger)
	routes.MessageRoutes(api.Group("/messages"), routes.MessageServices{
		Messages:   message_service,
		Classifier: classification_service,
		Suggester:  suggestion_service,
		Inbox:      inbox_service,
		Logger:     d.Logger,
	})

	simulator_service := simulator.NewService(contact_service, message_repo, inbox_service, d.Rand)
	routes.SimulatorRoutes(api.Group("/simulator"), simulator_service, d.Logger)

	// WhatsApp Routes
	whatsapp_service := whatsapp.NewService(d.WhatsApp, whatsapp.NewRepo(d.DB), inbox_service, d.Logger)
	inbox_service.SetSender(whatsapp_service)
	routes.WhatsAppRoutes(api.Group("/whatsapp"), whatsapp_service, d.Logger)

	return whatsapp_service
}

// LaunchHttpServer serves until SIGINT or SIGTERM, then drains in-flight
// requests and closes the WhatsApp session.
func LaunchHttpServer(appc config.App, allows config.Allows, d Deps) {
	d.Logger.Info("Starting HTTP Server...")
	gin.SetMode(gin.ReleaseMode)

	app := gin.New()
	app.ContextWithFallback = true
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(d.Logger))
	app.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	app.Use(gin.Recovery())
	app.Use(otelgin.Middleware(appc.Name))
	app.Use(middleware.ClaimIp())
	app.Use(cors.New(corsConfig(allows)))

	p := ginprom.New(
		ginprom.Engine(app),
		ginprom.Subsystem("gin"),
		ginprom.Path("/metrics"),
		ginprom.Ignore("/docs/*any"),
	)
	app.Use(p.Instrument())

	whatsapp_service := RegisterRoutes(app.Group("/api/v1"), d)
	defer whatsapp_service.Close()

	srv := &http.Server{
		Addr:              net.JoinHostPort(appc.Host, appc.Port),
		Handler:           app,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		d.Logger.Info("Server is running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			d.Logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	d.Logger.Info("Shutting down HTTP Server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		d.Logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func corsConfig(allows config.Allows) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With", "Origin", "Accept", state.RequestIDHeader},
		ExposeHeaders:    []string{state.RequestIDHeader},
		AllowOrigins:     []string{"*"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(allows.Methods) > 0 {
		cfg.AllowMethods = allows.Methods
	}
	if len(allows.Headers) > 0 {
		cfg.AllowHeaders = allows.Headers
	}
	if len(allows.Origins) > 0 {
		cfg.AllowOrigins = allows.Origins
	}
	return cfg
}
