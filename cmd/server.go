package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/glossa-tools/glossa/config"
	"github.com/glossa-tools/glossa/controller"
	"github.com/glossa-tools/glossa/detect"
	"github.com/glossa-tools/glossa/utils"
)

func readConfig(configFile string) (*viper.Viper, *config.Envelope) {
	viperInstance := viper.New()
	viperInstance.SetConfigName("config")
	viperInstance.SetConfigType("yaml")
	viperInstance.AddConfigPath("/etc/glossa/")
	viperInstance.AddConfigPath("$HOME/.glossa")
	viperInstance.AddConfigPath("./config")
	viperInstance.SetEnvPrefix("GLOSSA")
	viperInstance.AutomaticEnv()
	if configFile != "" {
		viperInstance.SetConfigFile(configFile)
	}
	// Set default values
	viperInstance.SetDefault("server.address", ":8080")

	envelope := &config.Envelope{}
	if err := viperInstance.ReadInConfig(); err != nil {
		// The server runs fine on defaults; only the remote backends
		// need a config file.
		logger.WithError(err).Warn("No config file found, using defaults")
		return viperInstance, envelope
	}
	logger.Infof("Using config file: %s", viperInstance.ConfigFileUsed())
	envelope, err := config.LoadFromFile(viperInstance.ConfigFileUsed())
	if err != nil {
		logger.WithError(err).Fatal("Failed to parse configuration")
	}
	return viperInstance, envelope
}

// NewServerCommand returns the web server command.
func NewServerCommand() *cobra.Command {
	var configFile string

	command := &cobra.Command{
		Use:   "server",
		Short: "Start the language detection web server",
		Run: func(cmd *cobra.Command, args []string) {
			echoServer := echo.New()
			echoServer.HideBanner = true
			viperInstance, envelope := readConfig(configFile)

			detectorConfig, err := envelope.DetectorConfig()
			if err != nil {
				logger.WithError(err).Fatal("Invalid detector configuration")
			}
			detector, err := detect.New(detectorConfig)
			if err != nil {
				logger.WithError(err).Fatal("Failed to create detector")
			}
			c, err := controller.NewController(detector)
			if err != nil {
				logger.WithError(err).Fatal("Failed to create controller")
			}

			echoServer.Use(echoprometheus.NewMiddleware("glossa"))
			echoServer.GET("/metrics", echoprometheus.NewHandler())
			echoServer.Use(middleware.CORS()) // Enable CORS for all origins

			apiGroup := echoServer.Group("/api/v1")
			apiGroup.Use(middleware.Logger())

			// Apply Bearer Token authentication if tokens are configured
			tokens := envelope.Server.Tokens
			if len(tokens) == 0 {
				tokens = viperInstance.GetStringSlice("server.tokens")
			}
			if len(tokens) > 0 {
				logger.Infof("Bearer token authentication enabled with %d token(s)", len(tokens))
				apiGroup.Use(utils.CreateBearerTokenMiddleware(tokens))
			} else {
				logger.Warn("Bearer token authentication disabled - no tokens configured")
			}

			c.RegisterRoutes(echoServer, apiGroup)

			// Start server in a goroutine
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			go func() {
				addr := envelope.Server.Address
				if addr == "" {
					addr = viperInstance.GetString("server.address")
				}
				logger.Infof("Starting server on %s", addr)
				if err := echoServer.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.WithError(err).Error("Server start error")
				}
			}()

			// Wait for interrupt signal to gracefully shutdown the server with a timeout
			<-ctx.Done()
			stop()
			logger.Info("Shutting down server gracefully, press Ctrl+C again to force")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := echoServer.Shutdown(shutdownCtx); err != nil {
				logger.WithError(err).Error("Server forced to shutdown")
			}

			logger.Info("Server stopped gracefully")
		},
	}

	addConfigFlag(command, &configFile)
	return command
}
