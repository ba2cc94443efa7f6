// Package classification Fair Finder Service.
//
// Fair Finder lets users publish geotagged events and tell which events they are going to.
//
// Terms Of Service:
//
// there are no TOS at this moment, use at your own risk we take no responsibility
//
//    Version: 0.1.0
//    License: TODO
//
//    Consumes:
//      - application/json
//
//    Produces:
//      - application/json
//
//    SecurityDefinitions:
//      bearerAuth:
//        type: apiKey
//        in: header
//        name: Authorization
// swagger:meta
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3config "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/fairfinder/fair-finder/internal/handler"
	"github.com/fairfinder/fair-finder/internal/log"
	"github.com/fairfinder/fair-finder/internal/middleware"
	"github.com/fairfinder/fair-finder/internal/server"
	"github.com/fairfinder/fair-finder/internal/tracing"
	"github.com/fairfinder/fair-finder/pkg/avatar"
	"github.com/fairfinder/fair-finder/pkg/config"
	"github.com/fairfinder/fair-finder/pkg/event"
	"github.com/fairfinder/fair-finder/pkg/health"
	"github.com/fairfinder/fair-finder/pkg/participation"
	"github.com/fairfinder/fair-finder/pkg/storage"
	"github.com/fairfinder/fair-finder/pkg/token"
	"github.com/fairfinder/fair-finder/pkg/user"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Failed to run fair-finder", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// a missing .env file is fine, the environment is used as is
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger := slog.New(log.New(log.NewPrettyJSONHandler(os.Stdout, &log.PrettyJSONHandlerOptions{
		HandlerOptions: slog.HandlerOptions{
			AddSource: true,
			Level:     cfg.Logging.Level,
		},
		PrettyPrint: cfg.Logging.Pretty,
	})))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.New(logger, cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error("Failed to shut down tracing", "error", err)
		}
	}()

	db, err := storage.NewDatabase(logger, cfg.Postgresql)
	if err != nil {
		return err
	}

	userService := user.NewService(user.NewRepository(db))
	tokenService := token.NewService(
		cfg.Authentication.Secret,
		cfg.Authentication.AccessTokenExpirationSeconds,
		cfg.Authentication.RefreshTokenSecret,
		cfg.Authentication.RefreshTokenExpirationSeconds,
	)
	eventService := event.NewService(event.NewRepository(db))
	participationService := participation.NewService(participation.NewRepository(db))

	avatarStore, err := newAvatarStore(ctx, logger, cfg.Avatar)
	if err != nil {
		return err
	}

	authentication := middleware.NewAuthentication(logger, cfg.Authentication.Secret)
	authenticator := authentication.Authenticator(cfg.RequireAuthentication)

	err = handler.RegisterValidation()
	if err != nil {
		return err
	}

	engine := server.GetEngine(logger, cfg.BasePath, cfg.AllowedOrigins, cfg.Tracing.ServiceName)
	router := engine.Group(cfg.BasePath)

	health.Routes(router, health.NewHandler(health.NewRepository(db)))
	user.Routes(router, authenticator, authentication.TokenAuthentication, user.NewHandler(userService, tokenService))
	event.Routes(router, authenticator, event.NewHandler(eventService))
	participation.Routes(router, authenticator, participation.NewHandler(participationService))
	avatar.Routes(router, authenticator, avatar.NewHandler(logger, cfg.PublicURL+cfg.BasePath, avatarStore, userService))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Listening", "addr", srv.Addr, "basePath", cfg.BasePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newAvatarStore(ctx context.Context, logger *slog.Logger, c config.Avatar) (avatar.Store, error) {
	if !c.UseS3() {
		return avatar.NewDiskStore(logger, c.Directory)
	}

	awsConfig, err := s3config.LoadDefaultConfig(ctx, s3config.WithRegion(c.S3Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %v", err)
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if c.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(c.S3Endpoint)
			o.UsePathStyle = true
		}
	})
	s3Client := storage.NewS3Client(logger, client, manager.NewUploader(client))

	logger.Info("Storing avatars in S3", "bucket", c.S3Bucket)
	return avatar.NewS3Store(s3Client, c.S3Bucket), nil
}
