package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/werdnakof/ask-parents-25-questions/internal/adapter/payment/stripe"
	"github.com/werdnakof/ask-parents-25-questions/internal/adapter/postgres"
	answerrepo "github.com/werdnakof/ask-parents-25-questions/internal/adapter/postgres/answer"
	"github.com/werdnakof/ask-parents-25-questions/internal/adapter/postgres/paymentevent"
	profilerepo "github.com/werdnakof/ask-parents-25-questions/internal/adapter/postgres/profile"
	"github.com/werdnakof/ask-parents-25-questions/internal/adapter/postgres/selection"
	"github.com/werdnakof/ask-parents-25-questions/internal/adapter/postgres/session"
	userrepo "github.com/werdnakof/ask-parents-25-questions/internal/adapter/postgres/user"
	"github.com/werdnakof/ask-parents-25-questions/internal/adapter/storage/s3"
	"github.com/werdnakof/ask-parents-25-questions/internal/auth"
	"github.com/werdnakof/ask-parents-25-questions/internal/catalog"
	"github.com/werdnakof/ask-parents-25-questions/internal/config"
	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
	"github.com/werdnakof/ask-parents-25-questions/internal/service/answer"
	authsvc "github.com/werdnakof/ask-parents-25-questions/internal/service/auth"
	"github.com/werdnakof/ask-parents-25-questions/internal/service/billing"
	"github.com/werdnakof/ask-parents-25-questions/internal/service/profile"
	"github.com/werdnakof/ask-parents-25-questions/internal/service/question"
	"github.com/werdnakof/ask-parents-25-questions/internal/service/tier"
	"github.com/werdnakof/ask-parents-25-questions/internal/service/user"
	"github.com/werdnakof/ask-parents-25-questions/internal/transport/graphql"
	"github.com/werdnakof/ask-parents-25-questions/internal/transport/graphql/dataloader"
	"github.com/werdnakof/ask-parents-25-questions/internal/transport/middleware"
	"github.com/werdnakof/ask-parents-25-questions/internal/transport/rest"
)

const rateLimitCleanupInterval = time.Minute

// photoStorage is satisfied by the S3 store. It stays a nil interface when
// storage is not configured.
type photoStorage interface {
	Put(ctx context.Context, key, contentType string, size int64, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

// paymentGateway is satisfied by the Stripe client. It stays a nil interface
// when billing is not configured.
type paymentGateway interface {
	CreateCustomer(ctx context.Context, email string, userID uuid.UUID) (string, error)
	CreateCheckoutSession(ctx context.Context, customerID string, userID uuid.UUID) (string, error)
	ParseWebhook(payload []byte, sigHeader string) (domain.PaymentEvent, error)
}

// Server is the wired HTTP application.
type Server struct {
	handler http.Handler
	broker  *tier.Broker
	limiter *middleware.RateLimiter
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.handler }

// Close ends live tier streams and stops background limiter cleanup.
func (s *Server) Close() {
	s.broker.Close()
	s.limiter.Stop()
}

// NewServer builds every repository, service and handler on top of pool.
func NewServer(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, reg *catalog.Registry) *Server {
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	sessions := session.New(pool)
	profiles := profilerepo.New(pool)
	selections := selection.New(pool)
	answers := answerrepo.New(pool)
	events := paymentevent.New(pool)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	broker := tier.NewBroker(logger, users)

	authService := authsvc.NewService(logger, users, sessions, txm, jwt, cfg.Auth, cfg.Questions.DefaultLocale)
	userService := user.NewService(logger, users, reg.Locales())
	profileService := profile.NewService(logger, profiles, newPhotoStorage(cfg.Storage), cfg.Storage.MaxPhotoBytes)
	questionService := question.NewService(
		logger, profiles, selections, answers, users, reg, txm,
		cfg.Questions.TierPolicy(), cfg.Questions.CustomTextMaxLength,
	)
	answerService := answer.NewService(logger, answers, questionService, txm, cfg.Questions.AnswerMaxLength)
	billingService := billing.NewService(logger, users, events, newPaymentGateway(cfg.Stripe), broker, txm)

	origins := cfg.CORS.AllowedOriginList()
	handlers := rest.Handlers{
		Health: rest.NewHealthHandler(pool, Version, map[string]bool{
			"billing": cfg.Stripe.Enabled(),
			"photos":  cfg.Storage.Enabled(),
		}),
		Auth:     rest.NewAuthHandler(authService, logger),
		Me:       rest.NewMeHandler(userService, broker, wsOriginPatterns(origins), logger),
		Profile:  rest.NewProfileHandler(profileService, cfg.Storage.MaxPhotoBytes, logger),
		Question: rest.NewQuestionHandler(questionService, logger),
		Answer:   rest.NewAnswerHandler(answerService, logger),
		Billing:  rest.NewBillingHandler(billingService, logger),
		GraphQL:  graphql.NewHandler(
			graphql.NewResolver(userService, profileService, questionService),
			&dataloader.Repos{Answer: answers, Selection: selections, Catalogs: reg},
			logger,
		),
	}

	limiter := middleware.NewRateLimiter(rateLimitCleanupInterval)

	api := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Locale(reg),
		middleware.Auth(authService, logger),
	)

	return &Server{
		handler: rest.NewRouter(handlers, api, limiter.Limit(cfg.RateLimit.AuthPerMinute, cfg.RateLimit.AuthBurst)),
		broker:  broker,
		limiter: limiter,
	}
}

// Serve connects to the database, loads the catalog and runs the HTTP server
// until ctx is cancelled. In-flight requests get cfg.Server.ShutdownTimeout
// to finish.
func Serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	reg, err := catalog.LoadEmbedded(cfg.Questions.FreeCatalogCount, cfg.Questions.DefaultLocale)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	app := NewServer(cfg, logger, pool, reg)
	defer app.Close()

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           app.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting",
			slog.String("addr", srv.Addr),
			slog.String("version", BuildVersion()),
			slog.Any("locales", reg.Locales()),
			slog.Bool("billing", cfg.Stripe.Enabled()),
			slog.Bool("photos", cfg.Storage.Enabled()),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	// Websocket streams are hijacked and not tracked by Shutdown.
	app.broker.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func newPhotoStorage(cfg config.StorageConfig) photoStorage {
	if !cfg.Enabled() {
		return nil
	}
	return s3.New(s3.Config{
		Endpoint:      cfg.Endpoint,
		Region:        cfg.Region,
		Bucket:        cfg.Bucket,
		AccessKey:     cfg.AccessKey,
		SecretKey:     cfg.SecretKey,
		PublicBaseURL: cfg.PublicBaseURL,
		UsePathStyle:  cfg.UsePathStyle,
	})
}

func newPaymentGateway(cfg config.StripeConfig) paymentGateway {
	if !cfg.Enabled() {
		return nil
	}
	return stripe.NewClient(stripe.Config{
		SecretKey:     cfg.SecretKey,
		WebhookSecret: cfg.WebhookSecret,
		PriceID:       cfg.PriceID,
		SuccessURL:    cfg.AppURL + "/payment/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     cfg.AppURL + "/payment/cancelled",
	})
}

// wsOriginPatterns converts CORS origins into websocket host patterns.
// A wildcard CORS origin accepts any host.
func wsOriginPatterns(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		if o == "*" {
			return []string{"*"}
		}
		if u, err := url.Parse(o); err == nil && u.Host != "" {
			out = append(out, u.Host)
			continue
		}
		out = append(out, o)
	}
	return out
}
