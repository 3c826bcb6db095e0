package app

import (
	feedAPI "results_feed/internal/api/feed"
	"results_feed/internal/client"
	"results_feed/internal/client/results"
	"results_feed/internal/config"
	"results_feed/internal/config/env"
	"results_feed/internal/logger"
	"results_feed/internal/repository"
	"results_feed/internal/repository/window_repo"
	"results_feed/internal/service"
	"results_feed/internal/service/feed"
	"results_feed/pkg/rng"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	// Logger
	loggerCfg config.LoggerConfig
	logger    *zap.Logger

	// Feed bits
	feedCfg    config.FeedConfig
	resultsCli client.ResultsClient
	windowRepo repository.WindowRepository
	fallback   feed.Generator
	feedServ   service.FeedService
	feedHand   *feedAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LoggerCfg() config.LoggerConfig {
	if sp.loggerCfg == nil {
		cfg, err := env.NewLoggerConfig()
		if err != nil {
			panic("failed to get logger config: " + err.Error())
		}
		sp.loggerCfg = cfg
	}
	return sp.loggerCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.logger == nil {
		l, err := logger.New(sp.LoggerCfg())
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		sp.logger = l
	}
	return sp.logger
}

func (sp *ServiceProvider) FeedCfg() config.FeedConfig {
	if sp.feedCfg == nil {
		cfg, err := env.NewFeedConfig()
		if err != nil {
			panic("failed to get feed config: " + err.Error())
		}
		sp.feedCfg = cfg
	}
	return sp.feedCfg
}

func (sp *ServiceProvider) ResultsClient() client.ResultsClient {
	if sp.resultsCli == nil {
		sp.resultsCli = results.NewResultsClient(sp.FeedCfg().Endpoint(), sp.FeedCfg().FetchTimeout())
	}
	return sp.resultsCli
}

func (sp *ServiceProvider) WindowRepository() repository.WindowRepository {
	if sp.windowRepo == nil {
		sp.windowRepo = window_repo.NewWindowRepository(sp.FeedCfg().WindowSize())
	}
	return sp.windowRepo
}

func (sp *ServiceProvider) FallbackGenerator() feed.Generator {
	if sp.fallback == nil {
		sp.fallback = feed.NewFallbackGenerator(rng.NewCryptoSource(), sp.FeedCfg().WindowSize(), sp.FeedCfg().FallbackStep())
	}
	return sp.fallback
}

func (sp *ServiceProvider) FeedService() service.FeedService {
	if sp.feedServ == nil {
		sp.feedServ = feed.NewPoller(
			feed.PollerConfig{
				Interval:     sp.FeedCfg().PollInterval(),
				FetchTimeout: sp.FeedCfg().FetchTimeout(),
			},
			feed.PollerDeps{
				Client:   sp.ResultsClient(),
				Fallback: sp.FallbackGenerator(),
				Repo:     sp.WindowRepository(),
				Logger:   sp.Logger(),
			},
		)
	}
	return sp.feedServ
}

func (sp *ServiceProvider) FeedHandler() *feedAPI.Handler {
	if sp.feedHand == nil {
		sp.feedHand = feedAPI.NewHandler(feedAPI.HandlerDeps{
			Serv:   sp.FeedService(),
			Logger: sp.Logger(),
		})
	}
	return sp.feedHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router() chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(middleware.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/healthz", sp.FeedHandler().Health)

		// Feed endpoints
		feedHandler := sp.FeedHandler()
		r.Route("/feed", func(rr chi.Router) {
			rr.Get("/", feedHandler.Window)
			rr.Post("/refresh", feedHandler.Refresh)
		})

		sp.router = r
	}

	return sp.router
}
