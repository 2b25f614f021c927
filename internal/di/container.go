package di

import (
	"context"
	"log/slog"

	"github.com/samber/do/v2"
	"github.com/samber/lo"
	"github.com/samber/oops"

	blogService "github.com/janixware/site-backend/internal/modules/blog/service"
	feedDomain "github.com/janixware/site-backend/internal/modules/feed/domain"
	"github.com/janixware/site-backend/internal/modules/feed/fetcher"
	feedService "github.com/janixware/site-backend/internal/modules/feed/service"
	"github.com/janixware/site-backend/internal/modules/inquiry/channel"
	inquiryService "github.com/janixware/site-backend/internal/modules/inquiry/service"
	"github.com/janixware/site-backend/internal/shared/config"
	httpServer "github.com/janixware/site-backend/internal/transport/http"
)

// Setup initializes the dependency injection container
func Setup() (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register Feed Fetcher
	do.Provide(injector, func(i do.Injector) (fetcher.Fetcher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return fetcher.NewHTTPFetcher(cfg.FeedFetchTimeout()), nil
	})

	// Register Feed Service
	do.Provide(injector, func(i do.Injector) (*feedService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		f := do.MustInvoke[fetcher.Fetcher](i)
		sources := lo.Map(cfg.FeedURLs, func(url string, _ int) feedDomain.Source {
			return feedDomain.Source{URL: url}
		})
		svc := feedService.New(sources, f)
		svc.SetLogger(slog.Default())
		return svc, nil
	})

	// Register Inquiry Service with whichever delivery channels are configured.
	// An unconfigured channel is skipped, not an error; the deep-link fallback
	// works with zero channels.
	do.Provide(injector, func(i do.Injector) (*inquiryService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)

		var channels []channel.Channel

		if cfg.EmailEnabled() {
			email, err := channel.NewEmailChannel(context.Background(), cfg.AWSRegion, cfg.ContactFromEmail, cfg.ContactToEmail)
			if err != nil {
				return nil, oops.With("context", "failed to create email channel").Wrap(err)
			}
			channels = append(channels, email)
		}

		if cfg.WebhookEnabled() {
			channels = append(channels, channel.NewWebhookChannel(cfg.ContactWebhookURL, channel.DefaultWebhookTimeout))
		}

		if cfg.TelegramEnabled() {
			tg, err := channel.NewTelegramChannel(cfg.TelegramBotToken, cfg.TelegramChatID)
			if err != nil {
				return nil, oops.With("context", "failed to create telegram channel").Wrap(err)
			}
			channels = append(channels, tg)
		}

		svc := inquiryService.New(cfg.WhatsAppPhone, channels...)
		svc.SetLogger(slog.Default())
		return svc, nil
	})

	// Register Blog Service
	do.Provide(injector, func(i do.Injector) (*blogService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return blogService.New(cfg.SiteBaseURL), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		feedSvc := do.MustInvoke[*feedService.Service](i)
		inquirySvc := do.MustInvoke[*inquiryService.Service](i)
		blogSvc := do.MustInvoke[*blogService.Service](i)
		server := httpServer.New(cfg, feedSvc, inquirySvc, blogSvc)
		server.SetLogger(slog.Default())
		return server, nil
	})

	return injector, nil
}

// Shutdown gracefully shuts down all services
func Shutdown(injector do.Injector) error {
	// All services are stateless request handlers; nothing holds resources
	// that outlive the process.
	return nil
}
