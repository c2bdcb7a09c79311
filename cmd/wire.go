package cmd

import (
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/scp-tools/billing-bridge/internal/adapters/activity"
	"github.com/scp-tools/billing-bridge/internal/adapters/panel"
	"github.com/scp-tools/billing-bridge/internal/adapters/store/billingsql"
	"github.com/scp-tools/billing-bridge/internal/adapters/synclog"
	"github.com/scp-tools/billing-bridge/internal/adapters/ticket"
	"github.com/scp-tools/billing-bridge/internal/application"
	"github.com/scp-tools/billing-bridge/internal/config"
	"github.com/scp-tools/billing-bridge/internal/ports"
)

const componentTag = "Control Panel Bridge"

type app struct {
	cfg       config.Config
	logger    zerolog.Logger
	router    *application.Router
	usage     *application.UsageSync
	syncState ports.SyncStateStore
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Log.Level, err)
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	activityLog := activity.NewLog(logger, componentTag)

	panelClient, err := panel.NewClient(cfg.Panel.Hostname, cfg.Panel.APIKey, nil)
	if err != nil {
		return nil, fmt.Errorf("wire panel client: %w", err)
	}

	// The database handle is lazy; a missing DSN only surfaces on first
	// use, which keeps panel-only commands working without one.
	store, err := billingsql.Open("postgres", cfg.Billing.DSN)
	if err != nil {
		return nil, fmt.Errorf("wire billing store: %w", err)
	}

	tickets := ticket.NewClient(cfg.Billing.APIURL, cfg.Billing.APIKey, nil)

	syncState, err := synclog.NewStore(cfg.Sync.StatePath)
	if err != nil {
		return nil, fmt.Errorf("wire sync state store: %w", err)
	}

	usage := application.NewUsageSync(panelClient, store, syncState, activityLog, ports.SystemClock{})
	router := application.NewRouter(panelClient, store, tickets, usage, activityLog, application.RouterConfig{
		TicketClientID: cfg.Tickets.ClientID,
		Brand:          cfg.Brand,
	})

	return &app{
		cfg:       cfg,
		logger:    logger,
		router:    router,
		usage:     usage,
		syncState: syncState,
	}, nil
}
