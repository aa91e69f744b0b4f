package app

import (
	"github.com/ghuser/itemstore/pkg/cache"
	"github.com/ghuser/itemstore/pkg/config"
	"github.com/ghuser/itemstore/pkg/database"
	"github.com/ghuser/itemstore/pkg/events"
	"github.com/ghuser/itemstore/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Each process main constructs it once and threads it explicitly — the
// composition root does all wiring, nothing is looked up ambiently.
//
// Logging: Logger is backed by a trace-aware handler; use the context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "item created", "item_id", id)
//
// Use Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus // nil in the seed process
	Redis    *cache.RedisClient
}
