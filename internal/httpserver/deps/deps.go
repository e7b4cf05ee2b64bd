package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wajeht/bang/internal/bangs"
	"github.com/wajeht/bang/internal/logger"
	"github.com/wajeht/bang/internal/notify"
	"github.com/wajeht/bang/internal/search"
	"github.com/wajeht/bang/internal/store/sqlite"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	Engine  *search.Engine // query resolution engine
	Catalog *bangs.Catalog // hot-swappable static bang dictionary
	DB      *sqlite.Store  // users, custom bangs, bookmarks, reminders

	RedisClient *redis.Client // nil when session state lives in memory

	Notifier *notify.Notifier // operator webhook, nil-safe

	PendingTasks func() map[string]int // per-queue backlog, for the infra report

	ReloadTrigger chan struct{} // manual bang dictionary reload

	SessionTTL time.Duration // anonymous session cookie lifetime

	AdminCIDRs  []string // IPs allowed on operator endpoints (empty = open)
	TrustProxy  bool     // resolve client IPs from proxy headers
	CORSOrigins []string // allowed CORS origins (empty = any)
}
