package app

import (
	"github.com/moviedrafter/core/internal/config"
	http_admin "github.com/moviedrafter/core/internal/delivery/http/admin"
	http_availability "github.com/moviedrafter/core/internal/delivery/http/availability"
	http_draft "github.com/moviedrafter/core/internal/delivery/http/draft"
	http_init "github.com/moviedrafter/core/internal/delivery/http/init"
	http_access_middleware "github.com/moviedrafter/core/internal/delivery/http/middleware/access"
	http_auth_middleware "github.com/moviedrafter/core/internal/delivery/http/middleware/auth"
	http_pick "github.com/moviedrafter/core/internal/delivery/http/pick"
	ws_availability "github.com/moviedrafter/core/internal/delivery/ws/availability"
	infra_pg_init "github.com/moviedrafter/core/internal/infra/postgres/init"
	infra_postgres_curated "github.com/moviedrafter/core/internal/infra/postgres/curated"
	infra_postgres_pick "github.com/moviedrafter/core/internal/infra/postgres/pick"
	infra_postgres_speccategory "github.com/moviedrafter/core/internal/infra/postgres/speccategory"
	infra_provider "github.com/moviedrafter/core/internal/infra/provider"
	infra_availability_cache "github.com/moviedrafter/core/internal/infra/redis/availability"
	infra_redis_init "github.com/moviedrafter/core/internal/infra/redis/init"
	usecase_availability "github.com/moviedrafter/core/internal/usecase/availability"
	usecase_draft "github.com/moviedrafter/core/internal/usecase/draft"
	usecase_pick "github.com/moviedrafter/core/internal/usecase/pick"
)

func Go(cfg *config.Config) {
	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	movieProvider := infra_provider.New(cfg.Provider.URL, cfg.Provider.Token)

	curatedRepository := infra_postgres_curated.New(pgConn)
	pickRepository := infra_postgres_pick.New(pgConn)
	specRepository := infra_postgres_speccategory.New(pgConn)
	availabilityCache := infra_availability_cache.New(redisConn, "availability_cache")

	availabilityUC := usecase_availability.New(movieProvider, availabilityCache)
	draftUC := usecase_draft.New(pickRepository, specRepository)
	selector := usecase_pick.New(movieProvider, curatedRepository, specRepository)

	adminMiddleware := http_auth_middleware.New(cfg.Admin.Token)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Use(http_access_middleware.ReadOnlyBadGatewayMiddleware(cfg.HTTP.Mode))
	controllerPool.Add(http_availability.New(availabilityUC))
	controllerPool.Add(http_draft.New(draftUC))
	controllerPool.Add(http_pick.New(selector))
	controllerPool.Add(http_admin.New(curatedRepository, adminMiddleware))
	controllerPool.Add(ws_availability.New(availabilityUC))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
