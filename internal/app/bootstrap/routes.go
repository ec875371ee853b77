// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/cafehubapp/cafehub/internal/app/coordinator"
	cafesfeature "github.com/cafehubapp/cafehub/internal/app/features/cafes"
	employeesfeature "github.com/cafehubapp/cafehub/internal/app/features/employees"
	healthfeature "github.com/cafehubapp/cafehub/internal/app/features/health"
	logostore "github.com/cafehubapp/cafehub/internal/app/store/logos"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. CafeHub mounts the health endpoint and
// the café and employee JSON APIs; everything stateful flows through the
// coordinator and the query packages, so the routing layer stays thin.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	logos, err := logostore.New(deps.MongoDatabase)
	if err != nil {
		logger.Error("gridfs bucket init failed", zap.Error(err))
		return nil, err
	}

	coord := coordinator.New(deps.MongoDatabase, logos, logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	cafesHandler := cafesfeature.NewHandler(deps.MongoDatabase, coord, logos, appCfg.LogoMaxBytes, logger)
	r.Mount("/cafes", cafesfeature.Routes(cafesHandler))

	employeesHandler := employeesfeature.NewHandler(deps.MongoDatabase, coord, logger)
	r.Mount("/employees", employeesfeature.Routes(employeesHandler))

	return r, nil
}
