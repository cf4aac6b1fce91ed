package app

import (
	"net/http"

	"github.com/amteixeira/uvtrack-backend/internal/transport/rest"
)

type routeDeps struct {
	assembly *rest.AssemblyHandler
	reading  *rest.ReadingHandler
	stats    *rest.StatsHandler
	user     *rest.UserHandler
	health   *rest.HealthHandler
}

// routes builds the HTTP route table. Authentication is enforced inside
// the services via the request context, so the mux itself makes no
// distinction between public and protected routes.
func routes(d routeDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", d.health.Live)
	mux.HandleFunc("GET /ready", d.health.Ready)
	mux.HandleFunc("GET /health", d.health.Health)

	mux.HandleFunc("POST /api/auth/register", d.user.Register)
	mux.HandleFunc("POST /api/auth/login", d.user.Login)
	mux.HandleFunc("GET /api/me", d.user.Me)
	mux.HandleFunc("PATCH /api/me", d.user.UpdateMe)
	mux.HandleFunc("GET /api/users/{username}", d.user.GetUser)

	mux.HandleFunc("GET /api/catalog", d.assembly.Catalog)
	mux.HandleFunc("GET /api/catalog/components/{id}", d.assembly.Component)
	mux.HandleFunc("POST /api/assemblies", d.assembly.Create)
	mux.HandleFunc("GET /api/assemblies", d.assembly.List)
	mux.HandleFunc("GET /api/assemblies/{id}", d.assembly.Get)
	mux.HandleFunc("PUT /api/assemblies/{id}", d.assembly.Edit)
	mux.HandleFunc("DELETE /api/assemblies/{id}", d.assembly.Delete)

	mux.HandleFunc("POST /api/readings", d.reading.Record)

	mux.HandleFunc("GET /api/stats/weekly", d.stats.Weekly)
	mux.HandleFunc("GET /api/stats/overall", d.stats.Overall)
	mux.HandleFunc("GET /api/stats/locations", d.stats.TopLocations)
	mux.HandleFunc("GET /api/stats/daily", d.stats.DailyAverages)

	return mux
}
