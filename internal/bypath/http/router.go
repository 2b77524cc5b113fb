package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/bypath/internal/bypath/service"
	"github.com/aussiebroadwan/bypath/internal/bypath/store"
	"github.com/aussiebroadwan/bypath/pkg/httpx"
	"github.com/aussiebroadwan/bypath/pkg/slogx"

	_ "github.com/aussiebroadwan/bypath/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	adminKey     string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	CredentialService *service.CredentialService
	TokenService      *service.TokenService
	SignatureService  *service.SignatureService
	UserService       *service.UserService
	Authenticator     *service.BearerAuthenticator
}

func NewRouter(buildVersion, adminKey string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		adminKey:     adminKey,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		AttemptMiddleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerTokens()
	r.registerIdentity()
	r.registerClients()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Bypath Authentication Service API
//	@version		0.1.0
//	@description	Credential service for first-party API clients: signed-request verification with per-client secrets and per-user bearer tokens under the "Bypath" scheme.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/bypath
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	AdminKey
//	@in							header
//	@name						X-Admin-Key
//	@description				Shared administrative key for the client and user management endpoints.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerTokens() {
	// POST /v1/tokens - strict rate limit by IP (credential-bearing endpoint)
	tokenHandler := &TokenHandler{
		SignatureService: r.SignatureService,
		TokenService:     r.TokenService,
		UserService:      r.UserService,
	}
	r.Mux.Handle("POST /v1/tokens",
		httpx.Chain(tokenHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /v1/verify - strict rate limit by IP (signature oracle)
	verifyHandler := &VerifyHandler{SignatureService: r.SignatureService}
	r.Mux.Handle("POST /v1/verify",
		httpx.Chain(verifyHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerIdentity() {
	// GET /v1/whoami - lenient rate limit; anonymous access is a valid outcome
	whoamiHandler := &WhoAmIHandler{Authenticator: r.Authenticator}
	r.Mux.Handle("GET /v1/whoami",
		httpx.Chain(whoamiHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerClients() {
	h := &ClientsHandler{CredentialService: r.CredentialService}
	admin := AdminKeyMiddleware(r.adminKey)

	secured := func(handler http.HandlerFunc) http.Handler {
		return httpx.Chain(handler,
			admin,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("POST /v1/clients", secured(h.HandleCreate))
	r.Mux.Handle("GET /v1/clients", secured(h.HandleList))
	r.Mux.Handle("GET /v1/clients/{id}", secured(h.HandleGet))
	r.Mux.Handle("POST /v1/clients/{id}/secret", secured(h.HandleRotateSecret))
	r.Mux.Handle("GET /v1/clients/{id}/rotations", secured(h.HandleListRotations))
	r.Mux.Handle("POST /v1/clients/{id}/status", secured(h.HandleUpdateStatus))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.Handle("POST /v1/users",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			AdminKeyMiddleware(r.adminKey),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
