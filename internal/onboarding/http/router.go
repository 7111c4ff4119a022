package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/pulsefit/fitgate/internal/onboarding/service"
	"github.com/pulsefit/fitgate/internal/onboarding/store"
	"github.com/pulsefit/fitgate/pkg/httpx"
	"github.com/pulsefit/fitgate/pkg/jwtx"
	"github.com/pulsefit/fitgate/pkg/slogx"

	_ "github.com/pulsefit/fitgate/api/fitgate" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	issuer       string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	// AdminKeyHash is the argon2id hash guarding the leads endpoint.
	// Empty disables the admin surface entirely (handlers 404).
	AdminKeyHash string

	OnboardingService  *service.OnboardingService
	LoginService       *service.LoginService
	EntitlementService *service.EntitlementService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	issuer, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		issuer:       issuer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerOnboarding()
	r.registerAuth()
	r.registerEntitlements()
	r.registerProfile()
	r.registerAdmin()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			FitGate Onboarding Service API
//	@version		0.1.0
//	@description	Conversational onboarding, tier classification and feature entitlement
//	@description	gateway for the PulseFit fitness app. Completing the intake flow mints a
//	@description	FIT-XXX-NNNN access code; logging in with the code opens a short-lived
//	@description	session scoped to the member's tier.
//
//	@contact.name				PulseFit Engineering
//	@contact.url				https://github.com/pulsefit/fitgate
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token from the login endpoint. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerOnboarding() {
	startHandler := &SessionStartHandler{OnboardingService: r.OnboardingService}
	questionHandler := &CurrentQuestionHandler{OnboardingService: r.OnboardingService}
	answerHandler := &SubmitAnswerHandler{OnboardingService: r.OnboardingService}
	backHandler := &BackHandler{OnboardingService: r.OnboardingService}

	// POST /sessions - moderate rate limit (public entry point)
	r.Mux.Handle("POST /v1/onboarding/sessions",
		httpx.Chain(startHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// GET /sessions/{token}/question - lenient, read-only
	r.Mux.Handle("GET /v1/onboarding/sessions/{token}/question",
		httpx.Chain(questionHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// POST /sessions/{token}/answers - moderate rate limit
	r.Mux.Handle("POST /v1/onboarding/sessions/{token}/answers",
		httpx.Chain(answerHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// POST /sessions/{token}/back - moderate rate limit
	r.Mux.Handle("POST /v1/onboarding/sessions/{token}/back",
		httpx.Chain(backHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAuth() {
	h := &LoginHandler{LoginService: r.LoginService}

	// POST /login - strict rate limit (access-code guessing prevention)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerEntitlements() {
	h := &EntitlementsHandler{EntitlementService: r.EntitlementService}

	secured := func(next http.Handler) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.verifier), // verify session token (iss/exp)
			httpx.RateLimitByIP(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("GET /v1/entitlements", secured(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("GET /v1/entitlements/{feature}", secured(http.HandlerFunc(h.HandleCheck)))
}

func (r *Router) registerProfile() {
	h := &ProfileHandler{Store: r.store}

	secured := httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByIP(httpx.LenientLimit),
	)

	r.Mux.Handle("GET /v1/profile", secured)
}

func (r *Router) registerAdmin() {
	h := &LeadsHandler{Store: r.store}

	// GET /admin/leads - admin key guarded, moderate rate limit
	secured := httpx.Chain(h,
		httpx.RequireAdminKey(r.AdminKeyHash),
		httpx.RateLimitByIP(httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /v1/admin/leads", secured)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys))
}
