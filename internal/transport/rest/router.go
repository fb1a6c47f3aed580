package rest

import (
	"net/http"

	"github.com/werdnakof/ask-parents-25-questions/internal/transport/middleware"
)

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Me       *MeHandler
	Profile  *ProfileHandler
	Question *QuestionHandler
	Answer   *AnswerHandler
	Billing  *BillingHandler
	// GraphQL serves the read-only query endpoint; nil leaves it unmounted.
	GraphQL  http.Handler
}

// NewRouter mounts every route. Health checks bypass the api middleware; api wraps
// all /v1 routes and authLimit additionally guards the credential endpoints.
func NewRouter(h Handlers, api, authLimit middleware.Middleware) http.Handler {
	v1 := http.NewServeMux()

	public := func(f http.HandlerFunc) http.Handler { return f }
	limited := func(f http.HandlerFunc) http.Handler { return middleware.Chain(authLimit)(f) }
	user := func(f http.HandlerFunc) http.Handler { return middleware.RequireUser(f) }

	v1.Handle("POST /v1/auth/register", limited(h.Auth.Register))
	v1.Handle("POST /v1/auth/login", limited(h.Auth.Login))
	v1.Handle("POST /v1/auth/refresh", limited(h.Auth.Refresh))
	v1.Handle("POST /v1/auth/logout", user(h.Auth.Logout))

	v1.Handle("GET /v1/me", user(h.Me.Get))
	v1.Handle("PATCH /v1/me", user(h.Me.Update))
	v1.Handle("GET /v1/me/tier", user(h.Me.Tier))
	v1.Handle("GET /v1/me/tier/stream", user(h.Me.TierStream))

	v1.Handle("GET /v1/catalog", public(h.Question.Catalog))

	v1.Handle("GET /v1/profiles", user(h.Profile.List))
	v1.Handle("POST /v1/profiles", user(h.Profile.Create))
	v1.Handle("GET /v1/profiles/{profileID}", user(h.Profile.Get))
	v1.Handle("PATCH /v1/profiles/{profileID}", user(h.Profile.Update))
	v1.Handle("DELETE /v1/profiles/{profileID}", user(h.Profile.Delete))
	v1.Handle("PUT /v1/profiles/{profileID}/photo", user(h.Profile.UploadPhoto))
	v1.Handle("DELETE /v1/profiles/{profileID}/photo", user(h.Profile.RemovePhoto))

	v1.Handle("GET /v1/profiles/{profileID}/catalog", user(h.Question.ProfileCatalog))
	v1.Handle("GET /v1/profiles/{profileID}/questions", user(h.Question.List))
	v1.Handle("POST /v1/profiles/{profileID}/questions/curated", user(h.Question.AddCurated))
	v1.Handle("POST /v1/profiles/{profileID}/questions/custom", user(h.Question.AddCustom))
	v1.Handle("GET /v1/profiles/{profileID}/questions/{questionID}", user(h.Question.Get))
	v1.Handle("DELETE /v1/profiles/{profileID}/questions/{questionID}", user(h.Question.Remove))

	v1.Handle("GET /v1/profiles/{profileID}/answers", user(h.Answer.List))
	v1.Handle("GET /v1/profiles/{profileID}/answers/{questionID}", user(h.Answer.Get))
	v1.Handle("PUT /v1/profiles/{profileID}/answers/{questionID}", user(h.Answer.Save))
	v1.Handle("GET /v1/profiles/{profileID}/summary", user(h.Answer.Summary))

	if h.GraphQL != nil {
		v1.Handle("POST /v1/graphql", middleware.RequireUser(h.GraphQL))
	}

	v1.Handle("POST /v1/billing/checkout", user(h.Billing.Checkout))
	v1.Handle("POST /v1/billing/webhook", public(h.Billing.Webhook))

	root := http.NewServeMux()
	root.HandleFunc("GET /live", h.Health.Live)
	root.HandleFunc("GET /ready", h.Health.Ready)
	root.HandleFunc("GET /health", h.Health.Health)
	root.Handle("/v1/", api(v1))
	return root
}
