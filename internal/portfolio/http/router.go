package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/foliohq/folio/internal/portfolio/service"
	"github.com/foliohq/folio/internal/portfolio/store"
	"github.com/foliohq/folio/pkg/httpx"
	"github.com/foliohq/folio/pkg/identity"
	"github.com/foliohq/folio/pkg/slogx"

	_ "github.com/foliohq/folio/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *identity.KeySet
	verifier     identity.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	RolesService     *service.RolesService
	DirectoryService *service.DirectoryService
	InviteService    *service.InviteService
	ContentService   *service.ContentService
	ContactService   *service.ContactService
	AnalyticsService *service.AnalyticsService
}

func NewRouter(
	keys *identity.KeySet,
	verifier identity.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
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
	r.registerIdentity()
	r.registerInvitations()
	r.registerContent()
	r.registerContact()
	r.registerAnalytics()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Folio Portfolio API
//	@version		0.1.0
//	@description	Backend for a portfolio website: public read endpoints for the site content and an
//	@description	invitation-gated admin surface for managing it.
//	@description
//	@description				Admin callers authenticate with bearer tokens issued by an external identity
//	@description				provider; authorization is decided locally from the caller's role.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Identity provider access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps an admin handler: token verification, account resolution,
// permission checks, then a moderate per-user rate limit. An empty perms list
// requires authentication only.
func (r *Router) secured(h http.Handler, perms ...domain.Permission) http.Handler {
	mws := []httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier),
		AccountMiddleware(r.DirectoryService),
	}
	if len(perms) > 0 {
		names := make([]string, len(perms))
		for i, p := range perms {
			names[i] = string(p)
		}
		mws = append(mws, httpx.RequireAnyPermission(names...))
	}
	mws = append(mws, httpx.RateLimitByUser(httpx.ModerateLimit))
	return httpx.Chain(h, mws...)
}

// public wraps an unauthenticated read endpoint with the public rate limit.
func public(h http.Handler) http.Handler {
	return httpx.Chain(h, httpx.RateLimitByIP(httpx.PublicLimit))
}

func (r *Router) registerIdentity() {
	me := &MeHandler{DirectoryService: r.DirectoryService}
	accounts := &AccountsHandler{DirectoryService: r.DirectoryService}
	roles := &RolesHandler{RolesService: r.RolesService}

	r.Mux.Handle("GET /v1/me", r.secured(http.HandlerFunc(me.HandleGet)))
	r.Mux.Handle("PATCH /v1/me", r.secured(http.HandlerFunc(me.HandlePatch)))

	// Listing filters by visibility in the service, so any authenticated
	// account may call it. Mutations require manage_admin_users; finer
	// guards like the superadmin deletion rule live in the service.
	r.Mux.Handle("GET /v1/accounts", r.secured(http.HandlerFunc(accounts.HandleList)))
	r.Mux.Handle("PATCH /v1/accounts/{id}",
		r.secured(http.HandlerFunc(accounts.HandleSetActive), domain.PermManageAccounts))
	r.Mux.Handle("DELETE /v1/accounts/{id}",
		r.secured(http.HandlerFunc(accounts.HandleDelete), domain.PermManageAccounts))

	// Role visibility is decided in the service, so authentication alone.
	r.Mux.Handle("GET /v1/roles", r.secured(roles))
}

func (r *Router) registerInvitations() {
	admin := &InvitationsHandler{InviteService: r.InviteService}
	pub := &InvitationsPublicHandler{InviteService: r.InviteService}

	r.Mux.Handle("POST /v1/invitations",
		r.secured(http.HandlerFunc(admin.HandleIssue),
			domain.PermSendInvitations, domain.PermManageAccounts))
	// Listing filters by visibility in the service: account managers see
	// everything, other callers only what they issued themselves.
	r.Mux.Handle("GET /v1/invitations", r.secured(http.HandlerFunc(admin.HandleList)))
	r.Mux.Handle("POST /v1/invitations/{id}/cancel",
		r.secured(http.HandlerFunc(admin.HandleCancel),
			domain.PermSendInvitations, domain.PermManageAccounts))

	// Code validation carries no token at all; codes are guessable only by
	// brute force, so the strict limit applies.
	r.Mux.Handle("GET /v1/invitations/validate",
		httpx.Chain(http.HandlerFunc(pub.HandleValidate),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Acceptance needs a verified identity but, by definition, no account.
	r.Mux.Handle("POST /v1/invitations/accept",
		httpx.Chain(http.HandlerFunc(pub.HandleAccept),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerContent() {
	projects := &ProjectsHandler{ContentService: r.ContentService}
	skills := &SkillsHandler{ContentService: r.ContentService}
	about := &AboutHandler{ContentService: r.ContentService}
	experiences := &ExperiencesHandler{ContentService: r.ContentService}
	educations := &EducationsHandler{ContentService: r.ContentService}
	testimonials := &TestimonialsHandler{ContentService: r.ContentService}
	socialLinks := &SocialLinksHandler{ContentService: r.ContentService}
	settings := &SettingsHandler{ContentService: r.ContentService}
	services := &ServicesHandler{ContentService: r.ContentService}

	// Public reads
	r.Mux.Handle("GET /v1/projects", public(http.HandlerFunc(projects.HandleList)))
	r.Mux.Handle("GET /v1/skills", public(http.HandlerFunc(skills.HandleList)))
	r.Mux.Handle("GET /v1/about", public(http.HandlerFunc(about.HandleGet)))
	r.Mux.Handle("GET /v1/experiences", public(http.HandlerFunc(experiences.HandleList)))
	r.Mux.Handle("GET /v1/educations", public(http.HandlerFunc(educations.HandleList)))
	r.Mux.Handle("GET /v1/testimonials", public(http.HandlerFunc(testimonials.HandleList)))
	r.Mux.Handle("GET /v1/social-links", public(http.HandlerFunc(socialLinks.HandleList)))
	r.Mux.Handle("GET /v1/settings", public(http.HandlerFunc(settings.HandleGet)))
	r.Mux.Handle("GET /v1/services", public(http.HandlerFunc(services.HandleList)))

	// Admin writes, one manage permission per entity
	r.Mux.Handle("POST /v1/projects",
		r.secured(http.HandlerFunc(projects.HandleCreate), domain.PermManageProjects))
	r.Mux.Handle("PUT /v1/projects/{id}",
		r.secured(http.HandlerFunc(projects.HandleUpdate), domain.PermManageProjects))
	r.Mux.Handle("DELETE /v1/projects/{id}",
		r.secured(http.HandlerFunc(projects.HandleDelete), domain.PermManageProjects))

	r.Mux.Handle("POST /v1/skills",
		r.secured(http.HandlerFunc(skills.HandleCreate), domain.PermManageSkills))
	r.Mux.Handle("PUT /v1/skills/{id}",
		r.secured(http.HandlerFunc(skills.HandleUpdate), domain.PermManageSkills))
	r.Mux.Handle("DELETE /v1/skills/{id}",
		r.secured(http.HandlerFunc(skills.HandleDelete), domain.PermManageSkills))

	r.Mux.Handle("PUT /v1/about",
		r.secured(http.HandlerFunc(about.HandleUpsert), domain.PermManageAbout))

	r.Mux.Handle("POST /v1/experiences",
		r.secured(http.HandlerFunc(experiences.HandleCreate), domain.PermManageExperience))
	r.Mux.Handle("PUT /v1/experiences/{id}",
		r.secured(http.HandlerFunc(experiences.HandleUpdate), domain.PermManageExperience))
	r.Mux.Handle("DELETE /v1/experiences/{id}",
		r.secured(http.HandlerFunc(experiences.HandleDelete), domain.PermManageExperience))

	r.Mux.Handle("POST /v1/educations",
		r.secured(http.HandlerFunc(educations.HandleCreate), domain.PermManageEducation))
	r.Mux.Handle("PUT /v1/educations/{id}",
		r.secured(http.HandlerFunc(educations.HandleUpdate), domain.PermManageEducation))
	r.Mux.Handle("DELETE /v1/educations/{id}",
		r.secured(http.HandlerFunc(educations.HandleDelete), domain.PermManageEducation))

	r.Mux.Handle("POST /v1/testimonials",
		r.secured(http.HandlerFunc(testimonials.HandleCreate), domain.PermManageTestimonials))
	r.Mux.Handle("PUT /v1/testimonials/{id}",
		r.secured(http.HandlerFunc(testimonials.HandleUpdate), domain.PermManageTestimonials))
	r.Mux.Handle("DELETE /v1/testimonials/{id}",
		r.secured(http.HandlerFunc(testimonials.HandleDelete), domain.PermManageTestimonials))

	// Social links ride on the settings permission, as does the settings
	// singleton itself.
	r.Mux.Handle("POST /v1/social-links",
		r.secured(http.HandlerFunc(socialLinks.HandleCreate), domain.PermManageSettings))
	r.Mux.Handle("PUT /v1/social-links/{id}",
		r.secured(http.HandlerFunc(socialLinks.HandleUpdate), domain.PermManageSettings))
	r.Mux.Handle("DELETE /v1/social-links/{id}",
		r.secured(http.HandlerFunc(socialLinks.HandleDelete), domain.PermManageSettings))

	r.Mux.Handle("PUT /v1/settings",
		r.secured(http.HandlerFunc(settings.HandleUpsert), domain.PermManageSettings))

	r.Mux.Handle("POST /v1/services",
		r.secured(http.HandlerFunc(services.HandleCreate), domain.PermManageServices))
	r.Mux.Handle("PUT /v1/services/{id}",
		r.secured(http.HandlerFunc(services.HandleUpdate), domain.PermManageServices))
	r.Mux.Handle("DELETE /v1/services/{id}",
		r.secured(http.HandlerFunc(services.HandleDelete), domain.PermManageServices))
}

func (r *Router) registerContact() {
	h := &ContactsHandler{ContactService: r.ContactService}

	// POST /contact - strict rate limit by IP (anonymous write endpoint)
	r.Mux.Handle("POST /v1/contact",
		httpx.Chain(http.HandlerFunc(h.HandleSubmit),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /v1/contact-messages",
		r.secured(http.HandlerFunc(h.HandleList), domain.PermViewAnalytics))
}

func (r *Router) registerAnalytics() {
	h := &AnalyticsHandler{AnalyticsService: r.AnalyticsService}

	r.Mux.Handle("GET /v1/analytics", r.secured(h, domain.PermViewAnalytics))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys))
}
