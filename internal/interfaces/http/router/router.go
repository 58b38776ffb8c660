package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router composes the API surface. Public registrars sit directly under
// the prefix; protected registrars are additionally gated behind the
// auth middleware.
type Router struct {
	engine    *gin.Engine
	prefix    string
	auth      []gin.HandlerFunc
	public    []RouteRegistrar
	protected []RouteRegistrar
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithPrefix sets the API path prefix
func WithPrefix(prefix string) RouterOption {
	return func(r *Router) {
		r.prefix = prefix
	}
}

// WithAuth sets the middleware applied to protected registrars
func WithAuth(middleware ...gin.HandlerFunc) RouterOption {
	return func(r *Router) {
		r.auth = middleware
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine:    engine,
		prefix:    "/api",
		public:    make([]RouteRegistrar, 0),
		protected: make([]RouteRegistrar, 0),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds a RouteRegistrar behind the auth middleware
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.protected = append(r.protected, registrar)
	return r
}

// RegisterPublic adds a RouteRegistrar without the auth middleware
func (r *Router) RegisterPublic(registrar RouteRegistrar) *Router {
	r.public = append(r.public, registrar)
	return r
}

// Setup registers all routes with the engine
func (r *Router) Setup() {
	api := r.engine.Group(r.prefix)

	for _, registrar := range r.public {
		registrar.RegisterRoutes(api)
	}

	authed := api.Group("", r.auth...)
	for _, registrar := range r.protected {
		registrar.RegisterRoutes(authed)
	}
}
