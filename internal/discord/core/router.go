package core

// route identifies one slash command or one component action
type route struct {
	component bool
	name      string
}

// Router maps slash commands and the component actions of one custom ID
// domain to handlers
type Router struct {
	ids        *CustomIDBuilder
	routes     map[route]Handler
	middleware []Middleware
}

// NewRouter creates a router owning the custom IDs of domain
func NewRouter(domain string) *Router {
	return &Router{
		ids:    NewCustomIDBuilder(domain),
		routes: make(map[route]Handler),
	}
}

// Use adds middleware to this router. It wraps handlers registered after
// the call only.
func (r *Router) Use(middleware ...Middleware) *Router {
	r.middleware = append(r.middleware, middleware...)
	return r
}

func (r *Router) add(key route, handler Handler) *Router {
	for i := len(r.middleware) - 1; i >= 0; i-- {
		handler = r.middleware[i](handler)
	}
	r.routes[key] = handler
	return r
}

// Command registers the handler of a slash command
func (r *Router) Command(name string, handler Handler) *Router {
	return r.add(route{name: name}, handler)
}

// CommandFunc is Command for a plain function
func (r *Router) CommandFunc(name string, fn func(*InteractionContext) (*HandlerResult, error)) *Router {
	return r.Command(name, HandlerFunc(fn))
}

// Component registers the handler of a button action in this router's domain
func (r *Router) Component(action string, handler Handler) *Router {
	return r.add(route{component: true, name: action}, handler)
}

// ComponentFunc is Component for a plain function
func (r *Router) ComponentFunc(action string, fn func(*InteractionContext) (*HandlerResult, error)) *Router {
	return r.Component(action, HandlerFunc(fn))
}

// CustomIDs returns the builder for this router's component ids
func (r *Router) CustomIDs() *CustomIDBuilder {
	return r.ids
}

// Build freezes the routes into a Handler for the pipeline
func (r *Router) Build() Handler {
	routes := make(map[route]Handler, len(r.routes))
	for key, h := range r.routes {
		routes[key] = h
	}
	return &routerHandler{ids: r.ids, routes: routes}
}

type routerHandler struct {
	ids    *CustomIDBuilder
	routes map[route]Handler
}

func (h *routerHandler) CanHandle(ctx *InteractionContext) bool {
	_, ok := h.lookup(ctx)
	return ok
}

func (h *routerHandler) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	handler, ok := h.lookup(ctx)
	if !ok {
		return nil, Invalid("That button is no longer supported.")
	}
	return handler.Handle(ctx)
}

func (h *routerHandler) lookup(ctx *InteractionContext) (Handler, bool) {
	var key route
	switch {
	case ctx.IsCommand():
		key = route{name: ctx.CommandName()}
	case ctx.IsComponent():
		customID, err := ctx.CustomID()
		if err != nil || !h.ids.Owns(customID) {
			return nil, false
		}
		key = route{component: true, name: customID.Action}
	default:
		return nil, false
	}

	handler, ok := h.routes[key]
	return handler, ok
}
