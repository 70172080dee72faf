package core

import "net/http"

// Route describes an endpoint: the venue it lives on, its HTTP verb, its path,
// and whether it requires a signature.
type Route struct {
	Market MarketType
	Method string
	Path   string
	Signed bool
	// Weight is the request weight charged against the rate limiter. Zero counts as one.
	Weight int
}

// PublicRoute returns an unsigned route.
func PublicRoute(market MarketType, method, path string) Route {
	return Route{Market: market, Method: method, Path: path}
}

// SignedRoute returns a route that must be signed with the client credentials.
func SignedRoute(market MarketType, method, path string) Route {
	return Route{Market: market, Method: method, Path: path, Signed: true}
}

// WithWeight returns a copy of the route with the given request weight.
func (r Route) WithWeight(weight int) Route {
	r.Weight = weight
	return r
}

// Cost returns the weight to charge for one call.
func (r Route) Cost() int {
	if r.Weight < 1 {
		return 1
	}
	return r.Weight
}

// String returns "METHOD /path".
func (r Route) String() string {
	return r.Method + " " + r.Path
}

// IsValidMethod reports whether the route uses a verb the client can dispatch.
func (r Route) IsValidMethod() bool {
	switch r.Method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}
