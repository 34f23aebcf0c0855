// Package middleware provides the HTTP middleware shared by all routes.
//
// The only middleware here is the session bootstrap: it turns the anonymous
// sid cookie into a resolved identity on the request context.
package middleware
