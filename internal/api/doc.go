// Package api wires HTTP routing and request handling.
//
// It translates HTTP requests into service calls and service results back
// into JSON responses; no business rules live here.
package api
