// Package app wires the LinkedIn provider into an HTTP login flow.
//
// Routes:
//
//	GET /auth/linkedin           redirect to LinkedIn with a signed state cookie
//	GET /auth/linkedin/callback  verify state, exchange the code, return the member as JSON
//	GET /healthz                 liveness probe
//	GET /readyz                  readiness probe running the registered checks
package app
