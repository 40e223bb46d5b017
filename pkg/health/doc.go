// Package health provides liveness and readiness probe handlers.
//
// The liveness handler always answers 200. The readiness handler runs the
// registered checks concurrently under a shared timeout and answers 503
// when any of them fails:
//
//	r.Get("/healthz", health.LivenessHandler())
//	r.Get("/readyz", health.ReadinessHandler(health.Checks{
//		"linkedin": health.HTTPCheck(client, "https://www.linkedin.com/oauth/v2/authorization"),
//	}, health.WithTimeout(3*time.Second)))
//
// Responses are JSON:
//
//	{"status":"unhealthy","checks":{"linkedin":{"status":"unhealthy","error":"..."}}}
package health
