// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import "net/http"

// SecureHeaders adds security-related HTTP headers to every response, the
// public pages and the admin panel alike.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		// Never MIME-sniff the Content-Type.
		h.Set("X-Content-Type-Options", "nosniff")

		// Nothing here is ever meant to be framed, not the portfolio
		// pages and certainly not the admin panel.
		h.Set("X-Frame-Options", "DENY")

		// Disable the legacy XSS filter (can cause issues; CSP is preferred).
		h.Set("X-XSS-Protection", "0")

		// Outbound project links should not leak full admin URLs.
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		// Keep the site out of FLoC cohort calculations.
		h.Set("Permissions-Policy", "interest-cohort=()")

		next.ServeHTTP(w, r)
	})
}
