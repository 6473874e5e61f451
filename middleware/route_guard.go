package middleware

import (
	"net/http"

	"github.com/andrewpaige1/questionbank-console/auth"
	"github.com/andrewpaige1/questionbank-console/utils"
)

// RouteGuard redirects requests for protected paths to loginPath unless they
// carry a session token in the authToken cookie or a bearer header. Only
// presence is checked; the API server validates the token itself.
func RouteGuard(publicPaths []string, loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if utils.MatchesPrefix(r.URL.Path, publicPaths) {
				next.ServeHTTP(w, r)
				return
			}
			if _, ok := utils.ExtractToken(r, auth.CookieName); !ok {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
