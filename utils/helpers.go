package utils

import (
	"net/http"
	"strings"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
)

// ExtractToken finds the session token on r: the mirrored cookie first, then
// a bearer Authorization header. Malformed sources count as absent.
func ExtractToken(r *http.Request, cookieName string) (string, bool) {
	extractors := []jwtmiddleware.TokenExtractor{
		jwtmiddleware.CookieTokenExtractor(cookieName),
		jwtmiddleware.AuthHeaderTokenExtractor,
	}
	for _, extract := range extractors {
		token, err := extract(r)
		if err != nil {
			continue
		}
		if token = strings.TrimSpace(token); token != "" {
			return token, true
		}
	}
	return "", false
}

// MatchesPrefix reports whether path falls under any of prefixes. A prefix
// matches itself and anything below it, so /login matches /login/reset but
// not /loginx.
func MatchesPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		p = strings.TrimRight(p, "/")
		if p == "" {
			continue
		}
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}
