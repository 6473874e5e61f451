package auth

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// TokenKey and UserKey are the durable storage keys of the session.
	TokenKey = "authToken"
	UserKey  = "user"

	// CookieName mirrors the token for the route guard.
	CookieName   = "authToken"
	CookieMaxAge = 7 * 24 * 60 * 60
)

// AuthCookie is the cookie that mirrors token, valid for seven days.
func AuthCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   CookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie removes the mirrored token cookie.
func ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
	}
}

// TokenExpiry reads the exp claim of a JWT without verifying it. The console
// never validates tokens; this is for display only. Opaque tokens report no
// expiry.
func TokenExpiry(token string) (time.Time, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// StoredToken reads the bearer token from durable storage on every call.
type StoredToken struct {
	Storage Storage
}

func (s StoredToken) Token() string {
	token, ok, err := s.Storage.Get(TokenKey)
	if err != nil || !ok {
		return ""
	}
	return token
}
