package user

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	AccessCookieName  = "accessToken"
	RefreshCookieName = "refreshToken"
)

// CookieManager attaches and clears the session cookies. Both cookies are
// HTTP-only; Secure, SameSite and path come from configuration.
type CookieManager struct {
	secure     bool
	sameSite   http.SameSite
	path       string
	refreshAge time.Duration
}

func NewCookieManager(secure bool, sameSite, path string, refreshTTL time.Duration) *CookieManager {
	return &CookieManager{
		secure:     secure,
		sameSite:   parseSameSite(sameSite),
		path:       path,
		refreshAge: refreshTTL,
	}
}

// Attach sets both session cookies. The access cookie is session-scoped;
// the refresh cookie persists for the refresh-token TTL so cookie and token
// lifetimes match.
func (m *CookieManager) Attach(c *gin.Context, pair *TokenPair) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     AccessCookieName,
		Value:    pair.AccessToken,
		Path:     m.path,
		Secure:   m.secure,
		HttpOnly: true,
		SameSite: m.sameSite,
	})
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    pair.RefreshToken,
		Path:     m.path,
		MaxAge:   int(m.refreshAge.Seconds()),
		Secure:   m.secure,
		HttpOnly: true,
		SameSite: m.sameSite,
	})
}

// Clear removes both session cookies by name.
func (m *CookieManager) Clear(c *gin.Context) {
	for _, name := range []string{AccessCookieName, RefreshCookieName} {
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     m.path,
			MaxAge:   -1,
			Secure:   m.secure,
			HttpOnly: true,
			SameSite: m.sameSite,
		})
	}
}

func parseSameSite(v string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
