package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CookieName   = "access_token"
	cookieMaxAge = 86400 // 1 day
)

// IsAuthenticated parses the raw Cookie header and reports whether the
// access_token attribute equals the secret exactly. A prefix or suffix
// partial match is not a match.
func IsAuthenticated(cookieHeader, secret string) bool {
	for _, part := range strings.Split(cookieHeader, ";") {
		name, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if ok && name == CookieName {
			return value == secret
		}
	}
	return false
}

// ShowLoginPage renders the login view. failed means a rejected login
// attempt: status 401 and no caching, so the browser re-asks every time.
func ShowLoginPage(c *gin.Context, errorMsg string, failed bool) {
	status := http.StatusOK
	if failed {
		status = http.StatusUnauthorized
		c.Header("Cache-Control", "no-store")
	}
	c.HTML(status, "login.tmpl", gin.H{"Error": errorMsg})
	c.Abort()
}

// Login returns the handler for POST /login. There is a single shared
// credential, so a failed attempt never reveals more than "wrong password".
func Login(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		password := c.PostForm("password")
		if secret == "" || password != secret {
			ShowLoginPage(c, "密码错误", true)
			return
		}
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(CookieName, secret, cookieMaxAge, "/", "", false, true)
		c.Redirect(http.StatusFound, "/")
	}
}

// Gate is a route wrapper that puts the credential check ahead of the file
// manager handlers. An empty Secret disables the gate (open mode).
// OpenDownloads restores the lenient variant where bare GET downloads and
// previews skip the check.
type Gate struct {
	Base          *gin.Engine
	Secret        string
	OpenDownloads bool
}

func (g *Gate) wrap(handler gin.HandlerFunc, download bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if g.Secret == "" || (download && g.OpenDownloads) ||
			IsAuthenticated(c.GetHeader("Cookie"), g.Secret) {
			handler(c)
			return
		}
		ShowLoginPage(c, "请先登录", false)
	}
}

func (g *Gate) GET(path string, handler gin.HandlerFunc) {
	g.Base.GET(path, g.wrap(handler, false))
}

func (g *Gate) POST(path string, handler gin.HandlerFunc) {
	g.Base.POST(path, g.wrap(handler, false))
}

// Download wraps a handler that serves file content, honoring OpenDownloads.
// Used for the catch-all download route and inline previews.
func (g *Gate) Download(handler gin.HandlerFunc) gin.HandlerFunc {
	return g.wrap(handler, true)
}
