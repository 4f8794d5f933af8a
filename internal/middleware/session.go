package middleware

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	frameSessionName = "frame-session"
	lastFIDKey       = "lastFid"
)

// Sessions installs the cookie session store.
func Sessions(secret string) echo.MiddlewareFunc {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return session.Middleware(store)
}

// SessionFID returns the lastFid remembered for this browser, or "".
// It is safe to call when no session middleware is installed.
func SessionFID(c echo.Context) string {
	sess, err := session.Get(frameSessionName, c)
	if err != nil {
		return ""
	}
	fid, _ := sess.Values[lastFIDKey].(string)
	return fid
}

// RememberFID stores fid as the browser's lastFid.
func RememberFID(c echo.Context, fid string) error {
	sess, err := session.Get(frameSessionName, c)
	if err != nil {
		return err
	}
	sess.Values[lastFIDKey] = fid
	return sess.Save(c.Request(), c.Response())
}
