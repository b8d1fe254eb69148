// controllers/srv.go
package controllers

import (
	"net/http"
	"strings"
	"time"

	"Gin_postgres_redis_lost_found/app"
	"Gin_postgres_redis_lost_found/claims"
	"Gin_postgres_redis_lost_found/db"
	"Gin_postgres_redis_lost_found/session"

	"github.com/gin-gonic/gin"
)

type Srv struct {
	Repo    *db.Repo
	Claims  *claims.Service
	AppSess *session.AppSessionStore
	Cfg     app.Config
}

func GetSrv(a *app.App) *Srv {
	repo := db.NewRepo(a.DB)
	return &Srv{
		Repo:    repo,
		Claims:  claims.NewService(repo),
		AppSess: a.AppSessions(),
		Cfg:     a.Config,
	}
}

// --- helpers ---

func (s *Srv) setAppCookie(w http.ResponseWriter, sessionID string, maxAge time.Duration) {
	secure := strings.HasPrefix(s.Cfg.WebOrigin, "https://")
	http.SetCookie(w, &http.Cookie{
		Name:     app.AppSessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
		MaxAge:   int(maxAge / time.Second),
	})
}

func (s *Srv) clearAppCookie(w http.ResponseWriter) {
	secure := strings.HasPrefix(s.Cfg.WebOrigin, "https://")
	http.SetCookie(w, &http.Cookie{
		Name:     app.AppSessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	})
}

// currentUserID reads the identity AuthRequired stashed in the context.
func currentUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return "", false
	}
	uid, _ := v.(string)
	return uid, uid != ""
}
