package routes

import (
	"Gin_postgres_redis_lost_found/app"
	"Gin_postgres_redis_lost_found/controllers"
	"time"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	uc := controllers.GetUserController(s)
	itemCtl := controllers.NewItemController(s)
	claimCtl := controllers.NewClaimController(s)

	authMW := app.AuthRequired(a.AppSessions(), s.Repo)
	adminMW := app.AdminOnly()
	seenMW := app.TouchLastSeen(s.Repo, a.RDB, 5*time.Minute)

	// ------------------------------
	// Public: registration and login
	// ------------------------------
	public := r.Group("/api")
	{
		public.POST("/register", uc.Register)
		public.POST("/login", uc.Login)
	}

	// ------------------------------
	// Items and claims (logged in)
	// ------------------------------
	api := r.Group("/api", authMW, seenMW)
	{
		api.POST("/logout", uc.Logout)

		api.GET("/items", itemCtl.ListItems)
		api.POST("/items", itemCtl.LogItem)
		api.GET("/items/:id", itemCtl.GetItem)
		api.GET("/items/:id/status", itemCtl.ItemStatus)

		api.POST("/items/:id/claim", claimCtl.SubmitClaim)
		api.GET("/claims", claimCtl.MyClaims)
	}

	// ------------------------------
	// User management (admin only)
	// ------------------------------
	users := r.Group("/api/users", authMW, adminMW)
	{
		users.GET("", uc.ListUsers) // ?q=&page=&size=
		users.GET("/:id", uc.GetUser)
		users.DELETE("/:id", uc.DeleteUser)
	}

	// ------------------------------
	// Item curation (admin only)
	// ------------------------------
	itemsAdmin := r.Group("/api/items", authMW, adminMW)
	{
		itemsAdmin.DELETE("/:id", itemCtl.DeleteItem)
	}
}
