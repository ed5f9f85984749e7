// File: internal/router/router.go
package router

import (
	"annotate-me/internal/audit"
	"annotate-me/internal/cache"
	"annotate-me/internal/database"
	"annotate-me/internal/handler"
	"annotate-me/internal/handler/auth"
	"annotate-me/internal/handler/pages"
	"annotate-me/internal/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Deps 路由需要的依賴；DB、Cache、Limiter 可為 nil 表示未設定
type Deps struct {
	DB      database.DB
	Cache   cache.Cache
	Limiter middleware.Limiter
	Audit   audit.Recorder
	Log     *zap.Logger
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	rec := d.Audit
	if rec == nil {
		rec = audit.Nop{}
	}
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}

	var submit []echo.MiddlewareFunc
	if d.Limiter != nil {
		submit = append(submit, middleware.LimitSubmissions(d.Limiter, log))
	}

	// 頁面
	e.GET("/", pages.LandingHandler())
	e.GET("/login", pages.LoginFormHandler())
	e.POST("/login", pages.LoginSubmitHandler(rec), submit...)
	e.GET("/forget-password", pages.ForgetPasswordHandler())

	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache))

	// 登入欄位驗證
	api.POST("/auth/validate", auth.ValidateHandler(rec), submit...)
}
