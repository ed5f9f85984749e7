package middleware

import (
	"context"
	"net/http"

	"annotate-me/internal/dto"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Limiter 判斷某個 key 是否還能送出
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// LimitSubmissions 依來源 IP 限制送出次數
// 快取失敗時放行並記錄警告
func LimitSubmissions(l Limiter, log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := l.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn("submission throttle unavailable", zap.Error(err))
				return next(c)
			}
			if !ok {
				return c.JSON(http.StatusTooManyRequests, dto.HTTPError{Message: dto.MsgTooManyAttempts})
			}
			return next(c)
		}
	}
}
