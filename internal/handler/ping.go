// File: internal/handler/ping.go
package handler

import (
	"net/http"

	"annotate-me/internal/cache"
	"annotate-me/internal/database"
	"annotate-me/internal/dto"

	"github.com/labstack/echo/v4"
)

// PingResponse 健康檢查回應模型
// swagger:model PingResponse
type PingResponse struct {
	// 回應訊息
	Message string `json:"message" example:"pong"`
}

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查已設定的資料庫與快取連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /ping [get]
func PingHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if db != nil {
			if err := db.Ping(ctx); err != nil {
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: dto.MsgDatabaseUnhealthy})
			}
		}
		if rdb != nil {
			if err := rdb.Ping(ctx).Err(); err != nil {
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: dto.MsgCacheUnhealthy})
			}
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
