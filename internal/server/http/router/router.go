package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/logistics-platform/waybill/internal/server/http/handlers"
	"github.com/logistics-platform/waybill/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.WaybillFacade, health *handlers.HealthHandler, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	waybillHandler := handlers.NewWaybillHandler(facade)

	wb := engine.Group("/waybill")
	wb.POST("", waybillHandler.Create)
	wb.GET("", waybillHandler.List)
	wb.GET("/:waybillNo", waybillHandler.GetByNo)
	wb.PUT("/status/:waybillNo", waybillHandler.UpdateStatus)

	engine.GET("/ping", health.Ping)

	return engine
}
