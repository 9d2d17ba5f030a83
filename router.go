package main

import (
	"dependencySheet/contracts"
	"github.com/gin-gonic/gin"
	"net/http"
)

const ApiVersion = "v1"

const subscribePath = "subscribe"
const printPath = "print"

func SetupRouter(controller contracts.ApiController, metricsHandler http.Handler) *gin.Engine {
	router := gin.New()

	apiRouterGroup := router.Group("/api/" + ApiVersion)
	apiRouterGroup.POST("/percentiles", controller.PercentilesAction)
	apiRouterGroup.POST("/sequences/:sequence_id", controller.AppendSequenceAction)
	apiRouterGroup.GET("/sequences/:sequence_id", controller.GetSequenceAction)

	apiRouterGroup.POST("/:sheet_id/:cell_id/"+subscribePath, controller.SubscribeAction)
	apiRouterGroup.GET("/:sheet_id/"+printPath, controller.PrintSheetAction)

	apiRouterGroup.POST("/:sheet_id/:cell_id", controller.SetCellAction)
	apiRouterGroup.GET("/:sheet_id/:cell_id", controller.GetCellAction)
	apiRouterGroup.GET("/:sheet_id", controller.GetSheetAction)
	apiRouterGroup.DELETE("/:sheet_id", controller.DeleteSheetAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	return router
}
