package app

import (
	"PaymentService/pkg/logger"
	"PaymentService/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func NewGinEngine() *gin.Engine {
	engine := gin.New()
	engine.Use(
		logger.CorrelationMiddleware(),
		metrics.GinMiddleware(),
		logger.RequestLogger(),
		gin.Recovery(),
	)
	return engine
}
