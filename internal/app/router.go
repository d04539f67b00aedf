package app

import (
	disputev0 "PaymentService/internal/payin/api/dispute/v0"
	transferv0 "PaymentService/internal/payout/api/transfer/v0"
	"PaymentService/pkg/health"
	"PaymentService/pkg/metrics"

	"github.com/gin-gonic/gin"
)

const serviceName = "payment-service"

type Router struct {
	dispute        *disputev0.Router
	transfer       *transferv0.Router
	healthRegistry *health.Registry
}

func NewRouter(
	dispute *disputev0.Router,
	transfer *transferv0.Router,
	healthRegistry *health.Registry,
) *Router {
	return &Router{
		dispute:        dispute,
		transfer:       transfer,
		healthRegistry: healthRegistry,
	}
}

func (r *Router) SetUp(engine *gin.Engine) {
	// Kubernetes-style probes
	engine.GET("/health/live", health.LivenessHandler(serviceName))
	engine.GET("/health/ready", health.ReadinessHandler(r.healthRegistry, health.DefaultTimeout))

	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	r.dispute.SetUp(engine)
	r.transfer.SetUp(engine)
}
