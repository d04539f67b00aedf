package v0

import "github.com/gin-gonic/gin"

const BasePath = "/payin/api/v0/disputes"

type Router struct {
	handler DisputeHandler
}

func NewRouter(handler DisputeHandler) *Router {
	return &Router{handler: handler}
}

func (r *Router) SetUp(engine *gin.Engine) {
	g := engine.Group(BasePath)

	g.GET("/", r.handler.ListDisputes)
	g.GET("/_cumulative-amount", r.handler.CumulativeAmount)
	g.GET("/_cumulative-count", r.handler.CumulativeCount)
	g.GET("/:dispute_id", r.handler.GetDispute)
	g.POST("/:dispute_id/evidence-submitted", r.handler.SubmitEvidence)
}
