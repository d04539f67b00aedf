package v0

import "github.com/gin-gonic/gin"

const BasePath = "/payout/api/v0/transfers"

type Router struct {
	handler TransferHandler
}

func NewRouter(handler TransferHandler) *Router {
	return &Router{handler: handler}
}

func (r *Router) SetUp(engine *gin.Engine) {
	g := engine.Group(BasePath)

	g.POST("/", r.handler.CreateTransfer)
	g.GET("/:transfer_id", r.handler.GetTransfer)
	g.PATCH("/:transfer_id", r.handler.UpdateTransfer)

	g.POST("/stripe/", r.handler.CreateStripeTransfer)
	g.GET("/stripe/_get-by-stripe-id", r.handler.GetStripeTransferByStripeID)
	g.GET("/stripe/_get-by-transfer-id", r.handler.GetStripeTransfersByTransferID)
	g.GET("/stripe/:stripe_transfer_id", r.handler.GetStripeTransfer)
	g.PATCH("/stripe/:stripe_transfer_id", r.handler.UpdateStripeTransfer)
	g.DELETE("/stripe/_delete-by-stripe-id", r.handler.DeleteStripeTransferByStripeID)
}
