package routes

import (
	"globalpay_gateway/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathGateway  = "/gateway"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	rg.GET(PathGateway, paymentHandler.GatewayInfo)

	payments := rg.Group(PathPayments)
	{
		payments.POST("/purchase", paymentHandler.Purchase)
		payments.POST("/refund", paymentHandler.Refund)
		payments.POST("/repeat-sale", paymentHandler.RepeatSale)
		payments.POST("/recurring", paymentHandler.Recurring)
		payments.GET("", paymentHandler.ListTransactions)
		payments.GET("/:id", paymentHandler.GetTransaction)
	}
}
