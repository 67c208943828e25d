package routes

import (
	"brushworks/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/compute", quoteHandler.ComputeQuote)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.GET("", quoteHandler.ListQuotes)
	}
}
