package routes

import (
	"cfp_agreements/internal/adapter/http/handlers"
	"cfp_agreements/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog    = "/catalog"
	PathQuotes     = "/quotes"
	PathDrafts     = "/drafts"
	PathAgreements = "/agreements"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, quoteHandler *handlers.QuoteHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("", catalogHandler.GetCatalog)
		catalog.GET("/items/:id", catalogHandler.GetItem)
	}

	rg.POST(PathQuotes, quoteHandler.PriceQuote)
}

func addDraftRoutes(rg *gin.RouterGroup, draftHandler *handlers.DraftHandler) {
	drafts := rg.Group(PathDrafts)
	{
		drafts.POST("", draftHandler.CreateDraft)
		drafts.GET("/:token", draftHandler.GetDraft)
		drafts.PUT("/:token", draftHandler.SaveDraft)
	}
}

// addAgreementRoutes registers submission as a public route and everything
// else behind the admin bearer token.
func addAgreementRoutes(rg *gin.RouterGroup, agreementHandler *handlers.AgreementHandler, adminToken string) {
	agreements := rg.Group(PathAgreements)
	agreements.POST("", agreementHandler.SubmitAgreement)

	admin := agreements.Group("", middleware.AdminAuth(adminToken))
	{
		admin.GET("", agreementHandler.ListAgreements)
		admin.GET("/search", agreementHandler.SearchAgreements)
		admin.GET("/renewals", agreementHandler.ListRenewals)
		admin.GET("/:id", agreementHandler.GetAgreement)
		admin.PATCH("/:id/status", agreementHandler.UpdateStatus)
		admin.POST("/:id/emails", agreementHandler.SendEmails)
	}
}
