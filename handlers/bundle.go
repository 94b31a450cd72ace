package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Catalog endpoints
	GetCatalog    gin.HandlerFunc
	SearchCatalog gin.HandlerFunc

	// AI endpoints
	AIChatHandler    gin.HandlerFunc
	AIResetHandler   gin.HandlerFunc
	AIPlannerHandler gin.HandlerFunc
	RecommendPackage gin.HandlerFunc

	// Cart endpoints
	GetCart         gin.HandlerFunc
	CheckoutPackage gin.HandlerFunc
	ClearCart       gin.HandlerFunc
	AddCartItem     gin.HandlerFunc
	RemoveCartItem  gin.HandlerFunc
	PayCart         gin.HandlerFunc

	// Planner package endpoints
	ListPackages   gin.HandlerFunc
	CreatePackage  gin.HandlerFunc
	GetPackage     gin.HandlerFunc
	UpdatePackage  gin.HandlerFunc
	DeletePackage  gin.HandlerFunc
	AddPackageItem gin.HandlerFunc
	PlannerStats   gin.HandlerFunc
}

// NewHandlerBundle wires handler methods into a bundle.
func NewHandlerBundle(catalogH *CatalogHandler, aiH *AIHandler, cartH *CartHandler, packageH *PlannerPackageHandler) *HandlerBundle {
	return &HandlerBundle{
		GetCatalog:    catalogH.GetCatalog,
		SearchCatalog: catalogH.SearchCatalog,

		AIChatHandler:    aiH.HandleAIRequest,
		AIResetHandler:   aiH.ResetConversation,
		AIPlannerHandler: aiH.GeneratePlan,
		RecommendPackage: aiH.RecommendPackage,

		GetCart:         cartH.GetCart,
		CheckoutPackage: cartH.CheckoutPackage,
		ClearCart:       cartH.ClearCart,
		AddCartItem:     cartH.AddItem,
		RemoveCartItem:  cartH.RemoveItem,
		PayCart:         cartH.Pay,

		ListPackages:   packageH.ListPackages,
		CreatePackage:  packageH.CreatePackage,
		GetPackage:     packageH.GetPackage,
		UpdatePackage:  packageH.UpdatePackage,
		DeletePackage:  packageH.DeletePackage,
		AddPackageItem: packageH.AddService,
		PlannerStats:   packageH.GetStats,
	}
}
