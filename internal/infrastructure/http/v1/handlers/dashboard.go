package handlers

import (
	"github.com/gin-gonic/gin"

	"officex/internal/domain/sales"
	"officex/pkg/pagination"
)

// recentSalesFetchLimit bounds how much history the dashboard pulls before
// paginating locally.
const recentSalesFetchLimit = 100

// DashboardHandler serves the office dashboard widgets.
// Sales data comes through the HTTP client, which degrades to an empty
// list on failure, so this endpoint always answers 200.
type DashboardHandler struct {
	*BaseHandler
	salesClient *sales.Client
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(base *BaseHandler, salesClient *sales.Client) *DashboardHandler {
	return &DashboardHandler{BaseHandler: base, salesClient: salesClient}
}

// RecentSales handles GET /dashboard/recent-sales
// Optional ?page= selects a page of the fetched window. The caller's
// credentials are forwarded so the client can reach the protected sales API.
func (h *DashboardHandler) RecentSales(c *gin.Context) {
	page := h.ParseIntQuery(c, "page", 1)

	items := h.salesClient.RecentSales(c.Request.Context(),
		c.GetHeader("Authorization"), recentSalesFetchLimit)

	h.OK(c, pagination.Paginate(items, page, pagination.DefaultPerPage))
}

// RegisterRoutes registers dashboard routes.
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/recent-sales", h.RecentSales)
}
