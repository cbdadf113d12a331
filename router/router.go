package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/viejosabroso/restaurant-orders/controllers"
	"github.com/viejosabroso/restaurant-orders/metrics"
	"github.com/viejosabroso/restaurant-orders/middlewares"
	"github.com/viejosabroso/restaurant-orders/realtime"
	"github.com/viejosabroso/restaurant-orders/storage"
	"github.com/viejosabroso/restaurant-orders/store"
)

// Deps carries everything the routes need.
type Deps struct {
	Store       *store.Store
	Hub         *realtime.Hub
	MenuMirror  *realtime.MenuMirror
	OrderMirror *realtime.OrderMirror
	Images      *storage.ImageStore
	UploadDir   string
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	// Extension guard for the public upload path. Registered before the
	// static route: gin bakes a route's handler chain at registration time,
	// so middleware added later never runs for it.
	r.Use(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/uploads/") {
			path := strings.ToLower(c.Request.URL.Path)
			if !strings.HasSuffix(path, ".jpg") &&
				!strings.HasSuffix(path, ".jpeg") &&
				!strings.HasSuffix(path, ".png") &&
				!strings.HasSuffix(path, ".svg") {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
		}
		c.Next()
	})
	r.Static("/uploads", d.UploadDir)

	menuCtrl := controllers.NewMenuController(d.Store, d.MenuMirror)
	orderCtrl := controllers.NewOrderController(d.Store, d.OrderMirror)
	settingsCtrl := controllers.NewSettingsController(d.Store)
	uploadCtrl := controllers.NewUploadController(d.Images)
	wsCtrl := controllers.NewWSController(d.Hub)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Live snapshot feed for all surfaces.
	r.GET("/ws", wsCtrl.Feed)

	// -- CUSTOMER --
	r.GET("/menus", menuCtrl.GetAllMenuItems)
	r.GET("/menus/by-category", menuCtrl.GetMenuItemsByCategory)
	r.GET("/menus/:menu_id", menuCtrl.GetMenuItemByID)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	r.GET("/settings", settingsCtrl.GetSettings)

	// -- KITCHEN --
	r.GET("/kitchen/display", orderCtrl.GetKitchenDisplay)
	r.GET("/kitchen/stats", orderCtrl.GetOrderStats)

	// -- ADMIN --
	// No authentication exists in this system; the group only separates the
	// management surface and carries a stricter rate limit.
	admin := r.Group("/admin")
	admin.Use(middlewares.NewStrictRateLimiter())
	{
		admin.GET("/menus", menuCtrl.GetAllMenuItems)
		admin.POST("/menus", menuCtrl.CreateMenuItem)
		admin.PATCH("/menus/:menu_id", menuCtrl.UpdateMenuItem)
		admin.DELETE("/menus/:menu_id", menuCtrl.DeleteMenuItem)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.GET("/orders/by-status", orderCtrl.GetOrdersByStatus)
		admin.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)

		admin.PUT("/settings", settingsCtrl.UpdateSettings)

		admin.POST("/uploads", uploadCtrl.UploadImage)
		admin.DELETE("/uploads", uploadCtrl.DeleteImage)
	}

	return r
}
