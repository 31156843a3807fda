package routes

import (
	"net/http"

	"antojos/admin"
	"antojos/middleware"
	"antojos/orders"
	"antojos/products"
	"antojos/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/productpic/*filepath", http.Dir("static/productpic"))
}

func AddProductRoutes(router *httprouter.Router) {
	router.GET("/api/products", products.GetProducts)
	router.GET("/api/products/search", products.SearchProducts)
	router.GET("/api/products/categories", products.GetCategories)
	router.GET("/api/products/category/:category", products.GetProductsByCategory)
	router.GET("/api/product/:id", products.GetProduct)

	router.POST("/api/products", middleware.AdminAuth(products.CreateProduct))
	router.POST("/api/products/seed", middleware.AdminAuth(products.SeedProducts))
	router.PUT("/api/product/:id", middleware.AdminAuth(products.EditProduct))
	router.DELETE("/api/product/:id", middleware.AdminAuth(products.DeleteProduct))
	router.POST("/api/product/:id/image", middleware.AdminAuth(products.UploadProductImage))
}

func AddOrderRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/orders", rateLimiter.Limit(orders.CreateOrder))
	router.GET("/api/orders/by-number", orders.GetOrderByNumber)

	router.GET("/api/orders", middleware.AdminAuth(orders.GetOrders))
	router.GET("/api/orders/stats", middleware.AdminAuth(orders.GetOrderStats))
	router.GET("/api/order/:id", middleware.AdminAuth(orders.GetOrder))
	router.PUT("/api/order/:id/status", middleware.AdminAuth(orders.UpdateOrderStatus))
	router.GET("/api/order/:id/receipt", middleware.AdminAuth(orders.PrintReceipt))
}

func AddAdminRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/admin/login", rateLimiter.Limit(admin.Login))
	router.POST("/api/admin/logout", admin.Logout)
	router.GET("/api/admin/session", admin.Session)
}
