package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/kashvi/internal/cart"
	"github.com/example/kashvi/internal/config"
	"github.com/example/kashvi/internal/handlers"
	"github.com/example/kashvi/internal/metrics"
	"github.com/example/kashvi/internal/middleware"
	"github.com/example/kashvi/internal/repository"
	"github.com/example/kashvi/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	products := repository.NewGormProducts(db)
	offers := repository.NewGormOffers(db)
	orders := repository.NewGormOrders(db)
	notifications := repository.NewGormNotifications(db)
	adminList := repository.NewGormAdminList(db)

	carts := cart.NewStore()
	coupons := services.NewCouponResolver(offers)
	checkout := services.NewCheckoutService(carts, orders, coupons)
	notificationService := services.NewNotificationService(notifications)
	authorizer := services.NewAllowlistAuthorizer(adminList)

	authHandler := handlers.NewAuthHandler(db, cfg, authorizer)
	productHandler := handlers.NewProductHandler(db, products)
	cartHandler := handlers.NewCartHandler(carts, products, coupons)
	orderHandler := handlers.NewOrderHandler(db, checkout)
	offerHandler := handlers.NewOfferHandler(db)
	notificationHandler := handlers.NewNotificationHandler(db, notificationService)
	inquiryHandler := handlers.NewInquiryHandler(db)
	adminHandler := handlers.NewAdminHandler(db)

	app.Get("/metrics", metrics.Handler())

	api := app.Group("/api")

	// Auth
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Storefront catalog
	api.Get("/products", productHandler.ListProducts)
	api.Get("/products/trending", productHandler.TrendingProducts)
	api.Get("/products/:id", productHandler.GetProduct)

	api.Get("/offers", offerHandler.ListOffers)
	api.Get("/notifications/active", notificationHandler.ActiveNotification)

	// Cart
	cartGroup := api.Group("/cart")
	cartGroup.Get("/", cartHandler.GetCart)
	cartGroup.Delete("/", cartHandler.ClearCart)
	cartGroup.Post("/items", cartHandler.AddItem)
	cartGroup.Put("/items/:productID", cartHandler.UpdateItem)
	cartGroup.Delete("/items/:productID", cartHandler.RemoveItem)
	cartGroup.Post("/coupon", cartHandler.ApplyCoupon)

	// Checkout and inquiry forms accept anonymous and authenticated users
	optional := api.Group("", middleware.OptionalAuth(cfg))
	optional.Post("/checkout", orderHandler.Checkout)
	optional.Post("/bulk-orders", inquiryHandler.CreateBulkOrder)
	optional.Post("/stylist-inquiries", inquiryHandler.CreateStylistInquiry)

	// Authenticated customer routes
	protected := api.Group("", middleware.AuthMiddleware(cfg))
	protected.Get("/orders", orderHandler.ListMyOrders)

	// Admin routes
	admin := api.Group("/admin", middleware.AuthMiddleware(cfg), middleware.AdminOnly(authorizer))

	admin.Get("/stats", adminHandler.DashboardStats)
	admin.Get("/users", adminHandler.ListUsers)

	admin.Post("/products", productHandler.CreateProduct)
	admin.Post("/products/import", productHandler.ImportProducts)
	admin.Put("/products/:id", productHandler.UpdateProduct)
	admin.Patch("/products/:id/trending", productHandler.SetTrending)
	admin.Delete("/products/:id", productHandler.DeleteProduct)

	admin.Get("/orders", orderHandler.ListAllOrders)
	admin.Patch("/orders/:id/status", orderHandler.UpdateStatus)

	admin.Post("/offers", offerHandler.CreateOffer)
	admin.Put("/offers/:code", offerHandler.UpdateOffer)
	admin.Patch("/offers/:code/active", offerHandler.SetActive)
	admin.Delete("/offers/:code", offerHandler.DeleteOffer)

	admin.Get("/notifications", notificationHandler.ListNotifications)
	admin.Post("/notifications", notificationHandler.CreateNotification)
	admin.Put("/notifications/:id", notificationHandler.UpdateNotification)
	admin.Post("/notifications/:id/activate", notificationHandler.Activate)
	admin.Post("/notifications/:id/deactivate", notificationHandler.Deactivate)
	admin.Delete("/notifications/:id", notificationHandler.DeleteNotification)

	admin.Get("/bulk-orders", inquiryHandler.ListBulkOrders)
	admin.Get("/stylist-inquiries", inquiryHandler.ListStylistInquiries)
}
