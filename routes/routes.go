package routes

import (
	"time"

	"heirloom/ai"
	"heirloom/cache"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"heirloom/ws"
)

var validate = validator.New()

// catalogCache fronts the public catalog reads; mutations invalidate it.
var catalogCache = cache.New(time.Minute)

var analysisWorker *ai.Worker

func SetupRoutes(app *fiber.App, worker *ai.Worker) {
	analysisWorker = worker

	ws.Start()
	app.Get("/ws", adaptor.HTTPHandlerFunc(ws.Handler))

	// Image upload route
	app.Post("/upload", requireAuth, uploadImage)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", register)
	auth.Post("/login", login)
	auth.Post("/logout", logout)
	auth.Get("/user", requireAuth, getAuthUser)

	// Lookup routes
	categories := api.Group("/categories")
	categories.Get("/", getAllCategories)
	categories.Post("/", requireAuth, createCategory)

	materials := api.Group("/materials")
	materials.Get("/", getAllMaterials)
	materials.Post("/", requireAuth, createMaterial)

	eras := api.Group("/eras")
	eras.Get("/", getAllEras)
	eras.Post("/", requireAuth, createEra)

	brands := api.Group("/brands")
	brands.Get("/", getAllBrands)
	brands.Post("/", requireAuth, createBrand)

	// Product routes
	products := api.Group("/products")
	products.Get("/", getAllProducts)
	products.Get("/:id", getProduct)
	products.Post("/", requireAuth, createProduct)
	products.Put("/:id", requireAuth, updateProduct)
	products.Delete("/:id", requireAuth, deleteProduct)

	// Cart routes
	cart := api.Group("/cart", requireAuth)
	cart.Get("/", getCart)
	cart.Post("/", addToCart)
	cart.Put("/:id", updateCartItem)
	cart.Delete("/:id", removeFromCart)
	cart.Delete("/", clearCart)

	// Order routes
	orders := api.Group("/orders", requireAuth)
	orders.Get("/", getAllOrders)
	orders.Get("/:id", getOrder)
	orders.Post("/", createOrder)

	// Wishlist routes
	wishlist := api.Group("/wishlist", requireAuth)
	wishlist.Get("/", getWishlist)
	wishlist.Post("/", addToWishlist)
	wishlist.Delete("/:productId", removeFromWishlist)

	// AI analysis routes
	analyses := api.Group("/ai-analysis", requireAuth)
	analyses.Post("/", createAnalysis)
	analyses.Get("/", getAllAnalyses)
	analyses.Get("/:id", getAnalysis)

	// Checkout routes
	api.Post("/checkout/create-payment-intent", requireAuth, createPaymentIntent)

	// Blog routes
	blog := api.Group("/blog")
	blog.Get("/", getAllBlogPosts)
	blog.Get("/:slug", getBlogPost)
	blog.Post("/", requireAuth, createBlogPost)
	blog.Put("/:id", requireAuth, updateBlogPost)
	blog.Delete("/:id", requireAuth, deleteBlogPost)
}
