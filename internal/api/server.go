package api

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/easymart/pos-backend/docs"
	v1 "github.com/easymart/pos-backend/internal/api/handler/v1"
	"github.com/easymart/pos-backend/internal/api/middleware"
	"github.com/easymart/pos-backend/internal/config"
	"github.com/easymart/pos-backend/internal/relay"
	"github.com/easymart/pos-backend/internal/repository"
	"github.com/easymart/pos-backend/internal/repository/dao"
	"github.com/easymart/pos-backend/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
	Relay  *relay.Registry
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
		Relay:  relay.NewRegistry(),
	}

	s.MountMiddlewares()

	productHandler := s.initProductHandler(db)
	saleHandler := s.initSaleHandler(db)
	inventoryHandler := s.initInventoryHandler(db)
	userHandler := s.initUserHandler(db)
	s.MountHandlers(productHandler, saleHandler, inventoryHandler, userHandler)

	return s
}

func (s *Server) initProductHandler(db *gorm.DB) *v1.ProductHandler {
	productDAO := dao.NewProductDAO(db)
	repo := repository.NewProductRepository(productDAO)
	svc := service.NewProductService(repo)
	handler := v1.NewProductHandler(svc)

	return handler
}

func (s *Server) initSaleHandler(db *gorm.DB) *v1.SaleHandler {
	repo := repository.NewSaleRepository(dao.NewSaleDAO(db))
	productRepo := repository.NewProductRepository(dao.NewProductDAO(db))
	movementRepo := repository.NewMovementRepository(dao.NewMovementDAO(db))
	svc := service.NewSaleService(repo, productRepo, movementRepo)
	handler := v1.NewSaleHandler(svc)

	return handler
}

func (s *Server) initInventoryHandler(db *gorm.DB) *v1.InventoryHandler {
	productRepo := repository.NewProductRepository(dao.NewProductDAO(db))
	movementRepo := repository.NewMovementRepository(dao.NewMovementDAO(db))
	svc := service.NewInventoryService(productRepo, movementRepo)
	handler := v1.NewInventoryHandler(svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(productHandler *v1.ProductHandler, saleHandler *v1.SaleHandler, inventoryHandler *v1.InventoryHandler, userHandler *v1.UserHandler) {
	const basePath = "/api"

	products := s.Router.Group(basePath)
	{
		products.GET("/products", productHandler.HandleListProducts)
		products.POST("/products", productHandler.HandleCreateProduct)
		products.GET("/products/inventory/low-stock", productHandler.HandleListLowStock)
		products.GET("/products/:productID", productHandler.HandleGetProduct)
		products.PUT("/products/:productID", productHandler.HandleUpdateProduct)
		products.DELETE("/products/:productID", productHandler.HandleDeleteProduct)
	}

	sales := s.Router.Group(basePath)
	{
		sales.GET("/sales", saleHandler.HandleListSales)
		sales.POST("/sales", saleHandler.HandleCreateSale)
		sales.GET("/sales/summary/daily", saleHandler.HandleDailySummary)
		sales.GET("/sales/:saleID", saleHandler.HandleGetSale)
	}

	inventory := s.Router.Group(basePath)
	{
		inventory.GET("/inventory/levels", inventoryHandler.HandleGetLevels)
		inventory.GET("/inventory/alerts", inventoryHandler.HandleGetAlerts)
		inventory.GET("/inventory/movements", inventoryHandler.HandleGetMovements)
		inventory.POST("/inventory/restock", inventoryHandler.HandleRestock)
		inventory.POST("/inventory/adjust", inventoryHandler.HandleAdjust)
	}

	users := s.Router.Group(basePath)
	{
		users.POST("/users/login", userHandler.HandleLogin)
		users.GET("/users", userHandler.HandleListUsers)
		users.POST("/users", userHandler.HandleCreateUser)
		users.GET("/users/:userID", userHandler.HandleGetUser)
		users.PUT("/users/:userID", userHandler.HandleUpdateUser)
		users.DELETE("/users/:userID", userHandler.HandleDeleteUser)
	}

	s.Router.GET(basePath+"/health", v1.HandleHealthcheck)

	// Cross-device sync relay.
	s.Router.GET("/ws", relay.Handler(s.Relay))

	// Convenience redirects so each role UI has a bookmarkable entry point.
	for _, role := range []string{"manager", "cashier", "customer"} {
		role := role
		s.Router.GET("/"+role, func(ctx *gin.Context) {
			ctx.Redirect(http.StatusFound, "/?role="+role)
		})
	}

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "EasyMart POS API"
	docs.SwaggerInfo.Description = "Point-of-sale and inventory backend."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
