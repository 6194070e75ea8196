package main

import (
	"fmt"
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/pizza-factory/docs" // Import generated docs
	"github.com/franciscosanchezn/pizza-factory/internal/config"
	"github.com/franciscosanchezn/pizza-factory/internal/controllers"
	"github.com/franciscosanchezn/pizza-factory/internal/database"
	"github.com/franciscosanchezn/pizza-factory/internal/services"
	"github.com/franciscosanchezn/pizza-factory/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db              *gorm.DB
	orderService    services.OrderService
	orderController controllers.OrderController
	configuration   *config.Config
)

// @title Pizza Factory API
// @version 1.0
// @description Order regional pizzas assembled from each region's ingredient factory
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	db = setupDatabase(configuration)

	// Open the stores and wire services and controllers
	stores, err := services.OpenStores(configuration.Regions, configuration.FrozenCounter,
		store.WithNotifier(store.NewLogNotifier(log.StandardLogger())))
	checkPanicErr(err)
	orderService = services.NewOrderService(db, stores, log.StandardLogger())
	orderController = controllers.NewOrderController(orderService)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	if err := router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(config.LevelForEnvironment(config.GetEnvWithDefault("APP_ENV", "development")))
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %s", conf)
	return conf
}

// setupDatabase connects to the receipt ledger and migrates its schema
func setupDatabase(conf *config.Config) *gorm.DB {
	conn, err := database.InitDatabase(database.FromConfig(conf))
	checkPanicErr(err)
	return conn
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	router := gin.Default()

	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	controllers.RegisterRoutes(router, orderController, []byte(configuration.JWTSecret))

	// Swagger documentation
	if configuration.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	return router
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pizza-factory",
		"stores":    len(orderService.Stores()),
	})
}
