package routes

import (
	"os"
	"strings"

	"autoshop-backend/config"
	"autoshop-backend/controllers"
	"autoshop-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Car service routes
		carServices := api.Group("/car-services")
		{
			carServices.POST("", controllers.CreateCarService)
			carServices.GET("", controllers.GetCarServices)
			carServices.GET("/:id", controllers.GetCarService)
			carServices.PUT("/:id", controllers.UpdateCarService)
			carServices.DELETE("/:id", controllers.DeleteCarService)
		}

		// Supply routes
		supplies := api.Group("/supplies")
		{
			supplies.POST("", controllers.CreateSupply)
			supplies.POST("/bulk", controllers.BulkCreateSupplies)
			supplies.GET("", controllers.GetSupplies)
			supplies.PUT("/:id", controllers.UpdateSupply)
			supplies.DELETE("/:id", controllers.DeleteSupply)
		}

		// Supplier routes
		suppliers := api.Group("/suppliers")
		{
			suppliers.POST("", controllers.CreateSupplier)
			suppliers.GET("", controllers.GetSuppliers)
			suppliers.PUT("/:id", controllers.UpdateSupplier)
			suppliers.POST("/:id/toggle-status", controllers.ToggleSupplierStatus)
		}

		// Expense routes
		expenses := api.Group("/expenses")
		{
			expenses.POST("", controllers.CreateExpense)
			expenses.GET("", controllers.GetExpenses)
			expenses.PUT("/:id", controllers.UpdateExpense)
			expenses.DELETE("/:id", controllers.DeleteExpense)
		}

		// Report routes
		reportController := controllers.ReportController{}
		api.GET("/summary", reportController.GetSummary)
		api.GET("/reports/supplier-rollup", reportController.GetSupplierRollup)

		// User administration (admin only)
		users := api.Group("/users", utils.AdminRequired())
		{
			users.GET("", controllers.GetUsers)
			users.POST("", controllers.CreateUser)
			users.DELETE("/:id", controllers.DeleteUser)
			users.POST("/:id/toggle-status", controllers.ToggleUserStatus)
		}
	}

	return r
}
