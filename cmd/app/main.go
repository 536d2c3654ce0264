package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripwise/cmd/fx/attractionfx"
	"tripwise/cmd/fx/clientsfx"
	"tripwise/cmd/fx/controllersfx"
	"tripwise/cmd/fx/dbfx"
	"tripwise/cmd/fx/userfx"
	"tripwise/internal/api/controllers"
	"tripwise/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		dbfx.Module,
		clientsfx.Module,
		attractionfx.Module,
		userfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "7000"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	attractionController *controllers.AttractionController,
	userController *controllers.UserController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, attractionController, userController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	attractionController *controllers.AttractionController,
	userController *controllers.UserController) {

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.POST("/register", userController.Register)
	r.POST("/login", userController.Login)
	r.POST("/logout", middleware.SessionAuthMiddleware(), userController.Logout)
	r.GET("/:id", userController.GetProfile)
	r.PUT("/:id", userController.UpdateProfile)

	attractionGroup := r.Group("/attraction")
	attractionGroup.GET("/getAttraction", attractionController.GetAttraction)
	attractionGroup.GET("/getAttractionDetails", attractionController.GetAttractionDetails)
}
