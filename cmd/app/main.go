package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"roamio/cmd/fx/accountfx"
	"roamio/cmd/fx/assistantfx"
	"roamio/cmd/fx/bookingfx"
	"roamio/cmd/fx/dbfx"
	"roamio/cmd/fx/placefx"
	"roamio/cmd/fx/postfx"
	"roamio/cmd/fx/tourfx"
	"roamio/internal/api/controllers"
	"roamio/internal/config"
	"roamio/pkg/middleware"
	"roamio/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		fx.Provide(config.Load),
		fx.Provide(zap.NewProduction),

		dbfx.Module,
		accountfx.Module,
		assistantfx.Module,
		tourfx.Module,
		placefx.Module,
		postfx.Module,
		bookingfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("Starting HTTP server", zap.String("port", cfg.Port))
				if err := engine.Run(":" + cfg.Port); err != nil {
					logger.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	jwtManager *utils.JWTManager,
	assistantController *controllers.AssistantController,
	tourController *controllers.TourController,
	accountController *controllers.AccountController,
	placeController *controllers.PlaceController,
	postController *controllers.PostController,
	bookingController *controllers.BookingController,
) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, jwtManager,
		assistantController,
		tourController,
		accountController,
		placeController,
		postController,
		bookingController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	jwtManager *utils.JWTManager,
	assistantController *controllers.AssistantController,
	tourController *controllers.TourController,
	accountController *controllers.AccountController,
	placeController *controllers.PlaceController,
	postController *controllers.PostController,
	bookingController *controllers.BookingController) {

	auth := middleware.JWTAuthMiddleware(jwtManager)
	admin := middleware.RoleMiddleware("admin")

	api := r.Group("/api")

	api.POST("/ai/chat", assistantController.ChatHandler)

	tours := api.Group("/tours")
	tours.GET("", tourController.ListToursHandler)
	tours.GET("/:id", tourController.GetTourHandler)
	tours.POST("/recommendations", tourController.RecommendationsHandler)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/login", accountController.Login)

	accounts := api.Group("/accounts", auth)
	accounts.GET("/me", accountController.Me)

	places := api.Group("/places")
	places.GET("", placeController.ListPlacesHandler)
	places.GET("/:id", placeController.GetPlaceHandler)
	places.POST("", auth, admin, placeController.CreatePlaceHandler)
	places.PUT("/:id", auth, admin, placeController.UpdatePlaceHandler)
	places.DELETE("/:id", auth, admin, placeController.DeletePlaceHandler)

	posts := api.Group("/posts")
	posts.GET("", postController.ListPostsHandler)
	posts.GET("/:id", postController.GetPostHandler)
	posts.POST("", auth, postController.CreatePostHandler)
	posts.DELETE("/:id", auth, postController.DeletePostHandler)

	bookings := api.Group("/bookings", auth)
	bookings.POST("", bookingController.CreateBookingHandler)
	bookings.GET("", bookingController.ListMyBookingsHandler)
	bookings.GET("/all", admin, bookingController.ListAllBookingsHandler)
	bookings.DELETE("/:id", bookingController.CancelBookingHandler)
}
