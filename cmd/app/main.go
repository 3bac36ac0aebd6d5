package main

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"log"
	"os"
	"itinera/cmd/fx/account_fx"
	"itinera/cmd/fx/db_fx"
	"itinera/cmd/fx/feedback_fx"
	"itinera/cmd/fx/itinerary_fx"
	"itinera/cmd/fx/rating_fx"
	"itinera/cmd/fx/recommendation_fx"
	"itinera/internal/api/controllers"
	"itinera/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		itinerary_fx.Module,
		rating_fx.Module,
		recommendation_fx.Module,
		feedback_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
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
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	ratingController *controllers.RatingController,
	recommendationController *controllers.RecommendationController,
	feedbackController *controllers.FeedbackController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		itineraryController,
		ratingController,
		recommendationController,
		feedbackController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	ratingController *controllers.RatingController,
	recommendationController *controllers.RecommendationController,
	feedbackController *controllers.FeedbackController) {

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)
	accountsGroup.GET("/all", middleware.JWTAuthMiddleware(), accountController.GetAllAccounts)

	itinerariesGroup := r.Group("/itineraries")
	itinerariesGroup.POST("/generate", itineraryController.Generate)
	itinerariesGroup.POST("/save", itineraryController.Save)
	itinerariesGroup.GET("/saved", itineraryController.ListSaved)

	ratingsGroup := r.Group("/ratings")
	ratingsGroup.POST("/submit", ratingController.SubmitRating)

	r.GET("/recommendations", recommendationController.GetRecommendations)

	feedbackGroup := r.Group("/feedback")
	feedbackGroup.POST("/add", feedbackController.AddFeedback)
	feedbackGroup.GET("/list", feedbackController.ListFeedback)
}
