package main

import (
	"log"
	"net/http"
	"os"

	"ezelectronics/config"
	"ezelectronics/controllers"
	"ezelectronics/dao"
	"ezelectronics/database"
	"ezelectronics/routes"
	"ezelectronics/utils"

	"github.com/gorilla/handlers"
	"github.com/gorilla/sessions"
)

func main() {
	// Load configuration from .env and the environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(utils.ErrorWithTrace(err, "invalid configuration"))
	}

	// Connect to the database
	db, err := database.Connect(cfg.DatabaseConnStr)
	if err != nil {
		log.Fatal(utils.ErrorWithTrace(err, err.Error()))
	}
	defer db.Close()

	// Handle migrations
	if err := database.Migrate(cfg.DatabaseConnStr); err != nil {
		log.Fatal(utils.ErrorWithTrace(err, err.Error()))
	}

	// Wire storage and business rules
	productDAO := dao.NewProductDAO(db)
	services := routes.Services{
		Users:    controllers.NewUserController(dao.NewUserDAO(db)),
		Products: controllers.NewProductController(productDAO),
		Carts:    controllers.NewCartController(dao.NewCartDAO(db), productDAO),
		Reviews:  controllers.NewReviewController(dao.NewReviewDAO(db), productDAO),
	}

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.SessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	r := routes.NewRouter(services, store)

	// Enable CORS with credentials so the session cookie reaches the client
	corsOptions := handlers.CORS(
		handlers.AllowedOrigins([]string{cfg.AllowedOrigin}),
		handlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.AllowCredentials(),
	)
	handler := handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(corsOptions(r))
	handler = handlers.CombinedLoggingHandler(os.Stdout, handler)

	log.Printf("Server running on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatal(utils.ErrorWithTrace(err, err.Error()))
	}
}
