package main

import (
	"flag"
	"net/http"
	"os"

	"blogly/database"
	"blogly/handlers"
	"blogly/logger"
	"blogly/repositories"
	"blogly/routes"

	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using system environment variables")
	}
	logger.InitLogger()

	migrate := flag.Bool("migrate", false, "create the database schema and exit")
	seed := flag.Bool("seed", false, "reset the schema, load sample data, and exit")
	flag.Parse()

	db, err := database.ConnectDB()
	if err != nil {
		logrus.Fatal(err)
	}

	if *seed {
		if err := database.Seed(db); err != nil {
			logrus.Fatal(err)
		}
		logrus.Info("Database seeded")
		return
	}
	if *migrate {
		if err := database.CreateAll(db); err != nil {
			logrus.Fatal(err)
		}
		logrus.Info("Schema created")
		return
	}

	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		secret = "secret"
	}
	store := sessions.NewCookieStore([]byte(secret))

	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	tagRepo := repositories.NewTagRepository(db)

	userHandler := handlers.NewUserHandler(userRepo, postRepo, store)
	postHandler := handlers.NewPostHandler(postRepo, userRepo, tagRepo, store)
	tagHandler := handlers.NewTagHandler(tagRepo, store)

	router := routes.SetupRoutes(userHandler, postHandler, tagHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000" // Default if PORT is not set
	}

	logrus.Info("Server started on port: ", port)
	logrus.Fatal(http.ListenAndServe(":"+port, router))
}
