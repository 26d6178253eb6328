package main

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/VSayann/PokeScope-v2/internal/auth"
	"github.com/VSayann/PokeScope-v2/internal/database"
	"github.com/VSayann/PokeScope-v2/internal/favorites"
	"github.com/VSayann/PokeScope-v2/internal/pokeapi"
	"github.com/VSayann/PokeScope-v2/internal/pokemon"
	"github.com/VSayann/PokeScope-v2/internal/session"
	"github.com/VSayann/PokeScope-v2/internal/tyradex"
	"github.com/VSayann/PokeScope-v2/internal/users"
)

func sessionTTL() time.Duration {
	hours := 24
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h > 0 {
			hours = h
		}
	}
	return time.Duration(hours) * time.Hour
}

// checkSessionSecret refuses to start in release mode without a signing
// key; elsewhere an empty key is only warned about.
func checkSessionSecret() error {
	if os.Getenv("SESSION_SECRET") != "" {
		return nil
	}
	if gin.Mode() == gin.ReleaseMode {
		return errors.New("SESSION_SECRET must be set in release mode")
	}
	log.Println("SESSION_SECRET not set, session cookies are signed with an empty key")
	return nil
}

func sessionStore() session.Store {
	if os.Getenv("REDIS_HOST") == "" {
		log.Println("REDIS_HOST not set, using in-memory sessions")
		return session.NewMemoryStore()
	}
	store, err := session.NewRedisStore(session.RedisConfigFromEnv())
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	return store
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, continuing with environment variables")
	}

	if m := os.Getenv("GIN_MODE"); m != "" {
		gin.SetMode(m)
	}

	if err := checkSessionSecret(); err != nil {
		log.Fatal(err)
	}

	if err := database.Connect(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// run migrations to create tables
	if err := database.Migrate(&users.User{}, &favorites.Favorite{}); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	authHandler := auth.NewHandler(sessionStore(), sessionTTL())

	pokemonCtl := pokemon.NewController(
		pokeapi.NewClient(pokeapi.NewConfig()),
		tyradex.NewClient(tyradex.NewConfig()),
		pokemon.NewNameCache(),
	)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Auth routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.RequireAuth(), authHandler.Logout)
	api.GET("/auth/user", authHandler.RequireAuth(), authHandler.Me)
	api.PUT("/auth/profile", authHandler.RequireAuth(), authHandler.UpdateProfile)

	// Favorites (session-scoped)
	api.GET("/favorites", authHandler.RequireAuth(), favorites.ListHandler)
	api.POST("/favorites/:id", authHandler.RequireAuth(), favorites.AddHandler)
	api.DELETE("/favorites/:id", authHandler.RequireAuth(), favorites.RemoveHandler)

	// Pokemon catalog (public)
	api.GET("/pokemon", pokemonCtl.ListHandler)
	api.GET("/pokemon/all", pokemonCtl.ListAllHandler)
	api.GET("/pokemon/gen/:gen", pokemonCtl.GenerationHandler)
	api.GET("/pokemon/search/:query", pokemonCtl.SearchHandler)
	api.GET("/pokemon/:id", pokemonCtl.GetHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r.Run(":" + port)
}
