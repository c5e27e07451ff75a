package server

import (
	"backend-citybeat/internal/account"
	"backend-citybeat/internal/auth"
	"backend-citybeat/internal/config"
	"backend-citybeat/internal/discovery"
	"backend-citybeat/internal/event"
	"backend-citybeat/internal/friend"
	"backend-citybeat/internal/geocode"
	"backend-citybeat/internal/promotion"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type Server struct {
	App   *fiber.App
	Cfg   config.Config
	DB    *pgxpool.Pool
	Redis *redis.Client
	Log   zerolog.Logger
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client, log zerolog.Logger) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:   app,
		Cfg:   cfg,
		DB:    db,
		Redis: redisClient,
		Log:   log,
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)
	optionalJWT := auth.OptionalJWT(s.Cfg.JWTSecret)

	accountSvc := account.NewService(s.DB)
	geocodeSvc := geocode.NewService(geocode.NewClient(s.Cfg.MapboxToken), s.Redis, s.Log)
	weights := discovery.Weights{
		BoostScore:     s.Cfg.BoostScore,
		DistanceWeight: s.Cfg.DistanceWeight,
		TimeWeight:     s.Cfg.TimeWeight,
	}

	auth.RegisterRoutes(s.App.Group("/auth"), auth.NewService(s.Cfg.JWTSecret, s.DB))
	account.RegisterRoutes(s.App, accountSvc, jwtMiddleware, optionalJWT)
	friend.RegisterRoutes(s.App.Group("/friends"), friend.NewService(s.DB), jwtMiddleware)

	// /events/nearby must register before the /events/:id wildcard.
	events := s.App.Group("/events")
	discovery.RegisterRoutes(events, discovery.NewService(s.DB, weights, s.Log), accountSvc, optionalJWT)
	event.RegisterRoutes(events, event.NewService(s.DB, geocodeSvc), jwtMiddleware)

	promotion.RegisterRoutes(s.App.Group("/promotions"), promotion.NewService(s.DB), jwtMiddleware)
	geocode.RegisterRoutes(s.App.Group("/geocode"), geocodeSvc)
}
