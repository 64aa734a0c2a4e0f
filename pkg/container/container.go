package container

import (
	"context"
	"fmt"
	"time"

	"bookden/internal/config"
	infraCache "bookden/internal/infrastructure/cache"
	"bookden/internal/infrastructure/database"
	"bookden/pkg/cache"
	"bookden/pkg/jwt"
	"bookden/pkg/logger"

	bookHandler "bookden/internal/domains/book/handler"
	bookRepo "bookden/internal/domains/book/repository"
	bookService "bookden/internal/domains/book/service"

	chapterHandler "bookden/internal/domains/chapter/handler"
	chapterRepo "bookden/internal/domains/chapter/repository"
	chapterService "bookden/internal/domains/chapter/service"

	ratingHandler "bookden/internal/domains/rating/handler"
	ratingRepo "bookden/internal/domains/rating/repository"
	ratingService "bookden/internal/domains/rating/service"

	tagHandler "bookden/internal/domains/tag/handler"
	tagRepo "bookden/internal/domains/tag/repository"
	tagService "bookden/internal/domains/tag/service"

	userHandler "bookden/internal/domains/user/handler"
	userRepo "bookden/internal/domains/user/repository"
	userService "bookden/internal/domains/user/service"

	prefHandler "bookden/internal/domains/preference/handler"
	prefService "bookden/internal/domains/preference/service"
)

// Container is the root of the dependency graph. Initialization order:
// config, infrastructure, repositories, services, handlers.
type Container struct {
	Config     *config.Config
	DB         *database.SQLiteDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	BookHandler       *bookHandler.BookHandler
	ChapterHandler    *chapterHandler.ChapterHandler
	RatingHandler     *ratingHandler.RatingHandler
	TagHandler        *tagHandler.TagHandler
	UserHandler       *userHandler.UserHandler
	PreferenceHandler *prefHandler.PreferenceHandler

	closers []func() error
}

// NewContainer builds and wires the whole dependency graph.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db := database.NewSQLiteDB(cfg.Database.Path)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db
	c.closers = append(c.closers, db.Close)

	if cfg.Redis.Enabled {
		redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisCache.Ping(ctx); err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		c.Cache = redisCache
		c.closers = append(c.closers, redisCache.Close)
	} else {
		c.Cache = infraCache.NewMemoryCache()
	}

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Repositories
	books := bookRepo.NewSQLiteRepository(db.DB)
	chapters := chapterRepo.NewSQLiteRepository(db.DB)
	ratings := ratingRepo.NewSQLiteRepository(db.DB)
	tags := tagRepo.NewSQLiteRepository(db.DB)
	users := userRepo.NewSQLiteRepository(db.DB)

	// Services
	bookSvc := bookService.NewBookService(books, c.Cache)
	chapterSvc := chapterService.NewChapterService(chapters, c.Cache)
	ratingSvc := ratingService.NewRatingService(ratings, c.Cache)
	tagSvc := tagService.NewTagService(tags, c.Cache)
	userSvc := userService.NewUserService(users, c.JWTManager)
	prefSvc := prefService.NewPreferenceService(users)

	// Handlers
	c.BookHandler = bookHandler.NewBookHandler(bookSvc)
	c.ChapterHandler = chapterHandler.NewChapterHandler(chapterSvc)
	c.RatingHandler = ratingHandler.NewRatingHandler(ratingSvc)
	c.TagHandler = tagHandler.NewTagHandler(tagSvc)
	c.UserHandler = userHandler.NewUserHandler(userSvc)
	c.PreferenceHandler = prefHandler.NewPreferenceHandler(prefSvc)

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
		"db_path":     cfg.Database.Path,
		"redis":       cfg.Redis.Enabled,
	})

	return c, nil
}

// Cleanup releases infrastructure resources in reverse order.
func (c *Container) Cleanup() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			logger.Error("cleanup failed", err)
		}
	}
}
