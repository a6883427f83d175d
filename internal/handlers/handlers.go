package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"bigmanpc/api/internal/config"
	"bigmanpc/api/internal/middleware"
	"bigmanpc/api/internal/repository"
	"bigmanpc/api/internal/service"
	"bigmanpc/api/internal/storage"
)

type HandlerSet struct {
	log     zerolog.Logger
	cfg     *config.AppConfig
	catalog *service.CatalogService
	sales   *service.SalesService
	auth    *service.AuthService
	users   *service.UserService
	images  *service.ImageService
	db      *pgxpool.Pool
	cache   *redis.Client
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, cache *redis.Client, store *storage.ObjectStore, cfg *config.AppConfig) HandlerSet {
	productRepo := repository.NewProductRepository(db)
	salesRepo := repository.NewSalesRepository(db)
	userRepo := repository.NewAdminUserRepository(db)

	var images *service.ImageService
	if store != nil {
		images = service.NewImageService(store, cfg, log)
	}

	return HandlerSet{
		log:     log,
		cfg:     cfg,
		catalog: service.NewCatalogService(productRepo, cache, cfg.Cache.CatalogTTL, log),
		sales:   service.NewSalesService(salesRepo, log),
		auth:    service.NewAuthService(userRepo, cfg, log),
		users:   service.NewUserService(userRepo, log),
		images:  images,
		db:      db,
		cache:   cache,
	}
}

// Catalog and Sales expose the underlying services for the job scheduler.
func (h HandlerSet) Catalog() *service.CatalogService { return h.catalog }
func (h HandlerSet) Sales() *service.SalesService     { return h.sales }

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	router.GET("/products", h.GetProducts)
	router.POST("/products", h.CreateProduct)
	router.PUT("/products", h.UpdateProduct)
	router.DELETE("/products", h.DeleteProduct)

	router.GET("/sales", h.GetSales)
	router.POST("/sales", h.AddSale)
	router.DELETE("/sales", h.DeleteSale)

	router.POST("/sold-out", h.SetSoldOut)

	router.POST("/auth", h.Auth)

	users := router.Group("/users")
	users.Use(middleware.Auth(h.auth))
	users.GET("", h.ListUsers)
	users.POST("", h.CreateUser)
	users.PUT("", h.UpdateUser)
}

// failureMessage gates raw error text behind the debug flag, so database
// internals never leak from a production deployment.
func (h HandlerSet) failureMessage(base string, err error) string {
	if h.cfg.Debug && err != nil {
		return fmt.Sprintf("%s: %v", base, err)
	}
	return base
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// anyString renders loosely-typed JSON values as strings so form posts
// and JSON bodies end up on one code path.
func anyString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "1"
		}
		return ""
	default:
		return fmt.Sprint(val)
	}
}

func anyInt64(v any) int64 {
	switch val := v.(type) {
	case float64:
		return int64(val)
	case string:
		id, _ := strconv.ParseInt(val, 10, 64)
		return id
	default:
		return 0
	}
}

// anyBool treats 1, "1", "true" and friends as true; clients send the
// sold_out flag in whichever of these shapes their form library produced.
func anyBool(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val != "" && val != "0" && !strings.EqualFold(val, "false")
	default:
		return false
	}
}

func anyFloat64(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		f, _ := strconv.ParseFloat(val, 64)
		return f
	default:
		return 0
	}
}
