package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-user-post-api/internal/repo"
	"go-user-post-api/internal/service"
	"go-user-post-api/internal/transport/http/handler"
	mdw "go-user-post-api/internal/transport/http/middleware"
	"go-user-post-api/internal/transport/http/response"
)

// NewAPIEngine wires repositories, services and handlers onto a gin engine.
// basePath is the configurable API prefix, e.g. "/api".
func NewAPIEngine(l *zap.Logger, db *gorm.DB, basePath string) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.Metrics(),
		cors.Default(),
		ginzap.Ginzap(l, time.RFC3339, true),
		mdw.Recovery(l),
	)

	r.GET("/", func(c *gin.Context) {
		response.Message(c, "Test api response")
	})
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	users := repo.NewUserRepo(db)
	addresses := repo.NewAddressRepo(db)
	posts := repo.NewPostRepo(db)

	api := r.Group(basePath)
	handler.NewUserHandler(service.NewUserService(users, l), l).Mount(api)
	handler.NewAddressHandler(service.NewAddressService(addresses, users, l), l).Mount(api)
	handler.NewPostHandler(service.NewPostService(posts, users, l), l).Mount(api)

	return r
}
