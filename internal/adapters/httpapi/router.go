package httpapi

import (
	"context"
	"net/http"

	"chirper/internal/adapters/httpapi/middleware"
	userPort "chirper/internal/ports/user"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// UserUseCase is the inbound port the REST auth endpoints need.
type UserUseCase interface {
	LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	RegisterUser(ctx context.Context, name, username, email, password string) (*userPort.UserDTO, error)
}

// SetupRoutes mounts the REST auth endpoints, operational endpoints, and the
// GraphQL handler on a gin engine. The GraphQL endpoint runs behind the
// viewer middleware so resolvers can see who is asking.
func SetupRoutes(userUC UserUseCase, graphqlHandler http.Handler) *gin.Engine {
	r := gin.Default()
	uc := NewUserController(userUC)

	r.POST("/register", uc.RegisterUser)
	r.POST("/login", uc.LoginUser)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// GET serves GraphiQL, POST executes queries.
	r.GET("/graphql", middleware.ViewerMiddleware(), gin.WrapH(graphqlHandler))
	r.POST("/graphql", middleware.ViewerMiddleware(), gin.WrapH(graphqlHandler))

	return r
}
