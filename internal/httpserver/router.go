package httpserver

import (
	"context"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"go.uber.org/zap"

	"records-api/internal/config"
	"records-api/internal/docstore"
	"records-api/internal/domain"
	"records-api/internal/metrics"
	usersvc "records-api/internal/service/user"
)

type ComposerService interface {
	List(ctx context.Context) ([]domain.Composer, error)
	Get(ctx context.Context, id string) (*domain.Composer, error)
	Create(ctx context.Context, c domain.Composer) (*domain.Composer, error)
	Update(ctx context.Context, id string, c domain.Composer) (*domain.Composer, error)
	Delete(ctx context.Context, id string) (*domain.Composer, error)
}

type PersonService interface {
	List(ctx context.Context) ([]domain.Person, error)
	Create(ctx context.Context, p domain.Person) (*domain.Person, error)
}

type TeamService interface {
	List(ctx context.Context) ([]domain.Team, error)
	Get(ctx context.Context, id string) (*domain.Team, error)
	Create(ctx context.Context, t domain.Team) (*domain.Team, error)
	Players(ctx context.Context, id string) ([]domain.Player, error)
	AddPlayer(ctx context.Context, id string, p domain.Player) (*domain.Team, error)
	Delete(ctx context.Context, id string) (*domain.Team, error)
}

type CustomerService interface {
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	Get(ctx context.Context, userName string) (*domain.Customer, error)
	AddInvoice(ctx context.Context, userName string, inv domain.Invoice) (*domain.Invoice, error)
	Invoices(ctx context.Context, userName string) ([]domain.Invoice, error)
}

type UserService interface {
	Signup(ctx context.Context, in usersvc.SignupInput) (*domain.User, error)
	CheckAvailable(ctx context.Context, userName string) error
	Login(ctx context.Context, userName, password string) (*domain.User, error)
}

// Deps aggregates the services and infrastructure the router needs.
type Deps struct {
	Composers ComposerService
	Persons   PersonService
	Teams     TeamService
	Customers CustomerService
	Users     UserService

	Store   docstore.Pinger
	Metrics *metrics.Metrics
}

var registerValidators sync.Once

// buildRouter wires routes for the API.
func buildRouter(logger *zap.SugaredLogger, deps Deps, api config.APIConfig) (*gin.Engine, error) {
	var regErr error
	registerValidators.Do(func() { regErr = setupValidator() })
	if regErr != nil {
		return nil, regErr
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}

	router := gin.New()
	router.Use(
		requestID(),
		requestLogger(logger),
		deps.Metrics.Middleware(),
		gin.CustomRecovery(recoverJSON(logger)),
		cors.New(corsConfig(api.CORSAllowedOrigins)),
	)

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Store))
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	h := &handler{
		log:            logger,
		deps:           deps,
		notFoundStatus: api.NotFoundStatus,
	}

	g := router.Group(api.Prefix)
	g.GET("/composers", h.listComposers)
	g.GET("/composers/:id", h.getComposer)
	g.POST("/composers", h.createComposer)
	g.PUT("/composers/:id", h.updateComposer)
	g.DELETE("/composers/:id", h.deleteComposer)

	g.GET("/persons", h.listPersons)
	g.POST("/persons", h.createPerson)

	g.GET("/teams", h.listTeams)
	g.POST("/teams", h.createTeam)
	g.GET("/teams/:id/players", h.listPlayers)
	g.POST("/teams/:id/players", h.addPlayer)
	g.DELETE("/teams/:id", h.deleteTeam)

	g.POST("/customers", h.createCustomer)
	g.POST("/customers/:userName/invoices", h.addInvoice)
	g.GET("/customers/:userName/invoices", h.listInvoices)

	g.POST("/signup", h.signup)
	g.POST("/login", h.login)

	return router, nil
}

// setupValidator makes binding errors report JSON field names and registers
// the notblank rule.
func setupValidator() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v.RegisterValidation("notblank", validators.NotBlank)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}
