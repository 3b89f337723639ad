package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"thinksync/app/analysis"
	"thinksync/app/config"
	"thinksync/app/driver/kratos"
	"thinksync/app/driver/postgres"
	"thinksync/app/gateway"
	"thinksync/app/port"
	"thinksync/app/rest"
	"thinksync/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	KratosClient *kratos.Client

	// Gateways
	IdentityGateway port.IdentityGateway

	// Usecases
	UserUsecase    port.UserUsecase
	SessionUsecase port.SessionUsecase
	AdminUsecase   port.AdminUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.KratosClient, err = kratos.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kratos client: %w", err)
	}

	// Repositories
	userRepository := postgres.NewUserRepository(container.DB.Pool(), logger)
	sessionRepository := postgres.NewSessionRepository(container.DB.Pool(), logger)

	// Gateways
	kratosAdapter := kratos.NewAdapter(container.KratosClient)
	container.IdentityGateway = gateway.NewIdentityGateway(kratosAdapter, logger)

	// Usecases
	container.UserUsecase = usecase.NewUserUseCase(userRepository, container.IdentityGateway, logger)
	container.SessionUsecase = usecase.NewSessionUseCase(sessionRepository, analysis.NewGenerator(), logger)
	container.AdminUsecase = usecase.NewAdminUseCase(userRepository, sessionRepository, container.IdentityGateway, cfg, logger)

	logger.Info("container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	return rest.NewRouter(rest.RouterConfig{
		Logger:         c.Logger,
		Config:         c.Config,
		UserUsecase:    c.UserUsecase,
		SessionUsecase: c.SessionUsecase,
		AdminUsecase:   c.AdminUsecase,
		DB:             c.DB,
		Kratos:         c.KratosClient,
	})
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("container closed")
	return nil
}
