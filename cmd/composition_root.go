package cmd

import (
	"fmt"
	"log/slog"

	"kebabhouse/internal/adapters/out/filestore"
	"kebabhouse/internal/adapters/out/memstore"
	pgadapter "kebabhouse/internal/adapters/out/postgres"
	"kebabhouse/internal/adapters/out/postgres/accountrepo"
	"kebabhouse/internal/adapters/out/postgres/orderrepo"
	"kebabhouse/internal/core/application/facade"
	"kebabhouse/internal/core/application/roles"
	"kebabhouse/internal/core/application/session"
	"kebabhouse/internal/core/application/usecases/commands"
	"kebabhouse/internal/core/ports"
	"kebabhouse/internal/jobs"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot wires the storage backend, application services and jobs
// together. It is the only place that knows which backend is in use.
type CompositionRoot struct {
	config      Config
	orderFacade *facade.OrderFacade
	jobManager  *jobs.JobManager
}

// NewCompositionRoot assembles the application for the configured backend.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	backend, err := buildBackend(config)
	if err != nil {
		return nil, err
	}

	roleProvider := roles.NewProvider(backend.roleRepository)

	orderFacade := facade.NewOrderFacade(
		session.NewRegistry(config.FrontEndKind),
		roleProvider,
		backend.userRepository,
		FuncOrderUoWFactory(func() commands.OrderUoW { return backend.uowFactory.Create() }),
		backend.orderRepository,
	)

	return &CompositionRoot{
		config:      config,
		orderFacade: orderFacade,
		jobManager:  jobs.NewJobManager(roleProvider, config.RoleCacheRefreshCron, logger),
	}, nil
}

// OrderFacade returns the assembled application facade.
func (c *CompositionRoot) OrderFacade() *facade.OrderFacade {
	return c.orderFacade
}

// JobManager returns the background job manager.
func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return c.jobManager
}

// backend bundles the port implementations of one storage kind.
type backend struct {
	uowFactory      ports.UnitOfWorkFactory
	orderRepository ports.OrderRepository
	userRepository  ports.UserRepository
	roleRepository  ports.RoleRepository
}

func buildBackend(config Config) (backend, error) {
	switch config.StorageKind {
	case StoragePostgres:
		return buildPostgresBackend(config)
	case StorageFile:
		return buildFileBackend(config)
	case StorageMemory:
		return buildMemoryBackend()
	default:
		return backend{}, fmt.Errorf("unknown storage kind %q", config.StorageKind)
	}
}

func buildPostgresBackend(config Config) (backend, error) {
	db, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		return backend{}, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := db.AutoMigrate(
		&orderrepo.OrderDTO{}, &accountrepo.UserDTO{}, &accountrepo.RoleDTO{},
	); err != nil {
		return backend{}, fmt.Errorf("migrate schema: %w", err)
	}

	return backend{
		uowFactory:      pgadapter.NewGormUnitOfWorkFactory(db),
		orderRepository: orderrepo.NewGormOrderRepository(db, nil),
		userRepository:  accountrepo.NewGormUserRepository(db),
		roleRepository:  accountrepo.NewGormRoleRepository(db),
	}, nil
}

func buildFileBackend(config Config) (backend, error) {
	store, err := filestore.NewStore(config.DataPath)
	if err != nil {
		return backend{}, err
	}

	return backend{
		uowFactory:      filestore.NewUnitOfWorkFactory(store),
		orderRepository: store,
		userRepository:  filestore.NewUserRepository(store),
		roleRepository:  filestore.NewRoleRepository(store),
	}, nil
}

func buildMemoryBackend() (backend, error) {
	store := memstore.NewStore()
	if err := memstore.SeedDemo(store); err != nil {
		return backend{}, err
	}

	return backend{
		uowFactory:      memstore.NewUnitOfWorkFactory(store),
		orderRepository: store,
		userRepository:  memstore.NewUserRepository(store),
		roleRepository:  memstore.NewRoleRepository(store),
	}, nil
}

// FuncOrderUoWFactory adapts a closure to the commands.OrderUoWFactory
// interface, bridging the storage factory to the handler's narrower view.
type FuncOrderUoWFactory func() commands.OrderUoW

// Create returns a new order unit of work.
func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
