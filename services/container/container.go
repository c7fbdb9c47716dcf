package container

import (
	"sync"

	"gorm.io/gorm"

	"github.com/punura-itd/CIC-AGRI-IMS/config"
	"github.com/punura-itd/CIC-AGRI-IMS/services"
)

// ServiceContainer wires the service graph and hands services to controllers
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// Base services
	jwtService   *services.JWTService
	redisService *services.RedisService

	// Scanner pipeline
	captureService services.InterfaceMQTTCaptureService
	codeResolver   services.InterfaceCodeResolver
	scanStore      services.InterfaceScanStoreService
	scanSession    services.InterfaceScanSessionService

	// Business services
	assetService      services.InterfaceAssetService
	userService       services.InterfaceUserService
	supplierService   services.InterfaceSupplierService
	insuranceService  services.InterfaceInsuranceService
	scanRecordService services.InterfaceScanRecordService

	mu sync.RWMutex
}

// NewServiceContainer creates and wires the service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}
	if cfg == nil {
		panic("config is nil")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices builds the service graph in dependency order
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.jwtService = services.NewJWTService(c.config)

	c.redisService = services.NewRedisService(c.config)
	if err := c.redisService.Ping(); err != nil {
		config.Warning("Redis ping failed, scan ledger persistence may be unavailable: %v", err)
	}

	c.assetService = services.NewAssetService(c.db, c.config)
	c.userService = services.NewUserService(c.db, c.config)
	c.supplierService = services.NewSupplierService(c.db, c.config)
	c.insuranceService = services.NewInsuranceService(c.db, c.config)
	c.scanRecordService = services.NewScanRecordService(c.db, c.config)

	// Scanner pipeline: stations over MQTT, payload resolution, the KV-backed
	// ledger, and the session machine tying them together
	c.captureService = services.NewMQTTCaptureService(c.db, c.config)
	if err := c.captureService.Connect(); err != nil {
		config.Error("MQTT capture service connect failed: %v", err)
	}

	c.codeResolver = services.NewCodeResolver()

	store := services.NewScanStoreService(c.redisService, c.config)
	if err := store.LoadPersisted(); err != nil {
		config.Warning("failed to rehydrate scan ledger: %v", err)
	}
	c.scanStore = store

	c.scanSession = services.NewScanSessionService(
		c.captureService,
		c.codeResolver,
		c.scanStore,
		c.scanRecordService,
		c.assetService,
		c.config,
	)
}

// GetService returns the service registered under the given name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "capture":
		return c.captureService
	case "code_resolver":
		return c.codeResolver
	case "scan_store":
		return c.scanStore
	case "scan_session":
		return c.scanSession
	case "asset":
		return c.assetService
	case "user":
		return c.userService
	case "supplier":
		return c.supplierService
	case "insurance":
		return c.insuranceService
	case "scan_record":
		return c.scanRecordService
	default:
		return nil
	}
}

// GetDB returns the database connection
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
