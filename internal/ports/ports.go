package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Catalog
	ProductRepository ProductRepository
	ProductCache      CacheProvider
	CacheSerializer   CacheSerializer
	CacheMetrics      CacheMetrics

	// Accounts
	UserRepository UserRepository
	PasswordHasher PasswordHasher
	TokenIssuer    TokenIssuer

	// Shopping
	CartRepository  CartRepository
	OrderRepository OrderRepository

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Database       interface{}
}
