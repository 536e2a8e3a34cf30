package constants

// Runtime environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Listing statuses as stored in the marketplace document store
const (
	ListingStatusPending  = "pending"
	ListingStatusApproved = "approved"
	ListingStatusRejected = "rejected"
	ListingStatusSold     = "sold"
)

// Search limits
const (
	SearchResultLimit  = 10
	SearchDisplayLimit = 5
	TopBrandsLimit     = 5
)

// Listing field fallbacks used when a stored document is incomplete
const (
	UnknownBrand    = "Marca desconocida"
	UnknownModel    = "Modelo desconocido"
	UnknownOwner    = "Usuario desconocido"
	DefaultCurrency = "USD"
)

// Service token roles
const (
	RolePublisher = "publisher"
	RoleLinker    = "linker"
)
