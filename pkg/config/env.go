package config

const EnvPrefix = "BLEESHOP"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags (tests, error
// messages).
const (
	EnvAppEnv          = "BLEESHOP_APP_ENV"
	EnvPort            = "BLEESHOP_APP_PORT"
	EnvRedisURL        = "BLEESHOP_REDIS_URL"
	EnvShippingToken   = "BLEESHOP_SHIPPING_TOKEN"
	EnvShippingOrigin  = "BLEESHOP_SHIPPING_ORIGIN_POSTAL_CODE"
	EnvShippingBaseURL = "BLEESHOP_SHIPPING_BASE_URL"
)
