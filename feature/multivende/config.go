package multivende

// Config holds configuration for the Multivende REST API.
type Config struct {
	// BaseURL is the API root.
	BaseURL string `mapstructure:"base_url" default:"https://app.multivende.com"`
	// MerchantID scopes merchant-level collections (checkouts, products).
	MerchantID string `mapstructure:"merchant_id" default:""`
	// ClientID identifies the OAuth application for token refresh.
	ClientID string `mapstructure:"client_id" default:""`
	// ClientSecret is the OAuth application secret.
	ClientSecret string `mapstructure:"client_secret" default:""`
	// TimeoutSeconds bounds every outbound call. A hung upstream request
	// must not hang a whole sync run.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
