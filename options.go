package brcode

// Option configures how a payload is built.
type Option func(*buildConfig)

type buildConfig struct {
	txidGenerator func() string
	validate      bool
}

func defaultBuildConfig() buildConfig {
	return buildConfig{txidGenerator: GenerateTransactionID}
}

// WithTransactionIDGenerator replaces the generator used when the request
// carries no transaction id.
func WithTransactionIDGenerator(gen func() string) Option {
	return func(c *buildConfig) {
		if gen != nil {
			c.txidGenerator = gen
		}
	}
}

// WithValidation runs Request.Validate before building.
func WithValidation() Option {
	return func(c *buildConfig) {
		c.validate = true
	}
}
