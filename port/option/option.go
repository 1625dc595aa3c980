// Package option contains the configuration plumbing for the functional option pattern.
package option

// Option will configure a Config.
type Option[Config any] interface {
	// Configure will configure an option.
	Configure(*Config)
}

// Func (option.Func[Config]) is a default implementation for creating options.
type Func[Config any] func(*Config)

func (fn Func[Config]) Configure(c *Config) { fn(c) }

// ToConfig reduces the passed options into a Config value.
func ToConfig[Config any, Opt Option[Config]](opts []Opt) Config {
	var c Config
	for _, opt := range opts {
		opt.Configure(&c)
	}
	return c
}
