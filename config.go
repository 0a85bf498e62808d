package clf

// Config describes how to compute class fragments for a set of props.
// The zero value is an empty configuration.
type Config struct {
	// Variants maps an option name to its option values and their classes.
	Variants map[string]map[string]string
	// DefaultVariants holds the value used when the caller omits an option.
	DefaultVariants map[string]Value
	// Responsive maps a breakpoint label to unprefixed utilities,
	// e.g. "md": "flex-row gap-2" yields "md:flex-row md:gap-2".
	Responsive map[string]string
	// ClassName and Class are appended verbatim, after everything else.
	ClassName string
	Class     string
}

// ConfigFunc computes a Config from the props of the current call.
type ConfigFunc func(Props) Config

// Source is either a literal Config or a ConfigFunc.
type Source interface {
	resolve(Props) Config
}

func (c Config) resolve(Props) Config { return c }

func (f ConfigFunc) resolve(p Props) Config {
	if f == nil {
		return Config{}
	}
	return f(p)
}

// Defaults builds a DefaultVariants map from plain Go values, converted
// with ValueOf.
func Defaults(values map[string]any) map[string]Value {
	out := make(map[string]Value, len(values))
	for name, v := range values {
		out[name] = ValueOf(v)
	}
	return out
}

func resolveConfig(src Source, p Props) Config {
	switch s := src.(type) {
	case nil:
		return Config{}
	case *Config:
		if s == nil {
			return Config{}
		}
	}
	return src.resolve(p)
}
