package config

import "sort"

// Presets override the field section of the default config.
var Presets = map[string]func(*Config){
	"calm": func(c *Config) {
		c.Field.MaxSpeed = 0.08
		c.Field.LinkAlpha = 0.05
	},
	"dense": func(c *Config) {
		c.Field.NarrowCount = 60
		c.Field.WideCount = 120
		c.Field.LinkDistance = 110
	},
	"sparse": func(c *Config) {
		c.Field.NarrowCount = 12
		c.Field.WideCount = 24
		c.Field.LinkDistance = 220
		c.Field.MaxSpeed = 0.3
	},
}

func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// Apply overlays a named preset onto an existing config.
func (c *Config) Apply(name string) bool {
	apply, ok := Presets[name]
	if !ok {
		return false
	}
	apply(c)
	return true
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
