package config

import "github.com/automoto/wallhop/input"

// Input is the global input configuration
var Input input.Bindings

func init() {
	Input = input.DefaultBindings()
}
