package stdlib

import "github.com/cwbudde/rscript/internal/registry"

func registerStrings(reg *registry.Registry) {
	adapt(reg, "+", func(a, b string) (string, error) { return a + b, nil })
	adapt(reg, "len", func(a string) (int64, error) { return int64(len([]rune(a))), nil })
}
