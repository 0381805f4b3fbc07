package commands

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"github.com/petal-labs/imagegen/core"
	"github.com/petal-labs/imagegen/providers/gemini"
)

// enumValue is a string flag restricted to a fixed set of values.
// Out-of-set values fail during flag parsing.
type enumValue struct {
	value   string
	allowed []string
	typ     string
}

func newEnumValue(typ, def string, allowed []string) *enumValue {
	return &enumValue{value: def, allowed: allowed, typ: typ}
}

func (e *enumValue) String() string { return e.value }

func (e *enumValue) Set(s string) error {
	if !slices.Contains(e.allowed, s) {
		return fmt.Errorf("must be one of %s", strings.Join(e.allowed, ", "))
	}
	e.value = s
	return nil
}

func (e *enumValue) Type() string { return e.typ }

func (e *enumValue) choices() string {
	return strings.Join(e.allowed, ", ")
}

var _ pflag.Value = (*enumValue)(nil)

func modelChoices() []string {
	models := gemini.ImageModels()
	out := make([]string, len(models))
	for i, m := range models {
		out[i] = string(m)
	}
	return out
}

func aspectChoices() []string {
	ratios := core.AspectRatios()
	out := make([]string, len(ratios))
	for i, r := range ratios {
		out[i] = string(r)
	}
	return out
}

func sizeChoices() []string {
	sizes := core.ImageSizes()
	out := make([]string, len(sizes))
	for i, s := range sizes {
		out[i] = string(s)
	}
	return out
}

// addShapingFlags registers --model, --aspect and --size on flags.
func (a *App) addShapingFlags(flags *pflag.FlagSet) {
	flags.VarP(a.model, "model", "m", fmt.Sprintf("model to use (%s)", a.model.choices()))
	flags.VarP(a.aspect, "aspect", "a", fmt.Sprintf("output aspect ratio (%s)", a.aspect.choices()))
	flags.VarP(a.size, "size", "s", fmt.Sprintf("output resolution (%s)", a.size.choices()))
}
