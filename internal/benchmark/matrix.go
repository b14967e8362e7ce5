package benchmark

import (
	"github.com/samber/lo"
)

// Validate checks a group definition. All errors wrap ErrConfig.
func (g Group) Validate() error {
	if g.Name == "" {
		return ConfigError("group has no name")
	}
	if len(g.Variants) == 0 {
		return ConfigError("group %q has no variants", g.Name)
	}
	if g.Samples <= 0 {
		return ConfigError("group %q: sample count must be positive, got %d", g.Name, g.Samples)
	}
	if g.SampleSize < 0 {
		return ConfigError("group %q: sample size must not be negative, got %d", g.Name, g.SampleSize)
	}
	if g.Warmup < 0 {
		return ConfigError("group %q: warmup must not be negative, got %d", g.Name, g.Warmup)
	}

	seen := make(map[string]struct{}, len(g.Variants))
	for _, v := range g.Variants {
		if v.Name == "" {
			return ConfigError("group %q has an unnamed variant", g.Name)
		}
		if _, dup := seen[v.Name]; dup {
			return ConfigError("group %q declares variant %q twice", g.Name, v.Name)
		}
		seen[v.Name] = struct{}{}

		want := g.Operation.Capability()
		if v.Capability != want {
			return ConfigError("group %q: variant %q has %s capability, %s operation needs %s",
				g.Name, v.Name, v.Capability, g.Operation, want)
		}
		if !hasConstructor(v) {
			return ConfigError("group %q: variant %q has no %s constructor", g.Name, v.Name, v.Capability)
		}
	}

	if !g.Operation.Sized() {
		if len(g.Sizes) > 0 {
			return ConfigError("group %q: %s operation takes no sizes", g.Name, g.Operation)
		}
		return nil
	}

	if len(g.Sizes) == 0 {
		return ConfigError("group %q: %s operation needs at least one size", g.Name, g.Operation)
	}
	for _, size := range g.Sizes {
		if size < 0 {
			return ConfigError("group %q: negative size %d", g.Name, size)
		}
	}
	if len(lo.Uniq(g.Sizes)) != len(g.Sizes) {
		return ConfigError("group %q: duplicate sizes in %v", g.Name, g.Sizes)
	}
	return nil
}

func hasConstructor(v Variant) bool {
	switch v.Capability {
	case CapabilityDigest:
		return v.NewHash != nil
	case CapabilityStream:
		return v.NewStream != nil
	case CapabilityIdentifier:
		return v.NewID != nil
	}
	return false
}

// Enumerate builds the benchmark matrix: groups in declaration order, then
// variants (outer) by sizes (inner). Unsized groups yield one case per variant.
// Every group is validated before any case is produced.
func Enumerate(groups []Group) ([]Case, error) {
	if len(groups) == 0 {
		return nil, ConfigError("no benchmark groups selected")
	}

	names := lo.Map(groups, func(g Group, _ int) string { return g.Name })
	if len(lo.Uniq(names)) != len(names) {
		return nil, ConfigError("duplicate group names in %v", names)
	}

	for _, g := range groups {
		if err := g.Validate(); err != nil {
			return nil, err
		}
	}

	var cases []Case
	for _, g := range groups {
		sizes := g.Sizes
		if !g.Operation.Sized() {
			sizes = []int{0}
		}

		for _, v := range g.Variants {
			for _, size := range sizes {
				cases = append(cases, Case{
					Group:      g.Name,
					Operation:  g.Operation,
					Variant:    v,
					Size:       size,
					Samples:    g.Samples,
					SampleSize: g.SampleSize,
					Warmup:     g.Warmup,
				})
			}
		}
	}

	return cases, nil
}
