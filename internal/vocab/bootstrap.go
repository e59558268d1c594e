package vocab

import (
	"slices"
	"sort"
	"sync"
)

// breakpoints are the responsive infixes, including the unprefixed base.
var breakpoints = []string{"", "sm-", "md-", "lg-", "xl-", "xxl-"}

var (
	themeColors = []string{"primary", "secondary", "success", "danger", "warning", "info", "light", "dark"}
	spacerScale = []string{"0", "1", "2", "3", "4", "5"}
	percentages = []string{"25", "50", "75", "100"}
	opacities   = []string{"10", "25", "50", "75", "100"}
	displays    = []string{
		"none", "inline", "inline-block", "block", "grid", "inline-grid",
		"table", "table-row", "table-cell", "flex", "inline-flex",
	}
)

// family expands to prefix + breakpoint + value for every combination.
// Families without responsive variants use only the empty breakpoint.
type family struct {
	prefixes   []string
	responsive bool
	values     []string
}

var families = []family{
	// display
	{prefixes: []string{"d-"}, responsive: true, values: displays},
	{prefixes: []string{"d-print-"}, values: displays},

	// spacing; negative margins use the n1..n5 scale
	{
		prefixes:   spacingPrefixes("m", "p"),
		responsive: true,
		values:     append(slices.Clone(spacerScale), "auto"),
	},
	{
		prefixes:   spacingPrefixes("m"),
		responsive: true,
		values:     []string{"n1", "n2", "n3", "n4", "n5"},
	},

	// gap and gutters
	{
		prefixes:   []string{"gap-", "row-gap-", "column-gap-", "g-", "gx-", "gy-"},
		responsive: true,
		values:     spacerScale,
	},

	// flex
	{
		prefixes:   []string{"flex-"},
		responsive: true,
		values: []string{
			"row", "row-reverse", "column", "column-reverse",
			"wrap", "wrap-reverse", "nowrap", "fill",
			"grow-0", "grow-1", "shrink-0", "shrink-1",
		},
	},
	{prefixes: []string{"align-items-"}, responsive: true, values: []string{"start", "end", "center", "baseline", "stretch"}},
	{prefixes: []string{"align-self-"}, responsive: true, values: []string{"start", "end", "center", "baseline", "stretch", "auto"}},
	{prefixes: []string{"justify-content-"}, responsive: true, values: []string{"start", "end", "center", "between", "around", "evenly"}},
	{prefixes: []string{"order-"}, responsive: true, values: append(slices.Clone(spacerScale), "first", "last")},

	// float, object-fit
	{prefixes: []string{"float-"}, responsive: true, values: []string{"start", "end", "none"}},
	{prefixes: []string{"object-fit-"}, responsive: true, values: []string{"contain", "cover", "fill", "scale", "none"}},

	// text
	{prefixes: []string{"text-"}, responsive: true, values: []string{"start", "center", "end"}},
	{
		prefixes: []string{"text-"},
		values: concat(
			[]string{
				"wrap", "nowrap", "break", "truncate", "lowercase", "uppercase", "capitalize",
				"muted", "white", "black", "reset", "body", "body-secondary", "body-tertiary",
			},
			themeColors,
			suffixed(themeColors, "-emphasis"),
		),
	},
	{prefixes: []string{"text-decoration-"}, values: []string{"none", "underline", "line-through"}},
	{prefixes: []string{"text-opacity-"}, values: percentages},
	{prefixes: []string{"text-bg-"}, values: themeColors},
	{prefixes: []string{"fw-"}, values: []string{"bold", "bolder", "semibold", "normal", "light", "lighter"}},
	{prefixes: []string{"fst-"}, values: []string{"italic", "normal"}},
	{prefixes: []string{"fs-"}, values: []string{"1", "2", "3", "4", "5", "6"}},
	{prefixes: []string{"lh-"}, values: []string{"1", "sm", "base", "lg"}},

	// background
	{
		prefixes: []string{"bg-"},
		values: concat(
			themeColors,
			[]string{"white", "black", "transparent", "body", "body-secondary", "body-tertiary", "gradient"},
			suffixed(themeColors, "-subtle"),
		),
	},
	{prefixes: []string{"bg-opacity-"}, values: opacities},

	// border
	{prefixes: []string{"border"}, values: []string{"", "-0", "-top", "-top-0", "-end", "-end-0", "-bottom", "-bottom-0", "-start", "-start-0"}},
	{
		prefixes: []string{"border-"},
		values: concat(
			themeColors,
			[]string{"white", "black", "1", "2", "3", "4", "5"},
			suffixed(themeColors, "-subtle"),
		),
	},
	{prefixes: []string{"border-opacity-"}, values: opacities},

	// border radius, including per-side and per-corner variants
	{prefixes: []string{"rounded"}, values: []string{"", "-circle", "-pill"}},
	{
		prefixes: []string{
			"rounded-", "rounded-top-", "rounded-end-", "rounded-bottom-", "rounded-start-",
			"rounded-top-start-", "rounded-top-end-", "rounded-bottom-start-", "rounded-bottom-end-",
		},
		values: spacerScale,
	},
	{
		prefixes: []string{"rounded-"},
		values:   []string{"top", "end", "bottom", "start", "top-start", "top-end", "bottom-start", "bottom-end"},
	},

	// sizing
	{prefixes: []string{"w-", "h-"}, values: append(slices.Clone(percentages), "auto")},
	{prefixes: []string{"mw-", "mh-", "vw-", "vh-", "min-vw-", "min-vh-"}, values: []string{"100"}},

	// position
	{prefixes: []string{"position-"}, values: []string{"static", "relative", "absolute", "fixed", "sticky"}},
	{prefixes: []string{"top-", "bottom-", "start-", "end-"}, values: []string{"0", "50", "100"}},
	{prefixes: []string{"translate-middle"}, values: []string{"", "-x", "-y"}},

	// shadow, opacity, overflow
	{prefixes: []string{"shadow"}, values: []string{"", "-sm", "-lg", "-none"}},
	{prefixes: []string{"opacity-"}, values: []string{"0", "25", "50", "75", "100"}},
	{prefixes: []string{"overflow-", "overflow-x-", "overflow-y-"}, values: []string{"auto", "hidden", "visible", "scroll"}},

	// z-index and misc utilities
	{prefixes: []string{"z-"}, values: []string{"n1", "0", "1", "2", "3"}},
	{prefixes: []string{"user-select-"}, values: []string{"all", "auto", "none"}},
	{prefixes: []string{"pe-"}, values: []string{"none", "auto"}},
	{prefixes: []string{"align-"}, values: []string{"baseline", "top", "middle", "bottom", "text-top", "text-bottom"}},

	// links
	{prefixes: []string{"link-"}, values: concat(themeColors, suffixed(themeColors, "-emphasis"))},
	{prefixes: []string{"link-underline"}, values: concat([]string{""}, prefixed("-", themeColors))},
	{prefixes: []string{"link-opacity-"}, values: opacities},
	{prefixes: []string{"link-offset-"}, values: []string{"1", "2", "3"}},

	// ratio
	{prefixes: []string{"ratio"}, values: []string{"", "-1x1", "-4x3", "-16x9", "-21x9"}},
}

var bootstrap = sync.OnceValue(func() []string {
	seen := make(map[string]struct{}, 4096)
	add := func(name string) { seen[name] = struct{}{} }

	for _, name := range components {
		add(name)
	}
	for _, f := range families {
		bps := []string{""}
		if f.responsive {
			bps = breakpoints
		}
		for _, p := range f.prefixes {
			for _, bp := range bps {
				for _, v := range f.values {
					add(p + bp + v)
				}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
})

// Bootstrap returns the Bootstrap 5.3 class names, sorted ascending. The
// slice is built once and shared; callers must not modify it.
func Bootstrap() []string {
	return bootstrap()
}

// Contains reports whether name is part of the Bootstrap vocabulary.
func Contains(name string) bool {
	_, ok := slices.BinarySearch(bootstrap(), name)
	return ok
}

// spacingPrefixes builds "m-", "mt-", … "px-", "py-" for the given properties.
func spacingPrefixes(props ...string) []string {
	var out []string
	for _, p := range props {
		for _, dir := range []string{"", "t", "b", "s", "e", "x", "y"} {
			out = append(out, p+dir+"-")
		}
	}
	return out
}

func suffixed(values []string, suffix string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v + suffix
	}
	return out
}

func prefixed(prefix string, values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = prefix + v
	}
	return out
}

func concat(lists ...[]string) []string {
	return slices.Concat(lists...)
}
