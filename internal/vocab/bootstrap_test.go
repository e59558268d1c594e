package vocab

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrap_SortedAndUnique(t *testing.T) {
	names := Bootstrap()
	require.NotEmpty(t, names)

	assert.True(t, slices.IsSorted(names), "vocabulary must be sorted")
	for i := 1; i < len(names); i++ {
		require.NotEqual(t, names[i-1], names[i], "duplicate %q", names[i])
	}
	assert.NotContains(t, names, "")
}

func TestBootstrap_Stable(t *testing.T) {
	first := Bootstrap()
	second := Bootstrap()
	assert.Same(t, &first[0], &second[0], "vocabulary must be computed once")
}

func TestContains(t *testing.T) {
	present := []string{
		// literal components
		"btn", "btn-primary", "card-body", "modal-fullscreen-lg-down", "visually-hidden", "icon-link",
		// display
		"d-none", "d-md-flex", "d-xxl-inline-grid", "d-print-block",
		// spacing
		"m-0", "mt-3", "px-lg-auto", "my-xl-5", "m-n1", "mx-sm-n5", "pe-2",
		// gap, flex
		"gap-3", "gx-md-2", "row-gap-xxl-0", "flex-md-row-reverse", "flex-grow-1", "flex-lg-shrink-0",
		"justify-content-between", "align-self-sm-auto", "order-last",
		// text, font
		"text-center", "text-md-end", "text-primary-emphasis", "text-body-tertiary",
		"text-decoration-line-through", "text-opacity-75", "text-bg-dark", "fw-semibold", "fs-6", "lh-base",
		// colors
		"bg-primary-subtle", "bg-gradient", "bg-opacity-10", "border-danger-subtle", "border-top-0",
		"border", "border-5", "border-opacity-50",
		// radius
		"rounded", "rounded-pill", "rounded-3", "rounded-top-start", "rounded-bottom-end-5",
		// sizing, position
		"w-25", "h-auto", "min-vh-100", "position-sticky", "top-50", "translate-middle-x",
		// misc
		"shadow", "shadow-sm", "opacity-0", "overflow-y-scroll", "z-n1", "user-select-none", "pe-none",
		"align-text-top",
		// links, ratio
		"link-primary", "link-dark-emphasis", "link-underline", "link-underline-info",
		"link-opacity-25", "link-offset-3", "stretched-link", "ratio", "ratio-16x9",
	}
	for _, name := range present {
		assert.True(t, Contains(name), "expected %q in vocabulary", name)
	}

	absent := []string{"", "btn-tertiary", "m-6", "d-xxxl-flex", "text-sm-primary", "rounded-6", "Btn"}
	for _, name := range absent {
		assert.False(t, Contains(name), "unexpected %q in vocabulary", name)
	}
}

func TestBootstrap_PrefixOrdering(t *testing.T) {
	names := Bootstrap()
	primary := slices.Index(names, "btn-primary")
	outline := slices.Index(names, "btn-outline-primary")
	require.GreaterOrEqual(t, primary, 0)
	require.GreaterOrEqual(t, outline, 0)
	assert.Less(t, outline, primary)
}
