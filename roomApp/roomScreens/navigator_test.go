package roomScreens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigatorStartsAtLogin(t *testing.T) {
	nav := NewNavigator()
	assert.Equal(t, Login(), nav.Current())
	assert.Equal(t, 1, nav.Depth())
	assert.False(t, nav.Back())
}

func TestLoginClearsHistory(t *testing.T) {
	nav := NewNavigator()
	nav.NavigatePopUpTo(Home(), RouteLogin)

	assert.Equal(t, Home(), nav.Current())
	assert.Equal(t, 1, nav.Depth())
	assert.False(t, nav.Back(), "login must not be reachable from home")
	assert.Equal(t, Home(), nav.Current())
}

func TestNavigatorDetailsAndBack(t *testing.T) {
	nav := NewNavigator()
	nav.NavigatePopUpTo(Home(), RouteLogin)
	nav.Navigate(Details("3"))

	assert.Equal(t, Details("3"), nav.Current())
	assert.True(t, nav.Back())
	assert.Equal(t, Home(), nav.Current())
}

func TestNavigatePopUpToMissingEntryKeepsStack(t *testing.T) {
	nav := NewNavigator()
	nav.NavigatePopUpTo(Home(), "nowhere")
	assert.Equal(t, 2, nav.Depth())
}

func TestParseRoute(t *testing.T) {
	cases := map[string]Route{
		"login":        Login(),
		"/home":        Home(),
		"details/abc":  Details("abc"),
		"details/":     Details(""),
		"details":      Details(""),
		"/details/42/": Details("42"),
	}
	for path, want := range cases {
		got, err := ParseRoute(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	for _, path := range []string{"", "settings", "home/1"} {
		_, err := ParseRoute(path)
		assert.Error(t, err, path)
	}
}

func TestRoutePath(t *testing.T) {
	assert.Equal(t, "login", Login().Path())
	assert.Equal(t, "home", Home().Path())
	assert.Equal(t, "details/7", Details("7").Path())
}
