package resolvepath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandTildeWith(t *testing.T) {
	const home = "/home/test"

	tests := []struct {
		name string
		path string
		want string
	}{
		{"bare tilde", "~", home},
		{"tilde slash", "~/", home},
		{"tilde with many slashes", "~/////", home},
		{"tilde path", "~/.config", "/home/test/.config"},
		{"nested tilde path", "~/.config/alacritty/alacritty.yml", "/home/test/.config/alacritty/alacritty.yml"},
		{"redundant slashes after tilde", "~/////.config", "/home/test/.config"},
		{"inner separators are kept", "~/a//b", "/home/test/a//b"},
		{"inner dot segments are kept", "~/a/./b", "/home/test/a/./b"},
		{"relative segments are kept", "~/.config/../.vim/", "/home/test/.config/../.vim/"},
		{"other user is untouched", "~alice", "~alice"},
		{"other user path is untouched", "~alice/.config", "~alice/.config"},
		{"absolute path is untouched", "/tmp/hello", "/tmp/hello"},
		{"relative path is untouched", "./configure", "./configure"},
		{"tilde in the middle is untouched", "/path/to/~/file", "/path/to/~/file"},
		{"invalid utf-8 is untouched", "~/\xff\xfe", "~/\xff\xfe"},
		{"empty path", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandTildeWith(home, tt.path))
		})
	}
}

func TestExpandTildeWith_HomeTrailingSlash(t *testing.T) {
	assert.Equal(t, "/home/test/", ExpandTildeWith("/home/test/", "~"))
	assert.Equal(t, "/home/test/.config", ExpandTildeWith("/home/test/", "~/.config"))
}

func TestResolver_ExpandTilde(t *testing.T) {
	r := &Resolver{Home: StaticHome("/home/test")}

	got, err := r.ExpandTilde("~/.vimrc")
	require.NoError(t, err)
	assert.Equal(t, "/home/test/.vimrc", got)
}

func TestResolver_ExpandTilde_HomeNotFound(t *testing.T) {
	r := &Resolver{Home: func() (string, error) { return "", assert.AnError }}

	_, err := r.ExpandTilde("~/.vimrc")
	require.Error(t, err)
	assert.True(t, IsHomeNotFound(err))
	assert.ErrorIs(t, err, assert.AnError)
}

func TestResolver_ExpandTilde_EmptyHome(t *testing.T) {
	r := &Resolver{Home: StaticHome("")}

	_, err := r.ExpandTilde("~")
	assert.True(t, IsHomeNotFound(err))
}

func TestResolver_ExpandTilde_NoLookupWithoutTilde(t *testing.T) {
	called := false
	r := &Resolver{Home: func() (string, error) {
		called = true
		return "", assert.AnError
	}}

	got, err := r.ExpandTilde("./configure")
	require.NoError(t, err)
	assert.Equal(t, "./configure", got)
	assert.False(t, called, "home directory should not be looked up")
}
