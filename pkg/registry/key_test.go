package registry_test

import (
	"strings"
	"testing"

	"github.com/devantler-tech/jnl/pkg/registry"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want registry.Key
	}{
		{name: "already normalized", raw: "//host/repo/", want: "//host/repo/"},
		{name: "missing trailing slash", raw: "//host/repo", want: "//host/repo/"},
		{name: "https scheme", raw: "https://host/repo/", want: "//host/repo/"},
		{name: "http scheme", raw: "http://host/repo", want: "//host/repo/"},
		{name: "uppercase scheme", raw: "HTTPS://host/repo", want: "//host/repo/"},
		{name: "bare host", raw: "host/repo", want: "//host/repo/"},
		{name: "single leading slash", raw: "/host/repo/", want: "//host/repo/"},
		{name: "duplicate trailing slashes", raw: "//host/repo///", want: "//host/repo/"},
		{name: "surrounding whitespace", raw: "  https://host/repo  ", want: "//host/repo/"},
		{name: "scheme without slashes kept as host", raw: "https:host", want: "//https:host/"},
		{
			name: "artifactory url",
			raw:  "https://my-domain.com/artifactory/api/npm/default",
			want: "//my-domain.com/artifactory/api/npm/default/",
		},
		{name: "empty", raw: "", want: "///"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, registry.Normalize(testCase.raw))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"/",
		"//",
		"///",
		"host",
		"/host",
		"//host",
		"https://host/a/b//",
		"http:/host",
		"https:",
		"  //x.com/api/npm/r  ",
		"@jfrog:registry",
	}

	for _, input := range inputs {
		once := registry.Normalize(input)
		twice := registry.Normalize(string(once))

		assert.Equal(t, once, twice, "normalize must be idempotent for %q", input)
		assert.True(t, strings.HasPrefix(string(once), "//"), "key %q must start with //", once)
		assert.True(t, strings.HasSuffix(string(once), "/"), "key %q must end with /", once)

		if len(once) > len("///") {
			assert.False(t, strings.HasSuffix(string(once), "//"), "key %q has a double trailing slash", once)
		}
	}
}

func TestKey_URL(t *testing.T) {
	t.Parallel()

	key := registry.Key("//host/repo/")

	assert.Equal(t, "https://host/repo/", key.URL(""))
	assert.Equal(t, "http://host/repo/", key.URL("http"))
	assert.Equal(t, registry.Key("//host/repo/"), registry.Normalize(key.URL("")))
}

func TestKey_FieldKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "//host/repo/:_authToken", registry.Key("//host/repo/").FieldKey("_authToken"))
}
