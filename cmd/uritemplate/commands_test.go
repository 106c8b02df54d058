package main

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/shibukawa/uritemplate"
)

func TestParseParams(t *testing.T) {
	values, err := parseParams([]string{"id=42", "tag=a", "tag=b", "tag=c", "empty="})
	assert.NoError(t, err)
	assert.Equal(t, uritemplate.Values{
		"id":    "42",
		"tag":   []string{"a", "b", "c"},
		"empty": "",
	}, values)
}

func TestParseParamsValueContainingEquals(t *testing.T) {
	values, err := parseParams([]string{"q=a=b"})
	assert.NoError(t, err)
	assert.Equal(t, uritemplate.Values{"q": "a=b"}, values)
}

func TestParseParamsErrors(t *testing.T) {
	_, err := parseParams([]string{"noequals"})
	assert.Error(t, err)

	_, err = parseParams([]string{"=value"})
	assert.Error(t, err)
}

func TestBuildRegistryFromCommandLine(t *testing.T) {
	config := &uritemplate.Config{Templates: []string{"/from/config/{x}"}}

	// Command line templates override the configuration.
	reg, err := buildRegistry([]string{"/users/{id}"}, config)
	assert.NoError(t, err)
	assert.Equal(t, []string{"/users/{id}"}, reg.All())

	reg, err = buildRegistry(nil, config)
	assert.NoError(t, err)
	assert.Equal(t, []string{"/from/config/{x}"}, reg.All())

	_, err = buildRegistry([]string{"{broken"}, config)
	assert.Error(t, err)
}
