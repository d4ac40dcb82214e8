package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/curaious/ttv/internal/utils"
)

func TestPtr(t *testing.T) {
	assert := assert.New(t)

	n := utils.Ptr(42)
	assert.Equal(42, *n)

	s := utils.Ptr("previews")
	assert.Equal("previews", *s)
}

func TestDecodeJSON(t *testing.T) {
	assert := assert.New(t)

	var out struct {
		Name string `json:"name"`
	}
	assert.NoError(utils.DecodeJSON(strings.NewReader(`{"name": "ttv"}`), &out))
	assert.Equal("ttv", out.Name)

	assert.Error(utils.DecodeJSON(strings.NewReader("{"), &out))
}
