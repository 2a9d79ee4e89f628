package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_TagsEveryLine(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "Blog API", "1.2.0")

	l.Info().Str("blog_id", "abc").Msg("Blog created")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Blog API", line["service"])
	assert.Equal(t, "1.2.0", line["version"])
	assert.Equal(t, "abc", line["blog_id"])
	assert.Equal(t, "Blog created", line["message"])
	assert.Contains(t, line, "time")
}
