package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutputFormat(t *testing.T) {
	for _, f := range []string{"text", "json", "yaml"} {
		assert.NoError(t, ValidateOutputFormat(f), f)
	}
	assert.Error(t, ValidateOutputFormat("xml"))
}

func TestOutputResults(t *testing.T) {
	data := map[string]string{"fiat": "USD"}

	var buf bytes.Buffer
	require.NoError(t, OutputResults(&buf, "json", data))
	assert.JSONEq(t, `{"fiat":"USD"}`, buf.String())

	buf.Reset()
	require.NoError(t, OutputResults(&buf, "yaml", data))
	assert.Equal(t, "fiat: USD\n", buf.String())

	assert.Error(t, OutputResults(&buf, "text", data))
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	table := NewTableFormatter(&buf)
	table.Header("LABEL", "NETWORK")
	table.Row("Alice", "Ethereum")
	table.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "LABEL"))
	assert.True(t, strings.HasPrefix(lines[1], "-----"))
	assert.Contains(t, lines[2], "Ethereum")
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "abcdefg...", TruncateString("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", TruncateString("abcdef", 2))
}

func TestShortAddress(t *testing.T) {
	assert.Equal(t, "0x4bbeEB…261520", ShortAddress("0x4bbeEB066eD09B7AEd07bF39EEe0460DFa261520"))
	assert.Equal(t, "0x1234", ShortAddress("0x1234"))
}
