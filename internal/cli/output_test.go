// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatting(t *testing.T) {
	t.Parallel()

	require.Equal(t, "0.6172", formatFloat(0.6172177814626812, 4))
	require.Equal(t, "1", formatFloat(0.9, 0))
	require.Equal(t, "1", formatRank(1))
	require.Equal(t, "2.5", formatRank(2.5))
}

func TestWriteTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, []string{"Alternative", "Score"}, [][]string{{"A1", "0.25"}, {"A2", "1.00"}}))

	out := buf.String()
	for _, want := range []string{"Alternative", "Score", "A1", "0.25", "A2", "1.00"} {
		require.Contains(t, out, want)
	}
	require.True(t, strings.HasSuffix(out, "\n"))
	// header, separator, two rows and the top and bottom borders
	require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 6)
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string][]float64{"scores": {0.5, 1}}))
	require.Equal(t, "{\n  \"scores\": [\n    0.5,\n    1\n  ]\n}\n", buf.String())
}
