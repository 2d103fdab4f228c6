package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", d.String())

	for _, bad := range []string{"2026-9-1", "01-09-2026", "2026/09/01", "2026-09-01T00:00:00Z", "tomorrow", ""} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestDateJSON(t *testing.T) {
	d, err := ParseDate("2026-02-28")
	require.NoError(t, err)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-02-28"`, string(raw))

	var back Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, d.String(), back.String())

	assert.Error(t, json.Unmarshal([]byte(`20260228`), &back))
	assert.Error(t, json.Unmarshal([]byte(`"28/02/2026"`), &back))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-03-15", d.String())

	require.NoError(t, d.Scan([]byte("2026-04-01")))
	assert.Equal(t, "2026-04-01", d.String())

	require.NoError(t, d.Scan("2026-05-01"))
	assert.Equal(t, "2026-05-01", d.String())

	assert.Error(t, d.Scan(42))
}
