package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"2024-03-01"`), &d))
		assert.Equal(t, NewDate(2024, time.March, 1), d)

		out, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Equal(t, `"2024-03-01"`, string(out))
	})

	t.Run("timestamp keeps its calendar day", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"2024-03-01T23:30:00+05:30"`), &d))
		assert.Equal(t, "2024-03-01", d.String())
	})

	t.Run("null and empty mean unset", func(t *testing.T) {
		for _, raw := range []string{`null`, `""`} {
			d := NewDate(2024, time.March, 1)
			require.NoError(t, json.Unmarshal([]byte(raw), &d))
			assert.True(t, d.IsZero(), raw)
		}

		out, err := json.Marshal(Date{})
		require.NoError(t, err)
		assert.Equal(t, "null", string(out))
	})

	t.Run("malformed", func(t *testing.T) {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(`"01/03/2024"`), &d))
		assert.Error(t, json.Unmarshal([]byte(`20240301`), &d))
	})
}

func TestDate_Before(t *testing.T) {
	start := NewDate(2024, time.March, 1)

	assert.True(t, NewDate(2024, time.February, 29).Before(start))
	assert.False(t, start.Before(start))
	assert.False(t, NewDate(2024, time.March, 2).Before(start))
}

func TestDate_SQL(t *testing.T) {
	value, err := NewDate(2024, time.September, 10).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-09-10", value)

	value, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	cases := []interface{}{
		"2024-09-10",
		[]byte("2024-09-10"),
		"2024-09-10 00:00:00+00:00",
		time.Date(2024, time.September, 10, 0, 0, 0, 0, time.UTC),
	}
	for _, src := range cases {
		var d Date
		require.NoError(t, d.Scan(src))
		assert.Equal(t, NewDate(2024, time.September, 10), d)
	}

	var d Date
	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
	assert.Error(t, d.Scan(42))
}
