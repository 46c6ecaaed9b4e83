package ioingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellFloat(t *testing.T) {
	tests := []struct {
		msg, in string
		want    *float64
	}{
		{"plain", "7.5", ptr(7.5)},
		{"comma decimal", "7,5", ptr(7.5)},
		{"integer", "12", ptr(12.0)},
		{"padded", " 0,31 ", ptr(0.31)},
		{"empty", "", nil},
		{"dash", "-", nil},
		{"en dash", "–", nil},
		{"em dash", "—", nil},
		{"n/a any case", "N/A", nil},
		{"null", "null", nil},
		{"garbage", "abc", nil},
	}

	for _, v := range tests {
		got := cellFloat(v.in)
		if v.want == nil {
			assert.Nil(t, got, v.msg)
			continue
		}
		require.NotNil(t, got, v.msg)
		assert.InDelta(t, *v.want, *got, 1e-9, v.msg)
	}
}

func TestCellInt(t *testing.T) {
	assert.Equal(t, 7, cellInt("7"))
	assert.Equal(t, -3, cellInt("-3"))
	// Absent plus/minus means zero, not NULL.
	assert.Equal(t, 0, cellInt(""))
	assert.Equal(t, 0, cellInt("-"))
}

func TestCellString(t *testing.T) {
	got := cellString(" ΚΕΝΤΡΟ ")
	require.NotNil(t, got)
	assert.Equal(t, "ΚΕΝΤΡΟ", *got)

	assert.Nil(t, cellString(""))
	assert.Nil(t, cellString("—"))
}

func TestCellMinutes(t *testing.T) {
	tests := []struct {
		msg, in string
		want    *float64
	}{
		{"mm:ss", "34:30", ptr(34.5)},
		{"zero seconds", "12:00", ptr(12.0)},
		{"plain number", "18", ptr(18.0)},
		{"placeholder", "-", nil},
		{"seconds overflow", "34:75", nil},
		{"garbage", "dnp", nil},
	}

	for _, v := range tests {
		got := cellMinutes(v.in)
		if v.want == nil {
			assert.Nil(t, got, v.msg)
			continue
		}
		require.NotNil(t, got, v.msg)
		assert.InDelta(t, *v.want, *got, 1e-9, v.msg)
	}
}

func ptr(f float64) *float64 { return &f }
