package angles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIAUName(t *testing.T) {
	cases := []struct {
		name string
		lon  float64
		lat  float64
		mode Mode
		want string
	}{
		{"j2000_north", 5.5, 30.25, ModeJ2000, "J0530+3015"},
		{"j2000_south", 5.5, -30.25, ModeJ2000, "J0530-3015"},
		{"b1950", 5.5, -30.25, ModeB1950, "B0530-3015"},
		{"zero_position", 0, 0, ModeJ2000, "J0000+0000"},
		{"galactic", 12.5, -45.3, ModeGalactic, "G012.5-45.3"},
		{"galactic_north", 280.2, 3.6, ModeGalactic, "G280.2+03.6"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := IAUName(tc.lon, tc.lat, tc.mode)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// The IAU convention truncates sexagesimal fields rather than rounding.
func TestIAUNameTruncates(t *testing.T) {
	got, err := IAUName(5.999, 29.999, ModeJ2000)
	require.NoError(t, err)
	assert.Equal(t, "J0559+2959", got)
}

func TestIAUNameInvalid(t *testing.T) {
	cases := []struct {
		name string
		lon  float64
		lat  float64
		mode Mode
	}{
		{"ra_hours_too_big", 24, 0, ModeJ2000},
		{"ra_negative", -1, 0, ModeJ2000},
		{"declination_past_pole", 5, 91, ModeJ2000},
		{"galactic_longitude_wraps", 360, 0, ModeGalactic},
		{"galactic_negative_longitude", -10, 0, ModeGalactic},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := IAUName(tc.lon, tc.lat, tc.mode)
			var rangeErr *RangeError
			require.ErrorAs(t, err, &rangeErr)
		})
	}

	_, err := IAUName(5, 5, Mode("X"))
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseIAUName(t *testing.T) {
	cases := []struct {
		input    string
		wantLon  float64
		wantLat  float64
		wantMode Mode
	}{
		{"J0530+3015", 5.5, 30.25, ModeJ2000},
		{"J0530-3015", 5.5, -30.25, ModeJ2000},
		{"B0530-3015", 5.5, -30.25, ModeB1950},
		{"G012.5-45.3", 12.5, -45.3, ModeGalactic},
		{"G280.2+03.6", 280.2, 3.6, ModeGalactic},
	}
	for _, tc := range cases {
		lon, lat, mode, err := ParseIAUName(tc.input)
		require.NoError(t, err, tc.input)
		assert.InDelta(t, tc.wantLon, lon, 1e-9, tc.input)
		assert.InDelta(t, tc.wantLat, lat, 1e-9, tc.input)
		assert.Equal(t, tc.wantMode, mode, tc.input)
	}
}

func TestParseIAUNameInvalid(t *testing.T) {
	for _, input := range []string{"", "X0530+3015", "J0530", "J0530*3015", "Jhhmm+ddmm", "G12.5-45.3"} {
		_, _, _, err := ParseIAUName(input)
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr, "input %q", input)
	}

	_, _, _, err := ParseIAUName("J2530+3015")
	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)
}

// Names round-trip through the parser at the name's own resolution, for
// both positive and negative declinations.
func TestIAUNameRoundTrip(t *testing.T) {
	cases := []struct {
		lon  float64
		lat  float64
		mode Mode
	}{
		{5.5, 30.25, ModeJ2000},
		{5.5, -30.25, ModeJ2000},
		{23.75, -89.5, ModeB1950},
		{12.5, -45.3, ModeGalactic},
		{280.2, 3.6, ModeGalactic},
	}
	for _, tc := range cases {
		name, err := IAUName(tc.lon, tc.lat, tc.mode)
		require.NoError(t, err)
		lon, lat, mode, err := ParseIAUName(name)
		require.NoError(t, err, name)
		assert.InDelta(t, tc.lon, lon, 1e-9, name)
		assert.InDelta(t, tc.lat, lat, 1e-9, name)
		assert.Equal(t, tc.mode, mode, name)

		again, err := IAUName(lon, lat, mode)
		require.NoError(t, err)
		assert.Equal(t, name, again)
	}
}
