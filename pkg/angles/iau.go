package angles

import (
	"fmt"
	"math"
	"strconv"
)

// Mode selects the IAU position-name flavor.
type Mode string

const (
	// ModeJ2000 names use J-epoch equatorial coordinates, Jhhmm+ddmm.
	ModeJ2000 Mode = "J"

	// ModeB1950 names use B-epoch equatorial coordinates, Bhhmm+ddmm.
	ModeB1950 Mode = "B"

	// ModeGalactic names use decimal galactic coordinates, Gddd.d+dd.d.
	ModeGalactic Mode = "G"
)

// IAUName formats a position as an IAU source name. For the equatorial
// modes lon is right ascension in hours and lat is declination in degrees;
// for ModeGalactic both are decimal degrees. The sexagesimal fields are
// truncated, not rounded, per the IAU convention, and the latitude sign is
// always explicit.
func IAUName(lon, lat float64, mode Mode) (string, error) {
	if math.Abs(lat) > 90 {
		return "", &RangeError{Quantity: "latitude", Value: lat}
	}
	switch mode {
	case ModeGalactic:
		if lon < 0 || lon >= 360 {
			return "", &RangeError{Quantity: "galactic longitude", Value: lon}
		}
		return fmt.Sprintf("G%05.1f%+05.1f", lon, lat), nil
	case ModeJ2000, ModeB1950:
		if lon < 0 || lon >= 24 {
			return "", &RangeError{Quantity: "right ascension hours", Value: lon}
		}
		raH := int(lon)
		raM := int(60 * (lon - float64(raH)))
		sign := byte('+')
		if lat < 0 {
			sign = '-'
		}
		decD := int(math.Abs(lat))
		decM := int(60 * (math.Abs(lat) - float64(decD)))
		return fmt.Sprintf("%s%02d%02d%c%02d%02d", string(mode), raH, raM, sign, decD, decM), nil
	default:
		return "", &ParseError{Input: string(mode), Expected: "mode J, B or G"}
	}
}

// ParseIAUName parses an IAU source name back into coordinates. It is the
// inverse of IAUName at the name's resolution: minutes for the equatorial
// modes, a tenth of a degree for galactic names.
func ParseIAUName(s string) (lon, lat float64, mode Mode, err error) {
	if len(s) < 1 {
		return 0, 0, "", &ParseError{Input: s, Expected: "IAU position name"}
	}
	mode = Mode(s[:1])
	rest := s[1:]
	switch mode {
	case ModeGalactic:
		// Gddd.d+dd.d: five characters of longitude, then a signed latitude.
		if len(rest) != 10 {
			return 0, 0, "", &ParseError{Input: s, Expected: "Gddd.d+dd.d"}
		}
		lon, err = strconv.ParseFloat(rest[:5], 64)
		if err != nil || lon < 0 {
			return 0, 0, "", &ParseError{Input: s, Expected: "Gddd.d+dd.d"}
		}
		if rest[5] != '+' && rest[5] != '-' {
			return 0, 0, "", &ParseError{Input: s, Expected: "Gddd.d+dd.d"}
		}
		lat, err = strconv.ParseFloat(rest[5:], 64)
		if err != nil {
			return 0, 0, "", &ParseError{Input: s, Expected: "Gddd.d+dd.d"}
		}
		return lon, lat, mode, nil
	case ModeJ2000, ModeB1950:
		// hhmm followed by a signed ddmm.
		if len(rest) != 9 || !allDigits(rest[:4]) || !allDigits(rest[5:]) {
			return 0, 0, "", &ParseError{Input: s, Expected: string(mode) + "hhmm+ddmm"}
		}
		if rest[4] != '+' && rest[4] != '-' {
			return 0, 0, "", &ParseError{Input: s, Expected: string(mode) + "hhmm+ddmm"}
		}
		raH, _ := strconv.Atoi(rest[0:2])
		raM, _ := strconv.Atoi(rest[2:4])
		decD, _ := strconv.Atoi(rest[5:7])
		decM, _ := strconv.Atoi(rest[7:9])
		if raH > 23 || raM > 59 || decD > 90 || decM > 59 {
			return 0, 0, "", &RangeError{Quantity: "coordinate field", Value: float64(raH)}
		}
		lon = float64(raH) + float64(raM)/60
		lat = float64(decD) + float64(decM)/60
		if rest[4] == '-' {
			lat = -lat
		}
		return lon, lat, mode, nil
	default:
		return 0, 0, "", &ParseError{Input: s, Expected: "IAU position name"}
	}
}
