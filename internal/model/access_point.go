package model

import (
	"slices"
	"strings"
)

// HiddenSSID is the display name given to networks that do not broadcast one.
const HiddenSSID = "Hidden SSID"

// OpenEncryption is the encryption label Kismet reports for open networks.
const OpenEncryption = "None"

// markupStripper removes characters that would break the unescaped KML output.
var markupStripper = strings.NewReplacer("&", "", "<", "", ">", "")

// AccessPoint is a single infrastructure network observed during a scan.
// Every field has been passed through Sanitize.
type AccessPoint struct {
	BSSID        string   `json:"bssid" yaml:"bssid"`
	SSID         string   `json:"ssid" yaml:"ssid"`
	Manufacturer string   `json:"manufacturer" yaml:"manufacturer"`
	Encryption   []string `json:"encryption" yaml:"encryption"`
	Latitude     string   `json:"latitude" yaml:"latitude"`
	Longitude    string   `json:"longitude" yaml:"longitude"`
	Altitude     string   `json:"altitude" yaml:"altitude"`
}

// NewAccessPoint builds an AccessPoint, stripping markup characters from every field.
func NewAccessPoint(bssid, ssid, manuf string, enc []string, lat, lon, alt string) AccessPoint {
	cleaned := make([]string, len(enc))
	for i, e := range enc {
		cleaned[i] = Sanitize(e)
	}

	return AccessPoint{
		BSSID:        Sanitize(bssid),
		SSID:         Sanitize(ssid),
		Manufacturer: Sanitize(manuf),
		Encryption:   cleaned,
		Latitude:     Sanitize(lat),
		Longitude:    Sanitize(lon),
		Altitude:     Sanitize(alt),
	}
}

// Sanitize deletes '&', '<' and '>' from s. The characters are dropped, not escaped.
func Sanitize(s string) string {
	return markupStripper.Replace(s)
}

// IsHidden reports whether the network carries the hidden placeholder name.
func (ap AccessPoint) IsHidden() bool {
	return ap.SSID == HiddenSSID
}

// IsOpen reports whether the network advertises no encryption.
func (ap AccessPoint) IsOpen() bool {
	return slices.Contains(ap.Encryption, OpenEncryption)
}
