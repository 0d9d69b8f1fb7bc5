package netxml

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/kismet2kml/internal/model"
)

// AnnoyingSSIDs lists lower-case fragments of public hotspot, printer and
// streaming-device SSIDs that clutter a wardrive map.
var AnnoyingSSIDs = []string{
	"btwi",
	"btopenzone",
	"o2 wifi",
	"the cloud",
	"print",
	"chromecast",
	"ee-brightbox",
	"stagecoach",
}

// Options selects which optional filters Extract applies.
type Options struct {
	RemoveEncrypted bool `json:"remove_encrypted" yaml:"remove_encrypted"`
	RemoveAnnoying  bool `json:"remove_annoying" yaml:"remove_annoying"`
	RemoveHidden    bool `json:"remove_hidden" yaml:"remove_hidden"`
}

// IsAnnoying reports whether ssid contains any AnnoyingSSIDs fragment,
// ignoring case.
func IsAnnoying(ssid string) bool {
	lower := cases.Lower(language.Und).String(ssid)
	for _, frag := range AnnoyingSSIDs {
		if strings.Contains(lower, frag) {
			return true
		}
	}
	return false
}

// dropReason is why a candidate network was left out of the output.
type dropReason int

const (
	keep dropReason = iota
	dropHidden
	dropAnnoying
	dropEncrypted
)

// check applies the optional filters in order and returns the first one that rejects ssid/enc.
func (o Options) check(ssid string, enc []string) dropReason {
	if o.RemoveHidden && ssid == model.HiddenSSID {
		return dropHidden
	}
	if o.RemoveAnnoying && IsAnnoying(ssid) {
		return dropAnnoying
	}
	if o.RemoveEncrypted && !slices.Contains(enc, model.OpenEncryption) {
		return dropEncrypted
	}
	return keep
}
