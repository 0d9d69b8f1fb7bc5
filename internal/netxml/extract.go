package netxml

import (
	"github.com/beevik/etree"
	"github.com/rotisserie/eris"

	"github.com/sells-group/kismet2kml/internal/model"
)

// Element and attribute names in the Kismet netxml schema.
const (
	networkPath       = ".//wireless-network"
	infrastructureTyp = "infrastructure"

	tagBSSID      = "BSSID"
	tagSSID       = "SSID"
	tagESSID      = "essid"
	tagEncryption = "encryption"
	tagManuf      = "manuf"
	tagGPSInfo    = "gps-info"
	tagAvgLat     = "avg-lat"
	tagAvgLon     = "avg-lon"
	tagAvgAlt     = "avg-alt"
)

// Stats counts what Extract saw and why networks were dropped.
type Stats struct {
	Networks       int `json:"networks" yaml:"networks"`
	Infrastructure int `json:"infrastructure" yaml:"infrastructure"`
	Hidden         int `json:"hidden" yaml:"hidden"`
	Annoying       int `json:"annoying" yaml:"annoying"`
	Encrypted      int `json:"encrypted" yaml:"encrypted"`
	NoGPS          int `json:"no_gps" yaml:"no_gps"`
	Kept           int `json:"kept" yaml:"kept"`
}

// Extract walks every wireless-network element in doc, in document order,
// and returns the infrastructure access points that pass opts and carry
// averaged GPS coordinates. A selected network missing its BSSID or SSID
// element, or a gps-info block missing an average, aborts extraction with
// ErrMalformedInput.
func Extract(doc *etree.Document, opts Options) ([]model.AccessPoint, Stats, error) {
	var (
		aps   []model.AccessPoint
		stats Stats
	)

	for i, wn := range doc.FindElements(networkPath) {
		stats.Networks++
		if !isInfrastructure(wn) {
			continue
		}
		stats.Infrastructure++

		bssid, err := childText(wn, tagBSSID)
		if err != nil {
			return nil, stats, eris.Wrapf(err, "netxml: network %d", i+1)
		}
		ssidEl := wn.SelectElement(tagSSID)
		if ssidEl == nil {
			return nil, stats, eris.Wrapf(ErrMalformedInput, "netxml: network %d (%s): missing <%s>", i+1, bssid, tagSSID)
		}

		ssid := model.HiddenSSID
		if essid := ssidEl.SelectElement(tagESSID); essid != nil && essid.Text() != "" {
			ssid = essid.Text()
		}

		var manuf string
		if m := wn.SelectElement(tagManuf); m != nil {
			manuf = m.Text()
		}

		encEls := ssidEl.SelectElements(tagEncryption)
		enc := make([]string, 0, len(encEls))
		for _, e := range encEls {
			enc = append(enc, e.Text())
		}

		switch opts.check(ssid, enc) {
		case dropHidden:
			stats.Hidden++
			continue
		case dropAnnoying:
			stats.Annoying++
			continue
		case dropEncrypted:
			stats.Encrypted++
			continue
		}

		gps := wn.SelectElement(tagGPSInfo)
		if gps == nil {
			stats.NoGPS++
			continue
		}
		lat, err := childText(gps, tagAvgLat)
		if err != nil {
			return nil, stats, eris.Wrapf(err, "netxml: network %d (%s)", i+1, bssid)
		}
		lon, err := childText(gps, tagAvgLon)
		if err != nil {
			return nil, stats, eris.Wrapf(err, "netxml: network %d (%s)", i+1, bssid)
		}
		alt, err := childText(gps, tagAvgAlt)
		if err != nil {
			return nil, stats, eris.Wrapf(err, "netxml: network %d (%s)", i+1, bssid)
		}

		aps = append(aps, model.NewAccessPoint(bssid, ssid, manuf, enc, lat, lon, alt))
		stats.Kept++
	}

	return aps, stats, nil
}

// isInfrastructure reports whether any attribute of wn marks it as an access point.
func isInfrastructure(wn *etree.Element) bool {
	for _, a := range wn.Attr {
		if a.Value == infrastructureTyp {
			return true
		}
	}
	return false
}

// childText returns the text of el's first child named tag.
func childText(el *etree.Element, tag string) (string, error) {
	child := el.SelectElement(tag)
	if child == nil {
		return "", eris.Wrapf(ErrMalformedInput, "netxml: <%s> missing <%s>", el.Tag, tag)
	}
	return child.Text(), nil
}
