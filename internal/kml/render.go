// Package kml renders access points as a KML placemark document.
package kml

import (
	"bytes"
	"io"
	"strings"
	"text/template"

	"github.com/rotisserie/eris"

	"github.com/sells-group/kismet2kml/internal/model"
)

// Fixed document envelope values.
const (
	Namespace   = "http://www.opengis.net/kml/2.2"
	Title       = "Kismet Wardrive"
	Description = "Output from the kismet2kml script!"
)

// Field values are embedded verbatim; model.NewAccessPoint has already
// stripped the characters that would break the markup.
const documentTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="{{.Namespace}}">
<Folder>
<name>{{.Title}}</name>
<description>{{.Description}}</description>
{{range $i, $ap := .Placemarks}}{{if $i}}
{{end}}<Placemark>
    <name>{{$ap.SSID}}</name>
    <description>
        <![CDATA[
            <b>BSSID: </b>{{$ap.BSSID}}<br />
            <b>Manufacturer: </b> {{$ap.Manufacturer}}<br />
            <b>Encryption: </b> {{join $ap.Encryption " "}}<br />
        ]]>
    </description>
    <Point>
        <coordinates>{{$ap.Longitude}},{{$ap.Latitude}},{{$ap.Altitude}}</coordinates>
    </Point>
</Placemark>{{end}}
</Folder>
</kml>
`

var docTmpl = template.Must(template.New("kml").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(documentTemplate))

type document struct {
	Namespace   string
	Title       string
	Description string
	Placemarks  []model.AccessPoint
}

// Render writes one placemark per access point, in order, inside the
// Kismet Wardrive folder.
func Render(w io.Writer, aps []model.AccessPoint) error {
	doc := document{
		Namespace:   Namespace,
		Title:       Title,
		Description: Description,
		Placemarks:  aps,
	}
	if err := docTmpl.Execute(w, doc); err != nil {
		return eris.Wrap(err, "kml: render document")
	}
	return nil
}

// Bytes renders the complete document into memory.
func Bytes(aps []model.AccessPoint) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, aps); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
