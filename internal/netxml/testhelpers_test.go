package netxml

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
)

// testNetwork describes one wireless-network element for fixture generation.
type testNetwork struct {
	Type       string
	BSSID      string
	ESSID      *string
	Manuf      string
	Encryption []string
	GPS        *[3]string
	NoSSID     bool
	NoBSSID    bool
}

func strPtr(s string) *string { return &s }

func gps(lat, lon, alt string) *[3]string { return &[3]string{lat, lon, alt} }

func (n testNetwork) xml() string {
	var b strings.Builder
	typ := n.Type
	if typ == "" {
		typ = "infrastructure"
	}
	fmt.Fprintf(&b, "  <wireless-network number=\"1\" type=%q first-time=\"Sat Jan  1 10:00:00 2022\">\n", typ)
	if !n.NoSSID {
		b.WriteString("    <SSID first-time=\"Sat Jan  1 10:00:00 2022\">\n")
		b.WriteString("      <type>Beacon</type>\n")
		for _, e := range n.Encryption {
			fmt.Fprintf(&b, "      <encryption>%s</encryption>\n", e)
		}
		if n.ESSID != nil {
			fmt.Fprintf(&b, "      <essid cloaked=\"false\">%s</essid>\n", *n.ESSID)
		}
		b.WriteString("    </SSID>\n")
	}
	if !n.NoBSSID {
		fmt.Fprintf(&b, "    <BSSID>%s</BSSID>\n", n.BSSID)
	}
	fmt.Fprintf(&b, "    <manuf>%s</manuf>\n", n.Manuf)
	b.WriteString("    <channel>6</channel>\n")
	if n.GPS != nil {
		b.WriteString("    <gps-info>\n")
		b.WriteString("      <min-lat>0</min-lat>\n")
		fmt.Fprintf(&b, "      <avg-lat>%s</avg-lat>\n", n.GPS[0])
		fmt.Fprintf(&b, "      <avg-lon>%s</avg-lon>\n", n.GPS[1])
		fmt.Fprintf(&b, "      <avg-alt>%s</avg-alt>\n", n.GPS[2])
		b.WriteString("    </gps-info>\n")
	}
	b.WriteString("  </wireless-network>\n")
	return b.String()
}

// netxmlDoc wraps networks in a Kismet detection-run envelope.
func netxmlDoc(networks ...testNetwork) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<!DOCTYPE detection-run SYSTEM \"http://kismetwireless.net/kismet-3.1.0.dtd\">\n")
	b.WriteString("<detection-run kismet-version=\"2016.07.R1\" start-time=\"Sat Jan  1 10:00:00 2022\">\n")
	for _, n := range networks {
		b.WriteString(n.xml())
	}
	b.WriteString("</detection-run>\n")
	return b.String()
}

func parseDoc(t *testing.T, src string) *etree.Document {
	t.Helper()
	doc, err := Read(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
