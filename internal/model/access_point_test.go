package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "HomeNet", "HomeNet"},
		{"ampersand", "Tom & Jerry", "Tom  Jerry"},
		{"angle brackets", "<script>x</script>", "scriptx/script"},
		{"only markup", "&<>", ""},
		{"empty", "", ""},
		{"quotes kept", `"quoted" 'single'`, `"quoted" 'single'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestNewAccessPoint_StripsEveryField(t *testing.T) {
	ap := NewAccessPoint(
		"00:11:22:33:44:55&",
		"Cafe <Free>",
		"Acme & Co",
		[]string{"WPA&", "<None>"},
		"51.5&", "-0.12<", "10>",
	)

	assert.Equal(t, "00:11:22:33:44:55", ap.BSSID)
	assert.Equal(t, "Cafe Free", ap.SSID)
	assert.Equal(t, "Acme  Co", ap.Manufacturer)
	assert.Equal(t, []string{"WPA", "None"}, ap.Encryption)
	assert.Equal(t, "51.5", ap.Latitude)
	assert.Equal(t, "-0.12", ap.Longitude)
	assert.Equal(t, "10", ap.Altitude)
}

func TestNewAccessPoint_DoesNotAliasInput(t *testing.T) {
	enc := []string{"WEP"}
	ap := NewAccessPoint("b", "s", "m", enc, "1", "2", "3")
	enc[0] = "changed"

	assert.Equal(t, []string{"WEP"}, ap.Encryption)
}

func TestNewAccessPoint_EmptyEncryption(t *testing.T) {
	ap := NewAccessPoint("b", "s", "m", nil, "1", "2", "3")
	assert.Empty(t, ap.Encryption)
	assert.False(t, ap.IsOpen())
}

func TestAccessPoint_IsHidden(t *testing.T) {
	assert.True(t, AccessPoint{SSID: HiddenSSID}.IsHidden())
	assert.False(t, AccessPoint{SSID: "hidden ssid"}.IsHidden())
	assert.False(t, AccessPoint{SSID: "Hidden SSID 2"}.IsHidden())
}

func TestAccessPoint_IsOpen(t *testing.T) {
	assert.True(t, AccessPoint{Encryption: []string{"WEP", "None"}}.IsOpen())
	assert.False(t, AccessPoint{Encryption: []string{"WPA+PSK", "WPA+AES-CCM"}}.IsOpen())
	assert.False(t, AccessPoint{Encryption: []string{"none"}}.IsOpen())
}
