package notapdf

// SocialNetwork identifies a social network entry in the footer. Unknown
// networks are echoed verbatim as their display name.
type SocialNetwork string

const (
	NetworkFacebook  SocialNetwork = "facebook"
	NetworkInstagram SocialNetwork = "instagram"
	NetworkWhatsApp  SocialNetwork = "whatsapp"
	NetworkTikTok    SocialNetwork = "tiktok"
	NetworkX         SocialNetwork = "x"
	NetworkYouTube   SocialNetwork = "youtube"
	NetworkTelegram  SocialNetwork = "telegram"
	NetworkWeb       SocialNetwork = "web"
)

// DisplayName returns the label prefix used in the footer social row.
func (n SocialNetwork) DisplayName() string {
	switch n {
	case NetworkFacebook:
		return "Facebook"
	case NetworkInstagram:
		return "Instagram"
	case NetworkWhatsApp:
		return "WhatsApp"
	case NetworkTikTok:
		return "TikTok"
	case NetworkX:
		return "X"
	case NetworkYouTube:
		return "YouTube"
	case NetworkTelegram:
		return "Telegram"
	case NetworkWeb:
		return "Sitio web"
	default:
		return string(n)
	}
}

// SocialEntry is one icon+handle pair in the footer. Icon holds an already
// retrieved image payload; a nil or undecodable icon simply leaves more room
// for the label.
type SocialEntry struct {
	Network SocialNetwork `json:"network"`
	Value   string        `json:"value"`
	Icon    []byte        `json:"icon,omitempty"`
}

// MaxSocialEntries is the number of footer slots; extra entries are ignored.
const MaxSocialEntries = 4

// ThemeColors holds the seven brand color tokens as free-form strings.
// Tokens are resolved with ParseHexColor; a malformed token falls back to
// the built-in palette instead of failing the render.
type ThemeColors struct {
	Primary     string `json:"primary,omitempty"`
	PrimaryDark string `json:"primaryDark,omitempty"`
	Accent      string `json:"accent,omitempty"`
	Soft        string `json:"soft,omitempty"`
	Text        string `json:"text,omitempty"`
	TextLight   string `json:"textLight,omitempty"`
	Border      string `json:"border,omitempty"`
}

// Theme is the merchant branding shared across documents. All fields are
// optional except BusinessName, which also serves as the logo fallback mark.
type Theme struct {
	BusinessName string `json:"businessName"`
	// Logo is an already retrieved image payload (PNG, JPEG, GIF, WebP or
	// BMP). The renderer never fetches assets itself.
	Logo []byte `json:"logo,omitempty"`

	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
	Address string `json:"address,omitempty"`

	ThanksMessage  string `json:"thanksMessage,omitempty"`
	ClosingMessage string `json:"closingMessage,omitempty"`
	InfoText       string `json:"infoText,omitempty"`
	Terms          string `json:"terms,omitempty"`

	Social []SocialEntry `json:"social,omitempty"`

	Colors ThemeColors `json:"colors,omitempty"`
}

// contactLines returns the non-empty contact fields in display order.
// Absent fields are compacted away rather than leaving blank lines.
func (t *Theme) contactLines() []string {
	var lines []string
	for _, s := range []string{t.Phone, t.Email, t.Website, t.Address} {
		if s != "" {
			lines = append(lines, s)
		}
	}
	return lines
}

// socialEntries returns the entries that will be rendered: those with a
// non-empty value, capped at MaxSocialEntries.
func (t *Theme) socialEntries() []SocialEntry {
	var out []SocialEntry
	for _, e := range t.Social {
		if e.Value == "" {
			continue
		}
		out = append(out, e)
		if len(out) == MaxSocialEntries {
			break
		}
	}
	return out
}

// palette is the fully resolved theme, ready for drawing.
type palette struct {
	Primary     RGBColor
	PrimaryDark RGBColor
	Accent      RGBColor
	Soft        RGBColor
	Text        RGBColor
	TextLight   RGBColor
	Border      RGBColor
}

// defaultPalette is used for any token that fails to resolve.
var defaultPalette = palette{
	Primary:     RGBColor{37, 99, 235},
	PrimaryDark: RGBColor{30, 64, 175},
	Accent:      RGBColor{217, 119, 6},
	Soft:        RGBColor{241, 245, 249},
	Text:        RGBColor{30, 41, 59},
	TextLight:   RGBColor{100, 116, 139},
	Border:      RGBColor{203, 213, 225},
}

// resolvePalette maps the theme's color tokens onto a concrete palette.
func resolvePalette(c ThemeColors) palette {
	return palette{
		Primary:     ParseHexColor(c.Primary, defaultPalette.Primary),
		PrimaryDark: ParseHexColor(c.PrimaryDark, defaultPalette.PrimaryDark),
		Accent:      ParseHexColor(c.Accent, defaultPalette.Accent),
		Soft:        ParseHexColor(c.Soft, defaultPalette.Soft),
		Text:        ParseHexColor(c.Text, defaultPalette.Text),
		TextLight:   ParseHexColor(c.TextLight, defaultPalette.TextLight),
		Border:      ParseHexColor(c.Border, defaultPalette.Border),
	}
}
