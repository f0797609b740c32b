// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Settings is the singleton storefront configuration record. Only the first
// four fields are guaranteed to be present; the rest render conditionally.
type Settings struct {
	BrandName     string `json:"brandName"`               // Display name of the shop.
	Tagline       string `json:"tagline"`                 // Short slogan shown under the brand.
	WhatsApp      string `json:"whatsapp"`                // Contact channel, a phone-like string.
	MeeshoShopURL string `json:"meeshoShopUrl"`           // External marketplace storefront URL.
	Description   string `json:"description,omitempty"`   // Longer shop description.
	Email         string `json:"email,omitempty"`         // Contact email.
	Address       string `json:"address,omitempty"`       // Physical address.
	Instagram     string `json:"instagram,omitempty"`     // Instagram profile URL.
	Facebook      string `json:"facebook,omitempty"`      // Facebook page URL.
}

// SettingsField describes one editable Settings field: its JSON key, label and
// the widget that edits it. The admin surface uses this static declaration to
// build its settings form instead of reflecting over the struct.
type SettingsField struct {
	Key      string // JSON key of the field.
	Label    string // Human-readable label for the form.
	Widget   string // Form widget kind: "text", "textarea" or "url".
	Required bool   // Whether the field must be present.
}

// SettingsFields enumerates every editable Settings field in render order.
var SettingsFields = []SettingsField{
	{Key: "brandName", Label: "Brand Name", Widget: "text", Required: true},
	{Key: "tagline", Label: "Tagline", Widget: "text", Required: true},
	{Key: "whatsapp", Label: "WhatsApp Number", Widget: "text", Required: true},
	{Key: "meeshoShopUrl", Label: "Meesho Shop URL", Widget: "url", Required: true},
	{Key: "description", Label: "Description", Widget: "textarea", Required: false},
	{Key: "email", Label: "Email", Widget: "text", Required: false},
	{Key: "address", Label: "Address", Widget: "textarea", Required: false},
	{Key: "instagram", Label: "Instagram URL", Widget: "url", Required: false},
	{Key: "facebook", Label: "Facebook URL", Widget: "url", Required: false},
}
