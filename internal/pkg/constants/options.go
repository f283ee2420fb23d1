package constants

// Option is one entry of a static select table (region, version, tier,
// status). Value is what travels in the query string, Label what the UI
// shows.
type Option struct {
	Value string
	Label string
}

var VersionOptions = []Option{
	{Value: "", Label: "All"},
	{Value: "cbt_3", Label: "CBT 3"},
}

var TierOptions = []Option{
	{Value: "", Label: "All"},
	{Value: "I", Label: "Tier I"},
	{Value: "II", Label: "Tier II"},
	{Value: "III", Label: "Tier III"},
	{Value: "IV", Label: "Tier IV"},
}

var RegionOptions = []Option{
	{Value: "valley_iv", Label: "Valley IV"},
	{Value: "wuling", Label: "Wuling"},
}

var StatusOptions = []Option{
	{Value: "draft", Label: "Draft"},
	{Value: "published", Label: "Published"},
	{Value: "archived", Label: "Archived"},
}

// FindLabel resolves a value against an option table. The second return
// reports whether the value was found; callers fall back to the raw value.
func FindLabel(options []Option, value string) (string, bool) {
	for _, opt := range options {
		if opt.Value == value {
			return opt.Label, true
		}
	}
	return "", false
}
