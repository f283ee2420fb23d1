package i18n

import (
	"fmt"
	"sort"
	"strings"
)

// TranslateFunc resolves a message key with named parameters into a
// display string. Hosts plug in their own catalog; the core never
// branches on the returned text.
type TranslateFunc func(key string, params map[string]any) string

// Catalog is a minimal key->template translator. Templates interpolate
// {param} placeholders. Unknown keys fall back to the key itself with
// the parameters appended, which keeps missing translations visible
// instead of silent.
type Catalog map[string]string

func (c Catalog) Translate(key string, params map[string]any) string {
	tmpl, ok := c[key]
	if !ok {
		if len(params) == 0 {
			return key
		}
		names := make([]string, 0, len(params))
		for name := range params {
			names = append(names, name)
		}
		sort.Strings(names)
		parts := make([]string, 0, len(names))
		for _, name := range names {
			parts = append(parts, fmt.Sprintf("%s=%v", name, params[name]))
		}
		return key + " (" + strings.Join(parts, ", ") + ")"
	}
	out := tmpl
	for name, val := range params {
		out = strings.ReplaceAll(out, "{"+name+"}", fmt.Sprint(val))
	}
	return out
}

// Default is the built-in English catalog covering the gallery and
// delete flows.
var Default = Catalog{
	"gallery.maxImagesReached":  "You can upload at most {max} images.",
	"gallery.invalidFileType":   "{name}: only {types} files are supported.",
	"gallery.fileTooLarge":      "{name} is {size} MB, the limit is {max} MB.",
	"gallery.createUrlFailed":   "{name}: preview could not be created.",
	"gallery.someImagesSkipped": "{skipped} image(s) skipped, the gallery holds at most {max}.",
	"gallery.duplicatesSkipped": "{count} duplicate(s) skipped.",
	"gallery.andMoreErrors":     "...and {count} more",
	"blueprints.deleteFailed":   "Failed to delete blueprint.",
}
