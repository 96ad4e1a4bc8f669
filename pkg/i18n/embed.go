package i18n

import "embed"

// EmbeddedLocales, locales/ dizinindeki YAML katalogları. Deploy edilen binary
// harici dosyaya ihtiyaç duymaz.
//
//go:embed locales/*.yaml
var EmbeddedLocales embed.FS
