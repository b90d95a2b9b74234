package compare

// junkFiles are OS metadata entries that never count as part of a template.
var junkFiles = map[string]bool{
	".DS_Store":                 true,
	".Trash":                    true,
	".Spotlight-V100":           true,
	".fseventsd":                true,
	".AppleDouble":              true,
	".AppleDB":                  true,
	".Trashes":                  true,
	".TemporaryItems":           true,
	"Thumbs.db":                 true,
	"Desktop.ini":               true,
	"$RECYCLE.BIN":              true,
	"System Volume Information": true,
	"pagefile.sys":              true,
	"hiberfil.sys":              true,
	"swapfile.sys":              true,
}

// IsJunk reports whether name is an OS metadata artifact.
func IsJunk(name string) bool {
	return junkFiles[name]
}
