package styles

// Nerd Font glyphs; without a Nerd Font they show as boxes.
const (
	IconPane   = "\uf0db" // columns
	IconCommit = "\ue729" // git commit
	IconGo     = "\ue627"
	IconRepo   = "\uf09b"
	IconCheck  = "\uf00c"
	IconInfo   = "\uf05a"
	IconConfig = "\ue615"
)
