package styles

var (
	IconValid    = "✓"
	IconError    = "✗"
	IconDot      = "●"
	IconLink     = "↗"
	IconMail     = "✉"
	IconArrowL   = "‹"
	IconArrowR   = "›"
	IconSelected = "▸"
)
