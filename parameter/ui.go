package parameter

// Layout & Margins
const (
	// MarginRusty is the world offset from the top-left corner (bar row + 1 padding column)
	MarginRusty = 1

	// MarginTidy leaves an empty row between the bar and the world
	MarginTidy = 2

	// BarRow is the screen row of the status/help bar
	BarRow = 0
)

// Glyphs
const (
	GlyphAlive    = 'o'
	GlyphDeadEdit = '-'
	GlyphDeadRun  = ' '
	GlyphCursor   = 'o'

	GlyphDeadTidy   = '.'
	GlyphAliveTidy  = '#'
	GlyphCursorTidy = '@'
)

// Run Bar Columns (0-indexed)
const (
	RunBarGenCol   = 1
	RunBarDelayCol = 14
	RunBarHintCol  = 29

	// RunBarPopGap separates the population counter from the hint
	RunBarPopGap = 2
)

// Bar & Splash Text
const (
	SplashTitle  = "Welcome to Rusty Life!"
	SplashPrompt = "Press spacebar to begin"

	EditBarRusty = "Use wasd/kjhl to move, spacebar to switch cell, 'p' to start."
	EditBarTidy  = "Move: wasd/hjkl, diagonals: yubn. Space: toggle. Enter: start."

	PauseBar = "Paused. Press spacebar to resume"

	RunHintRusty = "+/- control delay speed, 'p' pause, 'q' quit."
	RunHintTidy  = "+/- delay, space pause, 'q' quit."

	SizeNotice = "Couldn't read terminal size, using default size (32 x 32) for world."
)
