package pixfont

// Seed glyphs are authored on a coarse grid and scaled up by an integer
// factor when the face masks are built. Every row must be exactly seedW
// characters wide; '#' marks a lit pixel. The rightmost column of each seed
// is the inter-character gap and stays blank.

// largeSeeds is the 8×7 grid behind the 16×21 face. The large face only ever
// renders numeric readouts and the gear letter, so its coverage is small.
var largeSeeds = map[rune][]string{
	' ': {
		"        ",
		"        ",
		"        ",
		"        ",
		"        ",
		"        ",
		"        ",
	},
	'-': {
		"        ",
		"        ",
		"        ",
		" #####  ",
		"        ",
		"        ",
		"        ",
	},
	'.': {
		"        ",
		"        ",
		"        ",
		"        ",
		"        ",
		" ##     ",
		" ##     ",
	},
	'0': {
		" #####  ",
		"##   ## ",
		"##   ## ",
		"##   ## ",
		"##   ## ",
		"##   ## ",
		" #####  ",
	},
	'1': {
		"   ##   ",
		"  ###   ",
		"   ##   ",
		"   ##   ",
		"   ##   ",
		"   ##   ",
		" ###### ",
	},
	'2': {
		" #####  ",
		"##   ## ",
		"     ## ",
		"   ###  ",
		"  ##    ",
		" ##     ",
		"####### ",
	},
	'3': {
		" #####  ",
		"##   ## ",
		"     ## ",
		"  ####  ",
		"     ## ",
		"##   ## ",
		" #####  ",
	},
	'4': {
		"   ###  ",
		"  ####  ",
		" ## ##  ",
		"##  ##  ",
		"####### ",
		"    ##  ",
		"    ##  ",
	},
	'5': {
		"####### ",
		"##      ",
		"######  ",
		"     ## ",
		"     ## ",
		"##   ## ",
		" #####  ",
	},
	'6': {
		" #####  ",
		"##      ",
		"######  ",
		"##   ## ",
		"##   ## ",
		"##   ## ",
		" #####  ",
	},
	'7': {
		"####### ",
		"     ## ",
		"    ##  ",
		"   ##   ",
		"  ##    ",
		"  ##    ",
		"  ##    ",
	},
	'8': {
		" #####  ",
		"##   ## ",
		"##   ## ",
		" #####  ",
		"##   ## ",
		"##   ## ",
		" #####  ",
	},
	'9': {
		" #####  ",
		"##   ## ",
		"##   ## ",
		" ###### ",
		"     ## ",
		"     ## ",
		" #####  ",
	},
	'D': {
		"######  ",
		"##   ## ",
		"##   ## ",
		"##   ## ",
		"##   ## ",
		"##   ## ",
		"######  ",
	},
	'N': {
		"##   ## ",
		"###  ## ",
		"#### ## ",
		"## #### ",
		"##  ### ",
		"##   ## ",
		"##   ## ",
	},
	'R': {
		"######  ",
		"##   ## ",
		"##   ## ",
		"######  ",
		"## ##   ",
		"##  ##  ",
		"##   ## ",
	},
	'�': {
		"####### ",
		"##   ## ",
		"##   ## ",
		"##   ## ",
		"##   ## ",
		"##   ## ",
		"####### ",
	},
}

// smallSeeds is the 6×8 grid behind the 12×16 face, a classic 5×7 look with
// enough letters for the unit labels and the boot banner.
var smallSeeds = map[rune][]string{
	' ': {
		"      ",
		"      ",
		"      ",
		"      ",
		"      ",
		"      ",
		"      ",
		"      ",
	},
	'-': {
		"      ",
		"      ",
		"      ",
		"##### ",
		"      ",
		"      ",
		"      ",
		"      ",
	},
	'.': {
		"      ",
		"      ",
		"      ",
		"      ",
		"      ",
		" ##   ",
		" ##   ",
		"      ",
	},
	'/': {
		"    # ",
		"    # ",
		"   #  ",
		"  #   ",
		" #    ",
		"#     ",
		"#     ",
		"      ",
	},
	'0': {
		" ###  ",
		"#   # ",
		"#  ## ",
		"# # # ",
		"##  # ",
		"#   # ",
		" ###  ",
		"      ",
	},
	'1': {
		"  #   ",
		" ##   ",
		"  #   ",
		"  #   ",
		"  #   ",
		"  #   ",
		" ###  ",
		"      ",
	},
	'2': {
		" ###  ",
		"#   # ",
		"    # ",
		"   #  ",
		"  #   ",
		" #    ",
		"##### ",
		"      ",
	},
	'3': {
		" ###  ",
		"#   # ",
		"    # ",
		"  ##  ",
		"    # ",
		"#   # ",
		" ###  ",
		"      ",
	},
	'4': {
		"   #  ",
		"  ##  ",
		" # #  ",
		"#  #  ",
		"##### ",
		"   #  ",
		"   #  ",
		"      ",
	},
	'5': {
		"##### ",
		"#     ",
		"####  ",
		"    # ",
		"    # ",
		"#   # ",
		" ###  ",
		"      ",
	},
	'6': {
		"  ##  ",
		" #    ",
		"#     ",
		"####  ",
		"#   # ",
		"#   # ",
		" ###  ",
		"      ",
	},
	'7': {
		"##### ",
		"    # ",
		"   #  ",
		"  #   ",
		" #    ",
		" #    ",
		" #    ",
		"      ",
	},
	'8': {
		" ###  ",
		"#   # ",
		"#   # ",
		" ###  ",
		"#   # ",
		"#   # ",
		" ###  ",
		"      ",
	},
	'9': {
		" ###  ",
		"#   # ",
		"#   # ",
		" #### ",
		"    # ",
		"   #  ",
		" ##   ",
		"      ",
	},
	'B': {
		"####  ",
		"#   # ",
		"#   # ",
		"####  ",
		"#   # ",
		"#   # ",
		"####  ",
		"      ",
	},
	'C': {
		" ###  ",
		"#   # ",
		"#     ",
		"#     ",
		"#     ",
		"#   # ",
		" ###  ",
		"      ",
	},
	'D': {
		"####  ",
		"#   # ",
		"#   # ",
		"#   # ",
		"#   # ",
		"#   # ",
		"####  ",
		"      ",
	},
	'E': {
		"##### ",
		"#     ",
		"#     ",
		"####  ",
		"#     ",
		"#     ",
		"##### ",
		"      ",
	},
	'H': {
		"#   # ",
		"#   # ",
		"#   # ",
		"##### ",
		"#   # ",
		"#   # ",
		"#   # ",
		"      ",
	},
	'I': {
		" ###  ",
		"  #   ",
		"  #   ",
		"  #   ",
		"  #   ",
		"  #   ",
		" ###  ",
		"      ",
	},
	'K': {
		"#   # ",
		"#  #  ",
		"# #   ",
		"##    ",
		"# #   ",
		"#  #  ",
		"#   # ",
		"      ",
	},
	'M': {
		"#   # ",
		"## ## ",
		"# # # ",
		"# # # ",
		"#   # ",
		"#   # ",
		"#   # ",
		"      ",
	},
	'N': {
		"#   # ",
		"##  # ",
		"# # # ",
		"#  ## ",
		"#   # ",
		"#   # ",
		"#   # ",
		"      ",
	},
	'O': {
		" ###  ",
		"#   # ",
		"#   # ",
		"#   # ",
		"#   # ",
		"#   # ",
		" ###  ",
		"      ",
	},
	'R': {
		"####  ",
		"#   # ",
		"#   # ",
		"####  ",
		"# #   ",
		"#  #  ",
		"#   # ",
		"      ",
	},
	'S': {
		" #### ",
		"#     ",
		"#     ",
		" ###  ",
		"    # ",
		"    # ",
		"####  ",
		"      ",
	},
	'T': {
		"##### ",
		"  #   ",
		"  #   ",
		"  #   ",
		"  #   ",
		"  #   ",
		"  #   ",
		"      ",
	},
	'U': {
		"#   # ",
		"#   # ",
		"#   # ",
		"#   # ",
		"#   # ",
		"#   # ",
		" ###  ",
		"      ",
	},
	'�': {
		"##### ",
		"#   # ",
		"#   # ",
		"#   # ",
		"#   # ",
		"#   # ",
		"##### ",
		"      ",
	},
}
