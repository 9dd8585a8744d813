package palette

// rgb converts an RGB888 triple while building the tables below.
func rgb(r, g, b uint8) Color {
	return FromRGB(r, g, b)
}

// fill lays colors into the 16 slots, repeating cyclically when fewer
// than 16 are given.
func fill(colors ...Color) [Slots]Color {
	var t [Slots]Color
	copy(t[:], colors)
	for i := len(colors); i < Slots; i++ {
		t[i] = colors[i%len(colors)]
	}
	return t
}

// builtins are the palettes shipped in the device firmware, in catalog
// order: the 16-color palettes first, then 8-color, then 4-color. The
// first entry is the default palette for new sketches.
var builtins = []Palette{
	{Name: "SWEETIE-16", Size: 16, Colors: fill(
		rgb(0x1a, 0x1c, 0x2c), rgb(0x5d, 0x27, 0x5d), rgb(0xb1, 0x3e, 0x53), rgb(0xef, 0x7d, 0x57),
		rgb(0xff, 0xcd, 0x75), rgb(0xa7, 0xf0, 0x70), rgb(0x38, 0xb7, 0x64), rgb(0x25, 0x71, 0x79),
		rgb(0x29, 0x36, 0x6f), rgb(0x3b, 0x5d, 0xc9), rgb(0x41, 0xa6, 0xf6), rgb(0x73, 0xef, 0xf7),
		rgb(0xf4, 0xf4, 0xf4), rgb(0x94, 0xb0, 0xc2), rgb(0x56, 0x6c, 0x86), rgb(0x33, 0x3c, 0x57),
	)},
	{Name: "PICO-8", Size: 16, Colors: fill(
		rgb(0x00, 0x00, 0x00), rgb(0x1d, 0x2b, 0x53), rgb(0x7e, 0x25, 0x53), rgb(0x00, 0x87, 0x51),
		rgb(0xab, 0x52, 0x36), rgb(0x5f, 0x57, 0x4f), rgb(0xc2, 0xc3, 0xc7), rgb(0xff, 0xf1, 0xe8),
		rgb(0xff, 0x00, 0x4d), rgb(0xff, 0xa3, 0x00), rgb(0xff, 0xec, 0x27), rgb(0x00, 0xe4, 0x36),
		rgb(0x29, 0xad, 0xff), rgb(0x83, 0x76, 0x9c), rgb(0xff, 0x77, 0xa8), rgb(0xff, 0xcc, 0xaa),
	)},
	{Name: "ENDESGA-16", Size: 16, Colors: fill(
		rgb(0xe4, 0xa6, 0x72), rgb(0xb8, 0x6f, 0x50), rgb(0x74, 0x3f, 0x39), rgb(0x3f, 0x28, 0x32),
		rgb(0x9e, 0x28, 0x35), rgb(0xe5, 0x3b, 0x44), rgb(0xfb, 0x92, 0x2b), rgb(0xff, 0xe7, 0x62),
		rgb(0x63, 0xc6, 0x4d), rgb(0x32, 0x73, 0x45), rgb(0x19, 0x3d, 0x3f), rgb(0x4f, 0x67, 0x81),
		rgb(0xaf, 0xbf, 0xd2), rgb(0xff, 0xff, 0xff), rgb(0x2c, 0xe8, 0xf4), rgb(0x04, 0x84, 0xd1),
	)},
	{Name: "DAWNBRINGER", Size: 16, Colors: fill(
		rgb(0x14, 0x0c, 0x1c), rgb(0x44, 0x24, 0x34), rgb(0x30, 0x34, 0x6d), rgb(0x4e, 0x4a, 0x4e),
		rgb(0x85, 0x4c, 0x30), rgb(0x34, 0x65, 0x24), rgb(0xd0, 0x46, 0x48), rgb(0x75, 0x71, 0x61),
		rgb(0x59, 0x7d, 0xce), rgb(0xd2, 0x7d, 0x2c), rgb(0x85, 0x95, 0xa1), rgb(0x6d, 0xaa, 0x2c),
		rgb(0xd2, 0xaa, 0x99), rgb(0x6d, 0xc2, 0xca), rgb(0xda, 0xd4, 0x5e), rgb(0xde, 0xee, 0xd6),
	)},
	{Name: "WOODSPARK", Size: 16, Colors: fill(
		rgb(0xf5, 0xee, 0xb0), rgb(0xfa, 0xbf, 0x61), rgb(0xe0, 0x8d, 0x51), rgb(0x8a, 0x58, 0x65),
		rgb(0x45, 0x2b, 0x3f), rgb(0x2c, 0x5e, 0x3b), rgb(0x60, 0x9c, 0x4f), rgb(0xc6, 0xcc, 0x54),
		rgb(0x78, 0xc2, 0xd6), rgb(0x54, 0x79, 0xb0), rgb(0x56, 0x54, 0x6e), rgb(0x83, 0x9f, 0xa6),
		rgb(0xe0, 0xd3, 0xc8), rgb(0xf0, 0x5b, 0x5b), rgb(0x8f, 0x32, 0x5f), rgb(0xeb, 0x6c, 0x98),
	)},
	{Name: "LOST CENTURY", Size: 16, Colors: fill(
		rgb(0xd1, 0xb1, 0x87), rgb(0xc7, 0x7b, 0x58), rgb(0xae, 0x5d, 0x40), rgb(0x79, 0x44, 0x4a),
		rgb(0x4b, 0x3d, 0x44), rgb(0xba, 0x91, 0x58), rgb(0x92, 0x74, 0x41), rgb(0x4d, 0x45, 0x39),
		rgb(0x77, 0x74, 0x3b), rgb(0xb3, 0xa5, 0x55), rgb(0xd2, 0xc9, 0xa5), rgb(0x8c, 0xab, 0xa1),
		rgb(0x4b, 0x72, 0x6e), rgb(0x57, 0x48, 0x52), rgb(0x84, 0x78, 0x75), rgb(0xab, 0x9b, 0x8e),
	)},
	{Name: "BERRY NEBULA", Size: 8, Colors: fill(
		rgb(0x6c, 0xed, 0xed), rgb(0x6c, 0xb9, 0xc9), rgb(0x6d, 0x85, 0xa5), rgb(0x6e, 0x51, 0x81),
		rgb(0x6f, 0x1d, 0x5c), rgb(0x4f, 0x14, 0x46), rgb(0x2e, 0x0a, 0x30), rgb(0x0d, 0x00, 0x1a),
	)},
	{Name: "GOTHIC BIT", Size: 8, Colors: fill(
		rgb(0x0e, 0x0e, 0x12), rgb(0x1a, 0x1a, 0x24), rgb(0x33, 0x33, 0x46), rgb(0x53, 0x53, 0x73),
		rgb(0x80, 0x80, 0xa4), rgb(0xa6, 0xa6, 0xbf), rgb(0xc1, 0xc1, 0xd2), rgb(0xe6, 0xe6, 0xec),
	)},
	{Name: "DREAM HAZE", Size: 8, Colors: fill(
		rgb(0x3c, 0x42, 0xc4), rgb(0x6e, 0x51, 0xc8), rgb(0xa0, 0x65, 0xcd), rgb(0xce, 0x79, 0xd2),
		rgb(0xd6, 0x8f, 0xb8), rgb(0xdd, 0xa2, 0xa3), rgb(0xea, 0xc4, 0xae), rgb(0xf4, 0xdf, 0xbe),
	)},
	{Name: "LINK'S AWK", Size: 4, Colors: fill(
		rgb(0x5a, 0x39, 0x21), rgb(0x6b, 0x8c, 0x42), rgb(0x7b, 0xc6, 0x7b), rgb(0xff, 0xff, 0xb5),
	)},
	{Name: "ICE CREAM", Size: 4, Colors: fill(
		rgb(0x7c, 0x3f, 0x58), rgb(0xeb, 0x6b, 0x6f), rgb(0xf9, 0xa8, 0x75), rgb(0xff, 0xf6, 0xd3),
	)},
	{Name: "HOLLOW", Size: 4, Colors: fill(
		rgb(0x0f, 0x0f, 0x1b), rgb(0x56, 0x5a, 0x75), rgb(0xc6, 0xb7, 0xbe), rgb(0xfa, 0xfb, 0xf6),
	)},
	{Name: "GAME BOY", Size: 4, Colors: fill(
		rgb(0x08, 0x18, 0x20), rgb(0x34, 0x68, 0x56), rgb(0x88, 0xc0, 0x70), rgb(0xe0, 0xf8, 0xd0),
	)},
}
