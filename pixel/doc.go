// Package pixel implements the packed monochrome image types used by the
// dashboard's OLED panels.
//
// The color and image types are compatible with Go's native [color.Color] and
// [image.Image] / [draw.Image] interfaces, so text and shapes can be rendered
// with the standard drawing machinery while the backing bytes stay in the
// SSD1306 page layout.
package pixel
