// Package parser provides readers for workbooks produced by the report builder.
package parser

// EMUPerPixel is the number of EMUs (English Metric Units) per pixel at 96 DPI.
// 1 inch = 914400 EMU, 1 inch = 96 pixels at 96 DPI
// Therefore: 914400 / 96 = 9525 EMU per pixel
const EMUPerPixel = 9525

// EMUPerCentimetre is the number of EMUs in one centimetre.
const EMUPerCentimetre = 360000

// EMUToPixels converts EMU (English Metric Units) to pixels at 96 DPI.
// Excel uses EMU for internal coordinate representation.
// 914400 EMU = 1 inch, and at 96 DPI, 1 inch = 96 pixels.
func EMUToPixels(emu int64) int {
	return int(emu / EMUPerPixel)
}

// CentimetresToPixels converts a length in centimetres to whole pixels at 96 DPI.
// Non-positive lengths yield 0.
func CentimetresToPixels(cm float64) uint {
	if cm <= 0 {
		return 0
	}
	return uint(EMUToPixels(int64(cm * EMUPerCentimetre)))
}
