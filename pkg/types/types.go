package types

import (
	"fmt"
	"image"
)

// IconSpec describes one square icon in the output catalog
type IconSpec struct {
	Size                 int    `json:"size"`
	Filename             string `json:"filename"`
	PreserveTransparency bool   `json:"preserve_transparency"`
}

// Mode returns "transparent" or "opaque" for progress output
func (s IconSpec) Mode() string {
	if s.PreserveTransparency {
		return "transparent"
	}
	return "opaque"
}

// Derived is an image computed from the master together with the file it is written to
type Derived struct {
	Filename    string
	Image       image.Image
	Description string
}

// Size returns the pixel dimensions of the derived image
func (d Derived) Size() (int, int) {
	b := d.Image.Bounds()
	return b.Dx(), b.Dy()
}

// BackgroundSample is the reference color averaged from the four corner pixels
type BackgroundSample struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

func (s BackgroundSample) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", s.R, s.G, s.B)
}

// WarningKind classifies a non-fatal master image problem
type WarningKind int

const (
	WarnNotSquare WarningKind = iota
	WarnBelowOGSize
	WarnBelowIconSize
)

// Warning is a non-fatal quality issue found while validating the master
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	return w.Message
}
