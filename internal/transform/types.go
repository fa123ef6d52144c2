package transform

import "fmt"

// Type tags which hosted media operation applies to an image.
type Type string

const (
	TypeRestore          Type = "restore"
	TypeRemoveBackground Type = "removeBackground"
	TypeFill             Type = "fill"
	TypeRemove           Type = "remove"
	TypeRecolor          Type = "recolor"
)

// CreditFee is the signed balance delta applied per saved transformation.
const CreditFee = -1

type Definition struct {
	Type    Type
	Title   string
	Config  Config
	Prompts bool // requires a prompt string from the user
}

var Definitions = map[Type]Definition{
	TypeRestore: {
		Type:   TypeRestore,
		Title:  "Restore Image",
		Config: Config{Restore: boolPtr(true)},
	},
	TypeRemoveBackground: {
		Type:   TypeRemoveBackground,
		Title:  "Background Remove",
		Config: Config{RemoveBackground: boolPtr(true)},
	},
	TypeFill: {
		Type:   TypeFill,
		Title:  "Generative Fill",
		Config: Config{FillBackground: boolPtr(true)},
	},
	TypeRemove: {
		Type:    TypeRemove,
		Title:   "Object Remove",
		Config:  Config{Remove: &RemoveParams{RemoveShadow: true, Multiple: true}},
		Prompts: true,
	},
	TypeRecolor: {
		Type:    TypeRecolor,
		Title:   "Object Recolor",
		Config:  Config{Recolor: &RecolorParams{Multiple: true}},
		Prompts: true,
	},
}

// ParseType validates a transformation type tag from user input.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if _, ok := Definitions[t]; !ok {
		return "", fmt.Errorf("unknown transformation type %q", s)
	}
	return t, nil
}

// AspectRatio is a named output shape for generative fill.
type AspectRatio struct {
	Key    string
	Label  string
	Width  int
	Height int
}

var AspectRatios = map[string]AspectRatio{
	"1:1":  {Key: "1:1", Label: "Square (1:1)", Width: 1000, Height: 1000},
	"3:4":  {Key: "3:4", Label: "Standard Portrait (3:4)", Width: 1000, Height: 1334},
	"9:16": {Key: "9:16", Label: "Phone Portrait (9:16)", Width: 1000, Height: 1778},
}

// ImageWidth resolves the output width for an image. Fill transformations
// take their size from the chosen aspect ratio; everything else keeps the
// source dimension, defaulting to 1000.
func ImageWidth(t Type, aspectRatio *string, sourceDim *int) int {
	if ar, ok := fillRatio(t, aspectRatio); ok {
		return ar.Width
	}
	return sourceOrDefault(sourceDim)
}

// ImageHeight resolves the output height for an image, mirroring ImageWidth.
func ImageHeight(t Type, aspectRatio *string, sourceDim *int) int {
	if ar, ok := fillRatio(t, aspectRatio); ok {
		return ar.Height
	}
	return sourceOrDefault(sourceDim)
}

func fillRatio(t Type, aspectRatio *string) (AspectRatio, bool) {
	if t != TypeFill || aspectRatio == nil {
		return AspectRatio{}, false
	}
	ar, ok := AspectRatios[*aspectRatio]
	return ar, ok
}

func sourceOrDefault(sourceDim *int) int {
	if sourceDim != nil && *sourceDim > 0 {
		return *sourceDim
	}
	return 1000
}

func boolPtr(b bool) *bool { return &b }
