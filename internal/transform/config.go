package transform

// Config is the typed transformation request sent to the media service.
// Each transformation type populates its own variant; a nil field means the
// operation is not requested. Modeling the request as explicit variants
// instead of a free-form map keeps incompatible shapes from merging silently.
type Config struct {
	Restore          *bool          `json:"restore,omitempty"`
	FillBackground   *bool          `json:"fillBackground,omitempty"`
	RemoveBackground *bool          `json:"removeBackground,omitempty"`
	Remove           *RemoveParams  `json:"remove,omitempty"`
	Recolor          *RecolorParams `json:"recolor,omitempty"`
}

type RemoveParams struct {
	Prompt       string `json:"prompt"`
	RemoveShadow bool   `json:"removeShadow"`
	Multiple     bool   `json:"multiple"`
}

type RecolorParams struct {
	Prompt   string `json:"prompt"`
	To       string `json:"to"`
	Multiple bool   `json:"multiple"`
}

// Merge combines c over base, field by field: a variant set on c wins, a
// variant only on base is preserved. Neither input is mutated.
func (c Config) Merge(base *Config) Config {
	if base == nil {
		return c
	}
	out := *base
	if c.Restore != nil {
		out.Restore = c.Restore
	}
	if c.FillBackground != nil {
		out.FillBackground = c.FillBackground
	}
	if c.RemoveBackground != nil {
		out.RemoveBackground = c.RemoveBackground
	}
	if c.Remove != nil {
		out.Remove = c.Remove
	}
	if c.Recolor != nil {
		out.Recolor = c.Recolor
	}
	return out
}

// WithPrompt returns a copy of c with the user-supplied prompt (and, for
// recolor, target color) filled into the active variant.
func (c Config) WithPrompt(prompt, toColor string) Config {
	if c.Remove != nil {
		p := *c.Remove
		p.Prompt = prompt
		c.Remove = &p
	}
	if c.Recolor != nil {
		p := *c.Recolor
		p.Prompt = prompt
		p.To = toColor
		c.Recolor = &p
	}
	return c
}

// ToMap renders the typed config as the opaque object persisted with the
// image and understood by the media service.
func (c Config) ToMap() map[string]any {
	out := map[string]any{}
	if c.Restore != nil {
		out["restore"] = *c.Restore
	}
	if c.FillBackground != nil {
		out["fillBackground"] = *c.FillBackground
	}
	if c.RemoveBackground != nil {
		out["removeBackground"] = *c.RemoveBackground
	}
	if c.Remove != nil {
		out["remove"] = map[string]any{
			"prompt":       c.Remove.Prompt,
			"removeShadow": c.Remove.RemoveShadow,
			"multiple":     c.Remove.Multiple,
		}
	}
	if c.Recolor != nil {
		out["recolor"] = map[string]any{
			"prompt":   c.Recolor.Prompt,
			"to":       c.Recolor.To,
			"multiple": c.Recolor.Multiple,
		}
	}
	return out
}
