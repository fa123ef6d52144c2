package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryURL_NoTransformations(t *testing.T) {
	got := DeliveryURL("demo", "sample", 1000, 1000, map[string]any{})

	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/sample", got)
}

func TestDeliveryURL_Restore(t *testing.T) {
	cfg := Definitions[TypeRestore].Config.ToMap()

	got := DeliveryURL("demo", "sample", 1000, 1000, cfg)

	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/e_gen_restore/sample", got)
}

func TestDeliveryURL_Fill(t *testing.T) {
	cfg := Definitions[TypeFill].Config.ToMap()

	got := DeliveryURL("demo", "sample", 1000, 1334, cfg)

	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/b_gen_fill,c_pad,w_1000,h_1334,g_auto/sample", got)
}

func TestDeliveryURL_RecolorEscapesPrompt(t *testing.T) {
	cfg := Definitions[TypeRecolor].Config.WithPrompt("leather jacket", "dark red").ToMap()

	got := DeliveryURL("demo", "sample", 1000, 1000, cfg)

	assert.Equal(t,
		"https://res.cloudinary.com/demo/image/upload/e_gen_recolor:prompt_leather%20jacket;multiple_true;to-color_dark%20red/sample",
		got)
}

func TestDeliveryURL_SameConfigSameURL(t *testing.T) {
	cfg := Definitions[TypeRemove].Config.WithPrompt("chair", "").ToMap()

	first := DeliveryURL("demo", "sample", 1000, 1000, cfg)
	second := DeliveryURL("demo", "sample", 1000, 1000, cfg)

	assert.Equal(t, first, second)
}
