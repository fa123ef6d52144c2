package transform

import (
	"fmt"
	"strings"
)

const deliveryBaseURL = "https://res.cloudinary.com"

// DeliveryURL builds the CDN URL that executes the merged configuration for
// an asset. The transformation string uses the media service's component
// syntax; ordering is fixed so the same config always yields the same URL.
func DeliveryURL(cloudName, publicID string, width, height int, cfg map[string]any) string {
	components := make([]string, 0, 3)

	if truthy(cfg["restore"]) {
		components = append(components, "e_gen_restore")
	}
	if truthy(cfg["removeBackground"]) {
		components = append(components, "e_background_removal")
	}
	if truthy(cfg["fillBackground"]) {
		components = append(components, fmt.Sprintf("b_gen_fill,c_pad,w_%d,h_%d,g_auto", width, height))
	}
	if params, ok := cfg["remove"].(map[string]any); ok {
		components = append(components, "e_gen_remove:"+promptArgs(params))
	}
	if params, ok := cfg["recolor"].(map[string]any); ok {
		args := promptArgs(params)
		if to, _ := params["to"].(string); to != "" {
			args += ";to-color_" + escapeArg(to)
		}
		components = append(components, "e_gen_recolor:"+args)
	}

	segments := []string{deliveryBaseURL, cloudName, "image", "upload"}
	if len(components) > 0 {
		segments = append(segments, strings.Join(components, "/"))
	}
	segments = append(segments, publicID)
	return strings.Join(segments, "/")
}

func promptArgs(params map[string]any) string {
	args := []string{}
	if prompt, _ := params["prompt"].(string); prompt != "" {
		args = append(args, "prompt_"+escapeArg(prompt))
	}
	if truthy(params["multiple"]) {
		args = append(args, "multiple_true")
	}
	if truthy(params["removeShadow"]) {
		args = append(args, "remove-shadow_true")
	}
	return strings.Join(args, ";")
}

func escapeArg(s string) string {
	s = strings.ReplaceAll(s, " ", "%20")
	s = strings.ReplaceAll(s, "/", "%2F")
	return s
}

func truthy(v any) bool {
	b, ok := v.(bool)
	return ok && b
}
