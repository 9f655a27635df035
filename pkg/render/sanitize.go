package render

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	fragmentPolicyOnce sync.Once
	fragmentPolicy     *bluemonday.Policy
)

// SanitizeFragment strips all markup from out, leaving escaped text.
func SanitizeFragment(out []byte) []byte {
	if len(out) == 0 {
		return out
	}
	return fragmentSanitizer().SanitizeBytes(out)
}

func fragmentSanitizer() *bluemonday.Policy {
	fragmentPolicyOnce.Do(func() {
		fragmentPolicy = bluemonday.StrictPolicy()
	})
	return fragmentPolicy
}
