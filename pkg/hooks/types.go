package hooks

// HookType represents the type of hooks.
type HookType string

// Supported hooks types.
const (
	PostFetch  HookType = "post-fetch"
	PostDelete HookType = "post-delete"
)

// Types lists every supported hook type.
var Types = []HookType{PostFetch, PostDelete}

// Hook represents a hooks script with its type and content.
type Hook struct {
	Type    HookType
	Content string
}

// HookContext contains information passed to hooks.
type HookContext struct {
	Prefix      string
	DataRoot    string
	DownloadDir string
	ExtractDir  string
	Vars        map[string]interface{}
}

// IsValid reports whether t is a supported hook type.
func (t HookType) IsValid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}
