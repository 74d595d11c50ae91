package env

import (
	"os"

	"github.com/3-lines-studio/blog/internal/core"
)

// DevEnvVar switches the site into development mode when set to "1".
const DevEnvVar = "BLOG_DEV"

func DetectMode() core.Mode {
	if os.Getenv(DevEnvVar) == "1" {
		return core.ModeDev
	}
	return core.ModeProd
}
