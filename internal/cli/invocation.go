package cli

import (
	"os"

	"horizonx-sys/internal/logger"
)

// recordInvocation logs what this process was started with. Environment
// variables are left out since they routinely carry credentials.
func (a *App) recordInvocation(log logger.Logger, args []string) {
	wd, err := a.getwd()
	if err != nil {
		log.Debug("failed to resolve working directory", "error", err)
	}

	log.Debug("new execution",
		"pid", os.Getpid(),
		"cwd", wd,
		"args", args,
	)
}
