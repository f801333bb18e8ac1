package manifest

import (
	"github.com/arthur-debert/dotsetup/pkg/crontab"
	"github.com/arthur-debert/dotsetup/pkg/launchagent"
)

type (
	cronJob     = crontab.Entry
	launchAgent = launchagent.Agent
)
