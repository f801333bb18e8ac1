// Package manifest loads the declared target state for a machine.
//
// A manifest is a TOML or YAML file listing the managed blocks, anchor
// lines, crontab regions, LaunchAgents and manual-step notes dotsetup
// should converge the machine to. Targets are applied kind by kind
// (blocks, anchors, cron, launch agents) and in declaration order within
// each kind.
package manifest
