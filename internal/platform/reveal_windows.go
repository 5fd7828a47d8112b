//go:build windows

package platform

func newOSRevealer(spawner Spawner) Revealer {
	return ExplorerRevealer{Spawner: spawner}
}
