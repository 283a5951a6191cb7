package main

import "runtime/debug"

// version is set at build time with -ldflags "-X main.version=..."
var version = ""

// resolveVersion prefers the linker-injected version, then module build info
func resolveVersion() string {
	if version != "" {
		return version
	}
	buildInfo, ok := debug.ReadBuildInfo()
	if ok && buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
		return buildInfo.Main.Version
	}
	return "dev"
}
