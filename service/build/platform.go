package build

import "strings"

// shellCommand wraps command in the OS command interpreter.
func shellCommand(goos, command string) (string, []string) {
	if goos == "windows" {
		return "cmd", []string{"/C", command}
	}
	return "sh", []string{"-c", command}
}

// openerCommand opens dir in the platform file browser.
func openerCommand(goos, dir string) (string, []string) {
	switch goos {
	case "windows":
		return "explorer", []string{dir}
	case "darwin":
		return "open", []string{dir}
	default:
		return "xdg-open", []string{dir}
	}
}

// killCommand force-terminates every process with the given image name.
func killCommand(goos, process string) (string, []string) {
	if goos == "windows" {
		return "taskkill", []string{"/F", "/IM", process}
	}
	return "pkill", []string{"-x", strings.TrimSuffix(process, ".exe")}
}
