package display

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/hzeller/libargparse/core"
)

var readBuildInfo = debug.ReadBuildInfo // Mockable for testing

// BuildVersion returns "prog vX.Y.Z" for p. Without an explicit version it
// falls back to the main module version recorded in the binary.
func BuildVersion(p *core.Parser) (string, error) {
	version := p.Version()
	if version == "" {
		inferred, err := inferVersion()
		if err != nil {
			return "", err
		}
		version = inferred
	}

	name := p.Prog()
	if name != "" {
		name += " "
	}

	if version[0] == 'v' {
		return name + version, nil
	}
	return fmt.Sprintf("%sv%s", name, version), nil
}

// inferVersion attempts to infer the user's module version from build info.
func inferVersion() (string, error) {
	info, ok := readBuildInfo()
	if !ok {
		return "", errors.New("unable to read build info")
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version, nil
	}

	return "", errors.New("no version info found in build metadata")
}
