package config

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/palm/internal/palmpath"
)

// DefaultLauncherName is the executable pALM runs are started through.
const DefaultLauncherName = "pALMLauncher.exe"

// Module is one of the pALM run types.
type Module string

const (
	ModuleValuation          Module = "valuation"
	ModuleLiabilityAnalytics Module = "liability_analytics"
	ModuleRiskAnalytics      Module = "risk_analytics"
	ModuleSAA                Module = "saa"
)

// Modules lists every module in display order.
var Modules = []Module{ModuleValuation, ModuleLiabilityAnalytics, ModuleRiskAnalytics, ModuleSAA}

// ParseModule maps a name to a Module.
func ParseModule(name string) (Module, error) {
	for _, m := range Modules {
		if string(m) == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownModule, name)
}

// LauncherPath appends launcher to folder unless folder already ends with it.
func LauncherPath(folder, launcher string) string {
	if strings.HasSuffix(folder, launcher) {
		return folder
	}
	if strings.HasSuffix(folder, "/") {
		return folder + launcher
	}
	return folder + "/" + launcher
}

// Launcher returns the launcher executable inside the palm folder.
func (c *Config) Launcher() string {
	return LauncherPath(palmpath.Normalize(c.PalmFolderPath), c.Run.LauncherName)
}

// ConfigsDir resolves the folder holding module's run configs against the
// palm folder.
func (c *Config) ConfigsDir(module Module) (string, error) {
	var rel string
	switch module {
	case ModuleValuation:
		rel = c.PathToValuationConfigs
	case ModuleLiabilityAnalytics:
		rel = c.PathToLiabilityConfigs
	case ModuleRiskAnalytics:
		rel = c.PathToRiskConfigs
	case ModuleSAA:
		rel = c.PathToSAAConfigs
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownModule, module)
	}

	if c.PalmFolderPath == "" {
		return "", fmt.Errorf("%w: palmFolderPath", ErrMissingPath)
	}
	if rel == "" {
		return "", fmt.Errorf("%w: config folder for %s", ErrMissingPath, module)
	}

	return palmpath.ResolvePath(palmpath.Normalize(c.PalmFolderPath), rel), nil
}
