package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLauncherPath(t *testing.T) {
	tests := []struct {
		folder   string
		expected string
	}{
		{"C:/pALM/bin", "C:/pALM/bin/pALMLauncher.exe"},
		{"C:/pALM/bin/", "C:/pALM/bin/pALMLauncher.exe"},
		{"C:/pALM/bin/pALMLauncher.exe", "C:/pALM/bin/pALMLauncher.exe"},
	}

	for _, tt := range tests {
		t.Run(tt.folder, func(t *testing.T) {
			assert.Equal(t, tt.expected, LauncherPath(tt.folder, DefaultLauncherName))
		})
	}
}

func TestConfig_Launcher_NormalizesFolder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PalmFolderPath = `C:\pALM\bin`
	assert.Equal(t, "C:/pALM/bin/pALMLauncher.exe", cfg.Launcher())
}

func TestConfigsDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PalmFolderPath = `C:\work\pALM\prismic\bin`
	cfg.PathToSAAConfigs = "../saa"

	dir, err := cfg.ConfigsDir(ModuleValuation)
	require.NoError(t, err)
	assert.Equal(t, "C:/work/Configs/valuation", dir)

	dir, err = cfg.ConfigsDir(ModuleLiabilityAnalytics)
	require.NoError(t, err)
	assert.Equal(t, "C:/work/Configs/liability_analytics", dir)

	dir, err = cfg.ConfigsDir(ModuleSAA)
	require.NoError(t, err)
	assert.Equal(t, "C:/work/pALM/prismic/saa", dir)

	_, err = cfg.ConfigsDir(ModuleRiskAnalytics)
	assert.ErrorIs(t, err, ErrMissingPath)

	_, err = cfg.ConfigsDir(Module("bogus"))
	assert.ErrorIs(t, err, ErrUnknownModule)
}

func TestConfigsDir_NoPalmFolder(t *testing.T) {
	_, err := DefaultConfig().ConfigsDir(ModuleValuation)
	assert.ErrorIs(t, err, ErrMissingPath)
}

func TestParseModule(t *testing.T) {
	for _, m := range Modules {
		got, err := ParseModule(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := ParseModule("Valuation")
	assert.ErrorIs(t, err, ErrUnknownModule)
}
