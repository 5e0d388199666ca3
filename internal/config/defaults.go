package config

// Config mirrors ui_config.json plus the settings that control how external
// processes are run.
// Defaults are set in DefaultConfig() and can be overridden by the file or by
// PALM_* environment variables.
// NOTE: Values in the file override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	UIDirectory string `json:"uiDirectory" mapstructure:"uiDirectory"`

	PalmFolderPath     string `json:"palmFolderPath" mapstructure:"palmFolderPath"`
	PalmInputDataPath  string `json:"palmInputDataPath" mapstructure:"palmInputDataPath"`
	PalmOutputDataPath string `json:"palmOutputDataPath" mapstructure:"palmOutputDataPath"`

	PalmSAAFolderPath     string `json:"palmSAAFolderPath" mapstructure:"palmSAAFolderPath"`
	PalmSAAInputDataPath  string `json:"palmSAAInputDataPath" mapstructure:"palmSAAInputDataPath"`
	PalmSAAOutputDataPath string `json:"palmSAAOutputDataPath" mapstructure:"palmSAAOutputDataPath"`

	// Config folders, relative to the palm folder.
	PathToValuationConfigs string `json:"pathToValuationConfigs" mapstructure:"pathToValuationConfigs"`
	PathToLiabilityConfigs string `json:"pathToLiabilityConfigs" mapstructure:"pathToLiabilityConfigs"`
	PathToRiskConfigs      string `json:"pathToRiskConfigs" mapstructure:"pathToRiskConfigs"`
	PathToSAAConfigs       string `json:"pathToSAAConfigs" mapstructure:"pathToSAAConfigs"`

	// Output parsing after a run (resultMergeScenarios.py and friends).
	ScriptsFolderPath           string `json:"scriptsFolderPath" mapstructure:"scriptsFolderPath"`
	PythonParserScript          string `json:"pythonParserScript" mapstructure:"pythonParserScript"`
	PythonLiabilityConfigScript string `json:"pythonLiabilityConfigScript" mapstructure:"pythonLiabilityConfigScript"`

	GenerateInputFolderPath      string `json:"generateInputFolderPath" mapstructure:"generateInputFolderPath"`
	GenerateLiabilityConfigPath  string `json:"generateLiabilityConfigPath" mapstructure:"generateLiabilityConfigPath"`
	GenerateSpreadAssumptionPath string `json:"generateSpreadAssumptionPath" mapstructure:"generateSpreadAssumptionPath"`

	GenerateScenarioConfigPath string `json:"generateScenarioConfigPath" mapstructure:"generateScenarioConfigPath"`
	GenerateScenarioPath       string `json:"generateScenarioPath" mapstructure:"generateScenarioPath"`
	ScenarioConfigsPath        string `json:"scenarioConfigsPath" mapstructure:"scenarioConfigsPath"`

	Run RunConfig `json:"run" mapstructure:"run"`
}

// RunConfig controls the launcher and script subprocesses.
type RunConfig struct {
	Python               string `json:"python" mapstructure:"python"`                             // Default: "python"
	LauncherName         string `json:"launcherName" mapstructure:"launcherName"`                 // Default: "pALMLauncher.exe"
	TimeoutSeconds       int    `json:"timeoutSeconds" mapstructure:"timeoutSeconds"`             // Default: 0 (no timeout)
	GracefulShutdownMs   int    `json:"gracefulShutdownMs" mapstructure:"gracefulShutdownMs"`     // Default: 2000
	MaxScriptOutputBytes int64  `json:"maxScriptOutputBytes" mapstructure:"maxScriptOutputBytes"` // Default: 10 * 1024 * 1024 (10MB)
	ScenarioWorkDir      string `json:"scenarioWorkDir" mapstructure:"scenarioWorkDir"`           // Default: "ESGOnTheFly"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		PathToValuationConfigs: "../../../Configs/valuation",
		PathToLiabilityConfigs: "../../../Configs/liability_analytics",
		Run: RunConfig{
			Python:               "python",
			LauncherName:         DefaultLauncherName,
			TimeoutSeconds:       0,
			GracefulShutdownMs:   2000,
			MaxScriptOutputBytes: 10 * 1024 * 1024,
			ScenarioWorkDir:      "ESGOnTheFly",
		},
	}
}
