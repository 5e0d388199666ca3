// Package artifact derives names for files that pALM runs generate, based on
// what a directory already holds.
package artifact

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"
)

const (
	// LiabilityConfigBase is the stem of generated liability configs.
	LiabilityConfigBase = "liability_config"
	// ScenarioConfigBase is the stem of generated ESG on-the-fly configs.
	ScenarioConfigBase = "config_ESG_OTF"
	// JSONExt is the extension used by both config families.
	JSONExt = ".json"
)

// NextVersion returns "<baseName>_<N><ext>" where N is one more than the
// largest version already present in fileNames (0 when there is none).
//
// Only names that start with baseName and end with ext are considered. A
// candidate without a "_<digits>" suffix right before ext counts as 0.
// Versions of any length are compared numerically.
func NextVersion(fileNames []string, baseName, ext string) string {
	suffix := regexp.MustCompile(regexp.QuoteMeta(baseName) + `_(\d+)` + regexp.QuoteMeta(ext) + `$`)

	// Suffixes can be longer than any fixed-width integer.
	maxVersion := new(big.Int)
	for _, name := range fileNames {
		if !strings.HasPrefix(name, baseName) || !strings.HasSuffix(name, ext) {
			continue
		}
		m := suffix.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		v, ok := new(big.Int).SetString(m[1], 10)
		if !ok {
			continue
		}
		if v.Cmp(maxVersion) > 0 {
			maxVersion = v
		}
	}

	next := new(big.Int).Add(maxVersion, big.NewInt(1))
	return fmt.Sprintf("%s_%s%s", baseName, next.String(), ext)
}

// NextLiabilityConfig returns the next liability_config_N.json name.
func NextLiabilityConfig(fileNames []string) string {
	return NextVersion(fileNames, LiabilityConfigBase, JSONExt)
}

// NextScenarioConfig returns the next config_ESG_OTF_N.json name.
func NextScenarioConfig(fileNames []string) string {
	return NextVersion(fileNames, ScenarioConfigBase, JSONExt)
}

var datedCSV = regexp.MustCompile(`(\d{8})\.csv`)

// MostRecentDated picks the name whose yyyymmdd stamp, placed right before
// ".csv", is the latest. Names without a valid stamp never replace the
// current pick; ties keep the earlier name. ok is false for an empty list.
func MostRecentDated(fileNames []string) (latest string, ok bool) {
	if len(fileNames) == 0 {
		return "", false
	}

	latest = fileNames[0]
	latestDate, latestOK := stampOf(latest)
	for _, name := range fileNames[1:] {
		d, dok := stampOf(name)
		if !dok || !latestOK {
			continue
		}
		if d.After(latestDate) {
			latest, latestDate = name, d
		}
	}
	return latest, true
}

func stampOf(name string) (time.Time, bool) {
	m := datedCSV.FindStringSubmatch(name)
	if m == nil {
		return time.Time{}, false
	}
	t, err := time.Parse("20060102", m[1])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
