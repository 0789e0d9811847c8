package jptext

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// stationPattern matches a run of name characters followed by the 駅
// marker. Hiragana is deliberately excluded from the name class: access
// text is full of connector particles (から, まで, 徒歩) that would
// otherwise be swallowed into the candidate. This is a best-effort
// heuristic over free text, not a gazetteer lookup; unusually formatted
// names can be mis-extracted.
var stationPattern = regexp.MustCompile(`([ァ-ヺーA-Za-z0-9一-龯々〆]+)駅`)

// operatorPrefixes are transit-operator brand names stripped from the
// front of a candidate. Longer names first so 東京メトロ wins over メトロ.
var operatorPrefixes = []string{
	"つくばエクスプレス",
	"東京メトロ",
	"横浜市営地下鉄",
	"市営地下鉄",
	"地下鉄",
	"メトロ",
	"ＪＲ",
	"JR",
	"都営",
	"東急",
	"京王",
	"小田急",
	"京急",
	"京成",
	"西武",
	"東武",
	"京阪",
	"阪急",
	"阪神",
	"南海",
	"近鉄",
	"名鉄",
	"相鉄",
}

const (
	minStationRunes = 2
	maxStationRunes = 10
)

// ExtractStationNames scans a free-text access description for station
// names: substrings ending in 駅, with operator prefixes stripped and the
// marker removed. Candidates shorter than two runes or longer than ten
// are discarded as mis-parses. Duplicates are preserved; deduplication is
// the caller's responsibility when building counts.
func ExtractStationNames(text string) []string {
	if text == "" {
		return nil
	}
	matches := stationPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		name := stripOperatorPrefixes(m[1])
		n := utf8.RuneCountInString(name)
		if n < minStationRunes || n > maxStationRunes {
			continue
		}
		names = append(names, name)
	}
	return names
}

func stripOperatorPrefixes(name string) string {
	for {
		stripped := name
		for _, prefix := range operatorPrefixes {
			stripped = strings.TrimPrefix(stripped, prefix)
		}
		if stripped == name {
			return name
		}
		name = stripped
	}
}
