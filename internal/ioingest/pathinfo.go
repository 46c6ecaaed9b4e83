package ioingest

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sportsense/statsdb/pkg/greek"
	"github.com/sportsense/statsdb/pkg/sport"
)

// scoreToken separates team names from the score suffix in file names.
const scoreToken = "~~~"

var scoreRx = regexp.MustCompile(`^(\d+)-(\d+)$`)

// fileInfo carries everything the path and file name conventions encode
// about one CSV file.
type fileInfo struct {
	Sport       sport.Sport
	Competition string
	Date        time.Time
	HomeTeam    string
	AwayTeam    string
	HomeScore   int
	AwayScore   int
}

// parsePath decodes the fixed path convention
//
//	.../<sport>/<competition>/<year>/<month-name>/<day>/<file>.csv
//
// and the file name convention
//
//	<home> vs <away>~~~<homeScore>-<awayScore>.csv
//
// Any deviation is a hard parse failure for the whole file.
func parsePath(path string) (fileInfo, error) {
	var info fileInfo

	parts := strings.Split(filepath.ToSlash(path), "/")
	if len(parts) < 6 {
		return info, PathConventionError(path)
	}
	sportSeg, compSeg := parts[len(parts)-6], parts[len(parts)-5]
	yearSeg, monthSeg, daySeg := parts[len(parts)-4], parts[len(parts)-3], parts[len(parts)-2]

	sp, ok := sport.FromSegment(sportSeg)
	if !ok {
		return info, PathConventionError(path)
	}
	info.Sport = sp

	info.Competition = strings.TrimSpace(compSeg)
	if info.Competition == "" {
		return info, PathConventionError(path)
	}

	year, err := strconv.Atoi(yearSeg)
	if err != nil {
		return info, PathConventionError(path)
	}
	day, err := strconv.Atoi(daySeg)
	if err != nil {
		return info, PathConventionError(path)
	}
	month, ok := greek.MonthNumber(monthSeg)
	if !ok {
		return info, MonthNameError(path, monthSeg)
	}
	info.Date = time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	if err = parseFilename(filepath.Base(path), &info); err != nil {
		return info, err
	}

	return info, nil
}

// parseFilename decodes "<home> vs <away>~~~<hs>-<as>.csv".
func parseFilename(name string, info *fileInfo) error {
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	teams, score, found := strings.Cut(stem, scoreToken)
	if !found {
		return FilenameError(name)
	}

	m := scoreRx.FindStringSubmatch(score)
	if m == nil {
		return ScoreError(name, score)
	}
	// Regex guarantees integers.
	info.HomeScore, _ = strconv.Atoi(m[1])
	info.AwayScore, _ = strconv.Atoi(m[2])

	home, away, found := strings.Cut(teams, " vs ")
	if !found {
		return FilenameError(name)
	}
	info.HomeTeam = strings.TrimSpace(home)
	info.AwayTeam = strings.TrimSpace(away)
	if info.HomeTeam == "" || info.AwayTeam == "" || info.HomeTeam == info.AwayTeam {
		return FilenameError(name)
	}

	return nil
}
