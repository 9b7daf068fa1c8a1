package quote

import (
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DateLayout = "2006/1/2"

var printer = message.NewPrinter(language.Japanese)

// RoundYen rounds half up, matching how amounts are shown everywhere else.
func RoundYen(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

// Yen formats an amount as a grouped whole-yen string, e.g. ¥12,345.
func Yen(v float64) string {
	n := RoundYen(v)
	if n < 0 {
		return printer.Sprintf("-¥%d", -n)
	}
	return printer.Sprintf("¥%d", n)
}

func Number(n int) string {
	return printer.Sprintf("%d", n)
}

func Date(t time.Time) string {
	return t.Format(DateLayout)
}

var fileNameReplacer = strings.NewReplacer(
	"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
	"\"", "_", "<", "_", ">", "_", "|", "_",
)

const (
	fileSuffix       = "_見積書.xlsx"
	fallbackFileName = "刺繍見積書.xlsx"
)

func FileName(projectName string) string {
	name := strings.TrimSpace(projectName)
	if name == "" {
		return fallbackFileName
	}
	return fileNameReplacer.Replace(name) + fileSuffix
}
