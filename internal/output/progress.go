package output

import (
	"fmt"

	"github.com/tanq16/rws-scrape/internal/utils"
)

// PrintSaving is the per-entry line shown before an image is fetched.
func PrintSaving(url, dest string) {
	PrintPending(fmt.Sprintf("%s Saving %s to %s", StyleSymbols["pending"], url, dest))
}

func PrintSaved(dest string, bytes int64) {
	PrintSuccess(fmt.Sprintf("%s %s %s", StyleSymbols["pass"], dest, FDebug(utils.FormatBytes(uint64(bytes)))))
}

func PrintStatusError(statusCode int) {
	PrintError(fmt.Sprintf("%s Error %d", StyleSymbols["fail"], statusCode))
}

func PrintSummary(saved, failed int) {
	text := fmt.Sprintf("%s %d saved, %d failed", StyleSymbols["arrow"], saved, failed)
	if failed > 0 {
		PrintWarning(text)
		return
	}
	PrintSuccess(text)
}
