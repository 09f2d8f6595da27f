package app

import (
	"log"

	"github.com/atotto/clipboard"
)

const reportFrames = 600

// copyReport puts the current round's debug report on the clipboard.
func (a *App) copyReport() {
	if a.round == nil {
		a.flash("no round to report")
		return
	}
	report := a.round.DebugReport(reportFrames)
	if err := clipboard.WriteAll(report); err != nil {
		log.Printf("report: clipboard: %v", err)
		log.Print(report)
		a.flash("clipboard unavailable, report logged")
		return
	}
	a.flash("debug report copied")
}
