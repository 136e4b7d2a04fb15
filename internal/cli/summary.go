package cli

import (
	"github.com/apiscaffold/apiscaffold/internal/scaffold"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	msgFoldersReady = "%d folder(s) ready"
	msgFilesWritten = "%d file(s) written"
	msgFilesSkipped = "%d file(s) skipped"
)

var summaryPrinter = newSummaryPrinter()

func newSummaryPrinter() *message.Printer {
	_ = message.Set(language.English, msgFoldersReady,
		plural.Selectf(1, "%d", plural.One, "%d folder ready", plural.Other, "%d folders ready"))
	_ = message.Set(language.English, msgFilesWritten,
		plural.Selectf(1, "%d", plural.One, "%d file written", plural.Other, "%d files written"))
	_ = message.Set(language.English, msgFilesSkipped,
		plural.Selectf(1, "%d", plural.One, "%d file skipped", plural.Other, "%d files skipped"))
	return message.NewPrinter(language.English)
}

// summarize renders the one-line run report, e.g.
// "Summary: 4 folders ready, 7 files written, 1 file skipped."
func summarize(s *scaffold.Summary) string {
	folders := s.Count(scaffold.KindFolder, scaffold.ActionCreate) +
		s.Count(scaffold.KindFolder, scaffold.ActionOverwrite) +
		s.Count(scaffold.KindFolder, scaffold.ActionMerge)
	written := s.Count(scaffold.KindFile, scaffold.ActionCreate) +
		s.Count(scaffold.KindFile, scaffold.ActionOverwrite)
	skipped := s.Count(scaffold.KindFile, scaffold.ActionSkip)

	return "Summary: " +
		summaryPrinter.Sprintf(msgFoldersReady, folders) + ", " +
		summaryPrinter.Sprintf(msgFilesWritten, written) + ", " +
		summaryPrinter.Sprintf(msgFilesSkipped, skipped) + "."
}
