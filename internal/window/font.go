package window

import (
	"bytes"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Font sizes in logical pixels.
const (
	titleSize   = 50
	messageSize = 24
	scoreSize   = 30
)

// DefaultFontPaths lists bold monospace fonts commonly installed on Linux,
// macOS and Windows.
var DefaultFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSansMono-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSansMono-Bold.ttf",
	"/usr/share/fonts/dejavu-sans-mono-fonts/DejaVuSansMono-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationMono-Bold.ttf",
	"/usr/share/fonts/liberation-mono/LiberationMono-Bold.ttf",
	"/System/Library/Fonts/Supplemental/Courier New Bold.ttf",
	`C:\Windows\Fonts\courbd.ttf`,
}

// Faces holds the text faces used by the window screens.
type Faces struct {
	Title   text.Face
	Message text.Face
	Score   text.Face
}

// LoadFaces builds faces from the first readable font in paths. When none
// can be loaded it logs a warning and falls back to a fixed bitmap face.
func LoadFaces(paths []string, logger *log.Logger) Faces {
	if logger == nil {
		logger = log.Default()
	}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			logger.Debug("skipping font", "path", path, "err", err)
			continue
		}
		logger.Debug("using font", "path", path)
		return Faces{
			Title:   &text.GoTextFace{Source: src, Size: titleSize},
			Message: &text.GoTextFace{Source: src, Size: messageSize},
			Score:   &text.GoTextFace{Source: src, Size: scoreSize},
		}
	}

	logger.Warn("Monospace font not found, using default.")
	face := text.NewGoXFace(basicfont.Face7x13)
	return Faces{Title: face, Message: face, Score: face}
}
